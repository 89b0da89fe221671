package provider

import (
	"bytes"
	"crypto/md5"
	"os"
	"path/filepath"
	"time"

	"github.com/cidrix/cidrix/adapter/provider"
	"github.com/cidrix/cidrix/log"
)

var fileMode os.FileMode = 0o666

type parser func([]byte) (interface{}, error)

// fetcher pulls a payload through its vehicle, hash-compares
// successive reads and optionally refreshes on a ticker.
type fetcher struct {
	name      string
	vehicle   provider.Vehicle
	updatedAt *time.Time
	ticker    *time.Ticker
	done      chan struct{}
	hash      [16]byte
	parse     parser
	onUpdate  func(interface{}) error
}

func newFetcher(name string, interval time.Duration, vehicle provider.Vehicle, parse parser, onUpdate func(interface{}) error) *fetcher {
	var ticker *time.Ticker
	if interval != 0 {
		ticker = time.NewTicker(interval)
	}

	return &fetcher{
		name:     name,
		ticker:   ticker,
		vehicle:  vehicle,
		parse:    parse,
		done:     make(chan struct{}, 1),
		onUpdate: onUpdate,
	}
}

func (f *fetcher) Name() string {
	return f.name
}

func (f *fetcher) VehicleType() provider.VehicleType {
	return f.vehicle.Type()
}

func (f *fetcher) Initial() (interface{}, error) {
	var (
		buf     []byte
		err     error
		isLocal bool
	)

	if stat, fErr := os.Stat(f.vehicle.Path()); fErr == nil {
		buf, err = os.ReadFile(f.vehicle.Path())
		modTime := stat.ModTime()
		f.updatedAt = &modTime
		isLocal = true
	} else {
		buf, err = f.vehicle.Read()
	}
	if err != nil {
		return nil, err
	}

	contents, err := f.parse(buf)
	if err != nil {
		if !isLocal {
			return nil, err
		}

		// local cache is stale or corrupted, fall back to the vehicle
		buf, err = f.vehicle.Read()
		if err != nil {
			return nil, err
		}

		contents, err = f.parse(buf)
		if err != nil {
			return nil, err
		}
		isLocal = false
	}

	if f.vehicle.Type() != provider.File && !isLocal {
		if err := safeWrite(f.vehicle.Path(), buf); err != nil {
			return nil, err
		}
	}

	f.hash = md5.Sum(buf)

	if f.ticker != nil {
		go f.pullLoop()
	}

	return contents, nil
}

func (f *fetcher) Update() (interface{}, bool, error) {
	buf, err := f.vehicle.Read()
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	hash := md5.Sum(buf)
	if bytes.Equal(f.hash[:], hash[:]) {
		f.updatedAt = &now
		return nil, true, nil
	}

	contents, err := f.parse(buf)
	if err != nil {
		return nil, false, err
	}

	if f.vehicle.Type() != provider.File {
		if err := safeWrite(f.vehicle.Path(), buf); err != nil {
			return nil, false, err
		}
	}

	f.updatedAt = &now
	f.hash = hash

	return contents, false, nil
}

func (f *fetcher) Destroy() error {
	if f.ticker != nil {
		f.done <- struct{}{}
	}
	return nil
}

func (f *fetcher) pullLoop() {
	for {
		select {
		case <-f.ticker.C:
			elm, same, err := f.Update()
			if err != nil {
				log.Warnln("[Provider] %s pull error: %s", f.name, err.Error())
				continue
			}

			if same {
				log.Debugln("[Provider] %s's payload doesn't change", f.name)
				continue
			}

			log.Infoln("[Provider] %s's payload updated", f.name)
			if f.onUpdate != nil {
				if err := f.onUpdate(elm); err != nil {
					log.Warnln("[Provider] %s update error: %s", f.name, err.Error())
				}
			}
		case <-f.done:
			f.ticker.Stop()
			return
		}
	}
}

func safeWrite(path string, buf []byte) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, buf, fileMode)
}
