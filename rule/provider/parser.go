package provider

import (
	"fmt"
	"time"

	"github.com/cidrix/cidrix/adapter/provider"
	"github.com/mitchellh/mapstructure"
)

type prefixProviderSchema struct {
	Type     string `provider:"type"`
	Path     string `provider:"path"`
	URL      string `provider:"url,omitempty"`
	Interval int    `provider:"interval,omitempty"`
}

// ParsePrefixProvider builds a provider from a loose config mapping,
// e.g. one entry of a YAML "prefix-providers" section.
func ParsePrefixProvider(name string, mapping map[string]interface{}) (PrefixProvider, error) {
	schema := &prefixProviderSchema{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           schema,
		TagName:          "provider",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(mapping); err != nil {
		return nil, err
	}

	var vehicle provider.Vehicle
	switch schema.Type {
	case "file":
		vehicle = provider.NewFileVehicle(schema.Path)
	case "http":
		vehicle = provider.NewHTTPVehicle(schema.URL, schema.Path)
	default:
		return nil, fmt.Errorf("unsupported vehicle type: %s", schema.Type)
	}

	return NewPrefixSetProvider(name, time.Duration(uint(schema.Interval))*time.Second, vehicle), nil
}
