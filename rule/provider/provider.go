package provider

import (
	"encoding/json"
	"runtime"
	"strings"
	"time"

	"github.com/cidrix/cidrix/adapter/provider"
	"github.com/cidrix/cidrix/component/cidr"
	"github.com/cidrix/cidrix/component/trie"
	"gopkg.in/yaml.v2"
)

// PrefixProvider feeds a CidrTree from a payload vehicle and answers
// containment queries against it.
type PrefixProvider interface {
	provider.Provider
	Match(addr string) []string
	MatchLongest(addr string) (string, bool)
	Covers(block string) bool
	RuleCount() int
}

type prefixSetProvider struct {
	*fetcher
	count int
	v4    *trie.CidrTree[string]
	v6    *trie.CidrTree[string]
}

type PrefixSetProvider struct {
	*prefixSetProvider
}

// PrefixPayload is the YAML document shape: a "payload" list of
// "<cidr>" or "<cidr>,<value>" entries. An entry without a value tags
// the block with its own text.
type PrefixPayload struct {
	Rules []string `yaml:"payload"`
}

func NewPrefixSetProvider(name string, interval time.Duration, vehicle provider.Vehicle) PrefixProvider {
	pp := &prefixSetProvider{}

	onUpdate := func(elm interface{}) error {
		rulesRaw := elm.([]string)
		v4, v6, err := constructPrefixes(rulesRaw)
		if err != nil {
			return err
		}
		pp.count = len(rulesRaw)
		pp.v4 = v4
		pp.v6 = v6
		return nil
	}

	pp.fetcher = newFetcher(name, interval, vehicle, prefixesParse, onUpdate)

	wrapper := &PrefixSetProvider{pp}
	runtime.SetFinalizer(wrapper, stopPrefixSetProvider)
	return wrapper
}

func (pp *prefixSetProvider) Name() string {
	return pp.fetcher.Name()
}

func (pp *prefixSetProvider) RuleCount() int {
	return pp.count
}

// Match returns the values of every stored block containing addr (or
// the queried sub-block), least specific first. Unparsable input
// matches nothing.
func (pp *prefixSetProvider) Match(addr string) []string {
	c, err := cidr.ParseCidr(addr)
	if err != nil {
		return nil
	}
	t := pp.tree(c)
	if t == nil {
		return nil
	}
	return t.Lookup(c)
}

// MatchLongest applies the longest-prefix policy on top of Match: the
// deepest stored block wins.
func (pp *prefixSetProvider) MatchLongest(addr string) (string, bool) {
	values := pp.Match(addr)
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

func (pp *prefixSetProvider) Covers(block string) bool {
	c, err := cidr.ParseCidr(block)
	if err != nil {
		return false
	}
	t := pp.tree(c)
	if t == nil {
		return false
	}
	return t.Covers(c)
}

func (pp *prefixSetProvider) tree(c cidr.Cidr) *trie.CidrTree[string] {
	if c.Prefix.Family() == cidr.V4 {
		return pp.v4
	}
	return pp.v6
}

func (pp *prefixSetProvider) Type() provider.ProviderType {
	return provider.Prefix
}

func (pp *prefixSetProvider) VehicleType() provider.VehicleType {
	return pp.fetcher.VehicleType()
}

func (pp *prefixSetProvider) Initial() error {
	elm, err := pp.fetcher.Initial()
	if err != nil {
		return err
	}
	return pp.fetcher.onUpdate(elm)
}

func (pp *prefixSetProvider) Update() error {
	elm, same, err := pp.fetcher.Update()
	if err == nil && !same {
		return pp.fetcher.onUpdate(elm)
	}
	return err
}

func (pp prefixSetProvider) MarshalJSON() ([]byte, error) {
	return json.Marshal(
		map[string]interface{}{
			"name":        pp.Name(),
			"ruleCount":   pp.RuleCount(),
			"type":        pp.Type().String(),
			"updatedAt":   pp.updatedAt,
			"vehicleType": pp.VehicleType().String(),
		})
}

func prefixesParse(buf []byte) (interface{}, error) {
	payload := PrefixPayload{}
	if err := yaml.Unmarshal(buf, &payload); err != nil {
		return nil, err
	}
	return payload.Rules, nil
}

func constructPrefixes(rules []string) (*trie.CidrTree[string], *trie.CidrTree[string], error) {
	v4 := trie.NewCidrTree[string]()
	v6 := trie.NewCidrTree[string]()

	for _, raw := range rules {
		block, value := splitRule(raw)
		c, err := cidr.ParseCidr(block)
		if err != nil {
			return nil, nil, err
		}
		if c.Prefix.Family() == cidr.V4 {
			v4.Insert(c, value)
		} else {
			v6.Insert(c, value)
		}
	}

	return v4, v6, nil
}

func splitRule(raw string) (block string, value string) {
	block, value, found := strings.Cut(raw, ",")
	block = strings.TrimSpace(block)
	if !found || strings.TrimSpace(value) == "" {
		return block, block
	}
	return block, strings.TrimSpace(value)
}

func stopPrefixSetProvider(pp *PrefixSetProvider) {
	_ = pp.fetcher.Destroy()
}
