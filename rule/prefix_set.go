package rules

import (
	"fmt"

	"github.com/cidrix/cidrix/rule/provider"
)

// PrefixSet is the rule facade over a named prefix provider. The
// underlying tree reports every covering block; PrefixSet is where
// the longest-prefix policy lives when a single answer is wanted.
type PrefixSet struct {
	providerName   string
	prefixProvider provider.PrefixProvider
}

func (ps *PrefixSet) Match(addr string) []string {
	return ps.getProvider().Match(addr)
}

func (ps *PrefixSet) MatchLongest(addr string) (string, bool) {
	return ps.getProvider().MatchLongest(addr)
}

func (ps *PrefixSet) Covers(block string) bool {
	return ps.getProvider().Covers(block)
}

func (ps *PrefixSet) Payload() string {
	return ps.getProvider().Name()
}

func (ps *PrefixSet) getProvider() provider.PrefixProvider {
	if ps.prefixProvider == nil {
		ps.prefixProvider = provider.PrefixProviders()[ps.providerName]
	}
	return ps.prefixProvider
}

func NewPrefixSet(providerName string) (*PrefixSet, error) {
	pp, ok := provider.PrefixProviders()[providerName]
	if !ok {
		return nil, fmt.Errorf("prefix set %s not found", providerName)
	}
	return &PrefixSet{
		providerName:   providerName,
		prefixProvider: pp,
	}, nil
}
