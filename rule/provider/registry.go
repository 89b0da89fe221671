package provider

var prefixProviders = map[string]PrefixProvider{}

// SetPrefixProviders replaces the shared provider registry, used by
// config loaders after parsing a full provider section.
func SetPrefixProviders(providers map[string]PrefixProvider) {
	prefixProviders = providers
}

// PrefixProviders returns the shared provider registry.
func PrefixProviders() map[string]PrefixProvider {
	return prefixProviders
}
