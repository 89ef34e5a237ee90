package resolver

import "context"

// SystemResolver is the provider identifier for the OS-configured resolver.
const SystemResolver = "system"

// defaultResolver answers lookups that name a provider this service does not
// know.
const defaultResolver = "google"

// Adapter resolves a single (domain, record type) pair against one upstream
// provider and translates the reply into canonical records.
type Adapter interface {
	// Name returns the provider identifier used in results and metrics.
	Name() string

	// Resolve performs one lookup. When dnssec is true the adapter asks the
	// provider for DNSSEC validation status; adapters that cannot report it
	// leave the DNSSEC field nil regardless.
	Resolve(ctx context.Context, domain, recordType string, dnssec bool) (*Answer, error)
}

// ForResolver returns the adapter for a provider identifier. "system" selects
// the OS resolver; unknown identifiers select the Google DoH adapter.
func ForResolver(name string) Adapter {
	if name == SystemResolver {
		return SystemAdapter{}
	}
	if p, ok := dohProviders[name]; ok {
		return p
	}
	return dohProviders[defaultResolver]
}
