// Package web holds the embedded browser UI and the shareable fragment
// format it keeps in the URL bar.
package web

import (
	_ "embed"
	"strings"

	"github.com/vit0-9/dns_lookup_api/pkg/resolver"
)

//go:embed static/index.html
var IndexHTML []byte

// Fragment encodes query state as the URL fragment "<TYPE>/<domain>", e.g.
// "MX/example.com".
func Fragment(recordType, domain string) string {
	return recordType + "/" + domain
}

// ParseFragment splits a "<TYPE>/<domain>" fragment. The first slash
// separates the record type from the domain, so domains containing slashes
// survive a round trip. Fragments with an unknown type or an empty domain are
// rejected.
func ParseFragment(fragment string) (recordType, domain string, ok bool) {
	recordType, domain, found := strings.Cut(fragment, "/")
	if !found || domain == "" || !resolver.IsValidType(recordType) {
		return "", "", false
	}
	return recordType, domain, true
}
