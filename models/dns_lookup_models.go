package models

import "github.com/vit0-9/dns_lookup_api/pkg/resolver"

// DNSLookupResponse is the success body shared by the system and DoH lookup
// endpoints. Records holds the canonical per-type values: strings for
// A/AAAA/CNAME/NS/PTR, resolver.MXRecord and resolver.SOARecord objects,
// string slices for TXT.
type DNSLookupResponse struct {
	Success    bool                 `json:"success"`
	Domain     string               `json:"domain"`
	RecordType string               `json:"recordType"`
	Resolver   string               `json:"resolver"`
	Records    []any                `json:"records"`
	QueryTime  int64                `json:"queryTime"` // milliseconds
	DNSSEC     *resolver.DNSSECInfo `json:"dnssec,omitempty"`
}
