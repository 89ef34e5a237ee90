package resolver

import "github.com/miekg/dns"

// recordTypes maps the supported record type mnemonics to their RFC 1035
// numeric codes. The table is fixed at startup; lookups for anything outside
// it are rejected before any provider is contacted.
var recordTypes = map[string]uint16{
	"A":     dns.TypeA,
	"AAAA":  dns.TypeAAAA,
	"CNAME": dns.TypeCNAME,
	"MX":    dns.TypeMX,
	"NS":    dns.TypeNS,
	"PTR":   dns.TypePTR,
	"SOA":   dns.TypeSOA,
	"TXT":   dns.TypeTXT,
}

// recordTypeOrder is the display order used by the UI and docs.
var recordTypeOrder = []string{"A", "AAAA", "CNAME", "MX", "NS", "PTR", "SOA", "TXT"}

// IsValidType reports whether t is one of the supported record type
// mnemonics. Matching is exact: callers accepting user input normalize to
// uppercase first.
func IsValidType(t string) bool {
	_, ok := recordTypes[t]
	return ok
}

// NumericCode returns the RFC numeric type code for a supported mnemonic
// (A=1, NS=2, CNAME=5, SOA=6, PTR=12, MX=15, TXT=16, AAAA=28), or 0 for
// anything else.
func NumericCode(t string) uint16 {
	return recordTypes[t]
}

// RecordTypes lists the supported mnemonics in display order.
func RecordTypes() []string {
	out := make([]string, len(recordTypeOrder))
	copy(out, recordTypeOrder)
	return out
}
