package resolver

// Record values are canonical across providers. A, AAAA, CNAME, NS and PTR
// answers are plain strings with the trailing root dot stripped where the
// provider includes one. MX and SOA answers use the structured shapes below.
// TXT answers are string slices, one element per quoted segment.

// MXRecord is a single mail exchanger answer.
type MXRecord struct {
	Preference int    `json:"preference"`
	Exchange   string `json:"exchange"`
}

// SOARecord is a single start-of-authority answer.
type SOARecord struct {
	MName   string `json:"mname"`
	RName   string `json:"rname"`
	Serial  int64  `json:"serial"`
	Refresh int64  `json:"refresh"`
	Retry   int64  `json:"retry"`
	Expire  int64  `json:"expire"`
	Minimum int64  `json:"minimum"`
}

// DNSSECInfo reports validation status for a lookup that asked for it.
// Enabled is always true when the struct is present. Validated mirrors the
// provider's authenticated data (AD) flag.
type DNSSECInfo struct {
	Validated bool `json:"validated"`
	Enabled   bool `json:"enabled"`
}

// Answer is the provider-independent part of a reply: the canonical records
// plus DNSSEC status when it was requested and the provider reports one.
type Answer struct {
	Records []any
	DNSSEC  *DNSSECInfo
}
