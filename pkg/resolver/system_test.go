package resolver

import (
	"net"
	"testing"

	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
)

func TestQueryName(t *testing.T) {
	cases := []struct {
		name       string
		domain     string
		recordType string
		want       string
	}{
		{"plain domain gains root dot", "example.com", "A", "example.com."},
		{"already qualified", "example.com.", "A", "example.com."},
		{"ptr ipv4 reversed", "8.8.8.8", "PTR", "8.8.8.8.in-addr.arpa."},
		{"ptr ipv6 reversed", "::1", "PTR", "1.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.0.ip6.arpa."},
		{"ptr name passes through", "8.8.8.8.in-addr.arpa", "PTR", "8.8.8.8.in-addr.arpa."},
		{"ip for non-ptr type is not reversed", "8.8.8.8", "A", "8.8.8.8."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, queryName(tc.domain, tc.recordType))
		})
	}
}

func TestCanonicalRR(t *testing.T) {
	header := func(rrtype uint16) dns.RR_Header {
		return dns.RR_Header{Name: "example.com.", Rrtype: rrtype, Class: dns.ClassINET, Ttl: 300}
	}

	cases := []struct {
		name string
		rr   dns.RR
		want any
	}{
		{
			"a",
			&dns.A{Hdr: header(dns.TypeA), A: net.ParseIP("93.184.216.34")},
			"93.184.216.34",
		},
		{
			"aaaa",
			&dns.AAAA{Hdr: header(dns.TypeAAAA), AAAA: net.ParseIP("2606:2800:220:1::1")},
			"2606:2800:220:1::1",
		},
		{
			"cname",
			&dns.CNAME{Hdr: header(dns.TypeCNAME), Target: "target.example.com."},
			"target.example.com",
		},
		{
			"ns",
			&dns.NS{Hdr: header(dns.TypeNS), Ns: "ns1.example.com."},
			"ns1.example.com",
		},
		{
			"ptr",
			&dns.PTR{Hdr: header(dns.TypePTR), Ptr: "host.example.com."},
			"host.example.com",
		},
		{
			"mx",
			&dns.MX{Hdr: header(dns.TypeMX), Preference: 10, Mx: "mail.example.com."},
			MXRecord{Preference: 10, Exchange: "mail.example.com"},
		},
		{
			"soa",
			&dns.SOA{
				Hdr:     header(dns.TypeSOA),
				Ns:      "ns1.example.com.",
				Mbox:    "hostmaster.example.com.",
				Serial:  2024010101,
				Refresh: 7200,
				Retry:   3600,
				Expire:  1209600,
				Minttl:  3600,
			},
			SOARecord{
				MName:   "ns1.example.com",
				RName:   "hostmaster.example.com",
				Serial:  2024010101,
				Refresh: 7200,
				Retry:   3600,
				Expire:  1209600,
				Minimum: 3600,
			},
		},
		{
			"txt keeps segments",
			&dns.TXT{Hdr: header(dns.TypeTXT), Txt: []string{"v=spf1", "-all"}},
			[]string{"v=spf1", "-all"},
		},
		{
			"unsupported type",
			&dns.SRV{Hdr: header(dns.TypeSRV), Target: "sip.example.com."},
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, canonicalRR(tc.rr))
		})
	}
}
