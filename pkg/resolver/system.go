package resolver

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const (
	resolvConfPath = "/etc/resolv.conf"
	systemTimeout  = 5 * time.Second
)

// SystemAdapter resolves lookups through the nameserver the host is
// configured with.
type SystemAdapter struct{}

func (SystemAdapter) Name() string {
	return SystemResolver
}

// serverAddress picks the first nameserver from resolv.conf.
func serverAddress() (string, error) {
	conf, err := dns.ClientConfigFromFile(resolvConfPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", resolvConfPath, err)
	}
	if len(conf.Servers) == 0 {
		return "", fmt.Errorf("no nameservers configured in %s", resolvConfPath)
	}
	return net.JoinHostPort(conf.Servers[0], conf.Port), nil
}

// queryName returns the fully qualified question name for a lookup. PTR
// lookups given a literal IP address are converted to the reverse form
// (x.x.x.x.in-addr.arpa. or the ip6.arpa equivalent); PTR lookups given a
// name that is already in reverse form pass through untouched.
func queryName(domain, recordType string) string {
	if recordType == "PTR" && net.ParseIP(domain) != nil {
		if reverse, err := dns.ReverseAddr(domain); err == nil {
			return reverse
		}
	}
	return dns.Fqdn(domain)
}

// Resolve queries the system resolver over UDP, retrying over TCP when the
// reply comes back truncated. DNSSEC status is never reported on this path.
func (a SystemAdapter) Resolve(ctx context.Context, domain, recordType string, _ bool) (*Answer, error) {
	server, err := serverAddress()
	if err != nil {
		return nil, &ProviderError{Resolver: a.Name(), Message: err.Error(), Err: err}
	}

	msg := new(dns.Msg)
	msg.SetQuestion(queryName(domain, recordType), NumericCode(recordType))
	msg.SetEdns0(4096, false)

	client := &dns.Client{Timeout: systemTimeout}
	reply, _, err := client.ExchangeContext(ctx, msg, server)
	if err == nil && reply != nil && reply.Truncated {
		client.Net = "tcp"
		reply, _, err = client.ExchangeContext(ctx, msg, server)
	}
	if err != nil {
		return nil, &ProviderError{Resolver: a.Name(), Message: err.Error(), Err: err}
	}
	if reply.Rcode != dns.RcodeSuccess {
		return nil, rcodeError(a.Name(), reply.Rcode)
	}

	code := NumericCode(recordType)
	records := make([]any, 0, len(reply.Answer))
	for _, rr := range reply.Answer {
		if rr.Header().Rrtype != code {
			continue
		}
		if rec := canonicalRR(rr); rec != nil {
			records = append(records, rec)
		}
	}
	return &Answer{Records: records}, nil
}

// canonicalRR maps one resource record onto the canonical value for its type,
// or nil for records it cannot map.
func canonicalRR(rr dns.RR) any {
	switch v := rr.(type) {
	case *dns.A:
		return v.A.String()
	case *dns.AAAA:
		return v.AAAA.String()
	case *dns.CNAME:
		return strings.TrimSuffix(v.Target, ".")
	case *dns.NS:
		return strings.TrimSuffix(v.Ns, ".")
	case *dns.PTR:
		return strings.TrimSuffix(v.Ptr, ".")
	case *dns.MX:
		return MXRecord{
			Preference: int(v.Preference),
			Exchange:   strings.TrimSuffix(v.Mx, "."),
		}
	case *dns.SOA:
		return SOARecord{
			MName:   strings.TrimSuffix(v.Ns, "."),
			RName:   strings.TrimSuffix(v.Mbox, "."),
			Serial:  int64(v.Serial),
			Refresh: int64(v.Refresh),
			Retry:   int64(v.Retry),
			Expire:  int64(v.Expire),
			Minimum: int64(v.Minttl),
		}
	case *dns.TXT:
		return append([]string(nil), v.Txt...)
	default:
		return nil
	}
}
