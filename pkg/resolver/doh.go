package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// dohResponse is the JSON body shared by the Google and Cloudflare DoH APIs.
// https://developers.google.com/speed/public-dns/docs/doh/json
// https://developers.cloudflare.com/1.1.1.1/encryption/dns-over-https/make-api-requests/dns-json/
type dohResponse struct {
	Status   int         `json:"Status"`
	TC       bool        `json:"TC"`
	RD       bool        `json:"RD"`
	RA       bool        `json:"RA"`
	AD       bool        `json:"AD"`
	CD       bool        `json:"CD"`
	Question []dohQuery  `json:"Question"`
	Answer   []dohAnswer `json:"Answer"`
	Comment  string      `json:"Comment,omitempty"`
}

type dohQuery struct {
	Name string `json:"name"`
	Type uint16 `json:"type"`
}

type dohAnswer struct {
	Name string `json:"name"`
	Type uint16 `json:"type"`
	TTL  uint32 `json:"TTL"`
	Data string `json:"data"`
}

// DoHAdapter resolves lookups against one DNS-over-HTTPS JSON endpoint.
type DoHAdapter struct {
	name     string
	endpoint string

	// numericType marks endpoints that expect the RFC type code in the type
	// parameter instead of the mnemonic.
	numericType bool
}

var dohProviders = map[string]*DoHAdapter{
	"google":              {name: "google", endpoint: "https://dns.google/resolve", numericType: true},
	"cloudflare":          {name: "cloudflare", endpoint: "https://cloudflare-dns.com/dns-query"},
	"cloudflare-security": {name: "cloudflare-security", endpoint: "https://security.cloudflare-dns.com/dns-query"},
	"cloudflare-family":   {name: "cloudflare-family", endpoint: "https://family.cloudflare-dns.com/dns-query"},
	"quad9":               {name: "quad9", endpoint: "https://dns.quad9.net:5053/dns-query"},
}

// DoHProviders lists the known DoH provider identifiers.
func DoHProviders() []string {
	names := make([]string, 0, len(dohProviders))
	for name := range dohProviders {
		names = append(names, name)
	}
	return names
}

func (a *DoHAdapter) Name() string {
	return a.name
}

// queryURL builds the provider request for one lookup. Exactly one of the
// DNSSEC flags is sent: do=true asks the provider to validate and report
// status, cd=true disables validation entirely.
func (a *DoHAdapter) queryURL(domain, recordType string, dnssec bool) string {
	params := url.Values{}
	params.Set("name", domain)
	if a.numericType {
		params.Set("type", strconv.Itoa(int(NumericCode(recordType))))
	} else {
		params.Set("type", recordType)
	}
	if dnssec {
		params.Set("do", "true")
	} else {
		params.Set("cd", "true")
	}
	return a.endpoint + "?" + params.Encode()
}

// Resolve queries the provider endpoint and translates the JSON reply into
// canonical records.
func (a *DoHAdapter) Resolve(ctx context.Context, domain, recordType string, dnssec bool) (*Answer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.queryURL(domain, recordType, dnssec), nil)
	if err != nil {
		return nil, &ProviderError{Resolver: a.name, Message: err.Error(), Err: err}
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := dohClient().Do(req)
	if err != nil {
		return nil, &ProviderError{Resolver: a.name, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{Resolver: a.name, Message: fmt.Sprintf("DoH request failed: %s", resp.Status)}
	}

	var body dohResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &ProviderError{Resolver: a.name, Message: fmt.Sprintf("failed to parse DoH response: %v", err), Err: err}
	}

	if body.Status != 0 {
		return nil, rcodeError(a.name, body.Status)
	}

	answer := &Answer{Records: parseDoHAnswers(body.Answer, recordType)}
	if dnssec {
		answer.DNSSEC = &DNSSECInfo{Validated: body.AD, Enabled: true}
	}
	return answer, nil
}

// parseDoHAnswers keeps the entries matching the requested type and parses
// each data field into its canonical shape. Providers include entries of
// other types in the answer section, CNAME chain members in particular.
func parseDoHAnswers(answers []dohAnswer, recordType string) []any {
	code := NumericCode(recordType)
	records := make([]any, 0, len(answers))
	for _, ans := range answers {
		if ans.Type != code {
			continue
		}
		records = append(records, parseRecordData(recordType, ans.Data))
	}
	return records
}

// parseRecordData turns one provider-formatted rdata string into the
// canonical record value for the type.
func parseRecordData(recordType, data string) any {
	switch recordType {
	case "MX":
		return parseMX(data)
	case "SOA":
		return parseSOA(data)
	case "TXT":
		return []string{strings.TrimSuffix(strings.TrimPrefix(data, `"`), `"`)}
	case "CNAME", "NS", "PTR":
		return strings.TrimSuffix(data, ".")
	default:
		return data
	}
}

// parseMX splits rdata like "10 mail.example.com." into preference and
// exchange. A malformed preference defaults to 0 rather than failing the
// lookup.
func parseMX(data string) MXRecord {
	fields := strings.Fields(data)
	if len(fields) == 0 {
		return MXRecord{}
	}
	pref, err := strconv.Atoi(fields[0])
	if err != nil {
		pref = 0
	}
	return MXRecord{
		Preference: pref,
		Exchange:   strings.TrimSuffix(strings.Join(fields[1:], " "), "."),
	}
}

// parseSOA splits the seven-field SOA rdata (mname rname serial refresh retry
// expire minimum). Missing fields are treated as empty and malformed numeric
// fields default to 0.
func parseSOA(data string) SOARecord {
	fields := strings.Fields(data)
	for len(fields) < 7 {
		fields = append(fields, "")
	}
	return SOARecord{
		MName:   strings.TrimSuffix(fields[0], "."),
		RName:   strings.TrimSuffix(fields[1], "."),
		Serial:  soaInt(fields[2]),
		Refresh: soaInt(fields[3]),
		Retry:   soaInt(fields[4]),
		Expire:  soaInt(fields[5]),
		Minimum: soaInt(fields[6]),
	}
}

func soaInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
