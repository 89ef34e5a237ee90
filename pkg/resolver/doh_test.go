package resolver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter points a DoH adapter at a stub provider and records the
// query parameters of the last request it received.
func newTestAdapter(t *testing.T, numericType bool, body string, status int) (*DoHAdapter, *url.Values) {
	t.Helper()
	var lastQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/dns-json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &DoHAdapter{name: "test", endpoint: srv.URL, numericType: numericType}, &lastQuery
}

func TestDoHResolveFiltersAnswerTypes(t *testing.T) {
	// answer section carries the CNAME chain next to the A records
	body := `{
		"Status": 0,
		"AD": false,
		"Answer": [
			{"name": "www.example.com.", "type": 5, "TTL": 300, "data": "example.com."},
			{"name": "example.com.", "type": 1, "TTL": 300, "data": "93.184.216.34"},
			{"name": "example.com.", "type": 1, "TTL": 300, "data": "93.184.216.35"}
		]
	}`
	adapter, query := newTestAdapter(t, false, body, http.StatusOK)

	answer, err := adapter.Resolve(context.Background(), "www.example.com", "A", false)
	require.NoError(t, err)
	assert.Equal(t, []any{"93.184.216.34", "93.184.216.35"}, answer.Records)
	assert.Nil(t, answer.DNSSEC)

	assert.Equal(t, "www.example.com", query.Get("name"))
	assert.Equal(t, "A", query.Get("type"))
	assert.Equal(t, "true", query.Get("cd"))
	assert.Empty(t, query.Get("do"))
}

func TestDoHResolveNumericTypeParam(t *testing.T) {
	adapter, query := newTestAdapter(t, true, `{"Status": 0, "Answer": []}`, http.StatusOK)

	_, err := adapter.Resolve(context.Background(), "example.com", "MX", false)
	require.NoError(t, err)
	assert.Equal(t, "15", query.Get("type"))
}

func TestDoHResolveDNSSECFlags(t *testing.T) {
	adapter, query := newTestAdapter(t, false, `{"Status": 0, "AD": true, "Answer": []}`, http.StatusOK)

	answer, err := adapter.Resolve(context.Background(), "example.com", "A", true)
	require.NoError(t, err)

	assert.Equal(t, "true", query.Get("do"))
	assert.Empty(t, query.Get("cd"))

	require.NotNil(t, answer.DNSSEC)
	assert.True(t, answer.DNSSEC.Validated)
	assert.True(t, answer.DNSSEC.Enabled)
}

func TestDoHResolveEmptyAnswer(t *testing.T) {
	adapter, _ := newTestAdapter(t, false, `{"Status": 0, "AD": false}`, http.StatusOK)

	answer, err := adapter.Resolve(context.Background(), "empty.example.com", "AAAA", true)
	require.NoError(t, err)
	assert.Empty(t, answer.Records)
	assert.NotNil(t, answer.Records)
	require.NotNil(t, answer.DNSSEC)
	assert.False(t, answer.DNSSEC.Validated)
}

func TestDoHResolveStatusCodes(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{1, "Format error"},
		{2, "Server failure"},
		{3, "Non-existent domain"},
		{4, "Not implemented"},
		{5, "Query refused"},
		{99, "DNS error: 99"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			adapter, _ := newTestAdapter(t, false, `{"Status": `+strconv.Itoa(tc.status)+`}`, http.StatusOK)

			_, err := adapter.Resolve(context.Background(), "example.com", "A", false)
			require.Error(t, err)

			var provErr *ProviderError
			require.True(t, errors.As(err, &provErr))
			assert.Equal(t, tc.want, provErr.Message)
		})
	}
}

func TestDoHResolveHTTPFailure(t *testing.T) {
	adapter, _ := newTestAdapter(t, false, "upstream exploded", http.StatusServiceUnavailable)

	_, err := adapter.Resolve(context.Background(), "example.com", "A", false)
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Contains(t, provErr.Message, "503")
}

func TestDoHResolveMalformedBody(t *testing.T) {
	adapter, _ := newTestAdapter(t, false, "{not json", http.StatusOK)

	_, err := adapter.Resolve(context.Background(), "example.com", "A", false)
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Contains(t, provErr.Message, "failed to parse")
}

func TestParseRecordData(t *testing.T) {
	cases := []struct {
		name       string
		recordType string
		data       string
		want       any
	}{
		{"a passthrough", "A", "93.184.216.34", "93.184.216.34"},
		{"aaaa passthrough", "AAAA", "2606:2800:220:1::1", "2606:2800:220:1::1"},
		{"cname strips root dot", "CNAME", "target.example.com.", "target.example.com"},
		{"ns strips root dot", "NS", "ns1.example.com.", "ns1.example.com"},
		{"ptr strips root dot", "PTR", "host.example.com.", "host.example.com"},
		{"mx", "MX", "10 mail.example.com.", MXRecord{Preference: 10, Exchange: "mail.example.com"}},
		{"mx malformed preference", "MX", "high mail.example.com.", MXRecord{Preference: 0, Exchange: "mail.example.com"}},
		{"mx bare", "MX", "", MXRecord{}},
		{"txt strips quotes", "TXT", `"v=spf1 -all"`, []string{"v=spf1 -all"}},
		{"txt unquoted", "TXT", "plain", []string{"plain"}},
		{
			"soa",
			"SOA",
			"ns1.example.com. hostmaster.example.com. 2024010101 7200 3600 1209600 3600",
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
			"soa malformed numerics default to zero",
			"SOA",
			"ns1.example.com. hostmaster.example.com. abc 7200 xyz 1209600 3600",
			SOARecord{
				MName:   "ns1.example.com",
				RName:   "hostmaster.example.com",
				Serial:  0,
				Refresh: 7200,
				Retry:   0,
				Expire:  1209600,
				Minimum: 3600,
			},
		},
		{
			"soa short rdata",
			"SOA",
			"ns1.example.com.",
			SOARecord{MName: "ns1.example.com"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseRecordData(tc.recordType, tc.data))
		})
	}
}
