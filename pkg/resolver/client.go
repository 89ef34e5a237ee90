package resolver

import (
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"
)

const dohRequestTimeout = 10 * time.Second

var (
	sharedClient *http.Client
	clientOnce   sync.Once
)

// dohClient returns the HTTP client shared by every DoH adapter. A single
// tuned client keeps connections to the provider endpoints alive between
// lookups.
func dohClient() *http.Client {
	clientOnce.Do(func() {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   5 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			ForceAttemptHTTP2:     true,
		}

		sharedClient = &http.Client{
			Transport: transport,
			Timeout:   dohRequestTimeout,
		}
	})
	return sharedClient
}
