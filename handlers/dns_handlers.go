package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vit0-9/dns_lookup_api/models"
	"github.com/vit0-9/dns_lookup_api/pkg/resolver"
)

// DNSHandlers groups the record lookup endpoints.
type DNSHandlers struct {
	lookup func(ctx context.Context, req resolver.Request) (*resolver.Result, error)
}

func NewDNSHandlers() *DNSHandlers {
	return &DNSHandlers{lookup: resolver.Lookup}
}

// SystemLookupHandler godoc
// @Summary      Look up DNS records via the system resolver
// @Description  Resolves records of the given type for a domain using the nameserver the host is configured with.
// @Tags         DNS Lookup
// @Produce      json
// @Param        domain query string true "Domain to look up (or IP address for PTR)"
// @Param        type query string true "Record type (A, AAAA, CNAME, MX, NS, PTR, SOA, TXT)"
// @Success      200 {object} models.DNSLookupResponse "Resolved records"
// @Failure      400 {object} models.APIErrorResponse "Missing or invalid parameters"
// @Failure      500 {object} models.APIErrorResponse "Resolution failure"
// @Router       /dns [get]
func (h *DNSHandlers) SystemLookupHandler(c *gin.Context) {
	h.serveLookup(c, resolver.Request{
		Domain:     strings.TrimSpace(c.Query("domain")),
		RecordType: strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		Resolver:   resolver.SystemResolver,
	})
}

// DoHLookupHandler godoc
// @Summary      Look up DNS records via DNS-over-HTTPS
// @Description  Resolves records of the given type for a domain using a public DoH provider (google, cloudflare, cloudflare-security, cloudflare-family, quad9). Unknown provider names fall back to google.
// @Tags         DNS Lookup
// @Produce      json
// @Param        domain query string true "Domain to look up"
// @Param        type query string true "Record type (A, AAAA, CNAME, MX, NS, PTR, SOA, TXT)"
// @Param        resolver query string false "DoH provider" default(google)
// @Param        dnssec query boolean false "Request DNSSEC validation status" default(false)
// @Success      200 {object} models.DNSLookupResponse "Resolved records"
// @Failure      400 {object} models.APIErrorResponse "Missing or invalid parameters"
// @Failure      500 {object} models.APIErrorResponse "Resolution failure"
// @Router       /dns-doh [get]
func (h *DNSHandlers) DoHLookupHandler(c *gin.Context) {
	h.serveLookup(c, resolver.Request{
		Domain:     strings.TrimSpace(c.Query("domain")),
		RecordType: strings.ToUpper(strings.TrimSpace(c.Query("type"))),
		Resolver:   c.DefaultQuery("resolver", "google"),
		DNSSEC:     c.Query("dnssec") == "true",
	})
}

func (h *DNSHandlers) serveLookup(c *gin.Context, req resolver.Request) {
	result, err := h.lookup(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		var inputErr *resolver.InputError
		if errors.As(err, &inputErr) {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.APIErrorResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.DNSLookupResponse{
		Success:    true,
		Domain:     result.Domain,
		RecordType: result.RecordType,
		Resolver:   result.Resolver,
		Records:    result.Records,
		QueryTime:  result.QueryTime,
		DNSSEC:     result.DNSSEC,
	})
}
