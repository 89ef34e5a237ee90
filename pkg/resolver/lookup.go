package resolver

import (
	"context"
	"fmt"
	"time"
)

// Request describes one lookup as received from the API layer. RecordType is
// expected in uppercase; the API layer normalizes user input before building
// a Request.
type Request struct {
	Domain     string
	RecordType string
	Resolver   string
	DNSSEC     bool
}

// Result is the outcome of a successful lookup. Records is never nil: a
// domain with no records of the requested type yields an empty slice.
type Result struct {
	Domain     string
	RecordType string
	Resolver   string
	Records    []any
	QueryTime  int64
	DNSSEC     *DNSSECInfo
}

// Lookup validates the request, dispatches it to the selected provider
// adapter and reports elapsed wall time in whole milliseconds.
func Lookup(ctx context.Context, req Request) (*Result, error) {
	return lookupWith(ctx, req, ForResolver(req.Resolver))
}

func lookupWith(ctx context.Context, req Request, adapter Adapter) (*Result, error) {
	if req.Domain == "" {
		return nil, &InputError{Field: "domain", Message: "domain parameter is required"}
	}
	if req.RecordType == "" {
		return nil, &InputError{Field: "type", Message: "type parameter is required"}
	}
	if !IsValidType(req.RecordType) {
		return nil, &InputError{Field: "type", Message: fmt.Sprintf("unsupported record type: %s", req.RecordType)}
	}

	start := time.Now()
	answer, err := adapter.Resolve(ctx, req.Domain, req.RecordType, req.DNSSEC)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		observeLookup(adapter.Name(), req.RecordType, "error", start)
		return nil, err
	}
	observeLookup(adapter.Name(), req.RecordType, "ok", start)

	records := answer.Records
	if records == nil {
		records = []any{}
	}

	return &Result{
		Domain:     req.Domain,
		RecordType: req.RecordType,
		Resolver:   adapter.Name(),
		Records:    records,
		QueryTime:  elapsed,
		DNSSEC:     answer.DNSSEC,
	}, nil
}
