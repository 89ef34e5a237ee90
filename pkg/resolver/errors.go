package resolver

import "fmt"

// InputError marks a request that failed validation before any provider was
// contacted. The API layer answers these with HTTP 400.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// ProviderError wraps a failure from a provider adapter: transport errors,
// non-2xx DoH responses and non-zero DNS status codes. The message is
// surfaced to the caller as-is. The API layer answers these with HTTP 500.
type ProviderError struct {
	Resolver string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// rcodeMessages maps DNS response codes to the messages surfaced to callers.
var rcodeMessages = map[int]string{
	1: "Format error",
	2: "Server failure",
	3: "Non-existent domain",
	4: "Not implemented",
	5: "Query refused",
}

// rcodeError builds the ProviderError for a non-zero DNS response code.
// Codes outside the table get a generic message carrying the code itself.
func rcodeError(resolverName string, code int) *ProviderError {
	msg, ok := rcodeMessages[code]
	if !ok {
		msg = fmt.Sprintf("DNS error: %d", code)
	}
	return &ProviderError{Resolver: resolverName, Message: msg}
}
