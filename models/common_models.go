// models/common_models.go
package models

// APIErrorResponse is the failure body shared by every endpoint.
type APIErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
