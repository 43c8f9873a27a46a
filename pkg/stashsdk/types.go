package stashsdk

import "time"

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	// Error is the machine readable code (e.g., "invalid_credentials")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// AccountResponse describes the signed-in account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is returned by register and login alongside the cookie.
type SessionResponse struct {
	Account   AccountResponse `json:"account"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// SendClipResponse is returned after storing a clip.
type SendClipResponse struct {
	Code      int  `json:"code"`
	Protected bool `json:"protected"`
}

// ClipResponse carries a readable clip.
type ClipResponse struct {
	Code      int       `json:"code"`
	Content   string    `json:"content"`
	Protected bool      `json:"protected"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks map[string]string `json:"checks,omitempty"`
}
