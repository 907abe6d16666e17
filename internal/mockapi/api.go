package mockapi

// Runner is a registered runner record as returned by the runner-listing
// routes.
type Runner struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	OS        string   `json:"os"`
	Status    string   `json:"status"`
	Labels    []string `json:"labels"`
	Busy      bool     `json:"busy"`
	CreatedAt string   `json:"created_at"`
}

// RegistrationTokenResponse is returned from both registration-token routes.
type RegistrationTokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// RunnerListResponse is returned from the runner-listing routes.
type RunnerListResponse struct {
	TotalCount int      `json:"total_count"`
	Runners    []Runner `json:"runners"`
}

// HealthResponse is returned from GET /health.
type HealthResponse struct {
	Status            string `json:"status"`
	Uptime            string `json:"uptime"`
	RequestCount      int64  `json:"request_count"`
	RegisteredRunners int    `json:"registered_runners"`
}

// ReleaseAsset is one downloadable artifact in the mocked release payload.
type ReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// ReleaseResponse is the static payload served for the latest-release route.
type ReleaseResponse struct {
	TagName string         `json:"tag_name"`
	Name    string         `json:"name"`
	Assets  []ReleaseAsset `json:"assets"`
}

// MessageResponse covers the single-message bodies: the reset confirmation
// and the 401/404/500 error shapes.
type MessageResponse struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`
	Error            string `json:"error,omitempty"`
}
