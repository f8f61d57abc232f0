package dto

// HealthResponse reports which upstreams the process was configured with.
type HealthResponse struct {
	OK               bool   `json:"ok"`
	FlightProvider   string `json:"flightProvider"`
	Amadeus          bool   `json:"amadeus"`
	DuffelConfigured bool   `json:"duffelConfigured"`
	DuffelReady      bool   `json:"duffelReady"`
	DuffelVersion    string `json:"duffelVersion,omitempty"`
	FXEnabled        bool   `json:"fxEnabled"`
	RateLimitBackend string `json:"rateLimitBackend"`
	ClientBase       string `json:"clientBase"`
}
