package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubfetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the PubMed E-utilities client. The base
// URL is injected here rather than read from a package constant so the
// client can be pointed at a stub endpoint in tests.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the E-utilities endpoint root. Empty means the public
	// NCBI endpoint.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// APIKey is an optional NCBI API key, forwarded as the api_key
	// query parameter.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Email identifies the caller to NCBI, forwarded as the email
	// query parameter.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// MaxResults caps the number of PMIDs requested from the search
	// endpoint (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
