package gateway

import "time"

// Mode is the response-richness level requested by the caller.
type Mode string

const (
	ModeConcise  Mode = "concise"
	ModeDetailed Mode = "detailed"
)

// TierConfig is the per-attempt budget for one degradation tier.
type TierConfig struct {
	Name        string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float32
}

// Config defines the gateway's degradation ladder and retry behavior.
type Config struct {
	Detailed TierConfig
	Reduced  TierConfig // reduced-token detailed re-attempt
	Concise  TierConfig

	// MaxRetries is the number of retries after the first attempt of a
	// tier, applied to transient failures only.
	MaxRetries int

	// BackoffBase is the first retry delay; subsequent delays double,
	// with random jitter added to each.
	BackoffBase time.Duration
}
