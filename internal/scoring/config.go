package scoring

import "time"

// DefaultRecencyWindow is the window used by the review and post
// recency checks.
const DefaultRecencyWindow = 30 * 24 * time.Hour

// Weights assigns each category's share of the overall score.
// The sum must equal 100; Config validation in the config package
// enforces this before an Engine is ever constructed with overrides.
type Weights struct {
	ProfileInfo int
	Reviews     int
	Photos      int
	Posts       int
	Products    int
	Services    int
	QAndA       int
	Attributes  int
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() Weights {
	return Weights{
		ProfileInfo: 20,
		Reviews:     20,
		Photos:      15,
		Posts:       15,
		Products:    10,
		Services:    5,
		QAndA:       10,
		Attributes:  5,
	}
}

// Sum returns the total of all category weights.
func (w Weights) Sum() int {
	return w.ProfileInfo + w.Reviews + w.Photos + w.Posts +
		w.Products + w.Services + w.QAndA + w.Attributes
}

// Config is the engine's immutable construction-time configuration.
// Now is the injected clock used by the recency checks; tests fix it to
// a constant to keep results deterministic.
type Config struct {
	Weights       Weights
	RecencyWindow time.Duration
	Now           func() time.Time
}

// DefaultConfig returns the standard configuration: default weights, a
// 30-day recency window and the system clock.
func DefaultConfig() Config {
	return Config{
		Weights:       DefaultWeights(),
		RecencyWindow: DefaultRecencyWindow,
		Now:           time.Now,
	}
}
