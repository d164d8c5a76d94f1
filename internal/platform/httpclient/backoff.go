package httpclient

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/dankimjw/portfolio-api/internal/platform/config"
)

// jitter spreads each delay by up to this fraction either way.
const jitter = 0.25

// backoff is an exponential delay schedule.
type backoff struct {
	attempts int
	initial  time.Duration
	ceiling  time.Duration
	factor   float64
}

func newBackoff(cfg config.RetryConfig) backoff {
	b := backoff{
		attempts: max(cfg.MaxAttempts, 1),
		initial:  cfg.InitialInterval,
		ceiling:  cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
	if b.factor < 1 {
		b.factor = 1
	}
	if b.ceiling <= 0 {
		b.ceiling = b.initial
	}
	return b
}

// delay is the pause after the n-th failed try, n starting at 1.
func (b backoff) delay(n int) time.Duration {
	d := min(float64(b.initial)*math.Pow(b.factor, float64(n-1)), float64(b.ceiling))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}
