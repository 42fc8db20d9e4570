package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged draws.
// Every draw is logged at debug level with its purpose, range and result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Between draws uniformly from r and logs the result under purpose.
//
// Precondition: r.Validate() == nil.
// Postcondition: r.Min <= result <= r.Max.
func (r *Roller) Between(purpose string, rng Range) int {
	v := Between(r.src, rng)
	r.logger.Debug("dice draw",
		zap.String("purpose", purpose),
		zap.Int("min", rng.Min),
		zap.Int("max", rng.Max),
		zap.Int("result", v),
	)
	return v
}

// Pick returns a uniformly chosen index in [0, n).
//
// Precondition: n > 0.
func (r *Roller) Pick(purpose string, n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("dice pick",
		zap.String("purpose", purpose),
		zap.Int("choices", n),
		zap.Int("result", v),
	)
	return v
}
