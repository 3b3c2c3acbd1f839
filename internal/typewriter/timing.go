package typewriter

import "time"

// Timing holds the delays between typewriter steps.
type Timing struct {
	TypingInterval   time.Duration
	DeletingInterval time.Duration
	PauseAfterType   time.Duration
	PauseBeforeType  time.Duration
	// StartDelay is waited once before the first step. Zero starts immediately.
	StartDelay time.Duration
}

// DefaultTiming returns the delays used by the portfolio hero.
func DefaultTiming() Timing {
	return Timing{
		TypingInterval:   60 * time.Millisecond,
		DeletingInterval: 30 * time.Millisecond,
		PauseAfterType:   1200 * time.Millisecond,
		PauseBeforeType:  500 * time.Millisecond,
		StartDelay:       1500 * time.Millisecond,
	}
}

// Validate reports the first invalid field as a *ConfigurationError.
func (t Timing) Validate() error {
	intervals := []struct {
		field string
		value time.Duration
	}{
		{"typing interval", t.TypingInterval},
		{"deleting interval", t.DeletingInterval},
		{"pause after type", t.PauseAfterType},
		{"pause before type", t.PauseBeforeType},
	}
	for _, iv := range intervals {
		if iv.value <= 0 {
			return &ConfigurationError{Field: iv.field, Reason: "must be positive, got " + iv.value.String()}
		}
	}
	if t.StartDelay < 0 {
		return &ConfigurationError{Field: "start delay", Reason: "must not be negative, got " + t.StartDelay.String()}
	}
	return nil
}

// Scaled stretches every delay by factor. Factors <= 0 return t unchanged.
func (t Timing) Scaled(factor float64) Timing {
	if factor <= 0 {
		return t
	}
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	return Timing{
		TypingInterval:   scale(t.TypingInterval),
		DeletingInterval: scale(t.DeletingInterval),
		PauseAfterType:   scale(t.PauseAfterType),
		PauseBeforeType:  scale(t.PauseBeforeType),
		StartDelay:       scale(t.StartDelay),
	}
}
