package theme

import (
	"context"
	"fmt"
	"log"
)

// Store is a per-owner key/value preference store.
type Store interface {
	Get(ctx context.Context, owner, key string) (string, bool, error)
	Set(ctx context.Context, owner, key, value string) error
}

// Preferences reads and writes the theme flag through a Store.
type Preferences struct {
	store  Store
	logger *log.Logger
}

// NewPreferences wraps store. A nil logger uses log.Default().
func NewPreferences(store Store, logger *log.Logger) *Preferences {
	if logger == nil {
		logger = log.Default()
	}
	return &Preferences{store: store, logger: logger}
}

// Load returns the saved theme for owner, or Default when nothing usable is
// stored.
func (p *Preferences) Load(ctx context.Context, owner string) Theme {
	raw, ok, err := p.store.Get(ctx, owner, Key)
	if err != nil {
		p.logger.Printf("Error loading theme preference: %v", err)
		return Default
	}
	if !ok {
		return Default
	}
	t, ok := Parse(raw)
	if !ok {
		p.logger.Printf("Ignoring unknown theme preference %q", raw)
		return Default
	}
	return t
}

// Save stores t for owner.
func (p *Preferences) Save(ctx context.Context, owner string, t Theme) error {
	if err := p.store.Set(ctx, owner, Key, t.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}
