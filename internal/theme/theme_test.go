package theme

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw  string
		want Theme
		ok   bool
	}{
		{"dark", Dark, true},
		{" Light ", Light, true},
		{"DARK", Dark, true},
		{"sepia", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Parse(%q) = %q, %t, want %q, %t", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToggleAndIcon(t *testing.T) {
	if got := Dark.Toggle(); got != Light {
		t.Fatalf("Dark.Toggle() = %q, want %q", got, Light)
	}
	if got := Light.Toggle(); got != Dark {
		t.Fatalf("Light.Toggle() = %q, want %q", got, Dark)
	}
	if got := Dark.Icon(); got != "fas fa-sun" {
		t.Fatalf("Dark.Icon() = %q", got)
	}
	if got := Light.Icon(); got != "fas fa-moon" {
		t.Fatalf("Light.Icon() = %q", got)
	}
}

func TestStarBand(t *testing.T) {
	light := Light.StarBand()
	dark := Dark.StarBand()
	if light.Max > dark.Min {
		t.Fatalf("light band %+v overlaps dark band %+v", light, dark)
	}
	if got := dark.At(0); got != 0.6 {
		t.Fatalf("dark.At(0) = %v, want 0.6", got)
	}
}

type mapStore struct {
	values map[string]string
	err    error
}

func (m *mapStore) Get(_ context.Context, owner, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[owner+"/"+key]
	return v, ok, nil
}

func (m *mapStore) Set(_ context.Context, owner, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[owner+"/"+key] = value
	return nil
}

func TestPreferencesSaveAndLoad(t *testing.T) {
	store := &mapStore{values: map[string]string{}}
	prefs := NewPreferences(store, log.New(io.Discard, "", 0))
	ctx := context.Background()

	if got := prefs.Load(ctx, "v1"); got != Dark {
		t.Fatalf("Load() = %q, want %q", got, Dark)
	}
	if err := prefs.Save(ctx, "v1", Light); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if got := prefs.Load(ctx, "v1"); got != Light {
		t.Fatalf("Load() after Save = %q, want %q", got, Light)
	}
	if got := store.values["v1/theme"]; got != "light" {
		t.Fatalf("stored = %q, want %q", got, "light")
	}
	if got := prefs.Load(ctx, "v2"); got != Dark {
		t.Fatalf("Load(v2) = %q, want %q", got, Dark)
	}
}

func TestPreferencesFallBackToDefault(t *testing.T) {
	ctx := context.Background()
	quiet := log.New(io.Discard, "", 0)

	broken := NewPreferences(&mapStore{err: errors.New("disk gone")}, quiet)
	if got := broken.Load(ctx, "v"); got != Default {
		t.Fatalf("Load() with failing store = %q, want %q", got, Default)
	}
	if err := broken.Save(ctx, "v", Light); err == nil {
		t.Fatal("Save() error = nil, want error")
	}

	garbage := NewPreferences(&mapStore{values: map[string]string{"v/theme": "neon"}}, quiet)
	if got := garbage.Load(ctx, "v"); got != Default {
		t.Fatalf("Load() with unknown value = %q, want %q", got, Default)
	}
}
