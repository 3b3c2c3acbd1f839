// Package content loads the typewriter phrases and timings from YAML.
package content

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Typewriter is the hero typewriter content.
type Typewriter struct {
	Phrases []string
	Timing  typewriter.Timing
}

// DefaultPhrases are the roles shown in the hero.
var DefaultPhrases = []string{
	"Software Engineer.",
	"Full-Stack Developer.",
	"Computer Science Student.",
}

// Default returns the built-in content.
func Default() Typewriter {
	return Typewriter{
		Phrases: append([]string(nil), DefaultPhrases...),
		Timing:  typewriter.DefaultTiming(),
	}
}

type yamlContent struct {
	Typewriter struct {
		Phrases           []string `yaml:"phrases"`
		TypingMillis      int      `yaml:"typing_ms"`
		DeletingMillis    int      `yaml:"deleting_ms"`
		PauseAfterMillis  int      `yaml:"pause_after_type_ms"`
		PauseBeforeMillis int      `yaml:"pause_before_type_ms"`
		StartDelayMillis  *int     `yaml:"start_delay_ms"`
	} `yaml:"typewriter"`
}

// Load reads path over the defaults. An empty path or missing file yields
// the defaults.
func Load(path string) (Typewriter, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("read content file: %w", err)
	}

	var fileData yamlContent
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return c, fmt.Errorf("parse content yaml: %w", err)
	}

	applyYamlContent(&c, fileData)
	return c, nil
}

func applyYamlContent(c *Typewriter, fileData yamlContent) {
	tw := fileData.Typewriter
	if len(tw.Phrases) > 0 {
		c.Phrases = tw.Phrases
	}
	if tw.TypingMillis > 0 {
		c.Timing.TypingInterval = millis(tw.TypingMillis)
	}
	if tw.DeletingMillis > 0 {
		c.Timing.DeletingInterval = millis(tw.DeletingMillis)
	}
	if tw.PauseAfterMillis > 0 {
		c.Timing.PauseAfterType = millis(tw.PauseAfterMillis)
	}
	if tw.PauseBeforeMillis > 0 {
		c.Timing.PauseBeforeType = millis(tw.PauseBeforeMillis)
	}
	if tw.StartDelayMillis != nil && *tw.StartDelayMillis >= 0 {
		c.Timing.StartDelay = millis(*tw.StartDelayMillis)
	}
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
