// Package typewriter cycles a fixed list of phrases through a single text
// sink, typing and deleting one character per step.
package typewriter

import (
	"time"

	"github.com/rivo/uniseg"
)

// Mode is the phase of the typewriter cycle.
type Mode int

const (
	Typing Mode = iota
	PauseAfterType
	Deleting
	PauseBeforeType
)

func (m Mode) String() string {
	switch m {
	case Typing:
		return "typing"
	case PauseAfterType:
		return "pause-after-type"
	case Deleting:
		return "deleting"
	case PauseBeforeType:
		return "pause-before-type"
	default:
		return "unknown"
	}
}

// State is a snapshot of a Machine.
type State struct {
	PhraseIndex int
	CharCount   int
	Mode        Mode
	Text        string
}

// phrase keeps the byte offset of every grapheme boundary so prefixes are
// plain slices.
type phrase struct {
	text    string
	offsets []int // offsets[n] is the byte length of the first n characters
}

func (p phrase) length() int { return len(p.offsets) - 1 }

func (p phrase) prefix(n int) string { return p.text[:p.offsets[n]] }

func splitPhrase(text string) phrase {
	offsets := []int{0}
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		_, end := gr.Positions()
		offsets = append(offsets, end)
	}
	return phrase{text: text, offsets: offsets}
}

// Machine is the typewriter state machine. It is not safe for concurrent
// use; Engine serializes access to it.
type Machine struct {
	phrases []phrase
	index   int
	count   int
	mode    Mode
}

// NewMachine returns a machine positioned before the first character of the
// first phrase.
func NewMachine(phrases []string) (*Machine, error) {
	if len(phrases) == 0 {
		return nil, &ConfigurationError{Field: "phrases", Reason: "list is empty"}
	}
	m := &Machine{phrases: make([]phrase, len(phrases)), mode: Typing}
	for i, text := range phrases {
		m.phrases[i] = splitPhrase(text)
	}
	return m, nil
}

// State returns the current snapshot.
func (m *Machine) State() State {
	return State{
		PhraseIndex: m.index,
		CharCount:   m.count,
		Mode:        m.mode,
		Text:        m.phrases[m.index].prefix(m.count),
	}
}

// Step performs one transition. rendered reports whether the character count
// changed, in which case text is the new rendered prefix. next is the delay
// before the following step.
func (m *Machine) Step(timing Timing) (text string, rendered bool, next time.Duration) {
	switch m.mode {
	case PauseAfterType:
		m.mode = Deleting
		return m.deleteStep(timing)
	case Deleting:
		return m.deleteStep(timing)
	case PauseBeforeType:
		m.mode = Typing
		m.count = 0
		return m.typeStep(timing)
	default:
		return m.typeStep(timing)
	}
}

func (m *Machine) typeStep(timing Timing) (string, bool, time.Duration) {
	current := m.phrases[m.index]
	rendered := false
	if m.count < current.length() {
		m.count++
		rendered = true
	}
	text := current.prefix(m.count)
	if m.count == current.length() {
		m.mode = PauseAfterType
		return text, rendered, timing.PauseAfterType
	}
	return text, rendered, timing.TypingInterval
}

func (m *Machine) deleteStep(timing Timing) (string, bool, time.Duration) {
	current := m.phrases[m.index]
	rendered := false
	if m.count > 0 {
		m.count--
		rendered = true
	}
	text := current.prefix(m.count)
	if m.count == 0 {
		m.index = (m.index + 1) % len(m.phrases)
		m.mode = PauseBeforeType
		return text, rendered, timing.PauseBeforeType
	}
	return text, rendered, timing.DeletingInterval
}
