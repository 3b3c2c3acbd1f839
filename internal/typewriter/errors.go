package typewriter

import "fmt"

// ConfigurationError reports an engine that cannot be built from its inputs.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("typewriter: invalid %s: %s", e.Field, e.Reason)
}
