package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError describes one problem in a keybinding override file.
type ValidationError struct {
	Context Context
	Key     string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("keybinds: context %q, key %q: %s", e.Context, e.Key, e.Message)
}

// ValidationErrors aggregates every problem found so the user can fix the
// whole file in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Validate checks a config for unknown contexts, unknown actions and empty
// keys. Returns nil when the config is clean.
func Validate(config *Config) error {
	var errs ValidationErrors
	for context, bindings := range config.Contexts {
		if !knownContexts[context] {
			errs = append(errs, ValidationError{Context: context, Message: "unknown context"})
			continue
		}
		for key, action := range bindings {
			if strings.TrimSpace(key) == "" {
				errs = append(errs, ValidationError{Context: context, Key: key, Message: "empty key"})
			}
			if !knownActions[action] {
				errs = append(errs, ValidationError{Context: context, Key: key, Message: fmt.Sprintf("unknown action %q", action)})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
