package setup

import (
	"fmt"
	"sort"
	"strings"
)

// E maps field name to its validation error.
type E map[string]error

// Error ...
func (e E) Error() string {
	keys := make([]string, 0, len(e))
	for key := range e {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", key, e[key]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Unwrap allows errors.Is to match causes of every field.
func (e E) Unwrap() []error {
	errs := make([]error, 0, len(e))
	for _, err := range e {
		errs = append(errs, err)
	}
	return errs
}

func (e E) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
