package leetcode

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chibuka/leetcode-cli/internal/lcerrors"
)

func decode(raw []byte, v any, what string) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w, empty %s payload", lcerrors.ErrDecode, what)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf(
				"%w, %s field %q is %s, %w",
				lcerrors.ErrFieldType,
				what,
				typeErr.Field,
				typeErr.Value,
				err,
			)
		}
		return fmt.Errorf("%w, %s, %w", lcerrors.ErrDecode, what, err)
	}
	return nil
}

func missing(what, field string) error {
	return fmt.Errorf("%w, %s.%s", lcerrors.ErrMissingField, what, field)
}

// embeddedJSON decodes a field the platform sends either as a JSON object or
// as a string containing JSON.
func embeddedJSON(raw json.RawMessage, v any, what string) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return fmt.Errorf("%w, %s, %w", lcerrors.ErrDecode, what, err)
		}
		if inner == "" {
			return nil
		}
		raw = json.RawMessage(inner)
	}
	return decode(raw, v, what)
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
