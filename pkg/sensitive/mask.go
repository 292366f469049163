package sensitive

import (
	"strings"

	masker "github.com/goliatone/go-masker"
)

// MaskPreserveEnds returns a redactor keeping the first and last two
// characters of a string payload visible. Non-string payloads yield the
// fixed placeholder.
func MaskPreserveEnds() Redactor {
	return func(value any) any {
		s, ok := stringPayload(value)
		if !ok {
			return Placeholder
		}
		return maskString(s)
	}
}

// MaskAllButLast returns a redactor that stars out everything except the
// final keep characters, e.g. a card number "5105105105105100" masked with
// keep 4 reads "************5100".
func MaskAllButLast(keep int) Redactor {
	return func(value any) any {
		s, ok := stringPayload(value)
		if !ok {
			return Placeholder
		}
		runes := []rune(s)
		if keep <= 0 || len(runes) <= keep {
			return strings.Repeat("*", len(runes))
		}
		return strings.Repeat("*", len(runes)-keep) + string(runes[len(runes)-keep:])
	}
}

// MaskMap returns a redactor for map[string]string payloads: every value is
// masked with the same conservative rule regardless of its key. Keys
// survive; they are assumed to be field names, not secrets.
func MaskMap() Redactor {
	return func(value any) any {
		m, ok := value.(map[string]string)
		if !ok {
			return Placeholder
		}
		masked := make(map[string]any, len(m))
		for key, val := range m {
			masked[key] = maskString(val)
		}
		return masked
	}
}

func stringPayload(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func maskString(value string) string {
	if value == "" {
		return ""
	}
	if masked, err := masker.Default.String("preserveEnds(2,2)", value); err == nil {
		return masked
	}
	// Fallback masking if no rule is registered.
	runes := []rune(value)
	if len(runes) <= 4 {
		return strings.Repeat("*", len(runes))
	}
	return string(runes[:2]) + strings.Repeat("*", len(runes)-4) + string(runes[len(runes)-2:])
}
