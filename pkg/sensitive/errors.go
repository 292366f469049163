package sensitive

import "errors"

// Configuration errors are caller bugs: they fail loudly, carry no payload
// data, and are exempt from the custom redaction path so developers can see
// what they did wrong.
var (
	ErrInvalidKind    = errors.New("sensitive: invalid wrapper kind")
	ErrInvalidTarget  = errors.New("sensitive: invalid wrap target")
	ErrNilWrapper     = errors.New("sensitive: nil wrapper")
	ErrNilFunc        = errors.New("sensitive: nil function")
	ErrWrapDisabled   = errors.New("sensitive: wrap not enabled for kind")
	ErrUnwrapDisabled = errors.New("sensitive: unwrap not enabled for kind")
)

var usageErrors = []error{
	ErrInvalidKind,
	ErrInvalidTarget,
	ErrNilWrapper,
	ErrNilFunc,
	ErrWrapDisabled,
	ErrUnwrapDisabled,
}

// isUsageError reports whether err is one of this package's own misuse
// errors. They never hold secret material and bypass redaction entirely.
func isUsageError(err error) bool {
	for _, usage := range usageErrors {
		if errors.Is(err, usage) {
			return true
		}
	}
	return false
}
