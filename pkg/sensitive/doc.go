// Package sensitive keeps secret values (credentials, tokens, keys) behind
// opaque wrappers so they cannot escape through logs, error messages, panic
// output, or casual fmt/json inspection.
//
// A wrapper is produced by running a closure, never by handing over a value:
//
//	Credential := sensitive.MustKind("credential",
//		sensitive.WithRedactor(sensitive.MaskAllButLast(4)))
//
//	card, err := sensitive.From(Credential, func() (string, error) {
//		return fetchCardNumber()
//	})
//	fmt.Println(card)            // credential<redacted=************5100>
//	fmt.Println(card.Redacted()) // ************5100
//
// Every path that touches the raw payload (From, Map, Exec, ExecInto) runs
// inside a protected-execution context: a failure raised while the secret is
// in scope is scrubbed by pkg/redaction before it is re-signaled, so neither
// the error text nor the stack trace can carry the payload out.
//
// Shape questions are answered by guard predicates over the wrapper's
// precomputed type tag (IsSensitiveBinary, IsSensitiveMap, SensitiveLength,
// ...) without ever touching the payload.
//
// The raw-value entry and exit points Wrap and Unwrap are disabled unless a
// kind opts in, and Exec is preferred over Unwrap because it keeps the
// redaction net around the caller's closure.
package sensitive
