package outcome

// Extractor is the value-channel surface shared by Result and Option:
// any container from which a T can be pulled out directly, with a default,
// or under a caller-supplied diagnostic.
type Extractor[T any] interface {
	// Unwrap returns the contained value or panics on the wrong variant
	Unwrap() T
	// UnwrapOr returns the contained value or def
	UnwrapOr(def T) T
	// Expect returns the contained value or panics with msg
	Expect(msg string) T
}
