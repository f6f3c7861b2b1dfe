// Package must turns error returns into panics, for values that can
// only fail on a programming error.
package must

// Get returns v, or panics with err if it is not nil.
func Get[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Do panics with err if it is not nil.
func Do(err error) {
	if err != nil {
		panic(err)
	}
}
