package trainer

import "strings"

// Display joins a traversal into the single-space form shown as the
// correct answer, e.g. "D B A C".
func Display(labels []string) string {
	return strings.Join(labels, " ")
}

// Normalize prepares an answer for comparison: surrounding whitespace
// is dropped, letters are lowercased and every run of whitespace
// becomes one space. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Equivalent reports whether two answers are the same once normalized.
func Equivalent(a, b string) bool {
	return Normalize(a) == Normalize(b)
}

// Result is the outcome of checking one answer. A wrong answer is not
// an error; Correct is simply false.
type Result struct {
	Order    Order
	Answer   string
	Expected string
	Correct  bool
}

// Check compares answer with expected, the Display form of the
// correct traversal.
func Check(order Order, answer, expected string) Result {
	return Result{
		Order:    order,
		Answer:   answer,
		Expected: expected,
		Correct:  Equivalent(answer, expected),
	}
}
