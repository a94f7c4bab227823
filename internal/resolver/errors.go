package resolver

// InvalidInputError reports that a raw designation failed validation before
// any lookup was attempted: missing, empty, or whitespace-only after
// trimming.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
