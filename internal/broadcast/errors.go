package broadcast

// ValidationError reports malformed, missing or out-of-range input. The
// caller can correct the request; stored state is untouched.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that a referenced broadcast does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// StoreError wraps a persistence failure. Not caller-correctable.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return "store failure: " + e.Err.Error() }

func (e *StoreError) Unwrap() error { return e.Err }
