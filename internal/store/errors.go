package store

// APIError is a failure reported by the remote service. Message is the
// service's own error text when it sent one, otherwise a generic fallback for
// the operation.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }
