package services

import "fmt"

// ImportServiceError wraps an unexpected failure inside the commit
// transaction, keeping the original error available via Unwrap. Parse and
// API errors from earlier pipeline stages are never wrapped in this.
type ImportServiceError struct {
	Message string
	Err     error
}

func (e *ImportServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import service: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("import service: %s", e.Message)
}

func (e *ImportServiceError) Unwrap() error {
	return e.Err
}
