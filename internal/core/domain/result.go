package domain

// ListResult is the uniform shape for list reads. Total carries the
// upstream pagination total when the endpoint reports one, otherwise the
// item count.
type ListResult[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Empty is the payload type for mutations that return no entity data.
type Empty struct{}

// OperationResult is the uniform shape for mutating operations. Mutations
// never propagate errors to surfaces; failures arrive here with Success
// false and a human-readable Message.
type OperationResult[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// Succeeded builds a successful OperationResult carrying data.
func Succeeded[T any](message string, data T) OperationResult[T] {
	return OperationResult[T]{Success: true, Message: message, Data: &data}
}

// Failed builds a failed OperationResult. The message must be non-empty;
// callers pass the normalized upstream error message.
func Failed[T any](message string) OperationResult[T] {
	if message == "" {
		message = "operation failed"
	}
	return OperationResult[T]{Success: false, Message: message}
}
