package models

// ResultKind classifies a failed action so the transport can pick a status code.
// It is never sent to the client.
type ResultKind string

// Result kinds
const (
	KindOK           ResultKind = ""
	KindValidation   ResultKind = "validation"
	KindUnauthorized ResultKind = "unauthorized"
	KindForbidden    ResultKind = "forbidden"
	KindNotFound     ResultKind = "not_found"
	KindConflict     ResultKind = "conflict"
	KindInternal     ResultKind = "internal"
)

// ActionResult is the response shape of every action
type ActionResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Kind    ResultKind  `json:"-"`
}

// Ok builds a successful result
func Ok(message string, data interface{}) ActionResult {
	return ActionResult{Success: true, Message: message, Data: data}
}

// Fail builds a failed result of the given kind
func Fail(kind ResultKind, message string) ActionResult {
	return ActionResult{Success: false, Message: message, Kind: kind}
}
