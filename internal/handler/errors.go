package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Request validation failed"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgRunNotFound   = "Run not found"
	ErrMsgUnknownKind   = "Unknown base kind"
	ErrMsgEmptyCategory = "No kinds available for that category and depth"
	ErrMsgInvalidRunID  = "Invalid run id"
	ErrMsgDesignFailed  = "Failed to design item"
	ErrMsgSaveRunFailed = "Failed to store run"
	ErrMsgListRunFailed = "Failed to list runs"
)
