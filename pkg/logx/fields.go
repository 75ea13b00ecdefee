package logx

const (
	FieldAppName        = "app-name"
	FieldAppVersion     = "app-version"
	FieldCollection     = "collection"
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldItemID         = "item-id"
	FieldOutcome        = "outcome"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldRunID          = "run-id"
	FieldTraceID        = "trace-id"
	FieldURL            = "url"
)
