package errcodes

// ErrorCode labels a domain error category for reports and logs.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"
	AuthRequired        ErrorCode = "AuthRequired"
	AlreadyExists       ErrorCode = "AlreadyExists"

	ArtifactNotFound    ErrorCode = "ArtifactNotFound"
	ArtifactMalformed   ErrorCode = "ArtifactMalformed"
	TemplateInvalid     ErrorCode = "TemplateInvalid"
	ItemSetInvalid      ErrorCode = "ItemSetInvalid"
	RemoteUnavailable   ErrorCode = "RemoteUnavailable"
	RemoteNotConfigured ErrorCode = "RemoteNotConfigured"
)
