package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Parse and argument errors (100-199)
	ErrCodeInvalidTerm          ErrorCode = 100
	ErrCodeInvalidYield         ErrorCode = 101
	ErrCodeInvalidConfiguration ErrorCode = 102
	ErrCodeMissingArgument      ErrorCode = 103

	// I/O errors (200-299)
	ErrCodeFileNotFound ErrorCode = 200
	ErrCodeReadFailed   ErrorCode = 201
	ErrCodeWriteFailed  ErrorCode = 202

	// Curve precondition errors (300-399)
	ErrCodeEmptyCurve      ErrorCode = 300
	ErrCodeOutOfCurveRange ErrorCode = 301

	// Version errors (400-499)
	ErrCodeVersionMismatch ErrorCode = 400
)

// Category groups error codes by the hundreds digit.
type Category string

const (
	CategoryGeneral      Category = "general"
	CategoryParse        Category = "parse"
	CategoryIO           Category = "io"
	CategoryPrecondition Category = "precondition"
	CategoryVersion      Category = "version"
)

// Category returns the category an error code belongs to.
func (c ErrorCode) Category() Category {
	switch c / 100 {
	case 1:
		return CategoryParse
	case 2:
		return CategoryIO
	case 3:
		return CategoryPrecondition
	case 4:
		return CategoryVersion
	default:
		return CategoryGeneral
	}
}
