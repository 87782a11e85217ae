package errors

import (
	"errors"
)

// As is errors.As for *Error targets
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// GetCode extracts the code from an error; plain errors are Internal
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks for CodeNotFound
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks for CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks for CodeFailedPrecondition
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsAborted checks for CodeAborted
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsUnimplemented checks for CodeUnimplemented
func IsUnimplemented(err error) bool {
	return GetCode(err) == CodeUnimplemented
}

// IsInternal checks for CodeInternal
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}
