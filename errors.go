package schemarules

import (
	"errors"
	"fmt"
)

// Declaration error codes. Stable strings, safe to match on.
const (
	// CodeNoFields: a field-targeted declaration named no target attributes,
	// or was handed the rule function in place of targets.
	CodeNoFields = "validator-no-fields"
	// CodeInvalidFields: a target was not a non-empty string.
	CodeInvalidFields = "validator-invalid-fields"
	// CodeInstanceMethod: an instance-bound function was given to a
	// declaration that binds by type.
	CodeInstanceMethod = "validator-instance-method"
	// CodeModelSerializerInstance: a model serializer function does not
	// accept the instance as its first parameter.
	CodeModelSerializerInstance = "model-serializer-instance-method"
	// CodeRootPreSkip: a non-pre root validator without SkipOnFailure.
	CodeRootPreSkip = "root-validator-pre-skip"
	// CodeInvalidMode: a mode the declaring entry point does not support.
	CodeInvalidMode = "validator-invalid-mode"
	// CodeUnclassifiable: the function matches none of the calling
	// conventions the entry point accepts.
	CodeUnclassifiable = "validator-signature"
	// CodeNilFunction: Bind was called with nil.
	CodeNilFunction = "validator-nil-function"
	// CodeUnknownField: a marker targets an attribute the definition does
	// not declare and check_fields is on.
	CodeUnknownField = "validator-unknown-field"
	// CodeDuplicateSerializer: two serializers claim the same target.
	CodeDuplicateSerializer = "duplicate-serializer"
)

// Error is a declaration-time failure: misused targets, unsupported modes,
// unclassifiable functions. It is returned from Bind and [Compile]; nothing
// is registered when one occurs.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errorf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// IsCode reports whether err is a declaration [Error] with the given code.
func IsCode(err error, code string) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == code
}
