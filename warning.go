package schemarules

// Deprecation warning codes.
const (
	// WarnDeprecatedValidator: the legacy [Validator] entry point was used.
	WarnDeprecatedValidator = "deprecated-validator"
	// WarnDeprecatedRootValidator: the legacy [RootValidator] entry point
	// was used.
	WarnDeprecatedRootValidator = "deprecated-root-validator"
	// WarnAllowReuse: AllowReuse was set; rebinding is always permitted and
	// the option does nothing.
	WarnAllowReuse = "allow-reuse-ignored"
)

// Warning is a non-fatal diagnostic attached to a successfully built
// [Marker]. Declarations never log or print; callers that care read the
// marker's warnings and route them to their own sink.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return w.Message
}

func warnDeprecatedValidator() Warning {
	return Warning{
		Code:    WarnDeprecatedValidator,
		Message: "Validator is a legacy declaration style; migrate to FieldValidator",
	}
}

func warnDeprecatedRootValidator() Warning {
	return Warning{
		Code:    WarnDeprecatedRootValidator,
		Message: "RootValidator is a legacy declaration style; migrate to ModelValidator",
	}
}

func warnAllowReuse() Warning {
	return Warning{
		Code:    WarnAllowReuse,
		Message: "AllowReuse is deprecated and ignored; binding the same function to several declarations is always allowed",
	}
}
