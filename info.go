package schemarules

import "context"

// ValidationInfo carries per-call context into validator functions that ask
// for it. The engine builds a fresh value for every invocation.
type ValidationInfo struct {
	// FieldName is the target attribute, or "" for model-level rules.
	FieldName string
	// Data holds the attributes validated so far, in declaration order.
	// Legacy values-map conventions receive this same map.
	Data map[string]any
	// Present is false when the target attribute was absent from the input
	// and the rule runs anyway (see [ValidatorBuilder.Always]).
	Present bool
	// Ctx is the context passed to [Plan.ValidateCtx].
	Ctx context.Context
}

// SerializationInfo carries per-call context into serializer functions.
type SerializationInfo struct {
	// FieldName is the target attribute, or "" for model serializers.
	FieldName string
	// Format is the dump flavor requested from [Plan.Serialize].
	Format Format
	// Ctx is the context passed to [Plan.SerializeCtx].
	Ctx context.Context
}
