package schemarules

// Convention tags the calling shape a rule function was classified into.
// The engine never inspects the original function again; it dispatches on
// this tag through the marker's [Adapter].
type Convention string

const (
	// ConvValue is func(value) for field-level rules, or the raw data map
	// for model-level before rules.
	ConvValue Convention = "value"
	// ConvValueValues is the legacy func(value, values) shape where values
	// is the map of already-validated attributes.
	ConvValueValues Convention = "value-values"
	// ConvValueNamedValues is ConvValueValues declared through the
	// [ValuesKeywordFunc] named type.
	ConvValueNamedValues Convention = "value-named-values"
	// ConvKeywordArgs is the legacy catch-all shape receiving a kwargs map
	// the adapter assembles (value, values, field).
	ConvKeywordArgs Convention = "keyword-args"
	// ConvValuesKeywordArgs is the legacy func(values, kwargs) shape.
	ConvValuesKeywordArgs Convention = "values-keyword-args"
	// ConvValuesMap is the legacy whole-object shape mapping the raw data
	// map to a replacement map.
	ConvValuesMap Convention = "values-map"
	// ConvValueInfo is func(value, info) with a [ValidationInfo] or
	// [SerializationInfo] argument.
	ConvValueInfo Convention = "value-info"
	// ConvValueWrap is func(value, next) receiving a [Handler] continuation.
	ConvValueWrap Convention = "value-wrap"
	// ConvValueWrapInfo is func(value, next, info).
	ConvValueWrapInfo Convention = "value-wrap-info"
	// ConvBound is func(instance): the rule receives the object being
	// validated or serialized as its first and only argument.
	ConvBound Convention = "bound"
	// ConvBoundInfo is func(instance, info).
	ConvBoundInfo Convention = "bound-info"
	// ConvBoundWrap is func(instance, next) for model-level wrap serializers.
	ConvBoundWrap Convention = "bound-wrap"
	// ConvBoundWrapInfo is func(instance, next, info).
	ConvBoundWrapInfo Convention = "bound-wrap-info"
	// ConvBoundValue is func(instance, value) for field serializers that
	// also need the owning object.
	ConvBoundValue Convention = "bound-value"
	// ConvBoundValueInfo is func(instance, value, info).
	ConvBoundValueInfo Convention = "bound-value-info"
	// ConvBoundValueWrap is func(instance, value, next).
	ConvBoundValueWrap Convention = "bound-value-wrap"
	// ConvBoundValueWrapInfo is func(instance, value, next, info).
	ConvBoundValueWrapInfo Convention = "bound-value-wrap-info"
)

// instanceBound reports whether functions of this convention take the object
// being processed as their first parameter, so the engine must supply it.
func (c Convention) instanceBound() bool {
	switch c {
	case ConvBound, ConvBoundInfo, ConvBoundWrap, ConvBoundWrapInfo,
		ConvBoundValue, ConvBoundValueInfo, ConvBoundValueWrap, ConvBoundValueWrapInfo:
		return true
	}
	return false
}

// Handler is the continuation passed to wrap-mode rules. It runs the
// remainder of the pipeline on the given value and returns the result.
type Handler func(value any) (any, error)

// Named function types spell out authoring intent where Go signatures alone
// would be ambiguous. A plain func(value any, values map[string]any) is the
// positional legacy shape; converting it to [ValuesKeywordFunc] declares the
// keyword-only variant, which classifies under its own convention. The
// Bound* types mark a function as instance-bound, which [Validator],
// [FieldValidator], and [RootValidator] reject.
type (
	// ValuesKeywordFunc is a legacy validator taking the already-validated
	// attribute map through a named (keyword-style) parameter.
	ValuesKeywordFunc func(value any, values map[string]any) (any, error)

	// KeywordArgsFunc is a legacy validator taking a single kwargs map.
	// The adapter populates "value", "values", and "field" keys.
	KeywordArgsFunc func(kwargs map[string]any) (any, error)

	// ValuesKeywordArgsFunc is a legacy validator taking the validated
	// attribute map plus a kwargs map.
	ValuesKeywordArgsFunc func(values, kwargs map[string]any) (any, error)

	// BoundFunc is an instance-bound rule: the object under validation or
	// serialization is passed as the argument.
	BoundFunc func(instance any) (any, error)

	// BoundInfoFunc is an instance-bound rule that also receives the
	// validation info object.
	BoundInfoFunc func(instance any, info ValidationInfo) (any, error)
)
