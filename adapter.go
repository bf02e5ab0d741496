package schemarules

import "fmt"

// Adapter presents every rule to the engine through one of four fixed
// shapes, chosen by kind and mode at Bind time. Exactly one field is
// non-nil. Each closure captures the original function at its concrete
// type; nothing reflects at call time.
type Adapter struct {
	// Validate runs before, after, and plain validators. owner is the
	// definition prototype; instance-bound rules receive the object
	// through value.
	Validate func(owner, value any, info ValidationInfo) (any, error)
	// ValidateWrap runs wrap-mode validators with the continuation for the
	// remainder of the pipeline.
	ValidateWrap func(owner, value any, next Handler, info ValidationInfo) (any, error)
	// Serialize runs plain-mode serializers.
	Serialize func(instance, value any, info SerializationInfo) (any, error)
	// SerializeWrap runs wrap-mode serializers with the default-dump
	// continuation.
	SerializeWrap func(instance, value any, next Handler, info SerializationInfo) (any, error)
}

// kwargsFor assembles the catch-all map legacy kwargs validators receive.
func kwargsFor(value any, info ValidationInfo) map[string]any {
	return map[string]any{
		"value":  value,
		"values": info.Data,
		"field":  info.FieldName,
	}
}

// validateAdapter normalizes a classified validator function. Functions
// that ignore the info object still get called without it; functions that
// want more than the engine passes get the missing pieces synthesized
// (kwargs maps) or dropped (unused continuations never happen here).
func validateAdapter(conv Convention, fn any) Adapter {
	switch conv {
	case ConvValue:
		f := fn.(func(any) (any, error))
		return Adapter{Validate: func(_, value any, _ ValidationInfo) (any, error) {
			return f(value)
		}}
	case ConvValueNamedValues:
		f := fn.(ValuesKeywordFunc)
		return Adapter{Validate: func(_, value any, info ValidationInfo) (any, error) {
			return f(value, info.Data)
		}}
	case ConvValueValues:
		f := fn.(func(any, map[string]any) (any, error))
		return Adapter{Validate: func(_, value any, info ValidationInfo) (any, error) {
			return f(value, info.Data)
		}}
	case ConvKeywordArgs:
		f := asKeywordArgs(fn)
		return Adapter{Validate: func(_, value any, info ValidationInfo) (any, error) {
			return f(kwargsFor(value, info))
		}}
	case ConvValuesKeywordArgs:
		f := asValuesKeywordArgs(fn)
		return Adapter{Validate: func(_, value any, info ValidationInfo) (any, error) {
			return f(info.Data, kwargsFor(value, info))
		}}
	case ConvValuesMap:
		f := fn.(func(map[string]any) (map[string]any, error))
		return Adapter{Validate: func(_, value any, _ ValidationInfo) (any, error) {
			data, ok := value.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("root validator needs map[string]any data, got %T", value)
			}
			out, err := f(data)
			if err != nil {
				return nil, err
			}
			return out, nil
		}}
	case ConvValueInfo:
		f := fn.(func(any, ValidationInfo) (any, error))
		return Adapter{Validate: func(_, value any, info ValidationInfo) (any, error) {
			return f(value, info)
		}}
	case ConvBound:
		f := asBound(fn)
		return Adapter{Validate: func(_, value any, _ ValidationInfo) (any, error) {
			return f(value)
		}}
	case ConvBoundInfo:
		f := asBoundInfo(fn)
		return Adapter{Validate: func(_, value any, info ValidationInfo) (any, error) {
			return f(value, info)
		}}
	case ConvValueWrap:
		f := fn.(func(any, Handler) (any, error))
		return Adapter{ValidateWrap: func(_, value any, next Handler, _ ValidationInfo) (any, error) {
			return f(value, next)
		}}
	case ConvValueWrapInfo:
		f := fn.(func(any, Handler, ValidationInfo) (any, error))
		return Adapter{ValidateWrap: func(_, value any, next Handler, info ValidationInfo) (any, error) {
			return f(value, next, info)
		}}
	}
	panic(fmt.Sprintf("schemarules: no validator adapter for convention %q", conv))
}

// serializeAdapter normalizes a classified serializer function.
func serializeAdapter(conv Convention, fn any) Adapter {
	switch conv {
	case ConvValue:
		f := fn.(func(any) (any, error))
		return Adapter{Serialize: func(_, value any, _ SerializationInfo) (any, error) {
			return f(value)
		}}
	case ConvValueInfo:
		f := fn.(func(any, SerializationInfo) (any, error))
		return Adapter{Serialize: func(_, value any, info SerializationInfo) (any, error) {
			return f(value, info)
		}}
	case ConvBound:
		f := asBound(fn)
		return Adapter{Serialize: func(instance, _ any, _ SerializationInfo) (any, error) {
			return f(instance)
		}}
	case ConvBoundInfo:
		f := fn.(func(any, SerializationInfo) (any, error))
		return Adapter{Serialize: func(instance, _ any, info SerializationInfo) (any, error) {
			return f(instance, info)
		}}
	case ConvBoundValue:
		f := fn.(func(any, any) (any, error))
		return Adapter{Serialize: func(instance, value any, _ SerializationInfo) (any, error) {
			return f(instance, value)
		}}
	case ConvBoundValueInfo:
		f := fn.(func(any, any, SerializationInfo) (any, error))
		return Adapter{Serialize: func(instance, value any, info SerializationInfo) (any, error) {
			return f(instance, value, info)
		}}
	case ConvValueWrap:
		f := fn.(func(any, Handler) (any, error))
		return Adapter{SerializeWrap: func(_, value any, next Handler, _ SerializationInfo) (any, error) {
			return f(value, next)
		}}
	case ConvValueWrapInfo:
		f := fn.(func(any, Handler, SerializationInfo) (any, error))
		return Adapter{SerializeWrap: func(_, value any, next Handler, info SerializationInfo) (any, error) {
			return f(value, next, info)
		}}
	case ConvBoundWrap:
		f := fn.(func(any, Handler) (any, error))
		return Adapter{SerializeWrap: func(instance, _ any, next Handler, _ SerializationInfo) (any, error) {
			return f(instance, next)
		}}
	case ConvBoundWrapInfo:
		f := fn.(func(any, Handler, SerializationInfo) (any, error))
		return Adapter{SerializeWrap: func(instance, _ any, next Handler, info SerializationInfo) (any, error) {
			return f(instance, next, info)
		}}
	case ConvBoundValueWrap:
		// The engine always offers an info object; this shape drops it.
		f := fn.(func(any, any, Handler) (any, error))
		return Adapter{SerializeWrap: func(instance, value any, next Handler, _ SerializationInfo) (any, error) {
			return f(instance, value, next)
		}}
	case ConvBoundValueWrapInfo:
		f := fn.(func(any, any, Handler, SerializationInfo) (any, error))
		return Adapter{SerializeWrap: func(instance, value any, next Handler, info SerializationInfo) (any, error) {
			return f(instance, value, next, info)
		}}
	}
	panic(fmt.Sprintf("schemarules: no serializer adapter for convention %q", conv))
}

// The as* helpers erase the named/unnamed distinction once classification
// has recorded it in the convention tag.

func asKeywordArgs(fn any) func(map[string]any) (any, error) {
	switch f := fn.(type) {
	case KeywordArgsFunc:
		return f
	case func(map[string]any) (any, error):
		return f
	}
	panic(fmt.Sprintf("schemarules: not a kwargs function: %T", fn))
}

func asValuesKeywordArgs(fn any) func(map[string]any, map[string]any) (any, error) {
	switch f := fn.(type) {
	case ValuesKeywordArgsFunc:
		return f
	case func(map[string]any, map[string]any) (any, error):
		return f
	}
	panic(fmt.Sprintf("schemarules: not a values+kwargs function: %T", fn))
}

func asBound(fn any) func(any) (any, error) {
	switch f := fn.(type) {
	case BoundFunc:
		return f
	case func(any) (any, error):
		return f
	}
	panic(fmt.Sprintf("schemarules: not an instance-bound function: %T", fn))
}

func asBoundInfo(fn any) func(any, ValidationInfo) (any, error) {
	switch f := fn.(type) {
	case BoundInfoFunc:
		return f
	case func(any, ValidationInfo) (any, error):
		return f
	}
	panic(fmt.Sprintf("schemarules: not an instance-bound info function: %T", fn))
}
