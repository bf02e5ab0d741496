package schemarules

import (
	"reflect"
	"strings"
)

// The classifiers map a rule function onto the closed set of calling
// conventions its entry point accepts. Classification is total by
// construction: every input either yields a Convention or a targeted
// declaration [Error], never a panic. Shapes that collide on the underlying
// Go signature are told apart through the named types in convention.go.

func classifyValidator(fn any) (Convention, error) {
	switch fn.(type) {
	case nil:
		return "", errNilFunction(KindValidator)
	case func(any) (any, error):
		return ConvValue, nil
	case ValuesKeywordFunc:
		return ConvValueNamedValues, nil
	case func(any, map[string]any) (any, error):
		return ConvValueValues, nil
	case KeywordArgsFunc, func(map[string]any) (any, error):
		return ConvKeywordArgs, nil
	case ValuesKeywordArgsFunc, func(map[string]any, map[string]any) (any, error):
		return ConvValuesKeywordArgs, nil
	case BoundFunc, BoundInfoFunc:
		return "", errInstanceMethod(KindValidator)
	}
	return "", errUnclassifiable(KindValidator, fn,
		"func(value any) (any, error)",
		"func(value any, values map[string]any) (any, error)",
		"ValuesKeywordFunc", "KeywordArgsFunc", "ValuesKeywordArgsFunc")
}

func classifyFieldValidator(fn any, mode Mode) (Convention, error) {
	if fn == nil {
		return "", errNilFunction(KindFieldValidator)
	}
	if mode == Wrap {
		switch fn.(type) {
		case func(any, Handler) (any, error):
			return ConvValueWrap, nil
		case func(any, Handler, ValidationInfo) (any, error):
			return ConvValueWrapInfo, nil
		case BoundFunc, BoundInfoFunc:
			return "", errInstanceMethod(KindFieldValidator)
		case func(any) (any, error), func(any, ValidationInfo) (any, error):
			return "", errorf(CodeUnclassifiable,
				"field validator with Mode(Wrap) must accept a Handler continuation, got %T", fn)
		}
		return "", errUnclassifiable(KindFieldValidator, fn,
			"func(value any, next Handler) (any, error)",
			"func(value any, next Handler, info ValidationInfo) (any, error)")
	}
	switch fn.(type) {
	case func(any) (any, error):
		return ConvValue, nil
	case func(any, ValidationInfo) (any, error):
		return ConvValueInfo, nil
	case BoundFunc, BoundInfoFunc:
		return "", errInstanceMethod(KindFieldValidator)
	case func(any, Handler) (any, error), func(any, Handler, ValidationInfo) (any, error):
		return "", errorf(CodeUnclassifiable,
			"wrap-shaped function %T requires Mode(Wrap), not %q", fn, mode)
	case ValuesKeywordFunc, func(any, map[string]any) (any, error),
		KeywordArgsFunc, func(map[string]any) (any, error),
		ValuesKeywordArgsFunc, func(map[string]any, map[string]any) (any, error):
		return "", errorf(CodeUnclassifiable,
			"legacy values-map signature %T: declare it through Validator, or drop the values parameter", fn)
	}
	return "", errUnclassifiable(KindFieldValidator, fn,
		"func(value any) (any, error)",
		"func(value any, info ValidationInfo) (any, error)")
}

func classifyRootValidator(fn any) (Convention, error) {
	switch fn.(type) {
	case nil:
		return "", errNilFunction(KindRootValidator)
	case func(map[string]any) (map[string]any, error):
		return ConvValuesMap, nil
	case BoundFunc, BoundInfoFunc:
		return "", errInstanceMethod(KindRootValidator)
	}
	return "", errUnclassifiable(KindRootValidator, fn,
		"func(values map[string]any) (map[string]any, error)")
}

func classifyModelValidator(fn any, mode Mode) (Convention, error) {
	if fn == nil {
		return "", errNilFunction(KindModelValidator)
	}
	switch mode {
	case Before:
		switch fn.(type) {
		case func(any) (any, error):
			return ConvValue, nil
		case func(any, ValidationInfo) (any, error):
			return ConvValueInfo, nil
		case BoundFunc, BoundInfoFunc:
			return "", errorf(CodeInstanceMethod,
				"model validator with mode %q runs before the object exists and cannot be instance-bound", mode)
		}
		return "", errUnclassifiable(KindModelValidator, fn,
			"func(data any) (any, error)",
			"func(data any, info ValidationInfo) (any, error)")
	case Wrap:
		switch fn.(type) {
		case func(any, Handler) (any, error):
			return ConvValueWrap, nil
		case func(any, Handler, ValidationInfo) (any, error):
			return ConvValueWrapInfo, nil
		}
		return "", errUnclassifiable(KindModelValidator, fn,
			"func(data any, next Handler) (any, error)",
			"func(data any, next Handler, info ValidationInfo) (any, error)")
	default: // After
		switch fn.(type) {
		case BoundFunc, func(any) (any, error):
			return ConvBound, nil
		case BoundInfoFunc, func(any, ValidationInfo) (any, error):
			return ConvBoundInfo, nil
		}
		return "", errUnclassifiable(KindModelValidator, fn,
			"func(instance any) (any, error)",
			"func(instance any, info ValidationInfo) (any, error)")
	}
}

func classifyFieldSerializer(fn any, mode Mode) (Convention, error) {
	if fn == nil {
		return "", errNilFunction(KindFieldSerializer)
	}
	if mode == Wrap {
		switch fn.(type) {
		case func(any, Handler) (any, error):
			return ConvValueWrap, nil
		case func(any, Handler, SerializationInfo) (any, error):
			return ConvValueWrapInfo, nil
		case func(any, any, Handler) (any, error):
			return ConvBoundValueWrap, nil
		case func(any, any, Handler, SerializationInfo) (any, error):
			return ConvBoundValueWrapInfo, nil
		case BoundFunc, BoundInfoFunc:
			return "", errFieldSerializerBound(fn)
		}
		return "", errUnclassifiable(KindFieldSerializer, fn,
			"func(value any, next Handler) (any, error)",
			"func(value any, next Handler, info SerializationInfo) (any, error)",
			"func(instance, value any, next Handler) (any, error)",
			"func(instance, value any, next Handler, info SerializationInfo) (any, error)")
	}
	switch fn.(type) {
	case func(any) (any, error):
		return ConvValue, nil
	case func(any, SerializationInfo) (any, error):
		return ConvValueInfo, nil
	case func(any, any) (any, error):
		return ConvBoundValue, nil
	case func(any, any, SerializationInfo) (any, error):
		return ConvBoundValueInfo, nil
	case BoundFunc, BoundInfoFunc:
		return "", errFieldSerializerBound(fn)
	case func(any, Handler) (any, error), func(any, Handler, SerializationInfo) (any, error):
		return "", errorf(CodeUnclassifiable,
			"wrap-shaped function %T requires Mode(Wrap), not %q", fn, mode)
	}
	return "", errUnclassifiable(KindFieldSerializer, fn,
		"func(value any) (any, error)",
		"func(value any, info SerializationInfo) (any, error)",
		"func(instance, value any) (any, error)",
		"func(instance, value any, info SerializationInfo) (any, error)")
}

func classifyModelSerializer(fn any, mode Mode) (Convention, error) {
	if fn == nil {
		return "", errNilFunction(KindModelSerializer)
	}
	if mode == Wrap {
		switch fn.(type) {
		case func(any, Handler) (any, error):
			return ConvBoundWrap, nil
		case func(any, Handler, SerializationInfo) (any, error):
			return ConvBoundWrapInfo, nil
		case func() (any, error):
			return "", errModelSerializerInstance()
		}
		return "", errUnclassifiable(KindModelSerializer, fn,
			"func(instance any, next Handler) (any, error)",
			"func(instance any, next Handler, info SerializationInfo) (any, error)")
	}
	switch fn.(type) {
	case BoundFunc, func(any) (any, error):
		return ConvBound, nil
	case func(any, SerializationInfo) (any, error):
		return ConvBoundInfo, nil
	case func() (any, error):
		return "", errModelSerializerInstance()
	}
	return "", errUnclassifiable(KindModelSerializer, fn,
		"func(instance any) (any, error)",
		"func(instance any, info SerializationInfo) (any, error)")
}

func errNilFunction(kind RuleKind) *Error {
	return errorf(CodeNilFunction, "%s: Bind requires a function, got nil", kind)
}

func errInstanceMethod(kind RuleKind) *Error {
	return errorf(CodeInstanceMethod,
		"%s binds by type and cannot take instance-bound functions; accept the value instead of the instance", kind)
}

func errFieldSerializerBound(fn any) *Error {
	return errorf(CodeInstanceMethod,
		"%s: field serializers reach the instance through the two-argument shapes func(instance, value any, ...), not %T", KindFieldSerializer, fn)
}

func errModelSerializerInstance() *Error {
	return errorf(CodeModelSerializerInstance,
		"model serializer functions must accept the instance as their first parameter")
}

func errUnclassifiable(kind RuleKind, fn any, want ...string) *Error {
	if rv := reflect.ValueOf(fn); rv.Kind() != reflect.Func {
		return errorf(CodeUnclassifiable, "%s: %T is not a function", kind, fn)
	}
	return errorf(CodeUnclassifiable,
		"%s: unsupported signature %T; supported: %s", kind, fn, strings.Join(want, ", "))
}
