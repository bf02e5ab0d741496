package schemarules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sr "github.com/Gobd/schemarules"
)

// ============ Shared rule functions ============

func passThrough(v any) (any, error) { return v, nil }

func upperValue(v any) (any, error) {
	if s, ok := v.(string); ok {
		return strings.ToUpper(s), nil
	}
	return v, nil
}

func rootPass(data map[string]any) (map[string]any, error) { return data, nil }

// ============ Classification ============

func TestClassify_Validator(t *testing.T) {
	tests := []struct {
		name string
		fn   any
		conv sr.Convention
	}{
		{"value", passThrough, sr.ConvValue},
		{"value+values", func(v any, values map[string]any) (any, error) { return v, nil }, sr.ConvValueValues},
		{"named values", sr.ValuesKeywordFunc(func(v any, values map[string]any) (any, error) { return v, nil }), sr.ConvValueNamedValues},
		{"kwargs", func(kwargs map[string]any) (any, error) { return kwargs["value"], nil }, sr.ConvKeywordArgs},
		{"named kwargs", sr.KeywordArgsFunc(func(kwargs map[string]any) (any, error) { return kwargs["value"], nil }), sr.ConvKeywordArgs},
		{"values+kwargs", func(values, kwargs map[string]any) (any, error) { return kwargs["value"], nil }, sr.ConvValuesKeywordArgs},
		{"named values+kwargs", sr.ValuesKeywordArgsFunc(func(values, kwargs map[string]any) (any, error) { return kwargs["value"], nil }), sr.ConvValuesKeywordArgs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := sr.Validator("x").Bind(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.conv, m.Descriptor().Convention)
		})
	}
}

func TestClassify_FieldValidator(t *testing.T) {
	tests := []struct {
		name string
		mode sr.Mode
		fn   any
		conv sr.Convention
	}{
		{"value", sr.After, passThrough, sr.ConvValue},
		{"value+info", sr.After, func(v any, info sr.ValidationInfo) (any, error) { return v, nil }, sr.ConvValueInfo},
		{"wrap", sr.Wrap, func(v any, next sr.Handler) (any, error) { return next(v) }, sr.ConvValueWrap},
		{"wrap+info", sr.Wrap, func(v any, next sr.Handler, info sr.ValidationInfo) (any, error) { return next(v) }, sr.ConvValueWrapInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := sr.FieldValidator("x").Mode(tt.mode).Bind(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.conv, m.Descriptor().Convention)
			assert.False(t, m.Descriptor().InstanceBound)
		})
	}
}

func TestClassify_ModelValidator(t *testing.T) {
	tests := []struct {
		name  string
		mode  sr.Mode
		fn    any
		conv  sr.Convention
		bound bool
	}{
		{"before value", sr.Before, passThrough, sr.ConvValue, false},
		{"before value+info", sr.Before, func(v any, info sr.ValidationInfo) (any, error) { return v, nil }, sr.ConvValueInfo, false},
		{"wrap", sr.Wrap, func(v any, next sr.Handler) (any, error) { return next(v) }, sr.ConvValueWrap, false},
		{"after plain func", sr.After, passThrough, sr.ConvBound, true},
		{"after named bound", sr.After, sr.BoundFunc(passThrough), sr.ConvBound, true},
		{"after bound+info", sr.After, func(inst any, info sr.ValidationInfo) (any, error) { return inst, nil }, sr.ConvBoundInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := sr.ModelValidator(tt.mode).Bind(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.conv, m.Descriptor().Convention)
			assert.Equal(t, tt.bound, m.Descriptor().InstanceBound)
		})
	}
}

func TestClassify_FieldSerializer(t *testing.T) {
	tests := []struct {
		name string
		mode sr.Mode
		fn   any
		conv sr.Convention
	}{
		{"value", sr.Plain, passThrough, sr.ConvValue},
		{"value+info", sr.Plain, func(v any, info sr.SerializationInfo) (any, error) { return v, nil }, sr.ConvValueInfo},
		{"instance+value", sr.Plain, func(inst, v any) (any, error) { return v, nil }, sr.ConvBoundValue},
		{"instance+value+info", sr.Plain, func(inst, v any, info sr.SerializationInfo) (any, error) { return v, nil }, sr.ConvBoundValueInfo},
		{"wrap", sr.Wrap, func(v any, next sr.Handler) (any, error) { return next(v) }, sr.ConvValueWrap},
		{"wrap+info", sr.Wrap, func(v any, next sr.Handler, info sr.SerializationInfo) (any, error) { return next(v) }, sr.ConvValueWrapInfo},
		{"instance wrap", sr.Wrap, func(inst, v any, next sr.Handler) (any, error) { return next(v) }, sr.ConvBoundValueWrap},
		{"instance wrap+info", sr.Wrap, func(inst, v any, next sr.Handler, info sr.SerializationInfo) (any, error) { return next(v) }, sr.ConvBoundValueWrapInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := sr.FieldSerializer("x").Mode(tt.mode).Bind(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.conv, m.Descriptor().Convention)
		})
	}
}

func TestClassify_ModelSerializer(t *testing.T) {
	tests := []struct {
		name string
		mode sr.Mode
		fn   any
		conv sr.Convention
	}{
		{"instance", sr.Plain, passThrough, sr.ConvBound},
		{"instance+info", sr.Plain, func(inst any, info sr.SerializationInfo) (any, error) { return inst, nil }, sr.ConvBoundInfo},
		{"wrap", sr.Wrap, func(inst any, next sr.Handler) (any, error) { return next(inst) }, sr.ConvBoundWrap},
		{"wrap+info", sr.Wrap, func(inst any, next sr.Handler, info sr.SerializationInfo) (any, error) { return next(inst) }, sr.ConvBoundWrapInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := sr.ModelSerializer().Mode(tt.mode).Bind(tt.fn)
			require.NoError(t, err)
			assert.Equal(t, tt.conv, m.Descriptor().Convention)
			assert.True(t, m.Descriptor().InstanceBound)
		})
	}
}

// --- Everything outside the enumerated shapes fails deterministically ---

func TestClassify_UnsupportedSignatures(t *testing.T) {
	tests := []struct {
		name string
		bind func() (*sr.Marker, error)
	}{
		{"no results", func() (*sr.Marker, error) { return sr.FieldValidator("x").Bind(func(v any) {}) }},
		{"one result", func() (*sr.Marker, error) { return sr.FieldValidator("x").Bind(func(v any) any { return v }) }},
		{"three params", func() (*sr.Marker, error) {
			return sr.FieldValidator("x").Bind(func(a, b, c any) (any, error) { return a, nil })
		}},
		{"typed value", func() (*sr.Marker, error) {
			return sr.FieldValidator("x").Bind(func(s string) (string, error) { return s, nil })
		}},
		{"root wrong shape", func() (*sr.Marker, error) { return sr.RootValidator().Pre().Bind(passThrough) }},
		{"model wrap plain fn", func() (*sr.Marker, error) { return sr.ModelValidator(sr.Wrap).Bind(passThrough) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.bind()
			assert.Nil(t, m)
			assert.True(t, sr.IsCode(err, sr.CodeUnclassifiable), "got %v", err)
		})
	}
}

func TestClassify_NotAFunction(t *testing.T) {
	_, err := sr.FieldValidator("x").Bind(42)
	require.True(t, sr.IsCode(err, sr.CodeUnclassifiable))
	assert.Contains(t, err.Error(), "not a function")
}

func TestClassify_NilFunction(t *testing.T) {
	for _, bind := range []func() (*sr.Marker, error){
		func() (*sr.Marker, error) { return sr.Validator("x").Bind(nil) },
		func() (*sr.Marker, error) { return sr.FieldValidator("x").Bind(nil) },
		func() (*sr.Marker, error) { return sr.RootValidator().Pre().Bind(nil) },
		func() (*sr.Marker, error) { return sr.ModelValidator(sr.After).Bind(nil) },
		func() (*sr.Marker, error) { return sr.FieldSerializer("x").Bind(nil) },
		func() (*sr.Marker, error) { return sr.ModelSerializer().Bind(nil) },
	} {
		m, err := bind()
		assert.Nil(t, m)
		assert.True(t, sr.IsCode(err, sr.CodeNilFunction), "got %v", err)
	}
}

// ============ Target validation ============

func TestTargets_BareFunction(t *testing.T) {
	m, err := sr.Validator(upperValue).Bind(upperValue)
	assert.Nil(t, m)
	require.True(t, sr.IsCode(err, sr.CodeNoFields))
	assert.Contains(t, err.Error(), "takes target attribute names")
}

func TestTargets_Empty(t *testing.T) {
	_, err := sr.Validator().Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeNoFields))

	_, err = sr.FieldSerializer().Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeNoFields))
}

func TestTargets_NonString(t *testing.T) {
	_, err := sr.FieldValidator(42).Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidFields))
}

func TestTargets_EmptyString(t *testing.T) {
	_, err := sr.FieldValidator("").Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidFields))
}

func TestTargets_Multiple(t *testing.T) {
	m, err := sr.FieldValidator("name", "title").Bind(passThrough)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "title"}, m.Descriptor().Fields)
}

// ============ Instance binding direction ============

func TestValidator_RejectsInstanceBound(t *testing.T) {
	_, err := sr.Validator("x").Bind(sr.BoundFunc(passThrough))
	assert.True(t, sr.IsCode(err, sr.CodeInstanceMethod))
}

func TestFieldValidator_RejectsInstanceBound(t *testing.T) {
	_, err := sr.FieldValidator("x").Bind(sr.BoundInfoFunc(func(inst any, info sr.ValidationInfo) (any, error) { return inst, nil }))
	assert.True(t, sr.IsCode(err, sr.CodeInstanceMethod))
}

func TestFieldSerializer_RejectsInstanceBound(t *testing.T) {
	_, err := sr.FieldSerializer("x").Bind(sr.BoundFunc(passThrough))
	require.True(t, sr.IsCode(err, sr.CodeInstanceMethod))
	assert.Contains(t, err.Error(), "func(instance, value any")

	_, err = sr.FieldSerializer("x").Mode(sr.Wrap).Bind(sr.BoundInfoFunc(func(inst any, info sr.ValidationInfo) (any, error) { return inst, nil }))
	require.True(t, sr.IsCode(err, sr.CodeInstanceMethod))
	assert.Contains(t, err.Error(), "func(instance, value any")
}

func TestModelValidator_Before_RejectsInstanceBound(t *testing.T) {
	_, err := sr.ModelValidator(sr.Before).Bind(sr.BoundFunc(passThrough))
	require.True(t, sr.IsCode(err, sr.CodeInstanceMethod))
	assert.Contains(t, err.Error(), "before the object exists")
}

func TestModelSerializer_RequiresInstanceParameter(t *testing.T) {
	_, err := sr.ModelSerializer().Bind(func() (any, error) { return nil, nil })
	assert.True(t, sr.IsCode(err, sr.CodeModelSerializerInstance))

	_, err = sr.ModelSerializer().Mode(sr.Wrap).Bind(func() (any, error) { return nil, nil })
	assert.True(t, sr.IsCode(err, sr.CodeModelSerializerInstance))
}

// ============ Modes ============

func TestFieldValidator_InvalidMode(t *testing.T) {
	_, err := sr.FieldValidator("x").Mode("sideways").Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidMode))
}

func TestFieldValidator_WrapShapeNeedsWrapMode(t *testing.T) {
	_, err := sr.FieldValidator("x").Bind(func(v any, next sr.Handler) (any, error) { return next(v) })
	require.True(t, sr.IsCode(err, sr.CodeUnclassifiable))
	assert.Contains(t, err.Error(), "Mode(Wrap)")
}

func TestFieldValidator_WrapModeNeedsHandler(t *testing.T) {
	_, err := sr.FieldValidator("x").Mode(sr.Wrap).Bind(passThrough)
	require.True(t, sr.IsCode(err, sr.CodeUnclassifiable))
	assert.Contains(t, err.Error(), "Handler")
}

func TestFieldValidator_LegacyShapeRedirects(t *testing.T) {
	_, err := sr.FieldValidator("x").Bind(func(v any, values map[string]any) (any, error) { return v, nil })
	require.True(t, sr.IsCode(err, sr.CodeUnclassifiable))
	assert.Contains(t, err.Error(), "Validator")
}

func TestModelValidator_InvalidMode(t *testing.T) {
	_, err := sr.ModelValidator(sr.Plain).Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidMode))
}

func TestFieldSerializer_InvalidMode(t *testing.T) {
	_, err := sr.FieldSerializer("x").Mode(sr.Before).Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidMode))
}

func TestSerializer_InvalidWhenUsed(t *testing.T) {
	_, err := sr.FieldSerializer("x").WhenUsed("sometimes").Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidMode))

	_, err = sr.ModelSerializer().WhenUsed("sometimes").Bind(passThrough)
	assert.True(t, sr.IsCode(err, sr.CodeInvalidMode))
}

// ============ Legacy gates and warnings ============

func TestRootValidator_PostNeedsSkipOnFailure(t *testing.T) {
	m, err := sr.RootValidator().Bind(rootPass)
	assert.Nil(t, m)
	require.True(t, sr.IsCode(err, sr.CodeRootPreSkip))

	_, err = sr.RootValidator().SkipOnFailure().Bind(rootPass)
	assert.NoError(t, err)

	_, err = sr.RootValidator().Pre().Bind(rootPass)
	assert.NoError(t, err)
}

func TestRootValidator_GateBeforeClassification(t *testing.T) {
	// The gate error wins even when the function would not classify.
	_, err := sr.RootValidator().Bind(42)
	assert.True(t, sr.IsCode(err, sr.CodeRootPreSkip))
}

func TestValidator_DeprecationWarning(t *testing.T) {
	m := sr.Validator("name").MustBind(passThrough)
	require.Len(t, m.Warnings(), 1)
	assert.Equal(t, sr.WarnDeprecatedValidator, m.Warnings()[0].Code)
	assert.Equal(t, sr.After, m.Descriptor().Mode)
}

func TestValidator_AllowReuseWarning(t *testing.T) {
	m := sr.Validator("name").AllowReuse().MustBind(passThrough)
	require.Len(t, m.Warnings(), 2)
	assert.Equal(t, sr.WarnDeprecatedValidator, m.Warnings()[0].Code)
	assert.Equal(t, sr.WarnAllowReuse, m.Warnings()[1].Code)
}

func TestRootValidator_DeprecationWarning(t *testing.T) {
	m := sr.RootValidator().Pre().MustBind(rootPass)
	require.Len(t, m.Warnings(), 1)
	assert.Equal(t, sr.WarnDeprecatedRootValidator, m.Warnings()[0].Code)
}

func TestFieldValidator_NoWarnings(t *testing.T) {
	m := sr.FieldValidator("name").MustBind(passThrough)
	assert.Empty(t, m.Warnings())
}

// ============ Descriptors and markers ============

func TestDescriptor_Idempotent(t *testing.T) {
	m1 := sr.FieldValidator("age").Mode(sr.Before).MustBind(passThrough)
	m2 := sr.FieldValidator("age").Mode(sr.Before).MustBind(passThrough)
	assert.True(t, m1.Descriptor().Equal(m2.Descriptor()))
	assert.NotSame(t, m1, m2)
}

func TestDescriptor_OptionsChangeEquality(t *testing.T) {
	base := sr.FieldValidator("age").MustBind(passThrough).Descriptor()
	assert.False(t, base.Equal(sr.FieldValidator("name").MustBind(passThrough).Descriptor()))
	assert.False(t, base.Equal(sr.FieldValidator("age").Mode(sr.Before).MustBind(passThrough).Descriptor()))
	assert.False(t, base.Equal(sr.FieldValidator("age").CheckFields(false).MustBind(passThrough).Descriptor()))
}

func TestValidator_OptionsRecorded(t *testing.T) {
	m := sr.Validator("tags").Pre().EachItem().Always().CheckFields(false).MustBind(passThrough)
	d := m.Descriptor()
	assert.Equal(t, sr.Before, d.Mode)
	assert.True(t, d.EachItem)
	assert.True(t, d.Always)
	assert.False(t, d.CheckFields)
}

func TestSerializer_OptionsRecorded(t *testing.T) {
	m := sr.FieldSerializer("total").WhenUsed(sr.WhenJSONUnlessNil).JSONType(sr.JSONTypeString).MustBind(passThrough)
	d := m.Descriptor()
	assert.Equal(t, sr.KindFieldSerializer, d.Kind)
	assert.Equal(t, sr.WhenJSONUnlessNil, d.WhenUsed)
	assert.Equal(t, sr.JSONTypeString, d.JSONType)
}

func TestMarker_OriginalPreserved(t *testing.T) {
	m := sr.FieldValidator("x").MustBind(upperValue)
	orig, ok := m.Original().(func(any) (any, error))
	require.True(t, ok)
	out, err := orig("abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", out)
}

func TestMustBind_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { sr.FieldValidator().MustBind(passThrough) })
	assert.Panics(t, func() { sr.RootValidator().MustBind(rootPass) })
	assert.Panics(t, func() { sr.ModelValidator("sideways").MustBind(passThrough) })
}
