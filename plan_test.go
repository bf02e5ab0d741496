package schemarules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sr "github.com/Gobd/schemarules"
)

type planOrder struct {
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Notes string `json:"notes" docs:"skip"`
	Token string `json:"-"`
}

func (o *planOrder) Rules() []*sr.FieldRules {
	return []*sr.FieldRules{
		sr.Field(&o.Name, sr.Required),
		sr.Field(&o.Qty, sr.Min(1)),
	}
}

func (o *planOrder) Declarations() []*sr.Marker {
	return []*sr.Marker{
		sr.FieldValidator("name").Mode(sr.Before).MustBind(passThrough),
		sr.FieldSerializer("qty").MustBind(passThrough),
		sr.ModelValidator(sr.After).MustBind(passThrough),
	}
}

func TestPlanFor_StructDefinition(t *testing.T) {
	plan, err := sr.PlanFor(&planOrder{})
	require.NoError(t, err)

	assert.Equal(t, "planOrder", plan.Name())
	assert.Equal(t, []string{"name", "qty", "notes"}, plan.FieldNames())
	assert.True(t, plan.Hidden("notes"))
	assert.False(t, plan.Hidden("name"))
	assert.Len(t, plan.StandardRules("name"), 1)
	assert.Len(t, plan.ValidatorsFor("name"), 1)
	assert.NotNil(t, plan.SerializerFor("qty"))
	assert.Nil(t, plan.SerializerFor("name"))
	assert.NotNil(t, plan.Prototype())
	assert.Empty(t, plan.Warnings())
}

func TestCompile_HandAssembled(t *testing.T) {
	plan, err := sr.Compile(sr.Definition{
		Name: "Signup",
		Fields: []*sr.FieldRules{
			sr.NamedField("email", sr.Required),
			sr.NamedField("age"),
		},
		Markers: []*sr.Marker{
			sr.FieldValidator("age").MustBind(passThrough),
			sr.ModelSerializer().MustBind(passThrough),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "age"}, plan.FieldNames())
	assert.Len(t, plan.ValidatorsFor("age"), 1)
	assert.NotNil(t, plan.ModelSerializer())
	assert.Nil(t, plan.Prototype())
}

func TestCompile_RepeatedFieldsMerge(t *testing.T) {
	plan, err := sr.Compile(sr.Definition{
		Name: "Signup",
		Fields: []*sr.FieldRules{
			sr.NamedField("email", sr.Required),
			sr.NamedField("email", sr.Length(1, 64)),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"email"}, plan.FieldNames())
	assert.Len(t, plan.StandardRules("email"), 2)
}

func TestCompile_StarTargetsEveryField(t *testing.T) {
	plan, err := sr.Compile(sr.Definition{
		Name: "Signup",
		Fields: []*sr.FieldRules{
			sr.NamedField("email"),
			sr.NamedField("age"),
		},
		Markers: []*sr.Marker{
			// "email" repeats the star expansion; the marker still attaches
			// once per attribute.
			sr.FieldValidator("*", "email").MustBind(passThrough),
		},
	})
	require.NoError(t, err)
	assert.Len(t, plan.ValidatorsFor("email"), 1)
	assert.Len(t, plan.ValidatorsFor("age"), 1)
}

func TestCompile_UnknownTarget(t *testing.T) {
	_, err := sr.Compile(sr.Definition{
		Name:    "Signup",
		Fields:  []*sr.FieldRules{sr.NamedField("email")},
		Markers: []*sr.Marker{sr.FieldValidator("zzz").MustBind(passThrough)},
	})
	require.True(t, sr.IsCode(err, sr.CodeUnknownField))
	assert.Contains(t, err.Error(), `unknown attribute "zzz"`)
}

func TestCompile_CheckFieldsWaived(t *testing.T) {
	plan, err := sr.Compile(sr.Definition{
		Name:   "Signup",
		Fields: []*sr.FieldRules{sr.NamedField("email")},
		Markers: []*sr.Marker{
			sr.FieldValidator("extra").CheckFields(false).MustBind(passThrough),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"email", "extra"}, plan.FieldNames())
	assert.Len(t, plan.ValidatorsFor("extra"), 1)
}

func TestCompile_StarSeesFieldsKnownAtAttach(t *testing.T) {
	// "*" fans out over the attributes known when the marker attaches. An
	// attribute admitted by a later CheckFields(false) marker is visible to
	// markers after it, not to star markers that already attached.
	plan, err := sr.Compile(sr.Definition{
		Name:   "Signup",
		Fields: []*sr.FieldRules{sr.NamedField("email")},
		Markers: []*sr.Marker{
			sr.FieldValidator("*").MustBind(passThrough),
			sr.FieldValidator("extra").CheckFields(false).MustBind(passThrough),
			sr.FieldValidator("*").MustBind(passThrough),
		},
	})
	require.NoError(t, err)
	assert.Len(t, plan.ValidatorsFor("email"), 2)
	assert.Len(t, plan.ValidatorsFor("extra"), 2)
}

func TestCompile_DuplicateFieldSerializer(t *testing.T) {
	_, err := sr.Compile(sr.Definition{
		Name:   "Signup",
		Fields: []*sr.FieldRules{sr.NamedField("email")},
		Markers: []*sr.Marker{
			sr.FieldSerializer("email").MustBind(passThrough),
			sr.FieldSerializer("email").MustBind(passThrough),
		},
	})
	require.True(t, sr.IsCode(err, sr.CodeDuplicateSerializer))
	assert.Contains(t, err.Error(), `"email"`)
}

func TestCompile_DuplicateModelSerializer(t *testing.T) {
	_, err := sr.Compile(sr.Definition{
		Name: "Signup",
		Markers: []*sr.Marker{
			sr.ModelSerializer().MustBind(passThrough),
			sr.ModelSerializer().MustBind(passThrough),
		},
	})
	assert.True(t, sr.IsCode(err, sr.CodeDuplicateSerializer))
}

func TestCompile_NilMarker(t *testing.T) {
	_, err := sr.Compile(sr.Definition{
		Name:    "Signup",
		Markers: []*sr.Marker{nil},
	})
	assert.True(t, sr.IsCode(err, sr.CodeNilFunction))
}

func TestCompile_UnnamedAttribute(t *testing.T) {
	_, err := sr.Compile(sr.Definition{
		Name:   "Signup",
		Fields: []*sr.FieldRules{sr.NamedField("")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unnamed attribute")
}

func TestCompile_CollectsWarnings(t *testing.T) {
	plan, err := sr.Compile(sr.Definition{
		Name:   "Signup",
		Fields: []*sr.FieldRules{sr.NamedField("email")},
		Markers: []*sr.Marker{
			sr.Validator("email").MustBind(passThrough),
			sr.RootValidator().SkipOnFailure().MustBind(rootPass),
		},
	})
	require.NoError(t, err)
	require.Len(t, plan.Warnings(), 2)
	assert.Equal(t, sr.WarnDeprecatedValidator, plan.Warnings()[0].Code)
	assert.Equal(t, sr.WarnDeprecatedRootValidator, plan.Warnings()[1].Code)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() {
		sr.MustCompile(sr.Definition{Markers: []*sr.Marker{nil}})
	})
}

func TestMissingRules(t *testing.T) {
	plan, err := sr.Compile(sr.Definition{
		Name: "Signup",
		Fields: []*sr.FieldRules{
			sr.NamedField("email", sr.Required),
			sr.NamedField("age"),
			sr.NamedField("notes"),
		},
		Markers: []*sr.Marker{
			sr.FieldValidator("age").MustBind(passThrough),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"notes"}, sr.MissingRules(plan))
	assert.Empty(t, sr.MissingRules(plan, "notes"))
}

func TestMissingRules_SkipsHidden(t *testing.T) {
	plan, err := sr.PlanFor(&planOrder{})
	require.NoError(t, err)
	// notes is docs:"skip" and carries nothing; it still never counts as
	// missing.
	assert.Empty(t, sr.MissingRules(plan))
}
