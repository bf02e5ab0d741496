package schemarules

import (
	"context"
	"fmt"
	"reflect"
	"strings"
)

// Definition is the raw material for [Compile]: an ordered attribute list
// with standard rules, plus declared markers. Build one by hand with
// [NamedField] entries, or from a struct type with [DefinitionOf].
type Definition struct {
	// Name labels the definition in schemas and error text.
	Name string
	// Fields lists attributes in declaration order.
	Fields []*FieldRules
	// Markers holds rule markers in declaration order.
	Markers []*Marker
	// Prototype is the struct pointer the definition was built from, if
	// any. The schema generator uses it for type information.
	Prototype any
}

// DefinitionOf builds a Definition from a struct pointer. Exported fields
// become attributes in declaration order, named by json tag; json:"-"
// fields are left out, docs:"skip" fields validate but stay out of
// generated schemas. Standard rules come from a [Ruler] (or [ContextRuler])
// implementation, markers from [Declarer]. Embedded structs contribute
// their fields flat, and embedded Ruler rules are inlined the same way.
func DefinitionOf(structPtr any) (Definition, error) {
	return DefinitionOfCtx(context.Background(), structPtr)
}

// DefinitionOfCtx is like [DefinitionOf] but passes ctx to [ContextRuler].
func DefinitionOfCtx(ctx context.Context, structPtr any) (Definition, error) {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return Definition{}, fmt.Errorf("definition needs a non-nil struct pointer, got %T", structPtr)
	}
	structVal := rv.Elem()

	def := Definition{
		Name:      structVal.Type().Name(),
		Fields:    collectFields(structVal),
		Prototype: structPtr,
	}

	var declared []*FieldRules
	switch r := structPtr.(type) {
	case Ruler:
		declared = r.Rules()
	case ContextRuler:
		declared = r.Rules(ctx)
	}
	declared = expandEmbedded(ctx, structPtr, declared)
	if err := resolveNames(declared, structVal); err != nil {
		return Definition{}, err
	}

	byName := make(map[string]*FieldRules, len(def.Fields))
	for _, f := range def.Fields {
		byName[f.name] = f
	}
	for _, fr := range declared {
		tgt, ok := byName[fr.name]
		if !ok {
			return Definition{}, fmt.Errorf("rules declared for unknown attribute %q in %s", fr.name, def.Name)
		}
		tgt.rules = append(tgt.rules, fr.rules...)
	}

	if d, ok := structPtr.(Declarer); ok {
		def.Markers = d.Declarations()
	}
	return def, nil
}

// collectFields walks the struct in declaration order. Embedded structs are
// flattened the way encoding/json promotes their fields.
func collectFields(structVal reflect.Value) []*FieldRules {
	var out []*FieldRules
	t := structVal.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			fv := structVal.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				if fv.IsNil() {
					fv = reflect.New(sf.Type.Elem()).Elem()
				} else {
					fv = fv.Elem()
				}
			}
			if fv.Kind() == reflect.Struct {
				out = append(out, collectFields(fv)...)
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		tag := strings.Split(sf.Tag.Get("json"), ",")[0]
		if tag == "-" {
			continue
		}
		out = append(out, &FieldRules{
			name:   fieldKey(sf),
			hidden: strings.Split(sf.Tag.Get("docs"), ",")[0] == "skip",
		})
	}
	return out
}

// fieldKey returns the attribute name for a struct field: the json tag name
// when present, the Go field name otherwise.
func fieldKey(sf reflect.StructField) string {
	if tag := strings.Split(sf.Tag.Get("json"), ",")[0]; tag != "" {
		return tag
	}
	return sf.Name
}

// resolveNames maps pointer-bound FieldRules to attribute names via struct
// field address comparison.
func resolveNames(fields []*FieldRules, structVal reflect.Value) error {
	for i, fr := range fields {
		if fr.name != "" || fr.fieldPtr == nil {
			continue
		}
		fv := reflect.ValueOf(fr.fieldPtr)
		if fv.Kind() != reflect.Ptr {
			return fmt.Errorf("rule target at index %d must be a field pointer, got %s", i, fv.Kind())
		}
		sf := findStructField(structVal, fv)
		if sf == nil {
			return fmt.Errorf("rule target at index %d not found in struct %s", i, structVal.Type())
		}
		fr.name = fieldKey(*sf)
	}
	return nil
}

// findStructField locates the struct field fieldPtr points at. The address
// of an embedded struct equals the address of its first field, so a type
// comparison breaks the tie before recursing into anonymous fields.
func findStructField(structVal reflect.Value, fieldPtr reflect.Value) *reflect.StructField {
	ptr := fieldPtr.Pointer()
	for i := range structVal.NumField() {
		sf := structVal.Type().Field(i)
		fv := structVal.Field(i)
		if fv.CanAddr() && fv.Addr().Pointer() == ptr && sf.Type == fieldPtr.Elem().Type() {
			return &sf
		}
		if sf.Anonymous {
			if sf.Type.Kind() == reflect.Ptr {
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if found := findStructField(fv, fieldPtr); found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// expandEmbedded inlines the rules of embedded Ruler fields so error keys
// and schema properties stay flat rather than nesting under the embedded
// struct's name.
func expandEmbedded(ctx context.Context, structPtr any, fields []*FieldRules) []*FieldRules {
	structVal := reflect.Indirect(reflect.ValueOf(structPtr))
	if !structVal.IsValid() || structVal.Kind() != reflect.Struct {
		return fields
	}
	out := make([]*FieldRules, 0, len(fields))
	for _, fr := range fields {
		if fr.fieldPtr != nil {
			if fv := reflect.ValueOf(fr.fieldPtr); fv.Kind() == reflect.Ptr {
				if sf := findStructField(structVal, fv); sf != nil && sf.Anonymous {
					if r, ok := fr.fieldPtr.(Ruler); ok {
						out = append(out, expandEmbedded(ctx, fr.fieldPtr, r.Rules())...)
						continue
					}
					if r, ok := fr.fieldPtr.(ContextRuler); ok {
						out = append(out, expandEmbedded(ctx, fr.fieldPtr, r.Rules(ctx))...)
						continue
					}
				}
			}
		}
		out = append(out, fr)
	}
	return out
}
