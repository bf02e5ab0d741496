package schemarules

import (
	"context"
	"fmt"
	"io"
	"reflect"

	json "github.com/goccy/go-json"
)

// Serialize dumps an instance through the plan's serializers. instance may
// be the struct type the plan was built from or a map of attributes. The
// result is the attribute map with field serializers applied, unless a
// plain model serializer replaced the dump with its own shape.
func (p *Plan) Serialize(instance any, format Format) (any, error) {
	return p.SerializeCtx(context.Background(), instance, format)
}

// SerializeCtx is like [Serialize] with a context, which reaches serializer
// functions through [SerializationInfo].Ctx.
func (p *Plan) SerializeCtx(ctx context.Context, instance any, format Format) (any, error) {
	if ms := p.modelSerializer; ms != nil && ms.descriptor.WhenUsed.applies(instance, format) {
		info := SerializationInfo{Format: format, Ctx: ctx}
		if ms.descriptor.Mode == Wrap {
			// The continuation dumps whatever the rule hands it, so a wrap
			// serializer can substitute the instance before the field pass.
			dump := Handler(func(v any) (any, error) {
				return p.dumpFields(ctx, v, format)
			})
			return ms.adapter.SerializeWrap(instance, instance, dump, info)
		}
		return ms.adapter.Serialize(instance, instance, info)
	}
	return p.dumpFields(ctx, instance, format)
}

// dumpFields produces the attribute map for an instance, applying field
// serializers in declaration order. The default dump of a field value is
// the value itself, which is also what wrap serializers get as their
// continuation.
func (p *Plan) dumpFields(ctx context.Context, instance any, format Format) (map[string]any, error) {
	out := make(map[string]any, len(p.fields))
	for _, f := range p.fields {
		value, ok := p.fieldValue(instance, f.name)
		if !ok {
			continue
		}
		if s := f.serializer; s != nil && s.descriptor.WhenUsed.applies(value, format) {
			info := SerializationInfo{FieldName: f.name, Format: format, Ctx: ctx}
			var err error
			if s.descriptor.Mode == Wrap {
				value, err = s.adapter.SerializeWrap(instance, value, identityHandler, info)
			} else {
				value, err = s.adapter.Serialize(instance, value, info)
			}
			if err != nil {
				return nil, fmt.Errorf("serialize %s: %w", f.name, err)
			}
		}
		out[f.name] = value
	}
	return out, nil
}

var identityHandler = Handler(func(v any) (any, error) { return v, nil })

// fieldValue reads one attribute off a map or struct instance.
func (p *Plan) fieldValue(instance any, name string) (any, bool) {
	switch inst := instance.(type) {
	case nil:
		return nil, false
	case map[string]any:
		v, ok := inst[name]
		return v, ok
	}
	rv := reflect.Indirect(reflect.ValueOf(instance))
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	if fv, ok := structFieldByKey(rv, name); ok {
		return fv.Interface(), true
	}
	return nil, false
}

// structFieldByKey finds the struct field whose attribute name (json tag or
// Go name) matches key, recursing through embedded structs the way
// encoding/json promotes their fields.
func structFieldByKey(structVal reflect.Value, key string) (reflect.Value, bool) {
	t := structVal.Type()
	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous {
			fv := structVal.Field(i)
			if sf.Type.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if fv.Kind() == reflect.Struct {
				if v, ok := structFieldByKey(fv, key); ok {
					return v, ok
				}
			}
			continue
		}
		if !sf.IsExported() {
			continue
		}
		if fieldKey(sf) == key {
			return structVal.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// Marshal serializes an instance with [FormatJSON] and encodes the result.
func (p *Plan) Marshal(instance any) ([]byte, error) {
	out, err := p.Serialize(instance, FormatJSON)
	if err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// Unmarshal decodes JSON, runs the map-stage pipeline over the decoded
// data, and populates dst with the validated result. If dst implements
// [Normalizer] its hook runs once populated; model after validators then
// run against the instance, and their return values are ignored in this
// flow since the instance is mutated in place.
func (p *Plan) Unmarshal(b []byte, dst any) error {
	return p.UnmarshalCtx(context.Background(), b, dst)
}

// Decode is [Unmarshal] for a stream, for handlers reading request bodies.
func (p *Plan) Decode(r io.Reader, dst any) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return p.Unmarshal(b, dst)
}

// UnmarshalCtx is like [Unmarshal] with a context.
func (p *Plan) UnmarshalCtx(ctx context.Context, b []byte, dst any) error {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	validated, err := p.validateData(ctx, raw)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(validated)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(buf, dst); err != nil {
		return err
	}
	if n, ok := dst.(Normalizer); ok {
		n.Normalize()
	}
	for _, m := range p.modelAfter {
		info := ValidationInfo{Data: validated, Present: true, Ctx: ctx}
		if _, err := m.adapter.Validate(dst, dst, info); err != nil {
			return asValidationErrors(err)
		}
	}
	return nil
}
