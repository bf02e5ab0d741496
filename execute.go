package schemarules

import (
	"context"
	"fmt"
	"maps"
	"reflect"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate runs the full pipeline over a decoded data map and returns the
// validated (possibly transformed) attributes. Attribute errors collect
// into [ValidationErrors] keyed by name; model-level failures key under
// [RootKey]. Keys the plan does not declare are dropped.
func (p *Plan) Validate(data map[string]any) (map[string]any, error) {
	return p.ValidateCtx(context.Background(), data)
}

// ValidateCtx is like [Validate] with a context, which reaches rule
// functions through [ValidationInfo].Ctx and context-aware ozzo rules.
func (p *Plan) ValidateCtx(ctx context.Context, data map[string]any) (map[string]any, error) {
	out, err := p.validateData(ctx, data)
	if err != nil {
		return nil, err
	}

	// In the map flow, model after validators see the validated map where
	// the instance would be. A non-map return is a bug in the rule.
	for _, m := range p.modelAfter {
		info := ValidationInfo{Data: out, Present: true, Ctx: ctx}
		res, err := m.adapter.Validate(p.prototype, out, info)
		if err != nil {
			return nil, asValidationErrors(err)
		}
		switch next := res.(type) {
		case nil:
		case map[string]any:
			out = next
		default:
			return nil, ValidationErrors{RootKey: fmt.Errorf(
				"model after validator must return the data map or nil, got %T", res)}
		}
	}
	return out, nil
}

// validateData runs the map-stage pipeline: model pre markers, then the
// field stage enclosed by model wrap markers, then legacy post root
// validators. Post root validators only ever see data that passed field
// validation, which is the skip their declaration acknowledged.
func (p *Plan) validateData(ctx context.Context, data map[string]any) (map[string]any, error) {
	cur := maps.Clone(data)
	if cur == nil {
		cur = map[string]any{}
	}

	for _, m := range p.modelPre {
		info := ValidationInfo{Data: cur, Present: true, Ctx: ctx}
		res, err := m.adapter.Validate(p.prototype, cur, info)
		if err != nil {
			return nil, asValidationErrors(err)
		}
		next, ok := res.(map[string]any)
		if !ok {
			return nil, ValidationErrors{RootKey: fmt.Errorf(
				"model pre validator must return map[string]any, got %T", res)}
		}
		cur = next
	}

	core := Handler(func(v any) (any, error) {
		dm, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("model wrap continuation needs map[string]any, got %T", v)
		}
		out, errs := p.validateFields(ctx, dm)
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	})
	h := core
	// First declared runs outermost, so declaration order is call order.
	for i := len(p.modelWraps) - 1; i >= 0; i-- {
		m := p.modelWraps[i]
		inner := h
		h = func(v any) (any, error) {
			info := ValidationInfo{Present: true, Ctx: ctx}
			if dm, ok := v.(map[string]any); ok {
				info.Data = dm
			}
			return m.adapter.ValidateWrap(p.prototype, v, inner, info)
		}
	}
	res, err := h(cur)
	if err != nil {
		return nil, asValidationErrors(err)
	}
	out, ok := res.(map[string]any)
	if !ok {
		return nil, ValidationErrors{RootKey: fmt.Errorf(
			"model wrap validator must return map[string]any, got %T", res)}
	}

	for _, m := range p.rootPost {
		info := ValidationInfo{Data: out, Present: true, Ctx: ctx}
		res, err := m.adapter.Validate(p.prototype, out, info)
		if err != nil {
			return nil, asValidationErrors(err)
		}
		next, ok := res.(map[string]any)
		if !ok {
			return nil, ValidationErrors{RootKey: fmt.Errorf(
				"root validator must return map[string]any, got %T", res)}
		}
		out = next
	}
	return out, nil
}

// validateFields runs every attribute pipeline in declaration order,
// collecting one error per failing attribute. Validated values accumulate
// into a shared map so legacy values-map conventions see the attributes
// declared before their target.
func (p *Plan) validateFields(ctx context.Context, data map[string]any) (map[string]any, ValidationErrors) {
	out := make(map[string]any, len(p.fields))
	validated := make(map[string]any, len(p.fields))
	errs := ValidationErrors{}
	for _, f := range p.fields {
		value, present := data[f.name]
		res, err := f.run(ctx, p.prototype, value, present, validated)
		if err != nil {
			errs[f.name] = err
			continue
		}
		// Absent attributes stay absent unless a rule supplied a value.
		if present || res != nil {
			out[f.name] = res
			validated[f.name] = res
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return out, nil
}

// run executes one attribute pipeline: before markers, then the wrapped
// core (plain markers if any, the standard ozzo stage otherwise), then
// after markers. Markers skip absent attributes unless declared Always; the
// standard stage always runs so Required can report the absence.
func (f *planField) run(ctx context.Context, owner, value any, present bool, validated map[string]any) (any, error) {
	info := ValidationInfo{FieldName: f.name, Data: validated, Present: present, Ctx: ctx}
	runs := func(m *Marker) bool { return present || m.descriptor.Always }

	v := value
	var err error
	for _, m := range f.befores {
		if !runs(m) {
			continue
		}
		if v, err = applyMarker(m, owner, v, info); err != nil {
			return nil, err
		}
	}

	core := Handler(func(v any) (any, error) {
		if len(f.plains) > 0 {
			var err error
			for _, m := range f.plains {
				if !runs(m) {
					continue
				}
				if v, err = applyMarker(m, owner, v, info); err != nil {
					return nil, err
				}
			}
			return v, nil
		}
		if err := validation.ValidateWithContext(ctx, v, f.rules...); err != nil {
			return nil, err
		}
		return v, nil
	})
	h := core
	for i := len(f.wraps) - 1; i >= 0; i-- {
		m := f.wraps[i]
		if !runs(m) {
			continue
		}
		inner := h
		h = func(v any) (any, error) {
			return m.adapter.ValidateWrap(owner, v, inner, info)
		}
	}
	if v, err = h(v); err != nil {
		return nil, err
	}

	for _, m := range f.afters {
		if !runs(m) {
			continue
		}
		if v, err = applyMarker(m, owner, v, info); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// applyMarker invokes a plain-shaped marker, per element when EachItem.
func applyMarker(m *Marker, owner, value any, info ValidationInfo) (any, error) {
	if !m.descriptor.EachItem {
		return m.adapter.Validate(owner, value, info)
	}
	return applyEach(m, owner, value, info)
}

// applyEach maps the marker over collection elements, collecting errors
// keyed by index or map key. Decoded JSON arrives as []any and
// map[string]any; other slice and map kinds are walked reflectively and
// rebuilt in decoded-JSON shape.
func applyEach(m *Marker, owner, value any, info ValidationInfo) (any, error) {
	switch vv := value.(type) {
	case nil:
		return value, nil
	case []any:
		out := make([]any, len(vv))
		errs := ValidationErrors{}
		for i, item := range vv {
			res, err := m.adapter.Validate(owner, item, info)
			if err != nil {
				errs[strconv.Itoa(i)] = err
				continue
			}
			out[i] = res
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(vv))
		errs := ValidationErrors{}
		for k, item := range vv {
			res, err := m.adapter.Validate(owner, item, info)
			if err != nil {
				errs[k] = err
				continue
			}
			out[k] = res
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		errs := ValidationErrors{}
		for i := range rv.Len() {
			res, err := m.adapter.Validate(owner, rv.Index(i).Interface(), info)
			if err != nil {
				errs[strconv.Itoa(i)] = err
				continue
			}
			out[i] = res
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		errs := ValidationErrors{}
		for _, k := range rv.MapKeys() {
			res, err := m.adapter.Validate(owner, rv.MapIndex(k).Interface(), info)
			key := fmt.Sprintf("%v", k.Interface())
			if err != nil {
				errs[key] = err
				continue
			}
			out[key] = res
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	}
	return nil, fmt.Errorf("each-item validator needs a slice, array, or map, got %T", value)
}
