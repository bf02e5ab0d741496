package schemarules

import "reflect"

// fieldTargets validates the targets of a field-scoped declaration.
// Targets are attribute names; "*" selects every declared attribute.
// Handing the rule function in place of targets is the classic misuse and
// gets its own message.
func fieldTargets(kind RuleKind, fields []any) ([]string, error) {
	name := builderName(kind)
	if len(fields) == 0 {
		return nil, errorf(CodeNoFields, "%s requires at least one target attribute name", name)
	}
	if len(fields) == 1 {
		if rv := reflect.ValueOf(fields[0]); rv.Kind() == reflect.Func {
			return nil, errorf(CodeNoFields,
				"%s takes target attribute names, not the rule function; write %s(\"name\").Bind(fn) instead of %s(fn)",
				name, name, name)
		}
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		s, ok := f.(string)
		if !ok {
			return nil, errorf(CodeInvalidFields, "%s targets must be attribute names, got %T", name, f)
		}
		if s == "" {
			return nil, errorf(CodeInvalidFields, "%s targets must be non-empty attribute names", name)
		}
		names[i] = s
	}
	return names, nil
}

func builderName(kind RuleKind) string {
	switch kind {
	case KindValidator:
		return "Validator"
	case KindFieldValidator:
		return "FieldValidator"
	case KindRootValidator:
		return "RootValidator"
	case KindModelValidator:
		return "ModelValidator"
	case KindFieldSerializer:
		return "FieldSerializer"
	case KindModelSerializer:
		return "ModelSerializer"
	}
	return string(kind)
}
