package schemarules

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type thresholdRule struct {
	validation.ThresholdRule
	threshold any
	min       bool
}

// Min returns a standard rule that checks if a value is greater than or
// equal to the threshold. Decoded JSON numbers (float64) and numeric
// strings are coerced to the threshold's kind before comparing.
func Min(threshold any) validation.Rule {
	return thresholdRule{validation.Min(threshold), threshold, true}
}

// Max is like [Min] for an upper bound.
func Max(threshold any) validation.Rule {
	return thresholdRule{validation.Max(threshold), threshold, false}
}

func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	if v, ok := value.(fmt.Stringer); ok {
		value = v.String()
	}

	switch reflect.ValueOf(r.threshold).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch v := value.(type) {
		case string:
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return errors.New("must be an integer")
			}
			value = n
		case float32, float64:
			f, _ := getFloat(v)
			if f != math.Trunc(f) {
				return errors.New("must be an integer")
			}
			value = int64(f)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch v := value.(type) {
		case string:
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return errors.New("must be a non-negative integer")
			}
			value = n
		case float32, float64:
			f, _ := getFloat(v)
			if f < 0 || f != math.Trunc(f) {
				return errors.New("must be a non-negative integer")
			}
			value = uint64(f)
		}
	case reflect.Float32, reflect.Float64:
		switch v := value.(type) {
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.New("must be a number")
			}
			value = f
		default:
			if f, err := getFloat(v); err == nil {
				value = f
			}
		}
	}

	return r.ThresholdRule.Validate(value)
}

func (r thresholdRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Type.Is(openapi3.TypeString) {
		ref.Value.Format = fmt.Sprintf("%T", r.threshold)
	}
	f, err := getFloat(r.threshold)
	if err != nil {
		return err
	}
	if r.min {
		ref.Value.Min = &f
	} else {
		ref.Value.Max = &f
	}
	return nil
}

var floatType = reflect.TypeOf(float64(0))

func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	return v.Convert(floatType).Float(), nil
}
