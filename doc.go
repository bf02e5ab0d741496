// Package schemarules turns declarative rule registrations into compiled
// validation and serialization plans.
//
// Rule functions bind through six entry points: [FieldValidator],
// [ModelValidator], [FieldSerializer], [ModelSerializer], and the legacy
// [Validator] and [RootValidator]. Bind classifies the function into a
// closed set of calling conventions, records the declaration in a canonical
// [Descriptor], and returns an inert [Marker]. Attach markers to a struct
// type by implementing [Declarer], and standard ozzo rules by implementing
// [Ruler]:
//
//	func (o *Order) Rules() []*FieldRules {
//	    return []*FieldRules{
//	        Field(&o.Name, validation.Required),
//	        Field(&o.Amount, Min(0.01)),
//	    }
//	}
//
//	func (o *Order) Declarations() []*Marker {
//	    return []*Marker{
//	        FieldValidator("name").Mode(Before).MustBind(trimName),
//	    }
//	}
//
// [PlanFor] compiles a type's rules into a [Plan], which validates decoded
// JSON maps ([Plan.Validate]), decodes and validates in one step
// ([Plan.Unmarshal]), and dumps instances back out ([Plan.Serialize],
// [Plan.Marshal]).
//
// Sub-packages:
//   - openapi – OpenAPI document generation from plans, endpoint helpers, and a docs handler
//   - is – common string format validation rules
package schemarules
