// Package typetag classifies raw payload values into small structural
// descriptors. It is internal on purpose: classification runs only inside
// the wrapper core, once per payload change, and external callers branch on
// the resulting tag through the guard predicates instead.
package typetag

import "reflect"

// Kind enumerates the payload shapes a tag can describe.
type Kind uint8

const (
	// Opaque covers values with no further useful structure: channels,
	// unsafe pointers, and anything else a caller has no business
	// introspecting.
	Opaque Kind = iota
	Nil
	Bool
	// String covers both string and []byte payloads.
	String
	Int
	Float
	List
	Tuple
	Map
	Struct
	Func
)

var kindNames = map[Kind]string{
	Opaque: "opaque",
	Nil:    "nil",
	Bool:   "bool",
	String: "string",
	Int:    "int",
	Float:  "float",
	List:   "list",
	Tuple:  "tuple",
	Map:    "map",
	Struct: "struct",
	Func:   "func",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "opaque"
}

// Tag describes the shape of a payload without retaining the payload.
type Tag struct {
	Kind Kind
	// Count is the element count for String/List/Tuple/Map and the field
	// count for Struct.
	Count int
	// TypeName names the declared type for Struct and named Map types.
	TypeName string
	// IsError reports whether the declared type implements error.
	IsError bool
	// Arity is the number of inputs for Func.
	Arity int
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Classify computes the tag for v. It is pure and shallow: counts come from
// the host's O(1) length operations and no element is ever visited or
// cloned. One level of pointer indirection is followed so that *T classifies
// like T; a nil pointer classifies as Nil.
func Classify(v any) Tag {
	if v == nil {
		return Tag{Kind: Nil}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return Tag{Kind: Nil}
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Tag{Kind: Bool}
	case reflect.String:
		return Tag{Kind: String, Count: rv.Len()}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Tag{Kind: Int}
	case reflect.Float32, reflect.Float64:
		return Tag{Kind: Float}
	case reflect.Slice:
		if rv.IsNil() {
			return Tag{Kind: Nil}
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return Tag{Kind: String, Count: rv.Len()}
		}
		return Tag{Kind: List, Count: rv.Len()}
	case reflect.Array:
		return Tag{Kind: Tuple, Count: rv.Len()}
	case reflect.Map:
		if rv.IsNil() {
			return Tag{Kind: Nil}
		}
		return Tag{Kind: Map, Count: rv.Len(), TypeName: declaredName(rv.Type())}
	case reflect.Struct:
		t := rv.Type()
		return Tag{
			Kind:     Struct,
			Count:    t.NumField(),
			TypeName: declaredName(t),
			IsError:  implementsError(t),
		}
	case reflect.Func:
		if rv.IsNil() {
			return Tag{Kind: Nil}
		}
		return Tag{Kind: Func, Arity: rv.Type().NumIn()}
	default:
		return Tag{Kind: Opaque}
	}
}

func declaredName(t reflect.Type) string {
	if t.Name() == "" {
		return ""
	}
	if pkg := t.PkgPath(); pkg != "" {
		return pkg + "." + t.Name()
	}
	return t.Name()
}

func implementsError(t reflect.Type) bool {
	if t.Implements(errorType) {
		return true
	}
	return reflect.PointerTo(t).Implements(errorType)
}
