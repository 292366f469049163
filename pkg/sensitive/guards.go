package sensitive

import "github.com/davidsulc/sensitive-data/internal/typetag"

// The guard layer answers shape questions about a wrapper from its
// precomputed type tag alone. Every predicate is pure and total: no payload
// access, no panics, safe to use directly in branching logic regardless of
// what the argument is.

// taggedWrapper is satisfied by every *Wrapper[T] instantiation.
type taggedWrapper interface {
	typeTag() (typetag.Tag, *Kind, bool)
}

func tagOf(v any) (typetag.Tag, *Kind, bool) {
	w, ok := v.(taggedWrapper)
	if !ok {
		return typetag.Tag{}, nil, false
	}
	return w.typeTag()
}

// IsSensitive reports whether v is a wrapper of any kind.
func IsSensitive(v any) bool {
	_, _, ok := tagOf(v)
	return ok
}

// IsSensitiveOf reports whether v is a wrapper of the given kind.
func IsSensitiveOf(v any, k *Kind) bool {
	_, kind, ok := tagOf(v)
	return ok && k != nil && kind == k
}

// IsSensitiveNil reports whether v wraps a nil payload.
func IsSensitiveNil(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Nil
}

// IsSensitiveBoolean reports whether v wraps a boolean.
func IsSensitiveBoolean(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Bool
}

// IsSensitiveBinary reports whether v wraps a string or []byte payload.
func IsSensitiveBinary(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.String
}

// IsSensitiveInteger reports whether v wraps an integer of any width.
func IsSensitiveInteger(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Int
}

// IsSensitiveFloat reports whether v wraps a float.
func IsSensitiveFloat(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Float
}

// IsSensitiveNumber reports whether v wraps an integer or a float.
func IsSensitiveNumber(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && (tag.Kind == typetag.Int || tag.Kind == typetag.Float)
}

// IsSensitiveList reports whether v wraps a slice payload.
func IsSensitiveList(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.List
}

// IsSensitiveTuple reports whether v wraps an array payload.
func IsSensitiveTuple(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Tuple
}

// IsSensitiveMap reports whether v wraps a map payload.
func IsSensitiveMap(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Map
}

// IsSensitiveStruct reports whether v wraps a struct payload.
func IsSensitiveStruct(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.Kind == typetag.Struct
}

// IsSensitiveFunction reports whether v wraps a function taking arity
// inputs. Pass a negative arity to accept any function.
func IsSensitiveFunction(v any, arity int) bool {
	tag, _, ok := tagOf(v)
	if !ok || tag.Kind != typetag.Func {
		return false
	}
	return arity < 0 || tag.Arity == arity
}

// IsSensitiveError reports whether v wraps a value whose declared type
// implements error.
func IsSensitiveError(v any) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.IsError
}

// IsSensitiveErrorNamed reports whether v wraps an error value of the given
// declared type name (package path qualified).
func IsSensitiveErrorNamed(v any, typeName string) bool {
	tag, _, ok := tagOf(v)
	return ok && tag.IsError && tag.TypeName == typeName
}

// SensitiveLength returns the element count of a wrapped string, []byte,
// slice, or array. The count is read from the precomputed tag, never
// recomputed from the payload.
func SensitiveLength(v any) (int, bool) {
	tag, _, ok := tagOf(v)
	if !ok {
		return 0, false
	}
	switch tag.Kind {
	case typetag.String, typetag.List, typetag.Tuple:
		return tag.Count, true
	default:
		return 0, false
	}
}

// SensitiveMapSize returns the entry count of a wrapped map.
func SensitiveMapSize(v any) (int, bool) {
	tag, _, ok := tagOf(v)
	if !ok || tag.Kind != typetag.Map {
		return 0, false
	}
	return tag.Count, true
}

// SensitiveTupleSize returns the element count of a wrapped array.
func SensitiveTupleSize(v any) (int, bool) {
	tag, _, ok := tagOf(v)
	if !ok || tag.Kind != typetag.Tuple {
		return 0, false
	}
	return tag.Count, true
}

// SensitiveFuncArity returns the input count of a wrapped function.
func SensitiveFuncArity(v any) (int, bool) {
	tag, _, ok := tagOf(v)
	if !ok || tag.Kind != typetag.Func {
		return 0, false
	}
	return tag.Arity, true
}
