package try

import "reflect"

var (
	successType = reflect.TypeFor[Success]()
	failureType = reflect.TypeFor[Failure]()
	equalerType = reflect.TypeFor[Equaler]()
)

// valuesEqual is reflect.DeepEqual except that a Try found anywhere in the
// values, including inside maps, structs and typed slices, is compared by
// its payload only; ids and timestamps are ignored.
func valuesEqual(a, b any) bool {
	switch x := a.(type) {
	case Try:
		y, ok := b.(Try)
		return ok && x.Equal(y)
	case Equaler:
		return x.Equal(b)
	}
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b), make(map[visit]bool))
}

type visit struct {
	x, y uintptr
	typ  reflect.Type
}

func deepEqual(x, y reflect.Value, visited map[visit]bool) bool {
	if !x.IsValid() || !y.IsValid() {
		return x.IsValid() == y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}

	switch x.Type() {
	case successType:
		return deepEqual(x.FieldByName("value"), y.FieldByName("value"), visited)
	case failureType:
		return deepEqual(x.FieldByName("err"), y.FieldByName("err"), visited)
	}

	if x.CanInterface() && y.CanInterface() && x.Type().Implements(equalerType) && !isNilRef(x) {
		return x.Interface().(Equaler).Equal(y.Interface())
	}

	switch x.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		if x.Kind() != reflect.Slice && x.Pointer() == y.Pointer() {
			return true
		}
		v := visit{x: x.Pointer(), y: y.Pointer(), typ: x.Type()}
		if visited[v] {
			return true
		}
		visited[v] = true
	}

	switch x.Kind() {
	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		return deepEqual(x.Elem(), y.Elem(), visited)
	case reflect.Pointer:
		return deepEqual(x.Elem(), y.Elem(), visited)
	case reflect.Slice, reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.Len() {
			if !deepEqual(x.Index(i), y.Index(i), visited) {
				return false
			}
		}
		return true
	case reflect.Map:
		if x.Len() != y.Len() {
			return false
		}
		iter := x.MapRange()
		for iter.Next() {
			other := y.MapIndex(iter.Key())
			if !other.IsValid() || !deepEqual(iter.Value(), other, visited) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range x.NumField() {
			if !deepEqual(x.Field(i), y.Field(i), visited) {
				return false
			}
		}
		return true
	case reflect.Func:
		return x.IsNil() && y.IsNil()
	default:
		return x.Equal(y)
	}
}

func isNilRef(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
