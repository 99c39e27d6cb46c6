package mem

import "reflect"

// HasPointers reports whether T contains Go pointers at any depth.
// Raw blocks are invisible to the garbage collector, so pointer-bearing
// types must never be stored in them: the pointees could be collected
// while still referenced from the block.
func HasPointers[T any]() bool {
	var zero T
	return typeHasPointers(reflect.TypeOf(&zero).Elem())
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, strings, maps, chans, funcs, interfaces,
		// unsafe.Pointer.
		return true
	}
}
