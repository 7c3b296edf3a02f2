// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

import (
	"math"
	"reflect"
)

// Equatable is implemented by types that define their own equality.
// [Eq] prefers Equals over structural comparison when it is available.
type Equatable[T any] interface {
	Equals(other T) bool
}

// Eq reports whether a and b are equal.
//
// Dispatch order:
//   - a implements [Equatable][T]: a.Equals(b)
//   - slices and arrays: same non-zero length and pairwise equal elements,
//     each element compared by these same rules
//   - maps and funcs: identity (the same map instance, the same function)
//   - structs holding uncomparable fields: field by field, where a slice
//     field shared by both sides is equal by identity
//   - comparable values: ==
//
// Two empty slices are not equal.
func Eq[T any](a, b T) bool {
	if e, ok := any(a).(Equatable[T]); ok {
		return e.Equals(b)
	}
	return eqValue(reflect.ValueOf(any(a)), reflect.ValueOf(any(b)))
}

// eqValue compares two reflected values. Elements reached through slices
// and arrays are only known dynamically, so the Equatable capability is
// looked up on the concrete type via its method set.
func eqValue(a, b reflect.Value) bool {
	a, b = unwrapInterface(a), unwrapInterface(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	if a.CanInterface() {
		if m := a.MethodByName("Equals"); m.IsValid() && isEqualsMethod(m.Type(), b.Type()) {
			return m.Call([]reflect.Value{b})[0].Bool()
		}
	}
	switch a.Kind() {
	case reflect.Slice, reflect.Array:
		n := a.Len()
		if n == 0 || n != b.Len() {
			return false
		}
		for i := range n {
			if !eqValue(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map, reflect.Func:
		// Identity: the same map instance, or the same function code.
		return a.Pointer() == b.Pointer()
	case reflect.Struct:
		if !a.Comparable() || !b.Comparable() {
			for i := range a.NumField() {
				if !eqField(a.Field(i), b.Field(i)) {
					return false
				}
			}
			return true
		}
	}
	if a.Comparable() && b.Comparable() {
		return a.Equal(b)
	}
	return false
}

// eqField compares struct fields. A slice field shared by both structs is
// equal by identity, so a struct always equals a copy of itself.
func eqField(a, b reflect.Value) bool {
	if a.Kind() == reflect.Slice && b.Kind() == reflect.Slice &&
		a.Pointer() == b.Pointer() && a.Len() == b.Len() {
		return true
	}
	return eqValue(a, b)
}

func unwrapInterface(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isEqualsMethod(mt, arg reflect.Type) bool {
	return mt.NumIn() == 1 && mt.NumOut() == 1 &&
		mt.Out(0).Kind() == reflect.Bool && arg.AssignableTo(mt.In(0))
}

// Exists reports whether v holds a real value.
// Only nil pointers, maps, slices, channels, funcs and interfaces are
// absent; zero numbers, empty strings and false all exist.
func Exists[T any](v T) bool {
	return !isNil(reflect.ValueOf(any(v)))
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Truthy reports whether v is a "truthy" value.
// Nil, false, zero numbers, NaN and the empty string are falsy;
// everything else, including empty non-nil slices and structs, is truthy.
func Truthy[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.Len() != 0
	}
	return !isNil(rv)
}
