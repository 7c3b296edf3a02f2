// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"code.hybscloud.com/adt"
)

// caseless compares names ignoring case.
type caseless string

func (c caseless) Equals(other caseless) bool {
	return strings.EqualFold(string(c), string(other))
}

// point has no Equals method and compares with ==.
type point struct{ X, Y int }

func TestEqPrimitives(t *testing.T) {
	require.True(t, adt.Eq(1, 1))
	require.False(t, adt.Eq(1, 2))
	require.True(t, adt.Eq("a", "a"))
	require.True(t, adt.Eq(point{1, 2}, point{1, 2}))
	require.False(t, adt.Eq(point{1, 2}, point{2, 1}))
}

func TestEqPrefersEquatable(t *testing.T) {
	require.True(t, adt.Eq(caseless("Go"), caseless("GO")))
	require.False(t, adt.Eq(caseless("Go"), caseless("Rust")))
}

func TestEqSlices(t *testing.T) {
	require.True(t, adt.Eq([]int{1, 2, 3}, []int{1, 2, 3}))
	require.False(t, adt.Eq([]int{1, 2, 3}, []int{1, 2}))
	require.False(t, adt.Eq([]int{1, 2, 3}, []int{1, 2, 4}))
	require.True(t, adt.Eq([2]string{"a", "b"}, [2]string{"a", "b"}))
}

func TestEqEmptySlicesAreNotEqual(t *testing.T) {
	require.False(t, adt.Eq([]int{}, []int{}))
	require.False(t, adt.Eq([0]int{}, [0]int{}))
}

func TestEqSliceElementsUseEquals(t *testing.T) {
	require.True(t, adt.Eq([]caseless{"a", "B"}, []caseless{"A", "b"}))
	require.True(t, adt.Eq([][]int{{1}, {2, 3}}, [][]int{{1}, {2, 3}}))
	require.True(t, adt.Eq(
		[]adt.Maybe[int]{adt.Just(1), adt.Nothing[int]()},
		[]adt.Maybe[int]{adt.Just(1), adt.Nothing[int]()},
	))
	require.True(t, adt.Eq([]any{caseless("x"), 1}, []any{caseless("X"), 1}))
	require.False(t, adt.Eq([]any{1, "1"}, []any{1, 1}))
}

// record is uncomparable because of its slice field.
type record struct {
	Name string
	Tags []string
}

func TestEqUncomparable(t *testing.T) {
	require.False(t, adt.Eq(map[string]int{"a": 1}, map[string]int{"a": 1}))

	var m1, m2 map[string]int
	require.True(t, adt.Eq(m1, m2))
}

func TestEqMapIdentity(t *testing.T) {
	m := map[string]int{"a": 1}
	alias := m
	require.True(t, adt.Eq(m, m))
	require.True(t, adt.Eq(m, alias))
	require.False(t, adt.Eq(m, map[string]int{"a": 1}))
	require.False(t, adt.Eq(m, nil))
}

func TestEqFuncIdentity(t *testing.T) {
	f := strings.ToUpper
	require.True(t, adt.Eq(f, f))
	require.False(t, adt.Eq(f, strings.ToLower))
}

func TestEqStructWithSlice(t *testing.T) {
	r := record{Name: "a", Tags: []string{"x", "y"}}
	cp := r
	require.True(t, adt.Eq(r, cp))
	require.True(t, adt.Eq(r, record{Name: "a", Tags: []string{"x", "y"}}))
	require.False(t, adt.Eq(r, record{Name: "b", Tags: r.Tags}))
	require.False(t, adt.Eq(r, record{Name: "a", Tags: []string{"x"}}))

	var empty record
	require.True(t, adt.Eq(empty, empty))
}

func TestEqMapValuedContainers(t *testing.T) {
	cfg := adt.Just(map[string]int{"a": 1})
	require.True(t, cfg.Equals(cfg))
	require.True(t, adt.MapMaybe(cfg, adt.Identity[map[string]int]).Equals(cfg))
	require.False(t, cfg.Equals(adt.Just(map[string]int{"a": 1})))

	m := map[string]int{"b": 2}
	right := adt.Right[string](m)
	require.True(t, right.Equals(right))
	require.True(t, adt.MapEither(right, adt.Identity[map[string]int]).Equals(right))

	r := adt.Just(record{Name: "a", Tags: []string{"x"}})
	require.True(t, r.Equals(r))
	require.True(t, adt.MapMaybe(r, adt.Identity[record]).Equals(r))
}

func TestEqSymmetric(t *testing.T) {
	pairs := [][2]adt.Maybe[string]{
		{adt.Just("a"), adt.Just("a")},
		{adt.Just("a"), adt.Just("b")},
		{adt.Just("a"), adt.Nothing[string]()},
		{adt.Nothing[string](), adt.Nothing[string]()},
	}
	for _, p := range pairs {
		require.Equal(t, adt.Eq(p[0], p[1]), adt.Eq(p[1], p[0]), "%v vs %v", p[0], p[1])
	}
}

func TestExists(t *testing.T) {
	require.True(t, adt.Exists(0))
	require.True(t, adt.Exists(""))
	require.True(t, adt.Exists(false))
	require.True(t, adt.Exists(point{}))
	require.True(t, adt.Exists([]int{}))

	var p *int
	var s []int
	var f func()
	var e error
	require.False(t, adt.Exists(p))
	require.False(t, adt.Exists(s))
	require.False(t, adt.Exists(f))
	require.False(t, adt.Exists(e))
	require.False(t, adt.Exists[any](nil))
}

func TestTruthy(t *testing.T) {
	require.False(t, adt.Truthy(0))
	require.False(t, adt.Truthy(uint8(0)))
	require.False(t, adt.Truthy(0.0))
	require.False(t, adt.Truthy(math.NaN()))
	require.False(t, adt.Truthy(""))
	require.False(t, adt.Truthy(false))
	require.False(t, adt.Truthy[*int](nil))
	require.False(t, adt.Truthy[any](nil))
	require.False(t, adt.Truthy(complex(0, 0)))
	require.False(t, adt.Truthy(complex64(0)))

	require.True(t, adt.Truthy(-1))
	require.True(t, adt.Truthy(0.5))
	require.True(t, adt.Truthy("0"))
	require.True(t, adt.Truthy(true))
	require.True(t, adt.Truthy(1i))
	require.True(t, adt.Truthy(complex(0, -2)))
	require.True(t, adt.Truthy([]int{}))
	require.True(t, adt.Truthy(point{}))
}

func TestFnHelpers(t *testing.T) {
	require.Equal(t, 3, adt.Identity(3))

	inc := func(x int) int { return x + 1 }
	show := func(x int) string { return strings.Repeat("*", x) }
	require.Equal(t, "***", adt.Compose(inc, show)(2))

	require.Equal(t, "k", adt.Const[int]("k")(99))
}
