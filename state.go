// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package adt

// State represents a pure computation over an implicit state.
// State[S, A] maps an input state to a result of type A and the next state.
//
// Building a State never runs it; the transition runs only on
// [State.Run], [State.Eval] or [State.Exec]. Running the same State twice
// with the same input must give the same output, which holds as long as
// the functions passed to the constructors are pure.
type State[S, A any] func(s S) (A, S)

// getState is a named generic function, so GetState returns a static
// function value per type instantiation instead of allocating a closure.
func getState[S any](s S) (S, S) { return s, s }

// GetState returns the current state as the result, leaving it unchanged.
func GetState[S any]() State[S, S] {
	return getState[S]
}

// PutState replaces the state with s. The result is [Unit].
func PutState[S any](s S) State[S, Unit] {
	return func(S) (Unit, S) {
		return Unit{}, s
	}
}

// ReturnState lifts a pure value: the result is a and the state is unchanged.
func ReturnState[S, A any](a A) State[S, A] {
	return func(s S) (A, S) {
		return a, s
	}
}

// ModifyState applies f to the state. The result is [Unit].
func ModifyState[S any](f func(S) S) State[S, Unit] {
	return func(s S) (Unit, S) {
		return Unit{}, f(s)
	}
}

// GetsState projects a result from the state, leaving it unchanged.
func GetsState[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) {
		return f(s), s
	}
}

// Run executes m with initial state s and returns both result and final state.
func (m State[S, A]) Run(s S) (A, S) {
	return m(s)
}

// Eval executes m with initial state s and returns only the result.
func (m State[S, A]) Eval(s S) A {
	a, _ := m(s)
	return a
}

// Exec executes m with initial state s and returns only the final state.
func (m State[S, A]) Exec(s S) S {
	_, next := m(s)
	return next
}

// BindState sequences two stateful computations (monadic bind).
// It runs m, then runs f(result) on the state m produced.
func BindState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, next := m(s)
		return f(a)(next)
	}
}

// MapState applies a pure function to the result of m, keeping its state.
//
// MapState is equivalent to BindState(m, compose(ReturnState, f)) but
// avoids the intermediate ReturnState closure.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, next := m(s)
		return f(a), next
	}
}

// ThenState sequences two stateful computations, discarding the first result.
func ThenState[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		_, next := m(s)
		return n(next)
	}
}

// ApplyState runs mf to obtain a function, then runs m and applies it.
// Equivalent to BindState(mf, func(f) MapState(m, f)).
func ApplyState[S, A, B any](m State[S, A], mf State[S, func(A) B]) State[S, B] {
	return BindState(mf, func(f func(A) B) State[S, B] {
		return MapState(m, f)
	})
}

// SequenceState runs ms in order, threading the state, and collects the results.
func SequenceState[S, A any](ms []State[S, A]) State[S, []A] {
	return TraverseState(ms, Identity[State[S, A]])
}

// TraverseState maps each element to a stateful step and runs the steps
// in order, threading the state, collecting the results.
func TraverseState[S, A, B any](xs []A, f func(A) State[S, B]) State[S, []B] {
	return func(s S) ([]B, S) {
		out := make([]B, 0, len(xs))
		for _, x := range xs {
			var b B
			b, s = f(x)(s)
			out = append(out, b)
		}
		return out, s
	}
}
