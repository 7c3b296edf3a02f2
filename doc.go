// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package adt provides algebraic data types for Go: an optional value,
// a disjoint two-branch value, and a pure state-threading computation.
//
// The three types let calling code say "may be absent", "one of two
// outcomes" and "computation over an implicit state" without nil checks,
// panics, or state variables passed by hand. All of them are immutable
// values; every operation returns a new value.
//
// # Naming
//
// Go methods cannot introduce type parameters. Operations that keep the
// element type are methods ([Maybe.GetOr], [Maybe.Alt], [Either.Equals],
// [State.Eval]); operations that change it are package functions suffixed
// with the type name ([MapMaybe], [BindEither], [ApplyState]).
//
// # Maybe
//
// [Maybe] holds zero or one value. Presence is a tag, so Just(0),
// Just("") and Just(false) are present.
//
//   - [Just], [Nothing]: Constructors
//   - [FromNullable]: nil pointers, maps, slices, channels, funcs and
//     interfaces become Nothing; everything else becomes Just
//   - [FromPtr], [FromOk]: Adapters for *A and comma-ok
//   - [Maybe.IsNothing], [Maybe.IsJust]: Predicates
//   - [Maybe.Get], [Maybe.GetOr], [Maybe.ToPtr], [Maybe.ToBool]: Accessors
//   - [Maybe.GetOrError], [Maybe.GetOrErr]: Extraction returning [*NothingError]
//   - [Maybe.MustGet], [Maybe.MustGetMessage]: Unsafe extraction (panics on Nothing)
//   - [Maybe.Instead], [Maybe.Alt], [Maybe.Filter]: Alternatives
//   - [Maybe.On], [Maybe.Unless]: Side effects, returning the receiver
//   - [Maybe.Equals]: Equality via [Eq]
//   - [BindMaybe]: Monadic bind
//   - [MapMaybe]: Functor map; a nil result becomes Nothing
//   - [ApplyMaybe], [ExtendMaybe], [WhenMaybe], [Prop]
//   - [FoldMaybe], [MatchMaybe]: Reduction to a plain value
//   - [SequenceMaybe], [TraverseMaybe]: Slices
//
// # Either
//
// [Either] holds exactly one of Left (error) or Right (success).
//
//   - [Left], [Right]: Constructors
//   - [EitherOf], [MustEither]: Exactly-one-of construction from two pointers
//   - [FromMaybe]: Nothing becomes Left(default)
//   - [FromNullableEither]: any falsy value becomes Left(default); note that
//     this is stricter than [FromNullable]
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight], [Either.GetOr]: Accessors
//   - [Either.Equals], [Either.Swap], [Either.ToMaybe]
//   - [BindEither], [MapEither], [MapLeftEither], [ApplyEither]
//   - [MatchEither]: Pattern matching
//   - [SequenceEither]: Slices, first Left wins
//
// [ApplyEither] is left-biased: when both the argument and the function
// are Left, the argument's Left is returned.
//
// # State
//
// [State] is a function from a state to a result and the next state.
//
//   - [GetState], [PutState], [ReturnState], [ModifyState], [GetsState]: Constructors
//   - [State.Run], [State.Eval], [State.Exec]: Execution
//   - [BindState]: Monadic bind
//   - [MapState], [ThenState], [ApplyState]: Derived operations
//   - [SequenceState], [TraverseState]: Slices
//
// # Equality and Presence
//
//   - [Equatable]: Capability interface for user-defined equality
//   - [Eq]: Equatable first, then element-wise for slices and arrays,
//     identity for maps and funcs, then ==
//   - [Exists]: false only for nil
//   - [Truthy]: false for nil, false, zero numbers, NaN and ""
//
// # Monoids
//
//   - [Semigroup], [Monoid]: Interfaces
//   - [Sum], [Product]: Numeric monoids
//   - [MaybeMonoid], [FirstMonoid]: Monoids over [Maybe]
//   - [ConcatAll]: Fold with a monoid
//
// # Errors
//
// Only two operations fail. Unsafe extraction from an empty Maybe yields
// a [*NothingError] that matches [ErrNothing]. Malformed construction
// with [EitherOf] yields [ErrBothBranches] or [ErrNoBranch]. Everything
// else is total and encodes absence or failure as a value.
//
// # Example
//
//	double := adt.BindState(adt.GetState[int](), func(s int) adt.State[int, adt.Unit] {
//		return adt.PutState(s * 2)
//	})
//	double.Exec(5) // 10
//
//	cfg := map[string]int{"port": 8080}
//	port := adt.FromMaybe("missing port", adt.Prop(adt.Just(cfg), "port"))
//	msg := adt.MatchEither(port,
//		func(err string) string { return "error: " + err },
//		func(p int) string { return "listening on " + strconv.Itoa(p) },
//	)
//	// msg == "listening on 8080"
package adt
