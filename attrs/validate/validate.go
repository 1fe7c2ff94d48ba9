// Package validate provides predicate combinators for validated fields.
//
// A predicate reports why a candidate value is unacceptable; nil means
// accepted. Predicates are pure and deterministic — the descriptor re-runs
// them on every write and never caches a verdict.
package validate

import (
	"cmp"
	"fmt"
)

// Predicate rejects a candidate value with a reason, or accepts it with nil.
type Predicate[T any] func(T) error

// Range accepts values v with lo <= v <= hi.
func Range[T cmp.Ordered](lo, hi T) Predicate[T] {
	return func(v T) error {
		if v < lo || v > hi {
			return fmt.Errorf("must be between %v and %v, got %v", lo, hi, v)
		}
		return nil
	}
}

// Min accepts values no smaller than lo.
func Min[T cmp.Ordered](lo T) Predicate[T] {
	return func(v T) error {
		if v < lo {
			return fmt.Errorf("must be at least %v, got %v", lo, v)
		}
		return nil
	}
}

// Max accepts values no larger than hi.
func Max[T cmp.Ordered](hi T) Predicate[T] {
	return func(v T) error {
		if v > hi {
			return fmt.Errorf("must be at most %v, got %v", hi, v)
		}
		return nil
	}
}

// OneOf accepts only the listed values.
func OneOf[T comparable](allowed ...T) Predicate[T] {
	return func(v T) error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return fmt.Errorf("%v is not an allowed value", v)
	}
}

// NonEmpty rejects the empty string.
func NonEmpty() Predicate[string] {
	return func(v string) error {
		if v == "" {
			return fmt.Errorf("must not be empty")
		}
		return nil
	}
}

// All accepts a value only when every predicate accepts it, reporting the
// first rejection.
func All[T any](preds ...Predicate[T]) Predicate[T] {
	return func(v T) error {
		for _, p := range preds {
			if err := p(v); err != nil {
				return err
			}
		}
		return nil
	}
}
