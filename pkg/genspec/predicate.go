package genspec

import (
	"fmt"
	"strings"

	"github.com/vulcand/predicate"
)

// valuePredicate is a function that takes a sampled value and returns a
// boolean. This is our custom predicate type that operates on generator
// output.
type valuePredicate func(any) bool

// compilePredicate compiles a filter expression into a matcher function.
// The predicate language supports:
// - Even(), Odd(): parity of an integer value
// - Gt(n), Lt(n): strict numeric comparison
// - Between(lo, hi): inclusive numeric range check
// - Is("x"): exact match on a string value
// - Contains("x"): substring match on a string value
// - NonEmpty(): non-empty string or sequence
// - LenGt(n): length check on a string or sequence
// - Logical operators: && (and), || (or), ! (not)
func compilePredicate(expr string) (valuePredicate, error) {
	parser, err := predicate.NewParser(predicate.Def{
		Functions: predicateFunctions(),
		Operators: predicateOperators(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	pred, err := parser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid predicate expression: %w", err)
	}

	fn, ok := pred.(valuePredicate)
	if !ok {
		return nil, fmt.Errorf("predicate must evaluate to boolean, got %T", pred)
	}

	return fn, nil
}

// predicateFunctions creates all predicate function definitions.
func predicateFunctions() map[string]any {
	return map[string]any{
		"Even":     createEvenPredicate(),
		"Odd":      createOddPredicate(),
		"Gt":       createGtPredicate(),
		"Lt":       createLtPredicate(),
		"Between":  createBetweenPredicate(),
		"Is":       createIsPredicate(),
		"Contains": createContainsPredicate(),
		"NonEmpty": createNonEmptyPredicate(),
		"LenGt":    createLenGtPredicate(),
	}
}

// predicateOperators creates all logical operator definitions.
func predicateOperators() predicate.Operators {
	return predicate.Operators{
		AND: func(a, b valuePredicate) valuePredicate {
			return func(v any) bool { return a(v) && b(v) }
		},
		OR: func(a, b valuePredicate) valuePredicate {
			return func(v any) bool { return a(v) || b(v) }
		},
		NOT: func(a valuePredicate) valuePredicate {
			return func(v any) bool { return !a(v) }
		},
	}
}

// Numeric predicates. Values that are not integers never match.

func createEvenPredicate() func() valuePredicate {
	return func() valuePredicate {
		return func(v any) bool {
			n, ok := asInt64(v)
			return ok && n%2 == 0
		}
	}
}

func createOddPredicate() func() valuePredicate {
	return func() valuePredicate {
		return func(v any) bool {
			n, ok := asInt64(v)
			return ok && n%2 != 0
		}
	}
}

func createGtPredicate() func(int) valuePredicate {
	return func(bound int) valuePredicate {
		return func(v any) bool {
			n, ok := asInt64(v)
			return ok && n > int64(bound)
		}
	}
}

func createLtPredicate() func(int) valuePredicate {
	return func(bound int) valuePredicate {
		return func(v any) bool {
			n, ok := asInt64(v)
			return ok && n < int64(bound)
		}
	}
}

func createBetweenPredicate() func(int, int) valuePredicate {
	return func(lo, hi int) valuePredicate {
		return func(v any) bool {
			n, ok := asInt64(v)
			return ok && n >= int64(lo) && n <= int64(hi)
		}
	}
}

// String predicates. Values that are not strings never match.

func createIsPredicate() func(string) valuePredicate {
	return func(want string) valuePredicate {
		return func(v any) bool {
			s, ok := v.(string)
			return ok && s == want
		}
	}
}

func createContainsPredicate() func(string) valuePredicate {
	return func(substr string) valuePredicate {
		return func(v any) bool {
			s, ok := v.(string)
			return ok && strings.Contains(s, substr)
		}
	}
}

// Length predicates, over strings and sequences.

func createNonEmptyPredicate() func() valuePredicate {
	return func() valuePredicate {
		return func(v any) bool {
			n, ok := lengthOf(v)
			return ok && n > 0
		}
	}
}

func createLenGtPredicate() func(int) valuePredicate {
	return func(bound int) valuePredicate {
		return func(v any) bool {
			n, ok := lengthOf(v)
			return ok && n > bound
		}
	}
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

func lengthOf(v any) (int, bool) {
	switch s := v.(type) {
	case string:
		return len(s), true
	case []any:
		return len(s), true
	default:
		return 0, false
	}
}
