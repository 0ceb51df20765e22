// Package expr defines the expression contract consumed by the rule
// evaluation layer: a composable value that produces a typed result, or
// fails, when evaluated against a context.
//
// The rule packages only require boolean expressions, but the contract
// is generic so hosts can build typed accessor and combinator libraries
// on top of it (see the field package for one).
package expr

// An Expression produces a value of type T when evaluated against a
// context. The context is whatever data instance the host application
// evaluates decisions against; an expression that is structurally
// incompatible with the context it receives fails with an
// InvalidContextError.
//
// Expressions must not retain state between evaluations, so a single
// expression value may be shared by many rules and evaluated
// concurrently.
type Expression[T any] interface {
	Evaluate(ctx any) (T, error)
}

// Func adapts a plain function to an Expression.
type Func[T any] func(ctx any) (T, error)

func (f Func[T]) Evaluate(ctx any) (T, error) { return f(ctx) }

// Constant returns an expression that yields v for every context.
func Constant[T any](v T) Expression[T] {
	return constant[T]{v: v}
}

type constant[T any] struct {
	v T
}

func (c constant[T]) Evaluate(any) (T, error) { return c.v, nil }
