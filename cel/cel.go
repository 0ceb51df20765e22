// Package cel implements the expression contract on top of Google's
// Common Expression Language (https://github.com/google/cel-go).
// Expressions are compiled once against a CEL environment and the
// resulting program is evaluated against map contexts, so the same
// compiled expression can back many rules.
package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/interpreter"

	"github.com/verdicthq/verdict/expr"
)

// costLimit bounds the work a single expression evaluation may do,
// guarding against runaway expressions.
const costLimit = 1_000_000

// Expr is a compiled boolean CEL expression. It implements
// expr.Expression[bool]. The context must be a map[string]any whose
// keys are the variables declared in the environment the expression
// was compiled with, or an interpreter.Activation binding them; any
// other context type fails with expr.InvalidContextError.
type Expr struct {
	src string
	prg cel.Program
}

// Compile parses, checks and plans src in env. The expression must
// produce a boolean (dyn is accepted at compile time and enforced per
// evaluation).
func Compile(env *cel.Env, src string) (*Expr, error) {
	ast, iss := env.Compile(src)
	if iss != nil && iss.Err() != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, iss.Err())
	}
	if t := ast.OutputType(); !t.IsExactType(cel.BoolType) && !t.IsExactType(cel.DynType) {
		return nil, fmt.Errorf("compiling %q: want bool result, got %s", src, t)
	}
	prg, err := env.Program(ast, cel.CostLimit(costLimit))
	if err != nil {
		return nil, fmt.Errorf("planning %q: %w", src, err)
	}
	return &Expr{src: src, prg: prg}, nil
}

// MustCompile is Compile, panicking on error. Intended for expressions
// fixed at program startup.
func MustCompile(env *cel.Env, src string) *Expr {
	e, err := Compile(env, src)
	if err != nil {
		panic(err)
	}
	return e
}

func (e *Expr) Evaluate(ctx any) (bool, error) {
	var input any
	switch v := ctx.(type) {
	case map[string]any:
		input = v
	case interpreter.Activation:
		input = v
	default:
		return false, &expr.InvalidContextError{
			Expected: "map[string]any or cel Activation",
			Got:      fmt.Sprintf("%T", ctx),
		}
	}
	out, _, err := e.prg.Eval(input)
	if err != nil {
		return false, fmt.Errorf("evaluating %q: %w", e.src, err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, &expr.InvalidContextError{
			Expected: fmt.Sprintf("bool result from %q", e.src),
			Got:      fmt.Sprintf("%T", out.Value()),
		}
	}
	return b, nil
}

// String returns the expression source.
func (e *Expr) String() string { return e.src }

// DefaultEnv builds an environment declaring each name as a dyn-typed
// variable, for hosts that evaluate against plain map contexts without
// a schema. Hosts with typed schemas should build their own
// environment with cel.NewEnv and pass it to Compile directly.
func DefaultEnv(variables ...string) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(variables))
	for _, v := range variables {
		opts = append(opts, cel.Variable(v, cel.DynType))
	}
	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating CEL environment: %w", err)
	}
	return env, nil
}
