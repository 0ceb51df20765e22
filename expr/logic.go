package expr

// And returns an expression that is true when every operand is true.
// Operands are evaluated left to right and evaluation stops at the
// first false operand or the first error. With no operands the result
// is true.
func And(operands ...Expression[bool]) Expression[bool] {
	ops := clone(operands)
	return Func[bool](func(ctx any) (bool, error) {
		for _, op := range ops {
			v, err := op.Evaluate(ctx)
			if err != nil {
				return false, err
			}
			if !v {
				return false, nil
			}
		}
		return true, nil
	})
}

// Or returns an expression that is true when any operand is true.
// Operands are evaluated left to right and evaluation stops at the
// first true operand or the first error. With no operands the result
// is false.
func Or(operands ...Expression[bool]) Expression[bool] {
	ops := clone(operands)
	return Func[bool](func(ctx any) (bool, error) {
		for _, op := range ops {
			v, err := op.Evaluate(ctx)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	})
}

// Not negates the operand. Errors propagate unchanged.
func Not(operand Expression[bool]) Expression[bool] {
	return Func[bool](func(ctx any) (bool, error) {
		v, err := operand.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		return !v, nil
	})
}

func clone(ops []Expression[bool]) []Expression[bool] {
	out := make([]Expression[bool], len(ops))
	copy(out, ops)
	return out
}
