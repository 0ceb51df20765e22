package verdict_test

import (
	"github.com/verdicthq/verdict"
	"github.com/verdicthq/verdict/expr"
)

// recorder is a boolean expression that appends its name to a shared
// log each time it is evaluated. Tests use it to verify which
// expressions a rule visits, and in what order.
type recorder struct {
	name  string
	value bool
	err   error
	log   *[]string
}

func (r *recorder) Evaluate(any) (bool, error) {
	if r.log != nil {
		*r.log = append(*r.log, r.name)
	}
	if r.err != nil {
		return false, r.err
	}
	return r.value, nil
}

// leaf builds a ConditionAssertion with a fixed three-valued outcome:
// matched=false gives NotMatched, otherwise Matched(value). Condition
// and assertion evaluations are recorded in log when non-nil.
func leaf(name string, matched, value bool, log *[]string) verdict.Rule {
	return verdict.NewConditionAssertion(name,
		&recorder{name: name + ".cond", value: matched, log: log},
		&recorder{name: name + ".assert", value: value, log: log},
	)
}

func boolExpr(v bool) expr.Expression[bool] {
	return expr.Constant(v)
}
