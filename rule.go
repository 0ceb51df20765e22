package verdict

import (
	"github.com/verdicthq/verdict/expr"
)

// A Rule is an evaluation unit producing a three-valued Outcome against
// a context. There are exactly two kinds of rule: ConditionAssertion, a
// leaf pairing a condition with an assertion, and RuleSet, which
// combines an ordered list of child rules under a single condition.
// RuleSets nest, so arbitrary decision trees can be built bottom-up.
//
// Rules are immutable after construction and evaluation retains no
// state between calls, so a rule may be evaluated concurrently by any
// number of goroutines.
//
// Any error raised while evaluating a condition, an assertion or a
// child rule aborts the evaluation and propagates to the caller
// unchanged; no partial outcome is produced.
type Rule interface {
	// Name identifies the rule in diagnostics. It carries no meaning
	// during evaluation and may be empty.
	Name() string

	// Eval runs the rule against ctx.
	Eval(ctx any) (Outcome, error)
}

// ConditionAssertion is the leaf rule kind. If the condition holds for
// the context, the rule matches with the value of the assertion; if it
// does not hold, the rule does not match and the assertion is never
// evaluated.
type ConditionAssertion struct {
	name      string
	condition expr.Expression[bool]
	assertion expr.Expression[bool]
}

// NewConditionAssertion creates a leaf rule from a condition and an
// assertion. Both expressions must be non-nil.
func NewConditionAssertion(name string, condition, assertion expr.Expression[bool]) *ConditionAssertion {
	return &ConditionAssertion{name: name, condition: condition, assertion: assertion}
}

func (r *ConditionAssertion) Name() string { return r.name }

func (r *ConditionAssertion) Eval(ctx any) (Outcome, error) {
	ok, err := r.condition.Evaluate(ctx)
	if err != nil {
		return NotMatched, err
	}
	if !ok {
		return NotMatched, nil
	}
	v, err := r.assertion.Evaluate(ctx)
	if err != nil {
		return NotMatched, err
	}
	return Matched(v), nil
}

// MatchPolicy determines how a RuleSet combines the outcomes of its
// children.
type MatchPolicy int

const (
	// MatchAll ANDs the outcomes of the children that matched. A single
	// matched-false child decides the whole set; if no child matched,
	// neither did the set.
	MatchAll MatchPolicy = iota

	// MatchFirst takes the outcome of the first child that matched,
	// whether true or false, and skips the rest.
	MatchFirst
)

func (p MatchPolicy) String() string {
	if p == MatchFirst {
		return "first"
	}
	return "all"
}

// RuleSet is the composite rule kind: an ordered list of child rules
// guarded by a condition and combined under a MatchPolicy. When the
// condition does not hold, the set does not match and no child is
// visited. Children are evaluated lazily in declaration order; under
// either policy, evaluation stops as soon as the set's outcome is
// decided, and later children are never evaluated.
//
// A child that did not match is treated as if it were absent from the
// list: it does not count toward MatchAll's matched children, and
// MatchFirst skips past it. A set whose children all failed to match,
// or that has no children at all, does not match.
type RuleSet struct {
	name      string
	condition expr.Expression[bool]
	policy    MatchPolicy
	children  []Rule
}

// NewRuleSet creates a composite rule. Children are evaluated in the
// order given and are exclusively owned by the set: a rule must not be
// a child of more than one parent.
func NewRuleSet(name string, condition expr.Expression[bool], policy MatchPolicy, children ...Rule) *RuleSet {
	rs := &RuleSet{
		name:      name,
		condition: condition,
		policy:    policy,
		children:  make([]Rule, len(children)),
	}
	copy(rs.children, children)
	return rs
}

func (r *RuleSet) Name() string { return r.name }

// Policy returns the set's match-combination policy.
func (r *RuleSet) Policy() MatchPolicy { return r.policy }

// Children returns the child rules in evaluation order.
func (r *RuleSet) Children() []Rule {
	out := make([]Rule, len(r.children))
	copy(out, r.children)
	return out
}

func (r *RuleSet) Eval(ctx any) (Outcome, error) {
	ok, err := r.condition.Evaluate(ctx)
	if err != nil {
		return NotMatched, err
	}
	if !ok {
		return NotMatched, nil
	}
	if r.policy == MatchFirst {
		return r.evalFirst(ctx)
	}
	return r.evalAll(ctx)
}

// evalFirst stops at the first child that matched and returns its
// outcome.
func (r *RuleSet) evalFirst(ctx any) (Outcome, error) {
	for _, c := range r.children {
		out, err := c.Eval(ctx)
		if err != nil {
			return NotMatched, err
		}
		if out.Matched() {
			return out, nil
		}
	}
	return NotMatched, nil
}

// evalAll folds AND over the children that matched. The first
// matched-false child decides the set immediately.
func (r *RuleSet) evalAll(ctx any) (Outcome, error) {
	matched := false
	for _, c := range r.children {
		out, err := c.Eval(ctx)
		if err != nil {
			return NotMatched, err
		}
		if !out.Matched() {
			continue
		}
		if !out.Value() {
			return MatchedFalse, nil
		}
		matched = true
	}
	if !matched {
		return NotMatched, nil
	}
	return MatchedTrue, nil
}
