// Package decl loads declarative rule definitions from YAML and
// registers the compiled rule trees into an engine.
//
// A definition document is a list of rules. A definition with child
// rules builds a RuleSet; one without builds a ConditionAssertion and
// must carry an assertion. Conditions and assertions are CEL
// expressions compiled against the environment supplied at
// registration:
//
//	rules:
//	  - path: [checkout, payment]
//	    name: payment
//	    policy: first
//	    condition: "amount > 0"
//	    rules:
//	      - name: big-order
//	        condition: "amount > 1000"
//	        assertion: "tier == 'gold'"
package decl

import (
	"fmt"
	"io"
	"os"

	"github.com/google/cel-go/cel"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/verdicthq/verdict"
	vcel "github.com/verdicthq/verdict/cel"
	"github.com/verdicthq/verdict/expr"
)

// File is a parsed rule definition document.
type File struct {
	Rules []Definition `yaml:"rules"`
}

// Definition describes one rule in a document.
type Definition struct {
	// Path is the key sequence the rule is registered under. Required
	// on top-level definitions, not allowed on nested ones.
	Path []string `yaml:"path,omitempty"`

	// Name is diagnostic only. A name is generated when empty.
	Name string `yaml:"name,omitempty"`

	// Condition is a CEL expression guarding the rule. Empty means the
	// rule always applies.
	Condition string `yaml:"condition,omitempty"`

	// Assertion is the CEL expression a leaf rule produces its value
	// from. Required on leaves, not allowed on definitions with child
	// rules.
	Assertion string `yaml:"assertion,omitempty"`

	// Policy combines child outcomes: "all" (default) or "first".
	Policy string `yaml:"policy,omitempty"`

	// Rules are the child definitions, evaluated in document order.
	Rules []Definition `yaml:"rules,omitempty"`
}

// Load parses a rule definition document. Unknown fields are rejected.
func Load(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing rule definitions: %w", err)
	}
	return &f, nil
}

// LoadFile parses the rule definition document at path.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule definitions: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Register compiles every definition's expressions in env and
// registers the built rule trees into eng under their paths. On error
// nothing may have been registered, or a prefix of the document may
// have been; callers that need atomicity should register into a fresh
// engine and swap it in.
func (f *File) Register(eng *verdict.Engine[string], env *cel.Env) error {
	for i := range f.Rules {
		d := &f.Rules[i]
		if len(d.Path) == 0 {
			return fmt.Errorf("rule %s: missing path", d.displayName())
		}
		r, err := d.build(env, true)
		if err != nil {
			return err
		}
		eng.Register(r, d.Path...)
	}
	return nil
}

func (d *Definition) displayName() string {
	if d.Name != "" {
		return d.Name
	}
	return "(unnamed)"
}

func (d *Definition) build(env *cel.Env, top bool) (verdict.Rule, error) {
	if !top && len(d.Path) > 0 {
		return nil, fmt.Errorf("rule %s: path is only allowed on top-level rules", d.displayName())
	}
	name := d.Name
	if name == "" {
		name = uuid.NewString()
	}
	cond, err := compileCondition(env, d.Condition)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", d.displayName(), err)
	}

	if len(d.Rules) == 0 {
		if d.Assertion == "" {
			return nil, fmt.Errorf("rule %s: a leaf definition requires an assertion", d.displayName())
		}
		assert, err := vcel.Compile(env, d.Assertion)
		if err != nil {
			return nil, fmt.Errorf("rule %s: assertion: %w", d.displayName(), err)
		}
		return verdict.NewConditionAssertion(name, cond, assert), nil
	}

	if d.Assertion != "" {
		return nil, fmt.Errorf("rule %s: a definition with child rules cannot have an assertion", d.displayName())
	}
	policy, err := parsePolicy(d.Policy)
	if err != nil {
		return nil, fmt.Errorf("rule %s: %w", d.displayName(), err)
	}
	children := make([]verdict.Rule, 0, len(d.Rules))
	for i := range d.Rules {
		c, err := d.Rules[i].build(env, false)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return verdict.NewRuleSet(name, cond, policy, children...), nil
}

func compileCondition(env *cel.Env, src string) (expr.Expression[bool], error) {
	if src == "" {
		return expr.Constant(true), nil
	}
	e, err := vcel.Compile(env, src)
	if err != nil {
		return nil, fmt.Errorf("condition: %w", err)
	}
	return e, nil
}

func parsePolicy(s string) (verdict.MatchPolicy, error) {
	switch s {
	case "", "all":
		return verdict.MatchAll, nil
	case "first":
		return verdict.MatchFirst, nil
	default:
		return verdict.MatchAll, fmt.Errorf("unknown match policy %q", s)
	}
}
