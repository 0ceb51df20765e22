package verdict

// Outcome is the three-valued result of evaluating a rule against a
// context. NotMatched means the rule's precondition was not satisfied
// and the caller should fall back on its own default policy; it is a
// different state from MatchedFalse, which means the rule applied and
// decided false.
type Outcome int

const (
	// NotMatched: the rule's condition did not hold, so the rule has no
	// opinion about the context.
	NotMatched Outcome = iota

	// MatchedFalse: the condition held and the assertion was false.
	MatchedFalse

	// MatchedTrue: the condition held and the assertion was true.
	MatchedTrue
)

// Matched returns the outcome for a rule whose condition held and whose
// assertion produced v.
func Matched(v bool) Outcome {
	if v {
		return MatchedTrue
	}
	return MatchedFalse
}

// Matched reports whether the rule's condition held.
func (o Outcome) Matched() bool { return o != NotMatched }

// Value is the boolean the rule decided. It is false for both
// MatchedFalse and NotMatched; check Matched to tell the two apart.
func (o Outcome) Value() bool { return o == MatchedTrue }

func (o Outcome) String() string {
	switch o {
	case MatchedTrue:
		return "matched(true)"
	case MatchedFalse:
		return "matched(false)"
	default:
		return "not matched"
	}
}
