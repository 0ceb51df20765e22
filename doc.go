// Package verdict provides composable boolean decision logic: rules
// that evaluate against an arbitrary typed context, and an engine that
// selects the applicable rule for a request by longest-prefix matching
// over a hierarchical key path.
//
// Typical use is as follows:
//
//  1. Build boolean expressions for the data you evaluate against
//     (hand-written closures, the field accessor registry, or the cel
//     subpackage).
//  2. Combine them into ConditionAssertion leaves and RuleSet
//     composites, bottom-up.
//  3. Register the rule trees into an Engine under key paths.
//  4. At request time, call Eval with the context and the request's
//     key path; the deepest registered rule on the path governs.
//
// # Match semantics
//
// Every rule produces a three-valued Outcome: MatchedTrue,
// MatchedFalse, or NotMatched. NotMatched signals that the rule's
// precondition was not satisfied and the caller should apply its own
// default policy; it is deliberately distinct from MatchedFalse. A
// RuleSet combines the outcomes of its children under MatchAll
// (AND over the children that matched) or MatchFirst (first matching
// child wins).
//
// # Rule ownership
//
// Rules are immutable after construction and safe for concurrent
// evaluation. Build a rule tree bottom-up and do not modify it
// afterward; a rule must not be a child of more than one parent.
//
// # Concurrency
//
// Evaluation is synchronous and non-blocking. The Engine itself makes
// no guarantee for registrations racing with lookups; use SyncEngine
// when rules are reloaded while requests are served.
package verdict
