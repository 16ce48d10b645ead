package oasdown

import "fmt"

// TargetVersion is the version string stamped on every converted document.
const TargetVersion = "3.0.2"

// Rule rewrites a single object node and returns the (possibly replaced)
// node. Rules must be idempotent: the walk may revisit structure a rule left
// behind, and re-applying a rule to an already-rewritten node must be a
// no-op.
type Rule func(node D) D

// DefaultRules returns the rewrite rules for downgrading a 3.1 document:
// NullableUnions followed by CollapseExamples. The two touch disjoint
// fields, so their relative order does not affect the result.
func DefaultRules() []Rule {
	return []Rule{NullableUnions, CollapseExamples}
}

// NullableUnions strips null-typed branches from a node's anyOf list. OAS
// 3.0 has no union types; 3.1 expresses optionality as a {"type": "null"}
// branch, which 3.0 spells as a sibling nullable flag. If any branch was
// stripped, nullable is set to true. The anyOf field itself is kept even
// when the list becomes empty, and surviving branches are not validated.
func NullableUnions(node D) D {
	v, ok := node.Get("anyOf")
	if !ok {
		return node
	}
	branches, ok := v.(A)
	if !ok {
		return node
	}
	kept := make(A, 0, len(branches))
	for _, branch := range branches {
		if isNullType(branch) {
			continue
		}
		kept = append(kept, branch)
	}
	// Compare against this node's own pre-filter length, not anything
	// inherited from the document root.
	if len(kept) == len(branches) {
		return node
	}
	node = node.Set("anyOf", kept)
	return node.Set("nullable", true)
}

// isNullType reports whether v is an object whose type field is the string
// "null".
func isNullType(v any) bool {
	branch, ok := v.(D)
	if !ok {
		return false
	}
	t, ok := branch.Get("type")
	return ok && t == "null"
}

// CollapseExamples removes a node's examples field. OAS 3.0 supports only a
// single example value, so when the removed value is a non-empty list its
// first element becomes the node's example; otherwise no example is added.
func CollapseExamples(node D) D {
	node, removed, ok := node.Delete("examples")
	if !ok {
		return node
	}
	if list, ok := removed.(A); ok && len(list) > 0 {
		node = node.Set("example", list[0])
	}
	return node
}

// Converter downgrades OpenAPI 3.1.0 document trees to 3.0.2 by applying a
// fixed set of rules to every object node. The zero value is not usable;
// construct with New.
//
// A Converter holds no per-conversion state and may be reused, but each call
// must own its document tree exclusively: the conversion mutates nodes in
// place.
type Converter struct {
	rules []Rule
}

// New constructs a Converter. With no arguments it installs DefaultRules;
// callers that need different rewrites pass their own rules explicitly. There
// is no package-level registry to mutate.
func New(rules ...Rule) *Converter {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Converter{rules: rules}
}

// Convert is a convenience function equivalent to New().Convert(root).
func Convert(root any) (D, error) {
	return New().Convert(root)
}

// Convert rewrites the document tree rooted at root and returns the result.
// The root must be an object (a D); anything else violates the converter's
// precondition and fails fast with ErrNotDocument.
//
// The root's openapi field is overwritten with TargetVersion
// unconditionally, then every object node reachable through object values
// and array elements is rewritten by the configured rules, pre-order. The
// input tree is mutated in place; callers must not rely on it being left
// unmodified.
func (c *Converter) Convert(root any) (D, error) {
	doc, ok := root.(D)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotDocument, root)
	}
	doc = doc.Set("openapi", TargetVersion)
	return c.walkObject(doc), nil
}

// walk dispatches on the node kind. Scalars (string, float64, bool, nil)
// pass through untouched.
func (c *Converter) walk(v any) any {
	switch node := v.(type) {
	case D:
		return c.walkObject(node)
	case A:
		for i, elem := range node {
			node[i] = c.walk(elem)
		}
		return node
	default:
		return v
	}
}

// walkObject applies the rules to node, then descends into every value the
// rewritten node holds. Descending after the rewrite means values a rule
// introduced (a hoisted example, surviving anyOf branches) are walked too;
// rule idempotence makes the revisit harmless. Termination follows from the
// tree being finite and acyclic.
func (c *Converter) walkObject(node D) D {
	for _, rule := range c.rules {
		node = rule(node)
	}
	for i := range node {
		node[i].Value = c.walk(node[i].Value)
	}
	return node
}
