// Package genspec parses YAML generator descriptions into runnable
// generators.
//
// A description is a tree of nodes, each a single-key mapping naming the
// combinator to apply:
//
//	list:
//	  of:
//	    frequency:
//	      - weight: 3
//	        gen: {choose: {low: 0, high: 9}}
//	      - weight: 1
//	        gen: {elements: [x, y, z]}
//
// A suchthat node narrows another node with a filter expression
// (see compilePredicate for the expression language):
//
//	suchthat:
//	  pred: Even() && Gt(3)
//	  of: {choose: {low: 0, high: 99}}
//
// suchthat inherits the unbounded retry of gen.SuchThat: sampling never
// returns for an expression no drawn value can satisfy.
//
// Descriptions come from files, so precondition violations (empty element
// lists, inverted bounds, non-positive weights, malformed expressions) are
// reported as errors rather than the panics the gen package uses for
// programmatic misuse.
package genspec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/nomagicln/quickgen/pkg/gen"
)

// UnknownKindError reports a node whose key names no known combinator.
type UnknownKindError struct {
	Kind string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown generator kind %q", e.Kind)
}

// Parse builds a generator from a YAML description.
func Parse(data []byte) (gen.Gen[any], error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty generator description")
	}
	return build(doc.Content[0])
}

func build(n *yaml.Node) (gen.Gen[any], error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, fmt.Errorf("line %d: generator node must be a single-key mapping", n.Line)
	}
	kind, body := n.Content[0].Value, n.Content[1]

	switch kind {
	case "const":
		var v any
		if err := body.Decode(&v); err != nil {
			return nil, fmt.Errorf("const: %w", err)
		}
		return gen.Pure(v), nil

	case "choose":
		return buildChoose(body)

	case "elements":
		vs, err := decodeScalars(body, kind)
		if err != nil {
			return nil, err
		}
		return gen.Elements(vs...), nil

	case "growing":
		vs, err := decodeScalars(body, kind)
		if err != nil {
			return nil, err
		}
		return gen.GrowingElements(vs...), nil

	case "oneof":
		gens, err := buildSeq(body, kind)
		if err != nil {
			return nil, err
		}
		return gen.OneOf(gens...), nil

	case "frequency":
		return buildFrequency(body)

	case "vector":
		return buildVector(body)

	case "list":
		of, err := buildOf(body, kind)
		if err != nil {
			return nil, err
		}
		return gen.Map(gen.ListOf(of), toAny), nil

	case "list1":
		of, err := buildOf(body, kind)
		if err != nil {
			return nil, err
		}
		return gen.Map(gen.ListOf1(of), toAny), nil

	case "resize":
		return buildResize(body)

	case "suchthat":
		return buildSuchThat(body)

	default:
		return nil, &UnknownKindError{Kind: kind}
	}
}

func buildChoose(body *yaml.Node) (gen.Gen[any], error) {
	var bounds struct {
		Low  int64 `yaml:"low"`
		High int64 `yaml:"high"`
	}
	if err := body.Decode(&bounds); err != nil {
		return nil, fmt.Errorf("choose: %w", err)
	}
	if bounds.Low > bounds.High {
		return nil, fmt.Errorf("choose: low (%d) > high (%d)", bounds.Low, bounds.High)
	}
	return gen.Map(gen.Choose(bounds.Low, bounds.High), func(v int64) any {
		return v
	}), nil
}

func buildFrequency(body *yaml.Node) (gen.Gen[any], error) {
	var entries []struct {
		Weight int       `yaml:"weight"`
		Gen    yaml.Node `yaml:"gen"`
	}
	if err := body.Decode(&entries); err != nil {
		return nil, fmt.Errorf("frequency: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("frequency: no alternatives given")
	}
	weighted := make([]gen.Weighted[any], len(entries))
	for i, e := range entries {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("frequency: entry %d: weight %d is not positive", i, e.Weight)
		}
		g, err := build(&entries[i].Gen)
		if err != nil {
			return nil, fmt.Errorf("frequency: entry %d: %w", i, err)
		}
		weighted[i] = gen.Weighted[any]{Weight: e.Weight, Gen: g}
	}
	return gen.Frequency(weighted...), nil
}

func buildVector(body *yaml.Node) (gen.Gen[any], error) {
	var spec struct {
		Count int       `yaml:"count"`
		Of    yaml.Node `yaml:"of"`
	}
	if err := body.Decode(&spec); err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	if spec.Count < 0 {
		return nil, fmt.Errorf("vector: negative count %d", spec.Count)
	}
	of, err := build(&spec.Of)
	if err != nil {
		return nil, fmt.Errorf("vector: %w", err)
	}
	return gen.Map(gen.VectorOf(spec.Count, of), toAny), nil
}

func buildResize(body *yaml.Node) (gen.Gen[any], error) {
	var spec struct {
		Size int       `yaml:"size"`
		Of   yaml.Node `yaml:"of"`
	}
	if err := body.Decode(&spec); err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	if spec.Size < 0 {
		return nil, fmt.Errorf("resize: negative size %d", spec.Size)
	}
	of, err := build(&spec.Of)
	if err != nil {
		return nil, fmt.Errorf("resize: %w", err)
	}
	return gen.Resize(spec.Size, of), nil
}

func buildSuchThat(body *yaml.Node) (gen.Gen[any], error) {
	var spec struct {
		Pred string    `yaml:"pred"`
		Of   yaml.Node `yaml:"of"`
	}
	if err := body.Decode(&spec); err != nil {
		return nil, fmt.Errorf("suchthat: %w", err)
	}
	if spec.Pred == "" {
		return nil, fmt.Errorf("suchthat: missing pred expression")
	}
	pred, err := compilePredicate(spec.Pred)
	if err != nil {
		return nil, fmt.Errorf("suchthat: %w", err)
	}
	of, err := build(&spec.Of)
	if err != nil {
		return nil, fmt.Errorf("suchthat: %w", err)
	}
	return gen.SuchThat(of, pred), nil
}

func buildOf(body *yaml.Node, kind string) (gen.Gen[any], error) {
	var spec struct {
		Of yaml.Node `yaml:"of"`
	}
	if err := body.Decode(&spec); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	of, err := build(&spec.Of)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return of, nil
}

func buildSeq(body *yaml.Node, kind string) ([]gen.Gen[any], error) {
	if body.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s: expected a sequence, got %s", kind, nodeKind(body))
	}
	if len(body.Content) == 0 {
		return nil, fmt.Errorf("%s: no alternatives given", kind)
	}
	gens := make([]gen.Gen[any], len(body.Content))
	for i, c := range body.Content {
		g, err := build(c)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", kind, i, err)
		}
		gens[i] = g
	}
	return gens, nil
}

func decodeScalars(body *yaml.Node, kind string) ([]any, error) {
	var vs []any
	if err := body.Decode(&vs); err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	if len(vs) == 0 {
		return nil, fmt.Errorf("%s: no elements given", kind)
	}
	return vs, nil
}

func toAny(vs []any) any { return vs }

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "node"
	}
}
