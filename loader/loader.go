// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cfpq/core"
	"github.com/katalvlaran/cfpq/reach"
	"github.com/katalvlaran/cfpq/rsm"
	"github.com/katalvlaran/cfpq/wcnf"
)

// Sentinel errors for document loading.
var (
	// ErrMalformed is returned when the YAML does not match the layout.
	ErrMalformed = errors.New("loader: malformed document")

	// ErrNoGrammar is returned when neither grammar nor cfg is present.
	ErrNoGrammar = errors.New("loader: document has no grammar")

	// ErrNoCFG is returned when a normal-form grammar is required but absent.
	ErrNoCFG = errors.New("loader: document has no cfg section")
)

// Document is a decoded query file.
type Document struct {
	Graph     GraphDoc    `yaml:"graph"`
	Grammar   *GrammarDoc `yaml:"grammar,omitempty"`
	CFG       *CFGDoc     `yaml:"cfg,omitempty"`
	Filter    FilterDoc   `yaml:"filter,omitempty"`
	Algorithm string      `yaml:"algorithm,omitempty"`
}

// GraphDoc lists the graph edges and any isolated nodes.
type GraphDoc struct {
	Nodes []int     `yaml:"nodes,omitempty"`
	Edges []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is a [from, to, label] triple.
type EdgeDoc core.Edge

// UnmarshalYAML decodes the flow sequence form.
func (e *EdgeDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 3 {
		return fmt.Errorf("line %d: edge must be [from, to, label]: %w", n.Line, ErrMalformed)
	}
	if err := n.Content[0].Decode(&e.From); err != nil {
		return fmt.Errorf("line %d: edge source: %w", n.Line, ErrMalformed)
	}
	if err := n.Content[1].Decode(&e.To); err != nil {
		return fmt.Errorf("line %d: edge target: %w", n.Line, ErrMalformed)
	}

	if err := n.Content[2].Decode(&e.Label); err != nil {
		return fmt.Errorf("line %d: edge label: %w", n.Line, ErrMalformed)
	}

	return nil
}

// MarshalYAML writes the flow sequence form.
func (e EdgeDoc) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []any{e.From, e.To, e.Label} {
		var c yaml.Node
		if err := c.Encode(v); err != nil {
			return nil, err
		}
		n.Content = append(n.Content, &c)
	}

	return n, nil
}

// GrammarDoc describes an RSM.
type GrammarDoc struct {
	Start string            `yaml:"start"`
	Boxes map[string]BoxDoc `yaml:"boxes"`
}

// BoxDoc describes one box. Terminals are [from, label, to] and calls are
// [from, box, to].
type BoxDoc struct {
	Start     string   `yaml:"start"`
	Finals    []string `yaml:"finals,omitempty"`
	Terminals []Triple `yaml:"terminals,omitempty"`
	Calls     []Triple `yaml:"calls,omitempty"`
}

// Triple is a three-string flow sequence.
type Triple [3]string

// UnmarshalYAML accepts exactly three scalars.
func (t *Triple) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) != 3 {
		return fmt.Errorf("line %d: transition must have three items: %w", n.Line, ErrMalformed)
	}
	for i, c := range n.Content {
		if c.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: transition item %d is not a scalar: %w", c.Line, i, ErrMalformed)
		}
		t[i] = c.Value
	}

	return nil
}

// CFGDoc is a grammar in the text form accepted by wcnf.Parse.
type CFGDoc struct {
	Start       string   `yaml:"start"`
	Productions []string `yaml:"productions"`
}

// FilterDoc restricts answer endpoints.
type FilterDoc struct {
	Start []int `yaml:"start,omitempty"`
	Final []int `yaml:"final,omitempty"`
}

// Decode reads one document from r, rejecting unknown fields.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Document
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("loader: empty input: %w", ErrMalformed)
		}
		if errors.Is(err, ErrMalformed) {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return nil, fmt.Errorf("loader: %v: %w", err, ErrMalformed)
	}
	if d.Grammar == nil && d.CFG == nil {
		return nil, ErrNoGrammar
	}

	return &d, nil
}

// Parse decodes a document held in memory.
func Parse(data []byte) (*Document, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the file at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Encode writes d as YAML.
func Encode(w io.Writer, d *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("loader: %w", err)
	}

	return enc.Close()
}

// BuildGraph materializes the graph section.
func (d *Document) BuildGraph(opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	if err := g.AddNodes(d.Graph.Nodes...); err != nil {
		return nil, fmt.Errorf("loader: graph nodes: %w", err)
	}
	for i, e := range d.Graph.Edges {
		if err := g.AddEdge(e.From, e.To, e.Label); err != nil {
			return nil, fmt.Errorf("loader: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// HasRSM reports whether the document carries a grammar section.
func (d *Document) HasRSM() bool { return d.Grammar != nil }

// HasCFG reports whether the document carries a cfg section.
func (d *Document) HasCFG() bool { return d.CFG != nil }

// BuildRSM returns the grammar section as an RSM, or the cfg section
// converted with wcnf.ToRSM when only that is present.
func (d *Document) BuildRSM() (*rsm.RSM, error) {
	if d.Grammar == nil {
		if d.CFG == nil {
			return nil, ErrNoGrammar
		}
		gr, err := d.BuildCFG()
		if err != nil {
			return nil, err
		}
		return wcnf.ToRSM(gr)
	}

	b := rsm.NewBuilder(d.Grammar.Start)
	names := make([]string, 0, len(d.Grammar.Boxes))
	for name := range d.Grammar.Boxes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		box := d.Grammar.Boxes[name]
		bb := b.Box(name, box.Start).Final(box.Finals...)
		for _, t := range box.Terminals {
			bb.Terminal(t[0], t[1], t[2])
		}
		for _, c := range box.Calls {
			bb.Call(c[0], c[1], c[2])
		}
	}
	r, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("loader: grammar: %w", err)
	}

	return r, nil
}

// BuildCFG parses the cfg section.
func (d *Document) BuildCFG() (*wcnf.Grammar, error) {
	if d.CFG == nil {
		return nil, ErrNoCFG
	}
	gr, err := wcnf.Parse(d.CFG.Start, d.CFG.Productions)
	if err != nil {
		return nil, fmt.Errorf("loader: cfg: %w", err)
	}

	return gr, nil
}

// ReachFilter returns the filter section.
func (d *Document) ReachFilter() reach.Filter {
	return reach.Filter{Start: d.Filter.Start, Final: d.Filter.Final}
}
