// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// document.go: YAML graph documents.
//
// Shape:
//
//	start: 0            # optional; defaults to the first declared node
//	nodes:
//	  - id: 0
//	    value: {a: 1, b: 2}
//	  - id: 1
//	edges:
//	  - [0, 1]
//
// Decoding is strict: unknown fields are rejected. Build validates ids
// (ErrDuplicateID, ErrUnknownNode) before any node is created.

package builder

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ugraph/core"
)

const (
	methodDecode = "DecodeDocument"
	methodBuild  = "Document.Build"
	methodEncode = "Document.Encode"
	yamlIndent   = 2
)

// NodeSpec declares one node of a Document.
type NodeSpec struct {
	ID    int `yaml:"id"`
	Value any `yaml:"value,omitempty"`
}

// EdgeSpec declares one undirected edge as a two-element sequence [u, v].
type EdgeSpec [2]int

// MarshalYAML renders the edge in flow style ("[0, 1]").
func (e EdgeSpec) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range e {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(id),
		})
	}

	return n, nil
}

// Document is the serialisable description of a graph.
type Document struct {
	Start *int       `yaml:"start,omitempty"`
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges,omitempty"`
}

// DecodeDocument reads one YAML document from r.
// An empty stream yields ErrEmptyDocument.
func DecodeDocument(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", methodDecode, ErrEmptyDocument)
		}
		return nil, fmt.Errorf("%s: %w", methodDecode, err)
	}

	return &doc, nil
}

// Encode writes d as YAML to w.
func (d *Document) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("%s: %w", methodEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%s: %w", methodEncode, err)
	}

	return nil
}

// StartID returns the explicit start id, or the first declared node id.
// ok is false for a document without start and without nodes.
func (d *Document) StartID() (id int, ok bool) {
	switch {
	case d.Start != nil:
		return *d.Start, true
	case len(d.Nodes) > 0:
		return d.Nodes[0].ID, true
	default:
		return 0, false
	}
}

// Build validates d and materialises it: nodes are registered in declaration
// order and edges are linked in declaration order.
//
// Errors:
//   - ErrDuplicateID if two nodes share an id.
//   - ErrUnknownNode if an edge endpoint or the explicit start is not declared.
func (d *Document) Build() (*core.Graph[any], error) {
	byID := make(map[int]*core.Node[any], len(d.Nodes))
	g := core.NewGraph[any]()
	for i, spec := range d.Nodes {
		if _, dup := byID[spec.ID]; dup {
			return nil, fmt.Errorf("%s: nodes[%d]: id %d: %w", methodBuild, i, spec.ID, ErrDuplicateID)
		}
		n := core.NewNode(spec.ID, spec.Value)
		byID[spec.ID] = n
		g.AddNode(n)
	}

	for i, e := range d.Edges {
		for _, id := range e {
			if _, ok := byID[id]; !ok {
				return nil, fmt.Errorf("%s: edges[%d]: id %d: %w", methodBuild, i, id, ErrUnknownNode)
			}
		}
	}
	if d.Start != nil {
		if _, ok := byID[*d.Start]; !ok {
			return nil, fmt.Errorf("%s: start: id %d: %w", methodBuild, *d.Start, ErrUnknownNode)
		}
	}

	for _, e := range d.Edges {
		core.AddEdge(byID[e[0]], byID[e[1]])
	}

	return g, nil
}

// FromTopology describes t as a Document. valueFn may be nil (no values).
func FromTopology(t *Topology, valueFn func(id int) any) *Document {
	doc := &Document{}
	if t == nil {
		return doc
	}
	for _, id := range t.ids {
		spec := NodeSpec{ID: id}
		if valueFn != nil {
			spec.Value = valueFn(id)
		}
		doc.Nodes = append(doc.Nodes, spec)
	}
	for _, e := range t.edges {
		doc.Edges = append(doc.Edges, EdgeSpec{e.U, e.V})
	}

	return doc
}
