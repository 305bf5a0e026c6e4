package chartpath

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Definition is a declarative description of a tree, typically kept in a
// YAML file:
//
//	name: editor
//	states:
//	  - id: Root
//	    states:
//	      - id: Editing
//	        type: parallel
//	        states:
//	          - id: Bold
//	          - id: Italic
type Definition struct {
	Name   string           `json:"name" yaml:"name"`
	States []NodeDefinition `json:"states" yaml:"states"`
}

// NodeDefinition describes one node and its children. Type is one of
// state (default), parallel, final, history, deepHistory or initial.
type NodeDefinition struct {
	ID     string           `json:"id" yaml:"id"`
	Type   string           `json:"type,omitempty" yaml:"type,omitempty"`
	States []NodeDefinition `json:"states,omitempty" yaml:"states,omitempty"`
}

// ParseDefinition decodes a YAML definition
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, &ConfigurationError{Component: "Definition", Issue: "decode yaml", Err: err}
	}
	return &def, nil
}

// LoadDefinition reads and decodes a YAML definition
func LoadDefinition(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return ParseDefinition(data)
}

// Build turns the definition into a Tree
func (d *Definition) Build() (*Tree, error) {
	if len(d.States) == 0 {
		return nil, &ConfigurationError{Component: "Definition", Issue: "no states", Err: ErrInvalidDefinition}
	}

	tb := NewTree(d.Name)
	for i := range d.States {
		nd := &d.States[i]
		kind, _, err := nd.kind()
		if err != nil {
			return nil, err
		}
		var nb NodeBuilder
		switch kind {
		case KindParallel:
			nb = tb.Parallel(nd.ID)
		case KindFinal:
			nb = tb.Final(nd.ID)
		case KindInitial:
			nb = tb.Initial(nd.ID)
		case KindHistory:
			return nil, &ConfigurationError{
				Component: "Definition",
				Issue:     fmt.Sprintf("history '%s' must have a parent", nd.ID),
				Err:       ErrInvalidDefinition,
			}
		default:
			nb = tb.State(nd.ID)
		}
		if err := nd.addChildren(nb); err != nil {
			return nil, err
		}
	}
	return tb.Build()
}

func (nd *NodeDefinition) kind() (Kind, bool, error) {
	kind, err := ParseKind(nd.Type)
	if err != nil {
		return kind, false, &ConfigurationError{
			Component: "Definition",
			Issue:     fmt.Sprintf("node '%s'", nd.ID),
			Err:       fmt.Errorf("%w: %v", ErrInvalidDefinition, err),
		}
	}
	return kind, nd.Type == "deepHistory", nil
}

func (nd *NodeDefinition) addChildren(parent NodeBuilder) error {
	for i := range nd.States {
		child := &nd.States[i]
		kind, deep, err := child.kind()
		if err != nil {
			return err
		}
		var nb NodeBuilder
		switch kind {
		case KindParallel:
			nb = parent.Parallel(child.ID)
		case KindFinal:
			nb = parent.Final(child.ID)
		case KindInitial:
			nb = parent.Initial(child.ID)
		case KindHistory:
			if deep {
				nb = parent.DeepHistory(child.ID)
			} else {
				nb = parent.History(child.ID)
			}
		default:
			nb = parent.State(child.ID)
		}
		if err := child.addChildren(nb); err != nil {
			return err
		}
	}
	return nil
}
