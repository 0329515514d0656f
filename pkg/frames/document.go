package frames

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of a stack.
type Document struct {
	Shape  []int     `yaml:"shape"`
	Values []float64 `yaml:"values,flow"`
	Mask   []bool    `yaml:"mask,omitempty,flow"`
}

// MaskDocument is the YAML form of a mask.
type MaskDocument struct {
	Shape []int  `yaml:"shape"`
	Mask  []bool `yaml:"mask,flow"`
}

// Document returns the stack's YAML form.
func (s *Stack) Document() Document {
	return Document{Shape: s.Shape(), Values: s.Values(), Mask: s.Mask()}
}

// Stack converts the document back into a stack.
func (d Document) Stack() (*Stack, error) {
	return NewMasked(d.Shape, d.Values, d.Mask)
}

// MarshalYAML implements yaml.Marshaler.
func (s *Stack) MarshalYAML() (interface{}, error) {
	return s.Document(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Stack) UnmarshalYAML(node *yaml.Node) error {
	var doc Document
	if err := node.Decode(&doc); err != nil {
		return err
	}
	decoded, err := doc.Stack()
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

// ReadYAML decodes a stack document from r.
func ReadYAML(r io.Reader) (*Stack, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding frame stack: %w", err)
	}
	return doc.Stack()
}

// WriteYAML encodes s as a stack document to w.
func WriteYAML(w io.Writer, s *Stack) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s.Document()); err != nil {
		return fmt.Errorf("error encoding frame stack: %w", err)
	}
	return enc.Close()
}

// ReadMaskYAML decodes a mask document from r.
func ReadMaskYAML(r io.Reader) (*Mask, error) {
	var doc MaskDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("error decoding mask: %w", err)
	}
	return NewMask(doc.Shape, doc.Mask)
}
