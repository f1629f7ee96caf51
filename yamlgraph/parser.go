package yamlgraph

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
)

// typeKey is the reserved mapping key naming an object's type.
const typeKey = "_type"

// defaultType is the type of a mapping that does not declare one.
const defaultType = "Group"

// Parser implements inspect.Parser and inspect.FormatValidator for the YAML
// document convention. The zero value is ready to use.
type Parser struct{}

// New returns a Parser.
func New() *Parser { return &Parser{} }

// Parse reads the file and builds its object graph. The root object is
// named after the file (without extension).
func (p *Parser) Parse(ctx context.Context, path string) (graph.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := loadDocument(path)
	if err != nil {
		return nil, err
	}
	b := builder{
		built:   make(map[*yaml.Node]*graph.Object),
		onStack: make(map[*yaml.Node]struct{}),
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return b.object(name, doc)
}

// ValidateFormat reports format-level problems without building the graph:
// a non-mapping root, a non-string _type, or an unresolvable alias. These
// surface at the reserved format-validation importance.
func (p *Parser) ValidateFormat(ctx context.Context, path string) ([]message.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := loadDocument(path)
	if err != nil {
		// Parse will report the same failure; nothing format-level to add.
		return nil, nil
	}
	var msgs []message.Message
	validateNode(doc, "", &msgs)
	return msgs, nil
}

func validateNode(yn *yaml.Node, path string, msgs *[]message.Message) {
	yn = resolved(yn)
	if yn == nil || yn.Kind != yaml.MappingNode {
		*msgs = append(*msgs, message.Message{
			CheckName: "validate_format",
			Text:      fmt.Sprintf("expected a mapping at %q", path),
			Location:  path,
		})
		return
	}
	for i := 0; i+1 < len(yn.Content); i += 2 {
		key, val := yn.Content[i], resolved(yn.Content[i+1])
		if val == nil {
			continue
		}
		if key.Value == typeKey && val.Kind != yaml.ScalarNode {
			*msgs = append(*msgs, message.Message{
				CheckName: "validate_format",
				Text:      fmt.Sprintf("%s must be a string at %q", typeKey, path),
				Location:  path,
			})
			continue
		}
		if val.Kind == yaml.MappingNode {
			validateNode(val, graph.JoinPath(path, key.Value), msgs)
		}
	}
}

func loadDocument(path string) (*yaml.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parse %s: empty document", path)
	}
	return doc.Content[0], nil
}

type builder struct {
	built   map[*yaml.Node]*graph.Object
	onStack map[*yaml.Node]struct{}
}

// object converts a YAML mapping into a graph object. Anchored subtrees are
// built once and shared; an alias cycle is a parse error.
func (b *builder) object(name string, yn *yaml.Node) (*graph.Object, error) {
	yn = resolved(yn)
	if yn == nil {
		return nil, fmt.Errorf("object %q: unresolvable alias", name)
	}
	if yn.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("object %q: expected a mapping, got %s", name, kindName(yn.Kind))
	}
	if obj, ok := b.built[yn]; ok {
		return obj, nil
	}
	if _, ok := b.onStack[yn]; ok {
		return nil, fmt.Errorf("object %q: alias cycle", name)
	}
	b.onStack[yn] = struct{}{}
	defer delete(b.onStack, yn)

	typeName := defaultType
	for i := 0; i+1 < len(yn.Content); i += 2 {
		if yn.Content[i].Value != typeKey {
			continue
		}
		val := resolved(yn.Content[i+1])
		if val == nil || val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("object %q: %s must be a string", name, typeKey)
		}
		typeName = val.Value
	}

	obj := graph.NewObject(typeName, name)
	for i := 0; i+1 < len(yn.Content); i += 2 {
		key := yn.Content[i].Value
		val := resolved(yn.Content[i+1])
		if val == nil {
			return nil, fmt.Errorf("object %q: unresolvable alias under %q", name, key)
		}
		switch {
		case key == typeKey:
			// Handled above.
		case val.Kind == yaml.MappingNode:
			child, err := b.object(key, val)
			if err != nil {
				return nil, err
			}
			obj.AddChild(key, child)
		case val.Kind == yaml.SequenceNode && isMappingSeq(val):
			for idx, item := range val.Content {
				edge := graph.JoinPath(key, strconv.Itoa(idx))
				child, err := b.object(edge, item)
				if err != nil {
					return nil, err
				}
				obj.AddChild(edge, child)
			}
		default:
			var v any
			if err := val.Decode(&v); err != nil {
				return nil, fmt.Errorf("object %q: attribute %q: %w", name, key, err)
			}
			obj.SetAttr(key, v)
		}
	}
	b.built[yn] = obj
	return obj, nil
}

// resolved follows alias nodes to their anchor. Returns nil for a dangling
// alias.
func resolved(yn *yaml.Node) *yaml.Node {
	for yn != nil && yn.Kind == yaml.AliasNode {
		yn = yn.Alias
	}
	return yn
}

// isMappingSeq reports whether every element of a sequence is a mapping,
// i.e. the sequence denotes indexed children rather than an array attribute.
func isMappingSeq(yn *yaml.Node) bool {
	if len(yn.Content) == 0 {
		return false
	}
	for _, item := range yn.Content {
		if r := resolved(item); r == nil || r.Kind != yaml.MappingNode {
			return false
		}
	}
	return true
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
