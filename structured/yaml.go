package structured

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

const (
	yamlStrTag    = "!!str"
	yamlIntTag    = "!!int"
	yamlFloatTag  = "!!float"
	yamlBoolTag   = "!!bool"
	yamlBinaryTag = "!!binary"
	yamlSeqTag    = "!!seq"
	yamlMapTag    = "!!map"
	yamlTimeTag   = "!!timestamp"
	yamlIndent    = 2
	yamlMergeKey  = "<<"

	// Nodes a document may expand to through aliases, per input byte.
	yamlExpansionRatio = 32
	yamlMinNodeBudget  = 1024
)

func marshalYAML(v Value) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)

	if err := enc.Encode(toYAMLNode(v)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnserializable, err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnserializable, err)
	}

	return buf.Bytes(), nil
}

func toYAMLNode(v Value) *yaml.Node {
	switch val := v.(type) {
	case String:
		return yamlString(string(val))
	case Int:
		return yamlScalar(yamlIntTag, strconv.FormatInt(int64(val), 10))
	case Float:
		return yamlScalar(yamlFloatTag, formatYAMLFloat(float64(val)))
	case Bool:
		return yamlScalar(yamlBoolTag, strconv.FormatBool(bool(val)))
	case Blob:
		return yamlScalar(yamlBinaryTag, base64.StdEncoding.EncodeToString(val))

	case Sequence:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: yamlSeqTag}
		for _, elem := range val {
			node.Content = append(node.Content, toYAMLNode(elem))
		}

		return node

	case Mapping:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMapTag}
		for _, p := range val {
			node.Content = append(node.Content, yamlString(p.Key), toYAMLNode(p.Value))
		}

		return node

	default:
		// Unreachable for validated values.
		return yamlScalar(yamlStrTag, "")
	}
}

func yamlScalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// yamlString returns a string node. Strings the plain or block styles would
// not read back verbatim are double quoted: block scalars drop leading line
// breaks and a plain "<<" resolves to a merge key.
func yamlString(value string) *yaml.Node {
	node := yamlScalar(yamlStrTag, value)

	if value == yamlMergeKey || strings.IndexFunc(value, needsQuoting) >= 0 {
		node.Style = yaml.DoubleQuotedStyle
	}

	return node
}

func needsQuoting(r rune) bool {
	return !unicode.IsPrint(r)
}

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func unmarshalYAML(data []byte) (Value, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: no document", ErrMalformed)
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: more than one document", ErrMalformed)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) != 1 {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		root = root.Content[0]
	}

	r := &yamlReader{budget: yamlExpansionRatio*len(data) + yamlMinNodeBudget}

	return r.fromNode(root, 0)
}

// yamlReader converts node trees into values. Every visited node is charged
// against the budget, so aliases cannot expand a small document into an
// arbitrarily large value.
type yamlReader struct {
	budget int
}

//nolint:cyclop
func (r *yamlReader) fromNode(node *yaml.Node, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformed, MaxDepth)
	}

	r.budget--
	if r.budget < 0 {
		return nil, fmt.Errorf("%w: alias expansion too large at line %d", ErrMalformed, node.Line)
	}

	switch node.Kind {
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, fmt.Errorf("%w: dangling alias at line %d", ErrMalformed, node.Line)
		}

		return r.fromNode(node.Alias, depth+1)

	case yaml.ScalarNode:
		return fromYAMLScalar(node)

	case yaml.SequenceNode:
		if node.ShortTag() != yamlSeqTag {
			return nil, fmt.Errorf("%w: unsupported tag %s at line %d", ErrMalformed, node.Tag, node.Line)
		}

		seq := make(Sequence, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := r.fromNode(child, depth+1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, v)
		}

		return seq, nil

	case yaml.MappingNode:
		return r.fromMapping(node, depth)

	default:
		return nil, fmt.Errorf("%w: unexpected node at line %d", ErrMalformed, node.Line)
	}
}

func (r *yamlReader) fromMapping(node *yaml.Node, depth int) (Value, error) {
	if node.ShortTag() != yamlMapTag || len(node.Content)%2 != 0 {
		return nil, fmt.Errorf("%w: unsupported mapping at line %d", ErrMalformed, node.Line)
	}

	m := make(Mapping, 0, len(node.Content)/2)
	seen := make(map[string]struct{}, len(node.Content)/2)

	for i := 0; i < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		for keyNode.Kind == yaml.AliasNode && keyNode.Alias != nil {
			keyNode = keyNode.Alias
		}

		if keyNode.Kind != yaml.ScalarNode || keyNode.ShortTag() != yamlStrTag {
			return nil, fmt.Errorf("%w: non-string mapping key at line %d", ErrMalformed, keyNode.Line)
		}

		if _, ok := seen[keyNode.Value]; ok {
			return nil, fmt.Errorf("%w: duplicate mapping key %q at line %d", ErrMalformed, keyNode.Value, keyNode.Line)
		}
		seen[keyNode.Value] = struct{}{}

		v, err := r.fromNode(node.Content[i+1], depth+1)
		if err != nil {
			return nil, err
		}

		m = append(m, Pair{Key: keyNode.Value, Value: v})
	}

	return m, nil
}

//nolint:cyclop
func fromYAMLScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case yamlStrTag, yamlTimeTag:
		return String(node.Value), nil

	case yamlIntTag:
		i, err := strconv.ParseInt(strings.ReplaceAll(node.Value, "_", ""), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer at line %d: %w", ErrMalformed, node.Line, err)
		}

		return Int(i), nil

	case yamlFloatTag:
		f, err := parseYAMLFloat(node.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: float at line %d: %w", ErrMalformed, node.Line, err)
		}

		return Float(f), nil

	case yamlBoolTag:
		switch strings.ToLower(node.Value) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		default:
			return nil, fmt.Errorf("%w: boolean %q at line %d", ErrMalformed, node.Value, node.Line)
		}

	case yamlBinaryTag:
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(node.Value), ""))
		if err != nil {
			return nil, fmt.Errorf("%w: binary at line %d: %w", ErrMalformed, node.Line, err)
		}

		return Blob(b), nil

	default:
		return nil, fmt.Errorf("%w: unsupported tag %s at line %d", ErrMalformed, node.ShortTag(), node.Line)
	}
}

func parseYAMLFloat(s string) (float64, error) {
	switch strings.ToLower(s) {
	case ".inf", "+.inf":
		return math.Inf(1), nil
	case "-.inf":
		return math.Inf(-1), nil
	case ".nan":
		return math.NaN(), nil
	default:
		return strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	}
}
