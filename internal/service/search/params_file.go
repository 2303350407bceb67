package search

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	models "gitlabsearch/internal/domain/models/search"

	"gopkg.in/yaml.v3"
)

// LoadParamsFile reads raw search params from a YAML mapping file
func LoadParamsFile(path string) (models.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open params file: %w", err)
	}
	defer func() { _ = f.Close() }()

	params, err := DecodeParams(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return params, nil
}

// DecodeParams decodes a YAML mapping of option name to scalar.
// Scalars keep their YAML kind: booleans, integers, timestamps and strings
// map onto the matching Value kinds. Quoted scalars are always strings.
// An empty document yields empty params.
func DecodeParams(r io.Reader) (models.Params, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return models.Params{}, nil
		}
		return nil, fmt.Errorf("failed to parse params: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("params must be a mapping (line %d)", root.Line)
	}

	params := make(models.Params, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, node := root.Content[i], root.Content[i+1]
		value, err := scalarValue(node)
		if err != nil {
			return nil, fmt.Errorf("option %q (line %d): %w", key.Value, node.Line, err)
		}
		params[key.Value] = value
	}
	return params, nil
}

func scalarValue(node *yaml.Node) (models.Value, error) {
	if node.Kind != yaml.ScalarNode {
		return models.Value{}, errors.New("value must be a scalar")
	}

	switch node.ShortTag() {
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return models.Value{}, err
		}
		return models.Bool(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return models.Value{}, err
		}
		return models.Int(i), nil
	case "!!timestamp":
		var t time.Time
		if err := node.Decode(&t); err != nil {
			return models.Value{}, err
		}
		return models.Time(t), nil
	case "!!str":
		return models.String(node.Value), nil
	default:
		return models.Value{}, fmt.Errorf("unsupported value type %s", node.ShortTag())
	}
}
