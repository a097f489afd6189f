// Package yamlblock parses inline custom-field blocks as YAML
// mappings.
package yamlblock

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.FieldBlockParser = (*Parser)(nil)

// Parser parses the string form of a fields declaration. The block
// must be a YAML mapping of scalars; values keep their raw source
// text, so 0123 survives as "0123".
type Parser struct{}

// New creates a new field block parser.
func New() *Parser {
	return &Parser{}
}

// ParseFields parses one custom-field block in declaration order.
func (p *Parser) ParseFields(text string) (domain.Pairs, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedFieldBlock, err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return domain.Pairs{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: not a mapping of field names to values", domain.ErrMalformedFieldBlock)
	}

	pairs := make(domain.Pairs, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: field %q must have a scalar value", domain.ErrMalformedFieldBlock, key.Value)
		}
		pairs = append(pairs, domain.Pair{Key: key.Value, Value: value.Value})
	}
	return pairs, nil
}
