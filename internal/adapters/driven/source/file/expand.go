package file

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kenkundert/bw-export/internal/core/domain"
)

// Expand substitutes {path} references in text with attribute values
// of the named account, as loaded by the last Accounts call. Dotted
// paths walk nested mappings by key and sequences by index. {{ and }}
// are literal braces. Substituted text is not re-scanned.
func (s *Source) Expand(_ context.Context, account, text string) (string, error) {
	s.mu.RLock()
	attrs, ok := s.attrs[account]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: unknown account %s", domain.ErrExpansion, account)
	}

	var out strings.Builder
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "{{"):
			out.WriteByte('{')
			i += 2
		case strings.HasPrefix(text[i:], "}}"):
			out.WriteByte('}')
			i += 2
		case text[i] == '{':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: unterminated reference in %q", domain.ErrExpansion, text)
			}
			ref := text[i+1 : i+1+end]
			value, err := lookupAttribute(attrs, ref)
			if err != nil {
				return "", fmt.Errorf("%w: account %s: %v", domain.ErrExpansion, account, err)
			}
			out.WriteString(value)
			i += end + 2
		default:
			out.WriteByte(text[i])
			i++
		}
	}
	return out.String(), nil
}

// lookupAttribute resolves a dotted reference to a scalar attribute.
func lookupAttribute(attrs *yaml.Node, ref string) (string, error) {
	segments := strings.Split(ref, ".")

	// The declared mapping is input, not an attribute
	if segments[0] == "bitwarden" {
		return "", fmt.Errorf("{%s} is not addressable", ref)
	}

	node := attrs
	for _, segment := range segments {
		node = resolveAlias(node)
		switch node.Kind {
		case yaml.MappingNode:
			next := childByKey(node, segment)
			if next == nil {
				return "", fmt.Errorf("unknown attribute {%s}", ref)
			}
			node = next
		case yaml.SequenceNode:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node.Content) {
				return "", fmt.Errorf("no element %q in {%s}", segment, ref)
			}
			node = resolveAlias(node.Content[index])
		default:
			return "", fmt.Errorf("attribute {%s} has no member %q", ref, segment)
		}
	}

	node = resolveAlias(node)
	if node.Kind != yaml.ScalarNode || isNull(node) {
		return "", fmt.Errorf("{%s} does not name a scalar attribute", ref)
	}
	return node.Value, nil
}
