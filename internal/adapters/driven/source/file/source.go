// Package file implements the account source over a directory of YAML
// account files.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.AccountSource  = (*Source)(nil)
	_ driven.AccountWatcher = (*Source)(nil)
)

// Source reads accounts from a directory of YAML files. Each file is a
// mapping of account name to attribute mapping; the attribute
// "bitwarden", when present, carries the account's declared mapping.
type Source struct {
	dir string

	mu    sync.RWMutex
	attrs map[string]*yaml.Node
}

// New creates an account source over dir.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// Accounts reads every account file in lexical filename order and
// returns the accounts in declaration order. The attributes of each
// account are retained for Expand.
func (s *Source) Accounts(ctx context.Context) ([]domain.Account, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read accounts directory: %w", err)
	}

	var accounts []domain.Account
	attrs := make(map[string]*yaml.Node)
	declaredIn := make(map[string]string)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() || !isAccountFile(entry.Name()) {
			continue
		}

		parsed, err := parseAccountFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		for _, account := range parsed {
			if previous, dup := declaredIn[account.name]; dup {
				return nil, fmt.Errorf("%w: %s declared in both %s and %s",
					domain.ErrDuplicateAccount, account.name, previous, entry.Name())
			}
			declaredIn[account.name] = entry.Name()
			attrs[account.name] = account.attrs
			accounts = append(accounts, domain.Account{Name: account.name, Export: account.export})
		}
	}

	s.mu.Lock()
	s.attrs = attrs
	s.mu.Unlock()
	return accounts, nil
}

// isAccountFile reports whether name looks like an account file.
// Hidden files and editor droppings are ignored.
func isAccountFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// parsedAccount is one account as declared in its file.
type parsedAccount struct {
	name   string
	attrs  *yaml.Node
	export domain.Pairs
}

// parseAccountFile reads one YAML account file.
func parseAccountFile(path string) ([]parsedAccount, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	root := documentRoot(&doc)
	if root == nil {
		return nil, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse %s: top level must be a mapping of account names", path)
	}

	accounts := make([]parsedAccount, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		attrsNode := resolveAlias(root.Content[i+1])

		account := parsedAccount{name: name, attrs: attrsNode}
		if bwNode := childByKey(attrsNode, "bitwarden"); bwNode != nil {
			export, err := pairsFromNode(bwNode)
			if err != nil {
				return nil, fmt.Errorf("account %s in %s: bitwarden %w", name, filepath.Base(path), err)
			}
			account.export = export
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// documentRoot unwraps the document node. Empty files have no root.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		return resolveAlias(doc.Content[0])
	}
	if doc.Kind == 0 {
		return nil
	}
	return doc
}

// resolveAlias follows YAML anchors to the referenced node.
func resolveAlias(node *yaml.Node) *yaml.Node {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		return node.Alias
	}
	return node
}

// childByKey finds the value node for key in a mapping node.
func childByKey(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

// isNull reports whether node is a YAML null scalar.
func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

// pairsFromNode converts a mapping node into ordered pairs. A null
// node converts to an empty declaration.
func pairsFromNode(node *yaml.Node) (domain.Pairs, error) {
	node = resolveAlias(node)
	if isNull(node) {
		return domain.Pairs{}, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("must be a mapping (line %d)", node.Line)
	}

	pairs := make(domain.Pairs, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		value, err := valueFromNode(node.Content[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, domain.Pair{Key: node.Content[i].Value, Value: value})
	}
	return pairs, nil
}

// valueFromNode converts a YAML node into the declared value shapes.
// Scalars keep their raw source text, so 0123 survives as "0123".
func valueFromNode(node *yaml.Node) (any, error) {
	node = resolveAlias(node)
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Value, nil
	case yaml.MappingNode:
		return pairsFromNode(node)
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := valueFromNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("unsupported value (line %d)", node.Line)
	}
}
