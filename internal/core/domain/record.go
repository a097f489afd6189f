package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Record is one assembled output item: a nested mapping keyed by the
// target schema's field names.
type Record map[string]any

// Set writes value at the location addressed by path, creating
// intermediate mappings as needed. A Record value merges key-by-key
// into the mapping already at the location (so several declared fields
// can contribute to one nested object); any other value replaces what
// is there.
func (r Record) Set(path []string, value any) error {
	if len(path) == 0 {
		return errors.New("empty output path")
	}
	current := r
	for i, key := range path[:len(path)-1] {
		next, ok := current[key]
		if !ok {
			child := Record{}
			current[key] = child
			current = child
			continue
		}
		child, ok := next.(Record)
		if !ok {
			return fmt.Errorf("output path %q blocked by a scalar at %q",
				strings.Join(path, "."), strings.Join(path[:i+1], "."))
		}
		current = child
	}

	leaf := path[len(path)-1]
	if m, ok := value.(Record); ok {
		existing, ok := current[leaf].(Record)
		if !ok {
			existing = Record{}
			current[leaf] = existing
		}
		for k, v := range m {
			existing[k] = v
		}
		return nil
	}
	current[leaf] = value
	return nil
}

// Get returns the value at the location addressed by path.
func (r Record) Get(path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	current := r
	for _, key := range path[:len(path)-1] {
		next, ok := current[key].(Record)
		if !ok {
			return nil, false
		}
		current = next
	}
	value, ok := current[path[len(path)-1]]
	return value, ok
}

// URIEntry is one uris[] element of a login record.
type URIEntry struct {
	// URI is the resolved URL.
	URI string `json:"uri"`

	// Match is the match rule the target system applies to this URI.
	Match int `json:"match"`
}

// CustomField is one fields[] element of a record.
type CustomField struct {
	// Name is the field's display name.
	Name string `json:"name"`

	// Value is the field's text value.
	Value string `json:"value"`
}

// Folder is a named grouping container in the output document.
type Folder struct {
	// ID is the derived folder identifier.
	ID string `json:"id"`

	// Name is the rendered folder display name.
	Name string `json:"name"`
}

// VaultDocument is the root output object handed to the vault writer.
type VaultDocument struct {
	// Items holds one record per exported account, in export order.
	Items []Record `json:"items"`

	// Folders holds the generated folder. It is omitted entirely when
	// the folder template renders empty.
	Folders []Folder `json:"folders,omitempty"`
}
