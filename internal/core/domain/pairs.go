package domain

// Pair is one entry of an ordered mapping.
type Pair struct {
	// Key is the declared field name.
	Key string

	// Value is the raw declared value: a string, a nested Pairs
	// mapping, or a []any sequence.
	Value any
}

// Pairs is a mapping whose declaration order is preserved. Declared
// mappings are held as Pairs because field order is semantically
// significant: fields are processed, and output lists emitted, in the
// order the source declares them.
type Pairs []Pair

// Lookup returns the value declared for key. When the key is declared
// more than once the first declaration is returned; iteration still
// visits every declaration.
func (p Pairs) Lookup(key string) (any, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is declared.
func (p Pairs) Has(key string) bool {
	_, ok := p.Lookup(key)
	return ok
}
