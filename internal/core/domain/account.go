package domain

// Account is one entry of the account source store.
// It is read-only to the export engine; the source owns it.
type Account struct {
	// Name identifies the account in the source store. It appears in
	// error context and logs, never in the output document.
	Name string

	// Export holds the account's declared export instructions (the
	// account's "bitwarden" attribute). Nil means the account declares
	// none and is silently excluded from the export; a non-nil empty
	// mapping is declared-but-incomplete and fails assembly.
	Export Pairs
}

// Exported reports whether the account opted in to the export.
func (a Account) Exported() bool {
	return a.Export != nil
}
