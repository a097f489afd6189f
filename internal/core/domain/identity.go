package domain

import "github.com/google/uuid"

// DeriveID generates the name-based (RFC 4122 version 5) identifier
// for name within namespace. Identical inputs always yield identical
// identifiers; this is what keeps re-exports from producing
// duplicate-looking entries in the target system.
func DeriveID(namespace uuid.UUID, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(name))
}

// FolderID derives the folder identifier from the identity seed and
// the rendered folder name.
func FolderID(seed uuid.UUID, folderName string) uuid.UUID {
	return DeriveID(seed, folderName)
}

// RecordID derives a record identifier from the folder identifier and
// the record's declared name. The declared name is used as-is, before
// any value expansion.
func RecordID(folderID uuid.UUID, name string) uuid.UUID {
	return DeriveID(folderID, name)
}
