package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeriveID tests deterministic name-based identifier derivation
func TestDeriveID(t *testing.T) {
	seed := uuid.MustParse("5e6dcb46-4896-4bd1-a0bc-5e64f93cb2a5")

	t.Run("identical inputs yield identical identifiers", func(t *testing.T) {
		assert.Equal(t, DeriveID(seed, "Bank"), DeriveID(seed, "Bank"))
	})

	t.Run("different names yield different identifiers", func(t *testing.T) {
		assert.NotEqual(t, DeriveID(seed, "Bank"), DeriveID(seed, "Email"))
	})

	t.Run("different namespaces yield different identifiers", func(t *testing.T) {
		other := uuid.MustParse("0d9061cf-0ab4-4a5e-ad49-9261cbca9fe5")
		assert.NotEqual(t, DeriveID(seed, "Bank"), DeriveID(other, "Bank"))
	})

	t.Run("matches the published version 5 test vector", func(t *testing.T) {
		derived := DeriveID(uuid.NameSpaceDNS, "python.org")
		assert.Equal(t, uuid.MustParse("886313e1-3b8a-5372-9b90-0c9aee199e5d"), derived)
	})

	t.Run("identifiers are version 5 RFC 4122", func(t *testing.T) {
		derived := DeriveID(seed, "Bank")
		assert.Equal(t, uuid.Version(5), derived.Version())
		assert.Equal(t, uuid.RFC4122, derived.Variant())
	})
}

// TestFolderAndRecordIDs tests the two-level derivation chain
func TestFolderAndRecordIDs(t *testing.T) {
	seed := uuid.MustParse("5e6dcb46-4896-4bd1-a0bc-5e64f93cb2a5")

	folderID := FolderID(seed, "Avendesora-260823")
	recordID := RecordID(folderID, "Bank")

	require.NotEqual(t, uuid.Nil, folderID)
	require.NotEqual(t, uuid.Nil, recordID)

	t.Run("record identifiers are namespaced by the folder", func(t *testing.T) {
		otherFolder := FolderID(seed, "Avendesora-260824")
		assert.NotEqual(t, recordID, RecordID(otherFolder, "Bank"))
	})

	t.Run("changing the seed changes every identifier", func(t *testing.T) {
		otherSeed := uuid.MustParse("0d9061cf-0ab4-4a5e-ad49-9261cbca9fe5")
		otherFolderID := FolderID(otherSeed, "Avendesora-260823")
		assert.NotEqual(t, folderID, otherFolderID)
		assert.NotEqual(t, recordID, RecordID(otherFolderID, "Bank"))
	})
}
