package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenkundert/bw-export/internal/core/domain"
)

func TestNew_DefaultPath(t *testing.T) {
	writer := New("")

	assert.Equal(t, DefaultPath, writer.path)
}

func TestWriter_Write_GoldenBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer := New(path)

	doc := &domain.VaultDocument{
		Items: []domain.Record{
			{"type": 2, "name": "N", "secureNote": domain.Record{}},
		},
	}

	written, err := writer.Write(doc)

	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "{\n" +
		"  \"items\": [\n" +
		"    {\n" +
		"      \"name\": \"N\",\n" +
		"      \"secureNote\": {},\n" +
		"      \"type\": 2\n" +
		"    }\n" +
		"  ]\n" +
		"}\n"
	assert.Equal(t, want, string(data))
}

func TestWriter_Write_FullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer := New(path)

	doc := &domain.VaultDocument{
		Items: []domain.Record{
			{
				"id":       "rec-1",
				"folderId": "fld-1",
				"type":     1,
				"name":     "Chase Bank",
				"login": domain.Record{
					"username": "alice",
					"password": "s3cret",
					"uris": []domain.URIEntry{
						{URI: "https://chase.com/login?a=1&b=2", Match: 2},
					},
				},
				"notes": "primary",
			},
		},
		Folders: []domain.Folder{{ID: "fld-1", Name: "Avendesora-260823"}},
	}

	_, err := writer.Write(doc)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	items := decoded["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "Chase Bank", item["name"])
	assert.Equal(t, float64(1), item["type"])

	login := item["login"].(map[string]any)
	uris := login["uris"].([]any)
	require.Len(t, uris, 1)
	uri := uris[0].(map[string]any)
	assert.Equal(t, "https://chase.com/login?a=1&b=2", uri["uri"])
	assert.Equal(t, float64(2), uri["match"])

	folders := decoded["folders"].([]any)
	require.Len(t, folders, 1)

	// URLs are not HTML-escaped
	assert.Contains(t, string(data), "?a=1&b=2")
}

func TestWriter_Write_FoldersOmittedWhenDisabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer := New(path)

	doc := &domain.VaultDocument{
		Items: []domain.Record{{"type": 2, "name": "N", "secureNote": domain.Record{}}},
	}

	_, err := writer.Write(doc)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "folders")
}

func TestWriter_Write_Deterministic(t *testing.T) {
	dir := t.TempDir()
	doc := &domain.VaultDocument{
		Items: []domain.Record{
			{
				"type": 1,
				"name": "Chase Bank",
				"login": domain.Record{
					"username": "alice",
					"password": "s3cret",
				},
			},
		},
	}

	pathA := filepath.Join(dir, "a.json")
	_, err := New(pathA).Write(doc)
	require.NoError(t, err)

	pathB := filepath.Join(dir, "b.json")
	_, err = New(pathB).Write(doc)
	require.NoError(t, err)

	dataA, err := os.ReadFile(pathA)
	require.NoError(t, err)
	dataB, err := os.ReadFile(pathB)
	require.NoError(t, err)
	assert.Equal(t, dataA, dataB)
}

func TestWriter_Write_FilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	writer := New(path)

	_, err := writer.Write(&domain.VaultDocument{Items: []domain.Record{}})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriter_Write_RestrictsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	require.NoError(t, os.Chmod(path, 0644))

	writer := New(path)
	_, err := writer.Write(&domain.VaultDocument{Items: []domain.Record{}})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriter_Write_Error(t *testing.T) {
	writer := New(filepath.Join(t.TempDir(), "missing", "out.json"))

	_, err := writer.Write(&domain.VaultDocument{Items: []domain.Record{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "write")
}
