package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kenkundert/bw-export/internal/core/domain"
	"github.com/kenkundert/bw-export/internal/core/ports/driven"
)

func writeAccountFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestNew(t *testing.T) {
	source := New("/tmp/accounts")

	require.NotNil(t, source)
	assert.Equal(t, "/tmp/accounts", source.dir)

	var _ driven.AccountSource = source
	var _ driven.AccountWatcher = source
}

func TestSource_Accounts_SingleFile(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", `
chase:
    username: alice
    passcode: s3cret
    bitwarden:
        type: login
        name: Chase Bank
        username: "{username}"
wifi:
    bitwarden:
        type: note
        name: Home WiFi
`)

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)

	assert.Equal(t, "chase", accounts[0].Name)
	require.True(t, accounts[0].Exported())
	assert.Equal(t, domain.Pairs{
		{Key: "type", Value: "login"},
		{Key: "name", Value: "Chase Bank"},
		{Key: "username", Value: "{username}"},
	}, accounts[0].Export)

	assert.Equal(t, "wifi", accounts[1].Name)
	require.True(t, accounts[1].Exported())
}

func TestSource_Accounts_LexicalFileOrder(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "banking.yaml", "second:\n    bitwarden:\n        type: note\n        name: Second\n")
	writeAccountFile(t, dir, "archive.yaml", "first:\n    bitwarden:\n        type: note\n        name: First\n")

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "first", accounts[0].Name)
	assert.Equal(t, "second", accounts[1].Name)
}

func TestSource_Accounts_OptedOut(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", `
private:
    username: bob
    passcode: hidden
`)

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "private", accounts[0].Name)
	assert.False(t, accounts[0].Exported())
}

func TestSource_Accounts_EmptyDeclaration(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", `
incomplete:
    bitwarden:
`)

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)

	// Declared but empty is opted in, and fails later at assembly
	assert.True(t, accounts[0].Exported())
	assert.Empty(t, accounts[0].Export)
}

func TestSource_Accounts_DuplicateName(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "one.yaml", "chase:\n    username: alice\n")
	writeAccountFile(t, dir, "two.yaml", "chase:\n    username: bob\n")

	_, err := New(dir).Accounts(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)
	assert.Contains(t, err.Error(), "chase")
	assert.Contains(t, err.Error(), "one.yaml")
	assert.Contains(t, err.Error(), "two.yaml")
}

func TestSource_Accounts_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", "chase:\n    username: alice\n")
	writeAccountFile(t, dir, ".hidden.yaml", "hidden:\n    username: x\n")
	writeAccountFile(t, dir, "README.md", "# not YAML\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "backups.yaml"), 0700))

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "chase", accounts[0].Name)
}

func TestSource_Accounts_YmlExtension(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yml", "chase:\n    username: alice\n")

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestSource_Accounts_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", "")

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestSource_Accounts_NonMappingRoot(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", "- chase\n- wifi\n")

	_, err := New(dir).Accounts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level must be a mapping")
}

func TestSource_Accounts_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", "chase:\n  bad\n indent: [\n")

	_, err := New(dir).Accounts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accounts.yaml")
}

func TestSource_Accounts_MissingDirectory(t *testing.T) {
	_, err := New("/non/existent/path").Accounts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read accounts directory")
}

func TestSource_Accounts_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", "chase:\n    username: alice\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(dir).Accounts(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSource_Accounts_ValueShapes(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", `
chase:
    bitwarden:
        type: login
        name: Chase Bank
        urls:
            - https://chase.com
            - https://chase.co.uk
        fields:
            account number: 0123456
            pin: 0123
`)

	accounts, err := New(dir).Accounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)

	urls, ok := accounts[0].Export.Lookup("urls")
	require.True(t, ok)
	assert.Equal(t, []any{"https://chase.com", "https://chase.co.uk"}, urls)

	fields, ok := accounts[0].Export.Lookup("fields")
	require.True(t, ok)

	// Scalars keep their raw source text, leading zeros included
	assert.Equal(t, domain.Pairs{
		{Key: "account number", Value: "0123456"},
		{Key: "pin", Value: "0123"},
	}, fields)
}

func TestSource_Accounts_NonMappingBitwarden(t *testing.T) {
	dir := t.TempDir()
	writeAccountFile(t, dir, "accounts.yaml", `
chase:
    bitwarden: just a string
`)

	_, err := New(dir).Accounts(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "chase")
	assert.Contains(t, err.Error(), "must be a mapping")
}
