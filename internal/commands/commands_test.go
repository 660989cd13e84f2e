package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subscope-dev/subscope/internal/audit"
	"github.com/subscope-dev/subscope/internal/config"
)

// run executes the CLI in-process and returns combined output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// chdir moves into a temp project dir for the test.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestInit(t *testing.T) {
	dir := chdir(t)

	out, err := run(t, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized subscope project")

	assert.FileExists(t, filepath.Join(dir, config.DefaultFile))
	assert.DirExists(t, filepath.Join(dir, ".subscope"))
	assert.FileExists(t, filepath.Join(dir, ".gitignore"))

	// Re-running refuses to clobber.
	_, err = run(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

const detectCSV = `date,description,amount
2024-01-05,NETFLIX.COM,-15.99
2024-02-05,NETFLIX.COM,-15.99
2024-03-05,NETFLIX.COM,-15.99
2024-01-10,INTERAC E-TRANSFER SENT,-200.00
2024-02-10,INTERAC E-TRANSFER SENT,-200.00
`

func TestDetect_EndToEnd(t *testing.T) {
	dir := chdir(t)
	_, err := run(t, "init")
	require.NoError(t, err)

	csvPath := filepath.Join(dir, "txns.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(detectCSV), 0o644))

	outPath := filepath.Join(dir, "report.csv")
	out, err := run(t, "detect", csvPath, "--out", outPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Netflix")
	assert.NotContains(t, out, "E-Transfer")
	assert.FileExists(t, outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sub_netflix")

	entries, err := audit.Read(".subscope")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, audit.ActionDetectRun, entries[0].Action)
}

func TestDetect_UnknownFormat(t *testing.T) {
	chdir(t)
	_, err := run(t, "detect", "whatever.csv", "--format", "monzo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestCorrectThenDetect(t *testing.T) {
	dir := chdir(t)
	_, err := run(t, "init")
	require.NoError(t, err)

	out, err := run(t, "correct", "ZZYZX LABS 0042", "Zzyzx Labs", "--category", "productivity", "--subscription")
	require.NoError(t, err)
	assert.Contains(t, out, "Zzyzx Labs")

	csv := "date,description,amount\n" +
		"2024-01-05,ZZYZX LABS 0042,-12.00\n" +
		"2024-02-05,ZZYZX LABS 0042,-12.00\n"
	csvPath := filepath.Join(dir, "txns.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))

	out, err = run(t, "detect", csvPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Zzyzx Labs")
}

func TestOverrideLifecycle(t *testing.T) {
	chdir(t)
	_, err := run(t, "init")
	require.NoError(t, err)

	out, err := run(t, "override", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No overrides")

	out, err = run(t, "override", "set", "sub_netflix", "5", "--note", "family account")
	require.NoError(t, err)
	assert.Contains(t, out, "pinned at importance 5")

	out, err = run(t, "override", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "sub_netflix")
	assert.Contains(t, out, "family account")

	_, err = run(t, "override", "clear", "sub_netflix")
	require.NoError(t, err)

	out, err = run(t, "override", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No overrides")
}

func TestOverrideSet_RejectsBadImportance(t *testing.T) {
	chdir(t)
	_, err := run(t, "override", "set", "sub_netflix", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1..5")
}

func TestAuditCommand(t *testing.T) {
	chdir(t)
	_, err := run(t, "init")
	require.NoError(t, err)

	out, err := run(t, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "No audit entries")

	_, err = run(t, "override", "set", "sub_x", "1")
	require.NoError(t, err)

	out, err = run(t, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, audit.ActionSetOverride)
	assert.Contains(t, out, "sub_x")
}
