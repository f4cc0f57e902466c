package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const dataset = `[
	{"User Name":"Bob","User Email":"b@x.com","All Skill Badges & Games Completed":"No","# of Skill Badges Completed":2,"# of Arcade Games Completed":1},
	{"User Name":"Alice","User Email":"a@x.com","All Skill Badges & Games Completed":"Yes","# of Skill Badges Completed":5,"# of Arcade Games Completed":3}
]`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "progress", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"view", "stats"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	source := cmd.PersistentFlags().Lookup("source")
	require.NotNil(t, source)
	assert.Equal(t, "data.json", source.DefValue)

	format := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "text", format.DefValue)

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestViewCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	view, _, err := cmd.Find([]string{"view"})
	require.NoError(t, err)

	search := view.Flags().Lookup("search")
	require.NotNil(t, search)
	assert.Equal(t, "s", search.Shorthand)
	assert.Equal(t, "all", view.Flags().Lookup("status").DefValue)
	assert.Equal(t, "badges-desc", view.Flags().Lookup("sort").DefValue)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := run(t, "stats", "--format", "xml", "--source", writeDataset(t, dataset))
	assert.ErrorContains(t, err, "invalid format")
}

func TestView_Text(t *testing.T) {
	out, _, err := run(t, "view", "--source", writeDataset(t, dataset))
	require.NoError(t, err)

	assert.Contains(t, out, "Total Students: 2")
	assert.Contains(t, out, "Completed: 1")
	assert.Contains(t, out, "In Progress: 1")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "a@x.com")
	assert.Contains(t, out, "Showing 2 of 2 students")
	assert.Less(t, bytes.Index([]byte(out), []byte("Alice")), bytes.Index([]byte(out), []byte("Bob")))
}

func TestView_TextNoMatches(t *testing.T) {
	out, _, err := run(t, "view", "--search", "zzz", "--source", writeDataset(t, dataset))
	require.NoError(t, err)

	assert.Contains(t, out, "No students found matching your criteria")
	assert.Contains(t, out, "Showing 0 of 2 students")
	assert.Contains(t, out, "Total Students: 2")
}

func TestView_JSON(t *testing.T) {
	out, _, err := run(t, "view", "--format", "json", "--status", "pending", "--sort", "name-asc", "--source", writeDataset(t, dataset))
	require.NoError(t, err)

	var got viewOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "pending", got.Status)
	assert.Equal(t, "name-asc", got.Sort)
	assert.Equal(t, 1, got.Shown)
	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Bob", got.Records[0].Name)
	require.NotNil(t, got.Records[0].Badges)
	assert.Equal(t, 2, *got.Records[0].Badges)
	assert.Equal(t, statsOutput{Total: 2, Completed: 1, Pending: 1}, got.Stats)
}

func TestView_YAML(t *testing.T) {
	out, _, err := run(t, "view", "--format", "yaml", "-s", "ALI", "--source", writeDataset(t, dataset))
	require.NoError(t, err)

	var got viewOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Alice", got.Records[0].Name)
	assert.True(t, got.Records[0].Completed)
}

func TestView_InvalidSort(t *testing.T) {
	_, _, err := run(t, "view", "--sort", "height", "--source", writeDataset(t, dataset))
	assert.ErrorContains(t, err, "unknown sort option")
}

func TestView_InvalidLocale(t *testing.T) {
	_, _, err := run(t, "view", "--locale", "??", "--source", writeDataset(t, dataset))
	assert.ErrorContains(t, err, "invalid locale")
}

func TestStats_MissingSourceIsEmpty(t *testing.T) {
	out, stderr, err := run(t, "stats", "--format", "json", "--source", filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	var got statsOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, statsOutput{}, got)
	assert.Contains(t, stderr, "error loading data")
}

func TestStats_Text(t *testing.T) {
	out, _, err := run(t, "stats", "--source", writeDataset(t, dataset))
	require.NoError(t, err)
	assert.Contains(t, out, "Total Students: 2")
}
