package docstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallboard/schoolfeed/core/model"
	"github.com/hallboard/schoolfeed/infra/logger"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocument(t *testing.T) {
	path := writeFixture(t, "rules.json", `{
		"days": {"Monday": {"c1": {"clothing": "uniform", "pack": ["water"], "dropoff": "08:15"}}},
		"clothing_labels": {"uniform": "School Uniform"}
	}`)
	doc := LoadDocument[model.RulesDoc](path, logger.NopLogger{})

	require.Contains(t, doc.Days, "Monday")
	rule := doc.Days["Monday"]["c1"]
	assert.Equal(t, "uniform", rule.Clothing)
	assert.Equal(t, []string{"water"}, rule.Pack)
	assert.Equal(t, "School Uniform", doc.ClothingLabels["uniform"])
}

func TestLoadDocumentMissingFile(t *testing.T) {
	doc := LoadDocument[model.RulesDoc](filepath.Join(t.TempDir(), "nope.json"), logger.NopLogger{})
	assert.Empty(t, doc.Days)
}

func TestLoadDocumentCorruptFile(t *testing.T) {
	path := writeFixture(t, "rules.json", `{"days": not json`)
	doc := LoadDocument[model.RulesDoc](path, logger.NopLogger{})
	assert.Empty(t, doc.Days)
}

func TestLoadTree(t *testing.T) {
	path := writeFixture(t, "overrides.json", `{
		"by_date": {"2024-07-22": {"children": {"c1": {"pickup": "17:30"}}}}
	}`)
	tree := LoadTree(path, logger.NopLogger{})

	require.NotNil(t, tree)
	byDate := tree["by_date"].(map[string]any)
	assert.Contains(t, byDate, "2024-07-22")
}

func TestLoadTreeMissingFile(t *testing.T) {
	assert.Nil(t, LoadTree(filepath.Join(t.TempDir(), "nope.json"), logger.NopLogger{}))
}

func TestWriteJSONCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "today.json")
	require.NoError(t, WriteJSON(path, map[string]any{"day": "Monday"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, "Monday", out["day"])
	assert.Contains(t, string(raw), "\n  \"day\"", "output is indented")
}

func TestWriteJSONFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	// A file where the output directory should be makes MkdirAll fail.
	blocker := filepath.Join(dir, "public")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := WriteJSON(filepath.Join(blocker, "today.json"), map[string]any{})
	assert.Error(t, err)
}
