package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivefactor/ipipneo/internal/domain"
)

func TestNormsCommand(t *testing.T) {
	out, err := runCLI(t, "norms", "--config", t.TempDir(), "--sex", "F", "--age", "61")
	require.NoError(t, err)
	assert.Contains(t, out, "Norm #8")
	assert.Contains(t, out, "neuroticism")
}

func TestNormsCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "norms", "--config", t.TempDir(), "--sex", "M", "--age", "21", "--json")
	require.NoError(t, err)

	var rec domain.NormRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, 2, rec.ID)
	assert.Equal(t, 66.97, rec.Reference[1])
}

func TestNormsCommand_InvalidInput(t *testing.T) {
	_, err := runCLI(t, "norms", "--config", t.TempDir(), "--sex", "M", "--age", "200")
	assert.Error(t, err)

	_, err = runCLI(t, "norms", "--config", t.TempDir(), "--age", "30")
	assert.Error(t, err)
}

func TestFacetsCommand(t *testing.T) {
	out, err := runCLI(t, "facets", "--config", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "120 questions")
	assert.Contains(t, out, "Immoderation")
}

func TestFacetsCommand_JSON300(t *testing.T) {
	out, err := runCLI(t, "facets", "--config", t.TempDir(), "--questions", "300", "--json")
	require.NoError(t, err)

	var rows []domain.FacetInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 30)
	reversed := 0
	for _, r := range rows {
		assert.Len(t, r.Items, 10)
		reversed += len(r.Reversed)
	}
	assert.Equal(t, 148, reversed)
}

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := runCLI(t, "init", tmpDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, ".ipipneo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "questions: 120")
	assert.Contains(t, string(data), "norm_scale:")
	assert.Contains(t, string(data), "min: 32")
	assert.Contains(t, string(data), "high: 55")
}

func TestInitCmd_300AndTest(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := runCLI(t, "init", tmpDir, "--questions", "300", "--test")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, ".ipipneo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "questions: 300")
	assert.Contains(t, string(data), "test: true")
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".ipipneo.yaml"), []byte("existing"), 0644))

	_, err := runCLI(t, "init", tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".ipipneo.yaml"), []byte("old"), 0644))

	_, err := runCLI(t, "init", tmpDir, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(tmpDir, ".ipipneo.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "questions:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidVariant(t *testing.T) {
	_, err := runCLI(t, "init", t.TempDir(), "--questions", "100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ipipneo ")
}
