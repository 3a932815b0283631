package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNamePattern(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	t.Run("timestamp placeholder", func(t *testing.T) {
		name := ExpandNamePattern("report_{timestamp}.json", now)
		assert.Equal(t, "report_20250314_092653.json", name)
	})

	t.Run("uuid placeholder is unique", func(t *testing.T) {
		a := ExpandNamePattern("{uuid}.json", now)
		b := ExpandNamePattern("{uuid}.json", now)
		assert.NotEqual(t, a, b)
		assert.True(t, strings.HasSuffix(a, ".json"))
	})

	t.Run("no placeholders", func(t *testing.T) {
		assert.Equal(t, "report.json", ExpandNamePattern("report.json", now))
	})
}

func TestReportPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	path, err := ReportPath(dir, "pfas_{timestamp}.json", now)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, "pfas_20250314_092653.json", filepath.Base(path))

	// The output directory is created on demand.
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, WriteJSON(path, map[string]int{"total": 2}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded["total"])
}
