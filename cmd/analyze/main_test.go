package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadRequest(t *testing.T) {
	t.Run("request document", func(t *testing.T) {
		req, err := readRequest(writeFile(t, `{"answers":{"preferredTime":"오전"},"target_date":"2027-11-18"}`))
		require.NoError(t, err)
		assert.Equal(t, "오전", req.Answers["preferredTime"])
		assert.Equal(t, "2027-11-18", req.TargetDate)
	})

	t.Run("bare answers", func(t *testing.T) {
		req, err := readRequest(writeFile(t, `{"studyTime":"4-6시간","concentration":"2-3시간"}`))
		require.NoError(t, err)
		assert.Equal(t, "4-6시간", req.Answers["studyTime"])
		assert.Empty(t, req.TargetDate)
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := readRequest(writeFile(t, `["오전"]`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readRequest(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}
