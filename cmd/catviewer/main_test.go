package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteHeapProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.pprof")

	require.NoError(t, writeHeapProfile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestWriteHeapProfile_CreateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "mem.pprof")

	err := writeHeapProfile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error creating heap profile")
}
