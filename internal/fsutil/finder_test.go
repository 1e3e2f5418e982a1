package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindDocFiles(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0o755))
	for _, name := range []string{"b.hcl", "a.hcl", "notes.txt", "nested/c.hcl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("frame {}"), 0o644))
	}

	files, err := FindDocFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.hcl"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.hcl"), files[1])
	assert.Equal(t, filepath.Join(nested, "c.hcl"), files[2])
}

func TestFindDocFiles_SingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.hcl")
	require.NoError(t, os.WriteFile(path, []byte("frame {}"), 0o644))

	files, err := FindDocFiles(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindDocFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(txt, nil, 0o644))

	_, err := FindDocFiles(txt)
	assert.Error(t, err)

	_, err = FindDocFiles(filepath.Join(dir, "absent"))
	assert.Error(t, err)
}
