package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Pavinberg/monat/internal/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsolutize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{"relative", "src/lib.rs", "/home/u/proj", "/home/u/proj/src/lib.rs"},
		{"dot", ".", "/home/u/proj", "/home/u/proj"},
		{"empty", "", "/home/u/proj", "/home/u/proj"},
		{"parent", "../other", "/home/u/proj", "/home/u/other"},
		{"absolute", "/etc/./hosts", "/home/u/proj", "/etc/hosts"},
		{"nonexistent", "no/such/dir/../file", "/tmp", "/tmp/no/such/file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.Absolutize(tt.path, tt.base))
		})
	}
}

func TestSimplify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		path string
		base string
		want string
	}{
		{"inside", "src", "/home/u/proj", "src"},
		{"nested absolute", "/home/u/proj/src/pkg", "/home/u/proj", "src/pkg"},
		{"base itself", ".", "/home/u/proj", ""},
		{"parent falls back to absolute", "..", "/home/u/proj", "/home/u"},
		{"sibling falls back to absolute", "../proj2/src", "/home/u/proj", "/home/u/proj2/src"},
		{"shared name prefix is not inside", "/home/u/project", "/home/u/proj", "/home/u/project"},
		{"root base", "/var/log", "/", "var/log"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paths.Simplify(tt.path, tt.base))
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		path     string
		wantDir  string
		wantLeaf string
	}{
		{"nested file", "src/lib.rs", "src", "lib.rs"},
		{"bare file", "lib.rs", ".", "lib.rs"},
		{"trailing slash", "src/", ".", "src"},
		{"absolute", "/etc/hosts", "/etc", "hosts"},
		{"root child", "/etc", "/", "etc"},
		{"root", "/", "/", ""},
		{"dot", ".", ".", ""},
		{"dotdot", "..", "..", ""},
		{"trailing dotdot", "a/b/..", "a/b/..", ""},
		{"empty", "", ".", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, leaf := paths.Split(tt.path)
			assert.Equal(t, tt.wantDir, dir)
			assert.Equal(t, tt.wantLeaf, leaf)
		})
	}
}

func TestCanonicalize_ResolvesSymlinks(t *testing.T) {
	base := evalDir(t, t.TempDir())
	real := filepath.Join(base, "real")
	require.NoError(t, os.Mkdir(real, 0755))
	require.NoError(t, os.Symlink(real, filepath.Join(base, "link")))

	got, err := paths.Canonicalize("link", base)
	require.NoError(t, err)
	assert.Equal(t, real, got)

	got, err = paths.Canonicalize("real/..", base)
	require.NoError(t, err)
	assert.Equal(t, base, got)
}

func TestCanonicalize_Missing(t *testing.T) {
	base := t.TempDir()
	_, err := paths.Canonicalize("missing", base)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalHistoryFile(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "/home/u/proj/.monat/history", paths.LocalHistoryFile("/home/u/proj"))
}

func TestExpandTilde_LeavesPlainPaths(t *testing.T) {
	t.Parallel()
	got, err := paths.ExpandTilde("src/~notes")
	require.NoError(t, err)
	assert.Equal(t, "src/~notes", got)
}

func evalDir(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func TestDefaultConfigPath(t *testing.T) {
	t.Parallel()
	path, err := paths.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(paths.StoreDirName, paths.ConfigFileName),
		filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
