package action_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/Pavinberg/monat/internal/action"
	"github.com/Pavinberg/monat/internal/cmdexec"
	"github.com/Pavinberg/monat/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Directory(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, "b.txt", "")
	testutil.WriteFile(t, dir, "a.txt", "")
	testutil.MkdirAll(t, dir, "sub")

	var buf bytes.Buffer
	require.NoError(t, action.List(&buf, dir))

	want := fmt.Sprintf("%s\n%s\n%s\n",
		filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt"), filepath.Join(dir, "sub"))
	assert.Equal(t, want, buf.String())
}

func TestList_File(t *testing.T) {
	dir := testutil.TempDir(t)
	path := testutil.WriteFile(t, dir, "readme.md", "hi")

	var buf bytes.Buffer
	require.NoError(t, action.List(&buf, path))
	assert.Equal(t, path+"\n", buf.String())
}

func TestList_NotFound(t *testing.T) {
	err := action.List(&bytes.Buffer{}, filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMove_Rename(t *testing.T) {
	dir := testutil.TempDir(t)
	from := testutil.WriteFile(t, dir, "old.md", "x")
	to := filepath.Join(dir, "new.md")

	target, err := action.Move(from, to, nil)
	require.NoError(t, err)
	assert.Equal(t, to, target)
	assert.NoFileExists(t, from)
	assert.FileExists(t, to)
}

func TestMove_IntoDirectory(t *testing.T) {
	dir := testutil.TempDir(t)
	from := testutil.WriteFile(t, dir, "src/lib.rs", "x")
	testutil.MkdirAll(t, dir, "archive")

	target, err := action.Move(from, filepath.Join(dir, "archive"), nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "archive", "lib.rs"), target)
	assert.FileExists(t, target)
}

func TestMove_ConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name    string
		answer  bool
		wantErr error
	}{
		{"accepted", true, nil},
		{"declined", false, action.ErrMoveDeclined},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.TempDir(t)
			from := testutil.WriteFile(t, dir, "a.md", "new")
			to := testutil.WriteFile(t, dir, "b.md", "old")

			var asked []string
			_, err := action.Move(from, to, func(target string) (bool, error) {
				asked = append(asked, target)
				return tt.answer, nil
			})

			assert.Equal(t, []string{to}, asked)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.FileExists(t, from)
				return
			}
			require.NoError(t, err)
			data, err := os.ReadFile(to)
			require.NoError(t, err)
			assert.Equal(t, "new", string(data))
		})
	}
}

func TestMove_NoConfirmWhenTargetIsFree(t *testing.T) {
	dir := testutil.TempDir(t)
	from := testutil.WriteFile(t, dir, "a.md", "x")

	_, err := action.Move(from, filepath.Join(dir, "b.md"), func(string) (bool, error) {
		t.Fatal("confirm must not be called")
		return false, nil
	})
	require.NoError(t, err)
}

func TestMove_MissingSource(t *testing.T) {
	dir := testutil.TempDir(t)
	_, err := action.Move(filepath.Join(dir, "nope"), filepath.Join(dir, "b"), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_PassesPathsAndDir(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("wc -l /p/a /p/b", "2 total\n", nil)

	var buf bytes.Buffer
	err := action.Run(context.Background(), fc, &buf, "/p", "wc", []string{"-l", "/p/a", "/p/b"})
	require.NoError(t, err)

	assert.Equal(t, "2 total\n", buf.String())
	assert.Equal(t, []string{"/p"}, fc.Dirs())
}

func TestRun_FailureStillWritesOutput(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Register("cat", "cat: x: No such file\n", errors.New("exit status 1"))

	var buf bytes.Buffer
	err := action.Run(context.Background(), fc, &buf, "", "cat", []string{"x"})
	assert.Error(t, err)
	assert.Equal(t, "cat: x: No such file\n", buf.String())
}

func TestRun_CommandNotFound(t *testing.T) {
	fc := testutil.NewFakeCommander()
	fc.Missing("nosuchcmd")

	err := action.Run(context.Background(), fc, &bytes.Buffer{}, "", "nosuchcmd", nil)
	assert.ErrorIs(t, err, cmdexec.ErrCommandNotFound)
}
