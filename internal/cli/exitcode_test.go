package cli_test

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/Pavinberg/monat/internal/cli"
	"github.com/Pavinberg/monat/internal/resolver"
	"github.com/stretchr/testify/assert"
)

func TestMapExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want cli.ExitCode
	}{
		{"nil", nil, cli.ExitSuccess},
		{"syntax", &resolver.SyntaxError{Expr: ",1x", Msg: "bad"}, cli.ExitSyntax},
		{"index", fmt.Errorf("wrapped: %w", &resolver.IndexOutOfRangeError{Index: 4}), cli.ExitIndexOutOfRange},
		{"command not found", fmt.Errorf("x: %w", cli.ErrCommandNotFound), cli.ExitCommandNotFound},
		{"config", fmt.Errorf("config.Load: %w", cli.ErrConfig), cli.ExitConfigError},
		{"not found", &fs.PathError{Op: "stat", Path: "/x", Err: fs.ErrNotExist}, cli.ExitNotFound},
		{"general", errors.New("boom"), cli.ExitGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.MapExitCode(tt.err))
		})
	}
}

func TestReportError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found",
			err:  &fs.PathError{Op: "lstat", Path: "/x", Err: fs.ErrNotExist},
			want: "NotFoundError: lstat /x: file does not exist\n",
		},
		{
			name: "io",
			err:  &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.EACCES},
			want: "Unhandled IO error: rename /a /b: permission denied\n",
		},
		{
			name: "command not found",
			err:  fmt.Errorf("cmdexec.Run: %q: %w", "foo", cli.ErrCommandNotFound),
			want: "CommandNotFoundError: cmdexec.Run: \"foo\": command not found\n",
		},
		{
			name: "index",
			err:  &resolver.IndexOutOfRangeError{Index: 7},
			want: "IndexOutOfRangeError: index of 7 is out of history records range\n",
		},
		{
			name: "nil",
			err:  nil,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := new(bytes.Buffer)
			cli.ReportError(buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
