package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// ReportError는 사용자에게 보여줄 에러 메시지를 w에 쓴다.
// 경로가 없는 경우와 그 밖의 입출력 오류를 구분한다.
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	var pathErr *fs.PathError
	var linkErr *os.LinkError
	var syscallErr *os.SyscallError
	switch {
	case errors.Is(err, ErrCommandNotFound):
		fmt.Fprintf(w, "CommandNotFoundError: %v\n", err)
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(w, "NotFoundError: %v\n", err)
	case errors.As(err, &pathErr), errors.As(err, &linkErr), errors.As(err, &syscallErr):
		fmt.Fprintf(w, "Unhandled IO error: %v\n", err)
	default:
		fmt.Fprintln(w, err)
	}
}
