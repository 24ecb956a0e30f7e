// Package action은 해석된 경로로 수행하는 동작(ls, mv, 외부 명령)이다.
package action

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Pavinberg/monat/internal/cmdexec"
)

// ErrMoveDeclined는 사용자가 덮어쓰기를 거부했을 때 반환된다.
var ErrMoveDeclined = errors.New("move declined")

// ConfirmFunc는 target을 덮어쓸지 묻는다.
type ConfirmFunc func(target string) (bool, error)

// List는 파일이면 경로를, 디렉토리면 각 항목의 전체 경로를 출력한다.
func List(w io.Writer, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("action.List: %w", err)
	}
	if !info.IsDir() {
		_, err := fmt.Fprintln(w, path)
		return err
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("action.List: %w", err)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, filepath.Join(path, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Move는 from을 to로 옮긴다. to가 디렉토리면 그 안으로 옮긴다.
// confirm이 nil이 아니고 대상이 이미 있으면 먼저 확인한다.
// 실제 대상 경로를 반환한다.
func Move(from, to string, confirm ConfirmFunc) (string, error) {
	target := to
	if info, err := os.Stat(to); err == nil && info.IsDir() {
		target = filepath.Join(to, filepath.Base(from))
	}

	if confirm != nil {
		if _, err := os.Lstat(target); err == nil {
			ok, err := confirm(target)
			if err != nil {
				return "", fmt.Errorf("action.Move: %w", err)
			}
			if !ok {
				return "", fmt.Errorf("action.Move: %s: %w", target, ErrMoveDeclined)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("action.Move: %w", err)
		}
	}

	if err := os.Rename(from, target); err != nil {
		return "", fmt.Errorf("action.Move: %w", err)
	}
	return target, nil
}

// Run은 name 명령을 paths를 인자로 dir에서 실행하고 출력을 w에 쓴다.
// 명령이 실패해도 출력은 먼저 쓴다.
func Run(ctx context.Context, cmd cmdexec.Commander, w io.Writer, dir, name string, paths []string) error {
	out, runErr := cmd.Run(ctx, dir, name, paths...)
	if len(out) > 0 {
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("action.Run: %w", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("action.Run: %s: %w", name, runErr)
	}
	return nil
}
