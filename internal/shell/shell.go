package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const marker = "monat shell integration"

// HookSnippet는 셸별 mcd 함수 스니펫을 반환한다.
// 인자가 없으면 가장 최근 히스토리(,1)로 이동한다.
func HookSnippet(shellType string) string {
	switch shellType {
	case "zsh", "bash":
		return fmt.Sprintf(`# %s (%s)
mcd() {
  local target
  target="$(monat resolve "${1:-,1}")" || return
  cd "$target"
}
`, marker, shellType)
	case "fish":
		return fmt.Sprintf(`# %s (fish)
function mcd
  set -l expr ,1
  set -q argv[1]; and set expr $argv[1]
  set -l target (monat resolve $expr); or return
  cd $target
end
`, marker)
	default:
		return ""
	}
}

// DetectShell은 현재 사용자의 셸을 감지한다.
func DetectShell() string {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return ""
	}
	return filepath.Base(sh)
}

// RCPath는 셸별 RC 파일 경로를 반환한다.
func RCPath(shellType, home string) string {
	switch shellType {
	case "zsh":
		return filepath.Join(home, ".zshrc")
	case "bash":
		return filepath.Join(home, ".bashrc")
	case "fish":
		return filepath.Join(home, ".config", "fish", "conf.d", "monat.fish")
	default:
		return ""
	}
}

// InstallHook은 셸 RC 파일에 mcd 함수를 추가한다.
// 이미 설치되어 있으면 건너뛰고 false를 반환한다.
func InstallHook(shellType, rcPath string) (bool, error) {
	snippet := HookSnippet(shellType)
	if snippet == "" {
		return false, fmt.Errorf("shell.InstallHook: unsupported shell: %q", shellType)
	}

	existing, err := os.ReadFile(rcPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	if strings.Contains(string(existing), marker) {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(rcPath), 0755); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	f, err := os.OpenFile(rcPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "\n%s", snippet); err != nil {
		return false, fmt.Errorf("shell.InstallHook: %w", err)
	}
	return true, nil
}
