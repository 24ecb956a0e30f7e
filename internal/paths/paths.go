// Package paths는 monat 저장소 위치와 경로 정규화 유틸리티를 제공한다.
// 모든 함수는 기준 디렉토리를 명시적으로 받으며 프로세스 cwd에 의존하지 않는다.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

const (
	// StoreDirName은 로컬/글로벌 저장소 디렉토리 이름이다.
	StoreDirName = ".monat"
	// HistoryFileName은 히스토리 파일 이름이다.
	HistoryFileName = "history"
	// ConfigFileName은 설정 파일 이름이다.
	ConfigFileName = "config.toml"

	globalStoreDir = "~/" + StoreDirName
	separator      = "/"
)

// LocalStoreDir는 dir 아래의 프로젝트 로컬 저장소 디렉토리다.
func LocalStoreDir(dir string) string {
	return filepath.Join(dir, StoreDirName)
}

// LocalHistoryFile은 dir 아래의 프로젝트 로컬 히스토리 파일 경로다.
func LocalHistoryFile(dir string) string {
	return filepath.Join(LocalStoreDir(dir), HistoryFileName)
}

// GlobalStoreDir는 ~/.monat을 홈 디렉토리 기준으로 확장한다.
func GlobalStoreDir() (string, error) {
	dir, err := homedir.Expand(globalStoreDir)
	if err != nil {
		return "", fmt.Errorf("paths.GlobalStoreDir: %w", err)
	}
	return dir, nil
}

// DefaultConfigPath는 기본 설정 파일 경로다. 홈 디렉토리를 알 수 없으면
// 현재 디렉토리 기준 상대 경로와 함께 에러를 반환한다.
func DefaultConfigPath() (string, error) {
	dir, err := GlobalStoreDir()
	if err != nil {
		return filepath.Join(StoreDirName, ConfigFileName), fmt.Errorf("paths.DefaultConfigPath: %w", err)
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// ExpandTilde는 "~" 또는 "~/..."로 시작하는 경로를 홈 디렉토리로 확장한다.
func ExpandTilde(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("paths.ExpandTilde: %w", err)
	}
	return expanded, nil
}

// Absolutize는 path를 base 기준 절대 경로로 만들고 "."/".." 세그먼트를
// 어휘적으로 정리한다. 경로가 실제로 존재할 필요는 없다.
func Absolutize(path, base string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}
	return filepath.Clean(path)
}

// Simplify는 path를 base 기준 상대 경로로 줄인다.
// base 자신은 빈 문자열이 되고, base 밖의 경로는 절대 경로 그대로 남는다.
func Simplify(path, base string) string {
	abs := Absolutize(path, base)
	root := filepath.Clean(base)
	if abs == root {
		return ""
	}
	rel, ok := strings.CutPrefix(abs, withTrailingSeparator(root))
	if !ok {
		return abs
	}
	return rel
}

// Canonicalize는 path를 실제 파일시스템 기준 절대 경로로 해석한다.
// 심볼릭 링크와 ".."는 물리적으로 해석되며, 경로가 없으면 에러를 반환한다.
func Canonicalize(path, base string) (string, error) {
	if !filepath.IsAbs(path) {
		path = base + separator + path
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("paths.Canonicalize: %w", err)
	}
	return resolved, nil
}

// Split은 path를 부모 디렉토리와 마지막 구성 요소로 나눈다.
// 부모가 없으면 dir은 "."이다. ".", "..", "/"처럼 마지막 구성 요소를
// 구분할 수 없으면 path 전체가 dir이 되고 leaf는 비어 있다.
func Split(path string) (dir, leaf string) {
	trimmed := strings.TrimRight(path, separator)
	if trimmed == "" {
		if path == "" {
			return ".", ""
		}
		return separator, ""
	}

	i := strings.LastIndex(trimmed, separator)
	leaf = trimmed[i+1:]
	if leaf == "." || leaf == ".." {
		return path, ""
	}

	switch {
	case i < 0:
		return ".", leaf
	case i == 0:
		return separator, leaf
	default:
		return trimmed[:i], leaf
	}
}

func withTrailingSeparator(dir string) string {
	if strings.HasSuffix(dir, separator) {
		return dir
	}
	return dir + separator
}
