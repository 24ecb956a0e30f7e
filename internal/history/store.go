package history

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pavinberg/monat/internal/paths"
)

// Location은 이번 실행에서 사용할 히스토리 저장소 위치다.
type Location int

const (
	// LocationNone은 저장소 파일이 없어 영속화하지 않는 상태다.
	LocationNone Location = iota
	// LocationLocal은 현재 디렉토리의 .monat/history다.
	LocationLocal
	// LocationGlobal은 ~/.monat/history다.
	LocationGlobal
)

func (l Location) String() string {
	switch l {
	case LocationLocal:
		return "local"
	case LocationGlobal:
		return "global"
	default:
		return "none"
	}
}

// Store는 저장소 위치별 정규화/로드/저장 규칙이다.
type Store interface {
	// Location은 저장소 종류를 반환한다.
	Location() Location
	// Path는 히스토리 파일 경로다. LocationNone이면 빈 문자열이다.
	Path() string
	// Dir는 상대 레코드의 기준 디렉토리다.
	Dir() string
	// Canonicalize는 prefix를 저장 형태로 바꾼다. ok가 false면 저장하지 않는다.
	Canonicalize(prefix string) (canonical string, ok bool, err error)
	// Load는 파일 순서(오래된 것부터)대로 레코드를 읽는다.
	Load() ([]string, error)
	// Save는 records를 기록하고 실제로 기록된 레코드를 반환한다.
	Save(records []string) ([]string, error)
}

// Options는 저장소 선택 입력이다.
type Options struct {
	// Dir는 프로세스 시작 시점의 작업 디렉토리다.
	Dir string
	// Local은 -l 플래그로 로컬 저장소를 명시적으로 요청했는지 여부다.
	Local bool
	// GlobalDir는 글로벌 저장소 디렉토리다 (보통 ~/.monat).
	GlobalDir string
	// Logger는 저장 시 버려지는 레코드를 기록한다. nil이면 버린다.
	Logger *slog.Logger
}

// SelectStore는 실행 시작 시 한 번 저장소를 선택한다.
// 명시적 로컬 모드이거나 로컬 파일이 이미 있으면 local, 글로벌 파일이 있으면
// global, 둘 다 아니면 none이다. 명시적 로컬 모드는 파일이 없을 때 생성한다.
func SelectStore(opts Options) (Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	localFile := paths.LocalHistoryFile(opts.Dir)
	if opts.Local {
		if err := createIfMissing(localFile); err != nil {
			return nil, fmt.Errorf("history.SelectStore: %w", err)
		}
	}
	exists, err := fileExists(localFile)
	if err != nil {
		return nil, fmt.Errorf("history.SelectStore: %w", err)
	}
	if opts.Local || exists {
		return &localStore{dir: opts.Dir, path: localFile}, nil
	}

	global := globalStore{dir: opts.Dir, logger: logger}
	if opts.GlobalDir != "" {
		globalFile := filepath.Join(opts.GlobalDir, paths.HistoryFileName)
		exists, err := fileExists(globalFile)
		if err != nil {
			return nil, fmt.Errorf("history.SelectStore: %w", err)
		}
		if exists {
			global.path = globalFile
			return &global, nil
		}
	}
	return &noneStore{globalStore: global}, nil
}

type localStore struct {
	dir  string
	path string
}

func (s *localStore) Location() Location {
	return LocationLocal
}

func (s *localStore) Path() string {
	return s.path
}

func (s *localStore) Dir() string {
	return s.dir
}

func (s *localStore) Canonicalize(prefix string) (string, bool, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", false, nil
	}
	return filepath.Clean(prefix), true, nil
}

func (s *localStore) Load() ([]string, error) {
	return readRecords(s.path)
}

func (s *localStore) Save(records []string) ([]string, error) {
	if err := writeRecords(s.path, records); err != nil {
		return nil, err
	}
	return records, nil
}

type globalStore struct {
	dir    string
	path   string
	logger *slog.Logger
}

func (s *globalStore) Location() Location {
	return LocationGlobal
}

func (s *globalStore) Path() string {
	return s.path
}

func (s *globalStore) Dir() string {
	return s.dir
}

// Canonicalize는 prefix를 실제 절대 경로로 해석한다. 빈 prefix나
// 존재하지 않는 경로는 "."(기준 디렉토리)로 대체된다.
func (s *globalStore) Canonicalize(prefix string) (string, bool, error) {
	if strings.TrimSpace(prefix) == "" {
		prefix = "."
	}
	canonical, err := paths.Canonicalize(prefix, s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		canonical, err = paths.Canonicalize(".", s.dir)
	}
	if err != nil {
		return "", false, fmt.Errorf("history.Canonicalize: %w", err)
	}
	return canonical, true, nil
}

func (s *globalStore) Load() ([]string, error) {
	return readRecords(s.path)
}

// Save는 레코드를 다시 정규화해 기록한다. 그 사이 사라진 경로는 버리고,
// 같은 디렉토리로 해석되는 레코드는 먼저 나온 것만 남긴다.
func (s *globalStore) Save(records []string) ([]string, error) {
	kept := make([]string, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		canonical, err := paths.Canonicalize(r, s.dir)
		if err != nil {
			s.logger.Warn("dropping history record", "record", r, "error", err)
			continue
		}
		if seen[canonical] {
			s.logger.Debug("dropping duplicate history record", "record", r, "canonical", canonical)
			continue
		}
		seen[canonical] = true
		kept = append(kept, canonical)
	}
	if err := writeRecords(s.path, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// noneStore는 global 규칙으로 정규화하지만 읽거나 쓰지 않는다.
type noneStore struct {
	globalStore
}

func (s *noneStore) Location() Location {
	return LocationNone
}

func (s *noneStore) Path() string {
	return ""
}

func (s *noneStore) Load() ([]string, error) {
	return nil, nil
}

func (s *noneStore) Save(records []string) ([]string, error) {
	return records, nil
}

func readRecords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history.Load: %w", err)
	}
	var records []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record := filepath.Clean(line)
		if seen[record] {
			continue
		}
		seen[record] = true
		records = append(records, record)
	}
	return records, nil
}

func writeRecords(path string, records []string) error {
	content := ""
	if len(records) > 0 {
		content = strings.Join(records, "\n") + "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("history.Save: %w", err)
	}
	return nil
}

func createIfMissing(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}
