package doctor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Pavinberg/monat/internal/config"
	"github.com/Pavinberg/monat/internal/history"
	"github.com/Pavinberg/monat/internal/paths"
)

// Status는 진단 결과 상태다.
type Status string

const (
	// StatusOK는 정상 상태다.
	StatusOK Status = "OK"
	// StatusWarn는 경고 상태다.
	StatusWarn Status = "WARN"
	// StatusFail는 실패 상태다.
	StatusFail Status = "FAIL"
)

// DiagResult는 하나의 진단 결과다.
type DiagResult struct {
	Name    string
	Status  Status
	Message string
	Fix     string
}

// CheckConfig는 설정 파일을 검사한다. 파일이 없으면 기본값 사용으로 OK다.
func CheckConfig(path string) DiagResult {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return DiagResult{
			Name:    "config",
			Status:  StatusOK,
			Message: fmt.Sprintf("%s 없음, 기본값 사용", path),
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return DiagResult{
			Name:    "config",
			Status:  StatusFail,
			Message: err.Error(),
			Fix:     fmt.Sprintf("%s 수정 또는 monat init --force", path),
		}
	}
	return DiagResult{
		Name:    "config",
		Status:  StatusOK,
		Message: fmt.Sprintf("max_records=%d", cfg.MaxRecords),
	}
}

// CheckStore는 선택된 히스토리 저장소를 검사한다.
func CheckStore(store history.Store) DiagResult {
	if store.Location() == history.LocationNone {
		return DiagResult{
			Name:    "store",
			Status:  StatusWarn,
			Message: "히스토리 저장소 없음, 기록이 저장되지 않음",
			Fix:     "monat init --global 또는 monat -l",
		}
	}
	f, err := os.OpenFile(store.Path(), os.O_RDWR, 0)
	if err != nil {
		return DiagResult{
			Name:    "store",
			Status:  StatusFail,
			Message: fmt.Sprintf("%s 저장소 접근 실패: %v", store.Location(), err),
			Fix:     fmt.Sprintf("%s 권한 확인", store.Path()),
		}
	}
	f.Close()
	return DiagResult{
		Name:    "store",
		Status:  StatusOK,
		Message: fmt.Sprintf("%s: %s", store.Location(), store.Path()),
	}
}

// CheckRecords는 더 이상 존재하지 않는 디렉토리를 가리키는 레코드를 찾는다.
func CheckRecords(records []string, base string) []DiagResult {
	var results []DiagResult
	for i, r := range records {
		abs := paths.Absolutize(r, base)
		info, err := os.Stat(abs)
		switch {
		case err != nil:
			results = append(results, DiagResult{
				Name:    fmt.Sprintf("record_%d", i+1),
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 없음", abs),
				Fix:     "다음 저장 시 글로벌 저장소에서는 자동 제거됨",
			})
		case !info.IsDir():
			results = append(results, DiagResult{
				Name:    fmt.Sprintf("record_%d", i+1),
				Status:  StatusWarn,
				Message: fmt.Sprintf("%s 디렉토리가 아님", abs),
			})
		}
	}
	if len(results) == 0 {
		results = append(results, DiagResult{
			Name:    "records",
			Status:  StatusOK,
			Message: fmt.Sprintf("레코드 %d개 정상", len(records)),
		})
	}
	return results
}

// RunAll은 모든 진단을 실행한다.
func RunAll(cfgPath string, store history.Store, records []string) []DiagResult {
	var results []DiagResult
	results = append(results, CheckConfig(cfgPath))
	results = append(results, CheckStore(store))
	results = append(results, CheckRecords(records, store.Dir())...)
	return results
}
