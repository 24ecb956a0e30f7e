package cli

import (
	"errors"
	"io/fs"
)

// ExitCode는 monat의 종료 코드다.
type ExitCode int

const (
	// ExitSuccess는 정상 종료다.
	ExitSuccess ExitCode = 0
	// ExitGeneral는 일반 에러다.
	ExitGeneral ExitCode = 1
	// ExitSyntax는 표현식 문법 오류다.
	ExitSyntax ExitCode = 2
	// ExitIndexOutOfRange는 히스토리 범위를 벗어난 인덱스다.
	ExitIndexOutOfRange ExitCode = 3
	// ExitCommandNotFound는 -c 명령을 찾지 못한 경우다.
	ExitCommandNotFound ExitCode = 4
	// ExitConfigError는 설정 파일 오류다.
	ExitConfigError ExitCode = 5
	// ExitNotFound는 대상 경로가 없는 경우다.
	ExitNotFound ExitCode = 6
)

// MapExitCode는 sentinel error를 기반으로 적절한 종료 코드를 반환한다.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	switch {
	case errors.Is(err, ErrSyntax):
		return ExitSyntax
	case errors.Is(err, ErrIndexOutOfRange):
		return ExitIndexOutOfRange
	case errors.Is(err, ErrCommandNotFound):
		return ExitCommandNotFound
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	default:
		return ExitGeneral
	}
}
