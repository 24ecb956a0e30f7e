package cli

import (
	"github.com/Pavinberg/monat/internal/action"
	"github.com/Pavinberg/monat/internal/cmdexec"
	"github.com/Pavinberg/monat/internal/config"
	"github.com/Pavinberg/monat/internal/resolver"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrSyntax는 히스토리 선택자 뒤에 구분자가 없을 때의 sentinel error다.
	ErrSyntax = resolver.ErrSyntax
	// ErrIndexOutOfRange는 히스토리에 없는 인덱스를 참조할 때의 sentinel error다.
	ErrIndexOutOfRange = resolver.ErrIndexOutOfRange
	// ErrCommandNotFound는 -c로 지정한 명령이 PATH에 없을 때의 sentinel error다.
	ErrCommandNotFound = cmdexec.ErrCommandNotFound
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrMoveDeclined는 덮어쓰기 확인을 거절했을 때의 sentinel error다.
	ErrMoveDeclined = action.ErrMoveDeclined
)
