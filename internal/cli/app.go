package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/Pavinberg/monat/internal/cmdexec"
	"github.com/Pavinberg/monat/internal/paths"
	"github.com/Pavinberg/monat/internal/prompt"
)

// App은 CLI 명령이 공유하는 의존성을 보관한다. 테스트에서는 fake로 교체한다.
type App struct {
	Commander  cmdexec.Commander
	FormRunner prompt.FormRunner
	// CfgPath는 config.toml 경로다. --config 플래그가 덮어쓴다.
	CfgPath string
	// WorkDir는 표현식 해석 기준 디렉토리다. 비어 있으면 os.Getwd를 사용한다.
	WorkDir string
	// GlobalDir는 글로벌 저장소 디렉토리다. 비어 있으면 ~/.monat이다.
	GlobalDir string
	// Logger가 nil이면 --verbose 여부에 따라 생성한다.
	Logger *slog.Logger
	// Stderr는 상세 로그 출력 대상이다. nil이면 os.Stderr다.
	Stderr io.Writer

	verbose bool
	// cfgPathErr는 기본 설정 경로를 정하지 못한 이유다. 로거가 준비된 뒤 기록한다.
	cfgPathErr error
}

// NewApp은 실제 명령 실행기와 huh 폼을 사용하는 App을 생성한다.
func NewApp() *App {
	cfgPath, err := paths.DefaultConfigPath()
	return &App{
		Commander:  &cmdexec.RealCommander{},
		FormRunner: &prompt.HuhFormRunner{},
		CfgPath:    cfgPath,
		cfgPathErr: err,
	}
}

// warnStartup은 App 생성 중 발생한 문제를 로거로 남긴다.
// --config로 경로를 지정했다면 기본 경로 문제는 무시한다.
func (a *App) warnStartup(configFlagSet bool) {
	if a.cfgPathErr != nil && !configFlagSet {
		a.logger().Warn("cannot locate home directory, using relative config path",
			"path", a.CfgPath, "error", a.cfgPathErr)
	}
}

// logger는 App의 로거를 반환한다. 기본은 버리고 --verbose면 stderr에 debug로 쓴다.
func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	if !a.verbose {
		a.Logger = slog.New(slog.DiscardHandler)
		return a.Logger
	}
	w := a.Stderr
	if w == nil {
		w = os.Stderr
	}
	a.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return a.Logger
}

func (a *App) workDir() (string, error) {
	if a.WorkDir != "" {
		return a.WorkDir, nil
	}
	return os.Getwd()
}

func (a *App) globalDir() string {
	if a.GlobalDir != "" {
		return a.GlobalDir
	}
	dir, err := paths.GlobalStoreDir()
	if err != nil {
		a.logger().Warn("global store unavailable", "error", err)
		return ""
	}
	return dir
}
