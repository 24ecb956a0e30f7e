// Package prompt은 대화형 입력을 추상화한다.
// 프로덕션에서는 charmbracelet/huh 기반 구현, 테스트에서는 fake를 사용한다.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var (
	// ErrNoChoices는 선택할 항목이 없을 때 반환된다.
	ErrNoChoices = errors.New("nothing to choose from")
	// ErrNotInteractive는 표준 입력이 터미널이 아닐 때 반환된다.
	ErrNotInteractive = errors.New("stdin is not a terminal")
)

func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// FormRunner는 TUI 폼 실행을 추상화하는 interface다.
type FormRunner interface {
	// RunRecordSelect는 히스토리 레코드 선택 UI를 표시한다.
	// records는 최신순이며, 선택된 레코드를 그대로 반환한다.
	RunRecordSelect(records []string) (string, error)

	// RunConfirm은 확인 프롬프트를 표시한다.
	RunConfirm(message string) (bool, error)
}

// HuhFormRunner는 charmbracelet/huh 기반의 FormRunner 구현이다.
type HuhFormRunner struct{}

var _ FormRunner = (*HuhFormRunner)(nil)

// RunRecordSelect는 레코드 목록을 히스토리 인덱스와 함께 보여준다.
func (h *HuhFormRunner) RunRecordSelect(records []string) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("prompt.RunRecordSelect: %w", ErrNoChoices)
	}
	if !interactive() {
		return "", fmt.Errorf("prompt.RunRecordSelect: %w", ErrNotInteractive)
	}

	options := make([]huh.Option[string], len(records))
	for i, r := range records {
		options[i] = huh.NewOption(fmt.Sprintf(",%d  %s", i+1, r), r)
	}

	selected := records[0]
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Pick a directory").
			Options(options...).
			Value(&selected),
	))
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt.RunRecordSelect: %w", err)
	}
	return selected, nil
}

// RunConfirm은 확인 프롬프트를 표시한다.
func (h *HuhFormRunner) RunConfirm(message string) (bool, error) {
	if !interactive() {
		return false, fmt.Errorf("prompt.RunConfirm: %w", ErrNotInteractive)
	}
	var confirm bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(message).Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt.RunConfirm: %w", err)
	}
	return confirm, nil
}
