package cli

import (
	"fmt"
	"io"

	"github.com/Pavinberg/monat/internal/shell"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func (a *App) newHookCmd() *cobra.Command {
	var shellType string
	var install bool

	cmd := &cobra.Command{
		Use:   "hook",
		Short: "mcd 셸 함수를 출력하거나 RC 파일에 설치한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHook(cmd.OutOrStdout(), shellType, install)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "", "셸 종류 (zsh, bash, fish). 생략하면 $SHELL로 감지")
	cmd.Flags().BoolVar(&install, "install", false, "셸 RC 파일에 추가한다")
	return cmd
}

func (a *App) runHook(w io.Writer, shellType string, install bool) error {
	if shellType == "" {
		shellType = shell.DetectShell()
	}
	snippet := shell.HookSnippet(shellType)
	if snippet == "" {
		return fmt.Errorf("cli.hook: unsupported shell: %q", shellType)
	}

	if !install {
		_, err := fmt.Fprint(w, snippet)
		return err
	}

	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("cli.hook: %w", err)
	}
	rcPath := shell.RCPath(shellType, home)
	added, err := shell.InstallHook(shellType, rcPath)
	if err != nil {
		return err
	}
	if added {
		fmt.Fprintf(w, "셸 함수 설치: %s (새 셸에서 mcd 사용 가능)\n", rcPath)
	} else {
		fmt.Fprintf(w, "이미 설치됨: %s\n", rcPath)
	}
	return nil
}
