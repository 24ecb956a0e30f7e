package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Pavinberg/monat/internal/action"
	"github.com/spf13/cobra"
)

// ErrNotDirectory는 --dive 대상이 디렉토리가 아닐 때의 sentinel error다.
var ErrNotDirectory = errors.New("not a directory")

type rootOptions struct {
	command string
	local   bool
	dive    string
}

// NewRootCmd는 monat CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "monat [path1] [path2]",
		Short: "최근 디렉토리 히스토리 기반 경로 단축 도구",
		Long: `monat은 ",N/suffix" 형식으로 최근에 사용한 디렉토리를 참조한다.

  monat               히스토리 출력
  monat PATH          PATH 목록 출력 (ls)
  monat SRC DST       SRC를 DST로 이동 (mv)
  monat -c CMD PATH.. CMD에 해석된 경로를 인자로 전달`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.warnStartup(cmd.Flags().Changed("config"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMain(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 로그를 stderr에 출력")
	cmd.PersistentFlags().BoolVarP(&opts.local, "local", "l", false, "현재 디렉토리의 로컬 히스토리 사용")
	cmd.Flags().StringVarP(&opts.command, "command", "c", "", "해석된 경로를 인자로 실행할 명령")
	cmd.Flags().StringVarP(&opts.dive, "dive", "d", "", "이 디렉토리 안에서 실행")

	cmd.AddCommand(
		a.newResolveCmd(&opts),
		a.newPickCmd(&opts),
		a.newInitCmd(),
		a.newHookCmd(),
		a.newDoctorCmd(&opts),
	)
	return cmd
}

func (a *App) runMain(ctx context.Context, w io.Writer, opts rootOptions, args []string) error {
	s, err := a.openSession(opts.local)
	if err != nil {
		return err
	}
	if opts.local {
		fmt.Fprintln(w, "Toggled to local monat")
	}

	r := s.resolver
	actionDir := s.dir
	if opts.dive != "" {
		res, err := r.Resolve(opts.dive)
		if err != nil {
			return err
		}
		info, err := os.Stat(res.Path)
		if err != nil {
			return fmt.Errorf("cli.dive: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("cli.dive: %s: %w", res.Path, ErrNotDirectory)
		}
		r = r.WithDir(res.Path)
		actionDir = res.Path
		a.logger().Debug("dive", "dir", actionDir)
	}

	resolved, err := r.ResolveAll(args...)
	if err != nil {
		return err
	}

	switch {
	case opts.command != "":
		err = action.Run(ctx, a.Commander, w, actionDir, opts.command, resolved)
	case len(resolved) == 0:
		err = s.cache.Render(w)
	case len(resolved) == 1:
		err = action.List(w, resolved[0])
	default:
		var confirm action.ConfirmFunc
		if s.cfg.IsConfirmOverwrite() {
			confirm = func(target string) (bool, error) {
				return a.FormRunner.RunConfirm(fmt.Sprintf("%s 덮어쓰기?", target))
			}
		}
		_, err = action.Move(resolved[0], resolved[1], confirm)
	}
	if err != nil {
		return err
	}

	return s.cache.Save()
}
