package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

func (a *App) newPickCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "히스토리에서 디렉토리를 골라 절대 경로를 출력한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(opts.local)
			if err != nil {
				return err
			}

			recent := s.cache.Recent()
			choice, err := a.FormRunner.RunRecordSelect(recent)
			if err != nil {
				return err
			}
			index := slices.Index(recent, choice) + 1
			if index == 0 {
				return fmt.Errorf("cli.pick: %q not in history", choice)
			}

			res, err := s.resolver.Resolve(fmt.Sprintf(",%d", index))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return s.cache.Save()
		},
	}
}
