package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newResolveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <expr>...",
		Short: "표현식을 절대 경로로 해석해 한 줄씩 출력한다",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openSession(opts.local)
			if err != nil {
				return err
			}
			resolved, err := s.resolver.ResolveAll(args...)
			if err != nil {
				return err
			}
			for _, p := range resolved {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return s.cache.Save()
		},
	}
}
