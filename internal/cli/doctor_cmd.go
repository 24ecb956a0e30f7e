package cli

import (
	"fmt"
	"io"

	"github.com/Pavinberg/monat/internal/doctor"
	"github.com/Pavinberg/monat/internal/history"
	"github.com/spf13/cobra"
)

func (a *App) newDoctorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "저장소와 설정을 진단한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDoctor(cmd.OutOrStdout(), opts.local)
		},
	}
}

func (a *App) runDoctor(w io.Writer, local bool) error {
	dir, err := a.workDir()
	if err != nil {
		return fmt.Errorf("cli.doctor: %w", err)
	}
	store, err := history.SelectStore(history.Options{
		Dir:       dir,
		Local:     local,
		GlobalDir: a.globalDir(),
		Logger:    a.logger(),
	})
	if err != nil {
		return err
	}
	records, err := store.Load()
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] records: %v\n", err)
	}

	printDiagResults(w, doctor.RunAll(a.CfgPath, store, records))
	return nil
}

// printDiagResults는 진단 결과 목록을 출력한다.
func printDiagResults(w io.Writer, results []doctor.DiagResult) {
	for _, r := range results {
		fmt.Fprintf(w, "  [%s] %s: %s\n", statusIcon(r.Status), r.Name, r.Message)
		if r.Fix != "" {
			fmt.Fprintf(w, "      Fix: %s\n", r.Fix)
		}
	}
}

func statusIcon(s doctor.Status) string {
	switch s {
	case doctor.StatusOK:
		return "OK"
	case doctor.StatusWarn:
		return "!!"
	case doctor.StatusFail:
		return "FAIL"
	default:
		return "??"
	}
}
