package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Pavinberg/monat/internal/config"
	"github.com/Pavinberg/monat/internal/paths"
	"github.com/spf13/cobra"
)

const configTemplate = `# monat 설정 파일
version = 1

# 유지할 히스토리 레코드 수 (1..99)
max_records = 9

# mv 대상 파일이 이미 있으면 확인한다
confirm_overwrite = false
`

func (a *App) newInitCmd() *cobra.Command {
	var global bool
	var force bool
	var maxRecords int

	cmd := &cobra.Command{
		Use:   "init",
		Short: "히스토리 저장소와 설정 파일을 만든다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd.OutOrStdout(), global, force, maxRecords)
		},
	}
	cmd.Flags().BoolVar(&global, "global", false, "글로벌 저장소(~/.monat/history)를 만든다")
	cmd.Flags().BoolVar(&force, "force", false, "기존 설정 파일을 덮어쓴다")
	cmd.Flags().IntVar(&maxRecords, "max-records", 0, "템플릿 대신 이 max_records 값으로 설정 파일을 쓴다")
	return cmd
}

func (a *App) runInit(w io.Writer, global, force bool, maxRecords int) error {
	if maxRecords != 0 && (maxRecords < 1 || maxRecords > config.MaxRecordsLimit) {
		return fmt.Errorf("cli.init: %w: max_records must be between 1 and %d, got %d",
			config.ErrConfig, config.MaxRecordsLimit, maxRecords)
	}

	var storeFile string
	if global {
		dir := a.globalDir()
		if dir == "" {
			return fmt.Errorf("cli.init: global store directory unavailable")
		}
		storeFile = filepath.Join(dir, paths.HistoryFileName)
	} else {
		dir, err := a.workDir()
		if err != nil {
			return fmt.Errorf("cli.init: %w", err)
		}
		storeFile = paths.LocalHistoryFile(dir)
	}

	created, err := touch(storeFile)
	if err != nil {
		return fmt.Errorf("cli.init: %w", err)
	}
	if created {
		fmt.Fprintf(w, "히스토리 저장소 생성: %s\n", storeFile)
	} else {
		fmt.Fprintf(w, "히스토리 저장소 유지: %s\n", storeFile)
	}

	_, err = os.Stat(a.CfgPath)
	switch {
	case err == nil && !force:
		fmt.Fprintf(w, "설정 파일 유지: %s (덮어쓰려면 --force)\n", a.CfgPath)
		return nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("cli.init: %w", err)
	}

	if maxRecords != 0 {
		cfg := config.Default()
		cfg.MaxRecords = maxRecords
		if err := config.Save(a.CfgPath, cfg); err != nil {
			return err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(a.CfgPath), 0700); err != nil {
			return fmt.Errorf("cli.init: %w", err)
		}
		if err := os.WriteFile(a.CfgPath, []byte(configTemplate), 0600); err != nil {
			return fmt.Errorf("cli.init: %w", err)
		}
	}
	fmt.Fprintf(w, "설정 파일 생성: %s\n", a.CfgPath)
	return nil
}

// touch는 파일이 없을 때만 빈 파일을 만든다.
func touch(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, err
	}
	if err := os.WriteFile(path, nil, 0644); err != nil {
		return false, err
	}
	return true, nil
}
