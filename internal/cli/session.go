package cli

import (
	"fmt"

	"github.com/Pavinberg/monat/internal/config"
	"github.com/Pavinberg/monat/internal/history"
	"github.com/Pavinberg/monat/internal/resolver"
)

// session은 한 번의 실행 동안 사용하는 설정, 히스토리, 해석기 묶음이다.
type session struct {
	cfg      *config.Config
	dir      string
	cache    *history.Cache
	resolver *resolver.Resolver
}

// openSession은 설정을 읽고 저장소를 선택한 뒤 히스토리를 로드한다.
func (a *App) openSession(local bool) (*session, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}

	dir, err := a.workDir()
	if err != nil {
		return nil, fmt.Errorf("cli.openSession: %w", err)
	}

	store, err := history.SelectStore(history.Options{
		Dir:       dir,
		Local:     local,
		GlobalDir: a.globalDir(),
		Logger:    a.logger(),
	})
	if err != nil {
		return nil, err
	}

	c, err := history.New(store, cfg, a.logger())
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		dir:      dir,
		cache:    c,
		resolver: resolver.New(c, dir),
	}, nil
}
