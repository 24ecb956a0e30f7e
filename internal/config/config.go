package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일이 잘못되었을 때의 sentinel error다.
var ErrConfig = errors.New("invalid configuration")

const (
	// DefaultMaxRecords는 히스토리에 유지하는 기본 레코드 수다.
	DefaultMaxRecords = 9
	// MaxRecordsLimit은 max_records의 상한이다.
	MaxRecordsLimit = 99
)

// Config는 monat 설정 파일의 최상위 구조체다.
type Config struct {
	Version          int   `toml:"version"`
	MaxRecords       int   `toml:"max_records"`
	ConfirmOverwrite *bool `toml:"confirm_overwrite"`
}

// Default는 설정 파일이 없을 때 사용하는 기본 설정을 반환한다.
func Default() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 파일이 없으면 기본 설정을 반환한다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsConfirmOverwrite는 confirm_overwrite 설정값을 반환한다.
func (c *Config) IsConfirmOverwrite() bool {
	if c.ConfirmOverwrite == nil {
		return false
	}
	return *c.ConfirmOverwrite
}

func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.MaxRecords == 0 {
		c.MaxRecords = DefaultMaxRecords
	}
	if c.ConfirmOverwrite == nil {
		f := false
		c.ConfirmOverwrite = &f
	}
}

func (c *Config) validate() error {
	if c.Version != 1 {
		return fmt.Errorf("config.Load: %w: unsupported version %d", ErrConfig, c.Version)
	}
	if c.MaxRecords < 1 || c.MaxRecords > MaxRecordsLimit {
		return fmt.Errorf("config.Load: %w: max_records must be between 1 and %d, got %d",
			ErrConfig, MaxRecordsLimit, c.MaxRecords)
	}
	return nil
}
