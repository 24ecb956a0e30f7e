package history

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/Pavinberg/monat/internal/config"
)

// Cache는 중복 없는 bounded FIFO 히스토리다.
type Cache struct {
	store   Store
	max     int
	records []string // 오래된 것부터
	dirty   bool
	former  string
	hasPrev bool
	logger  *slog.Logger
}

// New는 store에서 레코드를 읽어 Cache를 생성한다.
func New(store Store, cfg *config.Config, logger *slog.Logger) (*Cache, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	records, err := store.Load()
	if err != nil {
		return nil, err
	}
	logger.Debug("history loaded",
		"location", store.Location().String(), "path", store.Path(), "records", len(records))
	return &Cache{
		store:   store,
		max:     cfg.MaxRecords,
		records: records,
		logger:  logger,
	}, nil
}

// Store는 이 캐시의 저장소다.
func (c *Cache) Store() Store {
	return c.store
}

// Len은 레코드 수다.
func (c *Cache) Len() int {
	return len(c.records)
}

// Dirty는 마지막 저장 이후 레코드가 추가되었는지 여부다.
func (c *Cache) Dirty() bool {
	return c.dirty
}

// Records는 레코드를 저장 순서(오래된 것부터)로 복사해 반환한다.
func (c *Cache) Records() []string {
	return slices.Clone(c.records)
}

// Recent는 레코드를 최신순으로 반환한다. Recent()[i]는 Get(i+1)과 같다.
func (c *Cache) Recent() []string {
	recent := slices.Clone(c.records)
	slices.Reverse(recent)
	return recent
}

// Get은 최신순 인덱스로 레코드를 조회한다. 0은 former-prefix 레지스터다.
func (c *Cache) Get(index int) (string, bool) {
	if index == 0 {
		return c.former, c.hasPrev
	}
	if index < 0 || index > len(c.records) {
		return "", false
	}
	return c.records[len(c.records)-index], true
}

// SetFormerPrefix는 former-prefix 레지스터를 덮어쓴다. 저장되지 않는다.
func (c *Cache) SetFormerPrefix(prefix string) {
	c.former = prefix
	c.hasPrev = true
}

// AddIfNotExists는 저장소 규칙으로 정규화한 prefix가 없을 때만 뒤에 추가한다.
func (c *Cache) AddIfNotExists(prefix string) error {
	canonical, ok, err := c.store.Canonicalize(prefix)
	if err != nil {
		return err
	}
	if !ok || slices.Contains(c.records, canonical) {
		return nil
	}
	c.records = append(c.records, canonical)
	c.dirty = true
	c.logger.Debug("history record added", "record", canonical)
	return nil
}

// Save는 변경이 있을 때만 앞에서부터 max개를 넘는 레코드를 버리고
// 전체를 저장소에 다시 쓴다.
func (c *Cache) Save() error {
	if !c.dirty {
		return nil
	}
	if over := len(c.records) - c.max; over > 0 {
		c.logger.Debug("history records evicted", "records", c.records[:over])
		c.records = slices.Clone(c.records[over:])
	}
	written, err := c.store.Save(c.records)
	if err != nil {
		return err
	}
	c.records = written
	c.dirty = false
	c.logger.Debug("history saved",
		"location", c.store.Location().String(), "path", c.store.Path(), "records", len(written))
	return nil
}

// Render는 레코드를 저장 순서대로 "rank -- path" 형식으로 출력한다.
func (c *Cache) Render(w io.Writer) error {
	if len(c.records) == 0 {
		_, err := fmt.Fprintln(w, "[No history]")
		return err
	}
	for i, r := range c.records {
		if _, err := fmt.Fprintf(w, "%d -- %s\n", i+1, r); err != nil {
			return err
		}
	}
	return nil
}
