// Package resolver는 경로 표현식(",1/readme.md" 또는 리터럴 경로)을
// 절대 경로로 해석하고, 사용한 디렉토리 prefix를 히스토리에 기록한다.
package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Pavinberg/monat/internal/paths"
)

// History는 Resolver가 사용하는 히스토리 캐시 연산이다.
type History interface {
	Get(index int) (string, bool)
	AddIfNotExists(prefix string) error
	SetFormerPrefix(prefix string)
}

// Result는 표현식 하나의 해석 결과다.
type Result struct {
	Expression Expression
	// Path는 "."/".."가 정리된 절대 경로다. 존재할 필요는 없다.
	Path string
	// Prefix는 사용한 디렉토리 prefix의 절대 경로다.
	Prefix string
}

// Resolver는 표현식 해석기다.
type Resolver struct {
	history History
	// dir는 리터럴 경로의 기준 디렉토리다.
	dir string
	// base는 히스토리 레코드의 기준 디렉토리(저장소가 선택된 디렉토리)다.
	base string
}

// New는 dir를 기준으로 해석하는 Resolver를 생성한다.
func New(h History, dir string) *Resolver {
	return &Resolver{history: h, dir: dir, base: dir}
}

// WithDir는 리터럴 경로를 dir 기준으로 해석하는 Resolver를 반환한다.
// 히스토리 레코드는 계속 원래 디렉토리 기준으로 정규화된다.
func (r *Resolver) WithDir(dir string) *Resolver {
	return &Resolver{history: r.history, dir: dir, base: r.base}
}

// Resolve는 표현식 하나를 해석하고 prefix를 히스토리에 기록한다.
func (r *Resolver) Resolve(expr string) (*Result, error) {
	if strings.HasPrefix(expr, "~") {
		expanded, err := paths.ExpandTilde(expr)
		if err != nil {
			return nil, fmt.Errorf("resolver.Resolve: %w", err)
		}
		expr = expanded
	}

	e, err := Parse(expr)
	if err != nil {
		return nil, err
	}

	var prefix string
	if e.History {
		stored, ok := r.history.Get(e.Index)
		if !ok {
			return nil, &IndexOutOfRangeError{Index: e.Index, Text: e.IndexText}
		}
		prefix = paths.Absolutize(stored, r.base)
	} else {
		prefix = paths.Absolutize(e.Prefix, r.dir)
	}

	if err := r.history.AddIfNotExists(paths.Simplify(prefix, r.base)); err != nil {
		return nil, fmt.Errorf("resolver.Resolve: %w", err)
	}

	return &Result{
		Expression: e,
		Path:       paths.Absolutize(filepath.Join(prefix, e.Suffix), r.dir),
		Prefix:     prefix,
	}, nil
}

// ResolveAll은 표현식을 순서대로 해석한다. 첫 번째 표현식의 prefix는
// former-prefix 레지스터에 기록되어 이후 표현식이 ",/..."로 참조할 수 있다.
func (r *Resolver) ResolveAll(exprs ...string) ([]string, error) {
	resolved := make([]string, 0, len(exprs))
	for i, expr := range exprs {
		res, err := r.Resolve(expr)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			r.history.SetFormerPrefix(res.Prefix)
		}
		resolved = append(resolved, res.Path)
	}
	return resolved, nil
}
