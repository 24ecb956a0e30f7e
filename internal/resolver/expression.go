package resolver

import (
	"math"
	"strconv"
	"strings"

	"github.com/Pavinberg/monat/internal/paths"
)

const (
	// Selector는 히스토리 참조의 시작 문자다.
	Selector = ','
	// Separator는 인덱스와 suffix 사이의 구분 문자다.
	Separator = '/'

	msgMissingSeparator = "a separator is expected after the history selector"
)

// Expression은 파싱된 경로 표현식이다.
// History가 true면 Index와 Suffix가, 아니면 Prefix와 Suffix가 유효하다.
type Expression struct {
	History bool
	Index   int
	// IndexText는 입력된 인덱스 숫자열 그대로다. 인덱스가 생략되면 비어 있다.
	IndexText string
	Prefix    string
	Suffix    string
}

// Parse는 경로 표현식 하나를 파싱한다.
//
//	history_ref := ',' digits? ('/' suffix)?
//
// digits가 없으면 인덱스는 0이다. 리터럴 경로는 부모 디렉토리와
// 마지막 구성 요소로 나뉜다.
func Parse(expr string) (Expression, error) {
	if !IsHistoryRef(expr) {
		dir, leaf := paths.Split(expr)
		return Expression{Prefix: dir, Suffix: leaf}, nil
	}

	rest := expr[1:]
	digits := 0
	for digits < len(rest) && isDigit(rest[digits]) {
		digits++
	}

	index := 0
	text := rest[:digits]
	if digits > 0 {
		n, err := strconv.Atoi(text)
		if err != nil {
			// int를 넘는 인덱스는 math.MaxInt로 고정한다. 어떤 히스토리에도 없다.
			n = math.MaxInt
		}
		index = n
	}

	rest = rest[digits:]
	switch {
	case rest == "":
		return Expression{History: true, Index: index, IndexText: text}, nil
	case rest[0] == Separator:
		return Expression{History: true, Index: index, IndexText: text, Suffix: rest[1:]}, nil
	default:
		return Expression{}, &SyntaxError{Expr: expr, Msg: msgMissingSeparator}
	}
}

// IsHistoryRef는 expr이 히스토리 참조인지 여부다.
func IsHistoryRef(expr string) bool {
	return strings.HasPrefix(expr, string(Selector))
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
