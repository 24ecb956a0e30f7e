package resolver

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrSyntax는 히스토리 참조 문법 위반을 나타내는 sentinel error다.
	ErrSyntax = errors.New("syntax error")
	// ErrIndexOutOfRange는 존재하지 않는 히스토리 인덱스를 나타내는 sentinel error다.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// SyntaxError는 히스토리 참조를 파싱하지 못했을 때 반환된다.
type SyntaxError struct {
	Expr string
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError: %s: %q", e.Msg, e.Expr)
}

// Is는 errors.Is(err, ErrSyntax)를 지원한다.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// IndexOutOfRangeError는 히스토리에 없는 인덱스를 참조했을 때 반환된다.
// Text가 있으면 메시지에 입력된 숫자열을 그대로 쓴다.
type IndexOutOfRangeError struct {
	Index int
	Text  string
}

func (e *IndexOutOfRangeError) Error() string {
	index := e.Text
	if index == "" {
		index = strconv.Itoa(e.Index)
	}
	return fmt.Sprintf("IndexOutOfRangeError: index of %s is out of history records range", index)
}

// Is는 errors.Is(err, ErrIndexOutOfRange)를 지원한다.
func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}
