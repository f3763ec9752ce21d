package propexp

import (
	"errors"
	"fmt"
)

// ErrNoName 表示单属性展开缺少属性名。
var ErrNoName = errors.New("propexp: property name is required")

// ErrMissingValue 表示单属性展开既未提供原始值，store 中也没有该 key。
var ErrMissingValue = errors.New("propexp: no value supplied and key not in store")

// MalformedReferenceError 出现了 '}'，但在其之前找不到匹配的 "${"。
type MalformedReferenceError struct {
	Key   string
	Value string // 出错时的值快照
}

func (e *MalformedReferenceError) Error() string {
	return fmt.Sprintf("found '}' but cannot find matching '${' while trying to expand '%s': '%s'", e.Key, e.Value)
}

// UnresolvedReferenceError 引用的 key 在 store 中不存在。
type UnresolvedReferenceError struct {
	Key string
	Ref string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("cannot find value for '%s' in key '%s'", e.Ref, e.Key)
}

// SelfReferenceError 被引用 key 的值字面上又引用了它自己。
//
// 只检测一跳：A → A。更长的环 (A → B → A) 不在检测范围内。
type SelfReferenceError struct {
	Key      string
	Ref      string
	RefValue string
}

func (e *SelfReferenceError) Error() string {
	return fmt.Sprintf("recursive keys: [%s] --> [%s] --> [%s]", e.Key, e.Ref, e.RefValue)
}

// SubstitutionLimitError 单个值的替换次数超过 [WithMaxSubstitutions] 设置的上限。
type SubstitutionLimitError struct {
	Key   string
	Limit int
}

func (e *SubstitutionLimitError) Error() string {
	return fmt.Sprintf("more than %d substitutions while expanding '%s', possible reference cycle", e.Limit, e.Key)
}

// ExpandError 为底层错误附加触发它的 key 与原始 (展开前) 值。
type ExpandError struct {
	Key   string
	Value string
	Err   error
}

func (e *ExpandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("propexp: expand %q (value %q): %v", e.Key, e.Value, e.Err)
}

func (e *ExpandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func wrapExpandError(key, value string, err error) error {
	if err == nil {
		return nil
	}

	var expandErr *ExpandError
	if errors.As(err, &expandErr) {
		return err
	}

	return &ExpandError{Key: key, Value: value, Err: err}
}
