package propexp

import "strings"

const (
	refOpen  = "${"
	refClose = "}"
)

// Reference 是值中一个待替换的占位符。
//
// value[Start:End] == "${" + Name + "}"。
type Reference struct {
	Name  string
	Start int
	End   int
}

// Scan 查找 value 中下一个需要替换的占位符。
//
// 规则：从左到右找到第一个 '}'，再从它向左找最近的 "${"。
// 这样嵌套引用 ${a.${b}} 总是先选中最内层的 ${b}。
//
// 返回值：
//   - 没有 '}'：ok 为 false，err 为 nil
//   - 有 '}' 但其前面没有 "${"：返回 [*MalformedReferenceError]
func Scan(key, value string) (Reference, bool, error) {
	end := strings.Index(value, refClose)
	if end == -1 {
		return Reference{}, false, nil
	}

	start := strings.LastIndex(value[:end], refOpen)
	if start == -1 {
		return Reference{}, false, &MalformedReferenceError{Key: key, Value: value}
	}

	return Reference{
		Name:  value[start+len(refOpen) : end],
		Start: start,
		End:   end + len(refClose),
	}, true, nil
}
