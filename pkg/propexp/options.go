package propexp

import (
	"log/slog"
	"strings"
)

// DefaultOpaquePrefix 默认的不透明 key 前缀。
//
// 以环境变量形式导出的 shell 函数 (BASH_FUNC_name%%) 的值是函数体，
// 其中的花括号不是占位符，必须原样保留。
const DefaultOpaquePrefix = "env.BASH_FUNC_"

// options 展开选项。
type options struct {
	opaque           func(key string) bool
	maxSubstitutions int // 0 表示不限制
	logger           *slog.Logger
}

// Option 展开选项函数。
type Option func(*options)

func defaultOptions() *options {
	return &options{
		opaque: prefixPredicate(DefaultOpaquePrefix),
	}
}

func prefixPredicate(prefix string) func(string) bool {
	return func(key string) bool {
		return prefix != "" && strings.HasPrefix(key, prefix)
	}
}

// WithOpaquePrefix 设置不透明 key 前缀，空字符串表示没有不透明 key。
func WithOpaquePrefix(prefix string) Option {
	return func(o *options) {
		o.opaque = prefixPredicate(prefix)
	}
}

// WithOpaque 使用自定义谓词判断不透明 key，nil 表示没有不透明 key。
func WithOpaque(fn func(key string) bool) Option {
	return func(o *options) {
		o.opaque = fn
	}
}

// WithMaxSubstitutions 限制单个值的替换次数。
//
// 自引用检测只覆盖一跳，A → B → A 这类环会无限展开；
// 设置上限后超限返回 [*SubstitutionLimitError]。0 表示不限制 (默认)。
func WithMaxSubstitutions(n int) Option {
	return func(o *options) {
		o.maxSubstitutions = n
	}
}

// WithLogger 设置日志记录器，默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
