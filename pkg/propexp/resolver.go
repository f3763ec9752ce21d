package propexp

import (
	"log/slog"
	"strings"
)

// Store 是展开所依赖的属性存储。
//
// 实现无需并发安全：展开过程假设没有其他写者。
type Store interface {
	// Get 读取 key，不存在时 ok 为 false。
	Get(key string) (value string, ok bool)
	// SetIfUnset 仅在 store 的 set-once 语义允许时写入。
	SetIfUnset(key, value string)
	// SetForced 无条件写入并标记为用户设置。
	SetForced(key, value string)
	// Keys 返回调用时刻的 key 快照，顺序即批量展开顺序。
	Keys() []string
}

// Resolver 针对一个 [Store] 展开 ${...} 引用。
type Resolver struct {
	store Store
	opts  *options
}

// New 创建绑定到 store 的 Resolver。
func New(store Store, opts ...Option) *Resolver {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Resolver{store: store, opts: o}
}

func (r *Resolver) logger() *slog.Logger {
	if r.opts.logger != nil {
		return r.opts.logger
	}
	return slog.Default()
}

// IsOpaque 报告 key 是否被排除在扫描之外。
func (r *Resolver) IsOpaque(key string) bool {
	return r.opts.opaque != nil && r.opts.opaque(key)
}

// Resolve 反复扫描并替换 value 中的引用，直到没有 '}' 为止。
//
// 失败时返回 [*ExpandError]，其中 Err 为具体错误类型。
func (r *Resolver) Resolve(key, value string) (string, error) {
	resolved, err := r.resolve(key, value)
	if err != nil {
		return "", wrapExpandError(key, value, err)
	}
	return resolved, nil
}

func (r *Resolver) resolve(key, value string) (string, error) {
	log := r.logger()
	for n := 0; ; n++ {
		ref, ok, err := Scan(key, value)
		if err != nil {
			return "", err
		}
		if !ok {
			return value, nil
		}

		if limit := r.opts.maxSubstitutions; limit > 0 && n >= limit {
			return "", &SubstitutionLimitError{Key: key, Limit: limit}
		}

		subValue, found := r.store.Get(ref.Name)
		if !found {
			return "", &UnresolvedReferenceError{Key: key, Ref: ref.Name}
		}
		if containsSelf(ref.Name, subValue) {
			return "", &SelfReferenceError{Key: key, Ref: ref.Name, RefValue: subValue}
		}

		log.Debug("Substituted reference", "key", key, "ref", ref.Name)
		value = value[:ref.Start] + subValue + value[ref.End:]
	}
}

func containsSelf(name, value string) bool {
	return strings.Contains(value, refOpen+name+refClose)
}

// Resolve 使用默认选项展开单个值。
func Resolve(store Store, key, value string) (string, error) {
	return New(store).Resolve(key, value)
}
