package command

import (
	"fmt"

	"github.com/lwmacct/251207-go-pkg-propexp/internal/config"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

// BuildStore 按优先级装配属性 store：用户定义 → 属性文件 (按顺序) → 环境变量。
//
// 先写入者生效，因此用户定义覆盖文件，文件覆盖环境变量。
// environ 为 nil 或 cfg.Env 为 false 时不导入环境变量。
func BuildStore(cfg config.ExpandConfig, defines, environ []string) (*propstore.MemoryStore, error) {
	store := propstore.NewMemoryStore()

	if err := propstore.LoadDefines(store, defines); err != nil {
		return nil, err
	}

	for _, path := range cfg.Files {
		if _, err := propstore.LoadFile(store, path); err != nil {
			return nil, fmt.Errorf("load properties: %w", err)
		}
	}

	if cfg.Env && environ != nil {
		propstore.LoadEnviron(store, cfg.EnvPrefix, environ)
	}

	return store, nil
}

// NewResolver 按配置创建绑定到 store 的 Resolver。
func NewResolver(cfg config.ExpandConfig, store propexp.Store) *propexp.Resolver {
	return propexp.New(store,
		propexp.WithOpaquePrefix(cfg.OpaquePrefix),
		propexp.WithMaxSubstitutions(cfg.MaxSubstitutions),
	)
}

// VisibleEntries 返回需要输出的记录，all 为 false 时排除不透明 key。
func VisibleEntries(store *propstore.MemoryStore, r *propexp.Resolver, all bool) []propstore.Entry {
	entries := store.Entries()
	if all {
		return entries
	}

	out := entries[:0]
	for _, e := range entries {
		if !r.IsOpaque(e.Key) {
			out = append(out, e)
		}
	}

	return out
}
