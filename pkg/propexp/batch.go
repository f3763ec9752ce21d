package propexp

import (
	"github.com/google/uuid"
)

// Report 描述一次批量展开。
type Report struct {
	Pass      string   // 本次展开的标识，用于关联日志
	Expanded  []string // 值发生变化并已写回的 key
	Unchanged []string // 展开后值不变的 key
	Skipped   []string // 不透明 key
}

// ExpandAll 按 store.Keys() 的顺序展开所有非不透明 key。
//
// 每个 key 展开后立即写回 (SetForced)，因此后处理的 key 能看到先处理 key 的
// 替换结果，反之不行。遇到第一个错误立即返回，已写回的 key 保持提交状态。
func (r *Resolver) ExpandAll() (Report, error) {
	report := Report{Pass: uuid.NewString()}
	log := r.logger().With("pass", report.Pass)

	keys := r.store.Keys()
	log.Info("Expansion pass started", "keys", len(keys))

	for _, key := range keys {
		if r.IsOpaque(key) {
			log.Debug("Skipped opaque key", "key", key)
			report.Skipped = append(report.Skipped, key)

			continue
		}

		value, ok := r.store.Get(key)
		if !ok {
			continue
		}

		resolved, err := r.resolve(key, value)
		if err != nil {
			log.Error("Expansion pass failed", "key", key, "error", err)

			return report, wrapExpandError(key, value, err)
		}

		if resolved == value {
			report.Unchanged = append(report.Unchanged, key)

			continue
		}

		r.store.SetForced(key, resolved)
		report.Expanded = append(report.Expanded, key)
		log.Debug("Wrote expanded value", "key", key)
	}

	log.Info("Expansion pass finished",
		"expanded", len(report.Expanded),
		"unchanged", len(report.Unchanged),
		"skipped", len(report.Skipped),
	)

	return report, nil
}

// ExpandAll 使用默认选项对 store 做一次批量展开。
func ExpandAll(store Store) (Report, error) {
	return New(store).ExpandAll()
}
