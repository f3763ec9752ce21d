package propexp

// Property 是一次单属性展开的输入。
type Property struct {
	Name string
	// Value 为 nil 时不做展开，只按提交策略提交 store 中已有的值。
	Value *string
	// Override 为 true 时无条件写入；否则遵循 store 的 set-once 语义。
	Override bool
}

// ExpandProperty 展开 p.Value 并提交到 store，返回提交后 store 中的值。
//
// 普通提交调用 SetIfUnset，已存在的 key 不会被改写；
// Override 提交调用 SetForced。
func (r *Resolver) ExpandProperty(p Property) (string, error) {
	if p.Name == "" {
		return "", ErrNoName
	}

	var value string
	if p.Value != nil {
		resolved, err := r.Resolve(p.Name, *p.Value)
		if err != nil {
			return "", err
		}
		value = resolved
	} else {
		current, ok := r.store.Get(p.Name)
		if !ok {
			return "", &ExpandError{Key: p.Name, Err: ErrMissingValue}
		}
		value = current
	}

	if p.Override {
		r.store.SetForced(p.Name, value)
	} else {
		r.store.SetIfUnset(p.Name, value)
	}

	committed, _ := r.store.Get(p.Name)
	r.logger().Debug("Committed property", "key", p.Name, "override", p.Override, "applied", committed == value)

	return committed, nil
}

// StringValue 返回 s 的指针，便于构造 [Property]。
func StringValue(s string) *string {
	return &s
}
