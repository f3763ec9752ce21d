// Package propexp 展开属性值中的 ${name} 引用，支持嵌套引用 ${server.${name}}。
//
// 所有操作都针对一个显式传入的 [Store]，不使用全局状态。
//
// # 扫描规则
//
// 从左到右找到第一个 '}'，再向左找最近的 "${"，两者之间即被引用的 key。
// 因此最内层引用总是先被替换：
//
//	scheme=https
//	name=www
//	server.www=www.pharmgkb.org
//	url=${scheme}://${server.${name}}/   →   https://www.pharmgkb.org/
//
// # 错误
//
//   - [*MalformedReferenceError] - 出现 '}' 但前面没有 "${"
//   - [*UnresolvedReferenceError] - 引用的 key 不存在
//   - [*SelfReferenceError] - 被引用的值直接引用了自身 (仅一跳)
//   - [*SubstitutionLimitError] - 超过 [WithMaxSubstitutions] 上限
//
// 以上错误均被 [*ExpandError] 包装，附带出错的 key 与原始值，用 errors.As 提取。
//
// # 批量展开
//
// [Resolver.ExpandAll] 按 Store.Keys() 的顺序处理，每个 key 展开后立即写回。
// 后处理的 key 可以依赖先处理的 key，反之不行。首个错误即中止，
// 已写回的 key 不会回滚。不透明 key (默认前缀 [DefaultOpaquePrefix]) 原样跳过。
//
// # 单属性展开
//
// [Resolver.ExpandProperty] 展开一个显式给出的值后提交：
// 普通模式遵循 store 的 set-once 语义，Override 模式强制覆盖。
//
// 非并发安全：同一个 store 上不得同时运行两次展开。
package propexp
