// Package propstore 提供 [github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp] 使用的属性存储。
//
// [MemoryStore] 按插入顺序保存属性，顺序即批量展开顺序。
// 属性默认 set-once：先写入者生效，只有强制写入才会改写。
//
// # 加载
//
// 所有加载函数都不覆盖已有 key，因此先加载的来源优先：
//
//	store := propstore.NewMemoryStore()
//	_ = propstore.LoadDefines(store, []string{"name=www"}) // 用户定义，强制写入
//	_, _ = propstore.LoadFile(store, "build.properties")
//	_, _ = propstore.LoadFile(store, "servers.yaml")
//	propstore.LoadEnviron(store, propstore.DefaultEnvPrefix, os.Environ())
//
// 支持的文件格式见 [LoadFile]。
package propstore
