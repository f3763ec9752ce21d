// Package cfgm 提供通用的配置加载功能。
//
// 支持 YAML/JSON，按默认值、配置文件、环境变量与 CLI flags 逐层覆盖。
// 配置 key 使用 json tag 统一描述，YAML 与 JSON 共享同一套 key。
//
// # 加载优先级 (从低到高)
//
//  1. 默认值 - 通过 defaultConfig 参数传入
//  2. 配置文件 - 通过 [WithConfigPaths] 或 [WithAppName] 设置
//  3. 环境变量(前缀) - 通过 [WithEnvPrefix] 自动生成绑定
//  4. CLI flags - 通过 [WithCommand] 选项设置，最高优先级
//
// # 快速开始
//
//	type Config struct {
//	    Name    string        `json:"name"    desc:"应用名称"`
//	    Timeout time.Duration `json:"timeout" desc:"超时时间"`
//	}
//
//	cfg, err := cfgm.LoadCmd(cmd, DefaultConfig(), "propexp",
//	    cfgm.WithEnvPrefix("PROPEXP_"),
//	)
//
// # 配置文件路径
//
// [WithAppName] 会生成默认搜索路径（见 [DefaultPaths]）：
//   - .propexp.yaml (当前目录)
//   - ~/.propexp.yaml (用户主目录)
//   - /etc/propexp/config.yaml (系统配置)
//   - config.yaml, config/config.yaml (通用路径)
//
// # 环境变量展开
//
// 配置文件中的字符串值按属性引用规则展开，key 为环境变量名：
//
//	# config.yaml
//	expand:
//	  files:
//	    - "${HOME}/.build.properties"
//
// 支持嵌套引用 ${DIR_${STAGE}}；引用不存在的变量或出现孤立的 '}' 会导致加载失败。
// 使用 [WithoutTemplateExpansion] 可禁用展开。
//
// # CLI Flag 映射
//
// 仅替换 "." 为 "-"：
//   - server.addr → --server-addr
//   - expand.opaque-prefix → --expand-opaque-prefix
package cfgm
