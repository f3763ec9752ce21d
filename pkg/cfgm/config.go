package cfgm

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/urfave/cli/v3"
)

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// appName 可选，提供后会追加应用专属路径。
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.appname.yaml - 当前目录应用配置
//  2. ~/.appname.yaml - 用户主目录配置
//  3. /etc/appname/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
//  5. config/config.yaml - 子目录通用配置
func DefaultPaths(appName ...string) []string {
	var paths []string

	if len(appName) > 0 && appName[0] != "" {
		name := appName[0]
		// 当前目录应用配置 (最高优先级)
		paths = append(paths, "."+name+".yaml")
		// 用户主目录
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, "."+name+".yaml"))
		}
		// 系统配置目录
		paths = append(paths, "/etc/"+name+"/config.yaml")
	}

	// 当前目录通用配置 (最低优先级)
	paths = append(paths, "config.yaml", "config/config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// 优先级 (从低到高)：
//  1. 默认值 - defaultConfig
//  2. 配置文件 - [WithConfigPaths] / [WithAppName]
//  3. 环境变量(前缀) - [WithEnvPrefix]
//  4. CLI flags - [WithCommand]
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
// 配置文件按顺序查找，命中首个文件即停止。
// 配置文件中的字符串值会按 ${NAME} 引用当前环境变量展开，见 [WithoutTemplateExpansion]。
func Load[T any](defaultConfig T, opts ...Option) (*T, error) {
	options := &options{}
	for _, opt := range opts {
		opt(options)
	}

	// 未指定搜索路径时使用 DefaultPaths(appName)
	if len(options.configPaths) == 0 {
		if options.appName != "" {
			options.configPaths = DefaultPaths(options.appName)
		} else {
			options.configPaths = DefaultPaths()
		}
	}

	configMap := defaultsToMap(defaultConfig)

	// 2️⃣ 加载配置文件 (按顺序搜索，找到第一个即停止)
	fileMap, path, err := loadFirstFile(options)
	if err != nil {
		return nil, err
	}
	if fileMap != nil {
		mergeMaps(configMap, fileMap)
		slog.Debug("Loaded config from file", "path", path, "templateExpansion", !options.noTemplateExpansion)
	} else {
		slog.Debug("No config file found, using defaults")
	}

	// 3️⃣ 自动生成环境变量绑定 (基于配置结构体的 key)
	if options.envPrefix != "" {
		autoBindings := generateEnvBindings(options.envPrefix, collectConfigKeys(defaultConfig))
		slog.Debug("Generated auto env bindings", "prefix", options.envPrefix, "count", len(autoBindings))
		for envKey, configPath := range autoBindings {
			if val := os.Getenv(envKey); val != "" {
				setByPath(configMap, configPath, val)
				slog.Debug("Loaded env binding", "env", envKey, "path", configPath)
			}
		}
	}

	// 4️⃣ 加载 CLI flags (最高优先级，仅当用户明确指定时)
	if options.cmd != nil {
		applyCLIFlagsGeneric(options.cmd, configMap, defaultConfig)
	}

	var cfg T
	if err := decodeConfigMap(configMap, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// loadFirstFile 返回首个可读配置文件解析后的 map，没有命中时返回 nil。
func loadFirstFile(o *options) (map[string]any, string, error) {
	for _, p := range o.configPaths {
		path := p
		if o.baseDir != "" && !filepath.IsAbs(p) {
			path = filepath.Join(o.baseDir, p)
		}

		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		fileMap, err := parseConfigFile(content)
		if err != nil {
			return nil, path, fmt.Errorf("parse config file %s: %w", path, err)
		}

		if !o.noTemplateExpansion {
			if err := expandStrings(fileMap, newEnvResolver()); err != nil {
				return nil, path, fmt.Errorf("expand config file %s: %w", path, err)
			}
		}

		return fileMap, path, nil
	}

	return nil, "", nil
}

// LoadCmd 是 [Load] 的便捷版本，注入 [WithCommand]，appName 非空时额外注入 [WithAppName]。
//
//	cfg, err := cfgm.LoadCmd(cmd, config.DefaultConfig(), "propexp",
//	    cfgm.WithEnvPrefix("PROPEXP_"),
//	)
func LoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) (*T, error) {
	baseOpts := []Option{WithCommand(cmd)}
	if appName != "" {
		baseOpts = append(baseOpts, WithAppName(appName))
	}
	return Load(defaultConfig, append(baseOpts, opts...)...)
}

// MustLoadCmd 调用 [LoadCmd] 并在失败时 panic，适合启动阶段。
func MustLoadCmd[T any](cmd *cli.Command, defaultConfig T, appName string, opts ...Option) *T {
	cfg, err := LoadCmd(cmd, defaultConfig, appName, opts...)
	if err != nil {
		panic(fmt.Sprintf("cfgm: failed to load config: %v", err))
	}

	return cfg
}

// collectConfigKeys 递归收集配置结构体的 key 列表。
//
// 以 json tag 为准，返回叶子路径（如 expand.opaque-prefix）。
func collectConfigKeys[T any](defaultConfig T) []string {
	var keys []string
	collectConfigKeysRecursive(reflect.TypeOf(defaultConfig), "", &keys)

	return keys
}

// collectConfigKeysRecursive 递归遍历字段并拼接完整 key 路径。
func collectConfigKeysRecursive(typ reflect.Type, prefix string, keys *[]string) {
	// 处理指针类型
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}

		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		// 如果是嵌套结构体（非特殊类型），递归处理
		if isStructType(field.Type) {
			collectConfigKeysRecursive(field.Type, fullKey, keys)

			continue
		}

		*keys = append(*keys, fullKey)
	}
}

// generateEnvBindings 根据配置 key 生成环境变量映射。
//
// 转换规则：
//   - key 中的 "." 和 "-" 转为 "_"
//   - 转为大写
//   - 添加前缀
//
// 示例 (前缀 "APP_")：
//   - expand.env-prefix → APP_EXPAND_ENV_PREFIX
//   - server.addr → APP_SERVER_ADDR
func generateEnvBindings(prefix string, keys []string) map[string]string {
	bindings := make(map[string]string, len(keys))
	for _, key := range keys {
		// 将 "." 和 "-" 都转为 "_"，然后大写
		envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
		bindings[prefix+envKey] = key
	}

	return bindings
}

// applyCLIFlagsGeneric 将用户显式设置的 CLI flags 写入配置 map。
//
// flag 名称由 json tag 路径生成，仅替换 "." 为 "-"：
//   - expand.env-prefix → --expand-env-prefix
//   - server.addr → --server-addr
//
// 支持 string、bool、int、int64、float64、time.Duration 与 []string 字段，其余类型忽略。
func applyCLIFlagsGeneric[T any](cmd *cli.Command, config map[string]any, defaultConfig T) {
	applyCLIFlagsRecursive(cmd, config, reflect.TypeOf(defaultConfig), "")
}

func applyCLIFlagsRecursive(cmd *cli.Command, config map[string]any, typ reflect.Type, prefix string) {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return
	}

	for i := range typ.NumField() {
		field := typ.Field(i)

		key := configTagName(field)
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		if isStructType(field.Type) {
			applyCLIFlagsRecursive(cmd, config, field.Type, key)

			continue
		}

		cliFlag := strings.ReplaceAll(key, ".", "-")
		if !cmd.IsSet(cliFlag) {
			continue
		}
		if val, ok := cliFlagValue(cmd, cliFlag, field.Type); ok {
			setByPath(config, key, val)
		}
	}
}

func cliFlagValue(cmd *cli.Command, cliFlag string, fieldType reflect.Type) (any, bool) {
	if fieldType == durationType {
		return cmd.Duration(cliFlag), true
	}

	switch fieldType.Kind() {
	case reflect.String:
		return cmd.String(cliFlag), true
	case reflect.Bool:
		return cmd.Bool(cliFlag), true
	case reflect.Int:
		return cmd.Int(cliFlag), true
	case reflect.Int64:
		return cmd.Int64(cliFlag), true
	case reflect.Float64:
		return cmd.Float64(cliFlag), true
	case reflect.Slice:
		if fieldType.Elem().Kind() == reflect.String {
			return cmd.StringSlice(cliFlag), true
		}
	default:
	}

	return nil, false
}
