package propstore

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultEnvPrefix 环境变量导入后使用的 key 前缀。
const DefaultEnvPrefix = "env."

// ErrUnsupportedFormat 表示无法识别的属性文件扩展名。
var ErrUnsupportedFormat = errors.New("propstore: unsupported property file format")

// property 是解析器产出的一个扁平属性，按文件中出现的顺序排列。
type property struct {
	key   string
	value string
}

// LoadFile 读取属性文件并写入 store。
//
// 按扩展名选择解析器：
//   - .yaml / .yml / .json - 嵌套映射展开为点分 key，保持文档顺序；
//     JSON 作为 YAML 的子集由同一解析器处理
//   - .properties - 每行 key=value 或 key: value，以第一个 = 或 : 分隔；
//     不支持 \ 续行、转义序列和以空白分隔的 key value；
//     同一文件内重复的 key 取最后一次的值，位置保持首次出现处
//   - .hcl - 顶层属性按源文件顺序；对象值展开为点分 key，但 cty 不保留
//     对象字段顺序，同一对象内的 key 按字典序排列
//
// 已存在的 key 不会被覆盖 (跨文件先定义者生效)。返回实际写入的数量。
func LoadFile(s *MemoryStore, path string) (int, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is supplied by the user
	if err != nil {
		return 0, fmt.Errorf("read property file: %w", err)
	}

	props, err := parseFile(path, content)
	if err != nil {
		return 0, fmt.Errorf("parse property file %s: %w", path, err)
	}

	origin := FileOrigin(path)
	n := 0
	for _, p := range props {
		if s.Put(p.key, p.value, origin) {
			n++
		}
	}
	slog.Debug("Loaded property file", "path", path, "properties", len(props), "added", n)

	return n, nil
}

func parseFile(path string, content []byte) ([]property, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return parseYAML(content)
	case ".properties":
		return parseProperties(content)
	case ".hcl":
		return parseHCL(path, content)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadEnviron 将 environ (形如 os.Environ()) 以 prefix+NAME 为 key 写入 store。
func LoadEnviron(s *MemoryStore, prefix string, environ []string) int {
	n := 0
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		if s.Put(prefix+name, value, OriginEnv) {
			n++
		}
	}
	slog.Debug("Loaded environment", "prefix", prefix, "added", n)

	return n
}

// LoadDefines 写入 key=value 形式的用户定义，覆盖已有值并标记为用户设置。
func LoadDefines(s *MemoryStore, defines []string) error {
	for _, def := range defines {
		key, value, ok := strings.Cut(def, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid define %q: want key=value", def)
		}
		s.SetUser(key, value)
	}

	return nil
}
