package cfgm

import (
	"fmt"
	"os"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propexp"
	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

// newEnvResolver 以当前环境变量快照为 store 创建 Resolver。
//
// key 即环境变量名，不加前缀，也没有不透明 key。
func newEnvResolver() *propexp.Resolver {
	store := propstore.NewMemoryStore()
	propstore.LoadEnviron(store, "", os.Environ())

	return propexp.New(store, propexp.WithOpaquePrefix(""))
}

// expandStrings 原地展开配置 map 中的所有字符串值，key 路径作为错误上下文。
func expandStrings(data map[string]any, r *propexp.Resolver) error {
	return expandMap(data, "", r)
}

func expandMap(data map[string]any, prefix string, r *propexp.Resolver) error {
	for key, value := range data {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		expanded, err := expandValue(value, path, r)
		if err != nil {
			return err
		}
		data[key] = expanded
	}

	return nil
}

func expandValue(value any, path string, r *propexp.Resolver) (any, error) {
	switch typed := value.(type) {
	case string:
		return r.Resolve(path, typed)
	case map[string]any:
		return typed, expandMap(typed, path, r)
	case []any:
		for i, item := range typed {
			expanded, err := expandValue(item, fmt.Sprintf("%s[%d]", path, i), r)
			if err != nil {
				return nil, err
			}
			typed[i] = expanded
		}

		return typed, nil
	default:
		return value, nil
	}
}
