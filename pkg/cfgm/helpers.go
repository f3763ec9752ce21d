package cfgm

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// listSeparator 分隔环境变量中的列表值，如 PROPEXP_EXPAND_FILES=a.properties,b.yaml。
const listSeparator = ","

var (
	durationType = reflect.TypeFor[time.Duration]()
	timeType     = reflect.TypeFor[time.Time]()
)

// configTagName 返回字段的配置 key，取 json tag 的名称部分；"-" 或空表示忽略。
func configTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

// isStructType 报告 typ 是否需要按嵌套配置段展开，Duration 与 Time 视为叶子值。
func isStructType(typ reflect.Type) bool {
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	return typ.Kind() == reflect.Struct && typ != durationType && typ != timeType
}

// defaultsToMap 把默认配置结构体转为以配置 key 为键的嵌套 map，作为合并的底层。
func defaultsToMap(cfg any) map[string]any {
	m, _ := configValue(reflect.ValueOf(cfg)).(map[string]any)
	if m == nil {
		return map[string]any{}
	}
	return m
}

func configValue(val reflect.Value) any {
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch {
	case isStructType(val.Type()):
		out := make(map[string]any)
		typ := val.Type()
		for i := range typ.NumField() {
			field := typ.Field(i)
			key := configTagName(field)
			if field.PkgPath != "" || key == "" {
				continue
			}
			out[key] = configValue(val.Field(i))
		}

		return out
	case val.Kind() == reflect.Slice:
		if val.IsNil() {
			return nil
		}
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = configValue(val.Index(i))
		}

		return out
	case val.Kind() == reflect.Map:
		if val.IsNil() {
			return nil
		}
		out := make(map[string]any, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = configValue(iter.Value())
		}

		return out
	default:
		return val.Interface()
	}
}

// parseConfigFile 解析配置文件内容。JSON 是 YAML 的子集，两种格式走同一个解析器。
func parseConfigFile(content []byte) (map[string]any, error) {
	var raw any
	if err := yamlv3.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	configMap, ok := stringKeys(raw).(map[string]any)
	if !ok {
		return nil, errors.New("config root must be a mapping")
	}

	return configMap, nil
}

// stringKeys 把 YAML 中非字符串 key 的映射 (如 80: http) 统一为字符串 key。
func stringKeys(val any) any {
	switch typed := val.(type) {
	case map[string]any:
		for key, value := range typed {
			typed[key] = stringKeys(value)
		}

		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			out[fmt.Sprint(key)] = stringKeys(value)
		}

		return out
	case []any:
		for i := range typed {
			typed[i] = stringKeys(typed[i])
		}

		return typed
	default:
		return val
	}
}

// mergeMaps 将 src 深度合并进 dst，子 map 递归合并，其余值直接覆盖。
func mergeMaps(dst, src map[string]any) {
	for key, value := range src {
		if valueMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeMaps(dstMap, valueMap)
				continue
			}
		}

		dst[key] = value
	}
}

// setByPath 按点分 key (如 expand.max-substitutions) 写入嵌套 map，缺失的中间段自动创建。
func setByPath(dst map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := dst
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}

// decodeConfigMap 将合并后的 map 解码到配置结构体。
//
// 环境变量只能提供字符串：时长按 time.ParseDuration 解析，
// 列表字段按逗号拆分，其余标量由弱类型转换处理。
func decodeConfigMap(data map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(listSeparator),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
