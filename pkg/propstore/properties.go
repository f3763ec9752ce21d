package propstore

import (
	"bufio"
	"bytes"
	"strings"
)

// parseProperties 解析 key=value 或 key: value 行。
//
// 以 # 或 ! 开头的行为注释；不含分隔符或 key 为空的行被忽略。
// 重复的 key 后者覆盖前者的值。
func parseProperties(content []byte) ([]property, error) {
	var props []property
	seen := make(map[string]int)
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}

		idx := strings.IndexAny(line, "=:")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		if i, ok := seen[key]; ok {
			props[i].value = value
			continue
		}
		seen[key] = len(props)
		props = append(props, property{key: key, value: value})
	}

	return props, scanner.Err()
}
