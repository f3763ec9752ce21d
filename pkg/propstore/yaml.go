package propstore

import (
	"errors"
	"fmt"
	"strings"

	yamlv3 "go.yaml.in/yaml/v3"
)

// parseYAML 使用 Node API 以保留文档顺序。
func parseYAML(content []byte) ([]property, error) {
	var doc yamlv3.Node
	if err := yamlv3.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yamlv3.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	if root.Kind != yamlv3.MappingNode {
		return nil, errors.New("property file root must be a mapping")
	}

	var props []property
	if err := flattenNode(root, "", &props); err != nil {
		return nil, err
	}

	return props, nil
}

func flattenNode(node *yamlv3.Node, prefix string, props *[]property) error {
	if node.Kind == yamlv3.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yamlv3.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flattenNode(node.Content[i+1], key, props); err != nil {
				return err
			}
		}

		return nil
	case yamlv3.SequenceNode:
		parts := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yamlv3.ScalarNode {
				return fmt.Errorf("%s: only sequences of scalars are supported", prefix)
			}
			parts = append(parts, scalarValue(item))
		}
		*props = append(*props, property{key: prefix, value: strings.Join(parts, ",")})

		return nil
	case yamlv3.ScalarNode:
		*props = append(*props, property{key: prefix, value: scalarValue(node)})

		return nil
	default:
		return fmt.Errorf("%s: unsupported yaml node", prefix)
	}
}

func scalarValue(node *yamlv3.Node) string {
	if node.Tag == "!!null" {
		return ""
	}
	return node.Value
}
