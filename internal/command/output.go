package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/251207-go-pkg-propexp/pkg/propstore"
)

// Render 按 format 输出属性，保持 store 顺序。
//
//   - properties: 每行 key=value
//   - yaml: 扁平映射，key 为点分字符串
//   - json: 扁平对象
func Render(w io.Writer, entries []propstore.Entry, format string) error {
	switch format {
	case "", "properties":
		return renderProperties(w, entries)
	case "yaml":
		return renderYAML(w, entries)
	case "json":
		return renderJSON(w, entries)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderProperties(w io.Writer, entries []propstore.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s=%s\n", e.Key, e.Value); err != nil {
			return err
		}
	}

	return nil
}

func renderYAML(w io.Writer, entries []propstore.Entry) error {
	root := &yamlv3.Node{Kind: yamlv3.MappingNode}
	for _, e := range entries {
		root.Content = append(root.Content,
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: e.Key},
			&yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: e.Value},
		)
	}

	enc := yamlv3.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return err
	}

	return enc.Close()
}

func renderJSON(w io.Writer, entries []propstore.Entry) error {
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return err
		}
		value, err := json.Marshal(e.Value)
		if err != nil {
			return err
		}
		buf.WriteString("\n  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	if len(entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")

	_, err := w.Write(buf.Bytes())

	return err
}
