package propstore

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// parseHCL 读取顶层属性，不允许引用变量或函数。
//
// HCL 自身使用 ${...} 作为模板插值，属性值中的占位符需写成 $${name}，
// 解析后得到字面量 ${name}。
func parseHCL(path string, content []byte) ([]property, error) {
	file, diags := hclsyntax.ParseConfig(content, path, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, diags
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
	})

	var props []property
	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}
		if err := flattenCty(attr.Name, val, &props); err != nil {
			return nil, err
		}
	}

	return props, nil
}

func flattenCty(key string, val cty.Value, props *[]property) error {
	if val.IsNull() {
		*props = append(*props, property{key: key})

		return nil
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("%s: value is not known", key)
	}

	ty := val.Type()
	if ty.IsObjectType() || ty.IsMapType() {
		var keys []string
		children := map[string]cty.Value{}
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			keys = append(keys, k.AsString())
			children[k.AsString()] = v
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := flattenCty(key+"."+k, children[k], props); err != nil {
				return err
			}
		}

		return nil
	}

	if ty.IsListType() || ty.IsTupleType() || ty.IsSetType() {
		joined := ""
		i := 0
		for it := val.ElementIterator(); it.Next(); i++ {
			_, v := it.Element()
			s, err := ctyString(key, v)
			if err != nil {
				return err
			}
			if i > 0 {
				joined += ","
			}
			joined += s
		}
		*props = append(*props, property{key: key, value: joined})

		return nil
	}

	s, err := ctyString(key, val)
	if err != nil {
		return err
	}
	*props = append(*props, property{key: key, value: s})

	return nil
}

func ctyString(key string, val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return str.AsString(), nil
}
