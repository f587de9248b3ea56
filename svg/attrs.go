package svg

import "strings"

// Attr 是一个属性（或 CSS 样式）键值对。
type Attr struct {
	Name  string
	Value string
}

// Attrs 是保持插入顺序的属性集合，也用来表示样式映射。
// 同名键再次 Set 时原地覆盖，位置保持首次插入的位置。
type Attrs []Attr

// Get 返回指定键的值。
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Set 设置键值，返回更新后的集合。
func (a Attrs) Set(name, value string) Attrs {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Merge 依次把 other 中的键值写入 a，other 优先。
func (a Attrs) Merge(other Attrs) Attrs {
	for _, attr := range other {
		a = a.Set(attr.Name, attr.Value)
	}
	return a
}

// Clone 返回独立的副本，修改副本不会影响调用方传入的集合。
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	copy(out, a)
	return out
}

// FormatStyle 把样式映射序列化为 "key: value; key2: value2"。
func FormatStyle(style Attrs) string {
	parts := make([]string, 0, len(style))
	for _, attr := range style {
		parts = append(parts, attr.Name+": "+attr.Value)
	}
	return strings.Join(parts, "; ")
}

// MergeAttrs 组装元素最终的属性：
// base -> extra 覆盖 -> invisible 强制 opacity=0 -> 非空 style 序列化为 style 属性。
// 每一步都可以覆盖前一步写入的键，顺序不可调换。
func MergeAttrs(base, style, extra Attrs, invisible bool) Attrs {
	out := base.Clone().Merge(extra)
	if invisible {
		out = out.Set("opacity", "0")
	}
	if len(style) > 0 {
		out = out.Set("style", FormatStyle(style))
	}
	return out
}
