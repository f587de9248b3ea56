package svg

// FadeIn 让父元素的 opacity 从 0 变为 1。dur 为 0 时输出瞬时的 <set>。
func (d *Document) FadeIn(begin, dur float64) {
	d.fade("0", "1", begin, dur)
}

// FadeOut 让父元素的 opacity 从 1 变为 0。
func (d *Document) FadeOut(begin, dur float64) {
	d.fade("1", "0", begin, dur)
}

func (d *Document) fade(from, to string, begin, dur float64) {
	if dur == 0 {
		d.EmitElement("set", Attrs{
			{Name: "attributeName", Value: "opacity"},
			{Name: "to", Value: to},
			{Name: "begin", Value: num(begin)},
		}, "/>", LayoutInherit)
		return
	}
	// fill="freeze" 让动画结束后保持终值
	d.EmitElement("animate", Attrs{
		{Name: "attributeName", Value: "opacity"},
		{Name: "from", Value: from},
		{Name: "to", Value: to},
		{Name: "begin", Value: num(begin)},
		{Name: "dur", Value: num(dur)},
		{Name: "fill", Value: "freeze"},
	}, "/>", LayoutInherit)
}
