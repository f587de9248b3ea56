package scene

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit 是脚本中数值携带的单位。
type Unit int

const (
	UnitNone Unit = iota // 无单位，即 SVG 用户单位
	UnitPX
	UnitMM
	UnitCM
	UnitIN
	UnitPT
)

// PxPerIn 是 SVG 用户单位（CSS 像素）与英寸的换算比例。
const PxPerIn = 96.0

var unitSuffixes = []struct {
	s string
	u Unit
}{{"px", UnitPX}, {"mm", UnitMM}, {"cm", UnitCM}, {"in", UnitIN}, {"pt", UnitPT}}

// Length 保留数值与原始单位。
type Length struct {
	Value float64
	Unit  Unit
}

// Px 换算为 SVG 用户单位。
func (l Length) Px() float64 {
	switch l.Unit {
	case UnitMM:
		return l.Value * PxPerIn / 25.4
	case UnitCM:
		return l.Value * PxPerIn / 2.54
	case UnitIN:
		return l.Value * PxPerIn
	case UnitPT:
		return l.Value * PxPerIn / 72
	default:
		return l.Value
	}
}

// ParseLength 解析 "12"、"12.5mm"、"-3pt" 等形式。百分比没有绝对长度，返回错误。
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if strings.HasSuffix(v, "%") {
		return Length{}, fmt.Errorf("百分比 %q 不能用作坐标", value)
	}
	unit := UnitNone
	for _, suf := range unitSuffixes {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			v = strings.TrimSuffix(v, suf.s)
			break
		}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Length{}, fmt.Errorf("无法解析数值 %q", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
