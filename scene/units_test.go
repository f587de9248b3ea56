package scene

import (
	"math"
	"testing"
)

// TestParseLengthUnits 覆盖常见单位到用户单位的换算。
func TestParseLengthUnits(t *testing.T) {
	cases := map[string]float64{
		"12":     12,
		"-3.5":   -3.5,
		"10px":   10,
		"1in":    96,
		"25.4mm": 96,
		"2.54cm": 96,
		"72pt":   96,
	}
	for in, want := range cases {
		l, err := ParseLength(in)
		if err != nil {
			t.Fatalf("ParseLength(%q) 出错: %v", in, err)
		}
		if diff := math.Abs(l.Px() - want); diff > 1e-6 {
			t.Fatalf("ParseLength(%q).Px() = %g, want %g", in, l.Px(), want)
		}
	}
}

func TestParseLengthRejects(t *testing.T) {
	for _, in := range []string{"50%", "abc", ""} {
		if _, err := ParseLength(in); err == nil {
			t.Fatalf("ParseLength(%q) 期望出错", in)
		}
	}
}

func TestBuildWithUnits(t *testing.T) {
	got := buildString(t, "svg 100 100 {\n  rect 1in 0 0.5in 12pt\n}", nil, BuildOptions{}).Lines()
	if got[2] != `    <rect x="96" y="0" width="48" height="16"/>` {
		t.Fatalf("单位换算结果不符: %q", got[2])
	}
}
