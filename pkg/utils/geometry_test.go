package utils

import "testing"

// TestContainsRect 测试矩形完全包含判断（含边界）
func TestContainsRect(t *testing.T) {
	plot := Rect{X: 100, Y: 100, W: 50, H: 30}

	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"完全在内部", Rect{X: 110, Y: 105, W: 10, H: 10}, true},
		{"与边界重合", Rect{X: 100, Y: 100, W: 50, H: 30}, true},
		{"贴左上角", Rect{X: 100, Y: 100, W: 1, H: 1}, true},
		{"贴右下角", Rect{X: 149, Y: 129, W: 1, H: 1}, true},
		{"跨越右边界", Rect{X: 140, Y: 105, W: 20, H: 10}, false},
		{"跨越上边界", Rect{X: 110, Y: 95, W: 10, H: 10}, false},
		{"完全在外部", Rect{X: 500, Y: 500, W: 10, H: 10}, false},
		{"比外框大", Rect{X: 90, Y: 90, W: 70, H: 50}, false},
		{"零尺寸", Rect{X: 110, Y: 110}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsRect(plot, tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%v, %v) = %v, 期望 %v", plot, tt.inner, got, tt.want)
			}
		})
	}
}

// TestContainsRectMatchesCorners 包含判断与“四个角都在内”一致
func TestContainsRectMatchesCorners(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 10, H: 10}
	for x := -3.0; x <= 12; x += 1.5 {
		for y := -3.0; y <= 12; y += 1.5 {
			inner := Rect{X: x, Y: y, W: 4, H: 3}
			corners := outer.ContainsPoint(inner.X, inner.Y) &&
				outer.ContainsPoint(inner.Right(), inner.Y) &&
				outer.ContainsPoint(inner.X, inner.Bottom()) &&
				outer.ContainsPoint(inner.Right(), inner.Bottom())
			if got := ContainsRect(outer, inner); got != corners {
				t.Errorf("inner %v: ContainsRect=%v, corners=%v", inner, got, corners)
			}
		}
	}
}

// TestRotatedBounds 测试旋转后的包围盒
func TestRotatedBounds(t *testing.T) {
	r0 := RotatedBounds(50, 50, 20, 10, 0)
	if r0 != (Rect{X: 40, Y: 45, W: 20, H: 10}) {
		t.Errorf("0度: got %v", r0)
	}

	r90 := RotatedBounds(50, 50, 20, 10, 90)
	if r90 != (Rect{X: 45, Y: 40, W: 10, H: 20}) {
		t.Errorf("90度: got %v", r90)
	}
}

func TestRectAnchors(t *testing.T) {
	r := Rect{X: 100, Y: 100, W: 50, H: 30}
	if c := r.Center(); c != (Point{X: 125, Y: 115}) {
		t.Errorf("Center: got %v", c)
	}
	if bc := r.BottomCenter(); bc != (Point{X: 125, Y: 130}) {
		t.Errorf("BottomCenter: got %v", bc)
	}
}
