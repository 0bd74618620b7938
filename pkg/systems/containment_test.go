package systems

import (
	"testing"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/utils"
)

func TestFindContainingPlot(t *testing.T) {
	r := NewPlotRegistry(ecs.NewEntityManager())
	ids, err := r.Initialize([]config.ZoneDescriptor{
		rectZone("A", 100, 100, 50, 30, "1"),
		rectZone("wide", 90, 90, 200, 60, "3"), // 覆盖 A
		rectZone("C", 400, 400, 20, 20, "1"),
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		bounds utils.Rect
		want   ecs.EntityID
		found  bool
	}{
		{"inside A, first match wins", utils.Rect{X: 110, Y: 105, W: 20, H: 10}, ids[0], true},
		{"exactly A", utils.Rect{X: 100, Y: 100, W: 50, H: 30}, ids[0], true},
		{"straddles A, inside wide", utils.Rect{X: 140, Y: 105, W: 20, H: 10}, ids[1], true},
		{"inside C", utils.Rect{X: 405, Y: 405, W: 10, H: 10}, ids[2], true},
		{"straddles C", utils.Rect{X: 415, Y: 405, W: 10, H: 10}, 0, false},
		{"empty space", utils.Rect{X: 500, Y: 500, W: 20, H: 10}, 0, false},
		{"zero size", utils.Rect{X: 110, Y: 105}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindContainingPlot(r, tt.bounds)
			if found != tt.found || got != tt.want {
				t.Errorf("FindContainingPlot(%+v) = (%d, %v), want (%d, %v)", tt.bounds, got, found, tt.want, tt.found)
			}
		})
	}
}

// TestFindContainingPlotMatchesCorners 与逐角判断结果一致
func TestFindContainingPlotMatchesCorners(t *testing.T) {
	r := NewPlotRegistry(ecs.NewEntityManager())
	ids, err := r.Initialize([]config.ZoneDescriptor{rectZone("A", 100, 100, 50, 30, "1")})
	if err != nil {
		t.Fatal(err)
	}
	plot, _ := r.Plot(ids[0])

	for x := 80.0; x <= 160; x += 5 {
		for y := 80.0; y <= 140; y += 5 {
			b := utils.Rect{X: x, Y: y, W: 20, H: 10}
			corners := plot.Bounds.ContainsPoint(b.X, b.Y) &&
				plot.Bounds.ContainsPoint(b.Right(), b.Y) &&
				plot.Bounds.ContainsPoint(b.X, b.Bottom()) &&
				plot.Bounds.ContainsPoint(b.Right(), b.Bottom())

			_, found := FindContainingPlot(r, b)
			if found != corners {
				t.Errorf("bounds %+v: found=%v, corners=%v", b, found, corners)
			}
		}
	}
}
