package systems

import (
	"bytes"
	"testing"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func testFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	return &text.GoTextFace{Source: src, Size: size}
}

func TestSpriteGeoMCentered(t *testing.T) {
	pos := &components.PositionComponent{X: 100, Y: 50}
	sprite := &components.SpriteComponent{Width: 20, Height: 10, OriginX: 0.5, OriginY: 0.5}

	// 16x16 的帧被缩放到 20x10
	geo := spriteGeoM(pos, sprite, 16, 16)

	x, y := geo.Apply(0, 0)
	assert.InDelta(t, 90, x, 1e-9)
	assert.InDelta(t, 45, y, 1e-9)
	x, y = geo.Apply(16, 16)
	assert.InDelta(t, 110, x, 1e-9)
	assert.InDelta(t, 55, y, 1e-9)
}

func TestSpriteGeoMRotatedAroundCenter(t *testing.T) {
	pos := &components.PositionComponent{X: 100, Y: 50}
	sprite := &components.SpriteComponent{Width: 20, Height: 10, OriginX: 0.5, OriginY: 0.5, Angle: 90}

	geo := spriteGeoM(pos, sprite, 20, 10)

	// 旋转后左上角 (-10,-5) → (5,-10)
	x, y := geo.Apply(0, 0)
	assert.InDelta(t, 105, x, 1e-9)
	assert.InDelta(t, 40, y, 1e-9)

	cx, cy := geo.Apply(10, 5)
	assert.InDelta(t, 100, cx, 1e-9)
	assert.InDelta(t, 50, cy, 1e-9)
}

func TestSpriteGeoMBottomAnchorAndScale(t *testing.T) {
	pos := &components.PositionComponent{X: 0, Y: 0}
	sprite := &components.SpriteComponent{OriginX: 0.5, OriginY: 1, Scale: 0.5}

	// 未设置显示尺寸时使用图片尺寸
	geo := spriteGeoM(pos, sprite, 40, 20)
	x, y := geo.Apply(0, 0)
	assert.InDelta(t, -10, x, 1e-9)
	assert.InDelta(t, -10, y, 1e-9)
	x, y = geo.Apply(40, 20)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
}

func TestDrawOrderByDepthThenCreation(t *testing.T) {
	em := ecs.NewEntityManager()
	add := func(depth int) ecs.EntityID {
		id := em.CreateEntity()
		em.AddComponent(id, &components.PositionComponent{})
		em.AddComponent(id, &components.SpriteComponent{Depth: depth, Alpha: 1})
		return id
	}
	building := add(config.DepthBuilding)
	plotA := add(config.DepthPlot)
	marker := add(config.DepthMarker)
	plotB := add(config.DepthPlot)

	s := NewRenderSystem(em, nil, nil, nil)
	assert.Equal(t, []ecs.EntityID{plotA, plotB, marker, building}, s.drawOrder())
}

func TestWrapText(t *testing.T) {
	face := testFace(t, config.FloatingTextFontSize)

	assert.Nil(t, WrapText("   ", face, 120))
	assert.Equal(t, []string{"+$50"}, WrapText("+$50", face, 120))

	long := "Need more money before this building can be placed on the plot"
	lines := WrapText(long, face, config.FloatingTextWrapWidth)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		w, _ := text.Measure(line, face, 0)
		assert.LessOrEqual(t, w, config.FloatingTextWrapWidth, "line %q too wide", line)
	}

	// 单个过长的单词独占一行
	assert.Equal(t, []string{"a", "Supercalifragilistic", "b"}, WrapText("a Supercalifragilistic b", face, 20))
}

func TestTileSourceRect(t *testing.T) {
	ts := &config.TilesetConfig{FirstGID: 11, Columns: 4, TileCount: 8, TileWidth: 16, TileHeight: 16}

	tests := []struct {
		gid  int
		want [4]int
		ok   bool
	}{
		{11, [4]int{0, 0, 16, 16}, true},
		{16, [4]int{16, 16, 32, 32}, true},
		{18, [4]int{48, 16, 64, 32}, true},
		{19, [4]int{}, false}, // 超出 tilecount
		{10, [4]int{}, false},
	}
	for _, tt := range tests {
		rect, ok := TileSourceRect(ts, tt.gid, 16, 16)
		if ok != tt.ok {
			t.Errorf("gid %d: ok=%v, want %v", tt.gid, ok, tt.ok)
			continue
		}
		if ok {
			got := [4]int{rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y}
			assert.Equal(t, tt.want, got, "gid %d", tt.gid)
		}
	}
}

func TestTileSourceRectColumnsFromImageWidth(t *testing.T) {
	ts := &config.TilesetConfig{FirstGID: 1, ImageWidth: 48}
	rect, ok := TileSourceRect(ts, 5, 16, 16)
	require.True(t, ok)
	assert.Equal(t, 16, rect.Min.X)
	assert.Equal(t, 16, rect.Min.Y)
}

func TestTiledFlipMask(t *testing.T) {
	flippedH := 0x80000000 | 12
	assert.Equal(t, 12, flippedH&tiledFlipMask)
	assert.Equal(t, 12, 12&tiledFlipMask)
}
