package systems

import (
	"fmt"
	"image/color"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SnapshotSource 只读状态快照
type SnapshotSource interface {
	Snapshot() store.State
}

var (
	hudBarColor   = color.RGBA{R: 0x10, G: 0x14, B: 0x10, A: 0xe0}
	hudPanelColor = color.RGBA{R: 0x1c, G: 0x22, B: 0x1c, A: 0xf0}
	hudBorder     = color.RGBA{R: 0xc8, G: 0xb0, B: 0x7a, A: 0xff}
	hudTextColor  = color.RGBA{R: 0xf0, G: 0xf0, B: 0xe0, A: 0xff}
)

const (
	hudBarHeight   = 24.0
	hudPadding     = 6.0
	hudPanelWidth  = 360.0
	hudLineSpacing = 1.4
)

// HUDRenderSystem 屏幕坐标的状态栏和对话框
type HUDRenderSystem struct {
	state     SnapshotSource
	catalogue *config.BuildingCatalogue
	face      *text.GoTextFace
}

// NewHUDRenderSystem 创建 HUD 渲染系统
func NewHUDRenderSystem(state SnapshotSource, catalogue *config.BuildingCatalogue, face *text.GoTextFace) *HUDRenderSystem {
	return &HUDRenderSystem{state: state, catalogue: catalogue, face: face}
}

// Draw 绘制状态栏，有对话框时在屏幕中央绘制对话框
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	if s.face == nil {
		return
	}
	state := s.state.Snapshot()
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(sw), hudBarHeight, hudBarColor, false)
	s.drawLine(screen, StatusLine(state), hudPadding, (hudBarHeight-s.face.Size)/2)

	if hint := PlacementHint(state); hint != "" {
		s.drawLine(screen, hint, hudPadding, sh-s.face.Size-hudPadding)
	}

	lines := ModalLines(state, s.catalogue)
	if len(lines) == 0 {
		return
	}
	lineHeight := s.face.Size * hudLineSpacing
	ph := float64(len(lines))*lineHeight + 2*hudPadding
	px := (sw - hudPanelWidth) / 2
	py := (sh - ph) / 2
	vector.FillRect(screen, float32(px), float32(py), hudPanelWidth, float32(ph), hudPanelColor, false)
	vector.StrokeRect(screen, float32(px), float32(py), hudPanelWidth, float32(ph), 1, hudBorder, false)
	for i, line := range lines {
		s.drawLine(screen, line, px+hudPadding, py+hudPadding+float64(i)*lineHeight)
	}
}

func (s *HUDRenderSystem) drawLine(screen *ebiten.Image, str string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(hudTextColor)
	text.Draw(screen, str, s.face, op)
}

// StatusLine 状态栏文字
func StatusLine(state store.State) string {
	sound := "on"
	if state.Muted {
		sound = "off"
	}
	return fmt.Sprintf("Day %d   Admission $%d   Cash $%d   Meat %d   PETA %s   Staff %d/%d   Sound %s [M]",
		state.Day, state.Admission, state.Cash, state.Meat, store.PetaText(state.Peta),
		state.Employees, len(state.Buildings), sound)
}

// PlacementHint 放置中的操作提示
func PlacementHint(state store.State) string {
	if state.Placing == nil || state.Modal != store.ModalNone {
		return ""
	}
	return fmt.Sprintf("Placing %s ($%d): click a plot to build, [Shift] rotate, [Esc] cancel",
		state.Placing.Spec.Name, state.Placing.Spec.Cost)
}

// ModalLines 当前对话框的文字，没有对话框时返回 nil
func ModalLines(state store.State, catalogue *config.BuildingCatalogue) []string {
	switch state.Modal {
	case store.ModalNone:
		return nil
	case store.ModalBuy:
		lines := []string{"Buy a building"}
		if catalogue != nil {
			for i, b := range catalogue.Buildings {
				if i >= 9 {
					break
				}
				lines = append(lines, fmt.Sprintf("[%d] %s  $%d", i+1, b.Name, b.Cost))
			}
		}
		return append(lines, "[Esc] close")
	case store.ModalSell:
		if state.Selling == nil {
			return []string{"Nothing to sell", "[Esc] close"}
		}
		refund := state.Selling.Spec.Cost / config.SellRefundDivisor
		return []string{
			fmt.Sprintf("Sell %s for $%d?", state.Selling.Spec.Name, refund),
			"[Y] sell   [N] keep",
		}
	case store.ModalLose:
		return []string{"The park has closed.", "[Esc] close"}
	case store.ModalWin:
		return []string{"Your park is a success!", "[Esc] close"}
	case store.ModalAnimals:
		return []string{"Animal dealer", "No animals for sale today.", "[Esc] close"}
	case store.ModalMeat:
		return []string{"Meat", fmt.Sprintf("In stock: %d", state.Meat), "[Esc] close"}
	case store.ModalAds:
		return []string{"Advertising", "No campaigns running.", "[Esc] close"}
	case store.ModalPrison:
		return []string{"Hiring", fmt.Sprintf("Staff: %d", state.Employees), "[Esc] close"}
	default:
		return []string{state.Modal.String(), "[Esc] close"}
	}
}
