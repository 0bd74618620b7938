package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/atotto/clipboard"
	"github.com/gonewx/parktycoon/pkg/store"
	"github.com/gonewx/parktycoon/pkg/systems"
	"github.com/gonewx/parktycoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gopkg.in/yaml.v3"
)

var (
	debugPlotColor     = color.RGBA{R: 255, G: 255, B: 0, A: 160}
	debugOccupiedColor = color.RGBA{R: 255, G: 128, B: 0, A: 200}
	debugValidColor    = color.RGBA{R: 0, G: 255, B: 0, A: 220}
	debugInvalidColor  = color.RGBA{R: 255, G: 0, B: 0, A: 220}
)

// sceneDump F9 复制到剪贴板的场景状态
type sceneDump struct {
	Store      store.State             `yaml:"store"`
	Controller systems.ControllerDebug `yaml:"controller"`
	Plots      []plotDump              `yaml:"plots"`
}

type plotDump struct {
	ID       string     `yaml:"id"`
	Name     string     `yaml:"name,omitempty"`
	Size     int        `yaml:"size"`
	Bounds   utils.Rect `yaml:"bounds,flow"`
	Occupied bool       `yaml:"occupied"`
}

// updateDebugKeys F3 切换调试叠加层，F9 复制场景状态
func (s *ParkScene) updateDebugKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debug = !s.debug
		log.Printf("[ParkScene] Debug overlay: %v", s.debug)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		s.copyDump()
	}
}

func (s *ParkScene) copyDump() {
	data, err := s.DebugDump()
	if err != nil {
		log.Printf("[ParkScene] Warning: failed to encode dump: %v", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		log.Printf("[ParkScene] Warning: clipboard unavailable: %v", err)
		return
	}
	log.Printf("[ParkScene] Scene dump copied (%d bytes)", len(data))
}

// DebugDump 以 YAML 输出存储快照、控制器状态和地块
func (s *ParkScene) DebugDump() ([]byte, error) {
	dump := sceneDump{
		Store:      s.store.Snapshot(),
		Controller: s.controller.Debug(),
	}
	for _, entity := range s.plots.Plots() {
		plot, ok := s.plots.Plot(entity)
		if !ok {
			continue
		}
		dump.Plots = append(dump.Plots, plotDump{
			ID:       plot.ID,
			Name:     plot.Name,
			Size:     plot.SizeClass,
			Bounds:   plot.Bounds,
			Occupied: plot.IsOccupied(),
		})
	}
	return yaml.Marshal(dump)
}

// drawDebug 绘制地块边界和预览碰撞框
func (s *ParkScene) drawDebug(screen *ebiten.Image) {
	for _, entity := range s.plots.Plots() {
		plot, ok := s.plots.Plot(entity)
		if !ok {
			continue
		}
		clr := debugPlotColor
		if plot.IsOccupied() {
			clr = debugOccupiedColor
		}
		s.strokeWorldRect(screen, plot.Bounds, clr)
	}

	info := s.controller.Debug()
	if preview, ok := s.controller.Preview(); ok {
		if bounds, ok := s.buildings.Bounds(preview); ok {
			clr := debugInvalidColor
			if info.PreviewValid {
				clr = debugValidColor
			}
			s.strokeWorldRect(screen, bounds, clr)
		}
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("mode: %s  plots: %d  active: %d",
		info.Mode, s.plots.Len(), len(info.Active)), 4, 28)
}

func (s *ParkScene) strokeWorldRect(screen *ebiten.Image, r utils.Rect, clr color.RGBA) {
	x, y := s.camera.WorldToScreen(r.X, r.Y)
	w, h := r.W*s.camera.Zoom, r.H*s.camera.Zoom
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}
