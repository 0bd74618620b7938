package scenes

import (
	"fmt"
	"log"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/game"
	"github.com/gonewx/parktycoon/pkg/modules"
	"github.com/gonewx/parktycoon/pkg/store"
	"github.com/gonewx/parktycoon/pkg/systems"
	"github.com/gonewx/parktycoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ParkSceneName 公园场景在 SceneManager 中的名称
const ParkSceneName = "park"

// hudFontSize HUD 字号（屏幕像素）
const hudFontSize = 12.0

// ParkSceneDeps 公园场景的外部依赖
type ParkSceneDeps struct {
	Config    *config.ParkConfig
	Resources *game.ResourceManager // 可为 nil（全部使用占位图形）
	Audio     *game.AudioManager    // 可为 nil（无声）
}

// ParkScene 公园经营场景
//
// 加载地图和建筑目录，创建存储、地块注册表和各系统，
// 每帧依次处理输入、对话框按键、视觉反馈和实体生命周期。
type ParkScene struct {
	entityManager *ecs.EntityManager
	store         *store.Store
	camera        *utils.Camera
	mapConfig     *config.MapConfig

	plots      *systems.PlotRegistry
	buildings  *systems.BuildingSystem
	feedback   *systems.FeedbackSystem
	lifetime   *systems.LifetimeSystem
	controller *systems.ParkController

	input *systems.InputSystem
	trade *modules.TradeModule

	tileMap *systems.TileMapRenderSystem
	render  *systems.RenderSystem
	hud     *systems.HUDRenderSystem

	tickElapsed float64
	debug       bool
	closed      bool
}

// NewParkScene 创建公园场景
//
// 地图或建筑目录无法加载、可建造区域数据损坏时返回错误。
func NewParkScene(deps ParkSceneDeps) (*ParkScene, error) {
	cfg := deps.Config
	if cfg == nil {
		return nil, fmt.Errorf("park scene: no park config")
	}

	mapConfig, err := config.LoadMapConfig(cfg.MapPath)
	if err != nil {
		return nil, fmt.Errorf("park scene: %w", err)
	}
	catalogue, err := config.LoadBuildingCatalogue(cfg.BuildingsPath)
	if err != nil {
		return nil, fmt.Errorf("park scene: %w", err)
	}
	zones, err := mapConfig.Zones()
	if err != nil {
		return nil, fmt.Errorf("park scene: %w", err)
	}

	em := ecs.NewEntityManager()
	plots := systems.NewPlotRegistry(em)
	if _, err := plots.Initialize(zones); err != nil {
		return nil, fmt.Errorf("park scene: %w", err)
	}

	s := &ParkScene{
		entityManager: em,
		store:         store.NewStore(cfg, catalogue),
		mapConfig:     mapConfig,
		plots:         plots,
		buildings:     systems.NewBuildingSystem(em),
		lifetime:      systems.NewLifetimeSystem(em),
	}

	center := mapConfig.Center()
	s.camera = utils.NewCamera(config.GameWindowWidth, config.GameWindowHeight, cfg.CameraZoom)
	s.camera.CenterOn(center.X, center.Y)

	var sounds systems.SoundPlayer
	var audio systems.AudioController
	if deps.Audio != nil {
		sounds, audio = deps.Audio, deps.Audio
		// 存储的静音状态与设置保持一致，此时还没有订阅者
		if deps.Audio.IsMuted() {
			s.store.Dispatch(store.MuteIntent{})
		}
	}
	s.feedback = systems.NewFeedbackSystem(em, sounds)

	s.controller, err = systems.NewParkController(systems.ParkControllerDeps{
		Store:     s.store,
		Audio:     audio,
		Plots:     plots,
		Buildings: s.buildings,
		Feedback:  s.feedback,
		MapCenter: center,
	})
	if err != nil {
		return nil, fmt.Errorf("park scene: %w", err)
	}

	s.input = systems.NewInputSystem(s.controller, s.camera)
	s.trade = modules.NewTradeModule(s.store, catalogue)
	s.initRenderers(deps.Resources, catalogue)

	log.Printf("[ParkScene] Loaded map %s: %d plots, %d building types",
		cfg.MapPath, plots.Len(), len(catalogue.Buildings))
	return s, nil
}

func (s *ParkScene) initRenderers(rm *game.ResourceManager, catalogue *config.BuildingCatalogue) {
	var (
		frames    systems.FrameSource
		images    systems.ImageSource
		hudFace   *text.GoTextFace
		worldFace *text.GoTextFace
	)
	if rm != nil {
		frames, images = rm, rm
		var err error
		if hudFace, err = rm.FontByID(config.FontHUD, hudFontSize); err != nil {
			log.Printf("[ParkScene] Warning: HUD font unavailable: %v", err)
		}
		if worldFace, err = rm.FontByID(config.FontHUD, config.FloatingTextFontSize); err != nil {
			log.Printf("[ParkScene] Warning: floating text font unavailable: %v", err)
		}
	}

	s.tileMap = systems.NewTileMapRenderSystem(s.mapConfig, images, s.camera)
	s.render = systems.NewRenderSystem(s.entityManager, frames, s.camera, worldFace)
	s.hud = systems.NewHUDRenderSystem(s.store, catalogue, hudFace)
}

// Store 场景使用的状态存储
func (s *ParkScene) Store() *store.Store {
	return s.store
}

// Controller 场景控制器
func (s *ParkScene) Controller() *systems.ParkController {
	return s.controller
}

// Update 更新场景
func (s *ParkScene) Update(deltaTime float64) {
	if s.closed {
		return
	}
	s.input.Update()
	s.trade.Update()
	s.updateDebugKeys()
	s.step(deltaTime)
}

// step 推进时间相关的逻辑（不读取输入）
func (s *ParkScene) step(deltaTime float64) {
	s.tickElapsed += deltaTime
	for s.tickElapsed >= config.TickIntervalSeconds {
		s.tickElapsed -= config.TickIntervalSeconds
		s.store.Tick(config.TickIntervalSeconds)
	}

	s.feedback.Update(deltaTime)
	s.lifetime.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制场景：瓦片层、实体、HUD，最后是调试叠加层
func (s *ParkScene) Draw(screen *ebiten.Image) {
	s.tileMap.Draw(screen)
	s.render.Draw(screen)
	s.hud.Draw(screen)
	if s.debug {
		s.drawDebug(screen)
	}
}

// Close 取消订阅并停止更新，可重复调用
func (s *ParkScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.controller.Close()
	s.entityManager.RemoveMarkedEntities()
	log.Printf("[ParkScene] Closed")
}
