package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/store"
	"github.com/gonewx/parktycoon/pkg/utils"
)

// ParkMode 场景控制器的交互模式
type ParkMode int

const (
	// ModeIdle 没有放置中的建筑
	ModeIdle ParkMode = iota
	// ModePlacing 预览跟随指针
	ModePlacing
	// ModeAwaitingPurchase 已确认放置，等待存储的 BUY 确认
	ModeAwaitingPurchase
)

func (m ParkMode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModePlacing:
		return "placing"
	case ModeAwaitingPurchase:
		return "awaiting_purchase"
	default:
		return "unknown"
	}
}

// MarshalYAML 以名称输出（调试转储用）
func (m ParkMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// StateStore 控制器对状态存储的依赖：只读快照、意图派发和事件订阅
type StateStore interface {
	Snapshot() store.State
	Dispatch(intent store.Intent)
	Subscribe(fn store.Listener) func()
}

// AudioController 控制器对音频的依赖
type AudioController interface {
	SoundPlayer
	ToggleMute()
}

// ParkControllerDeps 构造 ParkController 所需的依赖
type ParkControllerDeps struct {
	Store     StateStore
	Audio     AudioController // 可为 nil
	Plots     *PlotRegistry
	Buildings *BuildingSystem
	Feedback  *FeedbackSystem

	// MapCenter 新预览出现的位置（地图几何中心）
	MapCenter utils.Point
}

var errMissingDependency = errors.New("park controller: missing dependency")

// ParkController 公园场景控制器
//
// 订阅存储事件并同步实体（预览、已购买建筑、地块占用），
// 把指针和键盘输入转换为模式切换、视觉反馈和发往存储的意图。
// 所有方法都在游戏主循环中同步调用。
type ParkController struct {
	store     StateStore
	audio     AudioController
	plots     *PlotRegistry
	buildings *BuildingSystem
	feedback  *FeedbackSystem
	mapCenter utils.Point

	mode         ParkMode
	preview      ecs.EntityID // mode 为 Idle 时为 0
	previewValid bool
	active       []ecs.EntityID // 已购买建筑（购买顺序）
	hoveredPlot  ecs.EntityID

	unsubscribe func()
	closed      bool
}

// NewParkController 创建控制器并订阅存储事件
func NewParkController(deps ParkControllerDeps) (*ParkController, error) {
	switch {
	case deps.Store == nil:
		return nil, fmt.Errorf("%w: store", errMissingDependency)
	case deps.Plots == nil:
		return nil, fmt.Errorf("%w: plot registry", errMissingDependency)
	case deps.Buildings == nil:
		return nil, fmt.Errorf("%w: building system", errMissingDependency)
	case deps.Feedback == nil:
		return nil, fmt.Errorf("%w: feedback system", errMissingDependency)
	}

	c := &ParkController{
		store:     deps.Store,
		audio:     deps.Audio,
		plots:     deps.Plots,
		buildings: deps.Buildings,
		feedback:  deps.Feedback,
		mapCenter: deps.MapCenter,
		mode:      ModeIdle,
	}
	c.unsubscribe = deps.Store.Subscribe(c.handleEvent)
	return c, nil
}

// Close 取消订阅并放弃未完成的预览，可重复调用
func (c *ParkController) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.unsubscribe()
	c.abandonPreview()
	log.Printf("[ParkController] Closed")
}

// Mode 当前模式
func (c *ParkController) Mode() ParkMode {
	return c.mode
}

// Preview 当前预览实体
func (c *ParkController) Preview() (ecs.EntityID, bool) {
	if c.mode == ModeIdle {
		return 0, false
	}
	return c.preview, true
}

// ActiveBuildings 已购买建筑实体
func (c *ParkController) ActiveBuildings() []ecs.EntityID {
	return append([]ecs.EntityID(nil), c.active...)
}

// HoveredPlot 指针当前所在的地块
func (c *ParkController) HoveredPlot() (ecs.EntityID, bool) {
	return c.hoveredPlot, c.hoveredPlot != 0
}

// OpenModal 打开任意对话框
func (c *ParkController) OpenModal(kind store.Modal) {
	c.store.Dispatch(store.ShowModalIntent{Kind: kind})
}

// PointerMoved 处理指针移动（世界坐标）
func (c *ParkController) PointerMoved(x, y float64) {
	if c.closed {
		return
	}

	if c.store.Snapshot().Modal == store.ModalNone {
		c.updateHover(x, y)
	}

	if c.mode == ModePlacing {
		c.buildings.SetPosition(c.preview, x, y)
		c.evaluatePreview()
	}
}

// PointerDown 处理指针按下（世界坐标），对话框打开时忽略
func (c *ParkController) PointerDown(x, y float64) {
	if c.closed {
		return
	}
	snapshot := c.store.Snapshot()
	if snapshot.Modal != store.ModalNone {
		return
	}

	switch c.mode {
	case ModePlacing:
		if !c.previewValid {
			return
		}
		c.buildings.ClearPreviewVisual(c.preview)
		c.mode = ModeAwaitingPurchase
		c.store.Dispatch(store.PlaceBuildingConfirmedIntent{})

	case ModeAwaitingPurchase:
		// 等待 BUY 确认

	case ModeIdle:
		if building, ok := c.buildings.BuildingAt(x, y); ok {
			c.showSell(snapshot, building)
			return
		}
		plotEntity, ok := c.plots.PlotAt(x, y)
		if !ok {
			return
		}
		plot, _ := c.plots.Plot(plotEntity)
		if plot.IsOccupied() {
			c.showSell(snapshot, plot.Occupant)
			return
		}
		c.store.Dispatch(store.ShowBuyModalIntent{})
	}
}

// ShiftDown 放置中切换旋转角度
func (c *ParkController) ShiftDown() {
	if c.closed || c.mode != ModePlacing {
		return
	}
	c.buildings.ToggleRotation(c.preview)
	c.evaluatePreview()
}

// showSell 用被点击建筑自身的 ID 在快照中查找并打开出售对话框
func (c *ParkController) showSell(snapshot store.State, entity ecs.EntityID) {
	building, ok := c.buildings.Building(entity)
	if !ok {
		return
	}
	record, ok := snapshot.FindBuilding(building.ID)
	if !ok {
		log.Printf("[ParkController] Building %s not in store, ignoring click", building.ID)
		return
	}
	c.store.Dispatch(store.ShowSellIntent{Building: record})
}

// updateHover 指针进入新的地块时移动选中框
func (c *ParkController) updateHover(x, y float64) {
	plotEntity, ok := c.plots.PlotAt(x, y)
	if !ok {
		c.hoveredPlot = 0
		return
	}
	if plotEntity == c.hoveredPlot {
		return
	}
	c.hoveredPlot = plotEntity
	plot, _ := c.plots.Plot(plotEntity)
	c.feedback.ShowSelectionMarker(plot.Bounds.Center(), plotEntity)
}

// evaluatePreview 预览完全位于一个空闲地块内时为可放置
func (c *ParkController) evaluatePreview() {
	c.previewValid = false
	if bounds, ok := c.buildings.Bounds(c.preview); ok {
		if plotEntity, found := FindContainingPlot(c.plots, bounds); found {
			plot, _ := c.plots.Plot(plotEntity)
			c.previewValid = !plot.IsOccupied()
		}
	}
	c.buildings.SetPreviewState(c.preview, c.previewValid)
}

// handleEvent 存储事件回调，不向存储返回错误或 panic
func (c *ParkController) handleEvent(event store.Event) {
	if c.closed {
		return
	}

	switch e := event.(type) {
	case store.MuteEvent:
		if c.audio != nil {
			c.audio.ToggleMute()
		}
	case store.SellEvent:
		c.onSell(e.Building)
	case store.BuyEvent:
		c.onBuy(e.Building)
	case store.PlaceBuildingEvent:
		c.onPlaceBuilding(e.Building)
	case store.CancelPlacementEvent:
		c.abandonPreview()
	case store.PurchaseRejectedEvent:
		c.onPurchaseRejected(e.Reason)
	default:
		log.Printf("[ParkController] Unhandled event %T", event)
	}
}

func (c *ParkController) onPlaceBuilding(placing store.PlacingBuilding) {
	c.abandonPreview()
	c.preview = c.buildings.Spawn(c.mapCenter.X, c.mapCenter.Y, placing.Spec)
	c.previewValid = false
	c.mode = ModePlacing
	log.Printf("[ParkController] Placing %s", placing.Type)
}

func (c *ParkController) onBuy(record store.BuildingRecord) {
	if c.mode == ModeIdle {
		log.Printf("[ParkController] BUY %s without pending preview, ignoring", record.ID)
		return
	}

	entity := c.preview
	plotEntity, onPlot := ecs.EntityID(0), false
	if bounds, ok := c.buildings.Bounds(entity); ok {
		plotEntity, onPlot = FindContainingPlot(c.plots, bounds)
	}
	// 已被占用的地块保留原占用者，新建筑不挂在地块上
	if plot, ok := c.plots.Plot(plotEntity); onPlot && ok && plot.IsOccupied() {
		log.Printf("[ParkController] Plot %s already occupied, %s placed off-plot", plot.ID, record.ID)
		plotEntity, onPlot = 0, false
	}
	c.buildings.Commit(entity, record.ID, plotEntity)
	if onPlot {
		c.plots.SetOccupant(plotEntity, entity)
	}
	c.active = append(c.active, entity)

	c.preview = 0
	c.previewValid = false
	c.mode = ModeIdle

	if pos, ok := c.buildings.Position(entity); ok {
		c.feedback.ShowFloatingText(pos.X, pos.Y, fmt.Sprintf("-$%d", record.Spec.Cost), 0)
	}
	c.store.Dispatch(store.TransactionCompleteIntent{})
}

func (c *ParkController) onSell(record store.BuildingRecord) {
	index := -1
	for i, entity := range c.active {
		if b, ok := c.buildings.Building(entity); ok && b.ID == record.ID {
			index = i
			break
		}
	}
	if index < 0 {
		log.Printf("[ParkController] SELL %s not in active set, ignoring", record.ID)
		return
	}

	entity := c.active[index]
	c.active = append(c.active[:index], c.active[index+1:]...)

	building, _ := c.buildings.Building(entity)
	if plot, ok := c.plots.Plot(building.Plot); ok && plot.Occupant == entity {
		c.plots.ClearOccupant(building.Plot)
		c.reassignPlot(building.Plot)
	}
	if pos, ok := c.buildings.Position(entity); ok {
		refund := record.Spec.Cost / config.SellRefundDivisor
		c.feedback.ShowFloatingText(pos.X, pos.Y, fmt.Sprintf("+$%d", refund), 0)
	}
	if c.audio != nil {
		c.audio.PlaySound(config.SoundDead)
	}
	c.buildings.Destroy(entity)

	c.store.Dispatch(store.TransactionCompleteIntent{})
}

// reassignPlot 地块空出后交给仍位于其中的未挂靠建筑
func (c *ParkController) reassignPlot(plotEntity ecs.EntityID) {
	for _, entity := range c.active {
		b, ok := c.buildings.Building(entity)
		if !ok || b.Plot != 0 {
			continue
		}
		bounds, ok := c.buildings.Bounds(entity)
		if !ok {
			continue
		}
		if found, onPlot := FindContainingPlot(c.plots, bounds); onPlot && found == plotEntity {
			b.Plot = plotEntity
			c.plots.SetOccupant(plotEntity, entity)
			return
		}
	}
}

// onPurchaseRejected 购买失败时回到放置模式
func (c *ParkController) onPurchaseRejected(reason string) {
	if c.mode != ModeAwaitingPurchase {
		return
	}
	c.mode = ModePlacing
	c.buildings.RestorePreviewVisual(c.preview, c.previewValid)
	c.feedback.Shake(c.preview)
	if pos, ok := c.buildings.Position(c.preview); ok {
		c.feedback.ShowFloatingText(pos.X, pos.Y, reason, 0)
	}
}

// abandonPreview 销毁未购买的预览
func (c *ParkController) abandonPreview() {
	if c.mode == ModeIdle {
		return
	}
	if b, ok := c.buildings.Building(c.preview); ok && !b.Destroyed {
		c.buildings.Destroy(c.preview)
	}
	c.preview = 0
	c.previewValid = false
	c.mode = ModeIdle
}

// Debug 返回控制器状态（调试转储用）
func (c *ParkController) Debug() ControllerDebug {
	d := ControllerDebug{
		Mode:         c.mode,
		PreviewValid: c.previewValid,
	}
	if entity, ok := c.Preview(); ok {
		d.Preview = uint64(entity)
		if b, ok := c.buildings.Building(entity); ok {
			d.PreviewType = b.Type
			d.PreviewRotation = b.Rotation
		}
	}
	for _, entity := range c.active {
		if b, ok := c.buildings.Building(entity); ok {
			d.Active = append(d.Active, ActiveBuildingDebug{
				Entity: uint64(entity),
				ID:     b.ID,
				Type:   b.Type,
				Plot:   c.plotID(b.Plot),
			})
		}
	}
	return d
}

func (c *ParkController) plotID(entity ecs.EntityID) string {
	if plot, ok := c.plots.Plot(entity); ok {
		return plot.ID
	}
	return ""
}

// ControllerDebug 控制器状态快照
type ControllerDebug struct {
	Mode            ParkMode              `yaml:"mode"`
	Preview         uint64                `yaml:"preview,omitempty"`
	PreviewType     string                `yaml:"preview_type,omitempty"`
	PreviewRotation int                   `yaml:"preview_rotation,omitempty"`
	PreviewValid    bool                  `yaml:"preview_valid"`
	Active          []ActiveBuildingDebug `yaml:"active"`
}

// ActiveBuildingDebug 已购买建筑的调试信息
type ActiveBuildingDebug struct {
	Entity uint64 `yaml:"entity"`
	ID     string `yaml:"id"`
	Type   string `yaml:"type"`
	Plot   string `yaml:"plot,omitempty"`
}
