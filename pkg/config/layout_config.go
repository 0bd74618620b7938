package config

import "image/color"

// 布局与表现常量
// 所有坐标使用"世界坐标系"（相对于地图左上角），摄像机负责缩放到屏幕

// Application (应用)
const (
	// AppName 设置存储目录名
	AppName = "parktycoon"
	// WindowTitle 窗口标题
	WindowTitle = "Park Tycoon"
	// ResourceGroupPark 公园场景的资源组
	ResourceGroupPark = "park"
)

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// DefaultCameraZoom 摄像机默认缩放
	DefaultCameraZoom = 2.0
)

// Park Rules (经营规则)
const (
	// DefaultDayLengthSeconds 每天的默认时长
	DefaultDayLengthSeconds = 30.0
	// TickIntervalSeconds 场景 tick 间隔
	TickIntervalSeconds = 1.0

	// MinAdmission / MaxAdmission 门票价格输入范围
	MinAdmission = 0
	MaxAdmission = 1000000

	// SellRefundDivisor 出售建筑时返还 cost/SellRefundDivisor
	SellRefundDivisor = 2
)

// Placement Preview (放置预览)
const (
	// PreviewAlpha 预览建筑的透明度
	PreviewAlpha = 0.3
)

var (
	// PreviewValidTint 可放置时的着色 0x00ff00
	PreviewValidTint = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	// PreviewInvalidTint 不可放置时的着色 0xff0000
	PreviewInvalidTint = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
)

// Audio (音频)
const (
	// DefaultMasterVolume 静音切换时恢复到的主音量
	DefaultMasterVolume = 0.1
)

// Selection Marker (选中标记)
const (
	// MarkerStartScale / MarkerEndScale 脉冲缩放范围
	MarkerStartScale = 0.5
	MarkerEndScale   = 1.0
	// MarkerPulseSeconds 单程时长（往返各一次）
	MarkerPulseSeconds = 1.0
	// MarkerPulseSteps 阶梯缓动台阶数
	MarkerPulseSteps = 3
)

// Floating Text (浮动文字)
const (
	// FloatingTextDefaultSeconds 默认显示时长
	FloatingTextDefaultSeconds = 1.5
	// FloatingTextOffsetX 文字相对锚点的水平偏移
	FloatingTextOffsetX = -30.0
	// FloatingTextRise 显示期间上升的距离
	FloatingTextRise = 8.0
	// FloatingTextSteps 阶梯缓动台阶数
	FloatingTextSteps = 4
	// FloatingTextFontSize 字号（世界坐标像素）
	FloatingTextFontSize = 8.0
	// FloatingTextWrapWidth 换行宽度
	FloatingTextWrapWidth = 120.0
	// FloatingTextStroke 描边宽度
	FloatingTextStroke = 2.0
)

// Shake Feedback (抖动反馈)
const (
	// ShakeMaxOffset 最大抖动偏移（像素）
	ShakeMaxOffset = 2
	// ShakeCycleSeconds 每次抖动时长
	ShakeCycleSeconds = 0.04
	// ShakeRepeats 重复次数（总次数为 1 + ShakeRepeats）
	ShakeRepeats = 2
)

// Render Depth (渲染层级)
const (
	DepthTiles    = 0
	DepthPlot     = 1
	DepthMarker   = 2
	DepthBuilding = 3
	DepthText     = 4
)

// Asset keys (资源ID)
const (
	ImageTiles        = "tiles"
	ImageGalletCity   = "gallet_city"
	ImageTilesSprites = "tiles_sprites"
	ImageSelected     = "selected"

	SoundStep  = "step"
	SoundDead  = "dead"
	SoundError = "error"

	FontHUD = "hud_font"
)

// Sprite sheet frames (tiles_sprites 帧索引)
const (
	SpriteIndexPlot = 0
)

// TilesetImageKeys 图块集名称 -> 图片资源ID
var TilesetImageKeys = map[string]string{
	"tiles":            ImageTiles,
	"galletcity_tiles": ImageGalletCity,
}
