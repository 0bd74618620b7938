package modules

import (
	"log"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/store"
	"github.com/gonewx/parktycoon/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// AdmissionStep 每次按 +/- 调整的门票价格
const AdmissionStep = 1

// ParkStore 交易模块需要的存储接口
type ParkStore interface {
	Snapshot() store.State
	Dispatch(intent store.Intent)
}

// TradeKeys 一帧内刚刚按下的交易相关按键
type TradeKeys struct {
	Digit         int // 1-9，0 表示没有
	Yes, No       bool
	Escape        bool
	Buy           bool // B
	Animals       bool // A
	Hire          bool // H
	Ads           bool // V
	Meat          bool // T
	Mute          bool // M
	AdmissionUp   bool // = / 小键盘 +
	AdmissionDown bool // - / 小键盘 -
}

// TradeModule 对话框键盘操作
//
// 购买对话框中数字键选择建筑，出售对话框中 Y/N 确认或取消；
// 没有对话框时 B/A/H/V/T 打开对应对话框，Esc 取消放置。M 随时切换静音。
type TradeModule struct {
	store     ParkStore
	catalogue *config.BuildingCatalogue
}

// NewTradeModule 创建交易模块
func NewTradeModule(s ParkStore, catalogue *config.BuildingCatalogue) *TradeModule {
	return &TradeModule{store: s, catalogue: catalogue}
}

// Update 读取本帧按键并处理
func (m *TradeModule) Update() {
	m.Handle(SampleTradeKeys())
}

// SampleTradeKeys 采样本帧按键
func SampleTradeKeys() TradeKeys {
	pressed := inpututil.IsKeyJustPressed
	return TradeKeys{
		Digit:         utils.DigitJustPressed(),
		Yes:           pressed(ebiten.KeyY),
		No:            pressed(ebiten.KeyN),
		Escape:        pressed(ebiten.KeyEscape),
		Buy:           pressed(ebiten.KeyB),
		Animals:       pressed(ebiten.KeyA),
		Hire:          pressed(ebiten.KeyH),
		Ads:           pressed(ebiten.KeyV),
		Meat:          pressed(ebiten.KeyT),
		Mute:          pressed(ebiten.KeyM),
		AdmissionUp:   pressed(ebiten.KeyEqual) || pressed(ebiten.KeyNumpadAdd),
		AdmissionDown: pressed(ebiten.KeyMinus) || pressed(ebiten.KeyNumpadSubtract),
	}
}

// Handle 处理一帧按键
func (m *TradeModule) Handle(keys TradeKeys) {
	if keys.Mute {
		m.store.Dispatch(store.MuteIntent{})
	}

	state := m.store.Snapshot()
	switch state.Modal {
	case store.ModalNone:
		m.handleWorld(state, keys)
	case store.ModalBuy:
		if keys.Digit > 0 {
			m.choose(keys.Digit)
			return
		}
		if keys.Escape {
			m.store.Dispatch(store.CloseModalIntent{})
		}
	case store.ModalSell:
		switch {
		case keys.Yes:
			m.store.Dispatch(store.ConfirmSaleIntent{})
		case keys.No || keys.Escape:
			m.store.Dispatch(store.CloseModalIntent{})
		}
	default:
		if keys.Escape {
			m.store.Dispatch(store.CloseModalIntent{})
		}
	}
}

func (m *TradeModule) handleWorld(state store.State, keys TradeKeys) {
	switch {
	case keys.Escape:
		if state.Placing != nil {
			m.store.Dispatch(store.CancelPlacementIntent{})
		}
	case keys.Buy:
		m.store.Dispatch(store.ShowBuyModalIntent{})
	case keys.Animals:
		m.store.Dispatch(store.ShowModalIntent{Kind: store.ModalAnimals})
	case keys.Hire:
		m.store.Dispatch(store.ShowModalIntent{Kind: store.ModalPrison})
	case keys.Ads:
		m.store.Dispatch(store.ShowModalIntent{Kind: store.ModalAds})
	case keys.Meat:
		m.store.Dispatch(store.ShowModalIntent{Kind: store.ModalMeat})
	case keys.AdmissionUp:
		m.store.Dispatch(store.SetAdmissionIntent{Value: state.Admission + AdmissionStep})
	case keys.AdmissionDown:
		m.store.Dispatch(store.SetAdmissionIntent{Value: state.Admission - AdmissionStep})
	}
}

// choose 按目录序号（从 1 开始）开始放置
func (m *TradeModule) choose(digit int) {
	if m.catalogue == nil || digit > len(m.catalogue.Buildings) {
		log.Printf("[TradeModule] No building at slot %d", digit)
		return
	}
	m.store.Dispatch(store.BeginPlacementIntent{Type: m.catalogue.Buildings[digit-1].Type})
}
