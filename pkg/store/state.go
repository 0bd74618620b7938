// Package store 公园经营状态的集中存储
//
// 场景和界面只通过 Dispatch(Intent) 修改状态，状态变化以 Event 通知订阅者。
// 所有调用都在游戏主循环的同一个 goroutine 中进行。
package store

import "github.com/gonewx/parktycoon/pkg/config"

// Modal 当前打开的对话框
type Modal int

const (
	ModalNone Modal = iota
	ModalBuy
	ModalSell
	ModalLose
	ModalWin
	ModalAnimals
	ModalMeat
	ModalAds
	ModalPrison
)

var modalNames = [...]string{
	ModalNone:    "none",
	ModalBuy:     "buy",
	ModalSell:    "sell",
	ModalLose:    "lose",
	ModalWin:     "win",
	ModalAnimals: "animals",
	ModalMeat:    "meat",
	ModalAds:     "ads",
	ModalPrison:  "prison",
}

func (m Modal) String() string {
	if m < 0 || int(m) >= len(modalNames) {
		return "unknown"
	}
	return modalNames[m]
}

// MarshalYAML 以名称输出（调试转储用）
func (m Modal) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// BuildingRecord 已购买的建筑
type BuildingRecord struct {
	ID   string              `yaml:"id"`
	Type string              `yaml:"type"`
	Spec config.BuildingSpec `yaml:"spec"`
}

// PlacingBuilding 正在放置的建筑（尚未购买）
type PlacingBuilding struct {
	Type string              `yaml:"type"`
	Spec config.BuildingSpec `yaml:"spec"`
}

// State 状态快照
type State struct {
	Cash      int              `yaml:"cash"`
	Meat      int              `yaml:"meat"`
	Modal     Modal            `yaml:"modal"`
	Buildings []BuildingRecord `yaml:"buildings"`
	Day       int              `yaml:"day"`
	Admission int              `yaml:"admission"`
	Employees int              `yaml:"employees"`
	Peta      int              `yaml:"peta"`
	Statuses  []string         `yaml:"statuses,omitempty"`
	Muted     bool             `yaml:"muted"`
	Placing   *PlacingBuilding `yaml:"placing,omitempty"`
	Selling   *BuildingRecord  `yaml:"selling,omitempty"`
}

// FindBuilding 按 ID 查找已购买的建筑
func (s State) FindBuilding(id string) (BuildingRecord, bool) {
	for _, b := range s.Buildings {
		if b.ID == id {
			return b, true
		}
	}
	return BuildingRecord{}, false
}

// clone 深拷贝，快照的修改不会影响存储
func (s State) clone() State {
	c := s
	c.Buildings = append([]BuildingRecord(nil), s.Buildings...)
	c.Statuses = append([]string(nil), s.Statuses...)
	if s.Placing != nil {
		p := *s.Placing
		c.Placing = &p
	}
	if s.Selling != nil {
		b := *s.Selling
		c.Selling = &b
	}
	return c
}

// PetaText PETA 威胁等级描述
func PetaText(peta int) string {
	switch {
	case peta > 40:
		return "Extreme"
	case peta > 30:
		return "Very High"
	case peta > 20:
		return "High"
	case peta > 10:
		return "Moderate"
	default:
		return "Low"
	}
}
