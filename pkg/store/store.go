package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/google/uuid"
)

// ErrUnknownBuilding 请求的建筑类型不在目录中
var ErrUnknownBuilding = errors.New("store: unknown building type")

// Listener 事件回调
type Listener func(Event)

type subscription struct {
	fn     Listener
	active bool
}

// Store 公园状态存储
//
// Dispatch 同步执行状态变更；变更产生的事件按顺序投递给所有订阅者。
// 事件回调中再次 Dispatch 产生的事件排在队尾，当前回调返回后才投递，
// 保证每个回调都完整执行后下一个才开始。
type Store struct {
	state     State
	catalogue *config.BuildingCatalogue

	listeners  []*subscription
	queue      []Event
	publishing bool

	dayLength  float64
	dayElapsed float64

	newID func() string
}

// NewStore 根据公园配置创建存储
func NewStore(cfg *config.ParkConfig, catalogue *config.BuildingCatalogue) *Store {
	dayLength := cfg.DayLengthSeconds
	if dayLength <= 0 {
		dayLength = config.DefaultDayLengthSeconds
	}
	return &Store{
		state: State{
			Cash:      cfg.StartingCash,
			Meat:      cfg.StartingMeat,
			Admission: clampAdmission(cfg.Admission),
			Employees: cfg.Employees,
			Day:       1,
			Buildings: make([]BuildingRecord, 0),
		},
		catalogue: catalogue,
		dayLength: dayLength,
		newID:     uuid.NewString,
	}
}

// SetIDGenerator 替换建筑 ID 生成器（测试用）
func (s *Store) SetIDGenerator(gen func() string) {
	s.newID = gen
}

// Catalogue 返回建筑目录
func (s *Store) Catalogue() *config.BuildingCatalogue {
	return s.catalogue
}

// Snapshot 返回当前状态的副本
func (s *Store) Snapshot() State {
	return s.state.clone()
}

// Subscribe 订阅事件，返回取消订阅函数（可重复调用）
func (s *Store) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn, active: true}
	s.listeners = append(s.listeners, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, l := range s.listeners {
			if l == sub {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// ListenerCount 当前订阅者数量
func (s *Store) ListenerCount() int {
	return len(s.listeners)
}

// Dispatch 执行意图
func (s *Store) Dispatch(intent Intent) {
	if err := s.reduce(intent); err != nil {
		log.Printf("[Store] %T rejected: %v", intent, err)
	}
	s.flush()
}

// Tick 推进经营时间
func (s *Store) Tick(deltaTime float64) {
	s.dayElapsed += deltaTime
	for s.dayElapsed >= s.dayLength {
		s.dayElapsed -= s.dayLength
		s.state.Day++
		log.Printf("[Store] Day %d begins", s.state.Day)
	}
}

func (s *Store) emit(e Event) {
	s.queue = append(s.queue, e)
}

// flush 投递排队的事件，重入时直接返回，由外层循环继续投递
func (s *Store) flush() {
	if s.publishing {
		return
	}
	s.publishing = true
	defer func() { s.publishing = false }()

	for len(s.queue) > 0 {
		e := s.queue[0]
		s.queue = s.queue[1:]

		listeners := append([]*subscription(nil), s.listeners...)
		for _, l := range listeners {
			if l.active {
				l.fn(e)
			}
		}
	}
}

func (s *Store) reduce(intent Intent) error {
	switch it := intent.(type) {
	case ShowBuyModalIntent:
		s.state.Modal = ModalBuy

	case ShowSellIntent:
		b := it.Building
		s.state.Selling = &b
		s.state.Modal = ModalSell

	case ShowModalIntent:
		s.state.Modal = it.Kind

	case CloseModalIntent:
		s.state.Modal = ModalNone
		s.state.Selling = nil

	case TransactionCompleteIntent:
		s.state.Modal = ModalNone
		s.state.Selling = nil

	case BeginPlacementIntent:
		spec, err := s.catalogue.Lookup(it.Type)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownBuilding, it.Type)
		}
		placing := PlacingBuilding{Type: spec.Type, Spec: spec}
		s.state.Placing = &placing
		s.state.Modal = ModalNone
		s.emit(PlaceBuildingEvent{Building: placing})

	case PlaceBuildingConfirmedIntent:
		if s.state.Placing == nil {
			return fmt.Errorf("no building is being placed")
		}
		spec := s.state.Placing.Spec
		if s.state.Cash < spec.Cost {
			s.emit(PurchaseRejectedEvent{
				Reason: fmt.Sprintf("Need $%d", spec.Cost-s.state.Cash),
			})
			return nil
		}
		s.state.Cash -= spec.Cost
		record := BuildingRecord{ID: s.newID(), Type: spec.Type, Spec: spec}
		s.state.Buildings = append(s.state.Buildings, record)
		s.state.Placing = nil
		s.emit(BuyEvent{Building: record})

	case ConfirmSaleIntent:
		if s.state.Selling == nil {
			return fmt.Errorf("no building is being sold")
		}
		id := s.state.Selling.ID
		record, ok := s.removeBuilding(id)
		if !ok {
			s.state.Selling = nil
			return fmt.Errorf("building %s already removed", id)
		}
		s.state.Cash += record.Spec.Cost / config.SellRefundDivisor
		s.emit(SellEvent{Building: record})

	case CancelPlacementIntent:
		if s.state.Placing == nil {
			return nil
		}
		s.state.Placing = nil
		s.emit(CancelPlacementEvent{})

	case MuteIntent:
		s.state.Muted = !s.state.Muted
		s.emit(MuteEvent{})

	case SetAdmissionIntent:
		s.state.Admission = clampAdmission(it.Value)

	default:
		return fmt.Errorf("unhandled intent %T", intent)
	}
	return nil
}

func (s *Store) removeBuilding(id string) (BuildingRecord, bool) {
	for i, b := range s.state.Buildings {
		if b.ID == id {
			s.state.Buildings = append(s.state.Buildings[:i], s.state.Buildings[i+1:]...)
			return b, true
		}
	}
	return BuildingRecord{}, false
}

func clampAdmission(v int) int {
	if v < config.MinAdmission {
		return config.MinAdmission
	}
	if v > config.MaxAdmission {
		return config.MaxAdmission
	}
	return v
}
