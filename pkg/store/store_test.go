package store

import (
	"fmt"
	"testing"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, cash int) *Store {
	t.Helper()
	catalogue := &config.BuildingCatalogue{Buildings: []config.BuildingSpec{
		{Type: "kiosk", Name: "Kiosk", Cost: 500, Width: 16, Height: 16, Frame: 4},
		{Type: "cage", Name: "Cage", Cost: 1200, Width: 32, Height: 16, Frame: 5},
	}}
	s := NewStore(&config.ParkConfig{StartingCash: cash, Admission: 10, DayLengthSeconds: 10}, catalogue)
	n := 0
	s.SetIDGenerator(func() string {
		n++
		return fmt.Sprintf("b%d", n)
	})
	return s
}

func record(s *Store) *[]Event {
	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })
	return &events
}

func TestBeginPlacementEmitsPlaceBuilding(t *testing.T) {
	s := newTestStore(t, 1000)
	events := record(s)

	s.Dispatch(ShowBuyModalIntent{})
	assert.Equal(t, ModalBuy, s.Snapshot().Modal)

	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})

	require.Len(t, *events, 1)
	ev, ok := (*events)[0].(PlaceBuildingEvent)
	require.True(t, ok)
	assert.Equal(t, "kiosk", ev.Building.Type)
	assert.Equal(t, 500, ev.Building.Spec.Cost)

	snap := s.Snapshot()
	assert.Equal(t, ModalNone, snap.Modal)
	require.NotNil(t, snap.Placing)
}

func TestBeginPlacementUnknownType(t *testing.T) {
	s := newTestStore(t, 1000)
	events := record(s)

	s.Dispatch(BeginPlacementIntent{Type: "castle"})

	assert.Empty(t, *events)
	assert.Nil(t, s.Snapshot().Placing)
}

func TestPlaceBuildingConfirmedCharges(t *testing.T) {
	s := newTestStore(t, 1000)
	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})
	events := record(s)

	s.Dispatch(PlaceBuildingConfirmedIntent{})

	require.Len(t, *events, 1)
	buy, ok := (*events)[0].(BuyEvent)
	require.True(t, ok)
	assert.Equal(t, "b1", buy.Building.ID)

	snap := s.Snapshot()
	assert.Equal(t, 500, snap.Cash)
	assert.Nil(t, snap.Placing)
	require.Len(t, snap.Buildings, 1)
	assert.Equal(t, "kiosk", snap.Buildings[0].Type)
}

func TestPlaceBuildingConfirmedInsufficientCash(t *testing.T) {
	s := newTestStore(t, 100)
	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})
	events := record(s)

	s.Dispatch(PlaceBuildingConfirmedIntent{})

	require.Len(t, *events, 1)
	rejected, ok := (*events)[0].(PurchaseRejectedEvent)
	require.True(t, ok)
	assert.Equal(t, "Need $400", rejected.Reason)

	snap := s.Snapshot()
	assert.Equal(t, 100, snap.Cash)
	assert.NotNil(t, snap.Placing, "placement stays pending after a rejected purchase")
	assert.Empty(t, snap.Buildings)
}

func TestPlaceBuildingConfirmedWithoutPlacing(t *testing.T) {
	s := newTestStore(t, 1000)
	events := record(s)

	s.Dispatch(PlaceBuildingConfirmedIntent{})

	assert.Empty(t, *events)
	assert.Equal(t, 1000, s.Snapshot().Cash)
}

func TestSellFlowRefundsHalf(t *testing.T) {
	s := newTestStore(t, 1000)
	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})
	s.Dispatch(PlaceBuildingConfirmedIntent{})
	building := s.Snapshot().Buildings[0]
	events := record(s)

	s.Dispatch(ShowSellIntent{Building: building})
	assert.Equal(t, ModalSell, s.Snapshot().Modal)

	s.Dispatch(ConfirmSaleIntent{})

	require.Len(t, *events, 1)
	sell, ok := (*events)[0].(SellEvent)
	require.True(t, ok)
	assert.Equal(t, building.ID, sell.Building.ID)

	snap := s.Snapshot()
	assert.Equal(t, 750, snap.Cash)
	assert.Empty(t, snap.Buildings)

	s.Dispatch(TransactionCompleteIntent{})
	snap = s.Snapshot()
	assert.Equal(t, ModalNone, snap.Modal)
	assert.Nil(t, snap.Selling)
}

func TestConfirmSaleTwiceIsRejected(t *testing.T) {
	s := newTestStore(t, 1000)
	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})
	s.Dispatch(PlaceBuildingConfirmedIntent{})
	s.Dispatch(ShowSellIntent{Building: s.Snapshot().Buildings[0]})
	s.Dispatch(ConfirmSaleIntent{})
	events := record(s)

	s.Dispatch(ConfirmSaleIntent{})

	assert.Empty(t, *events)
	assert.Equal(t, 750, s.Snapshot().Cash)
}

func TestCancelPlacement(t *testing.T) {
	s := newTestStore(t, 1000)
	events := record(s)

	// 没有放置时不产生事件
	s.Dispatch(CancelPlacementIntent{})
	assert.Empty(t, *events)

	s.Dispatch(BeginPlacementIntent{Type: "cage"})
	s.Dispatch(CancelPlacementIntent{})

	require.Len(t, *events, 2)
	assert.IsType(t, CancelPlacementEvent{}, (*events)[1])
	assert.Nil(t, s.Snapshot().Placing)
}

func TestMuteAndModals(t *testing.T) {
	s := newTestStore(t, 1000)
	events := record(s)

	s.Dispatch(MuteIntent{})
	assert.True(t, s.Snapshot().Muted)
	s.Dispatch(MuteIntent{})
	assert.False(t, s.Snapshot().Muted)
	assert.Len(t, *events, 2)

	s.Dispatch(ShowModalIntent{Kind: ModalAds})
	assert.Equal(t, ModalAds, s.Snapshot().Modal)
	s.Dispatch(CloseModalIntent{})
	assert.Equal(t, ModalNone, s.Snapshot().Modal)
}

func TestSetAdmissionClamps(t *testing.T) {
	s := newTestStore(t, 0)

	s.Dispatch(SetAdmissionIntent{Value: -3})
	assert.Equal(t, 0, s.Snapshot().Admission)

	s.Dispatch(SetAdmissionIntent{Value: 2000000})
	assert.Equal(t, config.MaxAdmission, s.Snapshot().Admission)

	s.Dispatch(SetAdmissionIntent{Value: 42})
	assert.Equal(t, 42, s.Snapshot().Admission)
}

func TestTickAdvancesDay(t *testing.T) {
	s := newTestStore(t, 0)
	assert.Equal(t, 1, s.Snapshot().Day)

	for i := 0; i < 9; i++ {
		s.Tick(1)
	}
	assert.Equal(t, 1, s.Snapshot().Day)

	s.Tick(1)
	assert.Equal(t, 2, s.Snapshot().Day)

	s.Tick(25)
	assert.Equal(t, 4, s.Snapshot().Day)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore(t, 1000)
	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})
	s.Dispatch(PlaceBuildingConfirmedIntent{})

	snap := s.Snapshot()
	snap.Buildings[0].ID = "tampered"
	snap.Cash = 0

	fresh := s.Snapshot()
	assert.Equal(t, "b1", fresh.Buildings[0].ID)
	assert.Equal(t, 500, fresh.Cash)
}

// TestNestedDispatchIsQueued 回调中 Dispatch 产生的事件在当前回调结束后投递
func TestNestedDispatchIsQueued(t *testing.T) {
	s := newTestStore(t, 1000)
	var order []string

	s.Subscribe(func(e Event) {
		switch e.(type) {
		case PlaceBuildingEvent:
			order = append(order, "first:place:start")
			s.Dispatch(MuteIntent{})
			order = append(order, "first:place:end")
		case MuteEvent:
			order = append(order, "first:mute")
		}
	})
	s.Subscribe(func(e Event) {
		switch e.(type) {
		case PlaceBuildingEvent:
			order = append(order, "second:place")
		case MuteEvent:
			order = append(order, "second:mute")
		}
	})

	s.Dispatch(BeginPlacementIntent{Type: "kiosk"})

	assert.Equal(t, []string{
		"first:place:start",
		"first:place:end",
		"second:place",
		"first:mute",
		"second:mute",
	}, order)
}

func TestUnsubscribe(t *testing.T) {
	s := newTestStore(t, 1000)
	calls := 0
	unsubscribe := s.Subscribe(func(Event) { calls++ })
	require.Equal(t, 1, s.ListenerCount())

	s.Dispatch(MuteIntent{})
	unsubscribe()
	unsubscribe()
	s.Dispatch(MuteIntent{})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.ListenerCount())
}

// TestUnsubscribeDuringPublish 回调中取消订阅的监听者不再收到当前事件
func TestUnsubscribeDuringPublish(t *testing.T) {
	s := newTestStore(t, 1000)
	var unsubscribeSecond func()
	secondCalls := 0

	s.Subscribe(func(Event) { unsubscribeSecond() })
	unsubscribeSecond = s.Subscribe(func(Event) { secondCalls++ })

	s.Dispatch(MuteIntent{})

	assert.Equal(t, 0, secondCalls)
}

func TestPetaText(t *testing.T) {
	tests := []struct {
		peta int
		want string
	}{
		{0, "Low"},
		{10, "Low"},
		{11, "Moderate"},
		{21, "High"},
		{31, "Very High"},
		{41, "Extreme"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PetaText(tt.peta), "peta=%d", tt.peta)
	}
}

func TestModalString(t *testing.T) {
	assert.Equal(t, "prison", ModalPrison.String())
	assert.Equal(t, "unknown", Modal(99).String())
}
