package systems

import (
	"fmt"
	"testing"

	"github.com/gonewx/parktycoon/pkg/components"
	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/gonewx/parktycoon/pkg/ecs"
	"github.com/gonewx/parktycoon/pkg/store"
	"github.com/gonewx/parktycoon/pkg/utils"
	"github.com/stretchr/testify/require"
)

var (
	kioskSpec = config.BuildingSpec{Type: "kiosk", Name: "Kiosk", Cost: 100, Width: 20, Height: 10, Frame: 3}
	tallSpec  = config.BuildingSpec{Type: "tower", Name: "Tower", Cost: 300, Width: 10, Height: 28, Frame: 4}
)

// fakeStore 记录派发的意图，事件由测试直接投递
type fakeStore struct {
	state     store.State
	intents   []store.Intent
	listeners map[int]store.Listener
	nextSub   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{listeners: make(map[int]store.Listener)}
}

func (f *fakeStore) Snapshot() store.State { return f.state }

func (f *fakeStore) Dispatch(intent store.Intent) {
	f.intents = append(f.intents, intent)
}

func (f *fakeStore) Subscribe(fn store.Listener) func() {
	id := f.nextSub
	f.nextSub++
	f.listeners[id] = fn
	return func() { delete(f.listeners, id) }
}

func (f *fakeStore) emit(e store.Event) {
	for _, fn := range f.listeners {
		fn(e)
	}
}

// fakeAudio 记录播放的音效
type fakeAudio struct {
	played      []string
	muteToggles int
}

func (a *fakeAudio) PlaySound(id string) bool {
	a.played = append(a.played, id)
	return true
}

func (a *fakeAudio) ToggleMute() { a.muteToggles++ }

func (a *fakeAudio) count(id string) int {
	n := 0
	for _, p := range a.played {
		if p == id {
			n++
		}
	}
	return n
}

// rectZone 矩形对象区域（Y 为上边缘）
func rectZone(name string, x, y, w, h float64, size string) config.ZoneDescriptor {
	props := map[string]string{}
	if size != "" {
		props[config.ZoneSizeProperty] = size
	}
	return config.ZoneDescriptor{Name: name, X: x, Y: y, Width: w, Height: h, Properties: props}
}

// sequentialIDs 可预测的 ID 生成器
func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

type testPark struct {
	em         *ecs.EntityManager
	store      *fakeStore
	audio      *fakeAudio
	plots      *PlotRegistry
	buildings  *BuildingSystem
	feedback   *FeedbackSystem
	controller *ParkController
	plotIDs    []ecs.EntityID
}

// newTestPark 创建包含给定区域的场景，默认一个 (100,100) 50x30 的地块
func newTestPark(t *testing.T, zones ...config.ZoneDescriptor) *testPark {
	t.Helper()
	if len(zones) == 0 {
		zones = []config.ZoneDescriptor{rectZone("A", 100, 100, 50, 30, "1")}
	}

	em := ecs.NewEntityManager()
	audio := &fakeAudio{}
	plots := NewPlotRegistry(em)
	plots.SetIDGenerator(sequentialIDs("plot"))
	plotIDs, err := plots.Initialize(zones)
	require.NoError(t, err)

	p := &testPark{
		em:        em,
		store:     newFakeStore(),
		audio:     audio,
		plots:     plots,
		buildings: NewBuildingSystem(em),
		feedback:  NewFeedbackSystem(em, audio),
		plotIDs:   plotIDs,
	}
	p.feedback.SetRandomSource(func(int) int { return 4 }) // 偏移 +2

	p.controller, err = NewParkController(ParkControllerDeps{
		Store:     p.store,
		Audio:     audio,
		Plots:     plots,
		Buildings: p.buildings,
		Feedback:  p.feedback,
		MapCenter: utils.Point{X: 400, Y: 300},
	})
	require.NoError(t, err)
	t.Cleanup(p.controller.Close)
	return p
}

// place 投递 PLACE_BUILDING 并返回新预览
func (p *testPark) place(t *testing.T, spec config.BuildingSpec) ecs.EntityID {
	t.Helper()
	p.store.emit(store.PlaceBuildingEvent{Building: store.PlacingBuilding{Type: spec.Type, Spec: spec}})
	preview, ok := p.controller.Preview()
	require.True(t, ok, "preview should exist after PLACE_BUILDING")
	return preview
}

// buy 在 (x, y) 放置并完成购买，返回建筑实体
func (p *testPark) buy(t *testing.T, spec config.BuildingSpec, id string, x, y float64) ecs.EntityID {
	t.Helper()
	preview := p.place(t, spec)
	p.controller.PointerMoved(x, y)
	p.controller.PointerDown(x, y)
	require.Equal(t, ModeAwaitingPurchase, p.controller.Mode())

	record := store.BuildingRecord{ID: id, Type: spec.Type, Spec: spec}
	p.store.state.Buildings = append(p.store.state.Buildings, record)
	p.store.emit(store.BuyEvent{Building: record})
	return preview
}

// liveBuildings 未销毁的建筑实体
func (p *testPark) liveBuildings() []ecs.EntityID {
	var live []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith1[*components.BuildingComponent](p.em) {
		if b, _ := p.buildings.Building(id); !b.Destroyed {
			live = append(live, id)
		}
	}
	return live
}

// previews 未销毁的预览实体
func (p *testPark) previews() []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range p.liveBuildings() {
		if b, _ := p.buildings.Building(id); !b.Committed {
			out = append(out, id)
		}
	}
	return out
}

func (p *testPark) lastIntent() store.Intent {
	if len(p.store.intents) == 0 {
		return nil
	}
	return p.store.intents[len(p.store.intents)-1]
}
