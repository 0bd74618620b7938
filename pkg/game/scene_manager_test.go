package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	deltaTime    float64
	closeCalls   int
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {}

func (m *MockScene) Close() {
	m.closeCalls++
}

// plainScene 没有实现 Closer
type plainScene struct{}

func (plainScene) Update(float64)     {}
func (plainScene) Draw(*ebiten.Image) {}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不做任何事
	sm.Update(0.016)

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.Update(0.016)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != 0.016 {
		t.Errorf("deltaTime: got %v, want 0.016", mockScene.deltaTime)
	}
}

// TestSwitchToClosesPreviousScene 切换场景时关闭旧场景
func TestSwitchToClosesPreviousScene(t *testing.T) {
	sm := NewSceneManager()
	first := &MockScene{}
	second := &MockScene{}

	sm.SwitchTo(first)
	sm.SwitchTo(first) // 同一场景不关闭
	if first.closeCalls != 0 {
		t.Fatalf("switching to the same scene closed it")
	}

	sm.SwitchTo(second)
	if first.closeCalls != 1 {
		t.Errorf("first scene close calls: got %d, want 1", first.closeCalls)
	}
	if sm.GetCurrentScene() != second {
		t.Error("current scene should be the second scene")
	}

	// 非 Closer 场景可以正常替换
	sm.SwitchTo(plainScene{})
	if second.closeCalls != 1 {
		t.Errorf("second scene close calls: got %d, want 1", second.closeCalls)
	}
	sm.SwitchTo(first)
}

func TestSceneManagerClose(t *testing.T) {
	sm := NewSceneManager()
	scene := &MockScene{}
	sm.SwitchTo(scene)

	sm.Close()

	if scene.closeCalls != 1 {
		t.Errorf("close calls: got %d, want 1", scene.closeCalls)
	}
	if sm.GetCurrentScene() != nil {
		t.Error("current scene should be nil after Close")
	}
}

// TestLoadScene 测试工厂创建场景
func TestLoadScene(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.LoadScene("park"); err == nil {
		t.Error("expected error without factory")
	}

	created := &MockScene{}
	sm.SetSceneFactory(func(name string) (Scene, error) {
		if name != "park" {
			return nil, errors.New("unknown scene")
		}
		return created, nil
	})

	if err := sm.LoadScene("park"); err != nil {
		t.Fatalf("LoadScene(park) error: %v", err)
	}
	if sm.GetCurrentScene() != created {
		t.Error("LoadScene did not switch to the created scene")
	}

	if err := sm.LoadScene("zoo"); err == nil {
		t.Error("expected error for unknown scene")
	}
	if sm.GetCurrentScene() != created {
		t.Error("failed load must keep the current scene")
	}
}
