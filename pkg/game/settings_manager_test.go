package game

import (
	"os"
	"testing"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下创建 gdata manager
func openTestGdata(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() { os.Setenv("HOME", originalHome) })

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.MasterVolume != config.DefaultMasterVolume {
		t.Errorf("MasterVolume: got %v, want %v", settings.MasterVolume, config.DefaultMasterVolume)
	}
	if settings.Muted {
		t.Error("Muted: got true, want false")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	if sm.GetSettings().MasterVolume != config.DefaultMasterVolume {
		t.Errorf("MasterVolume: got %v", sm.GetSettings().MasterVolume)
	}
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should not fail: %v", err)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestGdata(t, "test_park_settings")

	sm1 := NewSettingsManager(gdataManager)
	sm1.SetMasterVolume(0.4)
	sm1.SetMuted(true)
	sm1.SetFullscreen(true)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(gdataManager)
	settings := sm2.GetSettings()

	if settings.MasterVolume != 0.4 {
		t.Errorf("Loaded MasterVolume: got %v, want 0.4", settings.MasterVolume)
	}
	if !settings.Muted {
		t.Error("Loaded Muted: got false, want true")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
}

// TestLoadCorruptSettings 测试损坏的设置数据回退到默认值
func TestLoadCorruptSettings(t *testing.T) {
	gdataManager := openTestGdata(t, "test_park_settings_corrupt")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("masterVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm := NewSettingsManager(gdataManager)
	if sm.GetSettings().MasterVolume != config.DefaultMasterVolume {
		t.Errorf("expected defaults after corrupt data, got %+v", sm.GetSettings())
	}
	if err := sm.Load(); err == nil {
		t.Error("Load() should report corrupt data")
	}
}

// TestClampVolume 测试音量范围限制
func TestClampVolume(t *testing.T) {
	tests := []struct {
		input, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.input); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
