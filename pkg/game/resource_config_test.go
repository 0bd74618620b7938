package game

import (
	"os"
	"testing"

	"github.com/gonewx/parktycoon/pkg/config"
)

// TestShippedResourceConfig 检查 data/resources.yaml 覆盖了场景用到的资源ID
func TestShippedResourceConfig(t *testing.T) {
	configPath := "../../data/resources.yaml"
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Skip("Skipping test - resource config file not found:", configPath)
	}

	rm := NewResourceManager(nil)
	if err := rm.LoadResourceConfig(configPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	if _, ok := rm.config.Groups["park"]; !ok {
		t.Fatal("group park not found")
	}

	ids := []string{
		config.ImageTiles,
		config.ImageGalletCity,
		config.ImageTilesSprites,
		config.ImageSelected,
		config.SoundStep,
		config.SoundDead,
		config.SoundError,
		config.FontHUD,
	}
	for _, id := range ids {
		if _, ok := rm.ResolvePath(id); !ok {
			t.Errorf("resource %s is not declared", id)
		}
	}
}

func TestImageResourceIsSpriteSheet(t *testing.T) {
	tests := []struct {
		res  ImageResource
		want bool
	}{
		{ImageResource{ID: "plain"}, false},
		{ImageResource{ID: "grid", Cols: 4}, true},
		{ImageResource{ID: "frames", FrameWidth: 16, FrameHeight: 16}, true},
		{ImageResource{ID: "half", FrameWidth: 16}, false},
	}
	for _, tt := range tests {
		if got := tt.res.IsSpriteSheet(); got != tt.want {
			t.Errorf("%s.IsSpriteSheet() = %v, want %v", tt.res.ID, got, tt.want)
		}
	}
}
