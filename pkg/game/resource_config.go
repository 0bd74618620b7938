package game

// ResourceConfig represents the top-level resource configuration loaded from YAML.
// It defines the structure of data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  park:
//	    images: [...]
//	    sounds: [...]
//	    fonts: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`   // Configuration file version
	BasePath string                   `yaml:"base_path"` // Base path for all resources (e.g., "assets")
	Groups   map[string]ResourceGroup `yaml:"groups"`    // Resource groups keyed by group name
}

// ResourceGroup represents a collection of related resources that can be loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
	Fonts  []FontResource  `yaml:"fonts"`
}

// ImageResource represents a single image or sprite sheet.
//
// Sprite sheets declare either the frame size or the grid (cols/rows):
//
//	- id: tiles_sprites
//	  path: images/tiles_sprites.png
//	  frame_width: 16
//	  frame_height: 16
type ImageResource struct {
	ID          string `yaml:"id"`
	Path        string `yaml:"path"`
	Cols        int    `yaml:"cols,omitempty"`
	Rows        int    `yaml:"rows,omitempty"`
	FrameWidth  int    `yaml:"frame_width,omitempty"`
	FrameHeight int    `yaml:"frame_height,omitempty"`
}

// IsSpriteSheet reports whether the image is split into frames.
func (r ImageResource) IsSpriteSheet() bool {
	return r.Cols > 0 || r.Rows > 0 || (r.FrameWidth > 0 && r.FrameHeight > 0)
}

// SoundResource represents a single sound effect.
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// FontResource represents a TrueType/OpenType font.
type FontResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}
