package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/gonewx/parktycoon/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching for images, sprite-sheet frames, sound effects
// and font faces, so each resource is decoded only once.
//
// Resources are addressed either by file path or by the resource ID declared in
// data/resources.yaml (e.g. "tiles", "selected", "step").
//
// This implementation is NOT thread-safe; all loading happens on the game loop goroutine.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image    // path -> Image
	frameCache    map[string]*ebiten.Image    // "id#frame" -> sub image
	audioCache    map[string]*audio.Player    // path -> Player
	audioContext  *audio.Context              // nil disables sound loading
	fontFaceCache map[string]*text.GoTextFace // "path:size" -> face
	defaultFont   *text.GoTextFaceSource

	// YAML resource configuration
	config      *ResourceConfig
	resourceMap map[string]string        // Resource ID -> file path
	imageDefs   map[string]ImageResource // Resource ID -> image definition
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// audioContext may be nil, in which case every sound load fails with an error.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		frameCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
		imageDefs:     make(map[string]ImageResource),
	}
}

// LoadImage loads an image file and caches it for future use.
// Supported formats: PNG and JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// GetImage retrieves a previously loaded image from the cache, or nil.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadSoundEffect loads a one-shot sound effect and caches its player.
// Supported formats: MP3 (.mp3), OGG Vorbis (.ogg) and WAV (.wav).
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek without the file.
	audioData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream io.ReadSeeker
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG sound effect %s: %w", path, err)
		}
		stream = decoded
	case ".wav":
		decoded, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadFont loads a TrueType/OpenType font and creates a face with the given size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	fontData, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFont returns a Go Regular face of the given size.
// It is the fallback when a configured font is missing.
func (rm *ResourceManager) DefaultFont(size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("goregular:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	if rm.defaultFont == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create default font source: %w", err)
		}
		rm.defaultFont = source
	}

	face := &text.GoTextFace{Source: rm.defaultFont, Size: size}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// FontByID returns the face of a configured font, falling back to DefaultFont.
func (rm *ResourceManager) FontByID(resourceID string, size float64) (*text.GoTextFace, error) {
	if filePath, ok := rm.resourceMap[resourceID]; ok {
		if face, err := rm.LoadFont(filePath, size); err == nil {
			return face, nil
		}
	}
	return rm.DefaultFont(size)
}

// LoadResourceConfig loads and parses the YAML resource configuration file.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &cfg
	rm.buildResourceMap()
	return nil
}

// buildResourceMap constructs a mapping from resource IDs to full file paths.
//
//	tiles -> assets/images/tiles.png
//	step  -> assets/sounds/step.ogg
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.imageDefs = make(map[string]ImageResource)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png" // Default to PNG for images
			}
			rm.resourceMap[img.ID] = fullPath
			rm.imageDefs[img.ID] = img
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg" // Default to OGG for sounds
			}
			rm.resourceMap[sound.ID] = fullPath
		}

		for _, font := range group.Fonts {
			rm.resourceMap[font.ID] = buildFullPath(rm.config.BasePath, font.Path)
		}
	}
}

func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	p, ok := rm.resourceMap[resourceID]
	return p, ok
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// GetImageByID retrieves a previously loaded image using its resource ID, or nil.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.GetImage(filePath)
}

// GetSpriteFrame returns one frame of a loaded sprite sheet (row-major), or nil.
// Non sprite-sheet images return the whole image for frame 0.
func (rm *ResourceManager) GetSpriteFrame(resourceID string, frame int) *ebiten.Image {
	cacheKey := fmt.Sprintf("%s#%d", resourceID, frame)
	if cached, ok := rm.frameCache[cacheKey]; ok {
		return cached
	}

	sheet := rm.GetImageByID(resourceID)
	if sheet == nil {
		return nil
	}
	def := rm.imageDefs[resourceID]
	if !def.IsSpriteSheet() {
		if frame == 0 {
			return sheet
		}
		return nil
	}

	rect, ok := frameRect(def, sheet.Bounds().Dx(), sheet.Bounds().Dy(), frame)
	if !ok {
		return nil
	}
	sub := sheet.SubImage(rect).(*ebiten.Image)
	rm.frameCache[cacheKey] = sub
	return sub
}

// frameRect 计算精灵表中第 frame 帧的矩形
func frameRect(def ImageResource, sheetW, sheetH, frame int) (image.Rectangle, bool) {
	fw, fh := def.FrameWidth, def.FrameHeight
	if fw <= 0 && def.Cols > 0 {
		fw = sheetW / def.Cols
	}
	if fh <= 0 && def.Rows > 0 {
		fh = sheetH / def.Rows
	}
	if fh <= 0 {
		fh = sheetH
	}
	if fw <= 0 || fh <= 0 || frame < 0 {
		return image.Rectangle{}, false
	}

	cols := sheetW / fw
	rows := sheetH / fh
	if cols == 0 || frame >= cols*rows {
		return image.Rectangle{}, false
	}

	x := (frame % cols) * fw
	y := (frame / cols) * fh
	return image.Rect(x, y, x+fw, y+fh), true
}

// LoadResourceGroup loads all images and sounds in a group.
//
// Loading continues past individual failures; the returned error joins every
// failure so the caller can decide whether missing assets are fatal.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	var errs []error
	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			errs = append(errs, fmt.Errorf("image %s: %w", img.ID, err))
		}
	}

	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundEffect(rm.resourceMap[sound.ID]); err != nil {
			errs = append(errs, fmt.Errorf("sound %s: %w", sound.ID, err))
		}
	}

	// Fonts are loaded on demand because they need a size.
	return errors.Join(errs...)
}
