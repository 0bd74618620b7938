package config

import (
	"errors"
	"fmt"

	"github.com/gonewx/parktycoon/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrUnknownBuilding 建筑类型不在目录中
var ErrUnknownBuilding = errors.New("unknown building type")

// BuildingSpec 建筑目录条目
type BuildingSpec struct {
	Type        string  `yaml:"type"`        // 建筑类型，如 "kiosk"
	Name        string  `yaml:"name"`        // 显示名称
	Description string  `yaml:"description"` // 描述（可选）
	Cost        int     `yaml:"cost"`        // 购买价格
	Width       float64 `yaml:"width"`       // 显示宽度（像素，0 度时）
	Height      float64 `yaml:"height"`      // 显示高度（像素，0 度时）
	Frame       int     `yaml:"frame"`       // tiles_sprites 中的帧索引
}

// BuildingCatalogue 建筑目录
type BuildingCatalogue struct {
	Buildings []BuildingSpec `yaml:"buildings"`
}

// LoadBuildingCatalogue 加载建筑目录
func LoadBuildingCatalogue(path string) (*BuildingCatalogue, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read building catalogue %s: %w", path, err)
	}

	catalogue, err := ParseBuildingCatalogue(data)
	if err != nil {
		return nil, fmt.Errorf("invalid building catalogue in %s: %w", path, err)
	}
	return catalogue, nil
}

// ParseBuildingCatalogue 解析建筑目录 YAML
func ParseBuildingCatalogue(data []byte) (*BuildingCatalogue, error) {
	var catalogue BuildingCatalogue
	if err := yaml.Unmarshal(data, &catalogue); err != nil {
		return nil, fmt.Errorf("failed to parse building catalogue YAML: %w", err)
	}

	for i := range catalogue.Buildings {
		if catalogue.Buildings[i].Name == "" {
			catalogue.Buildings[i].Name = catalogue.Buildings[i].Type
		}
	}

	if err := validateBuildingCatalogue(&catalogue); err != nil {
		return nil, err
	}
	return &catalogue, nil
}

func validateBuildingCatalogue(c *BuildingCatalogue) error {
	if len(c.Buildings) == 0 {
		return fmt.Errorf("at least one building is required")
	}

	seen := make(map[string]bool, len(c.Buildings))
	for i, b := range c.Buildings {
		if b.Type == "" {
			return fmt.Errorf("building %d: type is required", i)
		}
		if seen[b.Type] {
			return fmt.Errorf("building %d: duplicate type %q", i, b.Type)
		}
		seen[b.Type] = true

		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("building %q: width and height must be positive", b.Type)
		}
		if b.Cost < 0 {
			return fmt.Errorf("building %q: cost cannot be negative", b.Type)
		}
	}
	return nil
}

// Lookup 按类型查找建筑
func (c *BuildingCatalogue) Lookup(buildingType string) (BuildingSpec, error) {
	for _, b := range c.Buildings {
		if b.Type == buildingType {
			return b, nil
		}
	}
	return BuildingSpec{}, fmt.Errorf("%w: %s", ErrUnknownBuilding, buildingType)
}
