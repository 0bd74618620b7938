package config

import (
	"fmt"

	"github.com/gonewx/parktycoon/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ParkConfig 公园场景配置
type ParkConfig struct {
	StartingCash     int     `yaml:"startingCash"`     // 初始现金
	StartingMeat     int     `yaml:"startingMeat"`     // 初始肉量
	Admission        int     `yaml:"admission"`        // 初始门票价格
	Employees        int     `yaml:"employees"`        // 初始员工数
	DayLengthSeconds float64 `yaml:"dayLengthSeconds"` // 每天时长（秒），默认 30
	CameraZoom       float64 `yaml:"cameraZoom"`       // 摄像机缩放，默认 2
	MapPath          string  `yaml:"mapPath"`          // Tiled 地图路径
	BuildingsPath    string  `yaml:"buildingsPath"`    // 建筑目录路径
	ResourcesPath    string  `yaml:"resourcesPath"`    // 资源配置路径
}

// LoadParkConfig 加载公园配置
func LoadParkConfig(path string) (*ParkConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read park config %s: %w", path, err)
	}

	cfg, err := ParseParkConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid park config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseParkConfig 解析公园配置 YAML
func ParseParkConfig(data []byte) (*ParkConfig, error) {
	var cfg ParkConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse park config YAML: %w", err)
	}

	applyParkDefaults(&cfg)

	if err := validateParkConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyParkDefaults 为缺失的可选字段设置默认值
func applyParkDefaults(cfg *ParkConfig) {
	if cfg.DayLengthSeconds == 0 {
		cfg.DayLengthSeconds = DefaultDayLengthSeconds
	}
	if cfg.CameraZoom == 0 {
		cfg.CameraZoom = DefaultCameraZoom
	}
	if cfg.MapPath == "" {
		cfg.MapPath = "data/maps/park.json"
	}
	if cfg.BuildingsPath == "" {
		cfg.BuildingsPath = "data/buildings.yaml"
	}
	if cfg.ResourcesPath == "" {
		cfg.ResourcesPath = "data/resources.yaml"
	}
}

func validateParkConfig(cfg *ParkConfig) error {
	if cfg.StartingCash < 0 {
		return fmt.Errorf("startingCash cannot be negative")
	}
	if cfg.Admission < MinAdmission || cfg.Admission > MaxAdmission {
		return fmt.Errorf("admission must be within [%d, %d], got %d", MinAdmission, MaxAdmission, cfg.Admission)
	}
	if cfg.DayLengthSeconds < 0 {
		return fmt.Errorf("dayLengthSeconds cannot be negative")
	}
	if cfg.CameraZoom < 0 {
		return fmt.Errorf("cameraZoom cannot be negative")
	}
	return nil
}
