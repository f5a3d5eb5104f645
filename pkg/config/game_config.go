package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// 游戏模式
const (
	ModeHopper = "hopper" // 离散跳格子
	ModeRunner = "runner" // 连续移动
)

// WindowConfig 窗口与启动配置
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度，默认 800
	Height int    `yaml:"height"` // 逻辑屏幕高度，默认 600
	Title  string `yaml:"title"`  // 窗口标题
	Mode   string `yaml:"mode"`   // 启动模式："hopper" 或 "runner"，默认 "hopper"
	Seed   int64  `yaml:"seed"`   // 随机种子，0 表示使用当前时间
}

// GameConfig 全部配置
//
// 配置文件位置: data/config.yaml（已嵌入），可通过 -config 参数覆盖
type GameConfig struct {
	Window WindowConfig `yaml:"window"`
	Hopper HopperConfig `yaml:"hopper"`
	Runner RunnerConfig `yaml:"runner"`
	Input  InputConfig  `yaml:"input"`
}

// DefaultGameConfig 返回全部默认值
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{}
	applyDefaults(cfg)
	return cfg
}

// LoadGameConfig 从 YAML 文件加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *GameConfig: 已填充默认值并通过验证的配置
//   - error: 读取、解析或验证失败
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}

	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("invalid game config in %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 从 YAML 数据解析配置（嵌入的默认配置走这里）
func ParseGameConfig(data []byte) (*GameConfig, error) {
	var cfg GameConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults 为缺失的可选字段设置默认值
func applyDefaults(cfg *GameConfig) {
	if cfg.Window.Width == 0 {
		cfg.Window.Width = 800
	}
	if cfg.Window.Height == 0 {
		cfg.Window.Height = 600
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Roadhop"
	}
	if cfg.Window.Mode == "" {
		cfg.Window.Mode = ModeHopper
	}

	applyHopperDefaults(&cfg.Hopper)
	applyRunnerDefaults(&cfg.Runner)
	applyInputDefaults(&cfg.Input)
}

// Validate 验证全部配置
func (cfg *GameConfig) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Mode != ModeHopper && cfg.Window.Mode != ModeRunner {
		return fmt.Errorf("window.mode must be one of: %s, %s, got %q", ModeHopper, ModeRunner, cfg.Window.Mode)
	}
	if err := cfg.Hopper.Validate(); err != nil {
		return fmt.Errorf("hopper: %w", err)
	}
	if err := cfg.Runner.Validate(); err != nil {
		return fmt.Errorf("runner: %w", err)
	}
	if err := cfg.Input.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	return nil
}
