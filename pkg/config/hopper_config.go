package config

import "fmt"

// HopperConfig 跳格子模式（离散步进）配置
//
// 所有长度单位为"棋盘单位"（未乘 Zoom 的原始尺寸），时间单位为毫秒。
type HopperConfig struct {
	Columns       int     `yaml:"columns"`       // 列数，默认 17
	PositionWidth float64 `yaml:"positionWidth"` // 单格宽度，默认 42
	Zoom          float64 `yaml:"zoom"`          // 渲染缩放，默认 2
	StepTimeMs    float64 `yaml:"stepTimeMs"`    // 单次跳跃时长，默认 200ms
	MaxScore      int     `yaml:"maxScore"`      // 胜利行号，默认 22
	GooseSize     float64 `yaml:"gooseSize"`     // 玩家碰撞宽度，默认 15
	HopHeight     float64 `yaml:"hopHeight"`     // 跳跃弧线最高点，默认 8

	LaneSpeeds       []float64 `yaml:"laneSpeeds"`       // 车道速度候选值，默认 [2, 2.5, 3]
	RiverSpeedFactor float64   `yaml:"riverSpeedFactor"` // 河道（木头）速度系数，默认 0.7
	ScrollDivisor    float64   `yaml:"scrollDivisor"`    // 每毫秒位移 = speed / ScrollDivisor，默认 32
	WrapMargin       float64   `yaml:"wrapMargin"`       // 障碍物在棋盘外多少格后绕回，默认 2

	CarLength   float64 `yaml:"carLength"`   // 默认 60
	TruckLength float64 `yaml:"truckLength"` // 默认 105
	LogLength   float64 `yaml:"logLength"`   // 默认 80

	TreesPerLane  int `yaml:"treesPerLane"`  // 默认 4
	CarsPerLane   int `yaml:"carsPerLane"`   // 默认 4
	TrucksPerLane int `yaml:"trucksPerLane"` // 默认 3
	LogsPerLane   int `yaml:"logsPerLane"`   // 默认 3

	Weights LaneWeights `yaml:"weights"` // index > 0 时的行类型权重

	InitialLanes int `yaml:"initialLanes"` // 初始行数（0..InitialLanes-1），默认 10
	Lookahead    int `yaml:"lookahead"`    // 玩家（含排队移动）前方保持的行数，默认 9
	KeepBehind   int `yaml:"keepBehind"`   // 落后玩家超过该行数的行被回收，默认 12
}

// LaneWeights 行类型权重
type LaneWeights struct {
	River  float64 `yaml:"river"`
	Forest float64 `yaml:"forest"`
	Car    float64 `yaml:"car"`
	Truck  float64 `yaml:"truck"`
}

// Total 返回权重之和
func (w LaneWeights) Total() float64 {
	return w.River + w.Forest + w.Car + w.Truck
}

// DefaultHopperConfig 返回与原版一致的默认值
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Columns:          17,
		PositionWidth:    42,
		Zoom:             2,
		StepTimeMs:       200,
		MaxScore:         22,
		GooseSize:        15,
		HopHeight:        8,
		LaneSpeeds:       []float64{2, 2.5, 3},
		RiverSpeedFactor: 0.7,
		ScrollDivisor:    32,
		WrapMargin:       2,
		CarLength:        60,
		TruckLength:      105,
		LogLength:        80,
		TreesPerLane:     4,
		CarsPerLane:      4,
		TrucksPerLane:    3,
		LogsPerLane:      3,
		Weights: LaneWeights{
			River:  0.1,
			Forest: 0.3,
			Car:    0.3,
			Truck:  0.3,
		},
		InitialLanes: 10,
		Lookahead:    9,
		KeepBehind:   12,
	}
}

// BoardWidth 棋盘宽度（Columns * PositionWidth）
func (c HopperConfig) BoardWidth() float64 {
	return float64(c.Columns) * c.PositionWidth
}

// applyHopperDefaults 为零值字段填充默认值
func applyHopperDefaults(c *HopperConfig) {
	d := DefaultHopperConfig()
	if c.Columns == 0 {
		c.Columns = d.Columns
	}
	if c.PositionWidth == 0 {
		c.PositionWidth = d.PositionWidth
	}
	if c.Zoom == 0 {
		c.Zoom = d.Zoom
	}
	if c.StepTimeMs == 0 {
		c.StepTimeMs = d.StepTimeMs
	}
	if c.MaxScore == 0 {
		c.MaxScore = d.MaxScore
	}
	if c.GooseSize == 0 {
		c.GooseSize = d.GooseSize
	}
	if c.HopHeight == 0 {
		c.HopHeight = d.HopHeight
	}
	if len(c.LaneSpeeds) == 0 {
		c.LaneSpeeds = d.LaneSpeeds
	}
	if c.RiverSpeedFactor == 0 {
		c.RiverSpeedFactor = d.RiverSpeedFactor
	}
	if c.ScrollDivisor == 0 {
		c.ScrollDivisor = d.ScrollDivisor
	}
	if c.WrapMargin == 0 {
		c.WrapMargin = d.WrapMargin
	}
	if c.CarLength == 0 {
		c.CarLength = d.CarLength
	}
	if c.TruckLength == 0 {
		c.TruckLength = d.TruckLength
	}
	if c.LogLength == 0 {
		c.LogLength = d.LogLength
	}
	if c.TreesPerLane == 0 {
		c.TreesPerLane = d.TreesPerLane
	}
	if c.CarsPerLane == 0 {
		c.CarsPerLane = d.CarsPerLane
	}
	if c.TrucksPerLane == 0 {
		c.TrucksPerLane = d.TrucksPerLane
	}
	if c.LogsPerLane == 0 {
		c.LogsPerLane = d.LogsPerLane
	}
	if c.Weights.Total() == 0 {
		c.Weights = d.Weights
	}
	if c.InitialLanes == 0 {
		c.InitialLanes = d.InitialLanes
	}
	if c.Lookahead == 0 {
		c.Lookahead = d.Lookahead
	}
	if c.KeepBehind == 0 {
		c.KeepBehind = d.KeepBehind
	}
}

// Validate 检查配置合法性
func (c HopperConfig) Validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}
	if c.PositionWidth <= 0 || c.Zoom <= 0 {
		return fmt.Errorf("positionWidth and zoom must be positive")
	}
	if c.StepTimeMs <= 0 {
		return fmt.Errorf("stepTimeMs must be positive, got %.1f", c.StepTimeMs)
	}
	if c.MaxScore < 1 {
		return fmt.Errorf("maxScore must be at least 1, got %d", c.MaxScore)
	}
	if c.ScrollDivisor <= 0 {
		return fmt.Errorf("scrollDivisor must be positive, got %.1f", c.ScrollDivisor)
	}
	for i, s := range c.LaneSpeeds {
		if s <= 0 {
			return fmt.Errorf("laneSpeeds[%d] must be positive, got %.2f", i, s)
		}
	}
	w := c.Weights
	if w.River < 0 || w.Forest < 0 || w.Car < 0 || w.Truck < 0 {
		return fmt.Errorf("lane weights cannot be negative")
	}
	if w.Total() <= 0 {
		return fmt.Errorf("lane weights must sum to a positive value")
	}
	if c.TreesPerLane < 0 || c.CarsPerLane < 0 || c.TrucksPerLane < 0 || c.LogsPerLane < 0 {
		return fmt.Errorf("obstacle counts cannot be negative")
	}
	if c.TreesPerLane >= c.Columns {
		return fmt.Errorf("treesPerLane (%d) must leave at least one free column of %d", c.TreesPerLane, c.Columns)
	}
	if c.InitialLanes < 2 {
		return fmt.Errorf("initialLanes must be at least 2, got %d", c.InitialLanes)
	}
	if c.Lookahead < 1 || c.KeepBehind < 1 {
		return fmt.Errorf("lookahead and keepBehind must be at least 1")
	}
	return nil
}
