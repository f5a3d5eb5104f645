package config

import (
	"fmt"

	"github.com/decker502/roadhop/pkg/utils"
)

// Vec3Config YAML 中的三维向量
type Vec3Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Vec3 转换为 utils.Vec3
func (v Vec3Config) Vec3() utils.Vec3 {
	return utils.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// BoxConfig 碰撞盒尺寸（Size）与相对实体原点的中心偏移（Center）
type BoxConfig struct {
	Size   Vec3Config `yaml:"size"`
	Center Vec3Config `yaml:"center"`
}

// RunnerConfig 连续移动模式配置
//
// 长度单位为世界单位，速度单位为 世界单位/秒。
type RunnerConfig struct {
	LaneWidth      float64 `yaml:"laneWidth"`      // 行宽（Z 方向），默认 2
	InitialLanes   int     `yaml:"initialLanes"`   // 初始行数，默认 20
	RoadChance     float64 `yaml:"roadChance"`     // 生成公路的概率，默认 0.7
	SafeStartLanes int     `yaml:"safeStartLanes"` // 初始阶段前 N 行不放车，默认 3
	MaxCarsPerLane int     `yaml:"maxCarsPerLane"` // 每条公路 1..N 辆车，默认 2

	CarSpeedMin       float64 `yaml:"carSpeedMin"`       // 默认 1.2
	CarSpeedMax       float64 `yaml:"carSpeedMax"`       // 默认 3.0
	CarSpawnHalfWidth float64 `yaml:"carSpawnHalfWidth"` // 车辆初始 X ∈ [-w, w)，默认 5

	MaxRoads   int     `yaml:"maxRoads"`   // 超过后回收最旧的行，默认 25
	SpawnAhead float64 `yaml:"spawnAhead"` // 玩家距最前行小于该距离时生成新行，默认 10
	FallOffX   float64 `yaml:"fallOffX"`   // |x| 超过即出界，默认 12
	DespawnX   float64 `yaml:"despawnX"`   // 车辆 |x| 超过即移除，默认 20

	MoveDistance float64 `yaml:"moveDistance"` // 单次移动距离，默认 2
	MoveSpeed    float64 `yaml:"moveSpeed"`    // 移动速度，默认 12
	SnapDistance float64 `yaml:"snapDistance"` // 距目标小于该值时吸附，默认 0.1
	BaseHeight   float64 `yaml:"baseHeight"`   // 玩家与车辆的基准高度，默认 0.5
	HopHeight    float64 `yaml:"hopHeight"`    // 跳跃高度，默认 0.3

	PlayerBox BoxConfig `yaml:"playerBox"`
	CarBox    BoxConfig `yaml:"carBox"`

	CameraOffset Vec3Config `yaml:"cameraOffset"` // 默认 (0, 15, 15)
	CameraFollow float64    `yaml:"cameraFollow"` // 镜头 X 跟随系数，默认 0.3
}

// DefaultRunnerConfig 返回与原版一致的默认值（原版按帧计的速度已换算为每秒，60 FPS）
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		LaneWidth:         2,
		InitialLanes:      20,
		RoadChance:        0.7,
		SafeStartLanes:    3,
		MaxCarsPerLane:    2,
		CarSpeedMin:       1.2,
		CarSpeedMax:       3.0,
		CarSpawnHalfWidth: 5,
		MaxRoads:          25,
		SpawnAhead:        10,
		FallOffX:          12,
		DespawnX:          20,
		MoveDistance:      2,
		MoveSpeed:         12,
		SnapDistance:      0.1,
		BaseHeight:        0.5,
		HopHeight:         0.3,
		PlayerBox: BoxConfig{
			Size:   Vec3Config{X: 0.6, Y: 1.3, Z: 0.6},
			Center: Vec3Config{Y: 0.65},
		},
		CarBox: BoxConfig{
			Size:   Vec3Config{X: 1.2, Y: 0.7, Z: 1.0},
			Center: Vec3Config{Y: 0.35},
		},
		CameraOffset: Vec3Config{X: 0, Y: 15, Z: 15},
		CameraFollow: 0.3,
	}
}

func applyRunnerDefaults(c *RunnerConfig) {
	d := DefaultRunnerConfig()
	if c.LaneWidth == 0 {
		c.LaneWidth = d.LaneWidth
	}
	if c.InitialLanes == 0 {
		c.InitialLanes = d.InitialLanes
	}
	if c.RoadChance == 0 {
		c.RoadChance = d.RoadChance
	}
	if c.SafeStartLanes == 0 {
		c.SafeStartLanes = d.SafeStartLanes
	}
	if c.MaxCarsPerLane == 0 {
		c.MaxCarsPerLane = d.MaxCarsPerLane
	}
	if c.CarSpeedMin == 0 && c.CarSpeedMax == 0 {
		c.CarSpeedMin = d.CarSpeedMin
		c.CarSpeedMax = d.CarSpeedMax
	}
	if c.CarSpawnHalfWidth == 0 {
		c.CarSpawnHalfWidth = d.CarSpawnHalfWidth
	}
	if c.MaxRoads == 0 {
		c.MaxRoads = d.MaxRoads
	}
	if c.SpawnAhead == 0 {
		c.SpawnAhead = d.SpawnAhead
	}
	if c.FallOffX == 0 {
		c.FallOffX = d.FallOffX
	}
	if c.DespawnX == 0 {
		c.DespawnX = d.DespawnX
	}
	if c.MoveDistance == 0 {
		c.MoveDistance = d.MoveDistance
	}
	if c.MoveSpeed == 0 {
		c.MoveSpeed = d.MoveSpeed
	}
	if c.SnapDistance == 0 {
		c.SnapDistance = d.SnapDistance
	}
	if c.BaseHeight == 0 {
		c.BaseHeight = d.BaseHeight
	}
	if c.HopHeight == 0 {
		c.HopHeight = d.HopHeight
	}
	if c.PlayerBox.Size == (Vec3Config{}) {
		c.PlayerBox = d.PlayerBox
	}
	if c.CarBox.Size == (Vec3Config{}) {
		c.CarBox = d.CarBox
	}
	if c.CameraOffset == (Vec3Config{}) {
		c.CameraOffset = d.CameraOffset
	}
	if c.CameraFollow == 0 {
		c.CameraFollow = d.CameraFollow
	}
}

// Validate 检查配置合法性
func (c RunnerConfig) Validate() error {
	if c.LaneWidth <= 0 {
		return fmt.Errorf("laneWidth must be positive, got %.2f", c.LaneWidth)
	}
	if c.InitialLanes < 1 {
		return fmt.Errorf("initialLanes must be at least 1, got %d", c.InitialLanes)
	}
	if c.RoadChance < 0 || c.RoadChance > 1 {
		return fmt.Errorf("roadChance must be within [0, 1], got %.2f", c.RoadChance)
	}
	if c.MaxCarsPerLane < 1 {
		return fmt.Errorf("maxCarsPerLane must be at least 1, got %d", c.MaxCarsPerLane)
	}
	if c.CarSpeedMin < 0 || c.CarSpeedMin > c.CarSpeedMax {
		return fmt.Errorf("car speed range invalid: min(%.2f) > max(%.2f)", c.CarSpeedMin, c.CarSpeedMax)
	}
	if c.MaxRoads < c.InitialLanes {
		return fmt.Errorf("maxRoads (%d) must be >= initialLanes (%d)", c.MaxRoads, c.InitialLanes)
	}
	if c.MoveDistance <= 0 || c.MoveSpeed <= 0 {
		return fmt.Errorf("moveDistance and moveSpeed must be positive")
	}
	if c.SnapDistance <= 0 || c.SnapDistance >= c.MoveDistance {
		return fmt.Errorf("snapDistance must be within (0, moveDistance), got %.2f", c.SnapDistance)
	}
	if c.FallOffX <= 0 || c.DespawnX <= 0 {
		return fmt.Errorf("fallOffX and despawnX must be positive")
	}
	for name, b := range map[string]BoxConfig{"playerBox": c.PlayerBox, "carBox": c.CarBox} {
		if b.Size.X <= 0 || b.Size.Y <= 0 || b.Size.Z <= 0 {
			return fmt.Errorf("%s size must be positive on every axis", name)
		}
	}
	return nil
}
