package scenes

import (
	"math"

	"github.com/decker502/roadhop/pkg/config"
)

// hopperView 跳格子模式的棋盘到屏幕映射（俯视、正交）
//
// 棋盘横坐标以中心为 0，行号向上递增；镜头只跟随玩家的纵向位置，
// 玩家所在行固定在屏幕高度的 playerRow 处。
type hopperView struct {
	scale      float64 // 每棋盘单位的像素数
	laneHeight float64 // 每行像素高度
	centerX    float64
	playerY    float64 // 镜头所在行中心的屏幕 Y
	height     float64
}

// playerRow 玩家所在行在屏幕上的相对高度
const playerRow = 0.72

// newHopperView 让棋盘两侧各留出一格空间并放入屏幕宽度，
// 同时保证至少能看到 minVisibleLanes 行
func newHopperView(cfg config.HopperConfig, width, height int) hopperView {
	const minVisibleLanes = 8

	w, h := float64(width), float64(height)
	scale := w / (cfg.BoardWidth() + 2*cfg.PositionWidth)
	if maxScale := h / (minVisibleLanes * cfg.PositionWidth); scale > maxScale {
		scale = maxScale
	}
	return hopperView{
		scale:      scale,
		laneHeight: cfg.PositionWidth * scale,
		centerX:    w / 2,
		playerY:    h * playerRow,
		height:     h,
	}
}

// screenX 棋盘横坐标转屏幕 X
func (v hopperView) screenX(x float64) float64 {
	return v.centerX + x*v.scale
}

// laneCenterY 行（可为小数）中心的屏幕 Y
func (v hopperView) laneCenterY(lane, cameraLane float64) float64 {
	return v.playerY - (lane-cameraLane)*v.laneHeight
}

// visibleLanes 屏幕上可见的行号范围 [lo, hi]
func (v hopperView) visibleLanes(cameraLane float64) (lo, hi int) {
	below := (v.height - v.playerY) / v.laneHeight
	above := v.playerY / v.laneHeight
	return int(math.Floor(cameraLane - below - 0.5)), int(math.Ceil(cameraLane + above + 0.5))
}
