package scenes

import (
	"math"

	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/utils"
)

// projector 透视投影，由镜头位置和注视点构造
type projector struct {
	eye                utils.Vec3
	right, up, forward utils.Vec3
	focal              float64
	centerX, centerY   float64
	near               float64
}

// cameraFOV 垂直视角（度）
const cameraFOV = 75

// newProjector 为当前屏幕尺寸构造投影
// 世界 Y 轴朝上
func newProjector(cam components.CameraComponent, width, height int) projector {
	forward := normalize(sub(cam.LookAt, cam.Position))
	right := normalize(cross(forward, utils.Vec3{Y: 1}))
	up := cross(right, forward)

	h := float64(height)
	return projector{
		eye:     cam.Position,
		right:   right,
		up:      up,
		forward: forward,
		focal:   h / 2 / math.Tan(cameraFOV*math.Pi/360),
		centerX: float64(width) / 2,
		centerY: h / 2,
		near:    0.1,
	}
}

// project 世界坐标转屏幕坐标
// 返回: 点在镜头后方（或过近）时 ok 为 false
func (p projector) project(v utils.Vec3) (point, bool) {
	d := sub(v, p.eye)
	z := dot(d, p.forward)
	if z < p.near {
		return point{}, false
	}
	return point{
		X: p.centerX + dot(d, p.right)/z*p.focal,
		Y: p.centerY - dot(d, p.up)/z*p.focal,
	}, true
}

// projectAll 投影多边形的所有顶点，任一顶点不可见则返回 false
func (p projector) projectAll(vs []utils.Vec3, out []point) ([]point, bool) {
	out = out[:0]
	for _, v := range vs {
		pt, ok := p.project(v)
		if !ok {
			return out, false
		}
		out = append(out, pt)
	}
	return out, true
}

func sub(a, b utils.Vec3) utils.Vec3 {
	return a.Add(b.Scale(-1))
}

func dot(a, b utils.Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b utils.Vec3) utils.Vec3 {
	return utils.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v utils.Vec3) utils.Vec3 {
	l := math.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}
