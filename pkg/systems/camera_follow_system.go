package systems

import (
	"github.com/decker502/roadhop/pkg/components"
	"github.com/decker502/roadhop/pkg/config"
	"github.com/decker502/roadhop/pkg/ecs"
	"github.com/decker502/roadhop/pkg/utils"
)

// CameraFollowSystem 连续模式的镜头跟随
//
// 镜头 Z 紧跟玩家（加固定偏移），X 只跟随玩家 X 的一部分，高度固定。
type CameraFollowSystem struct {
	em           *ecs.EntityManager
	cfg          config.RunnerConfig
	cameraEntity ecs.EntityID // 镜头实体ID
}

// NewCameraFollowSystem 创建镜头跟随系统并创建镜头实体
func NewCameraFollowSystem(em *ecs.EntityManager, cfg config.RunnerConfig) *CameraFollowSystem {
	cs := &CameraFollowSystem{em: em, cfg: cfg}
	cs.Reset()
	return cs
}

// Reset 重新创建镜头实体，放在初始位置（实体管理器被清空后调用）
func (cs *CameraFollowSystem) Reset() {
	cs.cameraEntity = cs.em.CreateEntity()
	ecs.AddComponent(cs.em, cs.cameraEntity, &components.CameraComponent{
		Position: cs.cfg.CameraOffset.Vec3(),
	})
}

// Update 将镜头移动到玩家上方后方
func (cs *CameraFollowSystem) Update(dt float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.RunnerPlayerComponent, *components.TransformComponent](cs.em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](cs.em, id)
		p := tr.Position

		cam.Position = utils.Vec3{
			X: p.X * cs.cfg.CameraFollow,
			Y: cs.cfg.CameraOffset.Y,
			Z: p.Z + cs.cfg.CameraOffset.Z,
		}
		cam.LookAt = utils.Vec3{X: p.X, Y: 0, Z: p.Z}
		return
	}
}

// Camera 当前镜头状态
func (cs *CameraFollowSystem) Camera() components.CameraComponent {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.em, cs.cameraEntity)
	if !ok {
		return components.CameraComponent{}
	}
	return *cam
}
