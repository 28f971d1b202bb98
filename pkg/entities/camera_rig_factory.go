package entities

import (
	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/config"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/track"
)

// NewCameraRigEntity 创建环绕相机装配实体
//
// 注视点与初始距离由轨道包围盒推导，俯仰与距离的活动范围、
// 闲置自转参数取全局相机配置。显示值与弹簧目标初始化为同一姿态，
// R 键复位回到这组默认值。
//
// 参数：
//   - em: 实体管理器
//   - geo: 轨道几何（提供注视点与建议半径）
//   - dragIgnoreBelowY: 控制栏上边缘的屏幕 Y，指针落在其下不触发拖拽
//   - autoRotate: 闲置自转开关（来自设置项）
//
// 返回：
//   - 相机装配实体ID
func NewCameraRigEntity(
	em *ecs.EntityManager,
	geo *track.Geometry,
	dragIgnoreBelowY float64,
	autoRotate bool,
) ecs.EntityID {
	entity := em.CreateEntity()

	radius := float64(geo.OrbitRadius)

	ecs.AddComponent(em, entity, &components.CameraRigComponent{
		Mode:   components.CameraModeOrbit,
		Center: geo.Center,

		Yaw:    config.OrbitDefaultYaw,
		Pitch:  config.OrbitDefaultPitch,
		Radius: radius,

		TargetYaw:    config.OrbitDefaultYaw,
		TargetPitch:  config.OrbitDefaultPitch,
		TargetRadius: radius,

		MinPitch:  config.OrbitMinPitch,
		MaxPitch:  config.OrbitMaxPitch,
		MinRadius: radius * config.OrbitMinRadiusFactor,
		MaxRadius: radius * config.OrbitMaxRadiusFactor,

		DragIgnoreBelowY: dragIgnoreBelowY,

		AutoRotate:      autoRotate,
		AutoRotateSpeed: config.OrbitAutoRotateSpeed,
		IdleDelay:       config.OrbitIdleDelaySeconds,

		DefaultYaw:    config.OrbitDefaultYaw,
		DefaultPitch:  config.OrbitDefaultPitch,
		DefaultRadius: radius,
	})

	return entity
}
