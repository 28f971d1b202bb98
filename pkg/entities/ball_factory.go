package entities

import (
	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/track"
)

// NewBallEntity 创建沿轨道行驶的小球实体
//
// 小球网格已由调用方加入渲染场景，这里只登记槽位并挂上行驶状态；
// 行驶系统每帧推进 Progress 并写回 TransformComponent。
//
// 参数：
//   - em: 实体管理器
//   - slotID: 小球网格在渲染场景中的槽位
//   - cfg: 轨道配置（提供初速与前视距离）
//
// 返回：
//   - 小球实体ID
func NewBallEntity(em *ecs.EntityManager, slotID int, cfg *track.Config) ecs.EntityID {
	entity := em.CreateEntity()

	ecs.AddComponent(em, entity, &components.RideComponent{
		Progress:    0,
		Direction:   1,
		SpeedMPS:    cfg.Speed.Initial,
		SpeedTarget: cfg.Speed.Initial,
		LookAhead:   cfg.LookAhead,
	})

	ecs.AddComponent(em, entity, &components.TransformComponent{})

	ecs.AddComponent(em, entity, &components.MeshInstanceComponent{
		SlotID:  slotID,
		Visible: true,
	})

	return entity
}
