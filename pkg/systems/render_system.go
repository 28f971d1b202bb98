package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/coaster/pkg/components"
	"github.com/gonewx/coaster/pkg/ecs"
	"github.com/gonewx/coaster/pkg/render3d"
)

// RenderSystem 三维渲染系统
// 把渲染场景画到软件光栅画布上，再拷贝进 Ebitengine 屏幕
//
// 职责：
//   - 每帧把实体的 TransformComponent 写入其网格槽位
//   - 根据 MeshInstanceComponent.Visible 开关槽位
//   - 驱动软件光栅器渲染整个场景并贴到屏幕
//
// 不包括：
//   - UI 控件与 HUD 由 UIRenderSystem / HUDRenderSystem 叠加绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
	scene         *render3d.Scene
	renderer      *render3d.Renderer
	target        *render3d.ImageTarget
	canvas        *ebiten.Image
}

// NewRenderSystem 创建三维渲染系统，width/height 为画布像素尺寸
func NewRenderSystem(em *ecs.EntityManager, scene *render3d.Scene, width, height int) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		scene:         scene,
		renderer:      render3d.NewRenderer(width, height, true),
		target:        render3d.NewImageTarget(width, height),
		canvas:        ebiten.NewImage(width, height),
	}
}

// SetSkyColor 设置清屏颜色（轨道配色里的天空色）
func (s *RenderSystem) SetSkyColor(c render3d.Color) {
	s.renderer.ClearColor = c
}

// SetWireframe 切换线框渲染
func (s *RenderSystem) SetWireframe(on bool) {
	if on {
		s.renderer.SetRenderMode(render3d.RenderWireframe)
	} else {
		s.renderer.SetRenderMode(render3d.RenderSolidFlat)
	}
}

// Wireframe 返回当前是否为线框模式
func (s *RenderSystem) Wireframe() bool {
	return s.renderer.Mode == render3d.RenderWireframe
}

// Update 同步实体变换到场景槽位
func (s *RenderSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.TransformComponent, *components.MeshInstanceComponent](s.entityManager)
	for _, entityID := range entities {
		tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, entityID)
		mi, _ := ecs.GetComponent[*components.MeshInstanceComponent](s.entityManager, entityID)
		if tf == nil || mi == nil || mi.SlotID < 0 {
			continue
		}
		s.scene.SetMeshEnabled(mi.SlotID, mi.Visible)
		if mi.Visible {
			s.scene.UpdateMeshTransform(mi.SlotID, tf.Matrix())
		}
	}
}

// Draw 渲染场景并贴到屏幕
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.renderer.Render(s.target, s.scene)
	s.target.Blit(s.canvas)
	screen.DrawImage(s.canvas, nil)
}
