package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定轨道的行驶场景，避免循环依赖
type SceneFactory func(trackID string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory // 场景工厂函数，用于创建行驶场景
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		currentScene: nil,
		sceneFactory: nil,
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// 旧场景实现了 Saveable 时先保存状态再切换。
func (sm *SceneManager) SwitchTo(scene Scene) {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		if !saveable.SaveOnExit() {
			log.Printf("[SceneManager] Warning: scene state save failed")
		}
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadTrack 创建指定轨道的行驶场景并切换过去
// trackID: 轨道 id，如 "classic-loop"
func (sm *SceneManager) LoadTrack(trackID string) {
	log.Printf("[SceneManager] 加载轨道: %s", trackID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: SceneFactory 未设置")
		return
	}

	newScene := sm.sceneFactory(trackID)
	if newScene != nil {
		sm.SwitchTo(newScene)
		log.Printf("[SceneManager] 成功切换到轨道: %s", trackID)
	} else {
		log.Printf("[SceneManager] 错误: 无法创建行驶场景: %s", trackID)
	}
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
