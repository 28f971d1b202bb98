package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// GameSettings 全局游戏设置
// 所有设置都是全局的，不区分轨道
type GameSettings struct {
	// 音频设置
	SoundVolume  float64 `yaml:"soundVolume"`  // 音效音量 0.0 ~ 1.0
	WindVolume   float64 `yaml:"windVolume"`   // 风声音量 0.0 ~ 1.0
	SoundEnabled bool    `yaml:"soundEnabled"` // 音效开关
	WindEnabled  bool    `yaml:"windEnabled"`  // 风声开关

	// 显示设置
	Fullscreen bool `yaml:"fullscreen"` // 启动时是否全屏
	Wireframe  bool `yaml:"wireframe"`  // 线框渲染
	ShowGrid   bool `yaml:"showGrid"`   // 地面网格线

	// 相机设置
	AutoRotate bool `yaml:"autoRotate"` // 闲置时自动环绕

	// LastTrack 上次行驶的轨道 id，菜单默认选中它
	LastTrack string `yaml:"lastTrack"`
}

// DefaultSettings 返回默认设置
func DefaultSettings() *GameSettings {
	return &GameSettings{
		SoundVolume:  0.8,
		WindVolume:   0.6,
		SoundEnabled: true,
		WindEnabled:  true,
		Fullscreen:   false,
		Wireframe:    false,
		ShowGrid:     true,
		AutoRotate:   true,
		LastTrack:    "",
	}
}

// SettingsManager 设置管理器
// 负责设置的加载、保存和内存管理
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	settings     *GameSettings  // 当前设置
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 如果加载设置失败返回错误（不影响创建）
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		settings:     DefaultSettings(),
	}

	// 尝试加载已保存的设置
	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或文件不存在，使用默认设置
func (sm *SettingsManager) Load() error {
	// 降级模式：无法持久化，使用默认设置
	if sm.gdataManager == nil {
		sm.settings = DefaultSettings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.settings = DefaultSettings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loadedSettings GameSettings
	if err := yaml.Unmarshal(data, &loadedSettings); err != nil {
		sm.settings = DefaultSettings()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.settings = &loadedSettings
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// GetSettings 获取当前设置
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量，限制在 0.0 ~ 1.0
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

// SetWindVolume 设置风声音量，限制在 0.0 ~ 1.0
// 仅修改内存中的设置，需调用 Save() 持久化
func (sm *SettingsManager) SetWindVolume(volume float64) {
	sm.settings.WindVolume = clampVolume(volume)
}

// SetSoundEnabled 设置音效开关
func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetWindEnabled 设置风声开关
func (sm *SettingsManager) SetWindEnabled(enabled bool) {
	sm.settings.WindEnabled = enabled
}

// SetFullscreen 设置全屏模式
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// SetWireframe 设置线框渲染
func (sm *SettingsManager) SetWireframe(enabled bool) {
	sm.settings.Wireframe = enabled
}

// SetShowGrid 设置地面网格线
func (sm *SettingsManager) SetShowGrid(enabled bool) {
	sm.settings.ShowGrid = enabled
}

// SetAutoRotate 设置闲置自动环绕
func (sm *SettingsManager) SetAutoRotate(enabled bool) {
	sm.settings.AutoRotate = enabled
}

// SetLastTrack 记录上次行驶的轨道
func (sm *SettingsManager) SetLastTrack(trackID string) {
	sm.settings.LastTrack = trackID
}

// clampVolume 将音量值限制在 0.0 ~ 1.0 范围内
func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
