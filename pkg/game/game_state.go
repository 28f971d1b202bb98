package game

// GameState 存储全局游戏状态
// 这是一个单例，用于管理跨场景和跨系统的全局状态数据
type GameState struct {
	audioManager    *AudioManager
	settingsManager *SettingsManager
	recordsManager  *RecordsManager
	resourceManager *ResourceManager

	// CurrentTrackID 当前选中的轨道，菜单选择后由行驶场景读取
	CurrentTrackID string
}

// 全局单例实例（这是架构规范允许的唯一全局变量）
var globalGameState *GameState

// GetGameState 返回全局 GameState 单例
// 使用延迟初始化模式，确保整个程序生命周期只有一个实例
func GetGameState() *GameState {
	if globalGameState == nil {
		globalGameState = &GameState{}
	}
	return globalGameState
}

// GetAudioManager 返回音频管理器，未初始化时为 nil
// 调用方必须判空：无声卡环境和测试里音频管理器不存在
func (gs *GameState) GetAudioManager() *AudioManager {
	return gs.audioManager
}

// SetAudioManager 注入音频管理器
func (gs *GameState) SetAudioManager(am *AudioManager) {
	gs.audioManager = am
}

// GetSettingsManager 返回设置管理器，未初始化时为 nil
func (gs *GameState) GetSettingsManager() *SettingsManager {
	return gs.settingsManager
}

// SetSettingsManager 注入设置管理器
func (gs *GameState) SetSettingsManager(sm *SettingsManager) {
	gs.settingsManager = sm
}

// GetRecordsManager 返回行驶记录管理器，未初始化时为 nil
func (gs *GameState) GetRecordsManager() *RecordsManager {
	return gs.recordsManager
}

// SetRecordsManager 注入行驶记录管理器
func (gs *GameState) SetRecordsManager(rm *RecordsManager) {
	gs.recordsManager = rm
}

// GetResourceManager 返回资源管理器，未初始化时为 nil
func (gs *GameState) GetResourceManager() *ResourceManager {
	return gs.resourceManager
}

// SetResourceManager 注入资源管理器
func (gs *GameState) SetResourceManager(rm *ResourceManager) {
	gs.resourceManager = rm
}
