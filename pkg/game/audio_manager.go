package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	synth "github.com/gonewx/coaster/internal/audio"
)

// 音效资源 ID
const (
	// SoundClick 按钮点击
	SoundClick = "SOUND_CLICK"
	// SoundToggle 复选框切换
	SoundToggle = "SOUND_TOGGLE"
	// SoundWhoosh 行驶方向切换
	SoundWhoosh = "SOUND_WHOOSH"
	// SoundLap 跨越起点（完成一圈）
	SoundLap = "SOUND_LAP"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理所有音效和风声的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 提供便捷的播放接口
//
// 设计原则：
//   - 中心化管理：所有音频播放都通过 AudioManager
//   - 与设置联动：自动应用 SettingsManager 中的音量设置
//   - 全部音频程序化合成，无资源文件，通过资源 ID 播放
type AudioManager struct {
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器：资源 ID -> 播放器
	windPlayer      *audio.Player            // 风声循环播放器
	windLevel       float64                  // 当前风声强度 0.0 ~ 1.0
}

// NewAudioManager 创建新的音频管理器
// 合成所有音效并预创建播放器，风声以音量 0 启动循环
//
// 参数：
//   - audioContext: 全局音频上下文
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(audioContext *audio.Context, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}

	rate := audioContext.SampleRate()
	streams := map[string]*synth.PCMStream{
		SoundClick:  synth.Click(rate),
		SoundToggle: synth.Toggle(rate),
		SoundWhoosh: synth.Whoosh(rate),
		SoundLap:    synth.Chime(rate),
	}
	for id, stream := range streams {
		player, err := audioContext.NewPlayer(stream)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to create player for %s: %v", id, err)
			continue
		}
		am.soundPlayers[id] = player
	}

	wind := synth.WindLoop(rate)
	windPlayer, err := audioContext.NewPlayer(audio.NewInfiniteLoop(wind, wind.Length()))
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to create wind player: %v", err)
	} else {
		windPlayer.SetVolume(0)
		windPlayer.Play()
		am.windPlayer = windPlayer
	}

	return am
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放后停止
//
// 参数：
//   - soundID: 音效资源 ID（如 SoundClick, SoundLap）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	// 检查音效是否启用
	if am.settingsManager != nil {
		if !am.settingsManager.GetSettings().SoundEnabled {
			return false
		}
	}

	player, exists := am.soundPlayers[soundID]
	if !exists {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// SetWindLevel 设置风声强度
// 行驶系统每帧按 当前速度/最高速度 调用，暂停时传 0
//
// 参数：
//   - level: 强度 0.0 ~ 1.0，实际音量 = level × WindVolume 设置
func (am *AudioManager) SetWindLevel(level float64) {
	am.windLevel = clampVolume(level)
	am.applyWindVolume()
}

// WindLevel 返回当前风声强度
func (am *AudioManager) WindLevel() float64 {
	return am.windLevel
}

// SetSoundVolume 设置音效音量
// 此方法会影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
}

// SetWindVolume 设置风声音量，立即应用到循环播放器
func (am *AudioManager) SetWindVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetWindVolume(volume)
	}
	am.applyWindVolume()
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// GetWindVolume 获取当前风声音量
func (am *AudioManager) GetWindVolume() float64 {
	return am.getWindVolume()
}

// applyWindVolume 把强度与音量设置合成为播放器音量
func (am *AudioManager) applyWindVolume() {
	if am.windPlayer == nil {
		return
	}
	volume := am.windLevel * am.getWindVolume()
	if am.settingsManager != nil && !am.settingsManager.GetSettings().WindEnabled {
		volume = 0
	}
	am.windPlayer.SetVolume(volume)
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}

// getWindVolume 获取风声音量设置
func (am *AudioManager) getWindVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().WindVolume
	}
	return 0.6 // 默认值
}
