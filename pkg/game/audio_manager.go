package game

import (
	"log"

	"github.com/gonewx/parktycoon/pkg/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// soundSource 音效来源，ResourceManager 实现
type soundSource interface {
	ResolvePath(resourceID string) (string, bool)
	LoadSoundEffect(path string) (*audio.Player, error)
}

// AudioManager 音频管理器
//
// 所有音效都通过资源ID播放，音量 = 主音量（静音时为 0）。
// 主音量和静音状态保存在 SettingsManager 中。
type AudioManager struct {
	sounds          soundSource
	settingsManager *SettingsManager         // 可为 nil
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	missing         map[string]bool          // 已知无法加载的资源ID，避免重复报错
	masterVolume    float64                  // 当前生效的主音量
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	am := &AudioManager{
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
		masterVolume:    config.DefaultMasterVolume,
	}
	if rm != nil {
		am.sounds = rm
	}
	if sm != nil {
		settings := sm.GetSettings()
		am.masterVolume = settings.MasterVolume
		if settings.Muted {
			am.masterVolume = 0
		}
	}
	return am
}

// PlaySound 播放音效
//
// 返回：是否成功开始播放（静音或资源缺失时返回 false）
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.masterVolume <= 0 {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.masterVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()

	return true
}

// ToggleMute 主音量在 0 和默认低音量之间切换
func (am *AudioManager) ToggleMute() {
	if am.masterVolume > 0 {
		am.SetMasterVolume(0)
	} else {
		am.SetMasterVolume(config.DefaultMasterVolume)
	}
	log.Printf("[AudioManager] Master volume: %.2f", am.masterVolume)
}

// SetMasterVolume 设置主音量并同步到设置
func (am *AudioManager) SetMasterVolume(volume float64) {
	am.masterVolume = clampVolume(volume)

	if am.settingsManager != nil {
		if am.masterVolume == 0 {
			am.settingsManager.SetMuted(true)
		} else {
			am.settingsManager.SetMuted(false)
			am.settingsManager.SetMasterVolume(am.masterVolume)
		}
	}

	for _, player := range am.soundPlayers {
		player.SetVolume(am.masterVolume)
	}
}

// MasterVolume 返回当前生效的主音量
func (am *AudioManager) MasterVolume() float64 {
	return am.masterVolume
}

// IsMuted 是否静音
func (am *AudioManager) IsMuted() bool {
	return am.masterVolume <= 0
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.sounds == nil {
		return nil
	}

	filePath, ok := am.sounds.ResolvePath(soundID)
	if !ok {
		log.Printf("[AudioManager] Warning: Sound not found: %s", soundID)
		am.missing[soundID] = true
		return nil
	}

	player, err := am.sounds.LoadSoundEffect(filePath)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", soundID, err)
		am.missing[soundID] = true
		return nil
	}
	am.soundPlayers[soundID] = player
	return player
}
