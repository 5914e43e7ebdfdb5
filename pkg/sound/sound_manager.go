package sound

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/artillery/pkg/game"
	"github.com/decker502/artillery/pkg/types"
)

// SoundManager 通过 ebiten 播放事件提示音
//
// 职责：
//   - 首次使用时合成 PCM 并缓存播放器
//   - 按 SettingsManager 中的开关和音量播放
//
// context 为 nil 时所有播放静默忽略。
type SoundManager struct {
	context  *audio.Context
	settings *game.SettingsManager
	players  map[types.Event]*audio.Player
}

// NewSoundManager 创建音效管理器
//
// 参数：
//   - ctx: ebiten 音频上下文，采样率必须为 SampleRate，可为 nil
//   - settings: 设置管理器，可为 nil（总是以默认音量播放）
func NewSoundManager(ctx *audio.Context, settings *game.SettingsManager) *SoundManager {
	return &SoundManager{
		context:  ctx,
		settings: settings,
		players:  make(map[types.Event]*audio.Player),
	}
}

// Play 播放事件的提示音
//
// 返回：
//   - bool: 是否实际播放
func (sm *SoundManager) Play(e types.Event) bool {
	if sm.context == nil {
		return false
	}

	volume := 1.0
	if sm.settings != nil {
		s := sm.settings.GetSettings()
		if !s.SoundEnabled {
			return false
		}
		volume = s.SoundVolume
	}

	player := sm.player(e)
	if player == nil {
		return false
	}

	player.SetVolume(volume)
	if err := player.Rewind(); err != nil {
		log.Printf("[SoundManager] Failed to rewind %s: %v", e, err)
		return false
	}
	player.Play()
	return true
}

// PlayAll 依次播放一批事件
func (sm *SoundManager) PlayAll(events []types.Event) {
	for _, e := range events {
		sm.Play(e)
	}
}

func (sm *SoundManager) player(e types.Event) *audio.Player {
	if p, ok := sm.players[e]; ok {
		return p
	}

	tone, ok := Cue(e)
	if !ok {
		return nil
	}

	p := sm.context.NewPlayerFromBytes(Synthesize(tone, SampleRate))
	sm.players[e] = p
	log.Printf("[SoundManager] Synthesized cue for %s (%v)", e, tone.Duration)
	return p
}
