// Package sound 为模拟事件合成简单的提示音
//
// 不依赖音频素材：每个事件对应一段频率滑变的正弦波。
// SoundManager 通过 ebiten 的 audio 包播放（桌面/移动端），
// BeepPlayer 通过 gopxl/beep 播放（终端前端）。
package sound

import (
	"math"
	"time"

	"github.com/decker502/artillery/pkg/types"
)

// SampleRate 合成使用的采样率
const SampleRate = 48000

// Tone 一段从 StartHz 线性滑变到 EndHz 的正弦音
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Volume   float64 // 0.0 ~ 1.0
}

// cues 事件对应的提示音，未列出的事件不发声
var cues = map[types.Event]Tone{
	types.EventFired:        {StartHz: 180, EndHz: 90, Duration: 140 * time.Millisecond, Volume: 0.5},
	types.EventBounce:       {StartHz: 320, EndHz: 260, Duration: 60 * time.Millisecond, Volume: 0.3},
	types.EventRebound:      {StartHz: 520, EndHz: 480, Duration: 50 * time.Millisecond, Volume: 0.35},
	types.EventSettled:      {StartHz: 200, EndHz: 160, Duration: 80 * time.Millisecond, Volume: 0.25},
	types.EventLevelCleared: {StartHz: 660, EndHz: 990, Duration: 260 * time.Millisecond, Volume: 0.45},
	types.EventVictory:      {StartHz: 523, EndHz: 1046, Duration: 600 * time.Millisecond, Volume: 0.5},
	types.EventGameOver:     {StartHz: 220, EndHz: 110, Duration: 500 * time.Millisecond, Volume: 0.45},
}

// Cue 返回事件对应的提示音
func Cue(e types.Event) (Tone, bool) {
	t, ok := cues[e]
	return t, ok
}

// Samples 返回在 sampleRate 下的采样数
func (t Tone) Samples(sampleRate int) int {
	return int(int64(t.Duration) * int64(sampleRate) / int64(time.Second))
}

// At 返回第 i 个采样的值（-Volume ~ Volume）
//
// 相位按瞬时频率积分，避免滑变时的爆音；首尾 5ms 线性淡入淡出。
func (t Tone) At(i, sampleRate int) float64 {
	n := t.Samples(sampleRate)
	if i < 0 || i >= n {
		return 0
	}

	sec := float64(i) / float64(sampleRate)
	total := t.Duration.Seconds()
	slope := (t.EndHz - t.StartHz) / total
	phase := 2 * math.Pi * (t.StartHz*sec + 0.5*slope*sec*sec)

	fade := float64(sampleRate) * 0.005
	env := 1.0
	if f := float64(i); f < fade {
		env = f / fade
	} else if r := float64(n - 1 - i); r < fade {
		env = r / fade
	}

	return t.Volume * env * math.Sin(phase)
}
