package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/decker502/artillery/pkg/types"
)

// ToneStreamer 把 Tone 作为 beep.Streamer 输出
type ToneStreamer struct {
	tone Tone
	sr   int
	pos  int
}

// NewToneStreamer 创建提示音流
func NewToneStreamer(t Tone, sr beep.SampleRate) *ToneStreamer {
	return &ToneStreamer{tone: t, sr: int(sr)}
}

// Stream 实现 beep.Streamer
func (s *ToneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	total := s.tone.Samples(s.sr)
	if s.pos >= total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= total {
			return i, true
		}
		v := s.tone.At(s.pos, s.sr)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

// Err 实现 beep.Streamer
func (s *ToneStreamer) Err() error {
	return nil
}

// BeepPlayer 终端前端使用的播放器
// Initialize 失败（没有音频设备）时保持静默
type BeepPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewBeepPlayer 创建播放器
func NewBeepPlayer(volume float64) *BeepPlayer {
	return &BeepPlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize 打开扬声器并开始播放混音器
func (bp *BeepPlayer) Initialize() error {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if bp.initialized {
		return nil
	}

	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(bp.mixer)
	bp.initialized = true
	return nil
}

// Play 播放事件提示音
func (bp *BeepPlayer) Play(e types.Event) {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if !bp.initialized || bp.volume <= 0 {
		return
	}
	tone, ok := Cue(e)
	if !ok {
		return
	}
	tone.Volume *= bp.volume

	speaker.Lock()
	bp.mixer.Add(NewToneStreamer(tone, beep.SampleRate(SampleRate)))
	speaker.Unlock()
}

// Cleanup 停止所有声音
func (bp *BeepPlayer) Cleanup() {
	bp.mu.Lock()
	defer bp.mu.Unlock()

	if !bp.initialized {
		return
	}
	speaker.Lock()
	bp.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	bp.initialized = false
}
