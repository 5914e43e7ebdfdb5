package sound

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/decker502/artillery/pkg/types"
)

// TestCueCoverage 测试需要发声的事件都有提示音
func TestCueCoverage(t *testing.T) {
	for _, e := range []types.Event{
		types.EventFired, types.EventBounce, types.EventRebound, types.EventSettled,
		types.EventLevelCleared, types.EventVictory, types.EventGameOver,
	} {
		tone, ok := Cue(e)
		if !ok {
			t.Errorf("no cue for %s", e)
			continue
		}
		if tone.Duration <= 0 || tone.Volume <= 0 || tone.Volume > 1 {
			t.Errorf("cue for %s is invalid: %+v", e, tone)
		}
	}

	if _, ok := Cue(types.EventOutOfBounds); ok {
		t.Error("out-of-bounds should be silent")
	}
}

// TestToneEnvelope 测试采样幅度和首尾淡入淡出
func TestToneEnvelope(t *testing.T) {
	tone := Tone{StartHz: 440, EndHz: 880, Duration: 100 * time.Millisecond, Volume: 0.5}
	n := tone.Samples(SampleRate)
	if n != 4800 {
		t.Fatalf("Samples() = %d, want 4800", n)
	}

	if v := tone.At(0, SampleRate); v != 0 {
		t.Errorf("first sample = %v, want 0", v)
	}
	if v := tone.At(n-1, SampleRate); v != 0 {
		t.Errorf("last sample = %v, want 0", v)
	}
	if v := tone.At(n, SampleRate); v != 0 {
		t.Errorf("sample past the end = %v, want 0", v)
	}

	for i := 0; i < n; i++ {
		if math.Abs(tone.At(i, SampleRate)) > 0.5+1e-12 {
			t.Fatalf("sample %d exceeds volume", i)
		}
	}
}

// TestSynthesize 测试 PCM 长度和双声道一致
func TestSynthesize(t *testing.T) {
	tone := Tone{StartHz: 300, EndHz: 300, Duration: 10 * time.Millisecond, Volume: 1}
	pcm := Synthesize(tone, SampleRate)

	if len(pcm) != 480*4 {
		t.Fatalf("len = %d, want %d", len(pcm), 480*4)
	}
	for i := 0; i < len(pcm); i += 4 {
		l := binary.LittleEndian.Uint16(pcm[i:])
		r := binary.LittleEndian.Uint16(pcm[i+2:])
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
	}
}

// TestToneStreamer 测试流在提示音结束时停止
func TestToneStreamer(t *testing.T) {
	tone := Tone{StartHz: 300, EndHz: 300, Duration: 10 * time.Millisecond, Volume: 1}
	var s beep.Streamer = NewToneStreamer(tone, beep.SampleRate(SampleRate))

	buf := make([][2]float64, 300)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if total != 480 {
		t.Errorf("streamed %d samples, want 480", total)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

// TestSoundManagerWithoutContext 测试无音频上下文时静默
func TestSoundManagerWithoutContext(t *testing.T) {
	sm := NewSoundManager(nil, nil)
	if sm.Play(types.EventFired) {
		t.Error("Play() without audio context reported playback")
	}
}
