package sound

import "encoding/binary"

// Synthesize 把提示音渲染为 16 位小端立体声 PCM（ebiten audio 使用的格式）
func Synthesize(t Tone, sampleRate int) []byte {
	n := t.Samples(sampleRate)
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := int16(t.At(i, sampleRate) * 32767)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}
