// Package audio synthesizes the game's sound effects as in-memory PCM streams.
// All audio is generated procedurally; there are no audio asset files.
package audio

import (
	"fmt"
	"io"
	"math"
	"math/rand"
)

// PCMStream is an in-memory 16-bit little-endian stereo PCM stream.
// It implements io.ReadSeeker plus Length(), which is what Ebitengine's
// audio.Player and audio.NewInfiniteLoop expect.
type PCMStream struct {
	data       []byte
	sampleRate int64
	offset     int64
}

// Read reads PCM data into p.
// Implements io.Reader interface.
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
// Implements io.Seeker interface.
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the PCM data in bytes.
// Required by Ebitengine's audio.Player.
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// SampleRate returns the sample rate of the stream in Hz.
func (s *PCMStream) SampleRate() int64 {
	return s.sampleRate
}

// bytesPerFrame is one stereo 16-bit sample pair.
const bytesPerFrame = 4

// fromSamples packs mono float samples in [-1,1] into a stereo stream.
func fromSamples(sampleRate int, samples []float64) *PCMStream {
	data := make([]byte, 0, len(samples)*bytesPerFrame)
	for _, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		s := int16(v * 32767)
		lo := byte(s)
		hi := byte(s >> 8)
		// 左右声道写入同一采样
		data = append(data, lo, hi, lo, hi)
	}
	return &PCMStream{data: data, sampleRate: int64(sampleRate)}
}

// tone appends a decaying sine into dst starting at sample offset start.
// decay is the exponential damping rate in 1/seconds.
func tone(dst []float64, sampleRate int, start int, freq, duration, gain, decay float64) {
	n := int(duration * float64(sampleRate))
	for i := 0; i < n; i++ {
		idx := start + i
		if idx >= len(dst) {
			break
		}
		t := float64(i) / float64(sampleRate)
		// 首尾几毫秒线性整形，避免爆音
		env := math.Exp(-decay * t)
		if edge := t * 400; edge < 1 {
			env *= edge
		}
		dst[idx] += gain * env * math.Sin(2*math.Pi*freq*t)
	}
}

// Click synthesizes a short UI click blip.
func Click(sampleRate int) *PCMStream {
	n := int(0.06 * float64(sampleRate))
	samples := make([]float64, n)
	tone(samples, sampleRate, 0, 1568, 0.06, 0.35, 70)
	return fromSamples(sampleRate, samples)
}

// Toggle synthesizes the checkbox flip sound, a quick falling two-tone.
func Toggle(sampleRate int) *PCMStream {
	n := int(0.11 * float64(sampleRate))
	samples := make([]float64, n)
	tone(samples, sampleRate, 0, 988, 0.05, 0.30, 60)
	tone(samples, sampleRate, int(0.05*float64(sampleRate)), 659, 0.06, 0.30, 55)
	return fromSamples(sampleRate, samples)
}

// Whoosh synthesizes the direction-change swish, a short pitch slide.
func Whoosh(sampleRate int) *PCMStream {
	n := int(0.18 * float64(sampleRate))
	samples := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		p := t / 0.18
		freq := 880 - 560*p
		env := math.Sin(math.Pi * p) // 渐入渐出
		samples[i] += 0.28 * env * math.Sin(2*math.Pi*freq*t)
	}
	return fromSamples(sampleRate, samples)
}

// Chime synthesizes the lap chime, two rising bell notes.
func Chime(sampleRate int) *PCMStream {
	n := int(0.55 * float64(sampleRate))
	samples := make([]float64, n)
	tone(samples, sampleRate, 0, 659.25, 0.45, 0.28, 9)
	tone(samples, sampleRate, int(0.12*float64(sampleRate)), 987.77, 0.43, 0.26, 8)
	return fromSamples(sampleRate, samples)
}

// windSeconds is the length of one wind loop segment.
const windSeconds = 4.0

// WindLoop synthesizes a seamless wind bed, low-pass filtered noise with
// a slow amplitude wobble. The tail is crossfaded into the head so the
// segment loops without a click.
func WindLoop(sampleRate int) *PCMStream {
	rng := rand.New(rand.NewSource(7))

	fade := int(0.25 * float64(sampleRate))
	n := int(windSeconds * float64(sampleRate))
	raw := make([]float64, n+fade)

	// 一阶低通把白噪声压成风声的闷响
	const alpha = 0.035
	lp := 0.0
	for i := range raw {
		lp += alpha * (rng.Float64()*2 - 1 - lp)
		t := float64(i) / float64(sampleRate)
		wobble := 0.8 + 0.2*math.Sin(2*math.Pi*0.37*t)
		raw[i] = lp * wobble * 1.8
	}

	// 尾段叠进首段，保证循环无缝
	samples := raw[:n]
	for i := 0; i < fade; i++ {
		w := float64(i) / float64(fade)
		samples[i] = samples[i]*w + raw[n+i]*(1-w)
	}
	return fromSamples(sampleRate, samples)
}
