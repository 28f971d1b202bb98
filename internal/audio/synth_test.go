package audio

import (
	"io"
	"testing"
)

const testRate = 48000

// 采样值小端解码
func sampleAt(data []byte, frame int) int16 {
	return int16(data[frame*bytesPerFrame]) | int16(data[frame*bytesPerFrame+1])<<8
}

func TestStreamReadSeek(t *testing.T) {
	s := Click(testRate)

	if s.Length() == 0 {
		t.Fatal("期望非空数据")
	}
	if s.Length()%bytesPerFrame != 0 {
		t.Errorf("数据长度 %d 不是整帧", s.Length())
	}
	if s.SampleRate() != testRate {
		t.Errorf("采样率 = %d, 期望 %d", s.SampleRate(), testRate)
	}

	buf, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("ReadAll 失败: %v", err)
	}
	if int64(len(buf)) != s.Length() {
		t.Errorf("读取 %d 字节, Length() = %d", len(buf), s.Length())
	}

	// 回绕后应能重新读取
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek 失败: %v", err)
	}
	again, err := io.ReadAll(s)
	if err != nil {
		t.Fatalf("二次 ReadAll 失败: %v", err)
	}
	if len(again) != len(buf) {
		t.Errorf("二次读取 %d 字节, 期望 %d", len(again), len(buf))
	}

	if _, err := s.Seek(-1, io.SeekStart); err == nil {
		t.Error("负偏移应报错")
	}
	if _, err := s.Seek(0, 99); err == nil {
		t.Error("非法 whence 应报错")
	}
}

func TestStereoChannelsMatch(t *testing.T) {
	s := Chime(testRate)
	for frame := 0; frame < int(s.Length())/bytesPerFrame; frame += 97 {
		l := sampleAt(s.data, frame)
		r := int16(s.data[frame*bytesPerFrame+2]) | int16(s.data[frame*bytesPerFrame+3])<<8
		if l != r {
			t.Fatalf("帧 %d 左右声道不一致: %d vs %d", frame, l, r)
		}
	}
}

func TestSamplesWithinRange(t *testing.T) {
	streams := map[string]*PCMStream{
		"click":  Click(testRate),
		"toggle": Toggle(testRate),
		"whoosh": Whoosh(testRate),
		"chime":  Chime(testRate),
		"wind":   WindLoop(testRate),
	}
	for name, s := range streams {
		peak := int16(0)
		for frame := 0; frame < int(s.Length())/bytesPerFrame; frame++ {
			v := sampleAt(s.data, frame)
			if v == -32768 {
				t.Fatalf("%s: 采样溢出", name)
			}
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		if peak == 0 {
			t.Errorf("%s: 全零输出", name)
		}
		// 合成增益都低于满幅，留出混音余量
		if peak > 30000 {
			t.Errorf("%s: 峰值 %d 过高", name, peak)
		}
	}
}

func TestWindLoopSeam(t *testing.T) {
	s := WindLoop(testRate)

	frames := int(s.Length()) / bytesPerFrame
	if frames != int(windSeconds*testRate) {
		t.Fatalf("风声段长 %d 帧, 期望 %d", frames, int(windSeconds*testRate))
	}

	// 循环接缝处的跳变不应超过滤波噪声单步步长的上限
	first := sampleAt(s.data, 0)
	last := sampleAt(s.data, frames-1)
	seam := int(first) - int(last)
	if seam < 0 {
		seam = -seam
	}
	if seam > 6000 {
		t.Errorf("循环接缝跳变 %d 过大", seam)
	}
}

func TestClickDeterministic(t *testing.T) {
	a := Click(testRate)
	b := Click(testRate)
	if a.Length() != b.Length() {
		t.Fatalf("两次合成长度不同: %d vs %d", a.Length(), b.Length())
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			t.Fatalf("字节 %d 不一致", i)
		}
	}
}
