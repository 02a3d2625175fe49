package synth

import (
	"math"
	"testing"
)

func peak(buf []byte) float64 {
	m := 0.0
	for i := 0; i < len(buf)/BytesPerFrame; i++ {
		m = math.Max(m, math.Abs(SampleAt(buf, i)))
	}
	return m
}

func TestGenerateEverySound(t *testing.T) {
	for s := Sound(0); s < NumSounds; s++ {
		buf := Generate(s)
		if len(buf) == 0 || len(buf)%BytesPerFrame != 0 {
			t.Errorf("%v: %d bytes", s, len(buf))
			continue
		}
		p := peak(buf)
		if p == 0 {
			t.Errorf("%v is silent", s)
		}
		if p > 1 {
			t.Errorf("%v peaks at %v", s, p)
		}
	}
	if Generate(NumSounds) != nil {
		t.Error("unknown sound produced samples")
	}
}

func TestStereoChannelsMatch(t *testing.T) {
	buf := Generate(SoundRingPass)
	for i := 0; i < len(buf); i += BytesPerFrame {
		for k := 0; k < 4; k++ {
			if buf[i+k] != buf[i+4+k] {
				t.Fatalf("frame %d channels differ", i/BytesPerFrame)
			}
		}
	}
}

func TestSoftSatBounded(t *testing.T) {
	for _, x := range []float64{-100, -2, -1, -0.5, 0, 0.5, 1, 2, 100} {
		if y := softSat(x); y < -1 || y > 1 {
			t.Errorf("softSat(%v) = %v", x, y)
		}
	}
}

func TestEngineFollowsSpeed(t *testing.T) {
	e := NewEngine()
	e.SetSpeed(0.3, 0.3, 0.7)
	if e.Freq() != EngineMinHz {
		t.Fatalf("freq = %v at min speed", e.Freq())
	}
	e.SetSpeed(0.7, 0.3, 0.7)
	if e.Freq() != EngineMaxHz {
		t.Fatalf("freq = %v at max speed", e.Freq())
	}
	e.SetSpeed(5, 0.3, 0.7)
	if e.Freq() != EngineMaxHz {
		t.Fatalf("freq = %v above max speed", e.Freq())
	}
}

func TestEngineSilentUntilLevelRaised(t *testing.T) {
	e := NewEngine()
	buf := make([]byte, 4096*BytesPerFrame)
	n, err := e.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("read %d, %v", n, err)
	}
	if p := peak(buf); p != 0 {
		t.Fatalf("muted engine peaks at %v", p)
	}

	e.SetLevel(1)
	for i := 0; i < 10; i++ {
		e.Read(buf)
	}
	if p := peak(buf); p == 0 || p > 1 {
		t.Fatalf("engine peak %v", p)
	}
}
