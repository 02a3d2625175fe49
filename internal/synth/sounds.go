package synth

import "math"

// Sound identifies a one-shot effect.
type Sound int

const (
	SoundRingPass Sound = iota
	SoundCrash
	SoundLandmark
	SoundMenuSelect
	SoundPause
	SoundResume
	NumSounds
)

func (s Sound) String() string {
	switch s {
	case SoundRingPass:
		return "ring pass"
	case SoundCrash:
		return "crash"
	case SoundLandmark:
		return "landmark"
	case SoundMenuSelect:
		return "menu select"
	case SoundPause:
		return "pause"
	case SoundResume:
		return "resume"
	}
	return "unknown"
}

// Generate renders a one-shot effect as stereo float32 LE frames.
func Generate(s Sound) []byte {
	switch s {
	case SoundRingPass:
		return genRingPass()
	case SoundCrash:
		return genCrash()
	case SoundLandmark:
		return genLandmark()
	case SoundMenuSelect:
		return genMenuSelect()
	case SoundPause:
		return genBlip(880, 440)
	case SoundResume:
		return genBlip(440, 880)
	}
	return nil
}

// genRingPass: bright two-note FM chime, the second a fifth above.
func genRingPass() []byte {
	n := seconds(0.22)
	buf := makeBuf(n)
	second := n / 3
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.4, 0.2, 0.4)
		s := fm(t, 988, 2.0, 1.8*env) * env * 0.3
		if i >= second {
			p2 := float64(i-second) / float64(n-second)
			env2 := adsr(p2, 0.01, 0.5, 0.1, 0.4)
			s += fm(t, 1480, 2.0, 1.5*env2) * env2 * 0.28
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genCrash: noise burst over a falling sub thump, then a descending minor triad.
func genCrash() []byte {
	n := seconds(1.1)
	mix := make([]float64, n)
	seed := uint64(0xC2A5)
	lp := 0.0
	burst := seconds(0.45)
	for i := 0; i < burst; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(burst)
		env := math.Exp(-p * 5)
		lp += (lcg(&seed) - lp) * (0.5 - 0.4*p)
		thump := math.Sin(2*math.Pi*(90-50*p)*t) * math.Exp(-p*7)
		mix[i] += lp*env*0.7 + thump*0.6
	}
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.15},
		{261.63, 0.29},
		{220.00, 0.43},
	}
	for _, note := range notes {
		start := seconds(note.onset)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			mix[i] += fm(t, freq, 2.0, 2.0*env) * env * 0.28
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLandmark: ascending bell arpeggio, each note ringing over the next.
func genLandmark() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	step := seconds(0.11)
	total := len(notes)*step + seconds(0.35)
	mix := make([]float64, total)
	for k, freq := range notes {
		start := k * step
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.6, 0.05, 0.3)
			s := fm(t, freq, 3.5, 4.5*env) * env * 0.26
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.06
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genMenuSelect: crisp click with a brief falling tone.
func genMenuSelect() []byte {
	n := SampleRate * 65 / 1000
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		putStereoF32(buf, i, softSat(fm(t, freq, 1.0, 0.6)*env*0.38))
	}
	return buf
}

// genBlip glides from one pitch to another.
func genBlip(from, to float64) []byte {
	n := seconds(0.08)
	buf := makeBuf(n)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := from + (to-from)*p
		phase += 2 * math.Pi * freq / SampleRate
		env := adsr(p, 0.05, 0.4, 0.3, 0.3)
		putStereoF32(buf, i, softSat(math.Sin(phase)*env*0.3))
	}
	return buf
}
