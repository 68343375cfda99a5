package audio

import "math"

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation instead of hard clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// makeBuf allocates a stereo float32 buffer for n frames.
func makeBuf(n int) []byte { return make([]byte, n*8) }

// genCollect: bright FM pop rising in pitch.
func genCollect() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 620 + 900*p
		s := fm(t, freq, 2.0, 3.0*env) * env * 0.45
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.05
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genLevelUp: ascending bell arpeggio, each note ringing into the next.
func genLevelUp() []byte {
	notes := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	noteStep := int(0.08 * SampleRate)
	total := len(notes)*noteStep + int(0.22*SampleRate)
	mix := make([]float64, total)

	for fi, freq := range notes {
		start := fi * noteStep
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.003, 0.6, 0.04, 0.3)
			s := fm(t, freq, 3.5, 5.0*env) * env * 0.28
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.07
			mix[start+j] += s
		}
	}
	buf := makeBuf(total)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genDash: short airy whoosh over a falling click.
func genDash() []byte {
	n := int(0.12 * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xDA5)
	hp := 0.0
	prev := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.45, 0.0, 0.2)
		raw := lcg(&seed)
		hp = 0.8 * (hp + raw - prev) // one-pole highpass
		prev = raw
		freq := 1400 - 900*p
		click := fm(t, freq, 1.0, 0.6) * math.Exp(-p*18) * 0.3
		s := hp*env*0.35 + click
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genExplosion: sub boom, transient crack and a band-passed noise body.
func genExplosion(seed uint64) []byte {
	const dur = 0.45
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	lp1, lp2 := 0.0, 0.0
	subPhase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)

		subFreq := 130.0 * math.Pow(26.0/130.0, p*2.1)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*5.5) * 0.55

		crack := 0.0
		const crackWin = 0.03
		if p < crackWin {
			crack = lcg(&seed) * (1 - p/crackWin) * 0.75
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*5.0) * 0.36

		s := sub + crack + body
		putStereoF32(buf, i, softSat(s*0.86))
	}
	return buf
}
