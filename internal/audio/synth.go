package audio

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 8 // stereo float32
)

// pcm is a mono float32 buffer that is written out as interleaved stereo.
type pcm []byte

func newPCM(frames int) pcm { return make(pcm, frames*frameBytes) }

func (b pcm) frames() int { return len(b) / frameBytes }

// set writes v to both channels of frame i.
func (b pcm) set(i int, v float64) {
	bits := math.Float32bits(float32(v))
	binary.LittleEndian.PutUint32(b[i*frameBytes:], bits)
	binary.LittleEndian.PutUint32(b[i*frameBytes+4:], bits)
}

// saturate folds x into (-1,1) with a cubic knee below unity and a
// hyperbolic tail above it.
func saturate(x float64) float64 {
	switch {
	case x > 1:
		return 1 - 0.5/x
	case x < -1:
		return -1 - 0.5/x
	}
	return x - x*x*x/3
}

// envelope is an attack/decay/sustain/release shape over progress in [0,1];
// the stage lengths are fractions of the whole sound.
type envelope struct {
	attack, decay, sustain, release float64
}

func (e envelope) at(p float64) float64 {
	switch {
	case p < e.attack:
		return p / e.attack
	case p < e.attack+e.decay:
		return 1 - (p-e.attack)/e.decay*(1-e.sustain)
	case p < 1-e.release:
		return e.sustain
	}
	return e.sustain * (1 - (p-(1-e.release))/e.release)
}

// noise is a 64-bit LCG yielding samples in [-1,1).
type noise uint64

func (n *noise) next() float64 {
	*n = *n*6364136223846793005 + 1442695040888963407
	return float64(int64(*n>>33) - 1<<30) / (1 << 30)
}

// unit returns the next value in [0,1).
func (n *noise) unit() float64 { return 0.5 * (n.next() + 1) }

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Boom synthesizes an explosion. strength in [0,1] picks the timbre: strong
// blasts are deeper and longer. density in [0,1] is the share of debris:
// it thickens the noisy body and scatters more crackle grains in the tail.
func Boom(strength, density float64, seed uint64) []byte {
	s := clampF(strength, 0, 1)
	d := clampF(density, 0, 1)
	rng := noise(seed)

	out := newPCM(int((0.26 + 0.64*s) * SampleRate))
	n := out.frames()

	subHi := 155 - 65*s
	subLo := math.Max(10, 34-18*s)
	crackWin := math.Max(0.010, 0.038-0.020*s)
	grainRate := 0.0004 + 0.004*d // grains per frame
	bodyGain := (0.18 + 0.17*s) * (0.5 + d)

	var hp, lp, rumble, phase, grain float64
	for i := range n {
		p := float64(i) / float64(n)

		phase += 2 * math.Pi * subHi * math.Pow(subLo/subHi, p*(1.6+1.5*s)) / SampleRate
		v := math.Sin(phase) * math.Exp(-p*(7-3.8*s)) * (0.44 + 0.34*s)

		if p < crackWin {
			v += rng.next() * (1 - p/crackWin) * (0.88 - 0.28*s)
		}

		// Band-limited body: difference of a fast and a slow one-pole lowpass.
		x := rng.next()
		hp = hp*0.76 + x*0.24
		lp = lp*0.975 + x*0.025
		v += (hp - lp) * math.Exp(-p*(6.2-2.2*s)) * bodyGain

		rumble = rumble*0.95 + rng.next()*0.05
		v += rumble * math.Exp(-p*(3-1.5*s)) * (0.06 + 0.20*s)

		// Debris: short decaying noise grains, sparser as the blast fades.
		if rng.unit() < grainRate*(1-p) {
			grain = 0.25 + 0.2*d
		}
		grain *= 0.992
		v += grain * rng.next()

		v += math.Sin(2*math.Pi*(2400-900*p)*float64(i)/SampleRate) * math.Exp(-p*30) * 0.08 * (1 - 0.55*s)

		out.set(i, saturate(v*0.86))
	}
	return out
}

// Click is a short falling FM blip played on reset.
func Click() []byte {
	out := newPCM(SampleRate * 65 / 1000)
	n := out.frames()
	env := envelope{attack: 0.004, decay: 0.55, release: 0.1}
	for i := range n {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		f := 1400 - 700*p
		mod := 0.6 * math.Sin(2*math.Pi*f*t)
		out.set(i, saturate(math.Sin(2*math.Pi*f*t+mod)*env.at(p)*0.38))
	}
	return out
}
