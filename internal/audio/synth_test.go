package audio

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(t *testing.T, buf []byte) []float32 {
	t.Helper()
	require.Zero(t, len(buf)%frameBytes)
	out := make([]float32, 0, len(buf)/4)
	for i := 0; i < len(buf); i += 4 {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(buf[i:])))
	}
	return out
}

func TestBoomDurationScalesWithStrength(t *testing.T) {
	weak := Boom(0, 0.5, 1)
	strong := Boom(1, 0.5, 1)
	assert.Equal(t, int(0.26*SampleRate)*frameBytes, len(weak))
	assert.Equal(t, int(0.90*SampleRate)*frameBytes, len(strong))

	// Out-of-range strengths clamp.
	assert.Equal(t, len(strong), len(Boom(5, 0.5, 1)))
	assert.Equal(t, len(weak), len(Boom(-1, 0.5, 1)))
}

func TestBoomStaysInRange(t *testing.T) {
	s := samples(t, Boom(0.5, 0.5, 42))
	var peak float32
	for i := 0; i < len(s); i += 2 {
		assert.Equal(t, s[i], s[i+1], "channels differ at frame %d", i/2)
		v := s[i]
		assert.False(t, math.IsNaN(float64(v)))
		if v < 0 {
			v = -v
		}
		peak = max(peak, v)
	}
	assert.LessOrEqual(t, peak, float32(1))
	assert.Greater(t, peak, float32(0.05))
}

func TestBoomSeedChangesNoise(t *testing.T) {
	assert.Equal(t, Boom(0.5, 0.5, 1), Boom(0.5, 0.5, 1))
	assert.NotEqual(t, Boom(0.5, 0.5, 1), Boom(0.5, 0.5, 2))
}

func TestBoomDensityAddsDebris(t *testing.T) {
	sparse := Boom(0.5, 0, 9)
	dense := Boom(0.5, 1, 9)
	assert.Equal(t, len(sparse), len(dense))
	assert.NotEqual(t, sparse, dense)

	var sumSparse, sumDense float64
	s, d := samples(t, sparse), samples(t, dense)
	for i := range s {
		sumSparse += float64(s[i] * s[i])
		sumDense += float64(d[i] * d[i])
	}
	assert.Greater(t, sumDense, sumSparse)
	assert.Equal(t, dense, Boom(0.5, 3, 9), "density clamps to 1")
}

func TestClick(t *testing.T) {
	c := Click()
	assert.Equal(t, SampleRate*65/1000*frameBytes, len(c))
}
