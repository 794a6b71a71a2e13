package wavefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"

	"github.com/pipelined/extract/value"
	"github.com/pipelined/extract/wavefile"
)

func encodeWav(t *testing.T, path string, numChannels int, data []int) {
	t.Helper()
	f, err := os.Create(path)
	assert.NoError(t, err)

	enc := wav.NewEncoder(f, 44100, 16, numChannels, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: 44100},
		Data:           data,
		SourceBitDepth: 16,
	})
	assert.NoError(t, err)
	assert.NoError(t, enc.Close())
	assert.NoError(t, f.Close())
}

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	encodeWav(t, path, 1, []int{0, 16384, -16384, 32767})

	v, sampleRate, err := wavefile.Read(path)
	assert.NoError(t, err)
	assert.Equal(t, 44100, sampleRate)
	assert.Equal(t, value.RealVec, v.Kind())

	samples, ok := v.RealVec()
	assert.True(t, ok)
	assert.Len(t, samples, 4)
	assert.InDelta(t, 0, samples[0], 1e-9)
	assert.InDelta(t, 0.5, samples[1], 1e-9)
	assert.InDelta(t, -0.5, samples[2], 1e-9)
	assert.InDelta(t, 1, samples[3], 1e-4)
}

func TestReadMixdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	// left 0.5, right -0.5 averages to silence
	encodeWav(t, path, 2, []int{16384, -16384, 16384, -16384})

	v, _, err := wavefile.Read(path)
	assert.NoError(t, err)
	samples, _ := v.RealVec()
	assert.Len(t, samples, 2)
	assert.InDelta(t, 0, samples[0], 1e-9)
	assert.InDelta(t, 0, samples[1], 1e-9)
}

func TestReadStereo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stereo.wav")
	encodeWav(t, path, 2, []int{16384, -16384, 0, 16384})

	v, sampleRate, err := wavefile.Read(path)
	assert.NoError(t, err)
	assert.NotNil(t, v)
	assert.Equal(t, 44100, sampleRate)

	v, _, err = wavefile.ReadStereo(path)
	assert.NoError(t, err)
	assert.Equal(t, value.StereoVec, v.Kind())
	samples, ok := v.StereoVec()
	assert.True(t, ok)
	assert.Len(t, samples, 2)
	assert.InDelta(t, 0.5, samples[0].Left, 1e-9)
	assert.InDelta(t, -0.5, samples[0].Right, 1e-9)
	assert.InDelta(t, 0, samples[1].Left, 1e-9)
	assert.InDelta(t, 0.5, samples[1].Right, 1e-9)
}

func TestReadStereoOfMono(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.wav")
	encodeWav(t, path, 1, []int{1, 2, 3})

	_, _, err := wavefile.ReadStereo(path)
	assert.Error(t, err)
}

func TestReadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not.wav")
	assert.NoError(t, os.WriteFile(path, []byte("not audio"), 0o644))

	_, _, err := wavefile.Read(path)
	assert.Error(t, err)

	_, _, err = wavefile.Read(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
