// Package wavefile loads WAV files into port values. It is the file
// boundary of the extraction graph: a loaded vector is written into a
// source algorithm's input port or used as a Source parameter.
package wavefile

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/pipelined/extract/value"
)

// Read decodes a WAV file into a mono real vector, mixing channels
// down, and returns it with the file's sample rate.
func Read(path string) (value.Value, int, error) {
	buf, sampleRate, err := decode(path)
	if err != nil {
		return value.Value{}, 0, err
	}
	numChannels := buf.Format.NumChannels
	divider := float64(int(1) << (buf.SourceBitDepth - 1))
	samples := make([]float64, 0, len(buf.Data)/numChannels)
	for i := 0; i+numChannels <= len(buf.Data); i += numChannels {
		var frame float64
		for c := 0; c < numChannels; c++ {
			frame += float64(buf.Data[i+c]) / divider
		}
		samples = append(samples, frame/float64(numChannels))
	}
	return value.NewRealVec(samples), sampleRate, nil
}

// ReadStereo decodes a two-channel WAV file into a paired-sample
// vector and returns it with the file's sample rate.
func ReadStereo(path string) (value.Value, int, error) {
	buf, sampleRate, err := decode(path)
	if err != nil {
		return value.Value{}, 0, err
	}
	if buf.Format.NumChannels != 2 {
		return value.Value{}, 0, fmt.Errorf("%s has %d channels, want 2", path, buf.Format.NumChannels)
	}
	divider := float64(int(1) << (buf.SourceBitDepth - 1))
	samples := make([]value.StereoSample, 0, len(buf.Data)/2)
	for i := 0; i+2 <= len(buf.Data); i += 2 {
		samples = append(samples, value.StereoSample{
			Left:  float64(buf.Data[i]) / divider,
			Right: float64(buf.Data[i+1]) / divider,
		})
	}
	return value.NewStereoVec(samples), sampleRate, nil
}

func decode(path string) (*audio.IntBuffer, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s is not a valid wav file", path)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}
	if buf.SourceBitDepth == 0 {
		buf.SourceBitDepth = int(decoder.BitDepth)
	}
	return buf, int(decoder.SampleRate), nil
}
