// Package dataset loads audio clips and ground-truth annotations for
// evaluation runs. It feeds the analysis core and consumes its outputs; the
// core itself never touches files.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-audio/wav"

	"github.com/tremolab/vibratrack/logging"
)

// Clip is a mono audio signal with its sample rate.
type Clip struct {
	Name       string    `json:"name"`
	Samples    []float64 `json:"-"`
	SampleRate float64   `json:"sample_rate"`
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / c.SampleRate
}

// LoadWAV decodes a WAV file into a mono float64 clip.
//
// Integer PCM is normalized to [-1, 1) by the source bit depth. Multichannel
// audio is downmixed to mono by averaging the channels of every frame before
// it reaches the analysis core.
func LoadWAV(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("decoding %s: not a valid WAV file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("reading PCM data from %s: %w", path, err)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		return nil, fmt.Errorf("decoding %s: no channels", path)
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = int(dec.BitDepth)
	}
	scale := float64(int64(1) << (bitDepth - 1))

	numFrames := len(buf.Data) / channels
	samples := make([]float64, numFrames)

	for frame := 0; frame < numFrames; frame++ {
		sum := 0.0
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[frame*channels+ch]) / scale
		}
		samples[frame] = sum / float64(channels)
	}

	clip := &Clip{
		Name:       filepath.Base(path),
		Samples:    samples,
		SampleRate: float64(buf.Format.SampleRate),
	}

	logging.Debug("loaded clip", logging.Fields{
		"component":   "dataset",
		"file":        clip.Name,
		"sample_rate": clip.SampleRate,
		"duration_s":  clip.Duration(),
		"channels":    channels,
	})

	return clip, nil
}

// ListWAVs returns the sorted paths of all .wav files directly inside dir.
func ListWAVs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".wav") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}
