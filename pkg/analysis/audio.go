package analysis

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// LoadAudioMono loads an audio file and returns mono float32 samples and
// the sample rate. Only MP3 is supported; other formats belong to the
// external feature provider.
func LoadAudioMono(path string) ([]float32, int, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return loadMP3Mono(path)
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// loadMP3Mono decodes an MP3 file to mono float32 samples in [-1, 1].
// Sample-accurate encoder-delay compensation is not needed here: the
// samples only feed a coarse RMS energy trace.
func loadMP3Mono(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open audio: %w", err)
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("create MP3 decoder: %w", err)
	}

	pcm, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, fmt.Errorf("decode MP3: %w", err)
	}

	// go-mp3 outputs 16-bit signed stereo, 4 bytes per sample pair.
	numPairs := len(pcm) / 4
	samples := make([]float32, numPairs)
	for i := 0; i < numPairs; i++ {
		offset := i * 4
		left := int16(binary.LittleEndian.Uint16(pcm[offset:]))
		right := int16(binary.LittleEndian.Uint16(pcm[offset+2:]))
		samples[i] = (float32(left) + float32(right)) / 2.0 / 32768.0
	}

	return samples, decoder.SampleRate(), nil
}
