// Package decode turns audio files into the mono float64 PCM buffers the
// analysis core consumes. WAV and MP3 are supported; multi-channel input is
// mixed down to a single channel here so the core only ever sees mono.
package decode

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/synthguard/synthguard/pkg/logging"
)

// Signal is a decoded mono PCM buffer with its sample rate
type Signal struct {
	Samples    []float64 `json:"-"`
	SampleRate int       `json:"sample_rate"`
}

// DurationSeconds returns sample count divided by sample rate
func (s *Signal) DurationSeconds() float64 {
	if s.SampleRate <= 0 {
		return 0
	}
	return float64(len(s.Samples)) / float64(s.SampleRate)
}

// Decoder decodes audio files by extension
type Decoder struct {
	logger logging.Logger
}

// NewDecoder creates a file decoder
func NewDecoder() *Decoder {
	return &Decoder{
		logger: logging.WithFields(logging.Fields{
			"component": "audio_decoder",
		}),
	}
}

// DecodeFile reads and decodes the audio file at path into a mono signal
func (d *Decoder) DecodeFile(path string) (*Signal, error) {
	logger := d.logger.WithFields(logging.Fields{
		"function": "DecodeFile",
		"path":     path,
	})

	f, err := os.Open(path)
	if err != nil {
		return nil, NewDecodeError(path, "", ErrCodeOpen, "failed to open audio file", err)
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(path))
	var signal *Signal

	switch ext {
	case ".wav":
		signal, err = d.decodeWAV(path, f)
	case ".mp3":
		signal, err = d.decodeMP3(path, f)
	default:
		return nil, NewDecodeError(path, ext, ErrCodeUnsupported,
			"unsupported audio format "+ext, nil)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Decoded audio file", logging.Fields{
		"format":      ext,
		"sample_rate": signal.SampleRate,
		"samples":     len(signal.Samples),
		"duration_s":  signal.DurationSeconds(),
	})
	return signal, nil
}

// decodeWAV decodes a RIFF/WAV file and mixes it down to mono
func (d *Decoder) decodeWAV(path string, r io.ReadSeeker) (*Signal, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, NewDecodeError(path, "wav", ErrCodeInvalidFormat, "not a valid WAV file", nil)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, NewDecodeError(path, "wav", ErrCodeDecoding, "failed to read PCM data", err)
	}
	if buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, NewDecodeError(path, "wav", ErrCodeInvalidFormat, "missing PCM format", nil)
	}

	channels := buf.Format.NumChannels
	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = 16
	}
	scale := float64(int64(1) << (bitDepth - 1))

	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c]) / scale
		}
		samples[i] = sum / float64(channels)
	}

	return &Signal{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
	}, nil
}

// decodeMP3 decodes an MP3 stream. The decoder always emits 16-bit
// little-endian stereo frames regardless of the source channel layout.
func (d *Decoder) decodeMP3(path string, r io.Reader) (*Signal, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, NewDecodeError(path, "mp3", ErrCodeInvalidFormat, "not a valid MP3 file", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, NewDecodeError(path, "mp3", ErrCodeDecoding, "failed to decode MP3 data", err)
	}

	// 4 bytes per stereo frame: L16 + R16
	frames := len(raw) / 4
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		left := int16(raw[i*4]) | int16(raw[i*4+1])<<8
		right := int16(raw[i*4+2]) | int16(raw[i*4+3])<<8
		samples[i] = (float64(left) + float64(right)) / 2.0 / 32768.0
	}

	return &Signal{
		Samples:    samples,
		SampleRate: dec.SampleRate(),
	}, nil
}
