// This file is part of ALE2600.
//
// ALE2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ALE2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ALE2600.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when the writer is closed. It is therefore only suitable for short
// recordings.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/ale2600/curated"
	"github.com/jetsetilly/ale2600/logger"
)

// the WAV format for the written file
const (
	bitDepth    = 8
	numChannels = 1

	// PCM
	audioFormat = 1
)

// WavWriter collects 8bit mono samples and writes them to a WAV file.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}, nil
}

// AddSamples appends samples to the recording.
func (aw *WavWriter) AddSamples(samples []uint8) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
}

// NumSamples returns the number of samples collected so far.
func (aw *WavWriter) NumSamples() int {
	return len(aw.buffer)
}

// Close writes the collected samples to the file.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, numChannels, audioFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
