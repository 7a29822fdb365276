// This file is part of Gopher81.
//
// Gopher81 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher81 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher81.  If not, see <https://www.gnu.org/licenses/>.

package tape

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/gopher81/curated"
	"github.com/jetsetilly/gopher81/logger"
)

// PCM is a mono recording. Stereo recordings keep the left channel only.
type PCM struct {
	SampleRate float64
	Data       []float32
}

func (p PCM) String() string {
	return fmt.Sprintf("%.02fs at %.0fHz", p.Duration(), p.SampleRate)
}

// Duration returns the length of the recording in seconds.
func (p PCM) Duration() float64 {
	if p.SampleRate == 0 {
		return 0
	}
	return float64(len(p.Data)) / p.SampleRate
}

// threshold returns the sample value above which the signal is considered to
// be a pulse. it is half way between the mean and the loudest sample
func (p PCM) threshold() float32 {
	if len(p.Data) == 0 {
		return 0
	}

	var sum float64
	peak := p.Data[0]
	for _, s := range p.Data {
		sum += float64(s)
		if s > peak {
			peak = s
		}
	}
	mean := float32(sum / float64(len(p.Data)))

	return mean + (peak-mean)/2
}

// IsRecording returns true if the filename has the extension of a supported
// audio file.
func IsRecording(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav", ".mp3":
		return true
	}
	return false
}

// ReadPCM loads a WAV or MP3 file. The type of file is decided by the
// extension of the filename.
func ReadPCM(perm logger.Permission, filename string) (PCM, error) {
	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, curated.Errorf(FileError, err)
	}
	defer f.Close()

	var p PCM

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return PCM{}, curated.Errorf(BadRecording, "not a valid wav file")
		}

		logger.Logf(perm, "tape", "loading from wav file: %s", filename)

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return PCM{}, curated.Errorf(BadRecording, err)
		}
		floatBuf := buf.AsFloat32Buffer()

		// first channel only
		chans := int(dec.NumChans)
		p.Data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			p.Data = append(p.Data, floatBuf.Data[i])
		}
		p.SampleRate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return PCM{}, curated.Errorf(BadRecording, err)
		}

		logger.Logf(perm, "tape", "loading from mp3 file: %s", filename)

		// the decoded stream is always 16bit little endian stereo. a sample
		// is four bytes and the left channel is the first two
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var n int
			n, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return PCM{}, curated.Errorf(BadRecording, err)
			}
			for i := 0; i+1 < n; i += 4 {
				p.Data = append(p.Data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
			}
		}
		p.SampleRate = float64(dec.SampleRate())

	default:
		return PCM{}, curated.Errorf(FileError, fmt.Sprintf("unsupported recording format: %s", filename))
	}

	if p.SampleRate == 0 {
		return PCM{}, curated.Errorf(BadRecording, "sample rate is zero")
	}

	logger.Logf(perm, "tape", "recording is %s", p)

	return p, nil
}

// WriteWAV writes the recording to a 16bit mono WAV file. Sample values
// should be in the range -1 to 1.
func WriteWAV(filename string, p PCM) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(FileError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(FileError, err)
		}
	}()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  int(p.SampleRate),
		},
		Data:           make([]int, len(p.Data)),
		SourceBitDepth: 16,
	}
	for i, s := range p.Data {
		buf.Data[i] = int(s * 0x7fff)
	}

	enc := wav.NewEncoder(f, int(p.SampleRate), 16, 1, 1)
	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(FileError, err)
	}

	return nil
}
