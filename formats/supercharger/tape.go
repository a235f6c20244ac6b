// This file is part of romprops.
//
// romprops is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// romprops is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with romprops.  If not, see <https://www.gnu.org/licenses/>.

package supercharger

import (
	"fmt"
	"io"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/logger"
	"github.com/jetsetilly/romprops/source"
)

// Container of a tape recording.
type Container int

// List of valid Container values.
const (
	ContainerWAV Container = iota
	ContainerMP3
)

func (c Container) String() string {
	switch c {
	case ContainerWAV:
		return "WAV"
	case ContainerMP3:
		return "MP3"
	}
	return "unknown"
}

// TapeError is returned when a tape recording cannot be decoded.
const TapeError = "supercharger: tape: %v"

// Tape describes a tape recording.
type Tape struct {
	Container  Container
	SampleRate int
	Channels   int
	BitDepth   int
	Duration   time.Duration
}

// go-mp3 always decodes to 16bit stereo
const (
	mp3Channels       = 2
	mp3BitDepth       = 16
	mp3BytesPerSample = 4
)

func newTape(c Container, f *audio.Format, bitDepth int) Tape {
	return Tape{
		Container:  c,
		SampleRate: f.SampleRate,
		Channels:   f.NumChannels,
		BitDepth:   bitDepth,
	}
}

// DecodeTape describes the tape recording in the source. The source is read
// from the beginning.
func DecodeTape(src source.Source, c Container) (Tape, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return Tape{}, curated.Errorf(TapeError, err)
	}

	switch c {
	case ContainerWAV:
		return decodeWAV(src)
	case ContainerMP3:
		return decodeMP3(src)
	}

	return Tape{}, curated.Errorf(TapeError, fmt.Sprintf("unknown container (%d)", int(c)))
}

func decodeWAV(src source.Source) (Tape, error) {
	dec := wav.NewDecoder(src)
	if dec == nil || !dec.IsValidFile() {
		return Tape{}, curated.Errorf(TapeError, "not a valid wav file")
	}

	t := newTape(ContainerWAV, dec.Format(), int(dec.BitDepth))

	dur, err := dec.Duration()
	if err != nil {
		return Tape{}, curated.Errorf(TapeError, err)
	}
	t.Duration = dur

	logger.Logf(logger.Allow, tag, "wav: %dHz %d channels %dbit", t.SampleRate, t.Channels, t.BitDepth)

	return t, nil
}

func decodeMP3(src source.Source) (Tape, error) {
	dec, err := mp3.NewDecoder(src)
	if err != nil {
		return Tape{}, curated.Errorf(TapeError, err)
	}

	f := &audio.Format{
		NumChannels: mp3Channels,
		SampleRate:  dec.SampleRate(),
	}
	if f.SampleRate <= 0 {
		return Tape{}, curated.Errorf(TapeError, "invalid sample rate")
	}

	t := newTape(ContainerMP3, f, mp3BitDepth)

	// the length of the decoded stream is only known if the source can be
	// seeked. otherwise decode the entire stream to find the length
	length := dec.Length()
	if length < 0 {
		length, err = io.Copy(io.Discard, dec)
		if err != nil {
			return Tape{}, curated.Errorf(TapeError, err)
		}
	}

	samples := length / mp3BytesPerSample
	t.Duration = time.Duration(samples) * time.Second / time.Duration(f.SampleRate)

	logger.Logf(logger.Allow, tag, "mp3: %dHz", t.SampleRate)

	return t, nil
}
