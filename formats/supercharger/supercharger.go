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
	"time"

	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
)

const tag = "supercharger"

// Variants returned by IsSupported().
const (
	VariantTape = iota
	VariantFastLoad
)

// Field labels. Fastload fields are prefixed with the load number.
const (
	FieldContainer  = "Container"
	FieldSampleRate = "Sample Rate"
	FieldChannels   = "Channels"
	FieldBitDepth   = "Bit Depth"
	FieldDuration   = "Duration"

	FieldLoads         = "Loads"
	FieldMultiload     = "Multiload"
	FieldStartAddress  = "Start Address"
	FieldConfigByte    = "Config Byte"
	FieldPages         = "Pages"
	FieldChecksum      = "Checksum"
	FieldProgressSpeed = "Progress Speed"
)

var extensions = []string{"wav", "mp3", "ar"}

// Extensions returns the list of file extensions for the format. Fastload
// binaries may also have the "bin" extension but that extension is not
// claimed.
func Extensions() []string {
	e := make([]string, len(extensions))
	copy(e, extensions)
	return e
}

// MPEG audio frame sync with the layer bits set
func isFrameSync(b []byte) bool {
	return len(b) >= 2 && b[0] == 0xff && b[1]&0xe0 == 0xe0 && b[1]&0x06 != 0
}

// tapeContainer returns the container of a tape recording. The extension is
// preferred and the header is used if the extension is not recognised.
func tapeContainer(header []byte, ext string) (Container, bool) {
	switch ext {
	case "wav":
		return ContainerWAV, true
	case "mp3":
		return ContainerMP3, true
	}
	if romdata.HasMagic(header, 0, []byte("RIFF")) && romdata.HasMagic(header, 8, []byte("WAVE")) {
		return ContainerWAV, true
	}
	if romdata.HasMagic(header, 0, []byte("ID3")) || isFrameSync(header) {
		return ContainerMP3, true
	}
	return 0, false
}

func isFastLoad(ext string, size int64) bool {
	switch ext {
	case "ar":
		return true
	case "bin":
		return IsFastLoadSize(size)
	}
	return false
}

// IsSupported returns the variant of the file or romdata.NoMatch.
func IsSupported(info romdata.DetectInfo) int {
	if info.HeaderAddr != 0 {
		return romdata.NoMatch
	}
	if isFastLoad(info.Ext, info.Size) {
		return VariantFastLoad
	}
	if _, ok := tapeContainer(info.Header, info.Ext); ok {
		return VariantTape
	}
	return romdata.NoMatch
}

// Reader for Supercharger files.
type Reader struct {
	romdata.Base

	variant int
	tape    Tape
	loads   []Load
}

// New probes the source for a Supercharger tape recording or fastload binary.
// The extension should be lowercase without the leading dot.
//
// A nil error does not mean that the file is valid. Use IsValid() to check.
func New(src source.Source, ext string) (*Reader, error) {
	r := &Reader{}
	if err := r.Init(src, tag); err != nil {
		return nil, err
	}
	r.Probed(r.probe(ext))
	return r, nil
}

func (r *Reader) probe(ext string) bool {
	src := r.Source()

	if isFastLoad(ext, src.Size()) {
		r.variant = VariantFastLoad
		return r.probeFastLoad()
	}

	var header [12]byte
	if err := r.ReadAt(0, header[:]); err != nil {
		return false
	}

	c, ok := tapeContainer(header[:], ext)
	if !ok {
		return false
	}

	r.variant = VariantTape
	t, err := DecodeTape(src, c)
	if err != nil {
		return false
	}
	r.tape = t

	return true
}

func (r *Reader) probeFastLoad() bool {
	size := r.Source().Size()
	if !IsFastLoadSize(size) {
		return false
	}

	n := int(size / LoadLen)
	r.loads = make([]Load, 0, n)

	hdr := make([]byte, LoadHeaderLen)
	for i := 0; i < n; i++ {
		if err := r.ReadAt(int64(i*LoadLen+LoadDataLen), hdr); err != nil {
			r.loads = nil
			return false
		}
		l := DecodeLoad(hdr)
		if int(l.NumPages) > pageTableLen {
			r.loads = nil
			return false
		}
		r.loads = append(r.loads, l)
	}

	return true
}

// Variant returns the variant of a valid reader.
func (r *Reader) Variant() int {
	return r.variant
}

// Tape returns the description of the tape recording. Only meaningful if the
// variant is VariantTape.
func (r *Reader) Tape() Tape {
	return r.tape
}

// Loads returns the headers of each load in a fastload binary.
func (r *Reader) Loads() []Load {
	return r.loads
}

// SystemName implements the romdata.Reader interface.
func (r *Reader) SystemName(t romdata.SystemNameType) string {
	if !r.IsValid() {
		return ""
	}
	switch t {
	case romdata.NameLong:
		return "Atari 2600 Supercharger"
	case romdata.NameShort:
		return "Supercharger"
	case romdata.NameAbbreviation:
		return "AR"
	}
	return ""
}

// Fields implements the romdata.Reader interface.
func (r *Reader) Fields() (*romdata.Fields, error) {
	return r.Base.Fields(func(fl *romdata.Fields) {
		if r.variant == VariantFastLoad {
			r.loadFastLoadFields(fl)
			return
		}
		t := r.tape
		fl.AddString(FieldContainer, t.Container.String())
		fl.AddString(FieldSampleRate, fmt.Sprintf("%dHz", t.SampleRate))
		fl.AddNumeric(FieldChannels, uint64(t.Channels), romdata.Dec, 0)
		fl.AddNumeric(FieldBitDepth, uint64(t.BitDepth), romdata.Dec, 0)
		fl.AddDuration(FieldDuration, t.Duration, time.Second, 2)
	})
}

func (r *Reader) loadFastLoadFields(fl *romdata.Fields) {
	fl.AddNumeric(FieldLoads, uint64(len(r.loads)), romdata.Dec, 0)

	for i, l := range r.loads {
		label := func(s string) string {
			if len(r.loads) == 1 {
				return s
			}
			return fmt.Sprintf("%d: %s", i, s)
		}

		fl.AddNumeric(label(FieldMultiload), uint64(l.Multiload), romdata.Dec, 0)
		fl.AddNumeric(label(FieldStartAddress), uint64(l.StartAddress), romdata.Hex, 4)
		fl.AddNumeric(label(FieldConfigByte), uint64(l.ConfigByte), romdata.Hex, 2)
		fl.AddNumeric(label(FieldPages), uint64(l.NumPages), romdata.Dec, 0)
		fl.AddNumeric(label(FieldProgressSpeed), uint64(l.ProgressSpeed), romdata.Hex, 4)
		if l.ChecksumOK {
			fl.AddString(label(FieldChecksum), "OK")
		} else {
			fl.AddString(label(FieldChecksum), "Bad")
		}
	}
}
