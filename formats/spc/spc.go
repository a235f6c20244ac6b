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

// Package spc reads SNES SPC700 sound files. These are snapshots of the
// SNES audio processor and optionally contain an ID666 tag describing the
// song.
//
// There is no reliable file extension so the format is detected by the magic
// string at the start of the file.
package spc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/romprops/codec"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
)

const tag = "spc"

// Magic is the string found at the start of every SPC file.
const Magic = "SNES-SPC700 Sound File Data"

// HeaderSize is the number of bytes read by the reader. It covers the file
// header and the ID666 tag.
const HeaderSize = 0x100

// hasTagOffset is the byte that indicates the presence of the ID666 tag
const (
	hasTagOffset = 0x23
	hasTag       = 26
)

// Field labels.
const (
	FieldSongTitle = "Song Title"
	FieldGameTitle = "Game Title"
	FieldArtist    = "Artist"
	FieldDumper    = "Dumper"
	FieldComments  = "Comments"
	FieldDumpDate  = "Dump Date"
	FieldLength    = "Length"
	FieldFade      = "Fade"
	FieldEmulator  = "Emulator"
)

// Extensions returns the list of file extensions for the format.
func Extensions() []string {
	return []string{"spc"}
}

// IsSupported returns zero if the header window starts with the SPC magic
// string. The file extension is not used.
func IsSupported(info romdata.DetectInfo) int {
	if info.HeaderAddr == 0 && romdata.HasMagic(info.Header, 0, []byte(Magic)) {
		return 0
	}
	return romdata.NoMatch
}

// Tag is the decoded ID666 tag.
type Tag struct {
	SongTitle string
	GameTitle string
	Artist    string
	Dumper    string
	Comments  string
	DumpDate  string

	// seconds to play before fading out and length of fade in milliseconds
	Length uint32
	Fade   uint32

	Emulator uint8
	Binary   bool
}

// Reader for SPC files.
type Reader struct {
	romdata.Base

	header [HeaderSize]byte
	hasTag bool
	tag    Tag
}

// New probes the source for an SPC file.
//
// A nil error does not mean that the file is valid. Use IsValid() to check.
func New(src source.Source) (*Reader, error) {
	r := &Reader{}
	if err := r.Init(src, tag); err != nil {
		return nil, err
	}
	r.Probed(r.probe())
	return r, nil
}

func (r *Reader) probe() bool {
	if err := r.ReadAt(0, r.header[:]); err != nil {
		return false
	}
	if !romdata.HasMagic(r.header[:], 0, []byte(Magic)) {
		return false
	}
	r.hasTag = r.header[hasTagOffset] == hasTag
	if r.hasTag {
		r.tag = DecodeTag(r.header[:])
	}
	return true
}

// HasTag returns true if the file contains an ID666 tag.
func (r *Reader) HasTag() bool {
	return r.hasTag
}

// Tag returns the decoded ID666 tag. Only meaningful if HasTag() is true.
func (r *Reader) Tag() Tag {
	return r.tag
}

// SystemName implements the romdata.Reader interface.
func (r *Reader) SystemName(t romdata.SystemNameType) string {
	if !r.IsValid() {
		return ""
	}
	switch t {
	case romdata.NameLong:
		return "Nintendo SPC700"
	case romdata.NameShort:
		return "SPC700"
	case romdata.NameAbbreviation:
		return "SPC"
	}
	return ""
}

// Fields implements the romdata.Reader interface.
func (r *Reader) Fields() (*romdata.Fields, error) {
	return r.Base.Fields(func(fl *romdata.Fields) {
		if !r.hasTag {
			return
		}
		t := r.tag
		addString(fl, FieldSongTitle, t.SongTitle)
		addString(fl, FieldGameTitle, t.GameTitle)
		addString(fl, FieldArtist, t.Artist)
		addString(fl, FieldDumper, t.Dumper)
		addString(fl, FieldComments, t.Comments)
		addDate(fl, FieldDumpDate, t.DumpDate)
		if t.Length > 0 {
			fl.AddDuration(FieldLength, time.Duration(t.Length)*time.Second, time.Second, 0)
		}
		if t.Fade > 0 {
			fl.AddDuration(FieldFade, time.Duration(t.Fade)*time.Millisecond, time.Millisecond, 0)
		}
		switch t.Emulator {
		case 1:
			fl.AddString(FieldEmulator, "ZSNES")
		case 2:
			fl.AddString(FieldEmulator, "Snes9x")
		}
	})
}

// empty strings are not added
func addString(fl *romdata.Fields, label string, s string) {
	if s != "" {
		fl.AddString(label, s)
	}
}

// layouts seen in the date field of ID666 tags
var dateLayouts = []string{
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
}

// dates that cannot be parsed are added as they are
func addDate(fl *romdata.Fields, label string, s string) {
	if s == "" {
		return
	}
	for _, l := range dateLayouts {
		if d, err := time.Parse(l, s); err == nil {
			fl.AddDate(label, d)
			return
		}
	}
	fl.AddString(label, s)
}

func text(b []byte) string {
	return strings.TrimRight(codec.DecodeLatin1(b), " ")
}

// isTextual returns true if the bytes are digits, slashes or NUL.
func isTextual(b []byte) bool {
	for _, c := range b {
		if c != 0x00 && c != '/' && !codec.IsDigit(c) {
			return false
		}
	}
	return true
}

func atoi(b []byte) uint32 {
	v, err := strconv.ParseUint(strings.TrimSpace(codec.DecodeLatin1(b)), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// DecodeTag decodes the ID666 tag from the first HeaderSize bytes of an SPC
// file. The tag exists in either a text or a binary form, which differ after
// the comments field. The form is guessed from the content of the date and
// length fields.
func DecodeTag(b []byte) Tag {
	var t Tag

	c := codec.NewCursor(b)
	c.Skip(0x2e)
	t.SongTitle = text(c.Bytes(32))
	t.GameTitle = text(c.Bytes(32))
	t.Dumper = text(c.Bytes(16))
	t.Comments = text(c.Bytes(32))

	// the cursor is now at 0x9e
	t.Binary = !isTextual(b[0x9e:0xb1])

	if t.Binary {
		day := c.U8()
		month := c.U8()
		year := c.U16LE()
		if year != 0 && month != 0 && day != 0 {
			t.DumpDate = fmt.Sprintf("%04d/%02d/%02d", year, month, day)
		}
		c.Skip(7)
		l := c.Bytes(3)
		t.Length = uint32(l[0]) | uint32(l[1])<<8 | uint32(l[2])<<16
		t.Fade = c.U32LE()
		t.Artist = text(c.Bytes(32))
		c.Skip(1)
		t.Emulator = c.U8()
	} else {
		t.DumpDate = text(c.Bytes(11))
		t.Length = atoi(c.Bytes(3))
		t.Fade = atoi(c.Bytes(5))
		t.Artist = text(c.Bytes(32))
		c.Skip(1)
		e := c.U8()
		if codec.IsDigit(e) {
			t.Emulator = e - '0'
		} else {
			t.Emulator = e
		}
	}

	return t
}
