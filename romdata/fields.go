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

package romdata

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Kind of value stored in a Field.
type Kind int

// List of valid Kind values.
const (
	KindString Kind = iota
	KindNumeric
	KindDate
	KindDuration
)

// DateLayout is the layout used when formatting a date field.
const DateLayout = "2006/01/02"

// Radix of a numeric field.
type Radix int

// List of valid Radix values.
const (
	Dec Radix = 10
	Hex Radix = 16
	Oct Radix = 8
)

// Field is a single labelled value.
type Field struct {
	Label string
	Kind  Kind

	// string value
	Str string

	// numeric value and how it should be formatted. a width of zero means
	// no padding
	Num   uint64
	Radix Radix
	Width int

	// date value
	Date time.Time

	// duration value. the duration is formatted as a multiple of Unit with
	// Width decimal places
	Dur  time.Duration
	Unit time.Duration
}

// Value returns the field value formatted as a string.
func (f Field) Value() string {
	switch f.Kind {
	case KindString:
		return f.Str
	case KindDate:
		return f.Date.Format(DateLayout)
	case KindDuration:
		return fmt.Sprintf("%.*f%s", f.Width, float64(f.Dur)/float64(f.Unit), unitSuffix(f.Unit))
	}

	switch f.Radix {
	case Hex:
		return fmt.Sprintf("0x%0*X", f.Width, f.Num)
	case Oct:
		return fmt.Sprintf("0%0*o", f.Width, f.Num)
	}
	return fmt.Sprintf("%0*d", f.Width, f.Num)
}

func unitSuffix(unit time.Duration) string {
	switch unit {
	case time.Millisecond:
		return "ms"
	case time.Minute:
		return "m"
	}
	return "s"
}

func (f Field) String() string {
	return fmt.Sprintf("%s: %s", f.Label, f.Value())
}

// Fields is an ordered list of Field values.
type Fields struct {
	list []Field
}

// NewFields is the preferred method of initialisation for the Fields type.
// The reserve value is a hint of how many fields will be added.
func NewFields(reserve int) *Fields {
	return &Fields{
		list: make([]Field, 0, reserve),
	}
}

// AddString adds a string field.
func (fl *Fields) AddString(label string, value string) {
	fl.list = append(fl.list, Field{
		Label: label,
		Kind:  KindString,
		Str:   value,
	})
}

// AddNumeric adds a numeric field with the radix and minimum width used when
// formatting the value.
func (fl *Fields) AddNumeric(label string, value uint64, radix Radix, width int) {
	fl.list = append(fl.list, Field{
		Label: label,
		Kind:  KindNumeric,
		Num:   value,
		Radix: radix,
		Width: width,
	})
}

// AddDate adds a date field. Only the calendar date is formatted.
func (fl *Fields) AddDate(label string, value time.Time) {
	fl.list = append(fl.list, Field{
		Label: label,
		Kind:  KindDate,
		Date:  value,
	})
}

// AddDuration adds a duration field. The value is formatted as a multiple of
// unit with the number of decimal places given. Units other than
// time.Millisecond and time.Minute are treated as time.Second.
func (fl *Fields) AddDuration(label string, value time.Duration, unit time.Duration, decimals int) {
	switch unit {
	case time.Millisecond, time.Minute:
	default:
		unit = time.Second
	}
	if decimals < 0 {
		decimals = 0
	}
	fl.list = append(fl.list, Field{
		Label: label,
		Kind:  KindDuration,
		Dur:   value,
		Unit:  unit,
		Width: decimals,
	})
}

// Copy returns a copy of the fields. Changes to the copy do not affect the
// original.
func (fl *Fields) Copy() *Fields {
	return &Fields{list: fl.List()}
}

// Len returns the number of fields.
func (fl *Fields) Len() int {
	return len(fl.list)
}

// List returns a copy of the fields in the order they were added.
func (fl *Fields) List() []Field {
	l := make([]Field, len(fl.list))
	copy(l, fl.list)
	return l
}

// Get the first field with the label.
func (fl *Fields) Get(label string) (Field, bool) {
	for _, f := range fl.list {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

// String returns the fields one per line with the values aligned.
func (fl *Fields) String() string {
	w := 0
	for _, f := range fl.list {
		if len(f.Label) > w {
			w = len(f.Label)
		}
	}

	s := strings.Builder{}
	for _, f := range fl.list {
		s.WriteString(fmt.Sprintf("%-*s  %s\n", w+1, f.Label+":", f.Value()))
	}
	return s.String()
}

type jsonField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MarshalJSON implements the json.Marshaler interface. Fields are marshalled
// as an array of label/value objects so that the order is preserved.
func (fl *Fields) MarshalJSON() ([]byte, error) {
	l := make([]jsonField, len(fl.list))
	for i, f := range fl.list {
		l[i] = jsonField{Label: f.Label, Value: f.Value()}
	}
	return json.Marshal(l)
}
