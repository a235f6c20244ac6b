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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/romprops/logger"
	"github.com/jetsetilly/romprops/paths"
	"github.com/jetsetilly/romprops/prefs"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/terminal"
	"github.com/jetsetilly/romprops/thumbnailer"
)

// name of the preferences file in the resource directory
const prefsFile = "preferences"

// preferences for the program. values are loaded from disk and may be
// overridden by the -prefs flag
type preferences struct {
	dsk *prefs.Disk

	// where log output is echoed to when log.echo is true
	output io.Writer

	thumbSize   prefs.Int
	thumbScaler prefs.String
	region      prefs.String
	logEcho     prefs.Bool
	color       prefs.Bool
}

func newPreferences(output io.Writer) (*preferences, error) {
	pth, err := paths.ResourcePath("", prefsFile)
	if err != nil {
		return nil, err
	}

	p := &preferences{output: output}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	p.thumbSize.SetHookPre(func(v prefs.Value) error {
		if s := v.(int); s <= 0 || s > thumbnailer.MaxSize {
			return fmt.Errorf("thumbnail.size must be between 1 and %d", thumbnailer.MaxSize)
		}
		return nil
	})
	p.region.SetHookPost(func(v prefs.Value) error {
		romdata.SetSystemRegion(v.(string))
		return nil
	})
	p.logEcho.SetHookPost(func(v prefs.Value) error {
		p.echo(v.(bool))
		return nil
	})
	p.color.SetHookPost(func(_ prefs.Value) error {
		p.echo(p.logEcho.Get().(bool))
		return nil
	})

	if err := p.setDefaults(); err != nil {
		return nil, err
	}

	if err := p.dsk.Add("thumbnail.size", &p.thumbSize); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("thumbnail.scaler", &p.thumbScaler); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("system.region", &p.region); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("log.echo", &p.logEcho); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("output.color", &p.color); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *preferences) setDefaults() error {
	if err := p.thumbSize.Set(128); err != nil {
		return err
	}
	if err := p.thumbScaler.Set(thumbnailer.DefaultScaler); err != nil {
		return err
	}
	if err := p.region.Set(romdata.DefaultSystemRegion); err != nil {
		return err
	}
	if err := p.logEcho.Set(false); err != nil {
		return err
	}
	return p.color.Set(true)
}

// echo log output to the output writer. coloured output is only used if the
// output is a terminal
func (p *preferences) echo(on bool) {
	if !on || p.output == nil {
		logger.SetEcho(nil)
		return
	}

	if f, ok := p.output.(*os.File); ok && p.color.Get().(bool) && terminal.IsTerminal(f) {
		logger.SetEcho(logger.NewColorizer(f))
		return
	}

	logger.SetEcho(p.output)
}
