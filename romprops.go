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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/romprops/archivefs"
	"github.com/jetsetilly/romprops/curated"
	"github.com/jetsetilly/romprops/formats"
	"github.com/jetsetilly/romprops/logger"
	"github.com/jetsetilly/romprops/modalflag"
	"github.com/jetsetilly/romprops/paths"
	"github.com/jetsetilly/romprops/prefs"
	"github.com/jetsetilly/romprops/romdata"
	"github.com/jetsetilly/romprops/source"
	"github.com/jetsetilly/romprops/statsview"
	"github.com/jetsetilly/romprops/thumbnailer"
	"github.com/jetsetilly/romprops/version"
)

// exit values
const (
	exitOK    = 0
	exitArgs  = 10
	exitError = 20
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch the program with the command line arguments. returns the exit value
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "THUMB", "SCAN", "EXTS", "VERSION")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. 'system.region::JP; thumbnail.size::64')")
	log := md.AddBool("log", false, "echo log to output")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	prefs.PushCommandLineStack(*prefsOverride)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Fprintf(output, "* unused preferences: %s\n", unused)
		}
	}()

	prf, err := newPreferences(output)
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitError
	}
	if *log {
		if err := prf.logEcho.Set(true); err != nil {
			fmt.Fprintf(output, "* error: %v\n", err)
			return exitError
		}
	}
	defer logger.SetEcho(nil)

	switch md.Mode() {
	case "INFO":
		err = info(md, output)
	case "THUMB":
		err = thumb(md, prf, output)
	case "SCAN":
		err = scan(ctx, md, output)
	case "EXTS":
		err = exts(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return exitError
	}

	return exitOK
}

// the JSON form of a file's properties
type infoJSON struct {
	Filename     string          `json:"filename"`
	System       string          `json:"system"`
	Abbreviation string          `json:"abbreviation"`
	Hash         string          `json:"sha1,omitempty"`
	Fields       *romdata.Fields `json:"fields"`
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	asJSON := md.AddBool("json", false, "output in JSON format")
	hash := md.AddBool("hash", false, "include SHA1 hash of file")
	memvizFile := md.AddString("memviz", "", "write graphviz dot file of reader structure (single file only)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	files := md.RemainingArgs()
	switch len(files) {
	case 0:
		return fmt.Errorf("file required for %s mode", md)
	case 1:
	default:
		if *memvizFile != "" {
			return fmt.Errorf("-memviz can only be used with a single file")
		}
	}

	for _, fn := range files {
		r, err := formats.Open(fn)
		if err != nil {
			return err
		}

		fl, err := r.Fields()
		if err != nil {
			r.Close()
			return err
		}

		var sum string
		if *hash {
			sum, err = hashFile(fn)
			if err != nil {
				r.Close()
				return err
			}
		}

		if *memvizFile != "" {
			if err := writeMemviz(*memvizFile, r); err != nil {
				r.Close()
				return err
			}
		}

		if *asJSON {
			j := infoJSON{
				Filename:     fn,
				System:       r.SystemName(romdata.NameLong),
				Abbreviation: r.SystemName(romdata.NameAbbreviation),
				Hash:         sum,
				Fields:       fl,
			}
			b, err := json.MarshalIndent(j, "", "  ")
			if err != nil {
				r.Close()
				return err
			}
			fmt.Fprintln(output, string(b))
		} else {
			fmt.Fprintln(output, fn)
			fmt.Fprintf(output, "System: %s\n", r.SystemName(romdata.NameLong))
			if sum != "" {
				fmt.Fprintf(output, "SHA1:   %s\n", sum)
			}
			fmt.Fprint(output, fl.String())
		}

		r.Close()
	}

	return nil
}

func hashFile(fn string) (string, error) {
	h, err := source.NewLoader(fn).Open()
	if err != nil {
		return "", err
	}
	defer h.Close()
	return source.HashSource(h)
}

func writeMemviz(fn string, r romdata.Reader) error {
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	memviz.Map(f, r)
	return f.Close()
}

func thumb(md *modalflag.Modes, prf *preferences, output io.Writer) error {
	md.NewMode()
	size := md.AddInt("size", prf.thumbSize.Get().(int), "size of thumbnail in pixels")
	scaler := md.AddString("scaler", prf.thumbScaler.String(), fmt.Sprintf("scaler (%s)", strings.Join(thumbnailer.Scalers(), ", ")))
	out := md.AddString("o", "", "output file (default is a unique filename)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	thmb, err := thumbnailer.NewThumbnailer(*size, *scaler)
	if err != nil {
		return err
	}

	fn := md.GetArg(0)
	r, err := formats.Open(fn)
	if err != nil {
		return err
	}
	defer r.Close()

	ir, ok := r.(romdata.ImageReader)
	if !ok {
		return fmt.Errorf("%s: file does not contain an image", fn)
	}
	img, err := ir.Image()
	if err != nil {
		return err
	}

	if *out == "" {
		*out = paths.UniqueFilename("thumb", source.NewLoader(fn).ShortName()) + ".png"
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := thmb.WritePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %s thumbnail written to %s\n", fn, thmb, *out)
	return nil
}

// result of identifying a file during a scan
type scanResult struct {
	path   string
	system string
	err    error
}

func scan(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	workers := md.AddInt("workers", runtime.NumCPU(), "number of files to identify concurrently")
	all := md.AddBool("all", false, "list unrecognised files")
	stats := md.AddBool("statsview", false, "launch statsview server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("directory or archive required for %s mode", md)
	}
	if *workers < 1 {
		*workers = 1
	}
	if *stats {
		statsview.Launch(output)
	}

	var files []string
	for _, root := range md.RemainingArgs() {
		err := archivefs.Walk(root, func(pth string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			files = append(files, pth)
			return nil
		})
		if err != nil {
			return err
		}
	}

	results := make([]scanResult, len(files))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j] = identify(files[j])
			}
		}()
	}

	for i := range files {
		select {
		case jobs <- i:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break // for loop
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	var recognised int
	for _, res := range results {
		if res.err != nil {
			if *all {
				fmt.Fprintf(output, "%s: %v\n", res.path, res.err)
			}
			continue
		}
		recognised++
		fmt.Fprintf(output, "%s: %s\n", res.path, res.system)
	}
	fmt.Fprintf(output, "%d files scanned, %d recognised\n", len(results), recognised)

	return nil
}

func identify(pth string) scanResult {
	res := scanResult{path: pth}

	r, err := formats.Open(pth)
	if err != nil {
		res.err = err
		if !curated.Is(err, formats.UnrecognisedFile) {
			logger.Logf(logger.Allow, "scan", "%v", err)
		}
		return res
	}
	defer r.Close()

	res.system = r.SystemName(romdata.NameShort)
	return res
}

func exts(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	byFormat := md.AddBool("formats", false, "list extensions for each format")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *byFormat {
		for _, f := range formats.Formats() {
			fmt.Fprintf(output, "%-12s %s\n", f.Name, strings.Join(f.Extensions(), " "))
		}
		return nil
	}

	fmt.Fprintln(output, strings.Join(formats.Extensions(), " "))
	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("v", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
		fmt.Fprintf(output, "%d formats: %s\n", len(formats.Formats()), strings.Join(formatNames(), ", "))
		fmt.Fprintf(output, "statsview: %v\n", statsview.Available())
	}

	return nil
}

func formatNames() []string {
	var n []string
	for _, f := range formats.Formats() {
		n = append(n, f.Name)
	}
	return n
}
