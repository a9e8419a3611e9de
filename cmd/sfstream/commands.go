package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/blockberries/sfstream/pkg/hexdump"
	"github.com/blockberries/sfstream/pkg/layout"
	"github.com/blockberries/sfstream/pkg/stream"
)

// newFlagSet returns a flag set that reports errors instead of exiting.
func (a *app) newFlagSet(name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintln(a.stderr, usage)
		fs.PrintDefaults()
	}
	return fs
}

// readFile loads a whole file into a stream.
func (a *app) readFile(path string) (*stream.Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size := 0
	if info, err := f.Stat(); err == nil {
		size = int(info.Size())
	}
	// Room for one more read, so reaching EOF does not grow the stream.
	s := stream.New(size + stream.MinRead)
	if _, err := s.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	a.logger.Debug("loaded file", zap.String("path", path), zap.Int("bytes", s.Len()))
	return s, nil
}

func (a *app) cmdDump(args []string) error {
	fs := a.newFlagSet("dump", `Usage: sfstream dump [options] <file>...

Print files as hex.

Options:`)
	offset := fs.Int("offset", 0, "First byte to dump")
	length := fs.Int("length", stream.All, "Number of bytes to dump (default: all)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no input files")
	}

	for _, path := range fs.Args() {
		s, err := a.readFile(path)
		if err != nil {
			return err
		}
		if !s.SetReadPosition(*offset) {
			return fmt.Errorf("%s: offset %d outside %d bytes", path, *offset, s.Len())
		}
		part, err := s.StreamFromReadingBytes(*length)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		head := fmt.Sprintf("%s (%d bytes)", path, s.Len())
		opts := hexdump.Options{Width: a.cfg.Dump.Width, Offset: *offset}
		if err := hexdump.DumpWithOptions(a.stdout, part.Bytes(), opts, head, ""); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) cmdDecode(args []string) error {
	fs := a.newFlagSet("decode", `Usage: sfstream decode -layout <layout.yaml> [options] <file>...

Decode files with a YAML record layout.

Options:`)
	layoutPath := fs.String("layout", "", "Layout file (required)")
	repeat := fs.Bool("repeat", false, "Decode records until the end of the file")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *layoutPath == "" {
		fs.Usage()
		return errors.New("-layout is required")
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no input files")
	}

	l, err := layout.Load(*layoutPath)
	if err != nil {
		return err
	}
	dec := layout.NewDecoder(l, a.logger)

	for _, path := range fs.Args() {
		s, err := a.readFile(path)
		if err != nil {
			return err
		}

		if !*repeat {
			rec, err := dec.Decode(s)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := rec.Format(a.stdout); err != nil {
				return err
			}
			if s.Available() > 0 {
				a.logger.Info("trailing bytes after record",
					zap.String("path", path),
					zap.Int("bytes", s.Available()))
			}
			continue
		}

		records, err := dec.DecodeAll(s)
		for i, rec := range records {
			fmt.Fprintf(a.stdout, "# %s record %d\n", l.Name, i)
			if ferr := rec.Format(a.stdout); ferr != nil {
				return ferr
			}
		}
		if err != nil {
			return fmt.Errorf("%s: record %d: %w", path, len(records), err)
		}
	}
	return nil
}

func (a *app) cmdPack(args []string) error {
	fs := a.newFlagSet("pack", `Usage: sfstream pack [options] <hex-string>...

Convert hex strings such as "de ad be ef" or "0xCA:0xFE" into binary.

Options:`)
	out := fs.String("out", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no input")
	}

	s := stream.Get(0)
	defer stream.Put(s)
	for _, arg := range fs.Args() {
		p, err := hexdump.ParseBinaryString(arg)
		if err != nil {
			return err
		}
		if _, err := s.Write(p); err != nil {
			return err
		}
	}

	if *out == "" {
		_, err := s.WriteTo(a.stdout)
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	n, err := s.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	a.logger.Info("packed", zap.String("path", *out), zap.Int64("bytes", n))
	return nil
}

func (a *app) cmdVersion() error {
	_, err := fmt.Fprintf(a.stdout, "sfstream %s\n", stream.VersionInfo())
	return err
}
