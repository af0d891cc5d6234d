package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/docmap-format/go-docmap/encode"
	"github.com/docmap-format/go-docmap/parse"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg.MainConfig, cc.Out, cc.In)
	}
	return eachFile(args, func(f *os.File) error {
		return viewReader(cfg.MainConfig, cc.Out, f)
	})
}

func viewReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	node, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

// eachFile opens each named file, "-" meaning stdin, and applies f.
func eachFile(files []string, f func(*os.File) error) error {
	for _, file := range files {
		var (
			in  *os.File
			err error
		)
		if file != "-" {
			in, err = os.Open(file)
			if err != nil {
				return fmt.Errorf("could not open %q: %w", file, err)
			}
		} else {
			in = os.Stdin
		}
		err = f(in)
		if in != os.Stdin {
			in.Close()
		}
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
