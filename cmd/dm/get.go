package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/docmap-format/go-docmap/encode"
	"github.com/docmap-format/go-docmap/ir"
	"github.com/docmap-format/go-docmap/ir/keypath"
	"github.com/docmap-format/go-docmap/parse"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	kp, err := keypath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	return eachFile(args, func(f *os.File) error {
		return getReader(cfg.MainConfig, cc.Out, f, kp)
	})
}

func getReader(cfg *MainConfig, w io.Writer, r io.Reader, kp keypath.Path) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	doc, err := parse.Parse(in, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding document: %w", err)
	}
	node, err := doc.GetKeyPath(kp)
	if err != nil {
		return fmt.Errorf("error querying %s: %w", kp, err)
	}
	if node == nil {
		node = ir.Null()
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
