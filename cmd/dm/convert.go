package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.OutFormat == nil && !cfg.J && !cfg.Y {
		return fmt.Errorf("%w: convert requires an output format (-O)", cli.ErrUsage)
	}
	if len(args) == 0 {
		return viewReader(cfg.MainConfig, cc.Out, cc.In)
	}
	return eachFile(args, func(f *os.File) error {
		return viewReader(cfg.MainConfig, cc.Out, f)
	})
}
