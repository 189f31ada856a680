package main

import (
	"log/slog"
	"os"

	"spritecut/parallel"
	"spritecut/segment"

	"github.com/alecthomas/kong"
)

type cli struct {
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)" default:"info" env:"SPRITECUT_LOG_LEVEL"`
	LogJSON  bool       `help:"Log as JSON" default:"false" env:"SPRITECUT_LOG_JSON"`
	Workers  int        `help:"Number of sheets processed at once, 0 for one per CPU" default:"0" env:"SPRITECUT_WORKERS"`

	Segment segment.CLICmd     `cmd:"" help:"Find the sprites of sprite sheets and write masks and reports"`
	Extract segment.ExtractCmd `cmd:"" help:"Cut every sprite of sprite sheets into its own image"`
}

func main() {
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("spritecut"),
		kong.Description("Sprite sheet segmentation"),
		kong.UsageOnError(),
	)

	opts := &slog.HandlerOptions{Level: c.LogLevel}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if c.LogJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	pool := parallel.Start(c.Workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Size())

	err := kctx.Run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait))
	kctx.FatalIfErrorf(err)
}
