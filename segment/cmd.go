// Package segment implements the commands that split sprite sheets into
// sprites and write masks, reports and cut-outs.
package segment

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"sync/atomic"

	"spritecut/parallel"
	"spritecut/preview"
	"spritecut/sprite"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	SheetParams
	Mask        bool         `help:"Write a debug mask of every sheet" default:"true" negatable:"" group:"mask"`
	Fill        string       `help:"Mask background color, #RGB or #RRGGBB for RGB masks, #RGBA or #RRGGBBAA for RGBA masks" default:"#fff" group:"mask"`
	MinDistance float64      `help:"Minimum CIEDE2000 distance between mask colors, 0 to only require distinct colors" default:"0" group:"mask"`
	Seed        uint64       `help:"Seed for mask colors, 0 for a random seed" default:"0" group:"mask"`
	Palette     bool         `help:"Write the mask colors as a RIFF .pal file" default:"false" group:"mask"`
	Preview     bool         `help:"Print masks on the terminal" default:"false" group:"mask"`
	PreviewSize int          `help:"Largest side of terminal previews, in pixels" default:"256" group:"mask"`
	Report      bool         `help:"Write a JSON report of every sheet" default:"true" negatable:""`
	FillColor   sprite.Color `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if err := c.SheetParams.validate(); err != nil {
		return err
	}

	var err error
	if c.FillColor, err = parseColor(c.Fill); err != nil {
		return err
	}
	if n := c.FillColor.Channels(); n != 3 && n != 4 {
		return fmt.Errorf("invalid fill color %q: a mask needs an RGB or RGBA color", c.Fill)
	}

	if c.MinDistance < 0 {
		return fmt.Errorf("invalid minimum color distance: %g", c.MinDistance)
	}

	if (c.Palette || c.Preview) && !c.Mask {
		return fmt.Errorf("--palette and --preview need --mask")
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	// previews of concurrent sheets must not interleave
	var printMu sync.Mutex
	protocol := preview.Blocks
	if c.Preview {
		protocol = preview.Detect()
	}

	var processedCount, errCount, spriteCount atomic.Uint64
	for i, filePath := range c.Files {
		worker(func() {
			logger := slog.Default().With("file", filePath)

			n, err := c.process(filePath, uint64(i), logger, func(m *sprite.Mask) {
				printMu.Lock()
				defer printMu.Unlock()
				fmt.Fprintln(os.Stdout, filePath)
				preview.Print(os.Stdout, preview.Fit(m.Image, c.PreviewSize), protocol)
			})
			if err != nil {
				errCount.Add(1)
				logger.Error("could not segment sheet", "error", err)
				return
			}
			spriteCount.Add(uint64(n))
			processedCount.Add(1)
		})
	}

	wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors, "sprites", spriteCount.Load())

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(filePath string, index uint64, logger *slog.Logger, show func(*sprite.Mask)) (int, error) {
	sheet, _, err := c.openSheet(filePath, logger)
	if err != nil {
		return 0, err
	}

	sprites := sheet.Sprites()
	r := sheet.Raster()
	st := summarize(sprites, r.Width(), r.Height())
	logger.Info("segmented", "background", sheet.Background(), "sprites", st.Count,
		"mean_density", st.MeanDensity, "stddev_density", st.StdDevDensity,
		"mean_surface", st.MeanSurface, "coverage", st.Coverage)

	name := baseName(filePath)
	var mask *sprite.Mask
	if c.Mask {
		opts := sprite.MaskOptions{Fill: c.FillColor, MinDistance: c.MinDistance}
		if c.Seed != 0 {
			opts.Rand = rand.New(rand.NewPCG(c.Seed, index))
		}
		if mask, err = sheet.RenderMask(opts); err != nil {
			return 0, fmt.Errorf("could not render mask: %w", err)
		}

		if err = saveImage(mask.Image, "png", c.Dest, name+".mask.png"); err != nil {
			return 0, fmt.Errorf("could not save mask to %q: %w", c.Dest, err)
		}
		if c.Palette {
			if err = savePalette(mask.Colors, c.Dest, name+".pal"); err != nil {
				return 0, fmt.Errorf("could not save palette to %q: %w", c.Dest, err)
			}
		}
		if c.Preview {
			show(mask)
		}
	}

	if c.Report {
		if err = saveReport(newReport(filePath, sheet, mask), c.Dest, name+".json"); err != nil {
			return 0, fmt.Errorf("could not save report to %q: %w", c.Dest, err)
		}
	}

	return len(sprites), nil
}
