package segment

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"sync/atomic"

	"spritecut/parallel"
	"spritecut/sprite"

	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"
)

// ExtractCmd cuts every sprite out of its sheet into a file of its own.
type ExtractCmd struct {
	SheetParams
	MinPixels int    `help:"Skip sprites made of fewer pixels" default:"1"`
	Format    string `help:"Output format of sprite images" enum:"png,gif,bmp,tiff" default:"png"`
}

func (c *ExtractCmd) Validate(kctx *kong.Context) error {
	if err := c.SheetParams.validate(); err != nil {
		return err
	}
	if c.MinPixels < 0 {
		return fmt.Errorf("invalid minimum sprite size: %d", c.MinPixels)
	}
	return nil
}

func (c *ExtractCmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	var sheetCount, spriteCount, errCount atomic.Uint64
	for _, filePath := range c.Files {
		worker(func() {
			logger := slog.Default().With("file", filePath)

			n, err := c.extract(filePath, logger)
			spriteCount.Add(uint64(n))
			if err != nil {
				errCount.Add(1)
				logger.Error("could not extract sprites", "error", err)
				return
			}
			sheetCount.Add(1)
		})
	}

	wait()

	errors := errCount.Load()
	slog.Info("stats", "sheets", sheetCount.Load(), "sprites", spriteCount.Load(), "errors", errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *ExtractCmd) extract(filePath string, logger *slog.Logger) (int, error) {
	sheet, _, err := c.openSheet(filePath, logger)
	if err != nil {
		return 0, err
	}

	src := sprite.AsImage(sheet.Raster())
	_, labels := sheet.FindSprites()
	name := baseName(filePath)

	saved := 0
	for _, sp := range sheet.Sprites() {
		if sp.PixelCount() < c.MinPixels {
			continue
		}

		destName := fmt.Sprintf("%s_%d.%s", name, sp.Label(), c.Format)
		if err := saveImage(cutOut(src, labels, sp), c.Format, c.Dest, destName); err != nil {
			return saved, fmt.Errorf("could not save sprite %d: %w", sp.Label(), err)
		}
		saved++
	}

	logger.Info("extracted", "sprites", saved, "dir", c.Dest)
	return saved, nil
}

// cutOut copies the bounding box of sp from src. Pixels of other sprites
// and of the background become transparent.
func cutOut(src image.Image, labels [][]int, sp *sprite.Sprite) *image.NRGBA {
	bounds := sp.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min.Add(bounds.Min), draw.Src)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if labels[y][x] != sp.Label() {
				dst.SetNRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.NRGBA{})
			}
		}
	}
	return dst
}
