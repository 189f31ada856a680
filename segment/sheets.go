package segment

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spritecut/sprite"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// SheetParams select the sprite sheets to process and how their background
// is found.
type SheetParams struct {
	Scan       string       `help:"Sprite sheet, or folder of sprite sheets, to process" default:"." env:"SPRITECUT_SCAN"`
	Dest       string       `help:"Destination folder. Relative to the scanned folder if not absolute." default:"sprites" env:"SPRITECUT_DEST"`
	Background string       `help:"Background color as #RGB, #RGBA, #RRGGBB, #RRGGBBAA, or a gray/palette value. Detected when empty."`
	Detect     string       `help:"Background detection used when no background is given" enum:"common,dominant" default:"common"`
	BgColor    sprite.Color `kong:"-"`
	Files      []string     `kong:"-"`
}

func (p *SheetParams) validate() error {
	scan, err := filepath.Abs(p.Scan)
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", p.Scan, err)
	}
	info, err := os.Stat(scan)
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", p.Scan, err)
	}

	scanDir := scan
	if info.IsDir() {
		entries, err := os.ReadDir(scan)
		if err != nil {
			return fmt.Errorf("unable to read folder %q: %w", scan, err)
		}
		p.Files = p.Files[:0]
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			p.Files = append(p.Files, filepath.Join(scan, e.Name()))
		}
	} else {
		scanDir = filepath.Dir(scan)
		p.Files = []string{scan}
	}
	p.Scan = scan

	if !filepath.IsAbs(p.Dest) {
		p.Dest = filepath.Join(scanDir, p.Dest)
	}

	if p.Background != "" {
		if p.BgColor, err = parseColor(p.Background); err != nil {
			return err
		}
	}

	return nil
}

func (p *SheetParams) detector() sprite.BackgroundDetector {
	if p.Detect == "dominant" {
		return sprite.DominantColor
	}
	return sprite.MostCommonColor
}

// openSheet decodes the image at path and prepares it for segmentation.
func (p *SheetParams) openSheet(path string, logger *slog.Logger) (*sprite.Sheet, string, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(imgFile)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}

	sheet, err := sprite.NewSheet(sprite.FromImage(img), sprite.Options{
		Background: p.BgColor,
		Detector:   p.detector(),
		Logger:     logger,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not prepare sheet: %w", err)
	}
	return sheet, imgType, nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return name[:len(name)-len(filepath.Ext(name))]
}
