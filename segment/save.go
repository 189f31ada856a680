package segment

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"spritecut/palette"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// writeAtomic writes destName in destDir through a temporary file that is
// renamed into place only when write succeeded.
func writeAtomic(destDir, destName string, write func(io.Writer) error) (err error) {
	outFile, err := os.CreateTemp(destDir, destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(destDir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			os.Remove(outFile.Name())
		}
	}()

	if err = write(outFile); err != nil {
		return err
	}

	canRename = true
	return nil
}

func saveImage(img image.Image, outType, destDir, destName string) error {
	return writeAtomic(destDir, destName, func(w io.Writer) error {
		switch outType {
		case "gif":
			if err := gif.Encode(w, img, nil); err != nil {
				return fmt.Errorf("could not encode GIF destination %q: %w", destName, err)
			}
		case "png":
			enc := png.Encoder{
				CompressionLevel: png.BestCompression,
				BufferPool:       pngPool,
			}
			if err := enc.Encode(w, img); err != nil {
				return fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
			}
		case "bmp":
			if err := bmp.Encode(w, img); err != nil {
				return fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
			}
		case "tiff":
			if err := tiff.Encode(w, img, nil); err != nil {
				return fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
			}
		default:
			return fmt.Errorf("unsupported output format: %s", outType)
		}
		return nil
	})
}

func saveReport(rep Report, destDir, destName string) error {
	return writeAtomic(destDir, destName, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("could not encode report %q: %w", destName, err)
		}
		return nil
	})
}

func savePalette(colors map[int]color.NRGBA, destDir, destName string) error {
	return writeAtomic(destDir, destName, func(w io.Writer) error {
		if _, err := palette.WriteTo(w, []color.Palette{palette.FromLabels(colors)}); err != nil {
			return fmt.Errorf("could not write palette %q: %w", destName, err)
		}
		return nil
	})
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
