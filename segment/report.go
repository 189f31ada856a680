package segment

import (
	"spritecut/sprite"

	"gonum.org/v1/gonum/stat"
)

type Report struct {
	File       string         `json:"file"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Mode       string         `json:"mode"`
	Background string         `json:"background"`
	Stats      Stats          `json:"stats"`
	Sprites    []SpriteReport `json:"sprites"`
}

type SpriteReport struct {
	Label    int        `json:"label"`
	TopLeft  [2]int     `json:"top_left"`
	BotRight [2]int     `json:"bottom_right"`
	Width    int        `json:"width"`
	Height   int        `json:"height"`
	Surface  int        `json:"surface"`
	Pixels   int        `json:"pixels"`
	Density  float64    `json:"density"`
	Centroid [2]float64 `json:"centroid"`
	Color    string     `json:"mask_color,omitempty"`
}

// Stats summarizes the sprites of one sheet. Standard deviations need at
// least two sprites and are zero otherwise.
type Stats struct {
	Count         int     `json:"count"`
	MeanDensity   float64 `json:"mean_density"`
	StdDevDensity float64 `json:"stddev_density"`
	MeanSurface   float64 `json:"mean_surface"`
	StdDevSurface float64 `json:"stddev_surface"`
	Coverage      float64 `json:"coverage"`
}

func summarize(sprites []*sprite.Sprite, width, height int) Stats {
	st := Stats{Count: len(sprites)}
	if len(sprites) == 0 {
		return st
	}

	densities := make([]float64, len(sprites))
	surfaces := make([]float64, len(sprites))
	pixels := 0
	for i, sp := range sprites {
		densities[i] = sp.Density()
		surfaces[i] = float64(sp.Surface())
		pixels += sp.PixelCount()
	}

	if len(sprites) == 1 {
		st.MeanDensity, st.MeanSurface = densities[0], surfaces[0]
	} else {
		st.MeanDensity, st.StdDevDensity = stat.MeanStdDev(densities, nil)
		st.MeanSurface, st.StdDevSurface = stat.MeanStdDev(surfaces, nil)
	}
	if area := width * height; area > 0 {
		st.Coverage = float64(pixels) / float64(area)
	}
	return st
}

func newReport(file string, sheet *sprite.Sheet, mask *sprite.Mask) Report {
	r := sheet.Raster()
	sprites := sheet.Sprites()
	rep := Report{
		File:       file,
		Width:      r.Width(),
		Height:     r.Height(),
		Mode:       r.Mode().String(),
		Background: sheet.Background().String(),
		Stats:      summarize(sprites, r.Width(), r.Height()),
		Sprites:    make([]SpriteReport, 0, len(sprites)),
	}

	for _, sp := range sprites {
		cx, cy := sp.Centroid()
		tl, br := sp.TopLeft(), sp.BottomRight()
		sr := SpriteReport{
			Label:    sp.Label(),
			TopLeft:  [2]int{tl.X, tl.Y},
			BotRight: [2]int{br.X, br.Y},
			Width:    sp.Width(),
			Height:   sp.Height(),
			Surface:  sp.Surface(),
			Pixels:   sp.PixelCount(),
			Density:  sp.Density(),
			Centroid: [2]float64{cx, cy},
		}
		if mask != nil {
			c := mask.Colors[sp.Label()]
			sr.Color = sprite.RGBA(c.R, c.G, c.B, c.A).String()
		}
		rep.Sprites = append(rep.Sprites, sr)
	}
	return rep
}
