package segment

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"spritecut/parallel"
)

// writeSheet stores a 6x4 gray sheet holding a 2x2 square at (1,1) and a
// single pixel at (5,3).
func writeSheet(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 6, 4))
	for _, p := range []image.Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}, {5, 3}} {
		img.SetGray(p.X, p.Y, color.Gray{Y: 200})
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return path
}

func runWith(t *testing.T, workers int, run func(parallel.WorkerFunc, parallel.WaitFunc) error) error {
	t.Helper()
	pool := parallel.Start(workers)
	return run(parallel.WorkerFunc(pool.Do), parallel.WaitFunc(pool.Wait))
}

func TestCLICmdValidate(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.png")
	writeSheet(t, dir, ".hidden.png")

	tests := []struct {
		name    string
		cmd     CLICmd
		wantErr bool
	}{
		{"defaults", CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out"}, Mask: true, Fill: "#fff"}, false},
		{"rgba fill", CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out"}, Mask: true, Fill: "#0000"}, false},
		{"gray fill", CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out"}, Mask: true, Fill: "12"}, true},
		{"negative distance", CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out"}, Mask: true, Fill: "#fff", MinDistance: -1}, true},
		{"palette without mask", CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out"}, Fill: "#fff", Palette: true}, true},
		{"bad background", CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out", Background: "#12"}, Mask: true, Fill: "#fff"}, true},
		{"missing scan", CLICmd{SheetParams: SheetParams{Scan: filepath.Join(dir, "nope"), Dest: "out"}, Mask: true, Fill: "#fff"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate(nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v; want error %t", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if len(tt.cmd.Files) != 1 || filepath.Base(tt.cmd.Files[0]) != "a.png" {
				t.Errorf("files = %v; want a.png only", tt.cmd.Files)
			}
			if tt.cmd.Dest != filepath.Join(tt.cmd.Scan, "out") {
				t.Errorf("dest = %q; want it inside %q", tt.cmd.Dest, tt.cmd.Scan)
			}
		})
	}
}

func TestCLICmdRun(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.png")
	writeSheet(t, dir, "b.png")

	cmd := CLICmd{
		SheetParams: SheetParams{Scan: dir, Dest: "out", Detect: "common"},
		Mask:        true,
		Fill:        "#fff",
		Seed:        42,
		Palette:     true,
		Report:      true,
	}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := runWith(t, 2, cmd.Run); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := filepath.Join(dir, "out")
	assertOnlyFiles(t, out, "a.json", "a.mask.png", "a.pal", "b.json", "b.mask.png", "b.pal")

	data, err := os.ReadFile(filepath.Join(out, "a.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if rep.Mode != "L" || rep.Background != "0" || rep.Stats.Count != 2 {
		t.Errorf("report = %+v", rep)
	}
	if sq := rep.Sprites[0]; sq.Pixels != 4 || sq.Density != 1 || sq.Color == "" {
		t.Errorf("square = %+v", sq)
	}

	f, err := os.Open(filepath.Join(out, "a.mask.png"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	mask, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r, g, b, _ := mask.At(0, 0).RGBA(); r != 0xFFFF || g != 0xFFFF || b != 0xFFFF {
		t.Errorf("mask background = %v; want white", mask.At(0, 0))
	}
}

func TestCLICmdRunBadSheet(t *testing.T) {
	dir := t.TempDir()
	writeSheet(t, dir, "a.png")
	if err := os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cmd := CLICmd{SheetParams: SheetParams{Scan: dir, Dest: "out"}, Fill: "#fff", Report: true}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if err := runWith(t, 1, cmd.Run); err == nil {
		t.Fatal("Run succeeded with an undecodable sheet")
	}
	assertOnlyFiles(t, filepath.Join(dir, "out"), "a.json")
}
