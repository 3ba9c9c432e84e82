// Package bigchar draws a single glyph as terminal block art using
// half-block characters.
package bigchar

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontSize is the point size glyphs are rasterized at before scaling.
const FontSize = 64

// threshold is the gray level above which a half cell is lit.
const threshold = 40

// SystemFonts are the CJK fonts tried by LoadSystem, in order.
var SystemFonts = []string{
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// Drawer renders glyphs with one font face and memoizes the results.
// A nil *Drawer renders nothing.
type Drawer struct {
	face font.Face

	mu    sync.Mutex
	cache map[key]string
}

type key struct {
	glyph      string
	cols, rows int
}

// New returns a drawer for face.
func New(face font.Face) *Drawer {
	return &Drawer{face: face, cache: make(map[key]string)}
}

// Parse builds a drawer from TrueType or OpenType data. Collections use
// their first font.
func Parse(data []byte) (*Drawer, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		coll, cerr := opentype.ParseCollection(data)
		if cerr != nil || coll.NumFonts() == 0 {
			return nil, fmt.Errorf("parsing font: %w", err)
		}
		if fnt, err = coll.Font(0); err != nil {
			return nil, fmt.Errorf("parsing font collection: %w", err)
		}
	}

	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: FontSize, DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	return New(face), nil
}

var (
	systemOnce   sync.Once
	systemDrawer *Drawer
)

// LoadSystem returns a drawer for the first usable font in SystemFonts, or
// nil when none is installed. The lookup runs once.
func LoadSystem() *Drawer {
	systemOnce.Do(func() {
		for _, path := range SystemFonts {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if d, err := Parse(data); err == nil {
				systemDrawer = d
				return
			}
		}
	})
	return systemDrawer
}

// Available reports whether d can draw.
func (d *Drawer) Available() bool { return d != nil && d.face != nil }

// Render draws the first rune of glyph into cols x rows terminal cells.
// It returns "" when the drawer is unavailable or the size is empty.
func (d *Drawer) Render(glyph string, cols, rows int) string {
	if !d.Available() || glyph == "" || cols <= 0 || rows <= 0 {
		return ""
	}

	k := key{glyph, cols, rows}
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.cache[k]; ok {
		return s
	}

	s := halfBlocks(scale(d.rasterize(glyph), cols, rows*2), cols, rows)
	d.cache[k] = s
	return s
}

func (d *Drawer) rasterize(glyph string) *image.Gray {
	r := []rune(glyph)[0]
	bounds, _, _ := d.face.GlyphBounds(r)
	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	const pad = 4
	width := max(w+pad*2, FontSize)
	height := max(h+pad*2, FontSize)

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: d.face,
		Dot:  fixed.P((width-w)/2-bounds.Min.X.Floor(), height-pad-bounds.Max.Y.Ceil()),
	}
	dr.DrawString(string(r))
	return img
}

// scale shrinks src to width x height by averaging source areas.
func scale(src *image.Gray, width, height int) *image.Gray {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dst := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		y0, y1 := y*sh/height, min((y+1)*sh/height, sh)
		for x := 0; x < width; x++ {
			x0, x1 := x*sw/width, min((x+1)*sw/width, sw)

			sum, n := 0, 0
			for sy := y0; sy < y1; sy++ {
				for sx := x0; sx < x1; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					n++
				}
			}
			if n > 0 {
				dst.SetGray(x, y, color.Gray{Y: uint8(sum / n)})
			}
		}
	}
	return dst
}

// halfBlocks maps each pair of vertically stacked pixels to one cell.
func halfBlocks(img *image.Gray, cols, rows int) string {
	lit := func(x, y int) bool { return img.GrayAt(x, y).Y > threshold }

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < cols; col++ {
			top, bottom := lit(col, row*2), lit(col, row*2+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}
