// Package text builds glyph atlases and provides the integer text metrics
// the UI core needs from its measurement callbacks. It knows nothing about
// rendering; backends upload the atlas image however they like.
package text

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  int // pixels
	BearingX int // left bearing in pixels
	BearingY int // distance from baseline to glyph top
	W, H     int // glyph bitmap size
	X, Y     int // position in the atlas
}

// Font is a rasterized face: a white-on-transparent RGBA atlas plus the
// per-rune metrics needed to lay glyphs along a baseline.
type Font struct {
	SizePx  int
	Ascent  int
	Descent int // negative, following font metrics convention
	LineGap int
	Glyphs  map[rune]Glyph
	Atlas   *image.RGBA
	White   image.Point // guaranteed opaque-white pixel for solid fills
	face    font.Face
}

// Close releases the underlying face.
func (f *Font) Close() error {
	if f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}

// Default loads the embedded Go Regular face at the given pixel size.
func Default(sizePx int) (*Font, error) {
	return Load(goregular.TTF, sizePx)
}

// Load parses TTF data and bakes ASCII..Latin-1 glyphs into a white atlas
// with alpha coverage.
func Load(ttf []byte, sizePx int) (*Font, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}

	// Metrics in pixels
	m := face.Metrics()
	ascent := m.Ascent.Round()
	descent := -m.Descent.Round()
	lineGap := m.Height.Round() - ascent + descent

	// Target rune set (32..255). Expand later as needed.
	type meas struct {
		r      rune
		w, h   int
		adv    int
		bx, by int
	}
	var measure []meas
	for rr := rune(32); rr <= rune(255); rr++ {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Round(),
			h:   (br.Max.Y - br.Min.Y).Round(),
			adv: adv.Round(),
			bx:  br.Min.X.Round(),
			by:  -br.Min.Y.Round(),
		})
	}

	// Simple shelf packer (rows). Start at 128^2 and grow until everything
	// fits. The first shelf cell is reserved for the solid-white block.
	const padding = 2
	const whiteSize = 3
	atlasSize := 128
	var pos map[rune]image.Point
	for {
		x, y, rowH := padding, padding, whiteSize
		x += whiteSize + padding
		fits := true
		pos = make(map[rune]image.Point, len(measure))

		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+padding*2 > atlasSize || g.h+padding*2 > atlasSize {
				fits = false
				break
			}
			if x+g.w+padding > atlasSize {
				x = padding
				y += rowH + padding
				rowH = 0
			}
			if y+g.h+padding > atlasSize {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + padding
			if g.h > rowH {
				rowH = g.h
			}
		}

		if fits {
			break
		}
		atlasSize *= 2
		if atlasSize > 4096 {
			face.Close()
			return nil, fmt.Errorf("font atlas too large (>%d)", 4096)
		}
	}

	// Build atlas RGBA: white glyphs with alpha coverage
	dst := image.NewRGBA(image.Rect(0, 0, atlasSize, atlasSize))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)
	white := image.Pt(padding, padding)
	draw.Draw(dst, image.Rect(white.X, white.Y, white.X+whiteSize, white.Y+whiteSize),
		&image.Uniform{color.RGBA{255, 255, 255, 255}}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
	}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		glyph := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if g.w > 0 && g.h > 0 {
			p := pos[g.r]
			// the drawer wants the dot on the baseline
			drawer.Dot = fixed.P(p.X-g.bx, p.Y+g.by)
			drawer.DrawString(string(g.r))
			glyph.X, glyph.Y = p.X, p.Y
		}
		glyphs[g.r] = glyph
	}

	return &Font{
		SizePx: sizePx,
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs: glyphs,
		Atlas:  dst,
		White:  image.Pt(white.X+1, white.Y+1),
		face:   face,
	}, nil
}

// Height is the line height: baseline-to-baseline distance.
func (f *Font) Height() int { return f.Ascent - f.Descent + f.LineGap }

// TextWidth measures s in pixels, the way the renderer will advance pens.
// Runes without a glyph fall back to the space advance.
func (f *Font) TextWidth(s string) int {
	width := 0
	var prev rune = -1
	for _, r := range s {
		g, ok := f.Glyphs[r]
		if !ok {
			if sp, ok2 := f.Glyphs[' ']; ok2 {
				width += sp.Advance
			}
			prev = r
			continue
		}
		if prev >= 0 && f.face != nil {
			width += f.face.Kern(prev, r).Round()
		}
		width += g.Advance
		prev = r
	}
	return width
}

// Kern returns the kerning adjustment between two runes in pixels.
func (f *Font) Kern(a, b rune) int {
	if f.face == nil {
		return 0
	}
	return f.face.Kern(a, b).Round()
}
