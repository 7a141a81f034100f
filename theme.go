package muon

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// themeFile mirrors the TOML theme document. Absent fields keep their
// default-style values.
type themeFile struct {
	Size          []int             `toml:"size"`
	Padding       *int              `toml:"padding"`
	Spacing       *int              `toml:"spacing"`
	Indentation   *int              `toml:"indentation"`
	TitleHeight   *int              `toml:"title_height"`
	ScrollbarSize *int              `toml:"scrollbar_size"`
	ThumbSize     *int              `toml:"thumb_size"`
	Colors        map[string]string `toml:"colors"`
}

var colorRoles = map[string]ColorID{
	"text":         ColorText,
	"border":       ColorBorder,
	"window_bg":    ColorWindowBG,
	"title_bg":     ColorTitleBG,
	"title_text":   ColorTitleText,
	"panel_bg":     ColorPanelBG,
	"button":       ColorButton,
	"button_hover": ColorButtonHover,
	"button_focus": ColorButtonFocus,
	"base":         ColorBase,
	"base_hover":   ColorBaseHover,
	"base_focus":   ColorBaseFocus,
	"scroll_base":  ColorScrollBase,
	"scroll_thumb": ColorScrollThumb,
}

// LoadStyle parses a TOML theme and applies it over the default style.
//
//	padding = 6
//	[colors]
//	window_bg = "#323232"
//	text = "#e6e6e6ff"
func LoadStyle(data []byte) (*Style, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	style := DefaultStyle()
	if tf.Size != nil {
		if len(tf.Size) != 2 {
			return nil, fmt.Errorf("theme size wants [w, h], got %d values", len(tf.Size))
		}
		style.Size = Vec2{tf.Size[0], tf.Size[1]}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	setInt(&style.Padding, tf.Padding)
	setInt(&style.Spacing, tf.Spacing)
	setInt(&style.Indentation, tf.Indentation)
	setInt(&style.TitleHeight, tf.TitleHeight)
	setInt(&style.ScrollbarSize, tf.ScrollbarSize)
	setInt(&style.ThumbSize, tf.ThumbSize)
	for name, val := range tf.Colors {
		role, ok := colorRoles[name]
		if !ok {
			return nil, fmt.Errorf("unknown color role %q", name)
		}
		c, err := parseColor(val)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		style.Colors[role] = c
	}
	return &style, nil
}

// parseColor reads "#rrggbb" or "#rrggbbaa".
func parseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' || (len(s) != 7 && len(s) != 9) {
		return Color{}, fmt.Errorf("want #rrggbb or #rrggbbaa, got %q", s)
	}
	var v [4]uint8
	v[3] = 255
	for i := 0; (i+1)*2 < len(s); i++ {
		hi, ok1 := hexNibble(s[1+i*2])
		lo, ok2 := hexNibble(s[2+i*2])
		if !ok1 || !ok2 {
			return Color{}, fmt.Errorf("bad hex digit in %q", s)
		}
		v[i] = hi<<4 | lo
	}
	return Color{v[0], v[1], v[2], v[3]}, nil
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
