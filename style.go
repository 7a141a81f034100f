package muon

// Font is an opaque client font handle. The core never interprets it; it is
// passed to the measurement callbacks and carried through text commands.
// Zero conventionally means "default font".
type Font int32

// Style holds the metrics and flat color palette used by every widget. The
// context starts with a copy of the default style; the client may point
// Style at its own between frames.
type Style struct {
	Font          Font
	Size          Vec2 // default widget size before padding
	Padding       int
	Spacing       int
	Indentation   int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	Colors        [colorMax]Color
}

// DefaultStyle returns the built-in theme.
func DefaultStyle() Style {
	return Style{
		Font:          0,
		Size:          Vec2{68, 10},
		Padding:       5,
		Spacing:       4,
		Indentation:   24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Colors: [colorMax]Color{
			ColorText:        {230, 230, 230, 255},
			ColorBorder:      {25, 25, 25, 255},
			ColorWindowBG:    {50, 50, 50, 255},
			ColorTitleBG:     {25, 25, 25, 255},
			ColorTitleText:   {240, 240, 240, 255},
			ColorPanelBG:     {0, 0, 0, 0},
			ColorButton:      {75, 75, 75, 255},
			ColorButtonHover: {95, 95, 95, 255},
			ColorButtonFocus: {115, 115, 115, 255},
			ColorBase:        {30, 30, 30, 255},
			ColorBaseHover:   {35, 35, 35, 255},
			ColorBaseFocus:   {40, 40, 40, 255},
			ColorScrollBase:  {43, 43, 43, 255},
			ColorScrollThumb: {30, 30, 30, 255},
		},
	}
}
