package muon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadStyleOverrides(t *testing.T) {
	style, err := LoadStyle([]byte(`
padding = 8
title_height = 30
size = [80, 12]

[colors]
window_bg = "#101820"
text = "#ffffff80"
`))
	require.NoError(t, err)

	assert.Equal(t, 8, style.Padding)
	assert.Equal(t, 30, style.TitleHeight)
	assert.Equal(t, Vec2{80, 12}, style.Size)
	assert.Equal(t, Color{0x10, 0x18, 0x20, 255}, style.Colors[ColorWindowBG])
	assert.Equal(t, Color{255, 255, 255, 0x80}, style.Colors[ColorText])

	// untouched fields keep the defaults
	def := DefaultStyle()
	assert.Equal(t, def.Spacing, style.Spacing)
	assert.Equal(t, def.Colors[ColorButton], style.Colors[ColorButton])
}

func TestLoadStyleEmptyKeepsDefaults(t *testing.T) {
	style, err := LoadStyle(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), *style)
}

func TestLoadStyleRejectsUnknownRole(t *testing.T) {
	_, err := LoadStyle([]byte("[colors]\nshadow = \"#000000\""))
	assert.Error(t, err)
}

func TestLoadStyleRejectsBadColor(t *testing.T) {
	for _, bad := range []string{`"red"`, `"#12"`, `"#1234567"`, `"#zzzzzz"`} {
		_, err := LoadStyle([]byte("[colors]\ntext = " + bad))
		assert.Error(t, err, bad)
	}
}

func TestLoadStyleRejectsBadSize(t *testing.T) {
	_, err := LoadStyle([]byte("size = [1, 2, 3]"))
	assert.Error(t, err)
}
