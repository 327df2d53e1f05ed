// Package app holds application-wide fyne settings.
package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// EggTheme paints the window background with the backdrop behind the egg so
// no default theme colour shows around the raster while the window settles.
type EggTheme struct {
	backdrop color.Color
}

var _ fyne.Theme = (*EggTheme)(nil)

// NewTheme returns a theme with the given backdrop.
func NewTheme(backdrop color.Color) *EggTheme {
	return &EggTheme{backdrop: backdrop}
}

func (t *EggTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameOverlayBackground:
		return t.backdrop
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *EggTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *EggTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *EggTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding, theme.SizeNameInnerPadding:
		return 0 // The raster fills the window edge to edge
	default:
		return theme.DefaultTheme().Size(name)
	}
}
