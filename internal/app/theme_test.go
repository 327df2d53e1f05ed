package app

import (
	"testing"

	"eggpaint/pkg/colorutil"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestThemeBackdrop(t *testing.T) {
	th := NewTheme(colorutil.Backdrop)
	assert.Equal(t, colorutil.Backdrop, th.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, colorutil.Backdrop, th.Color(theme.ColorNameOverlayBackground, theme.VariantDark))
	assert.Zero(t, th.Size(theme.SizeNamePadding))
	assert.Zero(t, th.Size(theme.SizeNameInnerPadding))
}
