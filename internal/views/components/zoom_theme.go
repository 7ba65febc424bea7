package components

import (
	"image/color"

	"csv-reader/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ZoomTheme scales the text sizes of a base theme by a zoom percentage.
// It is applied to a single view through container.NewThemeOverride.
type ZoomTheme struct {
	base fyne.Theme
	zoom int
}

func NewZoomTheme(base fyne.Theme) *ZoomTheme {
	if base == nil {
		base = theme.DefaultTheme()
	}
	return &ZoomTheme{base: base, zoom: models.DefaultZoom}
}

func (z *ZoomTheme) SetZoom(percent int) {
	z.zoom = percent
}

func (z *ZoomTheme) Zoom() int {
	return z.zoom
}

func (z *ZoomTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return z.base.Color(name, variant)
}

func (z *ZoomTheme) Font(style fyne.TextStyle) fyne.Resource {
	return z.base.Font(style)
}

func (z *ZoomTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return z.base.Icon(name)
}

func (z *ZoomTheme) Size(name fyne.ThemeSizeName) float32 {
	size := z.base.Size(name)
	switch name {
	case theme.SizeNameText,
		theme.SizeNameCaptionText,
		theme.SizeNameHeadingText,
		theme.SizeNameSubHeadingText,
		theme.SizeNameInlineIcon:
		return models.FontSize(size, z.zoom)
	}
	return size
}

// TextSize is the body text size at the current zoom.
func (z *ZoomTheme) TextSize() float32 {
	return z.Size(theme.SizeNameText)
}
