package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// forcedVariant pins the default theme to one variant, ignoring the
// desktop's light/dark preference.
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// applyTheme maps the config theme name onto the Fyne settings. Unknown
// names fall back to the system preference; config validation rejects
// them before we get here.
func applyTheme(app fyne.App, name string) {
	switch name {
	case "dark":
		app.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantDark})
	case "light":
		app.Settings().SetTheme(&forcedVariant{Theme: theme.DefaultTheme(), variant: theme.VariantLight})
	default:
		app.Settings().SetTheme(theme.DefaultTheme())
	}
}
