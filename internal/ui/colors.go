package ui

// The Color* functions return the escape code of the active theme for a
// color role. They return "" under NoColorTheme.

func ColorReset() string     { return GetCurrentTheme().Reset }
func ColorRed() string       { return GetCurrentTheme().Error }
func ColorGreen() string     { return GetCurrentTheme().Success }
func ColorYellow() string    { return GetCurrentTheme().Warning }
func ColorBlue() string      { return GetCurrentTheme().Primary }
func ColorMagenta() string   { return GetCurrentTheme().Info }
func ColorCyan() string      { return GetCurrentTheme().Secondary }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }
