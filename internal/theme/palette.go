package theme

// Palette maps UI roles to colors.
type Palette struct {
	Background      string `json:"background" yaml:"background"`
	Text            string `json:"text" yaml:"text"`
	Placeholder     string `json:"placeholder" yaml:"placeholder"`
	InputBackground string `json:"inputBackground" yaml:"inputBackground"`
	Button          string `json:"button" yaml:"button"`
	ButtonText      string `json:"buttonText" yaml:"buttonText"`
	Error           string `json:"error" yaml:"error"`
	Link            string `json:"link" yaml:"link"`
}

var (
	LightPalette = Palette{
		Background:      "#ffffff",
		Text:            "#000000",
		Placeholder:     "#555555",
		InputBackground: "#f0f0f0",
		Button:          "#2196F3",
		ButtonText:      "#ffffff",
		Error:           "red",
		Link:            "#2196F3",
	}

	DarkPalette = Palette{
		Background:      "#121212",
		Text:            "#ffffff",
		Placeholder:     "#aaaaaa",
		InputBackground: "#1e1e1e",
		Button:          "#2196F3",
		ButtonText:      "#ffffff",
		Error:           "red",
		Link:            "#2196F3",
	}
)

// PaletteFor returns the static palette of m.
func PaletteFor(m Mode) Palette {
	if m == Dark {
		return DarkPalette
	}
	return LightPalette
}
