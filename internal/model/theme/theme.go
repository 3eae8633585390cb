package theme

// Colors holds one theme's palette.
type Colors struct {
	Bg          string `json:"bg"`
	Accent      string `json:"accent"`
	AccentDark  string `json:"accentDark"`
	AccentLight string `json:"accentLight"`
}

// Default is the theme applied before any preference loads.
const Default = "classic"

var catalog = map[string]Colors{
	"classic": {
		Bg:          "#FFF9F5",
		Accent:      "#FF8FA3",
		AccentDark:  "#E85D75",
		AccentLight: "#FFAEBC",
	},
	"soft-blue": {
		Bg:          "#F0F7FF",
		Accent:      "#5BB5D5",
		AccentDark:  "#3A9BC5",
		AccentLight: "#7EC8E3",
	},
	"lemon": {
		Bg:          "#FFFEF0",
		Accent:      "#F5C842",
		AccentDark:  "#D4A82E",
		AccentLight: "#FBE7C6",
	},
	"mint": {
		Bg:          "#F0FFF4",
		Accent:      "#4FD18B",
		AccentDark:  "#2FB36E",
		AccentLight: "#B4F8C8",
	},
}

// Known reports whether name is a catalog theme.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Palette returns the colors for name, falling back to the default theme
// when the name is unknown.
func Palette(name string) Colors {
	if c, ok := catalog[name]; ok {
		return c
	}
	return catalog[Default]
}

// Names lists the catalog themes.
func Names() []string {
	return []string{"classic", "soft-blue", "lemon", "mint"}
}
