package theme

// registerBuiltins registers all built-in themes in the registry.
func registerBuiltins() {
	for _, t := range []Theme{
		defaultTheme(),
		gruvboxTheme(),
		nordTheme(),
		draculaTheme(),
	} {
		Register(t)
	}
}

// defaultTheme is the dark neutral theme with an indigo accent.
func defaultTheme() Theme {
	return Theme{
		Name:       "default",
		Foreground: "#d4d4d4",
		Dim:        "#6b7280",
		Accent:     "#667eea",

		Border:      "#3e3e3e",
		BorderFocus: "#764ba2",
		Title:       "#d4d4d4",

		Active:   "#667eea",
		ButtonFG: "#ffffff",
		ButtonBG: "#4b5563",
		Flash:    "#4ec970",
		Track:    "#3e3e3e",

		HelpKey:  "#764ba2",
		HelpDesc: "#6b7280",
	}
}

// gruvboxTheme is the warm retro Gruvbox palette.
func gruvboxTheme() Theme {
	return Theme{
		Name:       "gruvbox",
		Foreground: "#ebdbb2",
		Dim:        "#928374",
		Accent:     "#fe8019",

		Border:      "#504945",
		BorderFocus: "#fe8019",
		Title:       "#fabd2f",

		Active:   "#b8bb26",
		ButtonFG: "#282828",
		ButtonBG: "#d5c4a1",
		Flash:    "#b8bb26",
		Track:    "#504945",

		HelpKey:  "#fe8019",
		HelpDesc: "#928374",
	}
}

// nordTheme is the cool arctic Nord palette.
func nordTheme() Theme {
	return Theme{
		Name:       "nord",
		Foreground: "#d8dee9",
		Dim:        "#4c566a",
		Accent:     "#88c0d0",

		Border:      "#3b4252",
		BorderFocus: "#88c0d0",
		Title:       "#eceff4",

		Active:   "#81a1c1",
		ButtonFG: "#2e3440",
		ButtonBG: "#d8dee9",
		Flash:    "#a3be8c",
		Track:    "#3b4252",

		HelpKey:  "#88c0d0",
		HelpDesc: "#4c566a",
	}
}

// draculaTheme is the Dracula palette.
func draculaTheme() Theme {
	return Theme{
		Name:       "dracula",
		Foreground: "#f8f8f2",
		Dim:        "#6272a4",
		Accent:     "#bd93f9",

		Border:      "#44475a",
		BorderFocus: "#ff79c6",
		Title:       "#f8f8f2",

		Active:   "#50fa7b",
		ButtonFG: "#282a36",
		ButtonBG: "#bd93f9",
		Flash:    "#50fa7b",
		Track:    "#44475a",

		HelpKey:  "#ff79c6",
		HelpDesc: "#6272a4",
	}
}
