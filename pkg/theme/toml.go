package theme

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/spinhue/pkg/color"
)

// tomlTheme is the TOML-serializable representation of a Theme.
type tomlTheme struct {
	Name     string       `toml:"name"`
	Base     tomlBase     `toml:"base"`
	Panel    tomlPanel    `toml:"panel"`
	Controls tomlControls `toml:"controls"`
	Help     tomlHelp     `toml:"help"`
}

type tomlBase struct {
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type tomlPanel struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
	Title       string `toml:"title"`
}

type tomlControls struct {
	Active   string `toml:"active"`
	ButtonFG string `toml:"button_fg"`
	ButtonBG string `toml:"button_bg"`
	Flash    string `toml:"flash"`
	Track    string `toml:"track"`
}

type tomlHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

// LoadFromTOML parses a TOML theme definition from raw bytes. Every color
// must be present and a valid #RRGGBB value.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt tomlTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		Border:      tt.Panel.Border,
		BorderFocus: tt.Panel.BorderFocus,
		Title:       tt.Panel.Title,

		Active:   tt.Controls.Active,
		ButtonFG: tt.Controls.ButtonFG,
		ButtonBG: tt.Controls.ButtonBG,
		Flash:    tt.Controls.Flash,
		Track:    tt.Controls.Track,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := validate(t); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// LoadFile reads a TOML theme from path.
func LoadFile(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: read %s: %w", path, err)
	}
	return LoadFromTOML(data)
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := tomlTheme{
		Name: t.Name,
		Base: tomlBase{
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Panel: tomlPanel{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
			Title:       t.Title,
		},
		Controls: tomlControls{
			Active:   t.Active,
			ButtonFG: t.ButtonFG,
			ButtonBG: t.ButtonBG,
			Flash:    t.Flash,
			Track:    t.Track,
		},
		Help: tomlHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// validate checks the name and every color field.
func validate(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}
	fields := []struct {
		name, value string
	}{
		{"foreground", t.Foreground},
		{"dim", t.Dim},
		{"accent", t.Accent},
		{"border", t.Border},
		{"border_focus", t.BorderFocus},
		{"title", t.Title},
		{"active", t.Active},
		{"button_fg", t.ButtonFG},
		{"button_bg", t.ButtonBG},
		{"flash", t.Flash},
		{"track", t.Track},
		{"help_key", t.HelpKey},
		{"help_desc", t.HelpDesc},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.name)
		}
		if len(f.value) != 7 || f.value[0] != '#' {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.name)
		}
		if _, ok := color.ParseHex(f.value); !ok {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.name)
		}
	}
	return nil
}
