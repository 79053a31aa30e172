// internal/panel/presets.go
package panel

// Dimensions is a width/height pair. Values are raw tokens; they are
// normalized to CSS lengths only when the embed snippet is generated.
type Dimensions struct {
	Width  string
	Height string
}

// presets maps preset keys to the dimensions known to fit each
// embedding host. The table is part of the external contract and must
// not drift.
var presets = map[string]Dimensions{
	"canvas":      {Width: "100%", Height: "800"},
	"moodle":      {Width: "100%", Height: "700"},
	"wordpress":   {Width: "100%", Height: "600"},
	"squarespace": {Width: "100%", Height: "600"},
	"wix":         {Width: "100%", Height: "550"},
	"mobile":      {Width: "375", Height: "500"},
	"fixed":       {Width: "800", Height: "600"},
}

// presetOrder fixes the menu order; map iteration would shuffle it.
var presetOrder = []string{
	"canvas", "moodle", "wordpress", "squarespace", "wix", "mobile", "fixed",
}

// Preset looks up a named dimension preset.
func Preset(key string) (Dimensions, bool) {
	d, ok := presets[key]
	return d, ok
}

// PresetKeys returns the preset keys in menu order.
func PresetKeys() []string {
	keys := make([]string, len(presetOrder))
	copy(keys, presetOrder)
	return keys
}
