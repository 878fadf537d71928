package assets

import (
	"image/color"
	"strings"

	"github.com/automoto/bombgrid/config"
)

// Palette maps render material keys to flat colors. It is built once and
// never read by the simulation.
var Palette = map[string]color.RGBA{
	"wood":   config.Wood,
	"bomb":   {R: 30, G: 30, B: 36, A: 255},
	"floor":  config.Floor,
	"player": config.White,
}

func init() {
	for i, c := range config.StoneShades {
		Palette[stoneKey(i)] = c
	}
}

func stoneKey(i int) string {
	return "stone-" + string(rune('0'+i))
}

// Color returns the palette color of key. Unknown keys render magenta so
// they stand out.
func Color(key string) color.RGBA {
	if c, ok := Palette[key]; ok {
		return c
	}
	if strings.HasPrefix(key, "stone-") {
		return config.StoneShades[0]
	}
	return color.RGBA{R: 255, G: 0, B: 255, A: 255}
}
