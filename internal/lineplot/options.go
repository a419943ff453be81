package lineplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/mdwrap/mdwrap/internal/plotcfg"
)

// Typed accessors over the loosely-typed option trees that survive
// section filtering. YAML numbers decode as int or float64 depending on
// how they are written, so every numeric read goes through asFloat.

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func getFloat(tree plotcfg.Tree, key string) (float64, bool) {
	v, ok := tree[key]
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

func getInt(tree plotcfg.Tree, key string) (int, bool) {
	f, ok := getFloat(tree, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func getString(tree plotcfg.Tree, key string) (string, bool) {
	v, ok := tree[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func getBool(tree plotcfg.Tree, key string) bool {
	v, ok := tree[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func getTree(tree plotcfg.Tree, key string) (plotcfg.Tree, bool) {
	v, ok := tree[key]
	if !ok {
		return nil, false
	}
	t, ok := v.(plotcfg.Tree)
	return t, ok
}

func getFloatList(tree plotcfg.Tree, key string) ([]float64, bool) {
	v, ok := tree[key]
	if !ok {
		return nil, false
	}
	list, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	out := make([]float64, 0, len(list))
	for _, item := range list {
		f, ok := asFloat(item)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// tickOptionsFrom reads an "interval" block into TickOptions.
func tickOptionsFrom(tree plotcfg.Tree) TickOptions {
	opts := TickOptions{}
	if s, ok := getString(tree, "type"); ok {
		opts.Type = s
	}
	if f, ok := getFloat(tree, "round_to_nearest"); ok {
		opts.RoundToNearest = &f
	}
	if f, ok := getFloat(tree, "top"); ok {
		opts.Top = &f
	}
	if f, ok := getFloat(tree, "bottom"); ok {
		opts.Bottom = &f
	}
	if n, ok := getInt(tree, "steps"); ok {
		opts.Steps = &n
	}
	if f, ok := getFloat(tree, "spacing"); ok {
		opts.Spacing = &f
	}
	opts.CenterInZero = getBool(tree, "center_in_zero")
	return opts
}

// namedColors covers the color names user configurations actually use.
var namedColors = map[string]color.RGBA{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xd6, 0x2a, 0x28, 0xff},
	"green":  {0x2c, 0xa0, 0x2c, 0xff},
	"blue":   {0x1f, 0x77, 0xb4, 0xff},
	"orange": {0xff, 0x7f, 0x0e, 0xff},
	"purple": {0x94, 0x67, 0xbd, 0xff},
	"gray":   {0x7f, 0x7f, 0x7f, 0xff},
	"grey":   {0x7f, 0x7f, 0x7f, 0xff},
}

// parseColor accepts "#RRGGBB" hex colors and a small set of names.
func parseColor(s string) (color.Color, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		n, err := strconv.ParseUint(s[1:], 16, 32)
		if err == nil {
			return color.RGBA{
				R: uint8(n >> 16),
				G: uint8(n >> 8),
				B: uint8(n),
				A: 0xff,
			}, nil
		}
	}
	return nil, fmt.Errorf("unrecognized color %q", s)
}
