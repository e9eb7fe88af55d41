/*
 * colors.go, part of gosurf.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package phaseplot

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

//categorical is a palette with one color per phase.
type categorical []color.Color

func (c categorical) Colors() []color.Color { return c }

//PhaseColors returns one color for each name in names. A name can be an SVG
//color name ("red", "steelblue") or a hex code ("#4682b4", "#48b").
//Empty names get evenly spaced hues.
func PhaseColors(names []string) ([]color.Color, error) {
	ret := make([]color.Color, len(names))
	for i, n := range names {
		if n == "" {
			r, g, b := hue(i, len(names))
			ret[i] = color.RGBA{R: r, G: g, B: b, A: 255}
			continue
		}
		c, err := parseColor(n)
		if err != nil {
			return nil, err
		}
		ret[i] = c
	}
	return ret, nil
}

func parseColor(name string) (color.Color, error) {
	n := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if c, ok := colornames.Map[n]; ok {
		return c, nil
	}
	if !strings.HasPrefix(n, "#") {
		return nil, fmt.Errorf("phaseplot: unknown color %q", name)
	}
	hex := n[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("phaseplot: invalid color %q", name)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("phaseplot: invalid color %q: %w", name, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

//hue returns the key-th of steps colors, evenly spaced in hue between
//red and violet, with the yellows skipped.
func hue(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return hsv2rgb(h, 1, 0.9)
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func hsv2rgb(h, v, s float64) (uint8, uint8, uint8) {
	c := 255 * v
	if s == 0 {
		return uint8(c), uint8(c), uint8(c)
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
