// Package color implements the documentColor/colorPresentation thin
// traversal spec §4.8 calls out: a read-only scan of string tokens against
// the hex pattern spec §6 fixes, plus functional rgb()/rgba()/hsl()/hsla()
// literals, producing the presentations §6 lists.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"jsonls/internal/lineindex"
	"jsonls/internal/lsp"
	"jsonls/internal/syntax"
)

// hexPattern is spec §6's exact color-provider regex.
var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var funcPattern = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\(([^)]*)\)$`)

// Scan walks every string node in tree and reports those whose text is a
// recognizable color literal, with Range covering the literal's content
// (excluding the surrounding quotes).
func Scan(text string, lines *lineindex.LineIndex, tree *syntax.Tree) []lsp.ColorInformation {
	var out []lsp.ColorInformation
	tree.Root.Walk(func(n *syntax.Node) bool {
		if n.Kind != syntax.KindString {
			return true
		}
		c, ok := Parse(n.Text)
		if !ok {
			return true
		}
		start := lines.OffsetToPosition(text, n.Start+1)
		end := lines.OffsetToPosition(text, n.End-1)
		out = append(out, lsp.ColorInformation{
			Range: lsp.Range{Start: lsp.Position{Line: start.Line, Character: start.Column}, End: lsp.Position{Line: end.Line, Character: end.Column}},
			Color: c,
		})
		return true
	})
	return out
}

// Parse decodes a hex or functional color literal into normalized
// [0,1]-channel RGBA, or reports ok=false if s is not a color literal.
func Parse(s string) (lsp.Color, bool) {
	if hexPattern.MatchString(s) {
		return parseHex(s), true
	}
	if m := funcPattern.FindStringSubmatch(s); m != nil {
		return parseFunc(m[1], m[2])
	}
	return lsp.Color{}, false
}

func parseHex(s string) lsp.Color {
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		expand := func(c byte) float64 {
			v, _ := strconv.ParseUint(strings.Repeat(string(c), 2), 16, 8)
			return float64(v) / 255
		}
		c := lsp.Color{Red: expand(hex[0]), Green: expand(hex[1]), Blue: expand(hex[2]), Alpha: 1}
		if len(hex) == 4 {
			c.Alpha = expand(hex[3])
		}
		return c
	default: // 6 or 8
		chan2 := func(h string) float64 {
			v, _ := strconv.ParseUint(h, 16, 8)
			return float64(v) / 255
		}
		c := lsp.Color{Red: chan2(hex[0:2]), Green: chan2(hex[2:4]), Blue: chan2(hex[4:6]), Alpha: 1}
		if len(hex) == 8 {
			c.Alpha = chan2(hex[6:8])
		}
		return c
	}
}

func parseFunc(name, args string) (lsp.Color, bool) {
	parts := strings.Split(args, ",")
	nums := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.TrimSuffix(p, "%"))
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return lsp.Color{}, false
		}
		nums = append(nums, f)
	}
	switch name {
	case "rgb", "rgba":
		if len(nums) < 3 {
			return lsp.Color{}, false
		}
		c := lsp.Color{Red: nums[0] / 255, Green: nums[1] / 255, Blue: nums[2] / 255, Alpha: 1}
		if len(nums) >= 4 {
			c.Alpha = nums[3]
		}
		return c, true
	case "hsl", "hsla":
		if len(nums) < 3 {
			return lsp.Color{}, false
		}
		r, g, b := hslToRGB(nums[0], nums[1]/100, nums[2]/100)
		c := lsp.Color{Red: r, Green: g, Blue: b, Alpha: 1}
		if len(nums) >= 4 {
			c.Alpha = nums[3]
		}
		return c, true
	}
	return lsp.Color{}, false
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	r = hueToRGB(p, q, hk+1.0/3)
	g = hueToRGB(p, q, hk)
	b = hueToRGB(p, q, hk-1.0/3)
	return
}

func hueToRGB(p, q, t float64) float64 {
	for t < 0 {
		t++
	}
	for t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// Presentations builds the textual forms spec §6 lists for c, in a fixed
// order: #RRGGBB, #RRGGBBAA, rgb(), rgba(), hsl(), hsla().
func Presentations(c lsp.Color) []lsp.ColorPresentation {
	r, g, b, a := round255(c.Red), round255(c.Green), round255(c.Blue), c.Alpha
	hexRGB := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	hexRGBA := fmt.Sprintf("%s%02x", hexRGB, round255(a))
	h, s, l := rgbToHSL(c.Red, c.Green, c.Blue)
	return []lsp.ColorPresentation{
		{Label: hexRGB},
		{Label: hexRGBA},
		{Label: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)},
		{Label: fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, trimFloat(a))},
		{Label: fmt.Sprintf("hsl(%d,%d%%,%d%%)", int(h+0.5), int(s*100+0.5), int(l*100+0.5))},
		{Label: fmt.Sprintf("hsla(%d,%d%%,%d%%,%s)", int(h+0.5), int(s*100+0.5), int(l*100+0.5), trimFloat(a))},
	}
}

func round255(v float64) int {
	return int(v*255 + 0.5)
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	max := max3(r, g, b)
	min := min3(r, g, b)
	l = (max + min) / 2
	if max == min {
		return 0, 0, l
	}
	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60
	return
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
