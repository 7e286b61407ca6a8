package compat

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

var (
	wattsMatcher  = regexp2.MustCompile(`(\d+(?:\.\d+)?)\s*W(?:atts?)?\b`, regexp2.IgnoreCase)
	mmMatcher     = regexp2.MustCompile(`(\d+(?:\.\d+)?)\s*mm\b`, regexp2.IgnoreCase)
	ddrMatcher    = regexp2.MustCompile(`(?<![A-Za-z])DDR(\d)(?!\d)`, regexp2.IgnoreCase)
	socketCleaner = regexp2.MustCompile(`[\s\-_]+`, 0)
	listSplitter  = regexp2.MustCompile(`\s*(?:,|/|;|\band\b|&)\s*`, regexp2.IgnoreCase)
)

// ParseWatts lee valores como "170W", "1,000 W" o "450 watts".
func ParseWatts(v string) (float64, bool) {
	return firstNumber(wattsMatcher, v)
}

// ParseMillimeters lee valores como "337mm" o "Up to 400 mm".
func ParseMillimeters(v string) (float64, bool) {
	return firstNumber(mmMatcher, v)
}

// ParseMemoryType extrae la generación DDR ("DDR5") de textos como "DDR5-5600" o "4x DIMM DDR4".
// No confunde GDDR6 con DDR6.
func ParseMemoryType(v string) (string, bool) {
	m, err := ddrMatcher.FindStringMatch(v)
	if err != nil || m == nil {
		return "", false
	}
	return "DDR" + m.GroupByNumber(1).String(), true
}

// NormalizeSocket deja el socket comparable: "LGA 1700" y "lga-1700" quedan como "LGA1700".
func NormalizeSocket(v string) string {
	out, err := socketCleaner.Replace(strings.TrimSpace(v), "", -1, -1)
	if err != nil {
		out = v
	}
	return strings.ToUpper(out)
}

// SplitList separa listas de atributos ("Mini-ITX, Micro-ATX, ATX", "Intel & AMD").
func SplitList(v string) []string {
	parts := Regexp2Split(listSplitter, v)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Regexp2Split corta s en cada coincidencia de re.
func Regexp2Split(re *regexp2.Regexp, s string) []string {
	// regexp2 indexa en runas, no en bytes
	runes := []rune(s)
	var parts []string
	last := 0
	m, _ := re.FindStringMatch(s)
	for m != nil {
		parts = append(parts, string(runes[last:m.Index]))
		last = m.Index + m.Length
		m, _ = re.FindNextMatch(m)
	}
	return append(parts, string(runes[last:]))
}

func firstNumber(re *regexp2.Regexp, v string) (float64, bool) {
	v = strings.ReplaceAll(v, ",", "")
	m, err := re.FindStringMatch(v)
	if err != nil || m == nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(m.GroupByNumber(1).String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
