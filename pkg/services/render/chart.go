package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/Dogecat0/Aperilex-sub002/pkg/models/domain"
)

// Palette is the fixed color cycle for series points without an
// explicit color. Entry i always receives Palette[i mod len(Palette)],
// indexed by the entry's position before any filtering.
var Palette = [...]string{
	"#3b82f6",
	"#10b981",
	"#f59e0b",
	"#ef4444",
	"#8b5cf6",
	"#06b6d4",
	"#ec4899",
	"#84cc16",
	"#f97316",
	"#6366f1",
}

const (
	truncateThreshold = 15
	truncatePrefix    = 12
)

// SeriesEntry is one raw labeled value before normalization.
type SeriesEntry struct {
	Label    string
	Raw      domain.Value
	Color    string // optional explicit color
	Default  float64
	Metadata map[string]string
}

// SeriesOptions control normalization of a series.
type SeriesOptions struct {
	Absolute        bool // fold signs: chart magnitude is |value|
	DropNonPositive bool // exclude entries whose coerced value is <= 0
}

// ToSeries normalizes raw entries into chart-ready points: numeric
// coercion, sign folding, non-positive filtering, label truncation,
// and deterministic color cycling. Color indices are computed from the
// entry's original position so filtering never shifts the colors of
// retained entries.
func ToSeries(entries []SeriesEntry, opts SeriesOptions) []domain.SeriesPoint {
	var points []domain.SeriesPoint
	for i, e := range entries {
		value := CoerceNumber(e.Raw, e.Default)
		if opts.Absolute {
			value = math.Abs(value)
		}
		if opts.DropNonPositive && value <= 0 {
			continue
		}

		color := e.Color
		if color == "" {
			color = Palette[i%len(Palette)]
		}
		points = append(points, domain.SeriesPoint{
			Name:     TruncateLabel(e.Label),
			Value:    value,
			Color:    color,
			Metadata: e.Metadata,
		})
	}
	return points
}

// CoerceNumber converts a raw value to a finite float. Numbers pass
// through; strings are stripped of everything but digits, dots, and
// minus signs before parsing. Anything unparseable yields def.
func CoerceNumber(v domain.Value, def float64) float64 {
	var f float64
	switch v.Kind {
	case domain.KindNumber:
		f = v.Num
	case domain.KindString:
		parsed, err := strconv.ParseFloat(stripNonNumeric(v.Str), 64)
		if err != nil {
			return def
		}
		f = parsed
	default:
		return def
	}

	if math.IsNaN(f) {
		return 0
	}
	if math.IsInf(f, 0) {
		return def
	}
	return f
}

func stripNonNumeric(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TruncateLabel shortens labels past the display threshold to a
// 12-rune prefix plus an ellipsis marker. Labels at or under the
// threshold are left as-is.
func TruncateLabel(label string) string {
	runes := []rune(label)
	if len(runes) <= truncateThreshold {
		return label
	}
	return string(runes[:truncatePrefix]) + "..."
}
