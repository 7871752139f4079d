package charts

import (
	"fmt"
	"strings"
)

// Primitive codecs between model values and the API's wire shapes. Each is
// a pure serialize/deserialize pair with no shared state.

// SerializeTicks joins tick values into the comma-separated wire string.
func SerializeTicks(ticks []any) string {
	parts := make([]string, len(ticks))
	for i, t := range ticks {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, ",")
}

// DeserializeTicks splits a comma-separated tick string, trimming
// whitespace and parsing numbers where possible. Whole-valued floats come
// back as ints. Four-digit tokens are kept as strings: tick labels like
// "2020" are years to the reader and must not round-trip as magnitudes.
func DeserializeTicks(s string) []any {
	if s == "" {
		return []any{}
	}
	parts := strings.Split(s, ",")
	out := make([]any, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) == 4 && isDigits(p) {
			out = append(out, p)
			continue
		}
		out = append(out, parseScalar(p))
	}
	return out
}

// SerializeRange writes a [min, max] pair to the wire, with the empty
// string standing in for an unset bound. Anything but a two-element pair
// serializes as fully unset.
func SerializeRange(r []any) []any {
	if len(r) != 2 {
		return []any{"", ""}
	}
	out := make([]any, 2)
	copy(out, r)
	return out
}

// DeserializeRange normalizes a wire range to exactly two elements,
// parsing numeric strings and preserving "" as the unset sentinel.
// Missing or malformed input yields ["", ""].
func DeserializeRange(v any) []any {
	out := []any{"", ""}
	vals := anySlice(v)
	for i := 0; i < 2 && i < len(vals); i++ {
		switch e := vals[i].(type) {
		case nil:
			out[i] = ""
		case string:
			out[i] = parseScalar(e)
		default:
			out[i] = e
		}
	}
	return out
}

// SerializeNegativeColor collapses an optional color to the wire's
// {enabled, value} object. nil means disabled.
func SerializeNegativeColor(color *string) Wire {
	if color == nil {
		return Wire{"enabled": false, "value": ""}
	}
	return Wire{"enabled": true, "value": *color}
}

// DeserializeNegativeColor returns the color only when the wire object is
// enabled, else nil.
func DeserializeNegativeColor(v any) *string {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	if !boolOr(obj["enabled"], false) {
		return nil
	}
	c := strOr(obj["value"], "")
	return &c
}

// SerializeReplaceFlags maps the flat style ("off", "4x3", "1x1",
// "circle") to the wire's {enabled, style} object.
func SerializeReplaceFlags(style string) Wire {
	if style == FlagsOff {
		return Wire{"enabled": false, "style": ""}
	}
	return Wire{"enabled": true, "style": style}
}

// DeserializeReplaceFlags returns the style, or "off" when the wire object
// is disabled, empty or malformed.
func DeserializeReplaceFlags(v any) string {
	obj, ok := v.(map[string]any)
	if !ok {
		return FlagsOff
	}
	style := strOr(obj["style"], "")
	if !boolOr(obj["enabled"], false) || style == "" {
		return FlagsOff
	}
	return style
}

// ColorCategory is the deserialized form of the wire's color-category
// object: a name-to-color map plus sparse overlay maps for display labels,
// explicit ordering and legend exclusion.
type ColorCategory struct {
	Map            map[string]string
	CategoryLabels map[string]string
	CategoryOrder  []string
	ExcludeFromKey []string
}

// SerializeColorCategory always emits {"map": ...}; excludeFromKey is
// included when non-nil (an explicit empty list is meaningful), labels and
// order only when non-empty.
func SerializeColorCategory(colorMap map[string]string, labels map[string]string, order []string, exclude []string) Wire {
	if colorMap == nil {
		colorMap = map[string]string{}
	}
	out := Wire{"map": colorMap}
	if exclude != nil {
		out["excludeFromKey"] = exclude
	}
	if len(labels) > 0 {
		out["categoryLabels"] = labels
	}
	if len(order) > 0 {
		out["categoryOrder"] = order
	}
	return out
}

// DeserializeColorCategory extracts each overlay, defaulting to empty
// containers when absent or malformed.
func DeserializeColorCategory(v any) ColorCategory {
	out := ColorCategory{
		Map:            map[string]string{},
		CategoryLabels: map[string]string{},
		CategoryOrder:  []string{},
		ExcludeFromKey: []string{},
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return out
	}
	if m := strMap(obj["map"]); m != nil {
		out.Map = m
	}
	if m := strMap(obj["categoryLabels"]); m != nil {
		out.CategoryLabels = m
	}
	if s := strSlice(obj["categoryOrder"]); s != nil {
		out.CategoryOrder = s
	}
	if s := strSlice(obj["excludeFromKey"]); s != nil {
		out.ExcludeFromKey = s
	}
	return out
}

// PlotHeight bundles the three wire fields controlling plot height.
type PlotHeight struct {
	Mode  string
	Fixed float64
	Ratio float64
}

// SerializePlotHeight emits all three sibling keys; the API keeps the
// inactive mode's value around.
func SerializePlotHeight(mode string, fixed, ratio float64) Wire {
	return Wire{
		"plotHeightMode":  mode,
		"plotHeightFixed": fixed,
		"plotHeightRatio": ratio,
	}
}

// DeserializePlotHeight reads whichever plot height keys are present on
// the visualize section, leaving the rest of the target untouched so
// partial documents do not clobber defaults.
func DeserializePlotHeight(visualize Wire, mode *string, fixed, ratio *float64) {
	if v, ok := visualize["plotHeightMode"]; ok {
		*mode = strOr(v, *mode)
	}
	if v, ok := visualize["plotHeightFixed"]; ok {
		*fixed = floatOr(v, *fixed)
	}
	if v, ok := visualize["plotHeightRatio"]; ok {
		*ratio = floatOr(v, *ratio)
	}
}
