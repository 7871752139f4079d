package charts

import (
	"github.com/google/uuid"
)

// newAnnotationID returns the short random identifier written as each
// serialized annotation's id. The model's list form carries no durable id;
// the provider keys annotations by id on read.
func newAnnotationID() string {
	return uuid.NewString()[:8]
}

// ConnectorLine is the line drawn from a text annotation to its target.
// Its presence on a TextAnnotation means "enabled"; there is no way to
// represent a disabled connector line except by omitting it.
type ConnectorLine struct {
	Type          string // straight, curveRight or curveLeft
	Circle        bool
	Stroke        int    // 1, 2 or 3
	ArrowHead     any    // "lines", "triangle" or false
	CircleStyle   string // solid or dashed
	CircleRadius  int
	InheritColor  bool
	TargetPadding int
}

// NewConnectorLine returns a connector line with the provider's defaults.
func NewConnectorLine() *ConnectorLine {
	return &ConnectorLine{
		Type:          "straight",
		Stroke:        1,
		ArrowHead:     "lines",
		CircleStyle:   "solid",
		CircleRadius:  15,
		TargetPadding: 4,
	}
}

// Validate checks the style fields against their legal sets.
func (c *ConnectorLine) Validate() error {
	if err := oneOf("connector line type", c.Type, connectorLineTypes...); err != nil {
		return err
	}
	if err := intOneOf("stroke width", c.Stroke, 1, 2, 3); err != nil {
		return err
	}
	// dotted is legal for range annotations but not for connector circles
	if err := oneOf("circle style", c.CircleStyle, "solid", "dashed"); err != nil {
		return err
	}
	return nil
}

func (c *ConnectorLine) wire() Wire {
	return Wire{
		"enabled":       true,
		"type":          c.Type,
		"circle":        c.Circle,
		"stroke":        c.Stroke,
		"arrowHead":     c.ArrowHead,
		"circleStyle":   c.CircleStyle,
		"circleRadius":  c.CircleRadius,
		"inheritColor":  c.InheritColor,
		"targetPadding": c.TargetPadding,
	}
}

// ConnectorLineFromMap builds a connector line from a loose mapping. An
// explicit "enabled": false is rejected; omit the object to disable.
func ConnectorLineFromMap(m map[string]any) (*ConnectorLine, error) {
	c := NewConnectorLine()
	var unknown []string
	for k, v := range m {
		switch k {
		case "enabled":
			if !boolOr(v, true) {
				return nil, &ValidationError{
					Field: "connector line enabled", Value: v,
					Allowed: "true; to disable connector lines, omit the connector line entirely",
				}
			}
		case "type":
			c.Type = strOr(v, c.Type)
		case "circle":
			c.Circle = boolOr(v, c.Circle)
		case "stroke":
			c.Stroke = intOr(v, c.Stroke)
		case "arrowHead":
			c.ArrowHead = v
		case "circleStyle":
			c.CircleStyle = strOr(v, c.CircleStyle)
		case "circleRadius":
			c.CircleRadius = intOr(v, c.CircleRadius)
		case "inheritColor":
			c.InheritColor = boolOr(v, c.InheritColor)
		case "targetPadding":
			c.TargetPadding = intOr(v, c.TargetPadding)
		default:
			unknown = append(unknown, k)
		}
	}
	warnUnknownKeys("ConnectorLine", unknown)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// TextAnnotation is a free-floating label placed on the plot. Positions
// are generic scalars so both numeric and categorical/date axes work.
type TextAnnotation struct {
	ID             string // server-assigned, used only as the wire map key
	Text           string
	X              any
	Y              any
	Dx             int
	Dy             int
	Bold           bool
	Italic         bool
	Underline      bool
	Size           int
	Align          string
	Color          any  // color string, or false for the theme default
	Outline        bool // wire key "bg"
	Width          float64
	ShowMobile     bool
	ShowDesktop    bool
	MobileFallback bool
	ConnectorLine  *ConnectorLine
}

// NewTextAnnotation returns a text annotation with the provider defaults.
func NewTextAnnotation(text string, x, y any) *TextAnnotation {
	return &TextAnnotation{
		Text:        text,
		X:           x,
		Y:           y,
		Size:        14,
		Align:       "tl",
		Color:       false,
		Outline:     true,
		Width:       33.3,
		ShowMobile:  true,
		ShowDesktop: true,
	}
}

// Validate checks the annotation's fields and its connector line.
func (a *TextAnnotation) Validate() error {
	if a.Text == "" {
		return &ValidationError{Field: "text annotation text", Value: a.Text, Allowed: "a non-empty string"}
	}
	if err := oneOf("text alignment", a.Align, textAligns...); err != nil {
		return err
	}
	if err := inRange("text annotation width", a.Width, 0, 100); err != nil {
		return err
	}
	if a.ConnectorLine != nil {
		return a.ConnectorLine.Validate()
	}
	return nil
}

// Serialize emits the annotation's wire object. The connector line is
// always present: a full payload with enabled true, or {"enabled": false}.
func (a *TextAnnotation) Serialize() (Wire, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	out := Wire{
		"id":             newAnnotationID(),
		"bg":             a.Outline,
		"dx":             a.Dx,
		"dy":             a.Dy,
		"bold":           a.Bold,
		"size":           a.Size,
		"text":           a.Text,
		"align":          a.Align,
		"color":          a.Color,
		"width":          a.Width,
		"italic":         a.Italic,
		"position":       Wire{"x": a.X, "y": a.Y},
		"underline":      a.Underline,
		"showMobile":     a.ShowMobile,
		"showDesktop":    a.ShowDesktop,
		"mobileFallback": a.MobileFallback,
	}
	if a.ConnectorLine != nil {
		out["connectorLine"] = a.ConnectorLine.wire()
	} else {
		out["connectorLine"] = Wire{"enabled": false}
	}
	return out, nil
}

// TextAnnotationFromMap builds a text annotation from a loose mapping,
// accepting either top-level x/y or a nested position object.
func TextAnnotationFromMap(m map[string]any) (*TextAnnotation, error) {
	a := NewTextAnnotation("", nil, nil)
	var unknown []string
	for k, v := range m {
		switch k {
		case "id":
			a.ID = strOr(v, "")
		case "text":
			a.Text = strOr(v, "")
		case "x":
			a.X = v
		case "y":
			a.Y = v
		case "position":
			if pos, ok := v.(map[string]any); ok {
				if x, ok := pos["x"]; ok {
					a.X = x
				}
				if y, ok := pos["y"]; ok {
					a.Y = y
				}
			}
		case "dx":
			a.Dx = intOr(v, a.Dx)
		case "dy":
			a.Dy = intOr(v, a.Dy)
		case "bold":
			a.Bold = boolOr(v, a.Bold)
		case "italic":
			a.Italic = boolOr(v, a.Italic)
		case "underline":
			a.Underline = boolOr(v, a.Underline)
		case "size":
			a.Size = intOr(v, a.Size)
		case "align":
			a.Align = strOr(v, a.Align)
		case "color":
			a.Color = v
		case "bg", "outline":
			a.Outline = boolOr(v, a.Outline)
		case "width":
			a.Width = floatOr(v, a.Width)
		case "showMobile":
			a.ShowMobile = boolOr(v, a.ShowMobile)
		case "showDesktop":
			a.ShowDesktop = boolOr(v, a.ShowDesktop)
		case "mobileFallback":
			a.MobileFallback = boolOr(v, a.MobileFallback)
		case "connectorLine":
			switch cl := v.(type) {
			case nil:
			case *ConnectorLine:
				a.ConnectorLine = cl
			case map[string]any:
				line, err := ConnectorLineFromMap(cl)
				if err != nil {
					return nil, err
				}
				a.ConnectorLine = line
			default:
				return nil, &ValidationError{Field: "connectorLine", Value: v, Allowed: "a ConnectorLine or mapping"}
			}
		default:
			unknown = append(unknown, k)
		}
	}
	warnUnknownKeys("TextAnnotation", unknown)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// DeserializeTextAnnotations reads the wire collection. The provider
// returns an id-keyed mapping; each key becomes the entry's ID. A list is
// accepted as-is, null or empty input yields an empty list. A connector
// object with enabled false (or missing) becomes nil.
func DeserializeTextAnnotations(v any) ([]*TextAnnotation, error) {
	entries := collectionEntries(v)
	out := make([]*TextAnnotation, 0, len(entries))
	for _, e := range entries {
		if cl, ok := e.value["connectorLine"].(map[string]any); ok {
			if !boolOr(cl["enabled"], false) {
				delete(e.value, "connectorLine")
			}
		}
		a, err := TextAnnotationFromMap(e.value)
		if err != nil {
			return nil, err
		}
		if e.id != "" {
			a.ID = e.id
		}
		out = append(out, a)
	}
	return out, nil
}

// RangeAnnotation is a highlighted line or band on one axis. Which bounds
// are required depends on Type and Display: a line needs only the primary
// axis's first coordinate, a range needs both.
type RangeAnnotation struct {
	ID          string
	Type        string // x or y
	Display     string // line or range
	Color       string
	Opacity     int // 0..100
	X0, X1      any
	Y0, Y1      any
	StrokeType  string // solid, dashed or dotted
	StrokeWidth int    // 1, 2 or 3
}

// NewRangeAnnotation returns a range annotation with provider defaults
// (an x-axis range); bounds start unset.
func NewRangeAnnotation() *RangeAnnotation {
	return &RangeAnnotation{
		Type:        "x",
		Display:     "range",
		Color:       "#989898",
		Opacity:     50,
		StrokeType:  "solid",
		StrokeWidth: 2,
	}
}

// NewXRangeAnnotation highlights the band between two x values.
func NewXRangeAnnotation(x0, x1 any) *RangeAnnotation {
	a := NewRangeAnnotation()
	a.X0, a.X1 = x0, x1
	return a
}

// NewYRangeAnnotation highlights the band between two y values.
func NewYRangeAnnotation(y0, y1 any) *RangeAnnotation {
	a := NewRangeAnnotation()
	a.Type, a.Y0, a.Y1 = "y", y0, y1
	return a
}

// NewXLineAnnotation draws a vertical line at an x value.
func NewXLineAnnotation(x0 any) *RangeAnnotation {
	a := NewRangeAnnotation()
	a.Display, a.X0 = "line", x0
	return a
}

// NewYLineAnnotation draws a horizontal line at a y value.
func NewYLineAnnotation(y0 any) *RangeAnnotation {
	a := NewRangeAnnotation()
	a.Type, a.Display, a.Y0 = "y", "line", y0
	return a
}

// Validate checks style fields and the conditional bound requirements.
func (a *RangeAnnotation) Validate() error {
	if err := oneOf("range annotation type", a.Type, "x", "y"); err != nil {
		return err
	}
	if err := oneOf("range annotation display", a.Display, "line", "range"); err != nil {
		return err
	}
	if err := inRange("range annotation opacity", float64(a.Opacity), 0, 100); err != nil {
		return err
	}
	if err := oneOf("stroke type", a.StrokeType, strokeTypes...); err != nil {
		return err
	}
	if err := intOneOf("stroke width", a.StrokeWidth, 1, 2, 3); err != nil {
		return err
	}
	switch {
	case a.Type == "x" && a.Display == "range" && (a.X0 == nil || a.X1 == nil):
		return &ValidationError{Field: "range annotation bounds", Value: a.Display, Allowed: "both x0 and x1 for an x range"}
	case a.Type == "x" && a.Display == "line" && a.X0 == nil:
		return &ValidationError{Field: "range annotation bounds", Value: a.Display, Allowed: "x0 for an x line"}
	case a.Type == "y" && a.Display == "range" && (a.Y0 == nil || a.Y1 == nil):
		return &ValidationError{Field: "range annotation bounds", Value: a.Display, Allowed: "both y0 and y1 for a y range"}
	case a.Type == "y" && a.Display == "line" && a.Y0 == nil:
		return &ValidationError{Field: "range annotation bounds", Value: a.Display, Allowed: "y0 for a y line"}
	}
	return nil
}

// Serialize emits the wire object. The position includes only coordinates
// that are set; null-valued keys are never written.
func (a *RangeAnnotation) Serialize() (Wire, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	position := Wire{}
	if a.X0 != nil {
		position["x0"] = a.X0
	}
	if a.X1 != nil {
		position["x1"] = a.X1
	}
	if a.Y0 != nil {
		position["y0"] = a.Y0
	}
	if a.Y1 != nil {
		position["y1"] = a.Y1
	}
	return Wire{
		"id":          newAnnotationID(),
		"type":        a.Type,
		"color":       a.Color,
		"display":     a.Display,
		"opacity":     a.Opacity,
		"position":    position,
		"strokeType":  a.StrokeType,
		"strokeWidth": a.StrokeWidth,
	}, nil
}

// RangeAnnotationFromMap builds a range annotation from a loose mapping,
// accepting bounds either top-level or inside a position object.
func RangeAnnotationFromMap(m map[string]any) (*RangeAnnotation, error) {
	a := NewRangeAnnotation()
	var unknown []string
	for k, v := range m {
		switch k {
		case "id":
			a.ID = strOr(v, "")
		case "type":
			a.Type = strOr(v, a.Type)
		case "display":
			a.Display = strOr(v, a.Display)
		case "color":
			a.Color = strOr(v, a.Color)
		case "opacity":
			a.Opacity = intOr(v, a.Opacity)
		case "x0":
			a.X0 = v
		case "x1":
			a.X1 = v
		case "y0":
			a.Y0 = v
		case "y1":
			a.Y1 = v
		case "position":
			if pos, ok := v.(map[string]any); ok {
				a.X0 = pos["x0"]
				a.X1 = pos["x1"]
				a.Y0 = pos["y0"]
				a.Y1 = pos["y1"]
			}
		case "strokeType":
			a.StrokeType = strOr(v, a.StrokeType)
		case "strokeWidth":
			a.StrokeWidth = intOr(v, a.StrokeWidth)
		default:
			unknown = append(unknown, k)
		}
	}
	warnUnknownKeys("RangeAnnotation", unknown)
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// DeserializeRangeAnnotations reads the wire collection, merging mapping
// keys into each entry's ID.
func DeserializeRangeAnnotations(v any) ([]*RangeAnnotation, error) {
	entries := collectionEntries(v)
	out := make([]*RangeAnnotation, 0, len(entries))
	for _, e := range entries {
		a, err := RangeAnnotationFromMap(e.value)
		if err != nil {
			return nil, err
		}
		if e.id != "" {
			a.ID = e.id
		}
		out = append(out, a)
	}
	return out, nil
}

type collectionEntry struct {
	id    string
	value map[string]any
}

// collectionEntries flattens the wire's annotation container. A mapping
// yields one entry per key with the key as id; entry order follows the
// mapping's natural iteration order, which the provider does not promise
// to keep stable between reads. A list passes through, anything else is
// empty.
func collectionEntries(v any) []collectionEntry {
	switch c := v.(type) {
	case map[string]any:
		out := make([]collectionEntry, 0, len(c))
		for id, raw := range c {
			if m, ok := raw.(map[string]any); ok {
				out = append(out, collectionEntry{id: id, value: m})
			}
		}
		return out
	case []any:
		out := make([]collectionEntry, 0, len(c))
		for _, raw := range c {
			if m, ok := raw.(map[string]any); ok {
				out = append(out, collectionEntry{value: m})
			}
		}
		return out
	}
	return nil
}

func serializeTextAnnotations(list []*TextAnnotation) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, a := range list {
		w, err := a.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func serializeRangeAnnotations(list []*RangeAnnotation) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, a := range list {
		w, err := a.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
