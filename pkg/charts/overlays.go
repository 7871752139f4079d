package charts

// AreaFill shades the region between two line columns.
type AreaFill struct {
	From    string
	To      string
	Color   string
	Opacity float64
}

// NewAreaFill shades the region between two columns at the default opacity.
func NewAreaFill(from, to string) *AreaFill {
	return &AreaFill{From: from, To: to, Opacity: 0.3}
}

func (f *AreaFill) Validate() error {
	return inRange("area fill opacity", f.Opacity, 0, 1)
}

func (f *AreaFill) Serialize() (Wire, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return Wire{
		"id":      newAnnotationID(),
		"from":    f.From,
		"to":      f.To,
		"color":   f.Color,
		"opacity": f.Opacity,
	}, nil
}

func AreaFillFromMap(m map[string]any) (*AreaFill, error) {
	f := NewAreaFill("", "")
	var unknown []string
	for k, v := range m {
		switch k {
		case "id":
		case "from":
			f.From = strOr(v, "")
		case "to":
			f.To = strOr(v, "")
		case "color":
			f.Color = strOr(v, "")
		case "opacity":
			f.Opacity = floatOr(v, f.Opacity)
		default:
			unknown = append(unknown, k)
		}
	}
	warnUnknownKeys("AreaFill", unknown)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func DeserializeAreaFills(v any) ([]*AreaFill, error) {
	entries := collectionEntries(v)
	out := make([]*AreaFill, 0, len(entries))
	for _, e := range entries {
		f, err := AreaFillFromMap(e.value)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func serializeAreaFills(list []*AreaFill) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, f := range list {
		w, err := f.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// BarOverlay marks a value or a range on top of a bar.
type BarOverlay struct {
	Type           string // value or range
	Title          string
	To             string // target column; required
	From           string // source column for ranges
	Color          string
	Opacity        float64
	Pattern        string // solid, diagonal-up or diagonal-down
	ShowInColorKey bool
	LabelDirectly  bool
}

// NewBarOverlay labels the given column's value on each bar. The from
// column defaults to the provider's zero baseline sentinel.
func NewBarOverlay(to string) *BarOverlay {
	return &BarOverlay{
		Type:           "value",
		To:             to,
		From:           "--zero-baseline--",
		Color:          "#4682b4",
		Opacity:        0.6,
		Pattern:        "solid",
		ShowInColorKey: true,
		LabelDirectly:  true,
	}
}

func (o *BarOverlay) Validate() error {
	if o.To == "" {
		return &ValidationError{Field: "bar overlay to", Value: o.To, Allowed: "a column name"}
	}
	if err := oneOf("bar overlay type", o.Type, "value", "range"); err != nil {
		return err
	}
	return oneOf("bar overlay pattern", o.Pattern, overlayPatterns...)
}

func (o *BarOverlay) Serialize() (Wire, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return Wire{
		"id":             newAnnotationID(),
		"type":           o.Type,
		"title":          o.Title,
		"to":             o.To,
		"from":           o.From,
		"color":          o.Color,
		"opacity":        o.Opacity,
		"pattern":        o.Pattern,
		"showInColorKey": o.ShowInColorKey,
		"labelDirectly":  o.LabelDirectly,
	}, nil
}

func BarOverlayFromMap(m map[string]any) (*BarOverlay, error) {
	o := NewBarOverlay("")
	var unknown []string
	for k, v := range m {
		switch k {
		case "id":
		case "type":
			o.Type = strOr(v, o.Type)
		case "title":
			o.Title = strOr(v, "")
		case "to":
			o.To = strOr(v, "")
		case "from":
			o.From = strOr(v, o.From)
		case "color":
			o.Color = strOr(v, o.Color)
		case "opacity":
			o.Opacity = floatOr(v, o.Opacity)
		case "pattern":
			o.Pattern = strOr(v, o.Pattern)
		case "showInColorKey":
			o.ShowInColorKey = boolOr(v, o.ShowInColorKey)
		case "labelDirectly":
			o.LabelDirectly = boolOr(v, o.LabelDirectly)
		default:
			unknown = append(unknown, k)
		}
	}
	warnUnknownKeys("BarOverlay", unknown)
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func DeserializeBarOverlays(v any) ([]*BarOverlay, error) {
	entries := collectionEntries(v)
	out := make([]*BarOverlay, 0, len(entries))
	for _, e := range entries {
		o, err := BarOverlayFromMap(e.value)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func serializeBarOverlays(list []*BarOverlay) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, o := range list {
		w, err := o.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// LineSymbol configures the point markers on a single line. Presence means
// enabled; to disable symbols, leave the line's Symbols field nil.
type LineSymbol struct {
	Shape   string
	Style   string // hollow or fill
	On      string // every, first, last or both
	Size    float64
	Opacity float64
}

func NewLineSymbol() *LineSymbol {
	return &LineSymbol{Shape: "circle", Style: "fill", On: "last", Size: 6, Opacity: 1.0}
}

func (s *LineSymbol) Validate() error {
	if err := oneOf("symbol shape", s.Shape, lineSymbolShapes...); err != nil {
		return err
	}
	if err := oneOf("symbol style", s.Style, lineSymbolStyles...); err != nil {
		return err
	}
	if err := oneOf("symbol placement", s.On, lineSymbolOns...); err != nil {
		return err
	}
	return inRange("symbol opacity", s.Opacity, 0, 1)
}

// LineValueLabel configures the numeric labels on a single line. Presence
// means enabled.
type LineValueLabel struct {
	Last           bool
	First          bool
	ShowCircles    bool
	MaxInnerLabels int
}

// Line holds the per-column styling of one series on a line chart.
type Line struct {
	Column               string
	Title                string
	Interpolation        string
	Width                string
	Dash                 string // empty means no dashing
	ColorKey             bool
	DirectLabel          bool
	Outline              bool // wire key "bgStroke"
	ConnectMissingPoints bool
	Symbols              *LineSymbol
	ValueLabels          *LineValueLabel
}

// NewLine styles the series drawn from the named data column.
func NewLine(column string) *Line {
	return &Line{Column: column, Interpolation: "linear", Width: "style1"}
}

func (l *Line) Validate() error {
	if l.Column == "" {
		return &ValidationError{Field: "line column", Value: l.Column, Allowed: "a column name"}
	}
	if err := oneOf("line interpolation", l.Interpolation, interpolations...); err != nil {
		return err
	}
	if err := oneOf("line width", l.Width, lineWidths...); err != nil {
		return err
	}
	if l.Dash != "" {
		if err := oneOf("line dash", l.Dash, lineDashes...); err != nil {
			return err
		}
	}
	if l.Symbols != nil {
		return l.Symbols.Validate()
	}
	return nil
}

// Serialize emits the per-line wire object. The symbols and valueLabels
// objects are always present, collapsing to {"enabled": false} when unset;
// dash is written only when dashing is on.
func (l *Line) Serialize() (Wire, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	out := Wire{
		"title":                l.Title,
		"interpolation":        l.Interpolation,
		"width":                l.Width,
		"colorKey":             l.ColorKey,
		"directLabel":          l.DirectLabel,
		"bgStroke":             l.Outline,
		"connectMissingPoints": l.ConnectMissingPoints,
	}
	if l.Symbols != nil {
		out["symbols"] = Wire{
			"enabled": true,
			"shape":   l.Symbols.Shape,
			"style":   l.Symbols.Style,
			"on":      l.Symbols.On,
			"size":    l.Symbols.Size,
			"opacity": l.Symbols.Opacity,
		}
	} else {
		out["symbols"] = Wire{"enabled": false}
	}
	if l.ValueLabels != nil {
		out["valueLabels"] = Wire{
			"enabled":        true,
			"last":           l.ValueLabels.Last,
			"first":          l.ValueLabels.First,
			"showCircles":    l.ValueLabels.ShowCircles,
			"maxInnerLabels": l.ValueLabels.MaxInnerLabels,
		}
	} else {
		out["valueLabels"] = Wire{"enabled": false}
	}
	if l.Dash != "" {
		out["dash"] = l.Dash
	}
	return out, nil
}

// LineFromWire builds a Line from one entry of the wire's column-keyed
// lines mapping. Symbols and value labels come back only when the wire
// object says enabled.
func LineFromWire(column string, config map[string]any) (*Line, error) {
	l := NewLine(column)
	l.Title = strOr(config["title"], l.Title)
	l.Interpolation = strOr(config["interpolation"], l.Interpolation)
	l.Width = strOr(config["width"], l.Width)
	l.Dash = strOr(config["dash"], "")
	l.ColorKey = boolOr(config["colorKey"], false)
	l.DirectLabel = boolOr(config["directLabel"], false)
	l.Outline = boolOr(config["bgStroke"], false)
	l.ConnectMissingPoints = boolOr(config["connectMissingPoints"], false)
	if sym, ok := config["symbols"].(map[string]any); ok && boolOr(sym["enabled"], false) {
		s := NewLineSymbol()
		s.Shape = strOr(sym["shape"], s.Shape)
		s.Style = strOr(sym["style"], s.Style)
		s.On = strOr(sym["on"], s.On)
		s.Size = floatOr(sym["size"], s.Size)
		s.Opacity = floatOr(sym["opacity"], s.Opacity)
		l.Symbols = s
	}
	if vl, ok := config["valueLabels"].(map[string]any); ok && boolOr(vl["enabled"], false) {
		l.ValueLabels = &LineValueLabel{
			Last:           boolOr(vl["last"], false),
			First:          boolOr(vl["first"], false),
			ShowCircles:    boolOr(vl["showCircles"], false),
			MaxInnerLabels: intOr(vl["maxInnerLabels"], 0),
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}
