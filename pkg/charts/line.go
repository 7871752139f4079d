package charts

// LineChart models the provider's d3-lines visualization.
type LineChart struct {
	Chart

	CustomRangeX []any
	CustomTicksX []any
	XGridFormat  string
	XGrid        string

	CustomRangeY    []any
	CustomTicksY    []any
	YGridFormat     string
	YGrid           string
	YGridLabels     string
	YGridLabelAlign string
	ScaleY          string
	YGridSubdivide  bool

	BaseColor      any // palette index or hex string
	Interpolation  string
	ConnectorLines bool
	ColorCategory  map[string]string
	Lines          []*Line
	AreaFills      []*AreaFill

	StackColorLegend  bool
	LabelColors       bool
	LabelMargin       int
	ValueLabelsFormat string
	ValueLabelColors  bool

	ShowTooltips        bool
	TooltipXFormat      string
	TooltipNumberFormat string

	PlotHeightMode  string
	PlotHeightFixed float64
	PlotHeightRatio float64

	TextAnnotations  []*TextAnnotation
	RangeAnnotations []*RangeAnnotation
}

// NewLineChart returns a line chart with the provider's defaults.
func NewLineChart(title string) *LineChart {
	return &LineChart{
		Chart:           newChart(title),
		XGridFormat:     "auto",
		XGrid:           GridOff,
		YGrid:           GridOn,
		YGridLabels:     "auto",
		YGridLabelAlign: "left",
		ScaleY:          "linear",
		YGridSubdivide:  true,
		BaseColor:       0,
		Interpolation:   InterpolationLinear,
		ShowTooltips:    true,
		PlotHeightMode:  PlotHeightFixed,
		PlotHeightFixed: 300,
		PlotHeightRatio: 0.5,
	}
}

func (c *LineChart) ChartType() string { return "d3-lines" }

func (c *LineChart) Validate() error {
	if err := oneOf("x-grid", c.XGrid, gridDisplayValues...); err != nil {
		return err
	}
	if err := oneOf("y-grid", c.YGrid, gridDisplayValues...); err != nil {
		return err
	}
	if err := oneOf("y-grid-labels", c.YGridLabels, gridLabelPositions...); err != nil {
		return err
	}
	if err := oneOf("y-grid-label-align", c.YGridLabelAlign, gridLabelAligns...); err != nil {
		return err
	}
	if err := oneOf("scale-y", c.ScaleY, "linear", "log"); err != nil {
		return err
	}
	if err := oneOf("interpolation", c.Interpolation, interpolations...); err != nil {
		return err
	}
	if err := oneOf("plot-height-mode", c.PlotHeightMode, plotHeightModes...); err != nil {
		return err
	}
	for _, l := range c.Lines {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *LineChart) Serialize() (Wire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	lines := Wire{}
	for _, l := range c.Lines {
		w, err := l.Serialize()
		if err != nil {
			return nil, err
		}
		lines[l.Column] = w
	}
	texts, err := serializeTextAnnotations(c.TextAnnotations)
	if err != nil {
		return nil, err
	}
	ranges, err := serializeRangeAnnotations(c.RangeAnnotations)
	if err != nil {
		return nil, err
	}
	fills, err := serializeAreaFills(c.AreaFills)
	if err != nil {
		return nil, err
	}
	visualize := Wire{
		"custom-range-x":        SerializeRange(c.CustomRangeX),
		"custom-ticks-x":        SerializeTicks(c.CustomTicksX),
		"x-grid-format":         c.XGridFormat,
		"x-grid":                c.XGrid,
		"custom-range-y":        SerializeRange(c.CustomRangeY),
		"custom-ticks-y":        SerializeTicks(c.CustomTicksY),
		"y-grid-format":         c.YGridFormat,
		"y-grid":                c.YGrid,
		"y-grid-labels":         c.YGridLabels,
		"y-grid-label-align":    c.YGridLabelAlign,
		"scale-y":               c.ScaleY,
		"y-grid-subdivide":      c.YGridSubdivide,
		"base-color":            c.BaseColor,
		"interpolation":         c.Interpolation,
		"connector-lines":       c.ConnectorLines,
		"color-category":        SerializeColorCategory(c.ColorCategory, nil, nil, nil),
		"stack-color-legend":    c.StackColorLegend,
		"label-colors":          c.LabelColors,
		"label-margin":          c.LabelMargin,
		"value-labels-format":   c.ValueLabelsFormat,
		"value-label-colors":    c.ValueLabelColors,
		"show-tooltips":         c.ShowTooltips,
		"tooltip-x-format":      c.TooltipXFormat,
		"tooltip-number-format": c.TooltipNumberFormat,
		"lines":                 lines,
		"text-annotations":      texts,
		"range-annotations":     ranges,
		"custom-area-fills":     fills,
	}
	for k, v := range SerializePlotHeight(c.PlotHeightMode, c.PlotHeightFixed, c.PlotHeightRatio) {
		visualize[k] = v
	}
	return c.envelope(c.ChartType(), visualize)
}

// LineChartFromWire rebuilds a line chart from a metadata document.
func LineChartFromWire(doc Wire) (*LineChart, error) {
	c := NewLineChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")

	c.CustomRangeX = DeserializeRange(visualize["custom-range-x"])
	c.CustomTicksX = DeserializeTicks(strOr(visualize["custom-ticks-x"], ""))
	c.XGridFormat = strOr(visualize["x-grid-format"], c.XGridFormat)
	c.XGrid = strOr(visualize["x-grid"], c.XGrid)

	c.CustomRangeY = DeserializeRange(visualize["custom-range-y"])
	c.CustomTicksY = DeserializeTicks(strOr(visualize["custom-ticks-y"], ""))
	c.YGridFormat = strOr(visualize["y-grid-format"], c.YGridFormat)
	c.YGrid = strOr(visualize["y-grid"], c.YGrid)
	c.YGridLabels = strOr(visualize["y-grid-labels"], c.YGridLabels)
	c.YGridLabelAlign = strOr(visualize["y-grid-label-align"], c.YGridLabelAlign)
	c.ScaleY = strOr(visualize["scale-y"], c.ScaleY)
	c.YGridSubdivide = boolOr(visualize["y-grid-subdivide"], c.YGridSubdivide)

	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	c.Interpolation = strOr(visualize["interpolation"], c.Interpolation)
	c.ConnectorLines = boolOr(visualize["connector-lines"], false)
	c.ColorCategory = DeserializeColorCategory(visualize["color-category"]).Map

	if lines, ok := visualize["lines"].(map[string]any); ok {
		for column, raw := range lines {
			config, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			l, err := LineFromWire(column, config)
			if err != nil {
				return nil, err
			}
			c.Lines = append(c.Lines, l)
		}
	}
	fills, err := DeserializeAreaFills(visualize["custom-area-fills"])
	if err != nil {
		return nil, err
	}
	c.AreaFills = fills

	c.StackColorLegend = boolOr(visualize["stack-color-legend"], false)
	c.LabelColors = boolOr(visualize["label-colors"], false)
	c.LabelMargin = intOr(visualize["label-margin"], 0)
	c.ValueLabelsFormat = strOr(visualize["value-labels-format"], "")
	c.ValueLabelColors = boolOr(visualize["value-label-colors"], false)

	c.ShowTooltips = boolOr(visualize["show-tooltips"], true)
	c.TooltipXFormat = strOr(visualize["tooltip-x-format"], "")
	c.TooltipNumberFormat = strOr(visualize["tooltip-number-format"], "")

	DeserializePlotHeight(visualize, &c.PlotHeightMode, &c.PlotHeightFixed, &c.PlotHeightRatio)

	texts, err := DeserializeTextAnnotations(visualize["text-annotations"])
	if err != nil {
		return nil, err
	}
	c.TextAnnotations = texts
	ranges, err := DeserializeRangeAnnotations(visualize["range-annotations"])
	if err != nil {
		return nil, err
	}
	c.RangeAnnotations = ranges
	return c, nil
}

// NewLineChartFromOptions builds a line chart from a loose key-value
// mapping, warning on unrecognized keys.
func NewLineChartFromOptions(opts map[string]any) (*LineChart, error) {
	c := NewLineChart("")
	if err := applyOptions(c, "LineChart", lineChartOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var lineChartOptions = optionTable[*LineChart]{}

func init() {
	t := lineChartOptions
	alias(t, func(c *LineChart, v any) error { c.CustomRangeX = anySlice(v); return nil },
		"custom_range_x", "custom-range-x")
	alias(t, func(c *LineChart, v any) error { c.CustomTicksX = anySlice(v); return nil },
		"custom_ticks_x", "custom-ticks-x")
	alias(t, func(c *LineChart, v any) error { c.XGridFormat = strOr(v, c.XGridFormat); return nil },
		"x_grid_format", "x-grid-format")
	alias(t, func(c *LineChart, v any) error { c.XGrid = strOr(v, c.XGrid); return nil },
		"x_grid", "x-grid")
	alias(t, func(c *LineChart, v any) error { c.CustomRangeY = anySlice(v); return nil },
		"custom_range_y", "custom-range-y")
	alias(t, func(c *LineChart, v any) error { c.CustomTicksY = anySlice(v); return nil },
		"custom_ticks_y", "custom-ticks-y")
	alias(t, func(c *LineChart, v any) error { c.YGridFormat = strOr(v, c.YGridFormat); return nil },
		"y_grid_format", "y-grid-format")
	alias(t, func(c *LineChart, v any) error { c.YGrid = strOr(v, c.YGrid); return nil },
		"y_grid", "y-grid")
	alias(t, func(c *LineChart, v any) error { c.YGridLabels = strOr(v, c.YGridLabels); return nil },
		"y_grid_labels", "y-grid-labels")
	alias(t, func(c *LineChart, v any) error { c.YGridLabelAlign = strOr(v, c.YGridLabelAlign); return nil },
		"y_grid_label_align", "y-grid-label-align")
	alias(t, func(c *LineChart, v any) error { c.ScaleY = strOr(v, c.ScaleY); return nil },
		"scale_y", "scale-y")
	alias(t, func(c *LineChart, v any) error { c.YGridSubdivide = boolOr(v, c.YGridSubdivide); return nil },
		"y_grid_subdivide", "y-grid-subdivide")
	alias(t, func(c *LineChart, v any) error { c.BaseColor = v; return nil },
		"base_color", "base-color")
	t["interpolation"] = func(c *LineChart, v any) error { c.Interpolation = strOr(v, c.Interpolation); return nil }
	alias(t, func(c *LineChart, v any) error { c.ConnectorLines = boolOr(v, c.ConnectorLines); return nil },
		"connector_lines", "connector-lines")
	alias(t, func(c *LineChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	t["lines"] = func(c *LineChart, v any) error {
		switch lines := v.(type) {
		case []*Line:
			c.Lines = lines
		case []any:
			for _, raw := range lines {
				m, ok := raw.(map[string]any)
				if !ok {
					return &ValidationError{Field: "lines", Value: raw, Allowed: "a *Line or mapping"}
				}
				l, err := LineFromWire(strOr(m["column"], ""), m)
				if err != nil {
					return err
				}
				c.Lines = append(c.Lines, l)
			}
		default:
			return &ValidationError{Field: "lines", Value: v, Allowed: "a list of lines"}
		}
		return nil
	}
	alias(t, func(c *LineChart, v any) error {
		fills, err := DeserializeAreaFills(v)
		if err != nil {
			return err
		}
		c.AreaFills = fills
		return nil
	}, "area_fills", "area-fills")
	alias(t, func(c *LineChart, v any) error { c.StackColorLegend = boolOr(v, c.StackColorLegend); return nil },
		"stack_color_legend", "stack-color-legend")
	alias(t, func(c *LineChart, v any) error { c.LabelColors = boolOr(v, c.LabelColors); return nil },
		"label_colors", "label-colors")
	alias(t, func(c *LineChart, v any) error { c.LabelMargin = intOr(v, c.LabelMargin); return nil },
		"label_margin", "label-margin")
	alias(t, func(c *LineChart, v any) error { c.ValueLabelsFormat = strOr(v, c.ValueLabelsFormat); return nil },
		"value_labels_format", "value-labels-format")
	alias(t, func(c *LineChart, v any) error { c.ValueLabelColors = boolOr(v, c.ValueLabelColors); return nil },
		"value_label_colors", "value-label-colors")
	alias(t, func(c *LineChart, v any) error { c.ShowTooltips = boolOr(v, c.ShowTooltips); return nil },
		"show_tooltips", "show-tooltips")
	alias(t, func(c *LineChart, v any) error { c.TooltipXFormat = strOr(v, c.TooltipXFormat); return nil },
		"tooltip_x_format", "tooltip-x-format")
	alias(t, func(c *LineChart, v any) error { c.TooltipNumberFormat = strOr(v, c.TooltipNumberFormat); return nil },
		"tooltip_number_format", "tooltip-number-format")
	alias(t, func(c *LineChart, v any) error { c.PlotHeightMode = strOr(v, c.PlotHeightMode); return nil },
		"plot_height_mode", "plot-height-mode")
	alias(t, func(c *LineChart, v any) error { c.PlotHeightFixed = floatOr(v, c.PlotHeightFixed); return nil },
		"plot_height_fixed", "plot-height-fixed")
	alias(t, func(c *LineChart, v any) error { c.PlotHeightRatio = floatOr(v, c.PlotHeightRatio); return nil },
		"plot_height_ratio", "plot-height-ratio")
	alias(t, func(c *LineChart, v any) error {
		texts, err := DeserializeTextAnnotations(v)
		if err != nil {
			return err
		}
		c.TextAnnotations = texts
		return nil
	}, "text_annotations", "text-annotations")
	alias(t, func(c *LineChart, v any) error {
		ranges, err := DeserializeRangeAnnotations(v)
		if err != nil {
			return err
		}
		c.RangeAnnotations = ranges
		return nil
	}, "range_annotations", "range-annotations")
}
