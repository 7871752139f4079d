package charts

// AreaChart models the provider's d3-area visualization.
type AreaChart struct {
	Chart

	XGrid       string
	YGrid       string
	XGridFormat string // empty means provider default
	YGridFormat string

	CustomRangeX []any // nil leaves the axis range automatic
	CustomRangeY []any
	CustomTicksX []any
	CustomTicksY []any

	YGridLabels     string
	YGridLabelAlign string

	BaseColor          any
	AreaOpacity        float64
	Interpolation      string
	SortAreas          string // keep, asc or desc
	StackAreas         bool
	StackTo100         bool
	AreaSeparatorLines bool
	AreaSeparatorColor any
	ColorCategory      map[string]string
	ShowColorKey       bool

	ShowTooltips        bool
	TooltipXFormat      string
	TooltipNumberFormat string

	PlotHeightMode  string
	PlotHeightFixed float64
	PlotHeightRatio float64

	TextAnnotations  []*TextAnnotation
	RangeAnnotations []*RangeAnnotation
}

// NewAreaChart returns an area chart with the provider's defaults.
func NewAreaChart(title string) *AreaChart {
	return &AreaChart{
		Chart:              newChart(title),
		XGrid:              GridOff,
		YGrid:              GridOn,
		YGridLabels:        "auto",
		YGridLabelAlign:    "left",
		BaseColor:          0,
		AreaOpacity:        0.8,
		Interpolation:      InterpolationLinear,
		SortAreas:          "keep",
		AreaSeparatorColor: "#4682b4",
		ShowTooltips:       true,
		PlotHeightMode:     PlotHeightFixed,
		PlotHeightFixed:    300,
		PlotHeightRatio:    0.5,
	}
}

func (c *AreaChart) ChartType() string { return "d3-area" }

func (c *AreaChart) Validate() error {
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
	if err := oneOf("interpolation", c.Interpolation, areaInterpolations...); err != nil {
		return err
	}
	if err := oneOf("sort-areas", c.SortAreas, "keep", "asc", "desc"); err != nil {
		return err
	}
	if err := inRange("area-opacity", c.AreaOpacity, 0, 1); err != nil {
		return err
	}
	return oneOf("plot-height-mode", c.PlotHeightMode, plotHeightModes...)
}

func (c *AreaChart) Serialize() (Wire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	texts, err := serializeTextAnnotations(c.TextAnnotations)
	if err != nil {
		return nil, err
	}
	ranges, err := serializeRangeAnnotations(c.RangeAnnotations)
	if err != nil {
		return nil, err
	}
	visualize := Wire{
		"x-grid":                c.XGrid,
		"y-grid":                c.YGrid,
		"y-grid-labels":         c.YGridLabels,
		"y-grid-label-align":    c.YGridLabelAlign,
		"area-opacity":          c.AreaOpacity,
		"base-color":            c.BaseColor,
		"interpolation":         c.Interpolation,
		"sort-areas":            c.SortAreas,
		"stack-areas":           c.StackAreas,
		"stack-to-100":          c.StackTo100,
		"area-separator-lines":  c.AreaSeparatorLines,
		"area-separator-color":  c.AreaSeparatorColor,
		"color-category":        SerializeColorCategory(c.ColorCategory, nil, nil, nil),
		"show-color-key":        c.ShowColorKey,
		"show-tooltips":         c.ShowTooltips,
		"tooltip-x-format":      c.TooltipXFormat,
		"tooltip-number-format": c.TooltipNumberFormat,
		"text-annotations":      texts,
		"range-annotations":     ranges,
	}
	if c.XGridFormat != "" {
		visualize["x-grid-format"] = c.XGridFormat
	}
	if c.YGridFormat != "" {
		visualize["y-grid-format"] = c.YGridFormat
	}
	if c.CustomRangeX != nil {
		visualize["custom-range-x"] = SerializeRange(c.CustomRangeX)
	}
	if c.CustomRangeY != nil {
		visualize["custom-range-y"] = SerializeRange(c.CustomRangeY)
	}
	if c.CustomTicksX != nil {
		visualize["custom-ticks-x"] = SerializeTicks(c.CustomTicksX)
	}
	if c.CustomTicksY != nil {
		visualize["custom-ticks-y"] = SerializeTicks(c.CustomTicksY)
	}
	for k, v := range SerializePlotHeight(c.PlotHeightMode, c.PlotHeightFixed, c.PlotHeightRatio) {
		visualize[k] = v
	}
	return c.envelope(c.ChartType(), visualize)
}

// AreaChartFromWire rebuilds an area chart from a metadata document.
func AreaChartFromWire(doc Wire) (*AreaChart, error) {
	c := NewAreaChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")

	c.XGrid = strOr(visualize["x-grid"], c.XGrid)
	c.YGrid = strOr(visualize["y-grid"], c.YGrid)
	c.XGridFormat = strOr(visualize["x-grid-format"], "")
	c.YGridFormat = strOr(visualize["y-grid-format"], "")
	if v, ok := visualize["custom-range-x"]; ok {
		c.CustomRangeX = DeserializeRange(v)
	}
	if v, ok := visualize["custom-range-y"]; ok {
		c.CustomRangeY = DeserializeRange(v)
	}
	if v, ok := visualize["custom-ticks-x"]; ok {
		c.CustomTicksX = DeserializeTicks(strOr(v, ""))
	}
	if v, ok := visualize["custom-ticks-y"]; ok {
		c.CustomTicksY = DeserializeTicks(strOr(v, ""))
	}
	c.YGridLabels = strOr(visualize["y-grid-labels"], c.YGridLabels)
	c.YGridLabelAlign = strOr(visualize["y-grid-label-align"], c.YGridLabelAlign)

	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	if v, ok := visualize["area-opacity"]; ok {
		c.AreaOpacity = floatOr(v, 0.8)
	}
	c.Interpolation = strOr(visualize["interpolation"], c.Interpolation)
	c.SortAreas = strOr(visualize["sort-areas"], c.SortAreas)
	c.StackAreas = boolOr(visualize["stack-areas"], false)
	c.StackTo100 = boolOr(visualize["stack-to-100"], false)
	c.AreaSeparatorLines = boolOr(visualize["area-separator-lines"], false)
	if v, ok := visualize["area-separator-color"]; ok {
		c.AreaSeparatorColor = v
	}
	c.ColorCategory = DeserializeColorCategory(visualize["color-category"]).Map
	c.ShowColorKey = boolOr(visualize["show-color-key"], false)

	c.ShowTooltips = boolOr(visualize["show-tooltips"], true)
	c.TooltipXFormat = strOr(visualize["tooltip-x-format"], "")
	c.TooltipNumberFormat = strOr(visualize["tooltip-number-format"], "")

	DeserializePlotHeight(visualize, &c.PlotHeightMode, &c.PlotHeightFixed, &c.PlotHeightRatio)

	texts, err := DeserializeTextAnnotations(visualize["text-annotations"])
	if err != nil {
		return nil, err
	}
	c.TextAnnotations = texts
	rangesList, err := DeserializeRangeAnnotations(visualize["range-annotations"])
	if err != nil {
		return nil, err
	}
	c.RangeAnnotations = rangesList
	return c, nil
}

// NewAreaChartFromOptions builds an area chart from a loose key-value
// mapping, warning on unrecognized keys.
func NewAreaChartFromOptions(opts map[string]any) (*AreaChart, error) {
	c := NewAreaChart("")
	if err := applyOptions(c, "AreaChart", areaChartOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var areaChartOptions = optionTable[*AreaChart]{}

func init() {
	t := areaChartOptions
	alias(t, func(c *AreaChart, v any) error { c.XGrid = strOr(v, c.XGrid); return nil }, "x_grid", "x-grid")
	alias(t, func(c *AreaChart, v any) error { c.YGrid = strOr(v, c.YGrid); return nil }, "y_grid", "y-grid")
	alias(t, func(c *AreaChart, v any) error { c.XGridFormat = strOr(v, c.XGridFormat); return nil },
		"x_grid_format", "x-grid-format")
	alias(t, func(c *AreaChart, v any) error { c.YGridFormat = strOr(v, c.YGridFormat); return nil },
		"y_grid_format", "y-grid-format")
	alias(t, func(c *AreaChart, v any) error { c.CustomRangeX = anySlice(v); return nil },
		"custom_range_x", "custom-range-x")
	alias(t, func(c *AreaChart, v any) error { c.CustomRangeY = anySlice(v); return nil },
		"custom_range_y", "custom-range-y")
	alias(t, func(c *AreaChart, v any) error { c.CustomTicksX = anySlice(v); return nil },
		"custom_ticks_x", "custom-ticks-x")
	alias(t, func(c *AreaChart, v any) error { c.CustomTicksY = anySlice(v); return nil },
		"custom_ticks_y", "custom-ticks-y")
	alias(t, func(c *AreaChart, v any) error { c.YGridLabels = strOr(v, c.YGridLabels); return nil },
		"y_grid_labels", "y-grid-labels")
	alias(t, func(c *AreaChart, v any) error { c.YGridLabelAlign = strOr(v, c.YGridLabelAlign); return nil },
		"y_grid_label_align", "y-grid-label-align")
	alias(t, func(c *AreaChart, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	alias(t, func(c *AreaChart, v any) error { c.AreaOpacity = floatOr(v, c.AreaOpacity); return nil },
		"area_opacity", "area-opacity")
	t["interpolation"] = func(c *AreaChart, v any) error { c.Interpolation = strOr(v, c.Interpolation); return nil }
	alias(t, func(c *AreaChart, v any) error { c.SortAreas = strOr(v, c.SortAreas); return nil },
		"sort_areas", "sort-areas")
	alias(t, func(c *AreaChart, v any) error { c.StackAreas = boolOr(v, c.StackAreas); return nil },
		"stack_areas", "stack-areas")
	alias(t, func(c *AreaChart, v any) error { c.StackTo100 = boolOr(v, c.StackTo100); return nil },
		"stack_to_100", "stack-to-100")
	alias(t, func(c *AreaChart, v any) error { c.AreaSeparatorLines = boolOr(v, c.AreaSeparatorLines); return nil },
		"area_separator_lines", "area-separator-lines")
	alias(t, func(c *AreaChart, v any) error { c.AreaSeparatorColor = v; return nil },
		"area_separator_color", "area-separator-color")
	alias(t, func(c *AreaChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *AreaChart, v any) error { c.ShowColorKey = boolOr(v, c.ShowColorKey); return nil },
		"show_color_key", "show-color-key")
	alias(t, func(c *AreaChart, v any) error { c.ShowTooltips = boolOr(v, c.ShowTooltips); return nil },
		"show_tooltips", "show-tooltips")
	alias(t, func(c *AreaChart, v any) error { c.TooltipXFormat = strOr(v, c.TooltipXFormat); return nil },
		"tooltip_x_format", "tooltip-x-format")
	alias(t, func(c *AreaChart, v any) error { c.TooltipNumberFormat = strOr(v, c.TooltipNumberFormat); return nil },
		"tooltip_number_format", "tooltip-number-format")
	alias(t, func(c *AreaChart, v any) error { c.PlotHeightMode = strOr(v, c.PlotHeightMode); return nil },
		"plot_height_mode", "plot-height-mode")
	alias(t, func(c *AreaChart, v any) error { c.PlotHeightFixed = floatOr(v, c.PlotHeightFixed); return nil },
		"plot_height_fixed", "plot-height-fixed")
	alias(t, func(c *AreaChart, v any) error { c.PlotHeightRatio = floatOr(v, c.PlotHeightRatio); return nil },
		"plot_height_ratio", "plot-height-ratio")
	alias(t, func(c *AreaChart, v any) error {
		texts, err := DeserializeTextAnnotations(v)
		if err != nil {
			return err
		}
		c.TextAnnotations = texts
		return nil
	}, "text_annotations", "text-annotations")
	alias(t, func(c *AreaChart, v any) error {
		ranges, err := DeserializeRangeAnnotations(v)
		if err != nil {
			return err
		}
		c.RangeAnnotations = ranges
		return nil
	}, "range_annotations", "range-annotations")
}
