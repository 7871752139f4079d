package charts

// ColumnChart models the provider's column-chart visualization.
type ColumnChart struct {
	Chart

	XGrid       string
	YGrid       string
	XGridFormat string
	YGridFormat string

	// The column chart configures only the vertical axis; its wire keys
	// drop the -y suffix the other cartesian charts use.
	CustomRange []any
	CustomTicks []any

	YGridLabels     string
	YGridLabelAlign string

	BaseColor      any
	NegativeColor  *string
	UseMixedColors bool
	ColorCategory  map[string]string
	CategoryLabels map[string]string
	CategoryOrder  []string
	BarPadding     int

	PlotHeightMode  string
	PlotHeightFixed float64
	PlotHeightRatio float64

	ShowColorKey         bool
	ShowValueLabels      string // hover, always or off
	ValueLabelsFormat    string
	ValueLabelsPlacement string // inside, outside or below

	TextAnnotations  []*TextAnnotation
	RangeAnnotations []*RangeAnnotation
}

// NewColumnChart returns a column chart with the provider's defaults.
func NewColumnChart(title string) *ColumnChart {
	return &ColumnChart{
		Chart:                newChart(title),
		XGrid:                GridOff,
		YGrid:                GridOn,
		YGridLabels:          "outside",
		YGridLabelAlign:      "left",
		BaseColor:            0,
		BarPadding:           30,
		PlotHeightMode:       PlotHeightFixed,
		PlotHeightFixed:      300,
		PlotHeightRatio:      0.5,
		ShowValueLabels:      LabelsHover,
		ValueLabelsPlacement: "outside",
	}
}

func (c *ColumnChart) ChartType() string { return "column-chart" }

func (c *ColumnChart) Validate() error {
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
	if err := oneOf("show-value-labels", c.ShowValueLabels, valueLabelDisplays...); err != nil {
		return err
	}
	if err := oneOf("value-labels-placement", c.ValueLabelsPlacement, valueLabelPlaces...); err != nil {
		return err
	}
	return oneOf("plot-height-mode", c.PlotHeightMode, plotHeightModes...)
}

func (c *ColumnChart) Serialize() (Wire, error) {
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
		"x-grid":     c.XGrid,
		"y-grid":     c.YGrid,
		"grid-lines": c.YGrid == GridOn,
		"yAxisLabels": Wire{
			"enabled":   c.YGridLabels != "off",
			"alignment": c.YGridLabelAlign,
			"placement": offToEmpty(c.YGridLabels),
		},
		"base-color":    c.BaseColor,
		"negativeColor": SerializeNegativeColor(c.NegativeColor),
		"mixed-colors":  c.UseMixedColors,
		"bar-padding":   c.BarPadding,
		"color-category": SerializeColorCategory(
			c.ColorCategory, c.CategoryLabels, c.CategoryOrder, nil),
		"color-by-column":   len(c.ColorCategory) > 0,
		"show-color-key":    c.ShowColorKey,
		"text-annotations":  texts,
		"range-annotations": ranges,
	}
	if c.XGridFormat != "" {
		visualize["x-grid-format"] = c.XGridFormat
	}
	if c.YGridFormat != "" {
		visualize["y-grid-format"] = c.YGridFormat
	}
	if c.CustomRange != nil {
		visualize["custom-range"] = SerializeRange(c.CustomRange)
	}
	if c.CustomTicks != nil {
		visualize["custom-ticks"] = SerializeTicks(c.CustomTicks)
	}
	for k, v := range SerializePlotHeight(c.PlotHeightMode, c.PlotHeightFixed, c.PlotHeightRatio) {
		visualize[k] = v
	}
	for k, v := range serializeColumnValueLabels(c.ShowValueLabels, c.ValueLabelsFormat, c.ValueLabelsPlacement) {
		visualize[k] = v
	}
	return c.envelope(c.ChartType(), visualize)
}

// ColumnChartFromWire rebuilds a column chart from a metadata document.
// The provider reports the grid through grid-lines-x and the grid-lines
// boolean rather than the x-grid and y-grid strings it accepts on write.
func ColumnChartFromWire(doc Wire) (*ColumnChart, error) {
	c := NewColumnChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")

	if glx, ok := visualize["grid-lines-x"].(map[string]any); ok {
		if boolOr(glx["enabled"], false) {
			c.XGrid = strOr(glx["type"], GridOff)
		} else {
			c.XGrid = GridOff
		}
	}
	if v, ok := visualize["grid-lines"]; ok {
		if boolOr(v, false) {
			c.YGrid = GridOn
		} else {
			c.YGrid = GridOff
		}
	}
	c.XGridFormat = strOr(visualize["x-grid-format"], "")
	c.YGridFormat = strOr(visualize["y-grid-format"], "")
	if v, ok := visualize["custom-range"]; ok {
		c.CustomRange = DeserializeRange(v)
	}
	if v, ok := visualize["custom-ticks"]; ok {
		c.CustomTicks = DeserializeTicks(strOr(v, ""))
	}

	if labels, ok := visualize["yAxisLabels"].(map[string]any); ok {
		if boolOr(labels["enabled"], true) {
			c.YGridLabels = strOr(labels["placement"], "outside")
		} else {
			c.YGridLabels = "off"
		}
		c.YGridLabelAlign = strOr(labels["alignment"], c.YGridLabelAlign)
	}

	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	if v, ok := visualize["negativeColor"]; ok {
		c.NegativeColor = DeserializeNegativeColor(v)
	}
	c.UseMixedColors = boolOr(visualize["mixed-colors"], c.NegativeColor != nil)
	colors := DeserializeColorCategory(visualize["color-category"])
	c.ColorCategory = colors.Map
	c.CategoryLabels = colors.CategoryLabels
	c.CategoryOrder = colors.CategoryOrder
	c.BarPadding = intOr(visualize["bar-padding"], c.BarPadding)

	DeserializePlotHeight(visualize, &c.PlotHeightMode, &c.PlotHeightFixed, &c.PlotHeightRatio)

	c.ShowColorKey = boolOr(visualize["show-color-key"], false)
	if show, format, placement, ok := deserializeColumnValueLabels(visualize); ok {
		c.ShowValueLabels = show
		c.ValueLabelsFormat = format
		c.ValueLabelsPlacement = placement
	}

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

// NewColumnChartFromOptions builds a column chart from a loose key-value
// mapping, warning on unrecognized keys. Supplying a negative color turns
// on mixed colors unless the caller set that flag explicitly.
func NewColumnChartFromOptions(opts map[string]any) (*ColumnChart, error) {
	c := NewColumnChart("")
	if err := applyOptions(c, "ColumnChart", columnChartOptions, opts); err != nil {
		return nil, err
	}
	if c.NegativeColor != nil && !hasAnyKey(opts, "use_mixed_colors", "mixed_colors", "mixed-colors") {
		c.UseMixedColors = true
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func hasAnyKey(opts map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := opts[k]; ok {
			return true
		}
	}
	return false
}

var columnChartOptions = optionTable[*ColumnChart]{}

func init() {
	t := columnChartOptions
	alias(t, func(c *ColumnChart, v any) error { c.XGrid = strOr(v, c.XGrid); return nil }, "x_grid", "x-grid")
	alias(t, func(c *ColumnChart, v any) error { c.YGrid = strOr(v, c.YGrid); return nil }, "y_grid", "y-grid")
	alias(t, func(c *ColumnChart, v any) error { c.XGridFormat = strOr(v, c.XGridFormat); return nil },
		"x_grid_format", "x-grid-format")
	alias(t, func(c *ColumnChart, v any) error { c.YGridFormat = strOr(v, c.YGridFormat); return nil },
		"y_grid_format", "y-grid-format")
	alias(t, func(c *ColumnChart, v any) error { c.CustomRange = anySlice(v); return nil },
		"custom_range", "custom-range")
	alias(t, func(c *ColumnChart, v any) error { c.CustomTicks = anySlice(v); return nil },
		"custom_ticks", "custom-ticks")
	alias(t, func(c *ColumnChart, v any) error { c.YGridLabels = strOr(v, c.YGridLabels); return nil },
		"y_grid_labels", "y-grid-labels")
	alias(t, func(c *ColumnChart, v any) error { c.YGridLabelAlign = strOr(v, c.YGridLabelAlign); return nil },
		"y_grid_label_align", "y-grid-label-align")
	alias(t, func(c *ColumnChart, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	alias(t, func(c *ColumnChart, v any) error {
		if v == nil {
			c.NegativeColor = nil
			return nil
		}
		s := strOr(v, "")
		c.NegativeColor = &s
		return nil
	}, "negative_color", "negative-color")
	alias(t, func(c *ColumnChart, v any) error { c.UseMixedColors = boolOr(v, c.UseMixedColors); return nil },
		"use_mixed_colors", "mixed_colors", "mixed-colors")
	alias(t, func(c *ColumnChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *ColumnChart, v any) error { c.CategoryLabels = strMap(v); return nil },
		"category_labels", "category-labels")
	alias(t, func(c *ColumnChart, v any) error { c.CategoryOrder = strSlice(v); return nil },
		"category_order", "category-order")
	alias(t, func(c *ColumnChart, v any) error { c.BarPadding = intOr(v, c.BarPadding); return nil },
		"bar_padding", "bar-padding")
	alias(t, func(c *ColumnChart, v any) error { c.PlotHeightMode = strOr(v, c.PlotHeightMode); return nil },
		"plot_height_mode", "plot-height-mode")
	alias(t, func(c *ColumnChart, v any) error { c.PlotHeightFixed = floatOr(v, c.PlotHeightFixed); return nil },
		"plot_height_fixed", "plot-height-fixed")
	alias(t, func(c *ColumnChart, v any) error { c.PlotHeightRatio = floatOr(v, c.PlotHeightRatio); return nil },
		"plot_height_ratio", "plot-height-ratio")
	alias(t, func(c *ColumnChart, v any) error { c.ShowColorKey = boolOr(v, c.ShowColorKey); return nil },
		"show_color_key", "show-color-key")
	alias(t, func(c *ColumnChart, v any) error {
		switch b := v.(type) {
		case bool:
			if b {
				c.ShowValueLabels = LabelsAlways
			} else {
				c.ShowValueLabels = LabelsOff
			}
		default:
			c.ShowValueLabels = strOr(v, c.ShowValueLabels)
		}
		return nil
	}, "show_value_labels", "show-value-labels")
	alias(t, func(c *ColumnChart, v any) error { c.ValueLabelsFormat = strOr(v, c.ValueLabelsFormat); return nil },
		"value_labels_format", "value-labels-format")
	alias(t, func(c *ColumnChart, v any) error {
		c.ValueLabelsPlacement = strOr(v, c.ValueLabelsPlacement)
		return nil
	},
		"value_labels_placement", "value-labels-placement")
	alias(t, func(c *ColumnChart, v any) error {
		texts, err := DeserializeTextAnnotations(v)
		if err != nil {
			return err
		}
		c.TextAnnotations = texts
		return nil
	}, "text_annotations", "text-annotations")
	alias(t, func(c *ColumnChart, v any) error {
		ranges, err := DeserializeRangeAnnotations(v)
		if err != nil {
			return err
		}
		c.RangeAnnotations = ranges
		return nil
	}, "range_annotations", "range-annotations")
}
