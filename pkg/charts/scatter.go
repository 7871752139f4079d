package charts

// ScatterPlot models the provider's d3-scatter-plot visualization.
// Column bindings for both axes plus size, shape, label and color live
// under metadata.axes rather than the visualize section.
type ScatterPlot struct {
	Chart

	XColumn    string
	XRange     []any
	XTicks     []any
	XLog       bool
	XFormat    string
	XPosition  string
	XGridLines string

	YColumn    string
	YRange     []any
	YTicks     []any
	YLog       bool
	YFormat    string
	YPosition  string
	YGridLines string

	BaseColor           any
	Opacity             float64
	Outlines            bool
	ColorOutline        string
	ShowColorKey        bool
	ColorColumn         string
	ColorCategory       map[string]string
	CategoryLabels      map[string]string
	CategoryOrder       []string
	ExcludeFromColorKey []string

	Size                    string // fixed or dynamic
	FixedSize               float64
	SizeColumn              string
	MaxSize                 float64
	ResponsiveSymbolSize    bool
	ShowSizeLegend          bool
	SizeLegendPosition      string
	LegendOffsetX           int
	LegendOffsetY           int
	SizeLegendValuesFormat  string // auto or custom
	SizeLegendValues        []any
	SizeLegendLabelPosition string // below or right
	SizeLegendLabelFormat   string
	SizeLegendTitleEnabled  bool
	SizeLegendTitle         string
	SizeLegendTitlePosition string
	SizeLegendTitleWidth    float64

	Shape       string // fixed or variable
	FixedShape  string
	ShapeColumn string

	Regression       bool
	RegressionMethod string

	PlotHeightMode  string
	PlotHeightFixed float64
	PlotHeightRatio float64

	CustomLines string

	LabelColumn      string
	AutoLabels       bool
	AddLabels        []any
	HighlightLabeled bool

	TooltipEnabled bool
	TooltipTitle   string
	TooltipBody    string
	TooltipSticky  bool

	TextAnnotations  []*TextAnnotation
	RangeAnnotations []*RangeAnnotation
}

// NewScatterPlot returns a scatter plot with the provider's defaults.
func NewScatterPlot(title string) *ScatterPlot {
	return &ScatterPlot{
		Chart:                   newChart(title),
		XRange:                  []any{"", ""},
		XPosition:               "bottom",
		XGridLines:              GridOn,
		YRange:                  []any{"", ""},
		YPosition:               "bottom",
		YGridLines:              GridOn,
		BaseColor:               0,
		Opacity:                 1.0,
		ColorOutline:            "#000000",
		Size:                    "fixed",
		FixedSize:               5,
		MaxSize:                 25,
		SizeLegendPosition:      "above",
		SizeLegendValuesFormat:  "auto",
		SizeLegendLabelPosition: "below",
		SizeLegendTitlePosition: "left",
		SizeLegendTitleWidth:    200,
		Shape:                   "fixed",
		FixedShape:              "symbolCircle",
		RegressionMethod:        "linear",
		PlotHeightMode:          PlotHeightFixed,
		PlotHeightFixed:         300,
		PlotHeightRatio:         0.5,
		AutoLabels:              true,
		HighlightLabeled:        true,
		TooltipEnabled:          true,
	}
}

func (c *ScatterPlot) ChartType() string { return "d3-scatter-plot" }

func (c *ScatterPlot) Validate() error {
	if err := oneOf("x-position", c.XPosition, scatterAxisPosition...); err != nil {
		return err
	}
	if err := oneOf("y-position", c.YPosition, scatterAxisPosition...); err != nil {
		return err
	}
	if err := oneOf("x-grid-lines", c.XGridLines, scatterGridLines...); err != nil {
		return err
	}
	if err := oneOf("y-grid-lines", c.YGridLines, scatterGridLines...); err != nil {
		return err
	}
	if c.Opacity < 0 || c.Opacity > 1 {
		return &ValidationError{Field: "opacity", Value: c.Opacity, Allowed: "a number between 0 and 1"}
	}
	if err := oneOf("size", c.Size, "fixed", "dynamic"); err != nil {
		return err
	}
	if err := oneOf("size-legend-position", c.SizeLegendPosition,
		"above", "below",
		"inside-left-top", "inside-center-top", "inside-right-top",
		"inside-left-bottom", "inside-center-bottom", "inside-right-bottom"); err != nil {
		return err
	}
	if err := oneOf("size-legend-values-format", c.SizeLegendValuesFormat, "auto", "custom"); err != nil {
		return err
	}
	if err := oneOf("size-legend-label-position", c.SizeLegendLabelPosition, "below", "right"); err != nil {
		return err
	}
	if err := oneOf("size-legend-title-position", c.SizeLegendTitlePosition, "left", "right", "above", "below"); err != nil {
		return err
	}
	if err := oneOf("fixed-shape", c.FixedShape, scatterShapes...); err != nil {
		return err
	}
	if err := oneOf("regression-method", c.RegressionMethod, regressionMethods...); err != nil {
		return err
	}
	return oneOf("plot-height-mode", c.PlotHeightMode, plotHeightModes...)
}

func (c *ScatterPlot) Serialize() (Wire, error) {
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
		"x-axis": Wire{
			"log":   c.XLog,
			"range": SerializeRange(c.XRange),
			"ticks": listOrEmpty(c.XTicks),
		},
		"x-format":     c.XFormat,
		"x-pos":        c.XPosition,
		"x-grid-lines": c.XGridLines,
		"y-axis": Wire{
			"log":   c.YLog,
			"range": SerializeRange(c.YRange),
			"ticks": listOrEmpty(c.YTicks),
		},
		"y-format":       c.YFormat,
		"y-pos":          c.YPosition,
		"y-grid-lines":   c.YGridLines,
		"base-color":     c.BaseColor,
		"opacity":        c.Opacity,
		"outlines":       c.Outlines,
		"color-outline":  c.ColorOutline,
		"show-color-key": c.ShowColorKey,
		"color-category": SerializeColorCategory(
			c.ColorCategory, c.CategoryLabels, c.CategoryOrder, c.ExcludeFromColorKey),
		"color-by-column":            len(c.ColorCategory) > 0,
		"size":                       c.Size,
		"fixed-size":                 c.FixedSize,
		"max-size":                   c.MaxSize,
		"responsive-symbol-size":     c.ResponsiveSymbolSize,
		"show-size-legend":           c.ShowSizeLegend,
		"size-legend-position":       c.SizeLegendPosition,
		"legend-offset-x":            c.LegendOffsetX,
		"legend-offset-y":            c.LegendOffsetY,
		"size-legend-values-setting": c.SizeLegendValuesFormat,
		"size-legend-values":         listOrEmpty(c.SizeLegendValues),
		"size-legend-label-position": c.SizeLegendLabelPosition,
		"size-legend-label-format":   c.SizeLegendLabelFormat,
		"size-legend-title-enabled":  c.SizeLegendTitleEnabled,
		"size-legend-title":          c.SizeLegendTitle,
		"size-legend-title-position": c.SizeLegendTitlePosition,
		"size-legend-title-width":    c.SizeLegendTitleWidth,
		"shape":                      c.Shape,
		"fixed-shape":                c.FixedShape,
		"regression":                 c.Regression,
		"regression-method":          c.RegressionMethod,
		"text-annotations":           texts,
		"range-annotations":          ranges,
		"custom-lines":               c.CustomLines,
		"auto-labels":                c.AutoLabels,
		"add-labels":                 listOrEmpty(c.AddLabels),
		"highlight-labeled":          c.HighlightLabeled,
		"tooltip": Wire{
			"body":     c.TooltipBody,
			"title":    c.TooltipTitle,
			"sticky":   c.TooltipSticky,
			"enabled":  c.TooltipEnabled,
			"migrated": true,
		},
	}
	for k, v := range SerializePlotHeight(c.PlotHeightMode, c.PlotHeightFixed, c.PlotHeightRatio) {
		visualize[k] = v
	}
	doc, err := c.envelope(c.ChartType(), visualize)
	if err != nil {
		return nil, err
	}
	axes := Wire{}
	if c.XColumn != "" {
		axes["x"] = c.XColumn
	}
	if c.YColumn != "" {
		axes["y"] = c.YColumn
	}
	if c.SizeColumn != "" {
		axes["size"] = c.SizeColumn
	}
	if c.ShapeColumn != "" {
		axes["shape"] = c.ShapeColumn
	}
	if c.LabelColumn != "" {
		axes["labels"] = c.LabelColumn
	}
	if c.ColorColumn != "" {
		axes["color"] = c.ColorColumn
	}
	doc["metadata"].(Wire)["axes"] = axes
	return doc, nil
}

// ScatterPlotFromWire rebuilds a scatter plot from a metadata document.
func ScatterPlotFromWire(doc Wire) (*ScatterPlot, error) {
	c := NewScatterPlot("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")
	axes := subMap(doc, "metadata", "axes")

	c.XColumn = strOr(axes["x"], "")
	c.YColumn = strOr(axes["y"], "")
	c.SizeColumn = strOr(axes["size"], "")
	c.ShapeColumn = strOr(axes["shape"], "")
	c.LabelColumn = strOr(axes["labels"], "")
	c.ColorColumn = strOr(axes["color"], "")

	if xAxis, ok := visualize["x-axis"].(map[string]any); ok {
		c.XLog = boolOr(xAxis["log"], false)
		c.XRange = DeserializeRange(xAxis["range"])
		c.XTicks = anySlice(xAxis["ticks"])
	}
	c.XFormat = strOr(visualize["x-format"], c.XFormat)
	c.XPosition = strOr(visualize["x-pos"], c.XPosition)
	c.XGridLines = strOr(visualize["x-grid-lines"], c.XGridLines)

	if yAxis, ok := visualize["y-axis"].(map[string]any); ok {
		c.YLog = boolOr(yAxis["log"], false)
		c.YRange = DeserializeRange(yAxis["range"])
		c.YTicks = anySlice(yAxis["ticks"])
	}
	c.YFormat = strOr(visualize["y-format"], c.YFormat)
	c.YPosition = strOr(visualize["y-pos"], c.YPosition)
	c.YGridLines = strOr(visualize["y-grid-lines"], c.YGridLines)

	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	c.Opacity = floatOr(visualize["opacity"], c.Opacity)
	c.Outlines = boolOr(visualize["outlines"], c.Outlines)
	c.ColorOutline = strOr(visualize["color-outline"], c.ColorOutline)
	c.ShowColorKey = boolOr(visualize["show-color-key"], c.ShowColorKey)

	cat := DeserializeColorCategory(visualize["color-category"])
	c.ColorCategory = cat.Map
	c.CategoryLabels = cat.CategoryLabels
	c.CategoryOrder = cat.CategoryOrder
	c.ExcludeFromColorKey = cat.ExcludeFromKey

	c.Size = strOr(visualize["size"], c.Size)
	c.FixedSize = floatOr(visualize["fixed-size"], c.FixedSize)
	c.MaxSize = floatOr(visualize["max-size"], c.MaxSize)
	c.ResponsiveSymbolSize = boolOr(visualize["responsive-symbol-size"], c.ResponsiveSymbolSize)
	c.ShowSizeLegend = boolOr(visualize["show-size-legend"], c.ShowSizeLegend)
	c.SizeLegendPosition = strOr(visualize["size-legend-position"], c.SizeLegendPosition)
	c.LegendOffsetX = intOr(visualize["legend-offset-x"], c.LegendOffsetX)
	c.LegendOffsetY = intOr(visualize["legend-offset-y"], c.LegendOffsetY)
	c.SizeLegendValuesFormat = strOr(visualize["size-legend-values-setting"], c.SizeLegendValuesFormat)
	if v, ok := visualize["size-legend-values"]; ok {
		c.SizeLegendValues = anySlice(v)
	}
	c.SizeLegendLabelPosition = strOr(visualize["size-legend-label-position"], c.SizeLegendLabelPosition)
	c.SizeLegendLabelFormat = strOr(visualize["size-legend-label-format"], c.SizeLegendLabelFormat)
	c.SizeLegendTitleEnabled = boolOr(visualize["size-legend-title-enabled"], c.SizeLegendTitleEnabled)
	c.SizeLegendTitle = strOr(visualize["size-legend-title"], c.SizeLegendTitle)
	c.SizeLegendTitlePosition = strOr(visualize["size-legend-title-position"], c.SizeLegendTitlePosition)
	c.SizeLegendTitleWidth = floatOr(visualize["size-legend-title-width"], c.SizeLegendTitleWidth)

	c.Shape = strOr(visualize["shape"], c.Shape)
	c.FixedShape = strOr(visualize["fixed-shape"], c.FixedShape)

	c.Regression = boolOr(visualize["regression"], c.Regression)
	c.RegressionMethod = strOr(visualize["regression-method"], c.RegressionMethod)

	DeserializePlotHeight(visualize, &c.PlotHeightMode, &c.PlotHeightFixed, &c.PlotHeightRatio)

	c.CustomLines = strOr(visualize["custom-lines"], c.CustomLines)
	c.AutoLabels = boolOr(visualize["auto-labels"], c.AutoLabels)
	if v, ok := visualize["add-labels"]; ok {
		c.AddLabels = anySlice(v)
	}
	c.HighlightLabeled = boolOr(visualize["highlight-labeled"], c.HighlightLabeled)

	if tooltip, ok := visualize["tooltip"].(map[string]any); ok {
		c.TooltipEnabled = boolOr(tooltip["enabled"], true)
		c.TooltipTitle = strOr(tooltip["title"], "")
		c.TooltipBody = strOr(tooltip["body"], "")
		c.TooltipSticky = boolOr(tooltip["sticky"], false)
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

// NewScatterPlotFromOptions builds a scatter plot from a loose key-value
// mapping, warning on unrecognized keys.
func NewScatterPlotFromOptions(opts map[string]any) (*ScatterPlot, error) {
	c := NewScatterPlot("")
	if err := applyOptions(c, "ScatterPlot", scatterPlotOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var scatterPlotOptions = optionTable[*ScatterPlot]{}

func init() {
	t := scatterPlotOptions
	alias(t, func(c *ScatterPlot, v any) error { c.XColumn = strOr(v, c.XColumn); return nil }, "x_column", "x-column")
	alias(t, func(c *ScatterPlot, v any) error { c.XRange = anySlice(v); return nil }, "x_range", "x-range")
	alias(t, func(c *ScatterPlot, v any) error { c.XTicks = anySlice(v); return nil }, "x_ticks", "x-ticks")
	alias(t, func(c *ScatterPlot, v any) error { c.XLog = boolOr(v, c.XLog); return nil }, "x_log", "x-log")
	alias(t, func(c *ScatterPlot, v any) error { c.XFormat = strOr(v, c.XFormat); return nil }, "x_format", "x-format")
	alias(t, func(c *ScatterPlot, v any) error { c.XPosition = strOr(v, c.XPosition); return nil },
		"x_position", "x-position", "x-pos")
	alias(t, func(c *ScatterPlot, v any) error { c.XGridLines = strOr(v, c.XGridLines); return nil },
		"x_grid_lines", "x-grid-lines")
	alias(t, func(c *ScatterPlot, v any) error { c.YColumn = strOr(v, c.YColumn); return nil }, "y_column", "y-column")
	alias(t, func(c *ScatterPlot, v any) error { c.YRange = anySlice(v); return nil }, "y_range", "y-range")
	alias(t, func(c *ScatterPlot, v any) error { c.YTicks = anySlice(v); return nil }, "y_ticks", "y-ticks")
	alias(t, func(c *ScatterPlot, v any) error { c.YLog = boolOr(v, c.YLog); return nil }, "y_log", "y-log")
	alias(t, func(c *ScatterPlot, v any) error { c.YFormat = strOr(v, c.YFormat); return nil }, "y_format", "y-format")
	alias(t, func(c *ScatterPlot, v any) error { c.YPosition = strOr(v, c.YPosition); return nil },
		"y_position", "y-position", "y-pos")
	alias(t, func(c *ScatterPlot, v any) error { c.YGridLines = strOr(v, c.YGridLines); return nil },
		"y_grid_lines", "y-grid-lines")
	alias(t, func(c *ScatterPlot, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	t["opacity"] = func(c *ScatterPlot, v any) error { c.Opacity = floatOr(v, c.Opacity); return nil }
	t["outlines"] = func(c *ScatterPlot, v any) error { c.Outlines = boolOr(v, c.Outlines); return nil }
	alias(t, func(c *ScatterPlot, v any) error { c.ColorOutline = strOr(v, c.ColorOutline); return nil },
		"color_outline", "color-outline")
	alias(t, func(c *ScatterPlot, v any) error { c.ShowColorKey = boolOr(v, c.ShowColorKey); return nil },
		"show_color_key", "show-color-key")
	alias(t, func(c *ScatterPlot, v any) error { c.ColorColumn = strOr(v, c.ColorColumn); return nil },
		"color_column", "color-column")
	alias(t, func(c *ScatterPlot, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *ScatterPlot, v any) error { c.CategoryLabels = strMap(v); return nil },
		"category_labels", "category-labels")
	alias(t, func(c *ScatterPlot, v any) error { c.CategoryOrder = strSlice(v); return nil },
		"category_order", "category-order")
	alias(t, func(c *ScatterPlot, v any) error { c.ExcludeFromColorKey = strSlice(v); return nil },
		"exclude_from_color_key", "exclude-from-color-key")
	t["size"] = func(c *ScatterPlot, v any) error { c.Size = strOr(v, c.Size); return nil }
	alias(t, func(c *ScatterPlot, v any) error { c.FixedSize = floatOr(v, c.FixedSize); return nil },
		"fixed_size", "fixed-size")
	alias(t, func(c *ScatterPlot, v any) error { c.SizeColumn = strOr(v, c.SizeColumn); return nil },
		"size_column", "size-column")
	alias(t, func(c *ScatterPlot, v any) error { c.MaxSize = floatOr(v, c.MaxSize); return nil },
		"max_size", "max-size")
	alias(t, func(c *ScatterPlot, v any) error {
		c.ResponsiveSymbolSize = boolOr(v, c.ResponsiveSymbolSize)
		return nil
	},
		"responsive_symbol_size", "responsive-symbol-size")
	alias(t, func(c *ScatterPlot, v any) error { c.ShowSizeLegend = boolOr(v, c.ShowSizeLegend); return nil },
		"show_size_legend", "show-size-legend")
	alias(t, func(c *ScatterPlot, v any) error { c.SizeLegendPosition = strOr(v, c.SizeLegendPosition); return nil },
		"size_legend_position", "size-legend-position")
	alias(t, func(c *ScatterPlot, v any) error { c.LegendOffsetX = intOr(v, c.LegendOffsetX); return nil },
		"legend_offset_x", "legend-offset-x")
	alias(t, func(c *ScatterPlot, v any) error { c.LegendOffsetY = intOr(v, c.LegendOffsetY); return nil },
		"legend_offset_y", "legend-offset-y")
	alias(t, func(c *ScatterPlot, v any) error {
		c.SizeLegendValuesFormat = strOr(v, c.SizeLegendValuesFormat)
		return nil
	},
		"size_legend_values_format", "size-legend-values-format")
	alias(t, func(c *ScatterPlot, v any) error { c.SizeLegendValues = anySlice(v); return nil },
		"size_legend_values", "size-legend-values")
	alias(t, func(c *ScatterPlot, v any) error {
		c.SizeLegendLabelPosition = strOr(v, c.SizeLegendLabelPosition)
		return nil
	},
		"size_legend_label_position", "size-legend-label-position")
	alias(t, func(c *ScatterPlot, v any) error {
		c.SizeLegendLabelFormat = strOr(v, c.SizeLegendLabelFormat)
		return nil
	},
		"size_legend_label_format", "size-legend-label-format")
	alias(t, func(c *ScatterPlot, v any) error {
		c.SizeLegendTitleEnabled = boolOr(v, c.SizeLegendTitleEnabled)
		return nil
	},
		"size_legend_title_enabled", "size-legend-title-enabled")
	alias(t, func(c *ScatterPlot, v any) error { c.SizeLegendTitle = strOr(v, c.SizeLegendTitle); return nil },
		"size_legend_title", "size-legend-title")
	alias(t, func(c *ScatterPlot, v any) error {
		c.SizeLegendTitlePosition = strOr(v, c.SizeLegendTitlePosition)
		return nil
	},
		"size_legend_title_position", "size-legend-title-position")
	alias(t, func(c *ScatterPlot, v any) error {
		c.SizeLegendTitleWidth = floatOr(v, c.SizeLegendTitleWidth)
		return nil
	},
		"size_legend_title_width", "size-legend-title-width")
	t["shape"] = func(c *ScatterPlot, v any) error { c.Shape = strOr(v, c.Shape); return nil }
	alias(t, func(c *ScatterPlot, v any) error { c.FixedShape = strOr(v, c.FixedShape); return nil },
		"fixed_shape", "fixed-shape")
	alias(t, func(c *ScatterPlot, v any) error { c.ShapeColumn = strOr(v, c.ShapeColumn); return nil },
		"shape_column", "shape-column")
	t["regression"] = func(c *ScatterPlot, v any) error { c.Regression = boolOr(v, c.Regression); return nil }
	alias(t, func(c *ScatterPlot, v any) error { c.RegressionMethod = strOr(v, c.RegressionMethod); return nil },
		"regression_method", "regression-method")
	alias(t, func(c *ScatterPlot, v any) error { c.PlotHeightMode = strOr(v, c.PlotHeightMode); return nil },
		"plot_height_mode", "plot-height-mode")
	alias(t, func(c *ScatterPlot, v any) error { c.PlotHeightFixed = floatOr(v, c.PlotHeightFixed); return nil },
		"plot_height_fixed", "plot-height-fixed")
	alias(t, func(c *ScatterPlot, v any) error { c.PlotHeightRatio = floatOr(v, c.PlotHeightRatio); return nil },
		"plot_height_ratio", "plot-height-ratio")
	alias(t, func(c *ScatterPlot, v any) error { c.CustomLines = strOr(v, c.CustomLines); return nil },
		"custom_lines", "custom-lines")
	alias(t, func(c *ScatterPlot, v any) error { c.LabelColumn = strOr(v, c.LabelColumn); return nil },
		"label_column", "label-column")
	alias(t, func(c *ScatterPlot, v any) error { c.AutoLabels = boolOr(v, c.AutoLabels); return nil },
		"auto_labels", "auto-labels")
	alias(t, func(c *ScatterPlot, v any) error { c.AddLabels = anySlice(v); return nil },
		"add_labels", "add-labels")
	alias(t, func(c *ScatterPlot, v any) error { c.HighlightLabeled = boolOr(v, c.HighlightLabeled); return nil },
		"highlight_labeled", "highlight-labeled")
	alias(t, func(c *ScatterPlot, v any) error { c.TooltipEnabled = boolOr(v, c.TooltipEnabled); return nil },
		"tooltip_enabled", "tooltip-enabled")
	alias(t, func(c *ScatterPlot, v any) error { c.TooltipTitle = strOr(v, c.TooltipTitle); return nil },
		"tooltip_title", "tooltip-title")
	alias(t, func(c *ScatterPlot, v any) error { c.TooltipBody = strOr(v, c.TooltipBody); return nil },
		"tooltip_body", "tooltip-body")
	alias(t, func(c *ScatterPlot, v any) error { c.TooltipSticky = boolOr(v, c.TooltipSticky); return nil },
		"tooltip_sticky", "tooltip-sticky")
	alias(t, func(c *ScatterPlot, v any) error {
		texts, err := DeserializeTextAnnotations(v)
		if err != nil {
			return err
		}
		c.TextAnnotations = texts
		return nil
	}, "text_annotations", "text-annotations")
	alias(t, func(c *ScatterPlot, v any) error {
		ranges, err := DeserializeRangeAnnotations(v)
		if err != nil {
			return err
		}
		c.RangeAnnotations = ranges
		return nil
	}, "range_annotations", "range-annotations")
}
