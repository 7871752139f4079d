package charts

// MultipleColumnChart models the provider's d3-bars-split visualization,
// a grid of small-multiple column panels.
type MultipleColumnChart struct {
	Chart

	Panels []map[string]any

	GridLayout       string // fixedCount or minimumWidth
	GridColumn       int
	GridColumnMobile int
	GridColumnWidth  int
	GridRowHeight    int

	Sort        bool
	SortReverse bool
	SortBy      string // start, end, range, diff, change or title

	XGridLabels string // on or off
	XGridAll    string // wire key "x-grid"
	XGrid       string // wire object "grid-lines-x"
	YGrid       string // wire key "grid-lines"
	XGridFormat string
	YGridFormat string

	CustomRangeX []any
	CustomRangeY []any
	CustomTicksX []any
	CustomTicksY []any

	YGridLabels     string
	YGridLabelAlign string

	BaseColor     any
	NegativeColor *string
	ColorCategory map[string]string
	BarPadding    int

	PlotHeightMode  string
	PlotHeightFixed float64
	PlotHeightRatio float64

	ShowTooltips         bool
	SyncMultipleTooltips bool
	TooltipNumberFormat  string

	LabelColors  bool
	ShowColorKey bool
	LabelMargin  int

	ShowValueLabels      string
	ValueLabelsFormat    string
	ValueLabelsPlacement string
	XGridLabelAll        bool

	TextAnnotations  []*PanelTextAnnotation
	RangeAnnotations []*PanelRangeAnnotation
}

// NewMultipleColumnChart returns a multiple column chart with the
// provider's defaults.
func NewMultipleColumnChart(title string) *MultipleColumnChart {
	return &MultipleColumnChart{
		Chart:                newChart(title),
		GridLayout:           "fixedCount",
		GridColumn:           2,
		GridColumnMobile:     2,
		GridColumnWidth:      200,
		GridRowHeight:        140,
		SortBy:               "end",
		XGridLabels:          GridOn,
		XGridAll:             GridOff,
		XGrid:                GridOff,
		YGrid:                GridOn,
		YGridLabels:          "outside",
		YGridLabelAlign:      "left",
		BaseColor:            0,
		BarPadding:           30,
		PlotHeightMode:       PlotHeightFixed,
		PlotHeightFixed:      300,
		PlotHeightRatio:      0.5,
		ShowTooltips:         true,
		ShowValueLabels:      LabelsOff,
		ValueLabelsPlacement: "outside",
	}
}

func (c *MultipleColumnChart) ChartType() string { return "d3-bars-split" }

func (c *MultipleColumnChart) Validate() error {
	if err := oneOf("grid-layout", c.GridLayout, "fixedCount", "minimumWidth"); err != nil {
		return err
	}
	if err := oneOf("sort-by", c.SortBy, "start", "end", "range", "diff", "change", "title"); err != nil {
		return err
	}
	if err := oneOf("x-grid-labels", c.XGridLabels, GridOn, GridOff); err != nil {
		return err
	}
	if err := oneOf("x-grid", c.XGrid, gridDisplayValues...); err != nil {
		return err
	}
	if err := oneOf("y-grid", c.YGrid, gridDisplayValues...); err != nil {
		return err
	}
	if err := oneOf("y-grid-labels", c.YGridLabels, gridLabelPositions...); err != nil {
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

func (c *MultipleColumnChart) Serialize() (Wire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	texts, err := serializePanelTextAnnotations(c.TextAnnotations)
	if err != nil {
		return nil, err
	}
	ranges, err := serializePanelRangeAnnotations(c.RangeAnnotations)
	if err != nil {
		return nil, err
	}
	panels := Wire{}
	for _, panel := range c.Panels {
		panels[strOr(panel["column"], "")] = panel
	}
	visualize := Wire{
		"gridLayout":            c.GridLayout,
		"gridColumnCount":       c.GridColumn,
		"gridColumnCountMobile": c.GridColumnMobile,
		"gridColumnMinWidth":    c.GridColumnWidth,
		"gridRowHeightFixed":    c.GridRowHeight,
		"sort": Wire{
			"enabled": c.Sort,
			"reverse": c.SortReverse,
			"by":      c.SortBy,
		},
		"x-grid-labels": c.XGridLabels,
		"x-grid":        c.XGridAll,
		"grid-lines-x": Wire{
			"type":    offToEmpty(c.XGrid),
			"enabled": c.XGrid != GridOff,
		},
		"y-grid":     c.YGrid,
		"grid-lines": c.YGrid,
		"yAxisLabels": Wire{
			"enabled":   c.YGridLabels != "off",
			"alignment": c.YGridLabelAlign,
			"placement": offToEmpty(c.YGridLabels),
		},
		"base-color":            c.BaseColor,
		"negativeColor":         SerializeNegativeColor(c.NegativeColor),
		"bar-padding":           c.BarPadding,
		"color-category":        SerializeColorCategory(c.ColorCategory, nil, nil, nil),
		"color-by-column":       len(c.ColorCategory) > 0,
		"panels":                panels,
		"show-tooltips":         c.ShowTooltips,
		"syncMultipleTooltips":  c.SyncMultipleTooltips,
		"tooltip-number-format": c.TooltipNumberFormat,
		"show-color-key":        c.ShowColorKey,
		"label-colors":          c.LabelColors,
		"label-margin":          c.LabelMargin,
		"xGridLabelAllColumns":  c.XGridLabelAll,
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
	for k, v := range serializeColumnValueLabels(c.ShowValueLabels, c.ValueLabelsFormat, c.ValueLabelsPlacement) {
		visualize[k] = v
	}
	return c.envelope(c.ChartType(), visualize)
}

// MultipleColumnChartFromWire rebuilds a multiple column chart from a
// metadata document. Panels come back as a column-keyed mapping and are
// flattened to a list with the column name merged in.
func MultipleColumnChartFromWire(doc Wire) (*MultipleColumnChart, error) {
	c := NewMultipleColumnChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")

	c.GridLayout = strOr(visualize["gridLayout"], c.GridLayout)
	c.GridColumn = intOr(visualize["gridColumnCount"], c.GridColumn)
	c.GridColumnMobile = intOr(visualize["gridColumnCountMobile"], c.GridColumnMobile)
	c.GridColumnWidth = intOr(visualize["gridColumnMinWidth"], c.GridColumnWidth)
	c.GridRowHeight = intOr(visualize["gridRowHeightFixed"], c.GridRowHeight)

	if sort, ok := visualize["sort"].(map[string]any); ok {
		c.Sort = boolOr(sort["enabled"], false)
		c.SortReverse = boolOr(sort["reverse"], false)
		c.SortBy = strOr(sort["by"], "end")
	}

	c.XGridLabels = strOr(visualize["x-grid-labels"], c.XGridLabels)
	c.XGridAll = strOr(visualize["x-grid"], c.XGridAll)
	if glx, ok := visualize["grid-lines-x"].(map[string]any); ok && boolOr(glx["enabled"], false) {
		c.XGrid = strOr(glx["type"], GridTicks)
	} else {
		c.XGrid = GridOff
	}
	// grid-lines arrives as a bool, the string "show" or a display string
	switch gl := visualize["grid-lines"].(type) {
	case bool:
		if gl {
			c.YGrid = GridOn
		} else {
			c.YGrid = GridOff
		}
	case string:
		switch gl {
		case "show":
			c.YGrid = GridOn
		case "":
		default:
			c.YGrid = gl
		}
	}
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

	if labels, ok := visualize["yAxisLabels"].(map[string]any); ok && len(labels) > 0 {
		if boolOr(labels["enabled"], true) {
			c.YGridLabels = strOr(labels["placement"], "outside")
		} else {
			c.YGridLabels = "off"
		}
		c.YGridLabelAlign = strOr(labels["alignment"], "left")
	} else {
		c.YGridLabels = strOr(visualize["y-grid-labels"], c.YGridLabels)
		c.YGridLabelAlign = strOr(visualize["y-grid-label-align"], c.YGridLabelAlign)
	}

	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	if v, ok := visualize["negativeColor"]; ok {
		c.NegativeColor = DeserializeNegativeColor(v)
	}
	c.ColorCategory = DeserializeColorCategory(visualize["color-category"]).Map
	c.BarPadding = intOr(visualize["bar-padding"], c.BarPadding)

	DeserializePlotHeight(visualize, &c.PlotHeightMode, &c.PlotHeightFixed, &c.PlotHeightRatio)

	if panels, ok := visualize["panels"].(map[string]any); ok {
		for column, raw := range panels {
			if m, ok := raw.(map[string]any); ok {
				panel := make(map[string]any, len(m)+1)
				for k, v := range m {
					panel[k] = v
				}
				panel["column"] = column
				c.Panels = append(c.Panels, panel)
			}
		}
	}

	c.ShowTooltips = boolOr(visualize["show-tooltips"], true)
	c.SyncMultipleTooltips = boolOr(visualize["syncMultipleTooltips"], false)
	c.TooltipNumberFormat = strOr(visualize["tooltip-number-format"], "")

	c.LabelColors = boolOr(visualize["label-colors"], false)
	c.ShowColorKey = boolOr(visualize["show-color-key"], false)
	c.LabelMargin = intOr(visualize["label-margin"], 0)
	c.XGridLabelAll = boolOr(visualize["xGridLabelAllColumns"], false)

	if show, format, placement, ok := deserializeColumnValueLabels(visualize); ok {
		c.ShowValueLabels = show
		c.ValueLabelsFormat = format
		c.ValueLabelsPlacement = placement
	}

	texts, err := DeserializePanelTextAnnotations(visualize["text-annotations"])
	if err != nil {
		return nil, err
	}
	c.TextAnnotations = texts
	rangesList, err := DeserializePanelRangeAnnotations(visualize["range-annotations"])
	if err != nil {
		return nil, err
	}
	c.RangeAnnotations = rangesList
	return c, nil
}

// NewMultipleColumnChartFromOptions builds a multiple column chart from a
// loose key-value mapping, warning on unrecognized keys.
func NewMultipleColumnChartFromOptions(opts map[string]any) (*MultipleColumnChart, error) {
	c := NewMultipleColumnChart("")
	if err := applyOptions(c, "MultipleColumnChart", multipleColumnChartOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var multipleColumnChartOptions = optionTable[*MultipleColumnChart]{}

func init() {
	t := multipleColumnChartOptions
	t["panels"] = func(c *MultipleColumnChart, v any) error {
		switch list := v.(type) {
		case []map[string]any:
			c.Panels = list
		case []any:
			for _, raw := range list {
				if m, ok := raw.(map[string]any); ok {
					c.Panels = append(c.Panels, m)
				}
			}
		default:
			return &ValidationError{Field: "panels", Value: v, Allowed: "a list of panel mappings"}
		}
		return nil
	}
	alias(t, func(c *MultipleColumnChart, v any) error { c.GridLayout = strOr(v, c.GridLayout); return nil },
		"grid_layout", "grid-layout")
	alias(t, func(c *MultipleColumnChart, v any) error { c.GridColumn = intOr(v, c.GridColumn); return nil },
		"grid_column", "grid-column")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.GridColumnMobile = intOr(v, c.GridColumnMobile)
		return nil
	},
		"grid_column_mobile", "grid-column-mobile")
	alias(t, func(c *MultipleColumnChart, v any) error { c.GridColumnWidth = intOr(v, c.GridColumnWidth); return nil },
		"grid_column_width", "grid-column-width")
	alias(t, func(c *MultipleColumnChart, v any) error { c.GridRowHeight = intOr(v, c.GridRowHeight); return nil },
		"grid_row_height", "grid-row-height")
	t["sort"] = func(c *MultipleColumnChart, v any) error { c.Sort = boolOr(v, c.Sort); return nil }
	alias(t, func(c *MultipleColumnChart, v any) error { c.SortReverse = boolOr(v, c.SortReverse); return nil },
		"sort_reverse", "sort-reverse")
	alias(t, func(c *MultipleColumnChart, v any) error { c.SortBy = strOr(v, c.SortBy); return nil },
		"sort_by", "sort-by")
	alias(t, func(c *MultipleColumnChart, v any) error { c.XGridLabels = strOr(v, c.XGridLabels); return nil },
		"x_grid_labels", "x-grid-labels")
	alias(t, func(c *MultipleColumnChart, v any) error { c.XGridAll = strOr(v, c.XGridAll); return nil },
		"x_grid_all", "x-grid-all")
	alias(t, func(c *MultipleColumnChart, v any) error { c.XGrid = strOr(v, c.XGrid); return nil },
		"x_grid", "x-grid")
	alias(t, func(c *MultipleColumnChart, v any) error { c.YGrid = strOr(v, c.YGrid); return nil },
		"y_grid", "y-grid")
	alias(t, func(c *MultipleColumnChart, v any) error { c.XGridFormat = strOr(v, c.XGridFormat); return nil },
		"x_grid_format", "x-grid-format")
	alias(t, func(c *MultipleColumnChart, v any) error { c.YGridFormat = strOr(v, c.YGridFormat); return nil },
		"y_grid_format", "y-grid-format")
	alias(t, func(c *MultipleColumnChart, v any) error { c.CustomRangeX = anySlice(v); return nil },
		"custom_range_x", "custom-range-x")
	alias(t, func(c *MultipleColumnChart, v any) error { c.CustomRangeY = anySlice(v); return nil },
		"custom_range_y", "custom-range-y")
	alias(t, func(c *MultipleColumnChart, v any) error { c.CustomTicksX = anySlice(v); return nil },
		"custom_ticks_x", "custom-ticks-x")
	alias(t, func(c *MultipleColumnChart, v any) error { c.CustomTicksY = anySlice(v); return nil },
		"custom_ticks_y", "custom-ticks-y")
	alias(t, func(c *MultipleColumnChart, v any) error { c.YGridLabels = strOr(v, c.YGridLabels); return nil },
		"y_grid_labels", "y-grid-labels")
	alias(t, func(c *MultipleColumnChart, v any) error { c.YGridLabelAlign = strOr(v, c.YGridLabelAlign); return nil },
		"y_grid_label_align", "y-grid-label-align")
	alias(t, func(c *MultipleColumnChart, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	alias(t, func(c *MultipleColumnChart, v any) error {
		if v == nil {
			c.NegativeColor = nil
			return nil
		}
		s := strOr(v, "")
		c.NegativeColor = &s
		return nil
	}, "negative_color", "negative-color")
	alias(t, func(c *MultipleColumnChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *MultipleColumnChart, v any) error { c.BarPadding = intOr(v, c.BarPadding); return nil },
		"bar_padding", "bar-padding")
	alias(t, func(c *MultipleColumnChart, v any) error { c.PlotHeightMode = strOr(v, c.PlotHeightMode); return nil },
		"plot_height_mode", "plot-height-mode")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.PlotHeightFixed = floatOr(v, c.PlotHeightFixed)
		return nil
	},
		"plot_height_fixed", "plot-height-fixed")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.PlotHeightRatio = floatOr(v, c.PlotHeightRatio)
		return nil
	},
		"plot_height_ratio", "plot-height-ratio")
	alias(t, func(c *MultipleColumnChart, v any) error { c.ShowTooltips = boolOr(v, c.ShowTooltips); return nil },
		"show_tooltips", "show-tooltips")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.SyncMultipleTooltips = boolOr(v, c.SyncMultipleTooltips)
		return nil
	},
		"sync_multiple_tooltips", "syncMultipleTooltips")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.TooltipNumberFormat = strOr(v, c.TooltipNumberFormat)
		return nil
	},
		"tooltip_number_format", "tooltip-number-format")
	alias(t, func(c *MultipleColumnChart, v any) error { c.LabelColors = boolOr(v, c.LabelColors); return nil },
		"label_colors", "label-colors")
	alias(t, func(c *MultipleColumnChart, v any) error { c.ShowColorKey = boolOr(v, c.ShowColorKey); return nil },
		"show_color_key", "show-color-key")
	alias(t, func(c *MultipleColumnChart, v any) error { c.LabelMargin = intOr(v, c.LabelMargin); return nil },
		"label_margin", "label-margin")
	alias(t, func(c *MultipleColumnChart, v any) error { c.ShowValueLabels = strOr(v, c.ShowValueLabels); return nil },
		"show_value_labels", "show-value-labels")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.ValueLabelsFormat = strOr(v, c.ValueLabelsFormat)
		return nil
	},
		"value_labels_format", "value-labels-format")
	alias(t, func(c *MultipleColumnChart, v any) error {
		c.ValueLabelsPlacement = strOr(v, c.ValueLabelsPlacement)
		return nil
	},
		"value_labels_placement", "value-labels-placement")
	alias(t, func(c *MultipleColumnChart, v any) error { c.XGridLabelAll = boolOr(v, c.XGridLabelAll); return nil },
		"x_grid_label_all", "x-grid-label-all")
	alias(t, func(c *MultipleColumnChart, v any) error {
		texts, err := DeserializePanelTextAnnotations(v)
		if err != nil {
			return err
		}
		c.TextAnnotations = texts
		return nil
	}, "text_annotations", "text-annotations")
	alias(t, func(c *MultipleColumnChart, v any) error {
		ranges, err := DeserializePanelRangeAnnotations(v)
		if err != nil {
			return err
		}
		c.RangeAnnotations = ranges
		return nil
	}, "range_annotations", "range-annotations")
}
