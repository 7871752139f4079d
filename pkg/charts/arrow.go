package charts

// ArrowChart models the provider's d3-arrow-plot visualization. Start,
// end, color and label column bindings live under metadata.axes, which
// is emitted only when at least one binding is set.
type ArrowChart struct {
	Chart

	BaseColor     any
	ColorCategory map[string]string
	ThickArrows   bool
	YGrid         string
	ReplaceFlags  string

	SortRanges   bool
	SortBy       string // end, start, difference or change
	ReverseOrder bool

	ValueLabelFormat string
	RangeValueLabels string

	CustomRange []any
	RangeExtent string // nice, custom or data

	StartColumn string
	EndColumn   string
	ColorColumn string
	LabelColumn string

	ArrowKey      bool
	GroupByColumn bool
}

// NewArrowChart returns an arrow chart with the provider's defaults.
func NewArrowChart(title string) *ArrowChart {
	return &ArrowChart{
		Chart:        newChart(title),
		BaseColor:    0,
		ThickArrows:  true,
		YGrid:        GridOn,
		ReplaceFlags: FlagsOff,
		SortBy:       "end",
		CustomRange:  []any{"", ""},
		RangeExtent:  "nice",
	}
}

func (c *ArrowChart) ChartType() string { return "d3-arrow-plot" }

func (c *ArrowChart) Validate() error {
	if err := oneOf("replace-flags", c.ReplaceFlags, replaceFlagsStyles...); err != nil {
		return err
	}
	if err := oneOf("sort-by", c.SortBy, "end", "start", "difference", "change"); err != nil {
		return err
	}
	return oneOf("range-extent", c.RangeExtent, "nice", "custom", "data")
}

func (c *ArrowChart) Serialize() (Wire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	visualize := Wire{
		"y-grid":             c.YGrid,
		"reverse-order":      c.ReverseOrder,
		"thick-arrows":       c.ThickArrows,
		"base-color":         c.BaseColor,
		"color-category":     SerializeColorCategory(c.ColorCategory, nil, nil, nil),
		"range-value-labels": c.RangeValueLabels,
		"sort-range": Wire{
			"by":      c.SortBy,
			"enabled": c.SortRanges,
		},
		"custom-range":       SerializeRange(c.CustomRange),
		"range-extent":       c.RangeExtent,
		"value-label-format": c.ValueLabelFormat,
		"color-by-column":    len(c.ColorCategory) > 0,
		"group-by-column":    c.GroupByColumn,
		"replace-flags":      SerializeReplaceFlags(c.ReplaceFlags),
		"show-arrow-key":     c.ArrowKey,
	}
	doc, err := c.envelope(c.ChartType(), visualize)
	if err != nil {
		return nil, err
	}
	axes := Wire{}
	if c.StartColumn != "" {
		axes["start"] = c.StartColumn
	}
	if c.EndColumn != "" {
		axes["end"] = c.EndColumn
	}
	if c.ColorColumn != "" {
		axes["colors"] = c.ColorColumn
	}
	if c.LabelColumn != "" {
		axes["labels"] = c.LabelColumn
	}
	if len(axes) > 0 {
		doc["metadata"].(Wire)["axes"] = axes
	}
	return doc, nil
}

// ArrowChartFromWire rebuilds an arrow chart from a metadata document.
func ArrowChartFromWire(doc Wire) (*ArrowChart, error) {
	c := NewArrowChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")
	axes := subMap(doc, "metadata", "axes")

	c.YGrid = strOr(visualize["y-grid"], c.YGrid)
	c.ReverseOrder = boolOr(visualize["reverse-order"], c.ReverseOrder)
	c.ThickArrows = boolOr(visualize["thick-arrows"], c.ThickArrows)
	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	c.ColorCategory = DeserializeColorCategory(visualize["color-category"]).Map
	c.RangeValueLabels = strOr(visualize["range-value-labels"], c.RangeValueLabels)
	c.ValueLabelFormat = strOr(visualize["value-label-format"], c.ValueLabelFormat)

	if sort, ok := visualize["sort-range"].(map[string]any); ok {
		c.SortBy = strOr(sort["by"], "end")
		c.SortRanges = boolOr(sort["enabled"], false)
	}

	if v, ok := visualize["replace-flags"]; ok {
		c.ReplaceFlags = DeserializeReplaceFlags(v)
	}
	c.CustomRange = DeserializeRange(visualize["custom-range"])
	c.RangeExtent = strOr(visualize["range-extent"], c.RangeExtent)

	c.StartColumn = strOr(axes["start"], "")
	c.EndColumn = strOr(axes["end"], "")
	c.ColorColumn = strOr(axes["colors"], "")
	c.LabelColumn = strOr(axes["labels"], "")

	c.GroupByColumn = boolOr(visualize["group-by-column"], c.GroupByColumn)
	c.ArrowKey = boolOr(visualize["show-arrow-key"], c.ArrowKey)
	return c, nil
}

// NewArrowChartFromOptions builds an arrow chart from a loose key-value
// mapping, warning on unrecognized keys.
func NewArrowChartFromOptions(opts map[string]any) (*ArrowChart, error) {
	c := NewArrowChart("")
	if err := applyOptions(c, "ArrowChart", arrowChartOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var arrowChartOptions = optionTable[*ArrowChart]{}

func init() {
	t := arrowChartOptions
	alias(t, func(c *ArrowChart, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	alias(t, func(c *ArrowChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *ArrowChart, v any) error { c.ThickArrows = boolOr(v, c.ThickArrows); return nil },
		"thick_arrows", "thick-arrows")
	alias(t, func(c *ArrowChart, v any) error { c.YGrid = strOr(v, c.YGrid); return nil }, "y_grid", "y-grid")
	alias(t, func(c *ArrowChart, v any) error { c.ReplaceFlags = strOr(v, c.ReplaceFlags); return nil },
		"replace_flags", "replace-flags")
	alias(t, func(c *ArrowChart, v any) error { c.SortRanges = boolOr(v, c.SortRanges); return nil },
		"sort_ranges", "sort-ranges")
	alias(t, func(c *ArrowChart, v any) error { c.SortBy = strOr(v, c.SortBy); return nil }, "sort_by", "sort-by")
	alias(t, func(c *ArrowChart, v any) error { c.ReverseOrder = boolOr(v, c.ReverseOrder); return nil },
		"reverse_order", "reverse-order")
	alias(t, func(c *ArrowChart, v any) error { c.ValueLabelFormat = strOr(v, c.ValueLabelFormat); return nil },
		"value_label_format", "value-label-format")
	alias(t, func(c *ArrowChart, v any) error { c.RangeValueLabels = strOr(v, c.RangeValueLabels); return nil },
		"range_value_labels", "range-value-labels")
	alias(t, func(c *ArrowChart, v any) error { c.CustomRange = anySlice(v); return nil },
		"custom_range", "custom-range")
	alias(t, func(c *ArrowChart, v any) error { c.RangeExtent = strOr(v, c.RangeExtent); return nil },
		"range_extent", "range-extent")
	alias(t, func(c *ArrowChart, v any) error { c.StartColumn = strOr(v, c.StartColumn); return nil },
		"start_column", "start-column")
	alias(t, func(c *ArrowChart, v any) error { c.EndColumn = strOr(v, c.EndColumn); return nil },
		"end_column", "end-column")
	alias(t, func(c *ArrowChart, v any) error { c.ColorColumn = strOr(v, c.ColorColumn); return nil },
		"color_column", "color-column")
	alias(t, func(c *ArrowChart, v any) error { c.LabelColumn = strOr(v, c.LabelColumn); return nil },
		"label_column", "label-column")
	alias(t, func(c *ArrowChart, v any) error { c.ArrowKey = boolOr(v, c.ArrowKey); return nil },
		"arrow_key", "arrow-key", "show-arrow-key")
	alias(t, func(c *ArrowChart, v any) error { c.GroupByColumn = boolOr(v, c.GroupByColumn); return nil },
		"group_by_column", "group-by-column")
}
