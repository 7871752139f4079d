package charts

// StackedBarChart models the provider's d3-bars-stacked visualization.
type StackedBarChart struct {
	Chart

	ColorCategory    map[string]string
	ReplaceFlags     string
	ThickBars        bool
	ReverseOrder     bool
	ValueLabelFormat string
	DateLabelFormat  string
	RangeValueLabels string
	ColorByColumn    bool
	GroupByColumn    bool
	ShowColorKey     bool
	ValueLabelMode   string // left or diverging
	StackPercentages bool
	SortBars         bool
	SortBy           string
	BaseColor        any
	BlockLabels      bool
	NegativeColor    *string
	GroupsColumn     string
}

// NewStackedBarChart returns a stacked bar chart with the provider's
// defaults.
func NewStackedBarChart(title string) *StackedBarChart {
	return &StackedBarChart{
		Chart:          newChart(title),
		ReplaceFlags:   FlagsOff,
		ValueLabelMode: "left",
		BaseColor:      0,
	}
}

func (c *StackedBarChart) ChartType() string { return "d3-bars-stacked" }

func (c *StackedBarChart) Validate() error {
	if err := oneOf("replace-flags", c.ReplaceFlags, replaceFlagsStyles...); err != nil {
		return err
	}
	return oneOf("value-label-mode", c.ValueLabelMode, valueLabelModes...)
}

// Serialize emits the wire document. Unlike the other chart types, the
// grouping axes object sits beside metadata at the top level, and only
// when a groups column is set.
func (c *StackedBarChart) Serialize() (Wire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	visualize := Wire{
		"reverse-order":      c.ReverseOrder,
		"color-category":     SerializeColorCategory(c.ColorCategory, nil, nil, nil),
		"range-value-labels": c.RangeValueLabels,
		"show-color-key":     c.ShowColorKey,
		"value-label-format": c.ValueLabelFormat,
		"date-label-format":  c.DateLabelFormat,
		"color-by-column":    c.ColorByColumn,
		"group-by-column":    c.GroupByColumn,
		"thick":              c.ThickBars,
		"replace-flags":      SerializeReplaceFlags(c.ReplaceFlags),
		"value-label-mode":   c.ValueLabelMode,
		"stack-percentages":  c.StackPercentages,
		"sort-bars":          c.SortBars,
		"sort-by":            c.SortBy,
		"base-color":         c.BaseColor,
		"block-labels":       c.BlockLabels,
		"negativeColor":      SerializeNegativeColor(c.NegativeColor),
	}
	doc, err := c.envelope(c.ChartType(), visualize)
	if err != nil {
		return nil, err
	}
	if c.GroupsColumn != "" {
		doc["axes"] = Wire{"groups": c.GroupsColumn}
	}
	return doc, nil
}

// StackedBarChartFromWire rebuilds a stacked bar chart from a metadata
// document, taking the axes object from the top level with metadata.axes
// as fallback.
func StackedBarChartFromWire(doc Wire) (*StackedBarChart, error) {
	c := NewStackedBarChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")
	axes, ok := doc["axes"].(map[string]any)
	if !ok {
		axes = subMap(doc, "metadata", "axes")
	}

	c.ReverseOrder = boolOr(visualize["reverse-order"], false)
	c.ColorCategory = DeserializeColorCategory(visualize["color-category"]).Map
	c.RangeValueLabels = strOr(visualize["range-value-labels"], "")
	c.ShowColorKey = boolOr(visualize["show-color-key"], false)
	c.ValueLabelFormat = strOr(visualize["value-label-format"], "")
	c.DateLabelFormat = strOr(visualize["date-label-format"], "")
	c.ColorByColumn = boolOr(visualize["color-by-column"], false)
	c.GroupByColumn = boolOr(visualize["group-by-column"], false)
	c.ThickBars = boolOr(visualize["thick"], false)
	if v, ok := visualize["replace-flags"]; ok {
		c.ReplaceFlags = DeserializeReplaceFlags(v)
	}
	c.ValueLabelMode = strOr(visualize["value-label-mode"], c.ValueLabelMode)
	c.StackPercentages = boolOr(visualize["stack-percentages"], false)
	c.SortBars = boolOr(visualize["sort-bars"], false)
	c.SortBy = strOr(visualize["sort-by"], "")
	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	c.BlockLabels = boolOr(visualize["block-labels"], false)
	if v, ok := visualize["negativeColor"]; ok {
		c.NegativeColor = DeserializeNegativeColor(v)
	}
	c.GroupsColumn = strOr(axes["groups"], "")
	return c, nil
}

// NewStackedBarChartFromOptions builds a stacked bar chart from a loose
// key-value mapping, warning on unrecognized keys.
func NewStackedBarChartFromOptions(opts map[string]any) (*StackedBarChart, error) {
	c := NewStackedBarChart("")
	if err := applyOptions(c, "StackedBarChart", stackedBarChartOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var stackedBarChartOptions = optionTable[*StackedBarChart]{}

func init() {
	t := stackedBarChartOptions
	alias(t, func(c *StackedBarChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *StackedBarChart, v any) error { c.ReplaceFlags = strOr(v, c.ReplaceFlags); return nil },
		"replace_flags", "replace-flags")
	alias(t, func(c *StackedBarChart, v any) error { c.ThickBars = boolOr(v, c.ThickBars); return nil },
		"thick_bars", "thick-bars", "thick")
	alias(t, func(c *StackedBarChart, v any) error { c.ReverseOrder = boolOr(v, c.ReverseOrder); return nil },
		"reverse_order", "reverse-order")
	alias(t, func(c *StackedBarChart, v any) error { c.ValueLabelFormat = strOr(v, c.ValueLabelFormat); return nil },
		"value_label_format", "value-label-format")
	alias(t, func(c *StackedBarChart, v any) error { c.DateLabelFormat = strOr(v, c.DateLabelFormat); return nil },
		"date_label_format", "date-label-format")
	alias(t, func(c *StackedBarChart, v any) error { c.RangeValueLabels = strOr(v, c.RangeValueLabels); return nil },
		"range_value_labels", "range-value-labels")
	alias(t, func(c *StackedBarChart, v any) error { c.ColorByColumn = boolOr(v, c.ColorByColumn); return nil },
		"color_by_column", "color-by-column")
	alias(t, func(c *StackedBarChart, v any) error { c.GroupByColumn = boolOr(v, c.GroupByColumn); return nil },
		"group_by_column", "group-by-column")
	alias(t, func(c *StackedBarChart, v any) error { c.ShowColorKey = boolOr(v, c.ShowColorKey); return nil },
		"show_color_key", "show-color-key")
	alias(t, func(c *StackedBarChart, v any) error { c.ValueLabelMode = strOr(v, c.ValueLabelMode); return nil },
		"value_label_mode", "value-label-mode")
	alias(t, func(c *StackedBarChart, v any) error { c.StackPercentages = boolOr(v, c.StackPercentages); return nil },
		"stack_percentages", "stack-percentages")
	alias(t, func(c *StackedBarChart, v any) error { c.SortBars = boolOr(v, c.SortBars); return nil },
		"sort_bars", "sort-bars")
	alias(t, func(c *StackedBarChart, v any) error { c.SortBy = strOr(v, c.SortBy); return nil },
		"sort_by", "sort-by")
	alias(t, func(c *StackedBarChart, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	alias(t, func(c *StackedBarChart, v any) error { c.BlockLabels = boolOr(v, c.BlockLabels); return nil },
		"block_labels", "block-labels")
	alias(t, func(c *StackedBarChart, v any) error {
		if v == nil {
			c.NegativeColor = nil
			return nil
		}
		s := strOr(v, "")
		c.NegativeColor = &s
		return nil
	}, "negative_color", "negative-color")
	alias(t, func(c *StackedBarChart, v any) error { c.GroupsColumn = strOr(v, c.GroupsColumn); return nil },
		"groups_column", "groups-column")
}
