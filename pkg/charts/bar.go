package charts

import (
	"fmt"
	"strings"
)

// BarChart models the provider's d3-bars visualization.
type BarChart struct {
	Chart

	LabelColumn         string
	LabelAlignment      string
	BlockLabels         bool
	ShowValueLabels     bool
	ValueLabelAlignment string
	ValueLabelFormat    string
	SwapLabels          bool
	ReplaceFlags        string // off, 4x3, 1x1 or circle
	ShowColorKey        bool
	StackColorLegend    bool
	ExcludeFromColorKey []string

	BarColumn       string
	CustomRange     []any
	ForceGrid       bool
	CustomGridLines []any
	TickPosition    string
	AxisLabelFormat string

	BaseColor      any
	ColorColumn    string
	ColorCategory  map[string]string
	CategoryLabels map[string]string
	CategoryOrder  []string
	Rules          bool
	Thick          bool
	Background     bool

	SortBars           bool
	ReverseOrder       bool
	GroupsColumn       string
	ShowGroupLabels    bool
	ShowCategoryLabels bool

	Overlays          []*BarOverlay
	HighlightedSeries []string
	TextAnnotations   []*TextAnnotation
	RangeAnnotations  []*RangeAnnotation
}

// NewBarChart returns a bar chart with the provider's defaults.
func NewBarChart(title string) *BarChart {
	return &BarChart{
		Chart:               newChart(title),
		LabelAlignment:      "left",
		ShowValueLabels:     true,
		ValueLabelAlignment: "left",
		ReplaceFlags:        FlagsOff,
		TickPosition:        "top",
		BaseColor:           0,
		ShowGroupLabels:     true,
		ShowCategoryLabels:  true,
	}
}

func (c *BarChart) ChartType() string { return "d3-bars" }

func (c *BarChart) Validate() error {
	if err := oneOf("label-alignment", c.LabelAlignment, "left", "right"); err != nil {
		return err
	}
	if err := oneOf("value-label-alignment", c.ValueLabelAlignment, valueLabelAligns...); err != nil {
		return err
	}
	if err := oneOf("replace-flags", c.ReplaceFlags, replaceFlagsStyles...); err != nil {
		return err
	}
	if err := oneOf("tick-position", c.TickPosition, "top", "bottom"); err != nil {
		return err
	}
	for _, o := range c.Overlays {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *BarChart) Serialize() (Wire, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	overlays, err := serializeBarOverlays(c.Overlays)
	if err != nil {
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
	gridLines := make([]string, 0, len(c.CustomGridLines))
	for _, t := range c.CustomGridLines {
		gridLines = append(gridLines, fmt.Sprint(t))
	}
	visualize := Wire{
		"label-alignment":       c.LabelAlignment,
		"block-labels":          c.BlockLabels,
		"show-value-labels":     c.ShowValueLabels,
		"value-label-alignment": c.ValueLabelAlignment,
		"value-label-format":    c.ValueLabelFormat,
		"swap-labels":           c.SwapLabels,
		"replace-flags":         SerializeReplaceFlags(c.ReplaceFlags),
		"show-color-key":        c.ShowColorKey,
		"stack-color-legend":    c.StackColorLegend,
		"custom-range":          SerializeRange(c.CustomRange),
		"force-grid":            c.ForceGrid,
		"custom-grid-lines":     strings.Join(gridLines, ","),
		"tick-position":         c.TickPosition,
		"axis-label-format":     c.AxisLabelFormat,
		"base-color":            c.BaseColor,
		"color-category": SerializeColorCategory(
			c.ColorCategory, c.CategoryLabels, c.CategoryOrder, c.ExcludeFromColorKey),
		"color-by-column":      len(c.ColorCategory) > 0,
		"rules":                c.Rules,
		"thick":                c.Thick,
		"background":           c.Background,
		"sort-bars":            c.SortBars,
		"reverse-order":        c.ReverseOrder,
		"group-by-column":      c.GroupsColumn != "",
		"show-group-labels":    c.ShowGroupLabels,
		"show-category-labels": c.ShowCategoryLabels,
		"overlays":             overlays,
		"highlighted-series":   toAnySlice(c.HighlightedSeries),
		"text-annotations":     texts,
		"range-annotations":    ranges,
	}
	doc, err := c.envelope(c.ChartType(), visualize)
	if err != nil {
		return nil, err
	}
	colors := c.ColorColumn
	if colors == "" {
		colors = c.LabelColumn
	}
	axes := Wire{
		"colors": colors,
		"bars":   c.BarColumn,
		"labels": c.LabelColumn,
	}
	if c.GroupsColumn != "" {
		axes["groups"] = c.GroupsColumn
	}
	doc["metadata"].(Wire)["axes"] = axes
	return doc, nil
}

// BarChartFromWire rebuilds a bar chart from a metadata document.
func BarChartFromWire(doc Wire) (*BarChart, error) {
	c := NewBarChart("")
	baseFromWire(&c.Chart, doc)
	visualize := subMap(doc, "metadata", "visualize")
	axes := subMap(doc, "metadata", "axes")

	c.LabelColumn = strOr(axes["labels"], "")
	c.LabelAlignment = strOr(visualize["label-alignment"], c.LabelAlignment)
	c.BlockLabels = boolOr(visualize["block-labels"], false)
	c.ShowValueLabels = boolOr(visualize["show-value-labels"], true)
	c.ValueLabelAlignment = strOr(visualize["value-label-alignment"], c.ValueLabelAlignment)
	c.ValueLabelFormat = strOr(visualize["value-label-format"], "")
	c.SwapLabels = boolOr(visualize["swap-labels"], false)
	if v, ok := visualize["replace-flags"]; ok {
		c.ReplaceFlags = DeserializeReplaceFlags(v)
	}
	c.ShowColorKey = boolOr(visualize["show-color-key"], false)
	c.StackColorLegend = boolOr(visualize["stack-color-legend"], false)

	c.BarColumn = strOr(axes["bars"], "")
	c.CustomRange = DeserializeRange(visualize["custom-range"])
	c.ForceGrid = boolOr(visualize["force-grid"], false)
	if s := strOr(visualize["custom-grid-lines"], ""); s != "" {
		for _, tok := range strings.Split(s, ",") {
			c.CustomGridLines = append(c.CustomGridLines, parseScalar(strings.TrimSpace(tok)))
		}
	}
	c.TickPosition = strOr(visualize["tick-position"], c.TickPosition)
	c.AxisLabelFormat = strOr(visualize["axis-label-format"], "")

	if v, ok := visualize["base-color"]; ok {
		c.BaseColor = v
	}
	c.ColorColumn = strOr(axes["colors"], "")
	colors := DeserializeColorCategory(visualize["color-category"])
	c.ColorCategory = colors.Map
	c.CategoryLabels = colors.CategoryLabels
	c.CategoryOrder = colors.CategoryOrder
	c.ExcludeFromColorKey = colors.ExcludeFromKey
	c.Rules = boolOr(visualize["rules"], false)
	c.Thick = boolOr(visualize["thick"], false)
	c.Background = boolOr(visualize["background"], false)

	c.SortBars = boolOr(visualize["sort-bars"], false)
	c.ReverseOrder = boolOr(visualize["reverse-order"], false)
	c.GroupsColumn = strOr(axes["groups"], "")
	c.ShowGroupLabels = boolOr(visualize["show-group-labels"], true)
	c.ShowCategoryLabels = boolOr(visualize["show-category-labels"], true)

	overlays, err := DeserializeBarOverlays(visualize["overlays"])
	if err != nil {
		return nil, err
	}
	c.Overlays = overlays
	c.HighlightedSeries = strSlice(visualize["highlighted-series"])

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

// NewBarChartFromOptions builds a bar chart from a loose key-value
// mapping, warning on unrecognized keys.
func NewBarChartFromOptions(opts map[string]any) (*BarChart, error) {
	c := NewBarChart("")
	if err := applyOptions(c, "BarChart", barChartOptions, opts); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var barChartOptions = optionTable[*BarChart]{}

func init() {
	t := barChartOptions
	alias(t, func(c *BarChart, v any) error { c.LabelColumn = strOr(v, c.LabelColumn); return nil },
		"label_column", "label-column")
	alias(t, func(c *BarChart, v any) error { c.LabelAlignment = strOr(v, c.LabelAlignment); return nil },
		"label_alignment", "label-alignment")
	alias(t, func(c *BarChart, v any) error { c.BlockLabels = boolOr(v, c.BlockLabels); return nil },
		"block_labels", "block-labels")
	alias(t, func(c *BarChart, v any) error { c.ShowValueLabels = boolOr(v, c.ShowValueLabels); return nil },
		"show_value_labels", "show-value-labels")
	alias(t, func(c *BarChart, v any) error { c.ValueLabelAlignment = strOr(v, c.ValueLabelAlignment); return nil },
		"value_label_alignment", "value-label-alignment")
	alias(t, func(c *BarChart, v any) error { c.ValueLabelFormat = strOr(v, c.ValueLabelFormat); return nil },
		"value_label_format", "value-label-format")
	alias(t, func(c *BarChart, v any) error { c.SwapLabels = boolOr(v, c.SwapLabels); return nil },
		"swap_labels", "swap-labels")
	alias(t, func(c *BarChart, v any) error { c.ReplaceFlags = strOr(v, c.ReplaceFlags); return nil },
		"replace_flags", "replace-flags")
	alias(t, func(c *BarChart, v any) error { c.ShowColorKey = boolOr(v, c.ShowColorKey); return nil },
		"show_color_key", "show-color-key")
	alias(t, func(c *BarChart, v any) error { c.StackColorLegend = boolOr(v, c.StackColorLegend); return nil },
		"stack_color_legend", "stack-color-legend")
	alias(t, func(c *BarChart, v any) error { c.ExcludeFromColorKey = strSlice(v); return nil },
		"exclude_from_color_key", "exclude-from-color-key")
	alias(t, func(c *BarChart, v any) error { c.BarColumn = strOr(v, c.BarColumn); return nil },
		"bar_column", "bar-column")
	alias(t, func(c *BarChart, v any) error { c.CustomRange = anySlice(v); return nil },
		"custom_range", "custom-range")
	alias(t, func(c *BarChart, v any) error { c.ForceGrid = boolOr(v, c.ForceGrid); return nil },
		"force_grid", "force-grid")
	alias(t, func(c *BarChart, v any) error { c.CustomGridLines = anySlice(v); return nil },
		"custom_grid_lines", "custom-grid-lines")
	alias(t, func(c *BarChart, v any) error { c.TickPosition = strOr(v, c.TickPosition); return nil },
		"tick_position", "tick-position")
	alias(t, func(c *BarChart, v any) error { c.AxisLabelFormat = strOr(v, c.AxisLabelFormat); return nil },
		"axis_label_format", "axis-label-format")
	alias(t, func(c *BarChart, v any) error { c.BaseColor = v; return nil }, "base_color", "base-color")
	alias(t, func(c *BarChart, v any) error { c.ColorColumn = strOr(v, c.ColorColumn); return nil },
		"color_column", "color-column")
	alias(t, func(c *BarChart, v any) error { c.ColorCategory = strMap(v); return nil },
		"color_category", "color-category")
	alias(t, func(c *BarChart, v any) error { c.CategoryLabels = strMap(v); return nil },
		"category_labels", "category-labels")
	alias(t, func(c *BarChart, v any) error { c.CategoryOrder = strSlice(v); return nil },
		"category_order", "category-order")
	t["rules"] = func(c *BarChart, v any) error { c.Rules = boolOr(v, c.Rules); return nil }
	t["thick"] = func(c *BarChart, v any) error { c.Thick = boolOr(v, c.Thick); return nil }
	t["background"] = func(c *BarChart, v any) error { c.Background = boolOr(v, c.Background); return nil }
	alias(t, func(c *BarChart, v any) error { c.SortBars = boolOr(v, c.SortBars); return nil },
		"sort_bars", "sort-bars")
	alias(t, func(c *BarChart, v any) error { c.ReverseOrder = boolOr(v, c.ReverseOrder); return nil },
		"reverse_order", "reverse-order")
	alias(t, func(c *BarChart, v any) error { c.GroupsColumn = strOr(v, c.GroupsColumn); return nil },
		"groups_column", "groups-column")
	alias(t, func(c *BarChart, v any) error { c.ShowGroupLabels = boolOr(v, c.ShowGroupLabels); return nil },
		"show_group_labels", "show-group-labels")
	alias(t, func(c *BarChart, v any) error { c.ShowCategoryLabels = boolOr(v, c.ShowCategoryLabels); return nil },
		"show_category_labels", "show-category-labels")
	t["overlays"] = func(c *BarChart, v any) error {
		switch list := v.(type) {
		case []*BarOverlay:
			c.Overlays = list
		default:
			overlays, err := DeserializeBarOverlays(v)
			if err != nil {
				return err
			}
			c.Overlays = overlays
		}
		return nil
	}
	alias(t, func(c *BarChart, v any) error { c.HighlightedSeries = strSlice(v); return nil },
		"highlighted_series", "highlighted-series")
	alias(t, func(c *BarChart, v any) error {
		texts, err := DeserializeTextAnnotations(v)
		if err != nil {
			return err
		}
		c.TextAnnotations = texts
		return nil
	}, "text_annotations", "text-annotations")
	alias(t, func(c *BarChart, v any) error {
		ranges, err := DeserializeRangeAnnotations(v)
		if err != nil {
			return err
		}
		c.RangeAnnotations = ranges
		return nil
	}, "range_annotations", "range-annotations")
}
