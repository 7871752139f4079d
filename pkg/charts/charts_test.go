package charts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func visualizeOf(t *testing.T, w Wire) Wire {
	t.Helper()
	metadata, ok := w["metadata"].(Wire)
	if !ok {
		t.Fatalf("document has no metadata: %v", w)
	}
	visualize, ok := metadata["visualize"].(Wire)
	if !ok {
		t.Fatalf("metadata has no visualize: %v", metadata)
	}
	return visualize
}

func TestLineChartSerialize(t *testing.T) {
	c := NewLineChart("Temperatures")
	c.Lines = []*Line{NewLine("Berlin"), NewLine("Paris")}
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if w["type"] != "d3-lines" || w["title"] != "Temperatures" || w["language"] != "en-US" {
		t.Errorf("envelope = type %v title %v language %v", w["type"], w["title"], w["language"])
	}
	if _, present := w["theme"]; present {
		t.Error("theme should be omitted when unset")
	}
	v := visualizeOf(t, w)
	if v["x-grid"] != GridOff || v["y-grid"] != GridOn || v["scale-y"] != "linear" {
		t.Errorf("grid defaults wrong: %v", v)
	}
	if diff := cmp.Diff([]any{"", ""}, v["custom-range-x"]); diff != "" {
		t.Errorf("custom-range-x mismatch (-want +got):\n%s", diff)
	}
	lines, ok := v["lines"].(Wire)
	if !ok || len(lines) != 2 {
		t.Fatalf("lines = %v", v["lines"])
	}
	if _, ok := lines["Berlin"]; !ok {
		t.Error("lines should be keyed by column")
	}
}

func TestLineChartRoundTrip(t *testing.T) {
	c := NewLineChart("Temperatures")
	c.Theme = "datawrapper"
	c.CustomTicksY = []any{0, 10, 20}
	c.Lines = []*Line{NewLine("Berlin")}
	c.Lines[0].DirectLabel = true
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	got, err := LineChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Temperatures" || got.Theme != "datawrapper" {
		t.Errorf("envelope lost: %+v", got.Chart)
	}
	if diff := cmp.Diff([]any{0, 10, 20}, got.CustomTicksY); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
	if len(got.Lines) != 1 || got.Lines[0].Column != "Berlin" || !got.Lines[0].DirectLabel {
		t.Errorf("lines = %+v", got.Lines)
	}
}

func TestBarChartAxes(t *testing.T) {
	c := NewBarChart("Population")
	c.BarColumn = "Population"
	c.LabelColumn = "Region"
	c.GroupsColumn = "Continent"
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	axes, ok := w["metadata"].(Wire)["axes"].(Wire)
	if !ok {
		t.Fatal("metadata.axes missing")
	}
	want := Wire{"colors": "Region", "bars": "Population", "labels": "Region", "groups": "Continent"}
	if diff := cmp.Diff(want, axes); diff != "" {
		t.Errorf("axes mismatch (-want +got):\n%s", diff)
	}
	v := visualizeOf(t, w)
	if !boolOr(v["group-by-column"], false) {
		t.Error("group-by-column should follow the groups column")
	}
}

func TestBarChartColorColumnWinsAxesColors(t *testing.T) {
	c := NewBarChart("Population")
	c.BarColumn = "Population"
	c.LabelColumn = "Region"
	c.ColorColumn = "Continent"
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	axes := w["metadata"].(Wire)["axes"].(Wire)
	if axes["colors"] != "Continent" {
		t.Errorf("axes colors = %v, want explicit color column", axes["colors"])
	}
}

func TestBarChartCustomGridLines(t *testing.T) {
	c := NewBarChart("x")
	c.CustomGridLines = []any{0, 50, 100}
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if got := visualizeOf(t, w)["custom-grid-lines"]; got != "0,50,100" {
		t.Errorf("custom-grid-lines = %v, want comma-joined string", got)
	}

	back, err := BarChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{0, 50, 100}, back.CustomGridLines); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnChartSerialize(t *testing.T) {
	c := NewColumnChart("Revenue")
	red := "#cc0000"
	c.NegativeColor = &red
	c.UseMixedColors = true
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	v := visualizeOf(t, w)
	if v["grid-lines"] != true {
		t.Errorf("grid-lines = %v, want true when y-grid is on", v["grid-lines"])
	}
	if _, present := v["custom-range"]; present {
		t.Error("custom-range should be omitted when unset")
	}
	labels, ok := v["yAxisLabels"].(Wire)
	if !ok || labels["placement"] != "outside" || labels["alignment"] != "left" {
		t.Errorf("yAxisLabels = %v", v["yAxisLabels"])
	}
	neg := v["negativeColor"].(Wire)
	if !boolOr(neg["enabled"], false) || neg["value"] != red {
		t.Errorf("negativeColor = %v", neg)
	}
	vl, ok := v["valueLabels"].(Wire)
	if !ok || vl["show"] != LabelsHover || vl["placement"] != "outside" {
		t.Errorf("valueLabels = %v", v["valueLabels"])
	}
}

func TestColumnChartRoundTrip(t *testing.T) {
	c := NewColumnChart("Revenue")
	c.CustomTicks = []any{0, 250, 500}
	c.ShowValueLabels = LabelsAlways
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ColumnChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{0, 250, 500}, got.CustomTicks); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
	if got.ShowValueLabels != LabelsAlways {
		t.Errorf("show-value-labels = %q", got.ShowValueLabels)
	}
}

func TestAreaChartSerialize(t *testing.T) {
	c := NewAreaChart("Rainfall")
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	v := visualizeOf(t, w)
	if v["area-opacity"] != 0.8 || v["sort-areas"] != "keep" {
		t.Errorf("area defaults wrong: %v", v)
	}
	if _, present := v["custom-range-x"]; present {
		t.Error("unset range should be omitted")
	}
	if _, present := v["x-grid-format"]; present {
		t.Error("unset grid format should be omitted")
	}
}

func TestAreaChartDeserializeStringOpacity(t *testing.T) {
	c := NewAreaChart("Rainfall")
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	visualizeOf(t, w)["area-opacity"] = "0.4"
	got, err := AreaChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.AreaOpacity != 0.4 {
		t.Errorf("AreaOpacity = %v", got.AreaOpacity)
	}
}

func TestStackedBarChartTopLevelAxes(t *testing.T) {
	c := NewStackedBarChart("Shares")
	c.GroupsColumn = "Category"
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	axes, ok := w["axes"].(Wire)
	if !ok {
		t.Fatal("axes should sit at the document top level")
	}
	if axes["groups"] != "Category" {
		t.Errorf("axes = %v", axes)
	}
	if _, present := w["metadata"].(Wire)["axes"]; present {
		t.Error("axes should not also appear under metadata")
	}

	got, err := StackedBarChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.GroupsColumn != "Category" {
		t.Errorf("GroupsColumn = %q", got.GroupsColumn)
	}
}

func TestStackedBarChartNoAxesWhenUngrouped(t *testing.T) {
	w, err := NewStackedBarChart("Shares").Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if _, present := w["axes"]; present {
		t.Error("axes should be omitted without a groups column")
	}
}

func TestScatterPlotSerialize(t *testing.T) {
	c := NewScatterPlot("GDP vs Life Expectancy")
	c.XColumn = "GDP"
	c.YColumn = "Life Expectancy"
	c.SizeColumn = "Population"
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	axes := w["metadata"].(Wire)["axes"].(Wire)
	want := Wire{"x": "GDP", "y": "Life Expectancy", "size": "Population"}
	if diff := cmp.Diff(want, axes); diff != "" {
		t.Errorf("axes mismatch (-want +got):\n%s", diff)
	}
	v := visualizeOf(t, w)
	xAxis := v["x-axis"].(Wire)
	if diff := cmp.Diff([]any{"", ""}, xAxis["range"]); diff != "" {
		t.Errorf("x-axis range mismatch (-want +got):\n%s", diff)
	}
	tooltip := v["tooltip"].(Wire)
	if !boolOr(tooltip["enabled"], false) || !boolOr(tooltip["migrated"], false) {
		t.Errorf("tooltip = %v", tooltip)
	}
	if v["size-legend-values-setting"] != "auto" {
		t.Errorf("size-legend-values-setting = %v", v["size-legend-values-setting"])
	}
}

func TestScatterPlotRoundTrip(t *testing.T) {
	c := NewScatterPlot("GDP")
	c.XColumn = "GDP"
	c.YColumn = "LifeExp"
	c.XLog = true
	c.ColorCategory = map[string]string{"Asia": "#ff0000"}
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ScatterPlotFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.XColumn != "GDP" || got.YColumn != "LifeExp" || !got.XLog {
		t.Errorf("round trip lost axis config: %+v", got)
	}
	if diff := cmp.Diff(c.ColorCategory, got.ColorCategory); diff != "" {
		t.Errorf("color category mismatch (-want +got):\n%s", diff)
	}
}

func TestArrowChartAxesOmittedWhenEmpty(t *testing.T) {
	w, err := NewArrowChart("Change").Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if _, present := w["metadata"].(Wire)["axes"]; present {
		t.Error("axes should be omitted when no columns are bound")
	}
	v := visualizeOf(t, w)
	sortRange := v["sort-range"].(Wire)
	if sortRange["by"] != "end" || boolOr(sortRange["enabled"], true) {
		t.Errorf("sort-range = %v", sortRange)
	}
	if v["range-extent"] != "nice" || !boolOr(v["thick-arrows"], false) {
		t.Errorf("arrow defaults wrong: %v", v)
	}
}

func TestArrowChartRoundTrip(t *testing.T) {
	c := NewArrowChart("Change")
	c.StartColumn = "2020"
	c.EndColumn = "2023"
	c.SortRanges = true
	c.SortBy = "difference"
	c.ReplaceFlags = FlagsCircle
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	got, err := ArrowChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if got.StartColumn != "2020" || got.EndColumn != "2023" {
		t.Errorf("axes lost: %+v", got)
	}
	if !got.SortRanges || got.SortBy != "difference" || got.ReplaceFlags != FlagsCircle {
		t.Errorf("fields lost: %+v", got)
	}
}

func TestMultipleColumnChartPanels(t *testing.T) {
	c := NewMultipleColumnChart("Cities")
	c.Panels = []map[string]any{
		{"column": "Berlin", "color": 1},
		{"column": "Paris", "color": 2},
	}
	w, err := c.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	v := visualizeOf(t, w)
	panels, ok := v["panels"].(Wire)
	if !ok || len(panels) != 2 {
		t.Fatalf("panels = %v", v["panels"])
	}
	if _, ok := panels["Berlin"]; !ok {
		t.Error("panels should be keyed by column")
	}
	if v["gridLayout"] != "fixedCount" || v["gridColumnCount"] != 2 {
		t.Errorf("layout defaults wrong: %v", v)
	}
	glx := v["grid-lines-x"].(Wire)
	if boolOr(glx["enabled"], true) || glx["type"] != "" {
		t.Errorf("grid-lines-x = %v", glx)
	}

	got, err := MultipleColumnChartFromWire(w)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Panels) != 2 {
		t.Fatalf("round trip panels = %v", got.Panels)
	}
	columns := map[string]bool{}
	for _, p := range got.Panels {
		columns[strOr(p["column"], "")] = true
	}
	if !columns["Berlin"] || !columns["Paris"] {
		t.Errorf("panel columns lost: %v", got.Panels)
	}
}

func TestChartValidateRejections(t *testing.T) {
	tests := []struct {
		name  string
		build func() Model
	}{
		{"line bad scale", func() Model {
			c := NewLineChart("x")
			c.ScaleY = "sqrt"
			return c
		}},
		{"bar bad tick position", func() Model {
			c := NewBarChart("x")
			c.TickPosition = "middle"
			return c
		}},
		{"column bad placement", func() Model {
			c := NewColumnChart("x")
			c.ValueLabelsPlacement = "above"
			return c
		}},
		{"area opacity out of range", func() Model {
			c := NewAreaChart("x")
			c.AreaOpacity = 1.2
			return c
		}},
		{"stacked bar bad label mode", func() Model {
			c := NewStackedBarChart("x")
			c.ValueLabelMode = "center"
			return c
		}},
		{"scatter bad regression", func() Model {
			c := NewScatterPlot("x")
			c.RegressionMethod = "sinusoidal"
			return c
		}},
		{"arrow bad extent", func() Model {
			c := NewArrowChart("x")
			c.RangeExtent = "wild"
			return c
		}},
		{"multiple column bad layout", func() Model {
			c := NewMultipleColumnChart("x")
			c.GridLayout = "masonry"
			return c
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build().Serialize(); err == nil {
				t.Error("Serialize() should reject the invalid field")
			}
		})
	}
}
