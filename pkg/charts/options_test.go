package charts

import (
	"strings"
	"testing"
)

func captureWarnings(t *testing.T) *[]string {
	t.Helper()
	var got []string
	orig := warnf
	warnf = func(format string, args ...any) {
		got = append(got, format)
		for _, a := range args {
			if s, ok := a.(string); ok {
				got = append(got, s)
			}
		}
	}
	t.Cleanup(func() { warnf = orig })
	return &got
}

func TestOptionsApplyBothSpellings(t *testing.T) {
	snake, err := NewLineChartFromOptions(map[string]any{
		"title":        "Snake",
		"x_grid":       GridTicks,
		"scale_y":      "log",
		"label_margin": 12,
	})
	if err != nil {
		t.Fatal(err)
	}
	kebab, err := NewLineChartFromOptions(map[string]any{
		"title":        "Kebab",
		"x-grid":       GridTicks,
		"scale-y":      "log",
		"label-margin": 12,
	})
	if err != nil {
		t.Fatal(err)
	}
	if snake.XGrid != kebab.XGrid || snake.ScaleY != kebab.ScaleY || snake.LabelMargin != kebab.LabelMargin {
		t.Errorf("spellings diverge: %+v vs %+v", snake, kebab)
	}
	if snake.XGrid != GridTicks || snake.ScaleY != "log" || snake.LabelMargin != 12 {
		t.Errorf("options not applied: %+v", snake)
	}
}

func TestOptionsFallBackToBaseTable(t *testing.T) {
	c, err := NewBarChartFromOptions(map[string]any{
		"title":       "Population",
		"source_name": "Census Bureau",
		"hide-title":  true,
		"bar_column":  "Population",
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.SourceName != "Census Bureau" || !c.HideTitle || c.BarColumn != "Population" {
		t.Errorf("base options not applied: %+v", c.Chart)
	}
}

func TestOptionsWarnOnUnknownKeys(t *testing.T) {
	warnings := captureWarnings(t)
	c, err := NewLineChartFromOptions(map[string]any{
		"title":       "x",
		"flux":        1,
		"capacitance": 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	if c.Title != "x" {
		t.Errorf("known keys should still apply: %+v", c)
	}
	joined := strings.Join(*warnings, " ")
	if !strings.Contains(joined, "capacitance, flux") {
		t.Errorf("warning should name unknown keys sorted, got %q", joined)
	}
}

func TestOptionsRejectInvalidValues(t *testing.T) {
	if _, err := NewLineChartFromOptions(map[string]any{"scale_y": "sqrt"}); err == nil {
		t.Error("invalid enum value should fail construction")
	}
	if _, err := NewLineChartFromOptions(map[string]any{"data": 42}); err == nil {
		t.Error("bad data type should fail construction")
	}
}

func TestOptionsValidKeysNeverWarn(t *testing.T) {
	warnings := captureWarnings(t)
	if _, err := NewScatterPlotFromOptions(map[string]any{
		"x_column": "GDP",
		"y-column": "LifeExp",
		"opacity":  0.5,
	}); err != nil {
		t.Fatal(err)
	}
	if len(*warnings) != 0 {
		t.Errorf("unexpected warnings: %v", *warnings)
	}
}
