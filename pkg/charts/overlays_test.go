package charts

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLineSerialize(t *testing.T) {
	l := NewLine("Berlin")
	l.Dash = "style3"
	l.Symbols = NewLineSymbol()
	w, err := l.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if w["interpolation"] != "linear" || w["width"] != "style1" || w["dash"] != "style3" {
		t.Errorf("line defaults wrong: %v", w)
	}
	sym := w["symbols"].(Wire)
	if !boolOr(sym["enabled"], false) || sym["shape"] != "circle" || sym["on"] != "last" {
		t.Errorf("symbols = %v", sym)
	}
	vl := w["valueLabels"].(Wire)
	if boolOr(vl["enabled"], true) {
		t.Errorf("unset valueLabels should collapse to disabled: %v", vl)
	}
}

func TestLineSerializeOmitsDashWhenUnset(t *testing.T) {
	w, err := NewLine("Berlin").Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if _, present := w["dash"]; present {
		t.Errorf("dash should be omitted when not dashing: %v", w)
	}
}

func TestLineRoundTrip(t *testing.T) {
	in := NewLine("Berlin")
	in.Title = "Berlin (city)"
	in.Width = "style2"
	in.DirectLabel = true
	in.ValueLabels = &LineValueLabel{Last: true, MaxInnerLabels: 3}
	w, err := in.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	out, err := LineFromWire("Berlin", map[string]any(w))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLineValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Line)
	}{
		{"missing column", func(l *Line) { l.Column = "" }},
		{"bad interpolation", func(l *Line) { l.Interpolation = "bouncy" }},
		{"bad width", func(l *Line) { l.Width = "thick" }},
		{"bad dash", func(l *Line) { l.Dash = "morse" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLine("x")
			tt.mutate(l)
			var ve *ValidationError
			if err := l.Validate(); !errors.As(err, &ve) {
				t.Errorf("Validate() = %v, want *ValidationError", err)
			}
		})
	}
}

func TestAreaFill(t *testing.T) {
	f := NewAreaFill("low", "high")
	if f.Opacity != 0.3 {
		t.Errorf("default opacity = %v", f.Opacity)
	}
	w, err := f.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if w["from"] != "low" || w["to"] != "high" {
		t.Errorf("serialized fill = %v", w)
	}

	f.Opacity = 1.5
	if err := f.Validate(); err == nil {
		t.Error("opacity above 1 should fail validation")
	}

	fills, err := DeserializeAreaFills(map[string]any{
		"abc123": map[string]any{"from": "a", "to": "b", "opacity": 0.5},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(fills) != 1 || fills[0].From != "a" || fills[0].Opacity != 0.5 {
		t.Errorf("fills = %+v", fills)
	}
}

func TestBarOverlay(t *testing.T) {
	o := NewBarOverlay("Target")
	w, err := o.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if w["from"] != "--zero-baseline--" || w["color"] != "#4682b4" || w["pattern"] != "solid" {
		t.Errorf("overlay defaults wrong: %v", w)
	}

	if _, err := NewBarOverlay("").Serialize(); err == nil {
		t.Error("overlay without a target column should fail")
	}

	o.Pattern = "plaid"
	if err := o.Validate(); err == nil {
		t.Error("unknown pattern should fail validation")
	}
}
