package charts

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextAnnotationSerialize(t *testing.T) {
	a := NewTextAnnotation("Peak demand", 2021, 88.5)
	w, err := a.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	if w["text"] != "Peak demand" {
		t.Errorf("text = %v", w["text"])
	}
	if id := strOr(w["id"], ""); len(id) != 8 {
		t.Errorf("id = %q, want 8 characters", id)
	}
	pos, ok := w["position"].(Wire)
	if !ok || pos["x"] != 2021 || pos["y"] != 88.5 {
		t.Errorf("position = %v", w["position"])
	}
	cl, ok := w["connectorLine"].(Wire)
	if !ok {
		t.Fatal("connectorLine missing")
	}
	if boolOr(cl["enabled"], true) {
		t.Errorf("connectorLine without a line should be disabled: %v", cl)
	}
	if _, present := cl["type"]; present {
		t.Errorf("disabled connectorLine should carry no style fields: %v", cl)
	}
}

func TestTextAnnotationSerializeWithConnectorLine(t *testing.T) {
	a := NewTextAnnotation("note", 1, 2)
	a.ConnectorLine = NewConnectorLine()
	w, err := a.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	cl := w["connectorLine"].(Wire)
	if !boolOr(cl["enabled"], false) {
		t.Error("connectorLine should be enabled")
	}
	if cl["type"] != "straight" || cl["arrowHead"] != "lines" {
		t.Errorf("connectorLine defaults wrong: %v", cl)
	}
}

func TestTextAnnotationValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TextAnnotation)
	}{
		{"empty text", func(a *TextAnnotation) { a.Text = "" }},
		{"bad align", func(a *TextAnnotation) { a.Align = "center" }},
		{"width out of range", func(a *TextAnnotation) { a.Width = 150 }},
		{"bad connector circle style", func(a *TextAnnotation) {
			a.ConnectorLine = NewConnectorLine()
			a.ConnectorLine.CircleStyle = "dotted"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewTextAnnotation("x", 0, 0)
			tt.mutate(a)
			var ve *ValidationError
			if err := a.Validate(); !errors.As(err, &ve) {
				t.Errorf("Validate() = %v, want *ValidationError", err)
			}
		})
	}
}

func TestConnectorLineFromMapRejectsDisabled(t *testing.T) {
	_, err := ConnectorLineFromMap(map[string]any{"enabled": false, "type": "straight"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
}

func TestTextAnnotationFromMapRejectsDisabledConnector(t *testing.T) {
	_, err := TextAnnotationFromMap(map[string]any{
		"text":          "hello",
		"x":             0,
		"y":             0,
		"connectorLine": map[string]any{"enabled": false},
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want *ValidationError", err)
	}
}

func TestDeserializeTextAnnotationsMapContainer(t *testing.T) {
	wire := map[string]any{
		"a1b2c3d4": map[string]any{
			"text":          "hello",
			"position":      map[string]any{"x": "2020", "y": 10},
			"bg":            false,
			"connectorLine": map[string]any{"enabled": false},
		},
	}
	got, err := DeserializeTextAnnotations(wire)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d annotations", len(got))
	}
	a := got[0]
	if a.ID != "a1b2c3d4" {
		t.Errorf("ID = %q, want mapping key", a.ID)
	}
	if a.Text != "hello" || a.X != "2020" || a.Outline {
		t.Errorf("fields = %+v", a)
	}
	if a.ConnectorLine != nil {
		t.Error("disabled connectorLine should deserialize to nil")
	}
}

func TestDeserializeTextAnnotationsEmpty(t *testing.T) {
	for _, v := range []any{nil, []any{}, map[string]any{}, "garbage"} {
		got, err := DeserializeTextAnnotations(v)
		if err != nil {
			t.Errorf("DeserializeTextAnnotations(%v) error: %v", v, err)
		}
		if len(got) != 0 {
			t.Errorf("DeserializeTextAnnotations(%v) = %v, want empty", v, got)
		}
	}
}

func TestRangeAnnotationBounds(t *testing.T) {
	tests := []struct {
		name    string
		build   func() *RangeAnnotation
		wantErr bool
	}{
		{"x range with both bounds", func() *RangeAnnotation { return NewXRangeAnnotation(1, 2) }, false},
		{"x range missing x1", func() *RangeAnnotation {
			a := NewRangeAnnotation()
			a.X0 = 1
			return a
		}, true},
		{"x line needs only x0", func() *RangeAnnotation { return NewXLineAnnotation(5) }, false},
		{"y line missing y0", func() *RangeAnnotation {
			a := NewRangeAnnotation()
			a.Type, a.Display = "y", "line"
			return a
		}, true},
		{"y range with both bounds", func() *RangeAnnotation { return NewYRangeAnnotation(0, 10) }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build().Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRangeAnnotationSerializeCompactsPosition(t *testing.T) {
	w, err := NewXLineAnnotation(7).Serialize()
	if err != nil {
		t.Fatal(err)
	}
	want := Wire{"x0": 7}
	if diff := cmp.Diff(want, w["position"]); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestRangeAnnotationRoundTrip(t *testing.T) {
	in := NewYRangeAnnotation(10, 20)
	in.Color = "#ff8800"
	in.Opacity = 25
	w, err := in.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	list, err := DeserializeRangeAnnotations([]any{map[string]any(w)})
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d annotations", len(list))
	}
	out := list[0]
	if out.Type != "y" || out.Y0 != 10 || out.Y1 != 20 || out.Color != "#ff8800" || out.Opacity != 25 {
		t.Errorf("round trip lost fields: %+v", out)
	}
}

func TestPanelAnnotationDefaults(t *testing.T) {
	text := NewPanelTextAnnotation("note", 1, 2, "Berlin")
	if text.ShowInAllPlots {
		t.Error("panel text annotations default to a single plot")
	}
	w, err := text.Serialize()
	if err != nil {
		t.Fatal(err)
	}
	pos := w["position"].(Wire)
	if pos["plot"] != "Berlin" {
		t.Errorf("position = %v", pos)
	}
	if boolOr(w["showInAllPlots"], true) {
		t.Error("showInAllPlots should serialize false by default")
	}

	rng := NewPanelRangeAnnotation("Berlin")
	if !rng.ShowInAllPlots {
		t.Error("panel range annotations default to all plots")
	}
}
