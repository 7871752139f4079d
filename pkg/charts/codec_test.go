package charts

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTicksRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		wire    string
		decoded []any
	}{
		{
			name:    "numeric ticks",
			wire:    "0,10,20,30",
			decoded: []any{0, 10, 20, 30},
		},
		{
			name:    "four digit tokens stay strings",
			wire:    "2020,2021,2022",
			decoded: []any{"2020", "2021", "2022"},
		},
		{
			name:    "mixed labels",
			wire:    "low,5,high",
			decoded: []any{"low", 5, "high"},
		},
		{
			name:    "floats survive",
			wire:    "0.5,1.5",
			decoded: []any{0.5, 1.5},
		},
		{
			name:    "empty",
			wire:    "",
			decoded: []any{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeserializeTicks(tt.wire)
			if diff := cmp.Diff(tt.decoded, got); diff != "" {
				t.Errorf("DeserializeTicks(%q) mismatch (-want +got):\n%s", tt.wire, diff)
			}
			if back := SerializeTicks(got); back != tt.wire {
				t.Errorf("SerializeTicks(%v) = %q, want %q", got, back, tt.wire)
			}
		})
	}
}

func TestDeserializeTicksTrimsWhitespace(t *testing.T) {
	got := DeserializeTicks(" 1 , 2 ,three ")
	want := []any{1, 2, "three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDeserializeRange(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []any
	}{
		{"nil input", nil, []any{"", ""}},
		{"numeric strings parsed", []any{"0", "100"}, []any{0, 100}},
		{"empty bounds kept", []any{"", "50"}, []any{"", 50}},
		{"nil element becomes empty", []any{nil, 10}, []any{"", 10}},
		{"single element padded", []any{5}, []any{5, ""}},
		{"extra elements dropped", []any{1, 2, 3}, []any{1, 2}},
		{"malformed scalar", "oops", []any{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeserializeRange(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DeserializeRange(%v) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestSerializeRangeNormalizesToPair(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{"nil", nil, []any{"", ""}},
		{"pair", []any{0, 100}, []any{0, 100}},
		{"short", []any{5}, []any{"", ""}},
		{"long", []any{1, 2, 3}, []any{"", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SerializeRange(tt.in)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNegativeColor(t *testing.T) {
	red := "#ff0000"
	if got := SerializeNegativeColor(&red); !boolOr(got["enabled"], false) || got["value"] != red {
		t.Errorf("SerializeNegativeColor(&%q) = %v", red, got)
	}
	if got := SerializeNegativeColor(nil); boolOr(got["enabled"], true) || got["value"] != "" {
		t.Errorf("SerializeNegativeColor(nil) = %v", got)
	}

	tests := []struct {
		name string
		in   any
		want *string
	}{
		{"enabled", map[string]any{"enabled": true, "value": "#ff0000"}, &red},
		{"disabled", map[string]any{"enabled": false, "value": "#ff0000"}, nil},
		{"malformed", "nope", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeserializeNegativeColor(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReplaceFlags(t *testing.T) {
	if got := SerializeReplaceFlags(FlagsOff); boolOr(got["enabled"], true) || got["style"] != "" {
		t.Errorf("SerializeReplaceFlags(off) = %v", got)
	}
	if got := SerializeReplaceFlags(Flags4x3); !boolOr(got["enabled"], false) || got["style"] != Flags4x3 {
		t.Errorf("SerializeReplaceFlags(4x3) = %v", got)
	}

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"enabled with style", map[string]any{"enabled": true, "style": "1x1"}, "1x1"},
		{"disabled", map[string]any{"enabled": false, "style": "1x1"}, FlagsOff},
		{"enabled without style", map[string]any{"enabled": true, "style": ""}, FlagsOff},
		{"malformed", 42, FlagsOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeserializeReplaceFlags(tt.in); got != tt.want {
				t.Errorf("DeserializeReplaceFlags(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorCategory(t *testing.T) {
	wire := SerializeColorCategory(
		map[string]string{"Berlin": "#ff0000"},
		map[string]string{"Berlin": "BER"},
		[]string{"Berlin"},
		[]string{},
	)
	if _, ok := wire["map"]; !ok {
		t.Fatal("serialized color-category is missing map")
	}
	if _, ok := wire["excludeFromKey"]; !ok {
		t.Error("explicit empty excludeFromKey should be emitted")
	}

	minimal := SerializeColorCategory(nil, nil, nil, nil)
	if diff := cmp.Diff(Wire{"map": map[string]string{}}, minimal); diff != "" {
		t.Errorf("minimal color-category mismatch (-want +got):\n%s", diff)
	}

	got := DeserializeColorCategory(map[string]any{
		"map":            map[string]any{"Berlin": "#ff0000"},
		"categoryLabels": map[string]any{"Berlin": "BER"},
		"categoryOrder":  []any{"Berlin"},
	})
	want := ColorCategory{
		Map:            map[string]string{"Berlin": "#ff0000"},
		CategoryLabels: map[string]string{"Berlin": "BER"},
		CategoryOrder:  []string{"Berlin"},
		ExcludeFromKey: []string{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeserializeColorCategory mismatch (-want +got):\n%s", diff)
	}

	empty := DeserializeColorCategory(nil)
	if len(empty.Map) != 0 || empty.CategoryOrder == nil {
		t.Errorf("DeserializeColorCategory(nil) = %+v, want empty containers", empty)
	}
}

func TestPlotHeight(t *testing.T) {
	wire := SerializePlotHeight(PlotHeightRatio, 300, 0.75)
	want := Wire{
		"plotHeightMode":  PlotHeightRatio,
		"plotHeightFixed": 300.0,
		"plotHeightRatio": 0.75,
	}
	if diff := cmp.Diff(want, wire); diff != "" {
		t.Errorf("SerializePlotHeight mismatch (-want +got):\n%s", diff)
	}

	mode, fixed, ratio := PlotHeightFixed, 300.0, 0.5
	DeserializePlotHeight(Wire{"plotHeightMode": PlotHeightRatio, "plotHeightRatio": 0.75}, &mode, &fixed, &ratio)
	if mode != PlotHeightRatio || ratio != 0.75 {
		t.Errorf("got mode=%q ratio=%v", mode, ratio)
	}
	if fixed != 300 {
		t.Errorf("absent key clobbered fixed: %v", fixed)
	}
}
