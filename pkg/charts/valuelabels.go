package charts

// The value label settings have three wire layouts depending on the chart
// family: bar charts use flat show-value-labels / value-label-format /
// value-label-alignment keys, column charts nest a valueLabels object plus
// value-labels-always, and the remaining types carry only a format key.

func serializeColumnValueLabels(show, format, placement string) Wire {
	if placement == "" {
		placement = "outside"
	}
	out := Wire{
		"valueLabels": Wire{
			"show":      offToEmpty(show),
			"format":    format,
			"enabled":   show != LabelsOff,
			"placement": placement,
		},
	}
	if format != "" {
		out["value-label-format"] = format
	}
	if show == LabelsAlways {
		out["value-labels-always"] = true
	}
	return out
}

func offToEmpty(show string) string {
	if show == LabelsOff {
		return ""
	}
	return show
}

// deserializeColumnValueLabels reads the nested valueLabels object back to
// the flat model fields. A missing show key falls back to the legacy
// value-labels-always flag.
func deserializeColumnValueLabels(visualize Wire) (show, format, placement string, ok bool) {
	show, format, placement = LabelsHover, "", "outside"
	obj, isMap := visualize["valueLabels"].(map[string]any)
	if !isMap {
		if _, present := visualize["value-labels-always"]; !present {
			return show, format, placement, false
		}
		if boolOr(visualize["value-labels-always"], false) {
			show = LabelsAlways
		}
		return show, format, placement, true
	}
	if !boolOr(obj["enabled"], true) {
		show = LabelsOff
	} else if raw, present := obj["show"]; present {
		switch strOr(raw, "") {
		case LabelsAlways:
			show = LabelsAlways
		case LabelsHover:
			show = LabelsHover
		default:
			show = LabelsOff
		}
	} else if boolOr(visualize["value-labels-always"], false) {
		show = LabelsAlways
	}
	format = strOr(obj["format"], "")
	placement = strOr(obj["placement"], "outside")
	return show, format, placement, true
}
