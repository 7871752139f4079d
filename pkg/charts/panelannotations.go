package charts

// Panel annotation variants for charts that render one small multiple per
// column. They carry the base annotation plus the panel the annotation
// belongs to; the panel travels inside the wire position object while the
// show-in-all-panels flag stays top-level.

type PanelTextAnnotation struct {
	TextAnnotation
	Plot           string
	ShowInAllPlots bool
}

// NewPanelTextAnnotation places a text annotation on a single panel.
func NewPanelTextAnnotation(text string, x, y any, plot string) *PanelTextAnnotation {
	return &PanelTextAnnotation{TextAnnotation: *NewTextAnnotation(text, x, y), Plot: plot}
}

func (a *PanelTextAnnotation) Serialize() (Wire, error) {
	w, err := a.TextAnnotation.Serialize()
	if err != nil {
		return nil, err
	}
	w["position"].(Wire)["plot"] = a.Plot
	w["showInAllPlots"] = a.ShowInAllPlots
	return w, nil
}

func PanelTextAnnotationFromMap(m map[string]any) (*PanelTextAnnotation, error) {
	out := &PanelTextAnnotation{}
	rest := make(map[string]any, len(m))
	for k, v := range m {
		switch k {
		case "plot":
			out.Plot = strOr(v, "")
		case "showInAllPlots":
			out.ShowInAllPlots = boolOr(v, false)
		case "position":
			if pos, ok := v.(map[string]any); ok {
				if p, ok := pos["plot"]; ok {
					out.Plot = strOr(p, out.Plot)
				}
			}
			rest[k] = v
		default:
			rest[k] = v
		}
	}
	base, err := TextAnnotationFromMap(rest)
	if err != nil {
		return nil, err
	}
	out.TextAnnotation = *base
	return out, nil
}

func DeserializePanelTextAnnotations(v any) ([]*PanelTextAnnotation, error) {
	entries := collectionEntries(v)
	out := make([]*PanelTextAnnotation, 0, len(entries))
	for _, e := range entries {
		if cl, ok := e.value["connectorLine"].(map[string]any); ok {
			if !boolOr(cl["enabled"], false) {
				delete(e.value, "connectorLine")
			}
		}
		a, err := PanelTextAnnotationFromMap(e.value)
		if err != nil {
			return nil, err
		}
		if e.id != "" {
			a.ID = e.id
		}
		out = append(out, a)
	}
	return out, nil
}

type PanelRangeAnnotation struct {
	RangeAnnotation
	Plot           string
	ShowInAllPlots bool
}

// NewPanelRangeAnnotation builds a panel range annotation with the base
// defaults; range annotations show in all panels unless told otherwise.
func NewPanelRangeAnnotation(plot string) *PanelRangeAnnotation {
	return &PanelRangeAnnotation{RangeAnnotation: *NewRangeAnnotation(), Plot: plot, ShowInAllPlots: true}
}

func (a *PanelRangeAnnotation) Serialize() (Wire, error) {
	w, err := a.RangeAnnotation.Serialize()
	if err != nil {
		return nil, err
	}
	w["position"].(Wire)["plot"] = a.Plot
	w["showInAllPlots"] = a.ShowInAllPlots
	return w, nil
}

func PanelRangeAnnotationFromMap(m map[string]any) (*PanelRangeAnnotation, error) {
	out := &PanelRangeAnnotation{ShowInAllPlots: true}
	rest := make(map[string]any, len(m))
	for k, v := range m {
		switch k {
		case "plot":
			out.Plot = strOr(v, "")
		case "showInAllPlots":
			out.ShowInAllPlots = boolOr(v, true)
		case "position":
			if pos, ok := v.(map[string]any); ok {
				if p, ok := pos["plot"]; ok {
					out.Plot = strOr(p, out.Plot)
				}
			}
			rest[k] = v
		default:
			rest[k] = v
		}
	}
	base, err := RangeAnnotationFromMap(rest)
	if err != nil {
		return nil, err
	}
	out.RangeAnnotation = *base
	return out, nil
}

func DeserializePanelRangeAnnotations(v any) ([]*PanelRangeAnnotation, error) {
	entries := collectionEntries(v)
	out := make([]*PanelRangeAnnotation, 0, len(entries))
	for _, e := range entries {
		a, err := PanelRangeAnnotationFromMap(e.value)
		if err != nil {
			return nil, err
		}
		if e.id != "" {
			a.ID = e.id
		}
		out = append(out, a)
	}
	return out, nil
}

func serializePanelTextAnnotations(list []*PanelTextAnnotation) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, a := range list {
		w, err := a.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func serializePanelRangeAnnotations(list []*PanelRangeAnnotation) ([]any, error) {
	out := make([]any, 0, len(list))
	for _, a := range list {
		w, err := a.Serialize()
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
