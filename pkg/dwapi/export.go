package dwapi

import (
	"net/url"
	"strconv"
)

// ExportOptions are the layout parameters of the chart export endpoint.
// The zero value is usable; unset fields fall back to the API defaults
// applied by query().
type ExportOptions struct {
	Unit        string // px, mm or inch; default px
	Mode        string // rgb or cmyk; default rgb
	Width       int    // default 400
	Height      string // number or "auto"; omitted when empty
	Plain       bool   // visualization only, no header/footer
	Zoom        int    // png size multiplier; default 2
	Scale       int    // pdf size multiplier; default 1
	BorderWidth *int   // margin around the visualization; default 20
	BorderColor string // omitted when empty
	Transparent bool
	Download    bool
	FullVector  bool
	Ligatures   *bool  // default true
	Logo        string // auto, on or off; default auto
	LogoID      string // omitted when empty
	Dark        bool
}

func (o ExportOptions) query() url.Values {
	unit := o.Unit
	if unit == "" {
		unit = "px"
	}
	mode := o.Mode
	if mode == "" {
		mode = "rgb"
	}
	width := o.Width
	if width == 0 {
		width = 400
	}
	zoom := o.Zoom
	if zoom == 0 {
		zoom = 2
	}
	scale := o.Scale
	if scale == 0 {
		scale = 1
	}
	borderWidth := 20
	if o.BorderWidth != nil {
		borderWidth = *o.BorderWidth
	}
	ligatures := true
	if o.Ligatures != nil {
		ligatures = *o.Ligatures
	}
	logo := o.Logo
	if logo == "" {
		logo = "auto"
	}

	q := url.Values{}
	q.Set("unit", unit)
	q.Set("mode", mode)
	q.Set("width", strconv.Itoa(width))
	if o.Height != "" {
		q.Set("height", o.Height)
	}
	q.Set("plain", strconv.FormatBool(o.Plain))
	q.Set("zoom", strconv.Itoa(zoom))
	q.Set("scale", strconv.Itoa(scale))
	q.Set("borderWidth", strconv.Itoa(borderWidth))
	if o.BorderColor != "" {
		q.Set("borderColor", o.BorderColor)
	}
	q.Set("transparent", strconv.FormatBool(o.Transparent))
	q.Set("download", strconv.FormatBool(o.Download))
	q.Set("fullVector", strconv.FormatBool(o.FullVector))
	q.Set("ligatures", strconv.FormatBool(ligatures))
	q.Set("logo", logo)
	if o.LogoID != "" {
		q.Set("logoId", o.LogoID)
	}
	q.Set("dark", strconv.FormatBool(o.Dark))
	return q
}
