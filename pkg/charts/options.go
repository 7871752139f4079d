package charts

import (
	"dwclient/pkg/tabular"
)

// optionTable is the static registry of construction keys a model type
// accepts. Fields whose wire alias differs from their snake_case name are
// registered under both spellings. Tables are package-level so the
// accepted-key set is built once, not per call.
type optionTable[M any] map[string]func(m M, v any) error

// applyOptions sets recognized keys through the type's table, falling back
// to the shared base table, and warns once naming every key neither table
// recognizes.
func applyOptions[M Model](m M, name string, table optionTable[M], opts map[string]any) error {
	var unknown []string
	for k, v := range opts {
		if set, ok := table[k]; ok {
			if err := set(m, v); err != nil {
				return err
			}
			continue
		}
		if set, ok := baseOptions[k]; ok {
			if err := set(m.base(), v); err != nil {
				return err
			}
			continue
		}
		unknown = append(unknown, k)
	}
	warnUnknownKeys(name, unknown)
	return nil
}

// alias registers one setter under multiple spellings.
func alias[M any](table optionTable[M], set func(m M, v any) error, names ...string) {
	for _, n := range names {
		table[n] = set
	}
}

var baseOptions = optionTable[*Chart]{}

func init() {
	t := baseOptions
	t["title"] = func(c *Chart, v any) error { c.Title = strOr(v, c.Title); return nil }
	t["intro"] = func(c *Chart, v any) error { c.Intro = strOr(v, c.Intro); return nil }
	t["notes"] = func(c *Chart, v any) error { c.Notes = strOr(v, c.Notes); return nil }
	t["byline"] = func(c *Chart, v any) error { c.Byline = strOr(v, c.Byline); return nil }
	t["language"] = func(c *Chart, v any) error { c.Language = strOr(v, c.Language); return nil }
	t["theme"] = func(c *Chart, v any) error { c.Theme = strOr(v, c.Theme); return nil }
	t["embed"] = func(c *Chart, v any) error { c.Embed = boolOr(v, c.Embed); return nil }
	t["logo"] = func(c *Chart, v any) error { c.Logo = boolOr(v, c.Logo); return nil }
	alias(t, func(c *Chart, v any) error { c.SourceName = strOr(v, c.SourceName); return nil },
		"source_name", "source-name")
	alias(t, func(c *Chart, v any) error { c.SourceURL = strOr(v, c.SourceURL); return nil },
		"source_url", "source-url")
	alias(t, func(c *Chart, v any) error { c.AriaDescription = strOr(v, c.AriaDescription); return nil },
		"aria_description", "aria-description")
	alias(t, func(c *Chart, v any) error { c.HideTitle = boolOr(v, c.HideTitle); return nil },
		"hide_title", "hide-title")
	alias(t, func(c *Chart, v any) error { c.NumberFormat = strOr(v, c.NumberFormat); return nil },
		"number_format", "number-format")
	alias(t, func(c *Chart, v any) error { c.NumberDivisor = intOr(v, c.NumberDivisor); return nil },
		"number_divisor", "number-divisor")
	alias(t, func(c *Chart, v any) error { c.NumberPrepend = strOr(v, c.NumberPrepend); return nil },
		"number_prepend", "number-prepend")
	alias(t, func(c *Chart, v any) error { c.NumberAppend = strOr(v, c.NumberAppend); return nil },
		"number_append", "number-append")
	alias(t, func(c *Chart, v any) error { c.AutoDarkMode = boolOr(v, c.AutoDarkMode); return nil },
		"auto_dark_mode", "autoDarkMode")
	alias(t, func(c *Chart, v any) error { c.DarkModeInvert = boolOr(v, c.DarkModeInvert); return nil },
		"dark_mode_invert", "dark-mode-invert")
	alias(t, func(c *Chart, v any) error { c.GetTheData = boolOr(v, c.GetTheData); return nil },
		"get_the_data", "get-the-data")
	alias(t, func(c *Chart, v any) error { c.DownloadImage = boolOr(v, c.DownloadImage); return nil },
		"download_image", "download-image")
	alias(t, func(c *Chart, v any) error { c.DownloadPDF = boolOr(v, c.DownloadPDF); return nil },
		"download_pdf", "download-pdf")
	alias(t, func(c *Chart, v any) error { c.DownloadSVG = boolOr(v, c.DownloadSVG); return nil },
		"download_svg", "download-svg")
	alias(t, func(c *Chart, v any) error { c.ForceAttribution = boolOr(v, c.ForceAttribution); return nil },
		"force_attribution", "force-attribution")
	alias(t, func(c *Chart, v any) error { c.ShareButtons = boolOr(v, c.ShareButtons); return nil },
		"share_buttons", "share-buttons")
	alias(t, func(c *Chart, v any) error { c.ShareURL = strOr(v, c.ShareURL); return nil },
		"share_url", "share-url")
	alias(t, func(c *Chart, v any) error { c.LogoID = strOr(v, c.LogoID); return nil },
		"logo_id", "logo-id")
	t["custom"] = func(c *Chart, v any) error { c.Custom = strMapAny(v); return nil }
	t["data"] = func(c *Chart, v any) error {
		switch d := v.(type) {
		case *tabular.Table:
			c.Data = d
		case []map[string]any:
			c.Data = tabular.FromRecords(d)
		default:
			return &ValidationError{Field: "data", Value: v, Allowed: "a *tabular.Table or a list of records"}
		}
		return nil
	}
	alias(t, func(c *Chart, v any) error {
		switch tr := v.(type) {
		case *Transform:
			c.Transform = tr
		case map[string]any:
			c.Transform = transformFromWire(tr)
		default:
			return &ValidationError{Field: "transformations", Value: v, Allowed: "a *Transform or mapping"}
		}
		return nil
	}, "transformations", "transform")
	alias(t, func(c *Chart, v any) error { c.AccessToken = strOr(v, c.AccessToken); return nil },
		"access_token", "access-token")
}
