package charts

import (
	"context"
	"fmt"

	"dwclient/pkg/dwapi"
	"dwclient/pkg/tabular"
)

// ColumnFormat declares the type and number formatting of one data column.
type ColumnFormat struct {
	Column        string
	Type          string // auto, text, number or date
	Ignore        bool
	NumberPrepend string
	NumberAppend  string
}

// NewColumnFormat returns a column format with automatic type detection.
func NewColumnFormat(column string) *ColumnFormat {
	return &ColumnFormat{Column: column, Type: "auto"}
}

func (f *ColumnFormat) Validate() error {
	if f.Column == "" {
		return &ValidationError{Field: "column format column", Value: f.Column, Allowed: "a column name"}
	}
	return oneOf("column format type", f.Type, columnTypes...)
}

func (f *ColumnFormat) wire() Wire {
	return Wire{
		"column":         f.Column,
		"type":           f.Type,
		"ignore":         f.Ignore,
		"number-prepend": f.NumberPrepend,
		"number-append":  f.NumberAppend,
	}
}

// Transform is the metadata.data section: how the provider ingests and
// reshapes the uploaded table.
type Transform struct {
	Transpose         bool
	VerticalHeader    bool
	HorizontalHeader  bool
	ColumnOrder       []int
	ColumnFormat      []*ColumnFormat
	ExternalData      string
	UseDatawrapperCDN bool
	UploadMethod      string
}

// NewTransform returns the provider's default ingest settings.
func NewTransform() *Transform {
	return &Transform{
		VerticalHeader:    true,
		HorizontalHeader:  true,
		UseDatawrapperCDN: true,
		UploadMethod:      "copy",
	}
}

func (t *Transform) Validate() error {
	if err := oneOf("upload method", t.UploadMethod, uploadMethods...); err != nil {
		return err
	}
	for _, f := range t.ColumnFormat {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transform) wire() (Wire, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	formats := make([]any, 0, len(t.ColumnFormat))
	for _, f := range t.ColumnFormat {
		formats = append(formats, f.wire())
	}
	order := make([]any, 0, len(t.ColumnOrder))
	for _, i := range t.ColumnOrder {
		order = append(order, i)
	}
	return Wire{
		"transpose":           t.Transpose,
		"vertical-header":     t.VerticalHeader,
		"horizontal-header":   t.HorizontalHeader,
		"column-order":        order,
		"column-format":       formats,
		"external-data":       t.ExternalData,
		"use-datawrapper-cdn": t.UseDatawrapperCDN,
		"upload-method":       t.UploadMethod,
	}, nil
}

// transformFromWire reads metadata.data. The provider returns column-format
// as a column-keyed mapping; it flattens to a list with the key merged in
// as the column name.
func transformFromWire(data Wire) *Transform {
	t := NewTransform()
	if data == nil {
		return t
	}
	t.Transpose = boolOr(data["transpose"], t.Transpose)
	t.VerticalHeader = boolOr(data["vertical-header"], t.VerticalHeader)
	t.HorizontalHeader = boolOr(data["horizontal-header"], t.HorizontalHeader)
	t.ExternalData = strOr(data["external-data"], t.ExternalData)
	t.UseDatawrapperCDN = boolOr(data["use-datawrapper-cdn"], t.UseDatawrapperCDN)
	t.UploadMethod = strOr(data["upload-method"], t.UploadMethod)
	for _, v := range anySlice(data["column-order"]) {
		t.ColumnOrder = append(t.ColumnOrder, intOr(v, 0))
	}
	appendFormat := func(column string, m map[string]any) {
		f := NewColumnFormat(column)
		f.Type = strOr(m["type"], f.Type)
		f.Ignore = boolOr(m["ignore"], false)
		f.NumberPrepend = strOr(m["number-prepend"], "")
		f.NumberAppend = strOr(m["number-append"], "")
		t.ColumnFormat = append(t.ColumnFormat, f)
	}
	switch cf := data["column-format"].(type) {
	case map[string]any:
		for column, raw := range cf {
			if m, ok := raw.(map[string]any); ok {
				appendFormat(column, m)
			}
		}
	case []any:
		for _, raw := range cf {
			if m, ok := raw.(map[string]any); ok {
				appendFormat(strOr(m["column"], ""), m)
			}
		}
	}
	return t
}

// Chart carries the fields shared by every chart type: the identity and
// description envelope, publish settings and the data table. Concrete
// chart types embed it and contribute the visualize section.
type Chart struct {
	// ID is set after Create and identifies the chart on the provider.
	ID string

	Title           string
	Intro           string
	Notes           string
	SourceName      string
	SourceURL       string
	Byline          string
	AriaDescription string
	HideTitle       bool
	Language        string
	Theme           string

	NumberFormat  string
	NumberDivisor int
	NumberPrepend string
	NumberAppend  string

	AutoDarkMode     bool
	DarkModeInvert   bool
	GetTheData       bool
	DownloadImage    bool
	DownloadPDF      bool
	DownloadSVG      bool
	Embed            bool
	ForceAttribution bool
	ShareButtons     bool
	ShareURL         string
	Logo             bool
	LogoID           string

	Custom map[string]any

	Data      *tabular.Table
	Transform *Transform

	// AccessToken overrides the environment token for this chart's calls.
	AccessToken string

	client *dwapi.Client
}

// newChart returns the shared defaults every chart type starts from.
func newChart(title string) Chart {
	return Chart{
		Title:          title,
		Language:       "en-US",
		NumberFormat:   "-",
		DarkModeInvert: true,
		Custom:         map[string]any{},
		Transform:      NewTransform(),
	}
}

func (c *Chart) base() *Chart { return c }

// SetClient pins the API client used by this chart's lifecycle calls,
// mainly for tests.
func (c *Chart) SetClient(client *dwapi.Client) { c.client = client }

func (c *Chart) apiClient() (*dwapi.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	client, err := dwapi.NewClient(c.AccessToken)
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

// envelope wraps a chart type's visualize section in the full wire
// document. Theme is included only when set.
func (c *Chart) envelope(chartType string, visualize Wire) (Wire, error) {
	dataSection, err := c.transform().wire()
	if err != nil {
		return nil, err
	}
	visualize["dark-mode-invert"] = c.DarkModeInvert
	visualize["sharing"] = Wire{
		"enabled": c.ShareButtons,
		"url":     c.ShareURL,
		"auto":    false,
	}
	doc := Wire{
		"type":     chartType,
		"title":    c.Title,
		"language": c.Language,
		"metadata": Wire{
			"data": dataSection,
			"describe": Wire{
				"intro":            c.Intro,
				"byline":           c.Byline,
				"source-name":      c.SourceName,
				"source-url":       c.SourceURL,
				"aria-description": c.AriaDescription,
				"hide-title":       c.HideTitle,
				"number-format":    c.NumberFormat,
				"number-divisor":   c.NumberDivisor,
				"number-prepend":   c.NumberPrepend,
				"number-append":    c.NumberAppend,
			},
			"visualize": visualize,
			"publish": Wire{
				"autoDarkMode":      c.AutoDarkMode,
				"force-attribution": c.ForceAttribution,
				"blocks": Wire{
					"get-the-data":   c.GetTheData,
					"download-image": c.DownloadImage,
					"download-pdf":   c.DownloadPDF,
					"download-svg":   c.DownloadSVG,
					"embed":          c.Embed,
					"logo": Wire{
						"id":      c.LogoID,
						"enabled": c.Logo,
					},
				},
			},
			"annotate": Wire{
				"notes":  c.Notes,
				"byline": c.Byline,
			},
			"custom": c.customSection(),
		},
	}
	if c.Theme != "" {
		doc["theme"] = c.Theme
	}
	return doc, nil
}

func (c *Chart) transform() *Transform {
	if c.Transform == nil {
		c.Transform = NewTransform()
	}
	return c.Transform
}

func (c *Chart) customSection() map[string]any {
	if c.Custom == nil {
		c.Custom = map[string]any{}
	}
	return c.Custom
}

// baseFromWire fills the shared fields from a chart metadata document.
func baseFromWire(c *Chart, doc Wire) {
	metadata := subMap(doc, "metadata")
	describe := subMap(metadata, "describe")
	annotate := subMap(metadata, "annotate")
	publish := subMap(metadata, "publish")
	blocks := subMap(publish, "blocks")
	logo := subMap(blocks, "logo")
	visualize := subMap(metadata, "visualize")
	sharing := subMap(visualize, "sharing")

	c.Title = strOr(doc["title"], "")
	c.Theme = strOr(doc["theme"], "")
	c.Language = strOr(doc["language"], "en-US")

	c.Intro = strOr(describe["intro"], "")
	c.Byline = strOr(describe["byline"], "")
	c.SourceName = strOr(describe["source-name"], "")
	c.SourceURL = strOr(describe["source-url"], "")
	c.AriaDescription = strOr(describe["aria-description"], "")
	c.HideTitle = boolOr(describe["hide-title"], false)
	c.NumberFormat = strOr(describe["number-format"], "-")
	c.NumberDivisor = intOr(describe["number-divisor"], 0)
	c.NumberPrepend = strOr(describe["number-prepend"], "")
	c.NumberAppend = strOr(describe["number-append"], "")

	c.Notes = strOr(annotate["notes"], "")

	c.AutoDarkMode = boolOr(publish["autoDarkMode"], false)
	c.ForceAttribution = boolOr(publish["force-attribution"], false)
	c.DarkModeInvert = boolOr(visualize["dark-mode-invert"], true)
	c.GetTheData = boolOr(blocks["get-the-data"], false)
	c.DownloadImage = boolOr(blocks["download-image"], false)
	c.DownloadPDF = boolOr(blocks["download-pdf"], false)
	c.DownloadSVG = boolOr(blocks["download-svg"], false)
	c.Embed = boolOr(blocks["embed"], false)
	c.ShareButtons = boolOr(sharing["enabled"], false)
	c.ShareURL = strOr(sharing["url"], "")
	c.Logo = boolOr(logo["enabled"], false)
	c.LogoID = strOr(logo["id"], "")

	c.Custom = strMapAny(metadata["custom"])
	c.Transform = transformFromWire(subMap(metadata, "data"))
}

// Model is any chart type that can serialize itself to the provider's
// wire document.
type Model interface {
	ChartType() string
	Serialize() (Wire, error)
	base() *Chart
}

// Base returns the shared fields of any chart model.
func Base(m Model) *Chart { return m.base() }

// createPayload trims the serialized document to the fields the create
// and update endpoints accept.
func createPayload(w Wire) Wire {
	payload := Wire{
		"title":    w["title"],
		"type":     w["type"],
		"language": w["language"],
		"metadata": w["metadata"],
	}
	if theme := strOr(w["theme"], ""); theme != "" {
		payload["theme"] = theme
	}
	return payload
}

func uploadData(ctx context.Context, client *dwapi.Client, c *Chart) error {
	if c.Data == nil || c.Data.Empty() {
		return nil
	}
	csv, err := c.Data.CSV()
	if err != nil {
		return fmt.Errorf("encode chart data: %w", err)
	}
	return client.PutChartData(ctx, c.ID, csv)
}

// Create registers the chart with the provider, stores the returned id on
// the model and uploads its data table when present.
func Create(ctx context.Context, m Model) (string, error) {
	c := m.base()
	client, err := c.apiClient()
	if err != nil {
		return "", err
	}
	w, err := m.Serialize()
	if err != nil {
		return "", err
	}
	resp, err := client.CreateChart(ctx, createPayload(w))
	if err != nil {
		return "", err
	}
	id := strOr(resp["id"], "")
	if id == "" {
		return "", fmt.Errorf("create chart: response carries no id")
	}
	c.ID = id
	if err := uploadData(ctx, client, c); err != nil {
		return id, fmt.Errorf("chart %s created but data upload failed: %w", id, err)
	}
	return id, nil
}

// Update pushes the chart's current state to the provider and re-uploads
// its data table.
func Update(ctx context.Context, m Model) error {
	c := m.base()
	if c.ID == "" {
		return ErrNotPersisted
	}
	client, err := c.apiClient()
	if err != nil {
		return err
	}
	w, err := m.Serialize()
	if err != nil {
		return err
	}
	if err := client.UpdateChart(ctx, c.ID, createPayload(w)); err != nil {
		return err
	}
	return uploadData(ctx, client, c)
}

// Publish makes the chart publicly viewable and returns its public URL
// when the provider reports one.
func Publish(ctx context.Context, m Model) (string, error) {
	c := m.base()
	if c.ID == "" {
		return "", ErrNotPersisted
	}
	client, err := c.apiClient()
	if err != nil {
		return "", err
	}
	resp, err := client.PublishChart(ctx, c.ID)
	if err != nil {
		return "", err
	}
	if data, ok := resp["data"].(map[string]any); ok {
		return strOr(data["publicUrl"], ""), nil
	}
	return strOr(resp["publicUrl"], ""), nil
}

// Export renders the chart to png, pdf or svg and returns the raw bytes.
func Export(ctx context.Context, m Model, format string, opts dwapi.ExportOptions) ([]byte, error) {
	c := m.base()
	if c.ID == "" {
		return nil, ErrNotPersisted
	}
	client, err := c.apiClient()
	if err != nil {
		return nil, err
	}
	return client.ExportChart(ctx, c.ID, format, opts)
}

// Delete removes the chart from the provider and clears the model's id.
func Delete(ctx context.Context, m Model) error {
	c := m.base()
	if c.ID == "" {
		return ErrNotPersisted
	}
	client, err := c.apiClient()
	if err != nil {
		return err
	}
	if err := client.DeleteChart(ctx, c.ID); err != nil {
		return err
	}
	c.ID = ""
	return nil
}

// Duplicate copies the chart on the provider and returns the copy's id.
// The model keeps pointing at the original.
func Duplicate(ctx context.Context, m Model) (string, error) {
	c := m.base()
	if c.ID == "" {
		return "", ErrNotPersisted
	}
	client, err := c.apiClient()
	if err != nil {
		return "", err
	}
	resp, err := client.CopyChart(ctx, c.ID)
	if err != nil {
		return "", err
	}
	return strOr(resp["id"], ""), nil
}

// Fork forks a forkable chart and returns the fork's id.
func Fork(ctx context.Context, m Model) (string, error) {
	c := m.base()
	if c.ID == "" {
		return "", ErrNotPersisted
	}
	client, err := c.apiClient()
	if err != nil {
		return "", err
	}
	resp, err := client.ForkChart(ctx, c.ID)
	if err != nil {
		return "", err
	}
	return strOr(resp["id"], ""), nil
}
