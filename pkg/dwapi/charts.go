package dwapi

import (
	"context"
	"fmt"
)

// Chart fetches a chart's metadata document.
func (c *Client) Chart(ctx context.Context, id string) (map[string]any, error) {
	doc, err := c.GetJSON(ctx, chartsPath+"/"+id)
	if err != nil {
		return nil, fmt.Errorf("fetch chart %s: %w", id, err)
	}
	return doc, nil
}

// ChartData fetches a chart's tabular data as CSV text.
func (c *Client) ChartData(ctx context.Context, id string) (string, error) {
	text, err := c.GetText(ctx, chartsPath+"/"+id+"/data")
	if err != nil {
		return "", fmt.Errorf("fetch chart %s data: %w", id, err)
	}
	return text, nil
}

// CreateChart creates a chart from a wire document and returns the API
// response, which carries the new chart id.
func (c *Client) CreateChart(ctx context.Context, doc map[string]any) (map[string]any, error) {
	resp, err := c.PostJSON(ctx, chartsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("create chart: %w", err)
	}
	return resp, nil
}

// UpdateChart patches an existing chart's metadata.
func (c *Client) UpdateChart(ctx context.Context, id string, doc map[string]any) error {
	if _, err := c.PatchJSON(ctx, chartsPath+"/"+id, doc); err != nil {
		return fmt.Errorf("update chart %s: %w", id, err)
	}
	return nil
}

// PutChartData replaces a chart's data with CSV bytes.
func (c *Client) PutChartData(ctx context.Context, id string, csv []byte) error {
	if err := c.PutRaw(ctx, chartsPath+"/"+id+"/data", csv, "text/csv"); err != nil {
		return fmt.Errorf("upload chart %s data: %w", id, err)
	}
	return nil
}

// PublishChart makes a chart publicly viewable.
func (c *Client) PublishChart(ctx context.Context, id string) (map[string]any, error) {
	resp, err := c.PostJSON(ctx, chartsPath+"/"+id+"/publish", nil)
	if err != nil {
		return nil, fmt.Errorf("publish chart %s: %w", id, err)
	}
	return resp, nil
}

// CopyChart duplicates a chart and returns the copy's metadata.
func (c *Client) CopyChart(ctx context.Context, id string) (map[string]any, error) {
	resp, err := c.PostJSON(ctx, chartsPath+"/"+id+"/copy", nil)
	if err != nil {
		return nil, fmt.Errorf("copy chart %s: %w", id, err)
	}
	return resp, nil
}

// ForkChart forks a forkable chart and returns the fork's metadata.
func (c *Client) ForkChart(ctx context.Context, id string) (map[string]any, error) {
	resp, err := c.PostJSON(ctx, chartsPath+"/"+id+"/fork", nil)
	if err != nil {
		return nil, fmt.Errorf("fork chart %s: %w", id, err)
	}
	return resp, nil
}

// DeleteChart removes a chart.
func (c *Client) DeleteChart(ctx context.Context, id string) error {
	if err := c.Delete(ctx, chartsPath+"/"+id); err != nil {
		return fmt.Errorf("delete chart %s: %w", id, err)
	}
	return nil
}

// ExportChart renders a chart to png, pdf or svg with the given layout
// options and returns the raw image bytes.
func (c *Client) ExportChart(ctx context.Context, id, format string, opts ExportOptions) ([]byte, error) {
	b, err := c.GetBytes(ctx, chartsPath+"/"+id+"/export/"+format+"?"+opts.query().Encode())
	if err != nil {
		return nil, fmt.Errorf("export chart %s as %s: %w", id, format, err)
	}
	return b, nil
}

// Folders lists the folders the token can see.
func (c *Client) Folders(ctx context.Context) (map[string]any, error) {
	resp, err := c.GetJSON(ctx, foldersPath)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return resp, nil
}
