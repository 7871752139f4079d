package charts

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dwclient/pkg/dwapi"
	"dwclient/pkg/tabular"
)

var chartTypeMap = map[string]func(Wire) (Model, error){
	"d3-lines": func(doc Wire) (Model, error) { return LineChartFromWire(doc) },
	"d3-bars":  func(doc Wire) (Model, error) { return BarChartFromWire(doc) },
	"column-chart": func(doc Wire) (Model, error) {
		return ColumnChartFromWire(doc)
	},
	"d3-area": func(doc Wire) (Model, error) { return AreaChartFromWire(doc) },
	"d3-arrow-plot": func(doc Wire) (Model, error) {
		return ArrowChartFromWire(doc)
	},
	"d3-bars-split": func(doc Wire) (Model, error) {
		return MultipleColumnChartFromWire(doc)
	},
	"d3-scatter-plot": func(doc Wire) (Model, error) {
		return ScatterPlotFromWire(doc)
	},
	"d3-bars-stacked": func(doc Wire) (Model, error) {
		return StackedBarChartFromWire(doc)
	},
}

func supportedChartTypes() string {
	types := make([]string, 0, len(chartTypeMap))
	for t := range chartTypeMap {
		types = append(types, t)
	}
	sort.Strings(types)
	return strings.Join(types, ", ")
}

// FromWire rebuilds the matching typed chart from a metadata document,
// dispatching on its type field.
func FromWire(doc Wire) (Model, error) {
	chartType := strOr(doc["type"], "")
	if chartType == "" {
		return nil, fmt.Errorf("chart %s has no type field in metadata", strOr(doc["id"], ""))
	}
	fromWire, ok := chartTypeMap[chartType]
	if !ok {
		return nil, fmt.Errorf("unsupported chart type: %s, supported types: %s",
			chartType, supportedChartTypes())
	}
	return fromWire(doc)
}

// FromID fetches a chart from the provider and returns the matching typed
// model with its data table loaded. A nil client falls back to the
// environment token.
func FromID(ctx context.Context, client *dwapi.Client, id string) (Model, error) {
	if client == nil {
		var err error
		client, err = dwapi.NewClient("")
		if err != nil {
			return nil, err
		}
	}
	doc, err := client.Chart(ctx, id)
	if err != nil {
		return nil, err
	}
	m, err := FromWire(doc)
	if err != nil {
		return nil, err
	}
	c := m.base()
	c.ID = strOr(doc["id"], id)
	c.SetClient(client)
	csv, err := client.ChartData(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("chart %s: fetch data: %w", id, err)
	}
	if strings.TrimSpace(csv) != "" {
		table, err := tabular.Parse(csv)
		if err != nil {
			return nil, fmt.Errorf("chart %s: parse data: %w", id, err)
		}
		c.Data = table
	}
	return m, nil
}
