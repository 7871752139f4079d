package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"dwclient/pkg/charts"
	"dwclient/pkg/dwapi"
	"dwclient/pkg/tabular"
)

func main() {
	chartID := flag.String("chart", "", "Existing chart ID to fetch instead of creating a new one")
	chartType := flag.String("type", "d3-lines", "Chart type to create (d3-lines, d3-bars, column-chart, d3-area, d3-arrow-plot, d3-bars-split, d3-scatter-plot, d3-bars-stacked)")
	title := flag.String("title", "Untitled chart", "Chart title")
	csvPath := flag.String("csv", "", "CSV file to upload as the chart's data")
	publish := flag.Bool("publish", false, "Publish the chart after creating or updating it")
	export := flag.String("export", "", "Export format (png, pdf or svg)")
	out := flag.String("out", "chart.png", "Output path for the exported file")
	remove := flag.Bool("delete", false, "Delete the chart instead of updating it (requires -chart)")
	flag.Parse()

	_ = godotenv.Load()

	client, err := dwapi.NewClient(os.Getenv("DATAWRAPPER_ACCESS_TOKEN"))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var chart charts.Model
	if *chartID != "" {
		chart, err = charts.FromID(ctx, client, *chartID)
		if err != nil {
			log.Fatalf("Failed to fetch chart %s: %v", *chartID, err)
		}
		log.Printf("[%s] Fetched %s chart %q", *chartID, chart.ChartType(), charts.Base(chart).Title)

		if *remove {
			if err := charts.Delete(ctx, chart); err != nil {
				log.Fatalf("Failed to delete chart: %v", err)
			}
			log.Printf("[%s] Deleted", *chartID)
			return
		}
	} else {
		chart, err = newChart(*chartType, *title)
		if err != nil {
			log.Fatal(err)
		}
		if *csvPath != "" {
			raw, err := os.ReadFile(*csvPath)
			if err != nil {
				log.Fatalf("Failed to read %s: %v", *csvPath, err)
			}
			table, err := tabular.Parse(string(raw))
			if err != nil {
				log.Fatalf("Failed to parse %s: %v", *csvPath, err)
			}
			charts.Base(chart).Data = table
		}
		charts.Base(chart).SetClient(client)
		id, err := charts.Create(ctx, chart)
		if err != nil {
			log.Fatalf("Failed to create chart: %v", err)
		}
		log.Printf("[%s] Created %s chart", id, chart.ChartType())
	}

	if *publish {
		url, err := charts.Publish(ctx, chart)
		if err != nil {
			log.Fatalf("Failed to publish chart: %v", err)
		}
		log.Printf("[%s] Published: %s", charts.Base(chart).ID, url)
	}

	if *export != "" {
		raw, err := charts.Export(ctx, chart, *export, dwapi.ExportOptions{})
		if err != nil {
			log.Fatalf("Failed to export chart: %v", err)
		}
		if err := os.WriteFile(*out, raw, 0644); err != nil {
			log.Fatalf("Failed to write %s: %v", *out, err)
		}
		log.Printf("[%s] Exported %s to %s", charts.Base(chart).ID, *export, *out)
	}
}

func newChart(chartType, title string) (charts.Model, error) {
	switch chartType {
	case "d3-lines":
		return charts.NewLineChart(title), nil
	case "d3-bars":
		return charts.NewBarChart(title), nil
	case "column-chart":
		return charts.NewColumnChart(title), nil
	case "d3-area":
		return charts.NewAreaChart(title), nil
	case "d3-arrow-plot":
		return charts.NewArrowChart(title), nil
	case "d3-bars-split":
		return charts.NewMultipleColumnChart(title), nil
	case "d3-scatter-plot":
		return charts.NewScatterPlot(title), nil
	case "d3-bars-stacked":
		return charts.NewStackedBarChart(title), nil
	}
	return nil, fmt.Errorf("unsupported chart type: %s", chartType)
}
