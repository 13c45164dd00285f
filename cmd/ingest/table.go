package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

// runsPage is a page of the ingestion run log
type runsPage struct {
	Runs  []schema.IngestionRun `json:"runs"`
	Total int64                 `json:"total"`
}

func newTableWriter() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	return tw
}

// renderRunResult renders the outcome of one run with its counters and errors
func renderRunResult(v any) string {
	result := v.(*domain.RunResult)

	tw := newTableWriter()
	tw.SetTitle(fmt.Sprintf("%s run %s: %s", result.Stage, result.RunID, result.Status))
	tw.AppendHeader(table.Row{"Counter", "Value"})
	for _, row := range statsRows(result.Stats) {
		tw.AppendRow(table.Row{row.name, row.value})
	}
	tw.AppendFooter(table.Row{"Duration", result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond).String()})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	var b strings.Builder
	b.WriteString(tw.Render())

	if result.Error != "" {
		b.WriteString("\nerror: ")
		b.WriteString(result.Error)
	}
	if len(result.Stats.Errors) > 0 {
		b.WriteString(fmt.Sprintf("\n%d non-fatal errors:", len(result.Stats.Errors)))
		for _, e := range result.Stats.Errors {
			b.WriteString("\n  - ")
			b.WriteString(e)
		}
	}
	return b.String()
}

type statsRow struct {
	name  string
	value int
}

func statsRows(stats domain.Stats) []statsRow {
	return []statsRow{
		{"Makes processed", stats.MakesProcessed},
		{"Models processed", stats.ModelsProcessed},
		{"Trims processed", stats.TrimsProcessed},
		{"MPG enriched", stats.MPGEnriched},
		{"Listings fetched", stats.ListingsFetched},
		{"Listings linked", stats.ListingsLinked},
		{"Listings unlinked", stats.ListingsUnlinked},
		{"Trims priced", stats.TrimsPriced},
		{"Errors", len(stats.Errors)},
	}
}

// renderRuns renders the run log, newest first
func renderRuns(v any) string {
	page := v.(runsPage)

	tw := newTableWriter()
	tw.AppendHeader(table.Row{"Run", "Stage", "Status", "Started", "Duration", "Error"})
	for _, run := range page.Runs {
		duration := "-"
		if run.FinishedAt != nil {
			duration = run.FinishedAt.Sub(run.StartedAt).Round(time.Second).String()
		}
		errMsg := ""
		if run.ErrorMessage != nil {
			errMsg = text.Trim(*run.ErrorMessage, 60)
		}
		tw.AppendRow(table.Row{run.ID, run.Stage, string(run.Status), run.StartedAt.Format("2006-01-02 15:04:05"), duration, errMsg})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "Total", strconv.FormatInt(page.Total, 10)})
	return tw.Render()
}
