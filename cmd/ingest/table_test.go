package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

func TestRenderRunResult(t *testing.T) {
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	stats := domain.NewStats()
	stats.MakesProcessed = 15
	stats.TrimsProcessed = 212
	stats.AddError("Failed to process make Lotus: status 500")

	out := renderRunResult(&domain.RunResult{
		RunID:      "01J0000000000000000000000A",
		Stage:      domain.StageCatalog,
		Status:     domain.RunStatusSucceeded,
		StartedAt:  started,
		FinishedAt: started.Add(95 * time.Second),
		Stats:      stats,
	})

	assert.Contains(t, out, "catalog run 01J0000000000000000000000A: succeeded")
	assert.Contains(t, out, "Makes processed")
	assert.Contains(t, out, "212")
	assert.Contains(t, out, "1m35s")
	assert.Contains(t, out, "1 non-fatal errors:")
	assert.Contains(t, out, "Failed to process make Lotus: status 500")
	assert.NotContains(t, out, "error: ")
}

func TestRenderRunResult_Failed(t *testing.T) {
	out := renderRunResult(&domain.RunResult{
		RunID:  "r",
		Stage:  domain.StageListings,
		Status: domain.RunStatusFailed,
		Stats:  domain.NewStats(),
		Error:  "marketplace access token unavailable",
	})

	assert.Contains(t, out, "listings run r: failed")
	assert.Contains(t, out, "error: marketplace access token unavailable")
}

func TestRenderRuns(t *testing.T) {
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(2 * time.Minute)
	msg := "marketplace access token unavailable"

	out := renderRuns(runsPage{
		Runs: []schema.IngestionRun{
			{ID: "01J1", Stage: "listings", Status: schema.IngestionRunStatusFailed, StartedAt: started, FinishedAt: &finished, ErrorMessage: &msg},
			{ID: "01J0", Stage: "catalog", Status: schema.IngestionRunStatusRunning, StartedAt: started},
		},
		Total: 2,
	})

	assert.Contains(t, out, "01J1")
	assert.Contains(t, out, "2m0s")
	assert.Contains(t, out, "2024-06-01 10:00:00")
	assert.Contains(t, out, msg)
	assert.Contains(t, out, "running")
}

func TestPrint_JSON(t *testing.T) {
	cc := &commandContext{jsonOutput: true}
	var buf bytes.Buffer

	stats := domain.NewStats()
	stats.ListingsLinked = 4
	err := cc.print(&buf, &domain.RunResult{RunID: "r", Stage: domain.StageListings, Stats: stats}, renderRunResult)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "r", decoded["runId"])
	assert.Equal(t, float64(4), decoded["stats"].(map[string]interface{})["listingsLinked"])
}

func TestRootCommand_Subcommands(t *testing.T) {
	cmd := newRootCommand()

	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"catalog", "listings", "runs"}, names)
}
