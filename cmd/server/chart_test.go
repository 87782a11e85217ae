package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/encounter-budget/internal/errors"
)

func setChartFlags(t *testing.T, players, monsters string, maxPerRow int) {
	t.Helper()
	chartPlayers, chartMonsters, chartMaxPerRow, chartWidthExponent = players, monsters, maxPerRow, 3
	t.Cleanup(func() {
		chartPlayers, chartMonsters, chartMaxPerRow, chartWidthExponent = "4x1", "2x1", 4, 3
	})
}

func TestRunChart_Defaults(t *testing.T) {
	setChartFlags(t, "4x1", "2x1", 4)

	var out bytes.Buffer
	require.NoError(t, runChart(context.Background(), &out))

	assert.Equal(t, "Budgets: low 200, moderate 300, high 400\n"+
		"Spent: 400 XP (high)\n"+
		"row 0: [1 1.000]  <- low@1.000\n"+
		"row 1: [1 1.000]  <- moderate@0.500, high@1.000\n",
		out.String())
}

func TestRunChart_EmptyMonsters(t *testing.T) {
	setChartFlags(t, "4x1", "", 4)

	var out bytes.Buffer
	require.NoError(t, runChart(context.Background(), &out))

	assert.Equal(t, "Budgets: low 200, moderate 300, high 400\n"+
		"Spent: 0 XP (none)\n"+
		"row 0:  <- low@0.500 (unmet), moderate@0.750 (unmet), high@1.000 (unmet)\n",
		out.String())
}

func TestRunChart_Errors(t *testing.T) {
	setChartFlags(t, "4x1", "1x1/3", 4)
	err := runChart(context.Background(), &bytes.Buffer{})
	require.Error(t, err)

	setChartFlags(t, "4x1", "2x1", 0)
	err = runChart(context.Background(), &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	setChartFlags(t, "4", "2x1", 4)
	assert.Error(t, runChart(context.Background(), &bytes.Buffer{}))
}
