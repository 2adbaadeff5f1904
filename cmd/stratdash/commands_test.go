package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/stratdash/lib/consoles"
	"github.com/pescuma/stratdash/lib/model"
	"github.com/pescuma/stratdash/lib/workspace"
)

func newTestContext(t *testing.T) (*context, *bytes.Buffer) {
	ws, err := workspace.NewWorkspaceWithConsole("", consoles.NewWriterConsole(io.Discard))
	assert.Nil(t, err)

	var out bytes.Buffer
	return &context{ws: ws, out: &out}, &out
}

func TestShowDefaults(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{Min: model.DefaultMinPotential}}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Contains(t, out.String(), "3 business units selected, average potential: 8.0 / 10")
	assert.Contains(t, out.String(), "Average potential: 8.00 / 10")
	assert.Contains(t, out.String(), "Regions covered:   5")
	assert.Contains(t, out.String(), "   Target regions: Asie, Amérique du Nord, Europe")
	assert.Contains(t, out.String(), "General recommendations")
}

func TestShowEmpty(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{Min: 10}}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Equal(t, "no business unit matches the criteria\n", out.String())
}

func TestShowSimple(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{Min: 8}, Simple: true}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Equal(t, "Mode et Maroquinerie\nParfums et Cosmétiques\n", out.String())
}

func TestShowTruncates(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{Unit: []string{"Vins*"}, Min: 0}, Width: 10}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.NotContains(t, out.String(), "Expansion géographique")
}

func TestNoneSelectsNothing(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{None: true, Min: 0}}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Equal(t, "no business unit matches the criteria\n", out.String())
}

func TestNoneWithUnitIsRejected(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{None: true, Unit: []string{"Vins*"}, Min: 0}}
	err := cmd.Run(ctx)

	assert.NotNil(t, err)
	assert.Empty(t, out.String())
}

func TestRejectsThresholdOutOfRange(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(t)

	cmd := &ShowCmd{cmdWithCriteria: cmdWithCriteria{Min: 11}}
	err := cmd.Run(ctx)

	assert.NotNil(t, err)
}

func TestRegions(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &RegionsCmd{cmdWithCriteria: cmdWithCriteria{Min: 8, Region: []string{"Amérique Latine", "Asie"}}}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Equal(t, ""+
		"   Asie              34.0479   100.6197   2\n"+
		"   Amérique Latine  -14.2350   -51.9253   0\n",
		out.String())
}

func TestExportToStdout(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &ExportCmd{cmdWithCriteria: cmdWithCriteria{Min: 10}, Output: "-"}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Equal(t, "Business Unit,Focus,Potentiel,Stratégie,Régions\n", out.String())
}

func TestExportToFile(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext(t)

	file := filepath.Join(t.TempDir(), "out.csv")

	cmd := &ExportCmd{cmdWithCriteria: cmdWithCriteria{Min: 7}, Output: file}
	err := cmd.Run(ctx)
	assert.Nil(t, err)

	contents, err := os.ReadFile(file)
	assert.Nil(t, err)
	assert.Equal(t, 4, bytes.Count(contents, []byte("\n")))
}

func TestDumpCatalog(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext(t)

	cmd := &DumpCatalogCmd{Format: "json"}
	err := cmd.Run(ctx)

	assert.Nil(t, err)
	assert.Contains(t, out.String(), `"name": "Moyen-Orient"`)
}
