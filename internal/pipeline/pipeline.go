// Package pipeline runs one load → decode → group pass over the residents sheet.
package pipeline

import (
	"context"

	"github.com/KaramelBytes/seatboard/internal/resident"
	"github.com/KaramelBytes/seatboard/internal/seating"
	"github.com/KaramelBytes/seatboard/internal/sheets"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Source yields the raw residents table.
type Source interface {
	Load(ctx context.Context) (*sheets.Table, error)
}

// Result holds everything produced by a single run.
type Result struct {
	RunID     string
	Table     *sheets.Table
	Residents []resident.Resident
	Groups    *seating.Groups
}

// Run loads the table from src, decodes it with the default schema and groups
// the residents. Failures end the run; nothing is retried.
func Run(ctx context.Context, src Source, log *zap.Logger) (*Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	tbl, err := src.Load(ctx)
	if err != nil {
		log.Error("load residents failed", zap.Error(err))
		return nil, err
	}
	log.Debug("residents loaded", zap.Int("rows", len(tbl.Rows)), zap.Int("cols", len(tbl.Cols)))

	schema := resident.DefaultSchema()
	for _, w := range schema.Check(tbl.Labels()) {
		log.Warn("column layout mismatch", zap.String("detail", w))
	}
	residents := schema.DecodeTable(tbl)
	groups := seating.Aggregate(residents)
	log.Debug("residents grouped",
		zap.Int("present", len(groups.Present)),
		zap.Int("max_table", groups.MaxTable))

	return &Result{RunID: runID, Table: tbl, Residents: residents, Groups: groups}, nil
}
