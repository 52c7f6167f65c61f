package job

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"export-manager-api/internal/domain"
	"export-manager-api/internal/metrics"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/service"
)

// RevalidateJob re-resolves every stored export line against the live
// catalog. Lines whose path no longer resolves, or whose label went
// stale, are surfaced through logs and the stale-lines gauge; labels
// that changed (e.g. after a description update) are rewritten.
type RevalidateJob struct {
	exportRepo repository.ExportRepository
	lineRepo   repository.ExportLineRepository
	sync       service.PathSynchronizer
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewRevalidateJob creates a new RevalidateJob instance
func NewRevalidateJob(
	exportRepo repository.ExportRepository,
	lineRepo repository.ExportLineRepository,
	sync service.PathSynchronizer,
	m *metrics.Metrics,
	logger *zap.Logger,
) *RevalidateJob {
	return &RevalidateJob{
		exportRepo: exportRepo,
		lineRepo:   lineRepo,
		sync:       sync,
		metrics:    m,
		logger:     logger,
	}
}

// Run executes the revalidation pass over all export lines
func (j *RevalidateJob) Run() {
	ctx := context.Background()

	j.logger.Info("Starting export line revalidation job")

	lines, err := j.lineRepo.FindAll(ctx)
	if err != nil {
		j.logger.Error("Failed to load export lines for revalidation",
			zap.Error(err),
		)
		return
	}

	if len(lines) == 0 {
		j.logger.Info("No export lines to revalidate")
		if j.metrics != nil {
			j.metrics.SetStaleLinesTotal(0)
		}
		return
	}

	// Export root models are shared across many lines
	roots := make(map[uuid.UUID]*domain.ModelMeta)

	staleCount := 0
	updatedCount := 0

	for _, line := range lines {
		if line.Name == "" {
			// Unconfigured intermediate state, nothing to check
			continue
		}

		root, ok := roots[line.ExportID]
		if !ok {
			export, err := j.exportRepo.FindByID(ctx, line.ExportID)
			if err != nil {
				j.logger.Error("Failed to load export for line",
					zap.String("line_id", line.ID.String()),
					zap.String("export_id", line.ExportID.String()),
					zap.Error(err),
				)
				continue
			}
			root = &export.Model
			roots[line.ExportID] = root
		}

		prevName := line.Name
		prevLabel := line.Label

		chain, err := j.sync.SyncFromName(ctx, line, root, "")
		if err != nil {
			j.logger.Warn("Export line no longer resolves against the catalog",
				zap.String("line_id", line.ID.String()),
				zap.String("name", prevName),
				zap.Error(err),
			)
			staleCount++
			continue
		}

		if line.Label == "" {
			j.logger.Warn("Export line resolves but has no label",
				zap.String("line_id", line.ID.String()),
				zap.String("name", line.Name),
				zap.Int("depth", chain.Depth()),
			)
			staleCount++
			continue
		}

		if line.Name != prevName || line.Label != prevLabel {
			if err := j.lineRepo.Update(ctx, line); err != nil {
				j.logger.Error("Failed to persist revalidated line",
					zap.String("line_id", line.ID.String()),
					zap.Error(err),
				)
				continue
			}
			updatedCount++
			j.logger.Debug("Rewrote stale line derivations",
				zap.String("line_id", line.ID.String()),
				zap.String("name", line.Name),
			)
		}
	}

	if j.metrics != nil {
		j.metrics.SetStaleLinesTotal(int64(staleCount))
	}

	j.logger.Info("Export line revalidation completed",
		zap.Int("total_lines", len(lines)),
		zap.Int("stale", staleCount),
		zap.Int("updated", updatedCount),
	)
}
