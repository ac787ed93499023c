package pool

import (
	"RooftopSolar/analysis"
	iface "RooftopSolar/interface"
	"RooftopSolar/monitor"
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

type BatchItem struct {
	Detections  *iface.DetectionSet      `json:"detections"`
	Calibration iface.CalibrationContext `json:"calibration"`
}

// AnalyzeDetections runs the mask analysis on detections produced elsewhere.
// A detector that found nothing yields an empty report, not an error.
func AnalyzeDetections(det *iface.DetectionSet, cal iface.CalibrationContext) (*iface.MaskAreaReport, error) {
	start := time.Now()
	report, err := analysis.Analyze(det, cal, analysis.AllowEmpty())
	if err != nil {
		monitor.ObserveAnalysis(monitor.OutcomeError, start)
		return nil, err
	}
	monitor.ObserveAnalysis(report.Status(), start)
	return report, nil
}

// AnalyzeBatch analyzes independent items concurrently, at most limit at a time.
// Reports are index-aligned with items; the first failure cancels the rest.
func AnalyzeBatch(ctx context.Context, items []BatchItem, limit int) ([]*iface.MaskAreaReport, error) {
	reports := make([]*iface.MaskAreaReport, len(items))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := AnalyzeDetections(item.Detections, item.Calibration)
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
