package workflows

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ghuser/gudang/pkg/storage"
	appsvcs "github.com/ghuser/gudang/services/report/application/services"
)

// TaskQueue is the Temporal task queue the report worker listens on.
const TaskQueue = "gudang-reports"

// SnapshotResult reports where a stock snapshot landed.
type SnapshotResult struct {
	ObjectURL string
	Filename  string
}

// Activities holds the dependencies the snapshot activity needs. Registered
// on the worker; the workflow itself stays deterministic.
type Activities struct {
	Reports *appsvcs.ReportService
	Store   *storage.ObjectStore
}

// BuildAndUploadStockSnapshot renders the stock report and archives it in
// object storage under its download filename.
func (a *Activities) BuildAndUploadStockSnapshot(ctx context.Context) (*SnapshotResult, error) {
	filename, body, err := a.Reports.BuildStockReport(ctx)
	if err != nil {
		return nil, fmt.Errorf("build stock report: %w", err)
	}

	url, err := a.Store.Upload(ctx, filename, "text/csv", bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return nil, fmt.Errorf("upload stock report: %w", err)
	}

	return &SnapshotResult{ObjectURL: url, Filename: filename}, nil
}

// StockSnapshotWorkflow archives one stock report. Scheduled on demand from
// the API; retries are left to Temporal's activity policy.
func StockSnapshotWorkflow(ctx workflow.Context) (*SnapshotResult, error) {
	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: time.Second,
			MaximumAttempts: 5,
		},
	})

	var a *Activities
	var result SnapshotResult
	if err := workflow.ExecuteActivity(ctx, a.BuildAndUploadStockSnapshot).Get(ctx, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
