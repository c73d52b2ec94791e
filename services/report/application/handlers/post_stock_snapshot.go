package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go.temporal.io/sdk/client"

	pkgworkflows "github.com/ghuser/gudang/pkg/workflows"
	"github.com/ghuser/gudang/pkg/httpx"
	"github.com/ghuser/gudang/services/report/application/workflows"
)

// PostStockSnapshotHandler handles POST /reports/snapshots: it schedules the
// snapshot workflow and returns immediately with the workflow handle.
type PostStockSnapshotHandler struct {
	temporal *pkgworkflows.TemporalClient
}

// NewPostStockSnapshotHandler returns a PostStockSnapshotHandler using the
// given Temporal client.
func NewPostStockSnapshotHandler(temporal *pkgworkflows.TemporalClient) *PostStockSnapshotHandler {
	return &PostStockSnapshotHandler{temporal: temporal}
}

// Execute starts a StockSnapshotWorkflow run. 503 when the worker
// infrastructure is not configured.
func (h *PostStockSnapshotHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if h.temporal == nil {
		httpx.JSONError(w, http.StatusServiceUnavailable, "snapshot scheduling is not configured")
		return
	}

	run, err := h.temporal.Client.ExecuteWorkflow(r.Context(), client.StartWorkflowOptions{
		ID:        fmt.Sprintf("stock-snapshot-%d", time.Now().UnixMilli()),
		TaskQueue: workflows.TaskQueue,
	}, workflows.StockSnapshotWorkflow)
	if err != nil {
		httpx.JSONError(w, http.StatusBadGateway, "could not schedule snapshot")
		return
	}

	httpx.JSON(w, http.StatusAccepted, map[string]string{
		"workflow_id": run.GetID(),
		"run_id":      run.GetRunID(),
	})
}
