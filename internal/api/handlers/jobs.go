package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/mong0520/kapaipai-api/pkg/types"
)

// JobsProvider reads scheduler job runs.
type JobsProvider interface {
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
}

// JobsHandler serves the run history of scheduled jobs.
type JobsHandler struct {
	store JobsProvider
}

// NewJobsHandler creates a new JobsHandler.
func NewJobsHandler(s JobsProvider) *JobsHandler {
	return &JobsHandler{store: s}
}

// JobRunsInput selects one job's runs. Only jobs the scheduler registers are
// accepted.
type JobRunsInput struct {
	JobName string `path:"job_name" enum:"price_check" doc:"Scheduled job name"`
	Limit   int    `query:"limit"   default:"20"       doc:"Number of runs"     minimum:"1" maximum:"200"`
}

// JobRunsOutput lists runs newest first.
type JobRunsOutput struct {
	Body []domain.JobRun
}

// GetJobHistory returns the most recent runs of a scheduled job.
func (h *JobsHandler) GetJobHistory(ctx context.Context, input *JobRunsInput) (*JobRunsOutput, error) {
	runs, err := h.store.ListJobRuns(ctx, input.JobName, input.Limit)
	if err != nil {
		return nil, statusError("listing job runs", err)
	}
	if runs == nil {
		runs = []domain.JobRun{}
	}
	return &JobRunsOutput{Body: runs}, nil
}

// RegisterJobRoutes registers scheduler job endpoints with the Huma API.
func RegisterJobRoutes(api huma.API, h *JobsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "get-job-history",
		Method:      http.MethodGet,
		Path:        "/api/v1/jobs/{job_name}",
		Summary:     "Get scheduler job history",
		Description: "Returns the runs of a scheduled job with their status and the number of watches checked.",
		Tags:        []string{"scheduler"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.GetJobHistory)
}
