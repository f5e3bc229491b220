package repository

import (
	"context"

	"labelprint/internal/model"
)

// JobRepository defines data access for print job history using SQL queries only.
// No business logic here, strictly persistence operations.
type JobRepository interface {
	// Create inserts a new print job record.
	// The caller provides all fields (ID, CreatedAt included); the database
	// sets nothing on its own. Returns the stored job.
	Create(ctx context.Context, job *model.PrintJob) (*model.PrintJob, error)

	// FindByID returns a print job by its ID.
	FindByID(ctx context.Context, id string) (*model.PrintJob, error)

	// List returns a paginated list of print jobs, newest first, and the
	// total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.PrintJob], error)
}
