package postgres

import (
	"context"
	"database/sql"

	"labelprint/internal/model"
	"labelprint/internal/repository"
)

// JobPostgres is a PostgreSQL implementation of repository.JobRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type JobPostgres struct {
	db *sql.DB
}

// NewJobPostgres creates a new JobPostgres repository.
func NewJobPostgres(db *sql.DB) *JobPostgres {
	return &JobPostgres{db: db}
}

var _ repository.JobRepository = (*JobPostgres)(nil)

// Create inserts a new print job row and returns the stored record.
func (r *JobPostgres) Create(ctx context.Context, job *model.PrintJob) (*model.PrintJob, error) {
	const q = `
		INSERT INTO print_jobs (id, kind, printer, status, pages, size_bytes, artifact_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, kind, printer, status, pages, size_bytes, artifact_path, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		job.ID,
		job.Kind,
		job.Printer,
		job.Status,
		job.Pages,
		job.SizeBytes,
		job.ArtifactPath,
		job.CreatedAt,
	)
	var out model.PrintJob
	if err := row.Scan(
		&out.ID,
		&out.Kind,
		&out.Printer,
		&out.Status,
		&out.Pages,
		&out.SizeBytes,
		&out.ArtifactPath,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single print job by its ID.
func (r *JobPostgres) FindByID(ctx context.Context, id string) (*model.PrintJob, error) {
	const q = `
		SELECT id, kind, printer, status, pages, size_bytes, artifact_path, created_at
		FROM print_jobs
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var j model.PrintJob
	if err := row.Scan(
		&j.ID,
		&j.Kind,
		&j.Printer,
		&j.Status,
		&j.Pages,
		&j.SizeBytes,
		&j.ArtifactPath,
		&j.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}

// List returns print jobs using LIMIT/OFFSET pagination and a total count.
func (r *JobPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.PrintJob], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM print_jobs`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, kind, printer, status, pages, size_bytes, artifact_path, created_at
		FROM print_jobs
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PrintJob, 0)
	for rows.Next() {
		var j model.PrintJob
		if err := rows.Scan(
			&j.ID,
			&j.Kind,
			&j.Printer,
			&j.Status,
			&j.Pages,
			&j.SizeBytes,
			&j.ArtifactPath,
			&j.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.PrintJob]{
		Items: items,
		Total: total,
	}, nil
}
