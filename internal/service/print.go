package service

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"labelprint/internal/label"
	"labelprint/internal/model"
	"labelprint/internal/printer"
	"labelprint/internal/raster"
	"labelprint/internal/repository"
	"labelprint/internal/storage"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrJobNotFound        = errors.New("print job not found")
	ErrPrinterUnavailable = errors.New("printer is not available")
	ErrImageRequired      = errors.New("image content is required")
)

// PrintOptions carries per-request printhead overrides. Zero values fall back
// to the configured defaults.
type PrintOptions struct {
	Density int
	Speed   int
	Copies  int
}

// JobListResult is the service-level DTO for paginated print jobs.
type JobListResult struct {
	Items []model.PrintJob `json:"data"`
	Total int              `json:"total"`
}

// PrintService defines the use cases for rendering and printing labels.
type PrintService interface {
	// PrintOrder renders an engineering order as one or more label pages,
	// submits the command stream to the printer backend, archives it, and
	// records a job row.
	PrintOrder(ctx context.Context, order label.Order, opts PrintOptions) (*model.PrintJob, error)

	// PrintImage rasterizes an uploaded image onto a single full-label page
	// and submits it like PrintOrder does.
	PrintImage(ctx context.Context, image []byte, opts PrintOptions) (*model.PrintJob, error)

	// List returns print jobs using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*JobListResult, error)

	// Get returns a single print job by its ID.
	Get(ctx context.Context, id string) (*model.PrintJob, error)

	// ArtifactURL returns a time-limited download URL for a job's archived
	// command stream, or an empty string when the job has no artifact.
	ArtifactURL(ctx context.Context, id string) (string, error)
}

// printService is a concrete implementation of PrintService.
type printService struct {
	geometry label.Geometry
	layout   label.Layout
	tuning   label.Tuning
	backend  printer.Backend
	store    storage.Storage
	repo     repository.JobRepository
	metrics  *Metrics
	tracer   trace.Tracer
}

// NewPrintService constructs a new PrintService. The metrics argument may be
// nil, in which case no counters are updated.
func NewPrintService(g label.Geometry, l label.Layout, defaults label.Tuning, backend printer.Backend, store storage.Storage, repo repository.JobRepository, m *Metrics) PrintService {
	return &printService{
		geometry: g,
		layout:   l,
		tuning:   defaults,
		backend:  backend,
		store:    store,
		repo:     repo,
		metrics:  m,
		tracer:   otel.Tracer("labelprint/internal/service"),
	}
}

func (s *printService) PrintOrder(ctx context.Context, order label.Order, opts PrintOptions) (*model.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "PrintService.PrintOrder")
	defer span.End()

	items, overlay, err := label.Build(order, s.geometry, s.layout)
	if err != nil {
		return nil, err
	}
	pages := label.Paginate(items, overlay, s.geometry, s.layout)
	stream := label.Emit(pages, s.geometry, s.layout, s.resolveTuning(opts))

	span.SetAttributes(
		attribute.Int("label.pages", len(pages)),
		attribute.Int("label.stream_bytes", len(stream)),
	)
	return s.submit(ctx, model.JobKindOrder, len(pages), stream)
}

func (s *printService) PrintImage(ctx context.Context, image []byte, opts PrintOptions) (*model.PrintJob, error) {
	ctx, span := s.tracer.Start(ctx, "PrintService.PrintImage")
	defer span.End()

	if len(image) == 0 {
		return nil, ErrImageRequired
	}
	bitmap, err := raster.Encode(image, s.geometry.WidthMm, s.geometry.HeightMm, s.geometry.DPI, raster.Options{})
	if err != nil {
		return nil, err
	}
	page := label.Page{Items: []label.PlacedItem{{Item: bitmap, X: 0, Y: 0}}}
	stream := label.Emit([]label.Page{page}, s.geometry, s.layout, s.resolveTuning(opts))

	span.SetAttributes(attribute.Int("label.stream_bytes", len(stream)))
	return s.submit(ctx, model.JobKindImage, 1, stream)
}

// resolveTuning merges request overrides over the configured defaults.
func (s *printService) resolveTuning(opts PrintOptions) label.Tuning {
	t := s.tuning
	if opts.Density > 0 {
		t.Density = opts.Density
	}
	if opts.Speed > 0 {
		t.Speed = opts.Speed
	}
	if opts.Copies > 0 {
		t.Copies = opts.Copies
	}
	return t
}

// submit delivers a rendered stream to the backend, archives it when an
// object store is configured, and records the job. A failed job record rolls
// back the archived artifact; the printer submission itself cannot be
// recalled.
func (s *printService) submit(ctx context.Context, kind string, pages int, stream []byte) (*model.PrintJob, error) {
	if !s.backend.IsAvailable(ctx) {
		return nil, ErrPrinterUnavailable
	}

	id := uuid.New().String()
	if _, err := s.backend.Submit(ctx, id, stream); err != nil {
		return nil, fmt.Errorf("submit to printer: %w", err)
	}

	artifact := ""
	if s.store.Enabled() {
		key := "jobs/" + id + ".tspl"
		if _, err := s.store.Put(ctx, key, bytes.NewReader(stream), storage.PutObjectOptions{
			Size:        int64(len(stream)),
			ContentType: "application/octet-stream",
			Metadata:    map[string]string{"job-kind": kind},
		}); err != nil {
			return nil, fmt.Errorf("archive command stream: %w", err)
		}
		artifact = key
	}

	job := &model.PrintJob{
		ID:           id,
		Kind:         kind,
		Printer:      s.backend.Kind(),
		Status:       model.JobStatusSubmitted,
		Pages:        pages,
		SizeBytes:    int64(len(stream)),
		ArtifactPath: artifact,
		CreatedAt:    time.Now().UTC(),
	}
	stored, err := s.repo.Create(ctx, job)
	if err != nil {
		if artifact != "" {
			if delErr := s.store.Delete(ctx, artifact); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if s.metrics != nil {
		s.metrics.observeJob(kind, pages)
	}
	return stored, nil
}

// List returns paginated print jobs without exposing repository types.
func (s *printService) List(ctx context.Context, limit, offset int) (*JobListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &JobListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a print job by ID.
func (s *printService) Get(ctx context.Context, id string) (*model.PrintJob, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// ArtifactURL presigns a download link for the job's archived stream.
func (s *printService) ArtifactURL(ctx context.Context, id string) (string, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if job.ArtifactPath == "" || !s.store.Enabled() {
		return "", nil
	}
	return s.store.PresignGet(ctx, job.ArtifactPath, 15*time.Minute)
}
