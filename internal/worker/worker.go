package worker

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/filevault/internal/domain"
)

var jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "thumbnail_jobs_processed_total",
	Help: "Total number of thumbnail jobs processed, by outcome.",
}, []string{"outcome"})

// Notifier receives a signal once all thumbnails for a file exist.
type Notifier interface {
	ThumbnailsReady(userID, fileID uuid.UUID)
}

// ThumbnailWorker is the single long-running consumer of the job queue. One
// job is processed at a time: blocking dequeue, one attempt, back to idle.
// A failed job is logged and dropped, never re-enqueued.
type ThumbnailWorker struct {
	queue       domain.JobQueue
	repo        domain.FileRepository
	thumbnailer *Thumbnailer
	notifier    Notifier
}

func NewThumbnailWorker(queue domain.JobQueue, repo domain.FileRepository, thumbnailer *Thumbnailer, notifier Notifier) *ThumbnailWorker {
	return &ThumbnailWorker{
		queue:       queue,
		repo:        repo,
		thumbnailer: thumbnailer,
		notifier:    notifier,
	}
}

// Run consumes jobs until ctx is cancelled. Job failures are terminal for
// that job only and never stop the loop.
func (w *ThumbnailWorker) Run(ctx context.Context) {
	log.Println("[ThumbnailWorker] started")
	for {
		job, err := w.queue.Dequeue(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[ThumbnailWorker] stopped")
				return
			}
			log.Printf("[ThumbnailWorker] dequeue error: %v", err)
			continue
		}

		if err := w.Process(ctx, job); err != nil {
			outcome := "failed"
			if IsPermanent(err) {
				outcome = "rejected"
			}
			jobsProcessed.WithLabelValues(outcome).Inc()
			log.Printf("[ThumbnailWorker] job for file %s failed: %v", job.FileID, err)
			continue
		}
		jobsProcessed.WithLabelValues("completed").Inc()
	}
}

// Process handles a single job attempt. A malformed payload or a missing
// target file is a permanent failure; per-size generation errors abort the
// rest of the job, leaving already-written sizes in place.
func (w *ThumbnailWorker) Process(ctx context.Context, job domain.ThumbnailJob) error {
	if job.FileID == uuid.Nil || job.UserID == uuid.Nil {
		return domain.ErrMissingJobField
	}

	file, err := w.repo.FindByID(ctx, job.FileID)
	if err != nil {
		return err
	}
	// Requiring the owner to match closes the cross-tenant path: a job can
	// only act on behalf of the user that uploaded the file.
	if file == nil || file.UserID != job.UserID {
		return domain.ErrJobFileNotFound
	}

	if err := w.thumbnailer.Generate(ctx, file.LocalPath, domain.ThumbnailWidths); err != nil {
		return err
	}

	if w.notifier != nil {
		w.notifier.ThumbnailsReady(job.UserID, job.FileID)
	}
	return nil
}

// IsPermanent reports whether err is a permanent job failure, as opposed to
// an infrastructure error. Both are terminal here; the distinction only
// matters for logging and tests.
func IsPermanent(err error) bool {
	return errors.Is(err, domain.ErrMissingJobField) || errors.Is(err, domain.ErrJobFileNotFound)
}
