package jobs

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"portfolio/internal/mailer"
)

// Worker drains the email queue. Delivery failures retry with exponential
// backoff and are dropped after MaxAttempts; they never reach the caller that
// enqueued the mail.
type Worker struct {
	ID     string
	Repo   *Repo
	Mailer mailer.Mailer
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.Handle(job)
		}
	}
}

func (w *Worker) Handle(job *Job) {
	switch job.Type {
	case TypeEmailDispatch:
		w.handleEmail(job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleEmail(job *Job) {
	var p EmailPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}
	if p.To == "" {
		_ = w.Repo.MarkFailed(job.ID, "missing recipient")
		return
	}

	if err := w.Mailer.Send(p.To, p.Subject, p.Body); err != nil {
		log.Printf("email send failed (job=%d to=%s): %v\n", job.ID, p.To, err)
		w.retry(job, err.Error())
		return
	}

	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	next := time.Now().Add(Backoff(attempts))
	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}

// Backoff returns the delay before retry attempt n, capped at 10 minutes.
func Backoff(attempt int) time.Duration {
	sec := math.Min(math.Pow(2, float64(attempt)), 600)
	return time.Duration(sec) * time.Second
}
