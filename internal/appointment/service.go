package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portfolio/internal/apperr"
	"portfolio/internal/crud"
	"portfolio/internal/jobs"

	"gorm.io/gorm"
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Name    string
	Email   string
	Subject string
	Urgency string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM, catalog member
	Notes   string
}

// AvailableSlots returns the catalog minus every time already attached to a
// non-cancelled appointment on that date, in catalog order.
func (s *Service) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperr.New(apperr.CodeInvalidInput, "invalid date, expected YYYY-MM-DD")
	}

	var taken []string
	err := s.DB.WithContext(ctx).Model(&Appointment{}).
		Where("date = ? AND status <> ?", date, StatusCancelled).
		Pluck("time", &taken).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "slot lookup failed", err)
	}

	return RemainingSlots(taken), nil
}

// Create books a slot. The conflict check and the insert run in one
// transaction, and the partial unique index on (date, time) for non-cancelled
// rows backstops racing requests; either path surfaces as CONFLICT. The
// confirmation email job is enqueued in the same transaction so it commits
// with the booking, but delivery happens in the worker and never affects the
// caller-visible result.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return Appointment{}, apperr.New(apperr.CodeInvalidInput, "invalid date, expected YYYY-MM-DD")
	}
	if !InCatalog(in.Time) {
		return Appointment{}, apperr.New(apperr.CodeInvalidInput, "time is not a bookable slot")
	}
	if in.Urgency == "" {
		in.Urgency = UrgencyNonUrgent
	}
	if !ValidUrgency(in.Urgency) {
		return Appointment{}, apperr.New(apperr.CodeInvalidInput, "invalid urgency")
	}

	a := Appointment{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Urgency: in.Urgency,
		Date:    in.Date,
		Time:    in.Time,
		Status:  StatusPending, // forced regardless of input
		Notes:   in.Notes,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&Appointment{}).
			Where("date = ? AND time = ? AND status <> ?", in.Date, in.Time, StatusCancelled).
			Count(&n).Error; err != nil {
			return apperr.Wrap(apperr.CodeDatabase, "conflict check failed", err)
		}
		if n > 0 {
			return apperr.New(apperr.CodeConflict, "slot already booked")
		}

		if err := tx.Create(&a).Error; err != nil {
			if crud.IsDuplicate(err) {
				return apperr.New(apperr.CodeConflict, "slot already booked")
			}
			return apperr.Wrap(apperr.CodeDatabase, "booking failed", err)
		}

		return jobs.EnqueueEmail(tx, a.Email,
			"Appointment received",
			confirmationBody(a))
	})
	if err != nil {
		return Appointment{}, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uint64) (Appointment, error) {
	var a Appointment
	err := s.DB.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Appointment{}, apperr.New(apperr.CodeNotFound, "appointment not found")
	}
	if err != nil {
		return Appointment{}, apperr.Wrap(apperr.CodeDatabase, "lookup failed", err)
	}
	return a, nil
}

// UpdateStatus persists the requested status unconditionally. Any
// status-to-status move is allowed; the admin dashboard is the only caller
// and manual overrides are intended.
func (s *Service) UpdateStatus(ctx context.Context, id uint64, status string) (Appointment, error) {
	if !ValidStatus(status) {
		return Appointment{}, apperr.New(apperr.CodeInvalidInput, "invalid status")
	}

	a, err := s.Get(ctx, id)
	if err != nil {
		return Appointment{}, err
	}

	if err := s.DB.WithContext(ctx).Model(&a).Update("status", status).Error; err != nil {
		return Appointment{}, apperr.Wrap(apperr.CodeDatabase, "status update failed", err)
	}
	a.Status = status
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uint64) error {
	res := s.DB.WithContext(ctx).Delete(&Appointment{}, "id = ?", id)
	if res.Error != nil {
		return apperr.Wrap(apperr.CodeDatabase, "delete failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "appointment not found")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	var out []Appointment
	if err := s.DB.WithContext(ctx).Order("date asc, time asc").Find(&out).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

// Upcoming returns pending and confirmed appointments from today onward,
// ignoring time-of-day, ordered by (date, time).
func (s *Service) Upcoming(ctx context.Context) ([]Appointment, error) {
	today := time.Now().Format("2006-01-02")

	var out []Appointment
	err := s.DB.WithContext(ctx).
		Where("date >= ? AND status IN ?", today, []string{StatusPending, StatusConfirmed}).
		Order("date asc, time asc").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

func confirmationBody(a Appointment) string {
	return fmt.Sprintf(
		"<p>Hi %s,</p><p>Your appointment request for <b>%s</b> at <b>%s</b> has been received and is pending confirmation.</p><p>Subject: %s</p>",
		a.Name, a.Date, a.Time, a.Subject)
}
