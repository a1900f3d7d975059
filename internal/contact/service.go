package contact

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cjdelfin.dev/internal/metrics"
)

// ErrDelivery wraps any failure of the email provider
var ErrDelivery = errors.New("contact message delivery failed")

// Status is the delivery state of a recorded submission
type Status string

const (
	StatusPending Status = "pending"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

// Recorder keeps a log of submissions
type Recorder interface {
	CreateSubmission(ctx context.Context, msg Message) (int64, error)
	MarkSubmission(ctx context.Context, id int64, status Status, errText string) error
}

type nopRecorder struct{}

func (nopRecorder) CreateSubmission(context.Context, Message) (int64, error) { return 0, nil }

func (nopRecorder) MarkSubmission(context.Context, int64, Status, string) error { return nil }

// Result describes an accepted submission
type Result struct {
	ID     int64  `json:"id,omitempty"`
	Status Status `json:"status"`
}

// Service validates, records and delivers contact messages
type Service struct {
	sender   Sender
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a new Service. A nil recorder disables the submission log.
func NewService(sender Sender, recorder Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{sender: sender, recorder: recorder, logger: logger}
}

// Submit delivers msg once. Invalid input returns *ValidationError; a
// provider failure returns an error wrapping ErrDelivery.
func (s *Service) Submit(ctx context.Context, msg Message) (Result, error) {
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		metrics.RecordContactSubmission("invalid")
		return Result{}, err
	}

	id, err := s.recorder.CreateSubmission(ctx, msg)
	if err != nil {
		// the log is best effort; delivery still happens
		s.logger.Warn("failed to record contact submission", zap.Error(err))
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("failed to deliver contact message",
			zap.Int64("submission_id", id),
			zap.String("email", msg.Email),
			zap.Error(err),
		)
		s.mark(ctx, id, StatusFailed, err.Error())
		metrics.RecordContactSubmission(string(StatusFailed))
		return Result{ID: id, Status: StatusFailed}, fmt.Errorf("%w: %w", ErrDelivery, err)
	}

	s.mark(ctx, id, StatusSent, "")
	metrics.RecordContactSubmission(string(StatusSent))
	s.logger.Info("contact message delivered",
		zap.Int64("submission_id", id),
		zap.String("email", msg.Email),
	)
	return Result{ID: id, Status: StatusSent}, nil
}

func (s *Service) mark(ctx context.Context, id int64, status Status, errText string) {
	if id == 0 {
		return
	}
	if err := s.recorder.MarkSubmission(ctx, id, status, errText); err != nil {
		s.logger.Warn("failed to update contact submission",
			zap.Int64("submission_id", id),
			zap.String("status", string(status)),
			zap.Error(err),
		)
	}
}
