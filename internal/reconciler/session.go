package reconciler

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/sremy91/intuis-schedule-card/internal/logger"
	"github.com/sremy91/intuis-schedule-card/internal/models"
)

// State is the editing session lifecycle state.
type State int

const (
	StateClosed State = iota
	StateOpen
)

var (
	// ErrSessionClosed is returned when a mutation or apply is attempted
	// with no span selected.
	ErrSessionClosed = errors.New("no editing session is open")
	// ErrApplyInFlight is returned when Apply is called while a previous
	// apply has not completed. One apply per session at a time.
	ErrApplyInFlight = errors.New("an apply is already in flight")
)

// Session holds the transient editing state between selecting a span and
// applying or cancelling the edit. It is created Closed, opens on block
// selection, and returns to Closed on apply success, apply failure, or
// cancel. Failed applies surface their error but are not retried.
type Session struct {
	mu       sync.Mutex
	id       string
	state    State
	applying bool
	edit     models.SpanEdit
	rec      *Reconciler
}

func NewSession(rec *Reconciler) *Session {
	return &Session{
		id:  uuid.NewString(),
		rec: rec,
	}
}

// Open populates the session from a detected span. Opening over an already
// open session replaces the pending edit (selecting another block).
func (s *Session) Open(span models.Span, original models.Zone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edit = models.SpanEdit{
		Span:         span,
		NewZone:      original,
		OriginalZone: original,
	}
	s.state = StateOpen
	logger.Debug("Editing session opened", "session", s.id,
		"start", span.StartDayName()+" "+span.StartTime, "end", span.EndDayName()+" "+span.EndTime)
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Edit returns the pending edit; ok is false when the session is closed.
func (s *Session) Edit() (models.SpanEdit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edit, s.state == StateOpen
}

// SetZone selects the replacement zone.
func (s *Session) SetZone(zone models.Zone) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	s.edit.NewZone = zone
	s.edit.Span.ZoneID = zone.ID
	return nil
}

// SetStart moves the span start.
func (s *Session) SetStart(day int, startTime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	s.edit.Span.StartDay = day
	s.edit.Span.StartTime = startTime
	return nil
}

// SetEnd moves the span end.
func (s *Session) SetEnd(day int, endTime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateOpen {
		return ErrSessionClosed
	}
	s.edit.Span.EndDay = day
	s.edit.Span.EndTime = endTime
	return nil
}

// Cancel discards the pending edit.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateOpen {
		logger.Debug("Editing session cancelled", "session", s.id)
	}
	s.state = StateClosed
}

// Apply submits the pending edit through the reconciler and closes the
// session whether or not the gateway accepted it. On success the gateway
// is asked to refresh so the collaborator re-supplies the timetable; the
// session never mutates the timetable view itself.
func (s *Session) Apply(ctx context.Context, proto Protocol) error {
	s.mu.Lock()
	if s.state != StateOpen {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.applying {
		s.mu.Unlock()
		return ErrApplyInFlight
	}
	s.applying = true
	edit := s.edit
	s.mu.Unlock()

	err := s.rec.Apply(ctx, edit, proto)
	if err == nil {
		if refreshErr := s.rec.Refresh(ctx); refreshErr != nil {
			logger.Warn("Schedule refresh after apply failed", "session", s.id, "error", refreshErr)
		}
	}

	s.mu.Lock()
	s.applying = false
	s.state = StateClosed
	s.mu.Unlock()

	if err != nil {
		logger.Error("Apply failed", "session", s.id, "protocol", proto, "error", err)
		return err
	}
	logger.Info("Edit applied", "session", s.id, "protocol", proto)
	return nil
}
