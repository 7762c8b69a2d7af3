package reconciler

import (
	"context"
	"fmt"

	"github.com/sremy91/intuis-schedule-card/internal/constants"
	"github.com/sremy91/intuis-schedule-card/internal/hub"
	"github.com/sremy91/intuis-schedule-card/internal/logger"
	"github.com/sremy91/intuis-schedule-card/internal/models"
	"github.com/sremy91/intuis-schedule-card/internal/schedule"
)

// Protocol selects how an edit is translated into gateway calls.
type Protocol string

const (
	// ProtocolMultiCall emits one set-slot call per boundary touched, in
	// strict sequence. Legacy gateways only understand this form.
	ProtocolMultiCall Protocol = "multi"
	// ProtocolSingleCall carries the whole edit in one span call.
	ProtocolSingleCall Protocol = "single"
)

const midnight = "00:00"

// Reconciler translates span edits into gateway update calls.
type Reconciler struct {
	svc hub.Service
}

func New(svc hub.Service) *Reconciler {
	return &Reconciler{svc: svc}
}

// slotCall is one pending multi-call protocol event.
type slotCall struct {
	day       int
	startTime string
	zoneID    int
}

// Apply submits the edit using the chosen protocol. Multi-call events are
// awaited one at a time: later events depend on earlier ones having been
// accepted, so the first failure aborts the remainder. A partially applied
// multi-call edit is left as-is; no compensating rollback is attempted.
func (r *Reconciler) Apply(ctx context.Context, edit models.SpanEdit, proto Protocol) error {
	switch proto {
	case ProtocolMultiCall:
		return r.applyMultiCall(ctx, edit)
	case ProtocolSingleCall:
		return r.applySingleCall(ctx, edit)
	default:
		return fmt.Errorf("unknown protocol %q", proto)
	}
}

// Refresh asks the gateway to re-publish its schedule state, so the next
// render works from the updated timetable.
func (r *Reconciler) Refresh(ctx context.Context) error {
	return r.svc.RefreshSchedules(ctx)
}

func (r *Reconciler) applySingleCall(ctx context.Context, edit models.SpanEdit) error {
	s := edit.Span
	end := normalizeEnd(s.EndTime)
	if err := r.svc.SetScheduleSpan(ctx, s.StartDay, s.EndDay, s.StartTime, end, edit.NewZone.Name); err != nil {
		return fmt.Errorf("span update failed: %w", err)
	}
	return nil
}

func (r *Reconciler) applyMultiCall(ctx context.Context, edit models.SpanEdit) error {
	calls := multiCallPlan(edit)
	for i, c := range calls {
		if err := r.svc.SetScheduleSlot(ctx, c.day, c.startTime, c.zoneID); err != nil {
			logger.Error("Aborting multi-call edit",
				"call", i+1, "of", len(calls), "day", schedule.DayName(c.day), "time", c.startTime, "error", err)
			return fmt.Errorf("slot update %d of %d (%s %s) failed: %w",
				i+1, len(calls), schedule.DayName(c.day), c.startTime, err)
		}
	}
	return nil
}

// multiCallPlan expands an edit into the ordered slot events the legacy
// protocol needs: the new zone at the span start, the new zone at 00:00 of
// every further covered day, and, unless the edit runs to end of day, the
// original zone restored at the end time.
func multiCallPlan(edit models.SpanEdit) []slotCall {
	s := edit.Span
	end := normalizeEnd(s.EndTime)

	calls := []slotCall{{day: s.StartDay, startTime: s.StartTime, zoneID: edit.NewZone.ID}}
	if s.MultiDay() {
		for d := schedule.NextDay(s.StartDay); d != s.EndDay; d = schedule.NextDay(d) {
			calls = append(calls, slotCall{day: d, startTime: midnight, zoneID: edit.NewZone.ID})
		}
		calls = append(calls, slotCall{day: s.EndDay, startTime: midnight, zoneID: edit.NewZone.ID})
	}
	if end != midnight {
		calls = append(calls, slotCall{day: s.EndDay, startTime: end, zoneID: edit.OriginalZone.ID})
	}
	return calls
}

// normalizeEnd converts the "24:00" display sentinel to the "00:00" wire
// form ("through midnight, exclusive") shared by both protocols.
func normalizeEnd(endTime string) string {
	if endTime == constants.EndOfDay {
		return midnight
	}
	return endTime
}
