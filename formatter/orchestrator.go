package formatter

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/selection"
)

// Event is the name of an event an input field fires after its value changed.
type Event string

// Events fired after a programmatic change of an input field's value.
const (
	EventInput  Event = "input"
	EventChange Event = "change"
	EventKeyup  Event = "keyup"
)

// NotificationEvents is the sequence of events announced with every
// completed formatting operation which changed a field.
var NotificationEvents = []Event{EventInput, EventChange, EventKeyup}

// Request asks for a style to be applied to the selection of a field.
type Request struct {
	Field selection.Field
	Style unistyle.Style
}

// Result is the outcome of a formatting operation.
type Result struct {
	ID         string            // operation identifier
	Field      selection.Field   // field after replacement of the selection
	Original   string            // selected text before formatting
	Formatted  string            // selected text after formatting
	Style      unistyle.Style    // requested style
	Existing   []unistyle.Style  // styles detected in the selection
	Strategy   unistyle.Strategy // composition strategy applied
	HasChanges bool
	Duration   time.Duration
}

// Notification is published to subscribers of an Orchestrator for every
// successful operation. Events is empty if the field did not change.
type Notification struct {
	Result Result
	Events []Event
}

// Statistics accounts for the operations of an Orchestrator.
type Statistics struct {
	Total       int
	Successful  int
	Failed      int
	AverageTime time.Duration // average duration of successful operations
}

// Orchestrator coordinates formatting of input field selections.
// It is safe for concurrent use.
type Orchestrator struct {
	formatter *Formatter
	cast      *caster.Caster
	mx        sync.Mutex
	counter   int
	stats     Statistics
	total     time.Duration // sum of durations of successful operations
	now       func() time.Time
}

// NewOrchestrator creates an orchestrator using formatter f. If f is nil, a
// formatter with the default configuration is used. Cancelling ctx closes
// all subscriptions.
func NewOrchestrator(ctx context.Context, f *Formatter) *Orchestrator {
	if f == nil {
		f = New(nil)
	}
	return &Orchestrator{
		formatter: f,
		cast:      caster.New(ctx),
		now:       time.Now,
	}
}

// Format applies a formatting request. The selection is first widened to
// grapheme cluster boundaries, then the styles present are detected, a
// composition strategy is decided and the formatted text replaces the
// selection. The cursor of the resulting field is placed after the
// formatted text.
//
// Format checks ctx before doing any work.
func (o *Orchestrator) Format(ctx context.Context, req Request) (Result, error) {
	start := o.now()
	id := o.nextID(start)
	if err := ctx.Err(); err != nil {
		o.account(false, 0)
		return Result{ID: id}, err
	}
	field := req.Field.SnapToGraphemes()
	text := field.Selected()
	trace := tracer().P("op", id)
	trace.Infof("formatting %d code points as %v", utf8.RuneCountInString(text), req.Style)
	existing := o.formatter.Detect(text)
	formatted, err := o.formatter.Format(text, req.Style, existing)
	if err != nil {
		trace.Errorf("formatting failed: %v", err)
		o.account(false, 0)
		return Result{ID: id, Field: req.Field, Original: text, Style: req.Style}, fmt.Errorf("%s: %w", id, err)
	}
	result := Result{
		ID:         id,
		Field:      field,
		Original:   text,
		Formatted:  formatted,
		Style:      req.Style,
		Existing:   existing,
		Strategy:   unistyle.Decide(unistyle.NewRequest(o.formatter.prepare(text), req.Style)),
		HasChanges: formatted != text,
	}
	if result.HasChanges {
		result.Field = field.Replace(formatted)
	}
	result.Duration = o.now().Sub(start)
	o.account(true, result.Duration)
	trace.Debugf("strategy %v, changed = %v", result.Strategy, result.HasChanges)
	o.notify(result)
	return result, nil
}

// nextID creates an operation identifier of the form “format_<n>_<unix-ms>”.
func (o *Orchestrator) nextID(t time.Time) string {
	o.mx.Lock()
	defer o.mx.Unlock()
	o.counter++
	return fmt.Sprintf("format_%d_%d", o.counter, t.UnixMilli())
}

func (o *Orchestrator) account(ok bool, d time.Duration) {
	o.mx.Lock()
	defer o.mx.Unlock()
	o.stats.Total++
	if !ok {
		o.stats.Failed++
		return
	}
	o.stats.Successful++
	o.total += d
	o.stats.AverageTime = o.total / time.Duration(o.stats.Successful)
}

func (o *Orchestrator) notify(result Result) {
	n := Notification{Result: result}
	if result.HasChanges {
		n.Events = NotificationEvents
	}
	if !o.cast.TryPub(n) {
		tracer().P("op", result.ID).Debugf("orchestrator closed, notification dropped")
	}
}

// Statistics returns a snapshot of the operation statistics.
func (o *Orchestrator) Statistics() Statistics {
	o.mx.Lock()
	defer o.mx.Unlock()
	return o.stats
}

// Subscribe returns a channel of notifications. Every message received is of
// type Notification. Publishing does not block: if the buffer of a subscriber
// (of size capacity) is full, the notification is dropped for it. The
// subscription ends when ctx is cancelled or the orchestrator is closed.
func (o *Orchestrator) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	return o.cast.Sub(ctx, capacity)
}

// Close ends all subscriptions.
func (o *Orchestrator) Close() {
	o.cast.Close()
}
