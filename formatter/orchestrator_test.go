package formatter

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unistyle"
	"github.com/npillmayer/unistyle/selection"
)

// fakeClock advances by 10ms on every reading.
func fakeClock() func() time.Time {
	t := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(10 * time.Millisecond)
		return t
	}
}

func TestOrchestratorFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	ctx := context.Background()
	o := NewOrchestrator(ctx, nil)
	defer o.Close()
	o.now = fakeClock()
	//
	res, err := o.Format(ctx, Request{
		Field: selection.NewField("Say Hello now", 4, 9),
		Style: unistyle.Bold,
	})
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := regexp.MatchString(`^format_1_\d+$`, res.ID); !ok {
		t.Errorf("unexpected operation id %q", res.ID)
	}
	if res.Field.Value != "Say 𝐇𝐞𝐥𝐥𝐨 now" || res.Field.Start != 9 || !res.Field.IsCollapsed() {
		t.Errorf("unexpected field after formatting: %v", res.Field)
	}
	if res.Strategy != unistyle.ApplyStyle || !res.HasChanges {
		t.Errorf("unexpected result %+v", res)
	}
	//
	res, err = o.Format(ctx, Request{
		Field: selection.NewField("𝐇𝐞𝐥𝐥𝐨", 0, 5),
		Style: unistyle.Bold,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Field.Value != "Hello" || res.Strategy != unistyle.Toggle {
		t.Errorf("expected bold to be toggled off, have %+v", res)
	}
	//
	_, err = o.Format(ctx, Request{Field: selection.NewField("Hello", 2, 2), Style: unistyle.Bold})
	if !errors.Is(err, ErrEmptyText) {
		t.Errorf("expected empty selection to be flagged, have %v", err)
	}
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err = o.Format(cancelled, Request{Field: selection.NewField("Hello", 0, 5), Style: unistyle.Bold}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation to be reported, have %v", err)
	}
	stats := o.Statistics()
	t.Logf("statistics = %+v", stats)
	if stats.Total != 4 || stats.Successful != 2 || stats.Failed != 2 {
		t.Errorf("unexpected statistics %+v", stats)
	}
	if stats.AverageTime != 10*time.Millisecond {
		t.Errorf("expected average time of 10ms, have %v", stats.AverageTime)
	}
}

func TestOrchestratorSnapsSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	ctx := context.Background()
	o := NewOrchestrator(ctx, nil)
	defer o.Close()
	value := "a" + unistyle.Encode("bc", unistyle.Underline) + "d"
	res, err := o.Format(ctx, Request{Field: selection.NewField(value, 2, 4), Style: unistyle.Bold})
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(res.Existing, []unistyle.Style{unistyle.Underline}) {
		t.Errorf("expected underline to be detected, have %v", res.Existing)
	}
	if res.Strategy != unistyle.Incremental {
		t.Errorf("expected incremental strategy, have %v", res.Strategy)
	}
	if res.Field.Value != "a𝐛𝐜d" || res.Field.Start != 3 {
		t.Errorf("unexpected field %v", res.Field)
	}
}

func TestOrchestratorNotifications(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unistyle")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	o := NewOrchestrator(ctx, nil)
	defer o.Close()
	ch, ok := o.Subscribe(ctx, 4)
	if !ok {
		t.Fatal("cannot subscribe to orchestrator")
	}
	res, err := o.Format(ctx, Request{Field: selection.NewField("note", 0, 4), Style: unistyle.Strikethrough})
	if err != nil {
		t.Fatal(err)
	}
	select {
	case msg := <-ch:
		n, ok := msg.(Notification)
		if !ok {
			t.Fatalf("unexpected message type %T", msg)
		}
		if n.Result.ID != res.ID || !slices.Equal(n.Events, NotificationEvents) {
			t.Errorf("unexpected notification %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification received")
	}
}

func TestOrchestratorConcurrent(t *testing.T) {
	ctx := context.Background()
	o := NewOrchestrator(ctx, nil)
	defer o.Close()
	var wg sync.WaitGroup
	ids := make([]string, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := fmt.Sprintf("text %d", i)
			res, err := o.Format(ctx, Request{Field: selection.NewField(text, 0, 4), Style: unistyle.Italic})
			if err != nil {
				t.Error(err)
				return
			}
			ids[i] = res.ID
		}(i)
	}
	wg.Wait()
	if stats := o.Statistics(); stats.Total != 20 || stats.Successful != 20 {
		t.Errorf("unexpected statistics %+v", stats)
	}
	slices.Sort(ids)
	if len(slices.Compact(ids)) != 20 {
		t.Errorf("expected operation ids to be unique")
	}
}
