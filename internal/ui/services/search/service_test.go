package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"yubin/internal/domain"
	"yubin/internal/ui/services/events"
)

func newTestService(t *testing.T) (*Service, *ManualScheduler, *[]uint64) {
	t.Helper()
	sched := NewManualScheduler()
	svc := NewService(&events.NullBus{}, sched, 200*time.Millisecond)
	var due []uint64
	svc.SetDueFunction(func(seq uint64) { due = append(due, seq) })
	return svc, sched, &due
}

func TestScheduleCoalescesBurst(t *testing.T) {
	svc, sched, due := newTestService(t)

	for _, q := range []string{"6", "60", "600"} {
		svc.SetQuery(q)
		svc.Schedule()
		sched.Advance(50 * time.Millisecond)
	}
	require.True(t, svc.IsSearching())
	require.Equal(t, 1, sched.Pending(), "superseded timers are stopped")
	require.Empty(t, *due)

	sched.Advance(200 * time.Millisecond)
	require.Len(t, *due, 1)

	req, ok := svc.Claim((*due)[0])
	require.True(t, ok)
	require.Equal(t, "600", req.Query)

	results, status := svc.Execute(req, kyoto)
	require.Equal(t, domain.StatusResults, status)
	require.Len(t, results, 2)
	require.False(t, svc.IsSearching())
}

func TestClaimRejectsStaleSequence(t *testing.T) {
	svc, _, _ := newTestService(t)

	svc.SetQuery("6")
	first := svc.Schedule()
	svc.SetQuery("60")
	second := svc.Schedule()

	_, ok := svc.Claim(first)
	require.False(t, ok)
	require.True(t, svc.IsSearching())

	req, ok := svc.Claim(second)
	require.True(t, ok)
	require.Equal(t, "60", req.Query)

	_, ok = svc.Claim(second)
	require.False(t, ok, "a sequence can be claimed once")
}

func TestCancelStopsPendingTimer(t *testing.T) {
	svc, sched, due := newTestService(t)

	svc.SetQuery("600")
	seq := svc.Schedule()
	svc.Cancel()

	require.False(t, svc.IsSearching())
	require.Zero(t, svc.PendingSeq())
	require.Zero(t, sched.Pending())

	sched.Advance(time.Second)
	require.Empty(t, *due)

	_, ok := svc.Claim(seq)
	require.False(t, ok)
}

func TestSetModeResetsQueryAndCancels(t *testing.T) {
	svc, sched, _ := newTestService(t)

	svc.SetQuery("600")
	svc.Schedule()
	svc.SetMode(domain.ModeAddress)

	require.Equal(t, domain.ModeAddress, svc.GetMode())
	require.Equal(t, "", svc.GetQuery())
	require.False(t, svc.IsSearching())
	require.Zero(t, sched.Pending())
}

func TestServicePublishesCompletion(t *testing.T) {
	bus := events.NewBus()
	var completed []SearchCompletedEvent
	bus.Subscribe("search.SearchCompletedEvent", func(e interface{}) {
		completed = append(completed, e.(SearchCompletedEvent))
	})

	svc := NewService(bus, NewManualScheduler(), 0)
	require.Equal(t, DefaultDebounce, svc.Delay())

	svc.SetMode(domain.ModeAddress)
	svc.SetQuery("上京区")
	seq := svc.Schedule()
	req, ok := svc.Claim(seq)
	require.True(t, ok)
	svc.Execute(req, kyoto)

	require.Len(t, completed, 1)
	require.Equal(t, 1, completed[0].MatchCount)
	require.Equal(t, domain.StatusResults, completed[0].Status)
}

func TestTimerSchedulerBurstClaimsOnce(t *testing.T) {
	svc := NewService(&events.NullBus{}, TimerScheduler{}, 10*time.Millisecond)
	fired := make(chan uint64, 8)
	svc.SetDueFunction(func(seq uint64) { fired <- seq })

	// the first timer is allowed to fire before it is superseded
	svc.SetQuery("6")
	first := svc.Schedule()
	select {
	case seq := <-fired:
		require.Equal(t, first, seq)
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	delivered := []uint64{first}
	var last uint64
	for _, q := range []string{"60", "600", "6008"} {
		svc.SetQuery(q)
		last = svc.Schedule()
	}

	timeout := time.After(200 * time.Millisecond)
collect:
	for {
		select {
		case seq := <-fired:
			delivered = append(delivered, seq)
		case <-timeout:
			break collect
		}
	}
	require.Contains(t, delivered, last)

	claimed := 0
	for _, seq := range delivered {
		if req, ok := svc.Claim(seq); ok {
			claimed++
			require.Equal(t, last, req.Seq)
			require.Equal(t, "6008", req.Query)
		}
	}
	require.Equal(t, 1, claimed)
}
