package interp

import (
	"context"
	"testing"

	"github.com/kestrelrts/missionvm/rules"
	"github.com/kestrelrts/missionvm/save"
	"github.com/stretchr/testify/require"
)

func boolp(b bool) *bool { return &b }

func TestInitTickDisposeWithEmptyTokProgram(t *testing.T) {
	w := newFakeWorld()
	in := New(w, 1)
	ctx := context.Background()

	require.NoError(t, in.Init(ctx, []byte{}, nil))
	require.Equal(t, 1, w.subscribeCalls)

	in.Tick(ctx, 0)
	in.Tick(ctx, 1)

	in.Dispose()
	require.Equal(t, 1, w.unsubCalls)
}

func TestReInitDisposesPriorSubscription(t *testing.T) {
	w := newFakeWorld()
	in := New(w, 1)
	ctx := context.Background()

	require.NoError(t, in.Init(ctx, []byte{}, nil))
	require.NoError(t, in.Init(ctx, []byte{}, nil))

	require.Equal(t, 2, w.subscribeCalls)
	require.Equal(t, 1, w.unsubCalls, "re-init must dispose the prior subscription exactly once")
}

func TestRuleRunnerReactsToForwardedUnitDiedEvent(t *testing.T) {
	w := newFakeWorld()
	eid := w.spawn(1, 0, 0, "Rifleman")

	script := &rules.MissionScript{
		Rules: []*rules.ScriptRule{
			{
				ID:      "onDeath",
				Trigger: &rules.TriggerDef{Type: "event", Name: "unitDied"},
				Actions: []*rules.ActionDef{{Type: "grantCredits", Side: 0, Credits: 100}},
				OnceP:   boolp(false),
			},
		},
	}

	in := New(w, 1)
	ctx := context.Background()
	require.NoError(t, in.Init(ctx, nil, script))

	in.Tick(ctx, 0)
	require.Equal(t, int32(0), in.runner.SideCash(0))

	// Simulate the host batching a kill notification between ticks 0 and 1.
	w.handlers.UnitDied(eid, 0)
	in.Tick(ctx, 1)
	require.Equal(t, int32(100), in.runner.SideCash(0))

	// The event only lives for the tick right after it's observed.
	in.Tick(ctx, 2)
	require.Equal(t, int32(100), in.runner.SideCash(0))
}

func TestSaveRestoreRoundTripForJSONOnlyMission(t *testing.T) {
	w := newFakeWorld()
	script := &rules.MissionScript{
		Rules: []*rules.ScriptRule{
			{
				ID:      "grant",
				Trigger: &rules.TriggerDef{Type: "timerRepeat", Start: 0, Interval: 1},
				Actions: []*rules.ActionDef{{Type: "grantCredits", Side: 0, Credits: 10}},
				OnceP:   boolp(false),
			},
		},
	}

	in := New(w, 1)
	ctx := context.Background()
	require.NoError(t, in.Init(ctx, nil, script))

	in.Tick(ctx, 0)
	in.Tick(ctx, 1)
	require.Equal(t, int32(20), in.runner.SideCash(0))

	snapshot := in.Save(save.DenseMap{})

	in2 := New(w, 1)
	require.NoError(t, in2.Init(ctx, nil, script))
	in2.Restore(snapshot, save.InverseMap{})
	require.Equal(t, int32(20), in2.runner.SideCash(0))

	in2.Tick(ctx, 2)
	require.Equal(t, int32(30), in2.runner.SideCash(0))
}

func TestBuildingCompletedFeedsConstructedEventLog(t *testing.T) {
	w := newFakeWorld()
	eid := w.spawn(0, 0, 0, "Barracks")

	in := New(w, 1)
	ctx := context.Background()
	require.NoError(t, in.Init(ctx, []byte{}, nil))

	w.handlers.BuildingCompleted(0, eid, "Barracks")
	got, ok := in.events.ConsumeConstructed(0)
	require.True(t, ok)
	require.Equal(t, int32(eid), got)
}
