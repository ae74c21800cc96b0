package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var received []Event
	bus.Subscribe(EventTypeModerationAction, func(ctx context.Context, event Event) {
		received = append(received, event)
	})

	event := ModerationActionEvent{
		Action:      "kick",
		TargetID:    "42",
		ModeratorID: "7",
		Reason:      "spam",
	}
	bus.Emit(context.Background(), event)

	assert.Len(t, received, 1)
	assert.Equal(t, event, received[0])
}

func TestBus_OnlyMatchingTypeDelivered(t *testing.T) {
	bus := NewBus()

	moderationCount := 0
	leaderboardCount := 0
	bus.Subscribe(EventTypeModerationAction, func(ctx context.Context, event Event) {
		moderationCount++
	})
	bus.Subscribe(EventTypeLeaderboardPosted, func(ctx context.Context, event Event) {
		leaderboardCount++
	})

	bus.Emit(context.Background(), LeaderboardPostedEvent{Week: 23, RequestedBy: "7"})

	assert.Equal(t, 0, moderationCount)
	assert.Equal(t, 1, leaderboardCount)
}

func TestBus_MultipleHandlersSameType(t *testing.T) {
	bus := NewBus()

	count := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(EventTypeModerationAction, func(ctx context.Context, event Event) {
			count++
		})
	}

	bus.Emit(context.Background(), ModerationActionEvent{Action: "ban"})

	assert.Equal(t, 3, count)
}

func TestBus_EmitWithoutSubscribersIsNoop(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.Emit(context.Background(), ModerationActionEvent{Action: "timeout"})
	})
}
