package outbox

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/treasurehunt/payment-orchestrator/config"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testCfg() config.OutboxConfig {
	return config.OutboxConfig{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		MaxRetries:   3,
		BaseBackoff:  time.Millisecond,
		MaxBackoff:   time.Second,
	}
}

func TestDispatcher_Poll_PublishesAndMarksPublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOutboxRepository(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)

	events := []domain.OutboxEvent{
		{ID: 1, EventType: domain.EventPaymentSucceeded, AggregateID: "INV-1", Payload: []byte(`{}`)},
	}
	repo.EXPECT().Claim(gomock.Any(), 10).Return(events, nil)
	pub.EXPECT().Publish(gomock.Any(), "orchestrator.payment-events", gomock.Any()).Return("INV-1", uint64(42), nil)
	repo.EXPECT().MarkPublished(gomock.Any(), uint64(1), "INV-1", uint64(42)).Return(nil)

	d := New(repo, pub, testCfg(), "orchestrator", zerolog.Nop())
	n, err := d.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDispatcher_Poll_RetriesOnTransientPublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOutboxRepository(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)

	events := []domain.OutboxEvent{
		{ID: 7, RetryCount: 1, EventType: domain.EventVendorPayoutInitiated, AggregateID: "PO-7", Payload: []byte(`{}`)},
	}
	repo.EXPECT().Claim(gomock.Any(), 10).Return(events, nil)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return("", uint64(0), errors.New("bus unreachable"))
	repo.EXPECT().MarkFailed(gomock.Any(), uint64(7), gomock.Any(), "bus unreachable").Return(nil)

	d := New(repo, pub, testCfg(), "orchestrator", zerolog.Nop())
	n, err := d.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDispatcher_Poll_TombstonesAfterRetryBudgetExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOutboxRepository(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)

	events := []domain.OutboxEvent{
		{ID: 9, RetryCount: 3, EventType: domain.EventUserCreated, AggregateID: "user-9", Payload: []byte(`{}`)},
	}
	repo.EXPECT().Claim(gomock.Any(), 10).Return(events, nil)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return("", uint64(0), errors.New("poison"))
	repo.EXPECT().MarkTombstoned(gomock.Any(), uint64(9), "poison").Return(nil)

	d := New(repo, pub, testCfg(), "orchestrator", zerolog.Nop())
	n, err := d.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDispatcher_Poll_EmptyBatchIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOutboxRepository(ctrl)
	pub := mocks.NewMockEventPublisher(ctrl)

	repo.EXPECT().Claim(gomock.Any(), 10).Return(nil, nil)

	d := New(repo, pub, testCfg(), "orchestrator", zerolog.Nop())
	n, err := d.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
