package usecases

import (
	"context"
	stderrors "errors"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ngmachado/web3-hooks/domain/entities"
	"github.com/ngmachado/web3-hooks/domain/errors"
	"github.com/ngmachado/web3-hooks/test/helpers"
	"github.com/ngmachado/web3-hooks/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMinAmount = "100000000000000000000"

type processFixture struct {
	fetcher   *mocks.MockEventFetcher
	formatter *mocks.MockMessageFormatter
	notifier  *mocks.MockNotifier
	repo      *mocks.MockDeliveryRepository
	metrics   *mocks.MockPipelineMetrics
}

func newProcessFixture(t *testing.T) (*processFixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &processFixture{
		fetcher:   mocks.NewMockEventFetcher(ctrl),
		formatter: mocks.NewMockMessageFormatter(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		repo:      mocks.NewMockDeliveryRepository(ctrl),
		metrics:   mocks.NewMockPipelineMetrics(ctrl),
	}

	return f, ctrl
}

func (f *processFixture) useCase(t *testing.T) *processJobUseCase {
	mockLogger := mocks.NewMockLogger(gomock.NewController(t))
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	return NewProcessJobUseCase(
		f.fetcher, f.formatter, f.notifier, f.repo, f.metrics, testMinAmount, mockLogger,
	).(*processJobUseCase)
}

func tokenEvents(n int) []entities.TokenEvent {
	events := make([]entities.TokenEvent, n)
	for i := range events {
		events[i] = entities.TokenEvent{
			ID:              helpers.RandomHash().Hex(),
			TransactionHash: helpers.RandomHash().Hex(),
			Token:           "0xabc",
			Account:         helpers.RandomAddress().Hex(),
			Amount:          big.NewInt(int64(i + 1)),
			BlockNumber:     uint64(12345 + i),
		}
	}
	return events
}

func TestProcessJobUseCase_Process(t *testing.T) {
	ctx := context.Background()
	job := entities.Job{TokenAddress: "0xABC", EventType: entities.EventTypeUpgrade, BlockNumber: 12345}

	t.Run("sends one message per event in order", func(t *testing.T) {
		f, ctrl := newProcessFixture(t)
		defer ctrl.Finish()

		events := tokenEvents(3)
		f.fetcher.EXPECT().
			FetchUpgradedEvents(ctx, "0xABC", testMinAmount, uint64(12345)).
			Return(events, nil)
		f.metrics.EXPECT().EventsFetched("upgrade", 3)

		for i, event := range events {
			f.formatter.EXPECT().Format(event, entities.EventTypeUpgrade).Return(string(rune('a'+i)), nil)
		}

		gomock.InOrder(
			f.notifier.EXPECT().Send(ctx, "a").Return(nil),
			f.notifier.EXPECT().Send(ctx, "b").Return(nil),
			f.notifier.EXPECT().Send(ctx, "c").Return(nil),
		)
		f.metrics.EXPECT().NotificationSent().Times(3)
		f.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(3)
		f.metrics.EXPECT().JobProcessed("upgrade")

		require.NoError(t, f.useCase(t).Process(ctx, job))
	})

	t.Run("downgrade job uses downgrade query", func(t *testing.T) {
		f, ctrl := newProcessFixture(t)
		defer ctrl.Finish()

		downgrade := entities.Job{TokenAddress: "0xdef", EventType: entities.EventTypeDowngrade, BlockNumber: 9}
		f.fetcher.EXPECT().
			FetchDowngradedEvents(ctx, "0xdef", testMinAmount, uint64(9)).
			Return(nil, nil)
		f.metrics.EXPECT().EventsFetched("downgrade", 0)
		f.metrics.EXPECT().JobProcessed("downgrade")

		require.NoError(t, f.useCase(t).Process(ctx, downgrade))
	})

	t.Run("fetch error sends nothing", func(t *testing.T) {
		f, ctrl := newProcessFixture(t)
		defer ctrl.Finish()

		queryErr := &errors.QueryError{Operation: "tokenUpgradedEvents", Err: stderrors.New("connection refused")}
		f.fetcher.EXPECT().
			FetchUpgradedEvents(ctx, "0xABC", testMinAmount, uint64(12345)).
			Return(nil, queryErr)
		f.metrics.EXPECT().JobFailed("upgrade")

		err := f.useCase(t).Process(ctx, job)
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrQuery)
	})

	t.Run("format error sends nothing", func(t *testing.T) {
		f, ctrl := newProcessFixture(t)
		defer ctrl.Finish()

		events := tokenEvents(2)
		f.fetcher.EXPECT().FetchUpgradedEvents(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(events, nil)
		f.metrics.EXPECT().EventsFetched("upgrade", 2)
		f.formatter.EXPECT().Format(events[0], entities.EventTypeUpgrade).Return("a", nil)
		f.formatter.EXPECT().Format(events[1], entities.EventTypeUpgrade).Return("", errors.ErrUnknownEventType)
		f.metrics.EXPECT().JobFailed("upgrade")

		err := f.useCase(t).Process(ctx, job)
		assert.ErrorIs(t, err, errors.ErrUnknownEventType)
	})

	t.Run("send error stops remaining messages", func(t *testing.T) {
		f, ctrl := newProcessFixture(t)
		defer ctrl.Finish()

		events := tokenEvents(3)
		f.fetcher.EXPECT().FetchUpgradedEvents(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(events, nil)
		f.metrics.EXPECT().EventsFetched("upgrade", 3)
		f.formatter.EXPECT().Format(gomock.Any(), entities.EventTypeUpgrade).Return("msg", nil).Times(3)

		gomock.InOrder(
			f.notifier.EXPECT().Send(ctx, "msg").Return(nil),
			f.notifier.EXPECT().Send(ctx, "msg").Return(&errors.NotifierError{Channel: "slack", StatusCode: 500}),
		)
		f.metrics.EXPECT().NotificationSent()
		f.metrics.EXPECT().NotificationFailed()
		f.metrics.EXPECT().JobFailed("upgrade")
		f.repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		err := f.useCase(t).Process(ctx, job)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "message 2 of 3")
	})

	t.Run("delivery save failure does not fail job", func(t *testing.T) {
		f, ctrl := newProcessFixture(t)
		defer ctrl.Finish()

		events := tokenEvents(1)
		f.fetcher.EXPECT().FetchUpgradedEvents(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(events, nil)
		f.metrics.EXPECT().EventsFetched("upgrade", 1)
		f.formatter.EXPECT().Format(events[0], entities.EventTypeUpgrade).Return("msg", nil)
		f.notifier.EXPECT().Send(ctx, "msg").Return(nil)
		f.metrics.EXPECT().NotificationSent()
		f.repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, d *entities.Delivery) error {
				assert.Equal(t, "0xABC", d.TokenAddress)
				assert.Equal(t, entities.EventTypeUpgrade, d.EventType)
				assert.Equal(t, events[0].TransactionHash, d.TransactionHash)
				assert.Equal(t, "msg", d.Message)
				return &errors.RepositoryError{Operation: "Save", Entity: "Delivery"}
			})
		f.metrics.EXPECT().JobProcessed("upgrade")

		require.NoError(t, f.useCase(t).Process(ctx, job))
	})
}

func TestProcessJobUseCase_WithoutOptionalDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetcher := mocks.NewMockEventFetcher(ctrl)
	formatter := mocks.NewMockMessageFormatter(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	events := tokenEvents(1)
	fetcher.EXPECT().FetchUpgradedEvents(gomock.Any(), "0xabc", "1", uint64(1)).Return(events, nil)
	formatter.EXPECT().Format(events[0], entities.EventTypeUpgrade).Return("msg", nil)
	notifier.EXPECT().Send(gomock.Any(), "msg").Return(nil)

	useCase := NewProcessJobUseCase(fetcher, formatter, notifier, nil, nil, "1", helpers.DiscardLogger())
	err := useCase.Process(context.Background(), entities.Job{
		TokenAddress: "0xabc",
		EventType:    entities.EventTypeUpgrade,
		BlockNumber:  1,
	})
	require.NoError(t, err)
}

func TestFetchEvents_UnknownType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := FetchEvents(context.Background(), mocks.NewMockEventFetcher(ctrl), "mint", "0xabc", "1", 1)
	assert.ErrorIs(t, err, errors.ErrUnknownEventType)
}
