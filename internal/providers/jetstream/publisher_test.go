package jetstream_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	natsjs "github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/mocks"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/jetstream"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func testEvent() *domain.RunCompletedEvent {
	return &domain.RunCompletedEvent{
		RunID:      "01J0000000000000000000000A",
		Stage:      domain.StageListings,
		Status:     domain.RunStatusSucceeded,
		StartedAt:  time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt: time.Date(2024, 6, 1, 10, 5, 0, 0, time.UTC),
		Stats:      domain.NewStats(),
	}
}

func TestPublisher_PublishRunCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	conn := mocks.NewMockNatsConn(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect("nats://localhost:4222", gomock.Any()).Return(conn, js, nil)
	js.EXPECT().Publish(gomock.Any(), "ingest.runs.listings", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...natsjs.PublishOpt) (*natsjs.PubAck, error) {
			var event domain.RunCompletedEvent
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, "01J0000000000000000000000A", event.RunID)
			assert.Equal(t, domain.RunStatusSucceeded, event.Status)
			return &natsjs.PubAck{Stream: "INGEST"}, nil
		})
	conn.EXPECT().Close()

	pub, err := jetstream.NewPublisher(jetstream.Config{URL: "nats://localhost:4222"}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	require.NoError(t, pub.PublishRunCompleted(context.Background(), testEvent()))
	pub.Close()
}

func TestPublisher_CustomSubjectPrefix(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.NewMockNatsConn(ctrl), js, nil)
	js.EXPECT().Publish(gomock.Any(), "catalog.events.listings", gomock.Any()).Return(&natsjs.PubAck{}, nil)

	pub, err := jetstream.NewPublisher(jetstream.Config{SubjectPrefix: "catalog.events"}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	assert.NoError(t, pub.PublishRunCompleted(context.Background(), testEvent()))
}

func TestPublisher_PublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	js := mocks.NewMockJetStream(ctrl)

	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(mocks.NewMockNatsConn(ctrl), js, nil)
	js.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("no responders"))

	pub, err := jetstream.NewPublisher(jetstream.Config{}, natsJS, adapter.NewJSON())
	require.NoError(t, err)

	err = pub.PublishRunCompleted(context.Background(), testEvent())
	assert.ErrorContains(t, err, "failed to publish event: no responders")
}

func TestNewPublisher_ConnectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	natsJS := mocks.NewMockNatsJetStream(ctrl)
	natsJS.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, nil, errors.New("connection refused"))

	pub, err := jetstream.NewPublisher(jetstream.Config{URL: "nats://nowhere:4222"}, natsJS, adapter.NewJSON())

	assert.Nil(t, pub)
	assert.ErrorContains(t, err, "connection refused")
}
