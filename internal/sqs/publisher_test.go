package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"github.com/iyhunko/product-catalog/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testQueueURL = "https://sqs.us-east-1.amazonaws.com/123456789/catalog-events"

// mockSQSClient is a mock implementation of the SQS client for testing.
type mockSQSClient struct {
	sendMessageFunc func(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

func (m *mockSQSClient) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.sendMessageFunc != nil {
		return m.sendMessageFunc(ctx, params, optFns...)
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestPublisher_Notify(t *testing.T) {
	t.Run("publishes deleted event as JSON", func(t *testing.T) {
		// given
		event := model.Event{
			ID:         uuid.New(),
			Action:     model.EventActionDeleted,
			ProductID:  2,
			Name:       "Sabun",
			Price:      2000,
			Stock:      20,
			OccurredAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		}

		var sent EventMessage
		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				assert.Equal(t, testQueueURL, *params.QueueUrl)
				require.NotNil(t, params.MessageBody)
				require.NoError(t, json.Unmarshal([]byte(*params.MessageBody), &sent))
				return &sqs.SendMessageOutput{MessageId: aws.String("test-message-id")}, nil
			},
		}
		publisher := NewPublisher(mockClient, testQueueURL)

		// when
		err := publisher.Notify(context.Background(), event)

		// then
		require.NoError(t, err)
		assert.Equal(t, event.ID.String(), sent.EventID)
		assert.Equal(t, "deleted", sent.Action)
		assert.Equal(t, int64(2), sent.ProductID)
		assert.Equal(t, "Sabun", sent.Name)
		assert.Equal(t, 2000.0, sent.Price)
		assert.Equal(t, 20.0, sent.Stock)
		assert.True(t, event.OccurredAt.Equal(sent.OccurredAt))
	})

	t.Run("error sending message", func(t *testing.T) {
		// given
		expectedErr := errors.New("queue unavailable")
		mockClient := &mockSQSClient{
			sendMessageFunc: func(_ context.Context, _ *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
				return nil, expectedErr
			},
		}
		publisher := NewPublisher(mockClient, testQueueURL)

		// when
		err := publisher.Notify(context.Background(), model.NewProductEvent(model.EventActionDeleted, model.Product{ID: 1, Name: "Odol"}))

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, expectedErr)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}

func TestNewPublisher(t *testing.T) {
	mockClient := &mockSQSClient{}

	publisher := NewPublisher(mockClient, testQueueURL)

	require.NotNil(t, publisher)
	assert.Equal(t, testQueueURL, publisher.queueURL)
	assert.Equal(t, mockClient, publisher.client)
}
