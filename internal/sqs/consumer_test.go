package sqs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSQSConsumerClient is a mock implementation of the SQS client for consumer testing.
type mockSQSConsumerClient struct {
	receiveMessageFunc func(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	deleteMessageFunc  func(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

func (m *mockSQSConsumerClient) ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	if m.receiveMessageFunc != nil {
		return m.receiveMessageFunc(ctx, params, optFns...)
	}
	return &sqs.ReceiveMessageOutput{Messages: []types.Message{}}, nil
}

func (m *mockSQSConsumerClient) DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	if m.deleteMessageFunc != nil {
		return m.deleteMessageFunc(ctx, params, optFns...)
	}
	return &sqs.DeleteMessageOutput{}, nil
}

const deletedEventBody = `{"event_id":"5b0c1a1e-6a55-4d5e-9d0c-2f8f6a2f0b11","action":"deleted","product_id":2,"name":"Sabun","price":2000,"stock":20,"occurred_at":"2025-01-02T03:04:05Z"}`

func TestConsumer_processMessage(t *testing.T) {
	t.Run("passes decoded event to handler", func(t *testing.T) {
		// given
		var got EventMessage
		consumer := NewConsumer(&mockSQSConsumerClient{}, testQueueURL).WithHandler(func(_ context.Context, msg EventMessage) error {
			got = msg
			return nil
		})
		message := types.Message{
			Body:          aws.String(deletedEventBody),
			ReceiptHandle: aws.String("test-receipt-handle"),
		}

		// when
		err := consumer.processMessage(context.Background(), message)

		// then
		require.NoError(t, err)
		assert.Equal(t, "deleted", got.Action)
		assert.Equal(t, int64(2), got.ProductID)
		assert.Equal(t, "Sabun", got.Name)
	})

	t.Run("default handler logs", func(t *testing.T) {
		consumer := NewConsumer(&mockSQSConsumerClient{}, testQueueURL)

		err := consumer.processMessage(context.Background(), types.Message{Body: aws.String(deletedEventBody)})

		require.NoError(t, err)
	})

	t.Run("nil message body", func(t *testing.T) {
		consumer := NewConsumer(&mockSQSConsumerClient{}, testQueueURL)

		err := consumer.processMessage(context.Background(), types.Message{ReceiptHandle: aws.String("test-receipt-handle")})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "message body is nil")
	})

	t.Run("invalid JSON message body", func(t *testing.T) {
		consumer := NewConsumer(&mockSQSConsumerClient{}, testQueueURL)

		err := consumer.processMessage(context.Background(), types.Message{Body: aws.String(`{"invalid json`)})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal message")
	})

	t.Run("handler error", func(t *testing.T) {
		consumer := NewConsumer(&mockSQSConsumerClient{}, testQueueURL).WithHandler(func(context.Context, EventMessage) error {
			return errors.New("boom")
		})

		err := consumer.processMessage(context.Background(), types.Message{Body: aws.String(deletedEventBody)})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to handle event")
	})
}

func TestConsumer_receiveMessages(t *testing.T) {
	t.Run("deletes only successfully handled messages", func(t *testing.T) {
		// given
		var deleted []string
		mockClient := &mockSQSConsumerClient{
			receiveMessageFunc: func(_ context.Context, params *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
				assert.Equal(t, testQueueURL, *params.QueueUrl)
				return &sqs.ReceiveMessageOutput{
					Messages: []types.Message{
						{Body: aws.String(deletedEventBody), ReceiptHandle: aws.String("good")},
						{Body: aws.String(`{"invalid json`), ReceiptHandle: aws.String("bad")},
					},
				}, nil
			},
			deleteMessageFunc: func(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
				deleted = append(deleted, *params.ReceiptHandle)
				return &sqs.DeleteMessageOutput{}, nil
			},
		}
		consumer := NewConsumer(mockClient, testQueueURL)

		// when
		err := consumer.receiveMessages(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"good"}, deleted)
	})

	t.Run("receive error", func(t *testing.T) {
		mockClient := &mockSQSConsumerClient{
			receiveMessageFunc: func(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
				return nil, errors.New("failed to receive")
			},
		}
		consumer := NewConsumer(mockClient, testQueueURL)

		err := consumer.receiveMessages(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to receive messages")
	})

	t.Run("delete error is not fatal", func(t *testing.T) {
		mockClient := &mockSQSConsumerClient{
			receiveMessageFunc: func(_ context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
				return &sqs.ReceiveMessageOutput{Messages: []types.Message{{Body: aws.String(deletedEventBody), ReceiptHandle: aws.String("h")}}}, nil
			},
			deleteMessageFunc: func(_ context.Context, _ *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
				return nil, errors.New("failed to delete")
			},
		}
		consumer := NewConsumer(mockClient, testQueueURL)

		require.NoError(t, consumer.receiveMessages(context.Background()))
	})
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	mockClient := &mockSQSConsumerClient{
		receiveMessageFunc: func(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	consumer := NewConsumer(mockClient, testQueueURL)

	done := make(chan error, 1)
	go func() { done <- consumer.Start(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancel")
	}
}
