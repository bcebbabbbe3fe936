package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"haul/internal/adapters/out/rabbitmq"
	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockConnection struct {
	mock.Mock
}

func (m *MockConnection) Channel() (rabbitmq.Channel, error) {
	args := m.Called()
	if ch, ok := args.Get(0).(rabbitmq.Channel); ok {
		return ch, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockConnection) Close() error {
	return m.Called().Error(0)
}

func (m *MockConnection) IsClosed() bool {
	return m.Called().Bool(0)
}

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) Confirm(noWait bool) error {
	return m.Called(noWait).Error(0)
}

func (m *MockChannel) PublishWithDeferredConfirmWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) (rabbitmq.Confirmation, error) {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	if c, ok := args.Get(0).(rabbitmq.Confirmation); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockChannel) IsClosed() bool {
	return m.Called().Bool(0)
}

func (m *MockChannel) Close() error {
	return m.Called().Error(0)
}

type MockConfirmation struct {
	mock.Mock
}

func (m *MockConfirmation) WaitContext(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func newEvent() ports.OutboxEvent {
	return ports.OutboxEvent{
		ID:        42,
		OrderID:   kernel.NewUUID(),
		EventType: "OrderStatusChanged",
		EventTime: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Payload:   []byte(`{"from":"Created","to":"Cancelled","changedBy":"bob"}`),
	}
}

// newOpenChannel returns a channel that accepts confirm mode and the exchange
// declaration and is never closed by the broker.
func newOpenChannel(exchange string) *MockChannel {
	ch := new(MockChannel)
	ch.On("Confirm", false).Return(nil)
	ch.On("ExchangeDeclare", exchange, "fanout", true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("IsClosed").Return(false)
	ch.On("Close").Return(nil)
	return ch
}

func acked(ok bool, err error) *MockConfirmation {
	c := new(MockConfirmation)
	c.On("WaitContext", mock.Anything).Return(ok, err)
	return c
}

func TestEventPublisher_Publish(t *testing.T) {
	event := newEvent()
	confirm := acked(true, nil)
	ch := newOpenChannel("orders")
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, "orders", "OrderStatusChanged", false, false, mock.Anything).
		Return(confirm, nil)
	conn := new(MockConnection)
	conn.On("Channel").Return(ch, nil)

	err := rabbitmq.NewEventPublisher(conn, "orders").Publish(context.Background(), event)

	require.NoError(t, err)
	ch.AssertCalled(t, "Confirm", false)
	ch.AssertCalled(t, "ExchangeDeclare", "orders", "fanout", true, false, false, false, amqp.Table(nil))
	confirm.AssertExpectations(t)
	ch.AssertNotCalled(t, "Close")

	var msg amqp.Publishing
	for _, call := range ch.Calls {
		if call.Method == "PublishWithDeferredConfirmWithContext" {
			msg = call.Arguments.Get(5).(amqp.Publishing)
		}
	}
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "42", msg.MessageId)
	assert.Equal(t, "OrderStatusChanged", msg.Type)

	var body rabbitmq.OrderEventMessage
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, int64(42), body.EventID)
	assert.Equal(t, event.OrderID.String(), body.OrderID)
	assert.Equal(t, event.EventTime, body.EventTime)
	assert.JSONEq(t, string(event.Payload), string(body.Payload))
}

func TestEventPublisher_ReusesChannel(t *testing.T) {
	ch := newOpenChannel("orders")
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, "orders", mock.Anything, false, false, mock.Anything).
		Return(acked(true, nil), nil)
	conn := new(MockConnection)
	conn.On("Channel").Return(ch, nil)
	publisher := rabbitmq.NewEventPublisher(conn, "orders")

	for range 3 {
		require.NoError(t, publisher.Publish(context.Background(), newEvent()))
	}

	conn.AssertNumberOfCalls(t, "Channel", 1)
	ch.AssertNumberOfCalls(t, "Confirm", 1)
	ch.AssertNumberOfCalls(t, "ExchangeDeclare", 1)
	ch.AssertNumberOfCalls(t, "PublishWithDeferredConfirmWithContext", 3)

	require.NoError(t, publisher.Close())
	ch.AssertNumberOfCalls(t, "Close", 1)
}

func TestEventPublisher_DefaultExchange(t *testing.T) {
	ch := newOpenChannel(rabbitmq.DefaultExchange)
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, rabbitmq.DefaultExchange, mock.Anything, false, false, mock.Anything).
		Return(acked(true, nil), nil)
	conn := new(MockConnection)
	conn.On("Channel").Return(ch, nil)

	require.NoError(t, rabbitmq.NewEventPublisher(conn, "").Publish(context.Background(), newEvent()))
	ch.AssertCalled(t, "ExchangeDeclare", rabbitmq.DefaultExchange, "fanout", true, false, false, false, amqp.Table(nil))
	ch.AssertNumberOfCalls(t, "PublishWithDeferredConfirmWithContext", 1)
}

func TestEventPublisher_Nacked(t *testing.T) {
	ch := newOpenChannel("orders")
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(acked(false, nil), nil)
	conn := new(MockConnection)
	conn.On("Channel").Return(ch, nil)

	err := rabbitmq.NewEventPublisher(conn, "orders").Publish(context.Background(), newEvent())

	require.ErrorIs(t, err, rabbitmq.ErrNotAcknowledged)
	assert.Contains(t, err.Error(), "event 42")
}

func TestEventPublisher_ConfirmFailureReopensChannel(t *testing.T) {
	boom := errors.New("channel closed by broker")
	first := newOpenChannel("orders")
	first.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(acked(false, boom), nil)
	second := newOpenChannel("orders")
	second.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(acked(true, nil), nil)
	conn := new(MockConnection)
	conn.On("Channel").Return(first, nil).Once()
	conn.On("Channel").Return(second, nil).Once()
	publisher := rabbitmq.NewEventPublisher(conn, "orders")

	err := publisher.Publish(context.Background(), newEvent())
	require.ErrorIs(t, err, boom)
	first.AssertCalled(t, "Close")

	require.NoError(t, publisher.Publish(context.Background(), newEvent()))
	conn.AssertNumberOfCalls(t, "Channel", 2)
}

func TestEventPublisher_Failures(t *testing.T) {
	boom := errors.New("boom")

	t.Run("channel", func(t *testing.T) {
		conn := new(MockConnection)
		conn.On("Channel").Return(nil, rabbitmq.ErrConnectionClosed)

		err := rabbitmq.NewEventPublisher(conn, "orders").Publish(context.Background(), newEvent())

		assert.ErrorIs(t, err, rabbitmq.ErrConnectionClosed)
	})

	t.Run("confirm mode", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("Confirm", false).Return(boom)
		ch.On("Close").Return(nil)
		conn := new(MockConnection)
		conn.On("Channel").Return(ch, nil)

		err := rabbitmq.NewEventPublisher(conn, "orders").Publish(context.Background(), newEvent())

		assert.ErrorIs(t, err, boom)
		ch.AssertNotCalled(t, "ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		ch.AssertCalled(t, "Close")
	})

	t.Run("declare", func(t *testing.T) {
		ch := new(MockChannel)
		ch.On("Confirm", false).Return(nil)
		ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(boom)
		ch.On("Close").Return(nil)
		conn := new(MockConnection)
		conn.On("Channel").Return(ch, nil)

		err := rabbitmq.NewEventPublisher(conn, "orders").Publish(context.Background(), newEvent())

		assert.ErrorIs(t, err, boom)
		ch.AssertNotCalled(t, "PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		ch.AssertCalled(t, "Close")
	})

	t.Run("publish", func(t *testing.T) {
		ch := newOpenChannel("orders")
		ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, boom)
		conn := new(MockConnection)
		conn.On("Channel").Return(ch, nil)

		err := rabbitmq.NewEventPublisher(conn, "orders").Publish(context.Background(), newEvent())

		assert.ErrorIs(t, err, boom)
		ch.AssertCalled(t, "Close")
	})
}
