package kafka

import (
	"context"
	"errors"
	"salon/config"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	written []kafkaGo.Message
	err     error
	closed  bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	f.written = append(f.written, msgs...)

	return f.err
}

func (f *fakeWriter) Close() error {
	f.closed = true

	return nil
}

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := Message{
		Key:     "b-1",
		Value:   map[string]string{"status": "pending"},
		Headers: map[string]string{HeaderEventType: "booking.created", "source": "website"},
	}

	out, err := msg.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("b-1"), out.Key)
	assert.JSONEq(t, `{"status":"pending"}`, string(out.Value))
	assert.Equal(t, []kafkaGo.Header{
		{Key: HeaderEventType, Value: []byte("booking.created")},
		{Key: "source", Value: []byte("website")},
	}, out.Headers)

	bad := Message{Key: "x", Value: make(chan int)}
	_, err = bad.ToKafkaMessage()
	assert.Error(t, err)
}

func TestSendMessages(t *testing.T) {
	w := &fakeWriter{}
	client := &kafkaClientImpl{writer: w}

	err := client.SendMessages(context.Background(), "booking.events",
		Message{Key: "b-1", Value: 1},
		Message{Key: "b-2", Value: 2},
	)

	require.NoError(t, err)
	require.Len(t, w.written, 2)
	assert.Equal(t, "booking.events", w.written[0].Topic)
	assert.Equal(t, []byte("b-2"), w.written[1].Key)

	require.NoError(t, client.Close())
	assert.True(t, w.closed)
}

func TestSendMessages_Errors(t *testing.T) {
	w := &fakeWriter{err: errors.New("leader not available")}
	client := &kafkaClientImpl{writer: w}

	assert.ErrorContains(t, client.SendMessages(context.Background(), "t", Message{Key: "k", Value: 1}), "leader not available")

	err := client.SendMessages(context.Background(), "t", Message{Key: "k", Value: make(chan int)})
	assert.ErrorContains(t, err, "marshal")
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	client := New(&config.Config{})

	assert.IsType(t, noopClient{}, client)
	assert.NoError(t, client.SendMessages(context.Background(), "booking.events", Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
