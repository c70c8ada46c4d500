package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange, key string
	msg           amqp.Publishing
}

type fakeChannel struct {
	declareErr error
	publishErr error
	declared   []string
	sent       []published
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, _, _, _ bool, _ amqp.Table) error {
	f.declared = append(f.declared, name+"/"+kind)
	return f.declareErr
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newAMQPPublisher(ch, "filevault.events")
	require.NoError(t, err)
	assert.Equal(t, []string{"filevault.events/topic"}, ch.declared)

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	e := New(LinkCreated, at)
	e.OwnerID, e.RecordID, e.Token = 1, 7, "tok1"

	require.NoError(t, p.Publish(context.Background(), e))
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "filevault.events", got.exchange)
	assert.Equal(t, "share.created", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, e.ID, got.msg.MessageId)

	var decoded Event
	require.NoError(t, json.Unmarshal(got.msg.Body, &decoded))
	assert.Equal(t, e, decoded)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisher_Errors(t *testing.T) {
	_, err := newAMQPPublisher(&fakeChannel{declareErr: errors.New("access refused")}, "x")
	assert.ErrorContains(t, err, `declare exchange "x"`)

	p, err := newAMQPPublisher(&fakeChannel{publishErr: errors.New("channel closed")}, "x")
	require.NoError(t, err)
	err = p.Publish(context.Background(), New(FileDeleted, time.Now()))
	assert.ErrorContains(t, err, "publish file.deleted: channel closed")
}

func TestNew(t *testing.T) {
	at := time.Date(2026, 3, 1, 13, 0, 0, 0, time.FixedZone("MSK", 3*3600))
	a, b := New(FileRegistered, at), New(FileRegistered, at)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, time.UTC, a.OccurredAt.Location())
	assert.True(t, a.OccurredAt.Equal(at))
}
