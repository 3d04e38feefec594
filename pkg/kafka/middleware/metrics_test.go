package kafka_middleware

import (
	"context"
	"errors"
	"testing"

	"gallery/pkg/kafka"
)

func TestMetrics_Producer(t *testing.T) {
	m := NewMetrics()
	mw := m.ProducerMiddleware()
	ok := func(context.Context, kafka.Message) error { return nil }
	fail := func(context.Context, kafka.Message) error { return errors.New("boom") }

	_ = mw(context.Background(), kafka.Message{}, ok)
	_ = mw(context.Background(), kafka.Message{}, ok)
	if err := mw(context.Background(), kafka.Message{}, fail); err == nil {
		t.Fatal("middleware swallowed the error")
	}

	s := m.Snapshot()
	if s.Published != 2 || s.PublishFailed != 1 {
		t.Errorf("snapshot = %+v", s)
	}

	m.Reset()
	if s := m.Snapshot(); s.Published != 0 || s.AvgPublishDuration != 0 {
		t.Errorf("after reset snapshot = %+v", s)
	}
}

func TestMetrics_Consumer(t *testing.T) {
	m := NewMetrics()
	mw := m.ConsumerMiddleware()
	_ = mw(context.Background(), kafka.Message{}, func(context.Context, kafka.Message) error { return nil })
	_ = mw(context.Background(), kafka.Message{}, func(context.Context, kafka.Message) error { return errors.New("x") })

	s := m.Snapshot()
	if s.Consumed != 1 || s.ConsumeFailed != 1 {
		t.Errorf("snapshot = %+v", s)
	}
}
