package kafka

import (
	"context"
	"errors"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Handler returns nil only when the message is done and its offset may be
// committed.
type Handler func(ctx context.Context, m kafka.Message) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	r       messageReader
	workers int
	log     *zap.Logger
}

func NewConsumer(brokers []string, group, topic string, workers int, log *zap.Logger) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // commit manual, hanya setelah handler sukses
	})
	return newConsumer(r, workers, log)
}

func newConsumer(r messageReader, workers int, log *zap.Logger) *Consumer {
	if workers <= 0 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{r: r, workers: workers, log: log}
}

// Start dispatches messages to the worker pool until ctx is cancelled or
// the reader fails.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	jobs := make(chan kafka.Message, c.workers)
	var wg sync.WaitGroup
	for i := 0; i < c.workers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for m := range jobs {
				if err := h(ctx, m); err != nil {
					c.log.Error("handle message", zap.Int("worker", id), zap.Int("partition", m.Partition),
						zap.Int64("offset", m.Offset), zap.Error(err))
					continue
				}
				if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
					c.log.Error("commit offset", zap.Int64("offset", m.Offset), zap.Error(err))
				}
			}
		}(i)
	}
	defer wg.Wait()
	defer close(jobs)

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		select {
		case jobs <- m:
		case <-ctx.Done():
			return nil
		}
	}
}
