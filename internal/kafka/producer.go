package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/ariefcatur/go-seller-orders/internal/orders"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

var ErrProducerClosed = errors.New("kafka: producer closed")

// Producer buffers messages in an inbox drained by one goroutine.
type Producer struct {
	w         messageWriter
	inbox     chan kafka.Message
	done      chan struct{}
	log       *zap.Logger
	closeOnce sync.Once

	mu     sync.RWMutex // jaga closed & kirim ke inbox
	closed bool
}

func NewProducer(brokers []string, topic string, buf int, log *zap.Logger) *Producer {
	if log == nil {
		log = zap.NewNop()
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Error("kafka write failed", zap.String("topic", topic), zap.Int("messages", len(msgs)), zap.Error(err))
			}
		},
	}
	return newProducer(w, buf, log)
}

func newProducer(w messageWriter, buf int, log *zap.Logger) *Producer {
	return &Producer{
		w:     w,
		inbox: make(chan kafka.Message, buf),
		done:  make(chan struct{}),
		log:   log,
	}
}

func (p *Producer) Start() {
	go func() {
		defer close(p.done)
		for m := range p.inbox {
			if err := p.w.WriteMessages(context.Background(), m); err != nil {
				p.log.Error("kafka publish failed", zap.ByteString("key", m.Key), zap.Error(err))
			}
		}
		if err := p.w.Close(); err != nil {
			p.log.Warn("kafka writer close", zap.Error(err))
		}
	}()
}

func (p *Producer) Publish(ctx context.Context, key, value []byte, headers ...kafka.Header) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}
	select {
	case p.inbox <- kafka.Message{Key: key, Value: value, Time: time.Now(), Headers: headers}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Emit publishes an order event keyed by its order id.
func (p *Producer) Emit(ctx context.Context, env orders.Envelope) error {
	b, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return p.Publish(ctx, orders.PartitionKey(env.CorrelationID), b,
		kafka.Header{Key: "x-event-type", Value: []byte(env.EventType)},
		kafka.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(env.EventVersion))},
	)
}

// Close: tutup inbox -> flush & close writer. Publish setelah Close dapat
// ErrProducerClosed.
func (p *Producer) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.inbox)
		p.mu.Unlock()
	})
	<-p.done
}
