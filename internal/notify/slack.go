package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"
)

// SlackNotifier posts messages to a Slack incoming webhook from a single
// background worker. Notify never blocks: when the queue is full the message
// is dropped.
type SlackNotifier struct {
	webhookURL     string
	defaultChannel string
	timeout        time.Duration
	client         *http.Client

	mu     sync.RWMutex
	closed bool
	queue  chan Message
	done   chan struct{}
}

type SlackOptions struct {
	WebhookURL     string
	DefaultChannel string
	Timeout        time.Duration
	QueueSize      int
	Client         *http.Client
}

func NewSlackNotifier(opts SlackOptions) *SlackNotifier {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 100
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}

	n := &SlackNotifier{
		webhookURL:     opts.WebhookURL,
		defaultChannel: opts.DefaultChannel,
		timeout:        opts.Timeout,
		client:         opts.Client,
		queue:          make(chan Message, opts.QueueSize),
		done:           make(chan struct{}),
	}
	go n.run()
	return n
}

// Notify queues message for delivery to channel, or to the default channel
// when channel is empty.
func (n *SlackNotifier) Notify(message, channel string) {
	if channel == "" {
		channel = n.defaultChannel
	}

	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		log.Printf("⚠️  Slack notifier closed, dropping message for %s", channel)
		return
	}

	select {
	case n.queue <- Message{Text: message, Channel: channel}:
	default:
		log.Printf("⚠️  Slack queue full, dropping message for %s", channel)
	}
}

// Close stops accepting messages and waits until queued ones are sent or
// ctx is done.
func (n *SlackNotifier) Close(ctx context.Context) error {
	n.mu.Lock()
	if !n.closed {
		n.closed = true
		close(n.queue)
	}
	n.mu.Unlock()

	select {
	case <-n.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *SlackNotifier) run() {
	defer close(n.done)
	for msg := range n.queue {
		if err := n.send(msg); err != nil {
			log.Printf("❌ Error sending Slack notification: %v", err)
		}
	}
}

func (n *SlackNotifier) send(msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook %s -> %d: %s", msg.Channel, resp.StatusCode, string(b))
	}
	return nil
}
