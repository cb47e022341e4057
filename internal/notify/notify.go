// Package notify delivers best-effort chat notifications. Callers hand a
// message over and move on; delivery failures are logged and dropped.
package notify

import "log"

// Message is the webhook payload.
type Message struct {
	Text    string `json:"text"`
	Channel string `json:"channel"`
}

// LogNotifier only logs messages. It is used when no webhook is configured.
type LogNotifier struct {
	DefaultChannel string
}

func (n LogNotifier) Notify(message, channel string) {
	if channel == "" {
		channel = n.DefaultChannel
	}
	log.Printf("🔔 [%s] %s", channel, message)
}
