package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
)

// localBuffer is the per-subscriber channel capacity. A subscriber that
// stops draining loses events past this point; persistent events remain
// recoverable through catchup.
const localBuffer = 256

// localSub is one in-process subscriber
type localSub struct {
	id string
	ch chan []byte
}

// Subscribe returns a channel of raw event payloads for one job: the
// persisted log is replayed first (with db_event_id injected), then live
// events stream until a terminal job event arrives or the subscription is
// cancelled. The returned cancel function is safe to call more than once
// via sync semantics of the tracking map; the channel closes on terminal
// events and on cancel.
func (m *ConnectionManager) Subscribe(ctx context.Context, jobID string) (<-chan []byte, func(), error) {
	channel := JobChannel(jobID)
	sub := &localSub{
		id: uuid.New().String(),
		ch: make(chan []byte, localBuffer),
	}

	// Register before catchup so no live event slips between the replay
	// query and the first broadcast. Duplicates across the boundary are
	// possible; consumers dedupe on db_event_id.
	m.localMu.Lock()
	if m.locals[channel] == nil {
		m.locals[channel] = make(map[string]*localSub)
	}
	m.locals[channel][sub.id] = sub
	m.localMu.Unlock()

	if err := m.ensureListen(channel); err != nil {
		m.removeLocal(channel, sub.id)
		return nil, nil, err
	}

	if m.catchupQuerier != nil {
		events, err := m.catchupQuerier.GetCatchupEvents(ctx, channel, 0, catchupLimit)
		if err != nil {
			m.removeLocal(channel, sub.id)
			return nil, nil, err
		}
		for _, evt := range events {
			evt.Payload["db_event_id"] = evt.ID
			payload, err := json.Marshal(evt.Payload)
			if err != nil {
				continue
			}
			select {
			case sub.ch <- payload:
			default:
				slog.Warn("Local subscriber replay overflow", "channel", channel)
			}
		}
	}

	cancel := func() { m.removeLocal(channel, sub.id) }
	return sub.ch, cancel, nil
}

// removeLocal unregisters a local subscriber and closes its channel
func (m *ConnectionManager) removeLocal(channel, id string) {
	m.localMu.Lock()
	subs := m.locals[channel]
	sub, exists := subs[id]
	if exists {
		delete(subs, id)
		if len(subs) == 0 {
			delete(m.locals, channel)
		}
	}
	m.localMu.Unlock()

	if exists {
		close(sub.ch)
		m.maybeUnlisten(channel)
	}
}

// broadcastLocal fans an event out to the channel's in-process subscribers.
// Terminal job events close the subscription after delivery.
func (m *ConnectionManager) broadcastLocal(channel string, event []byte) {
	m.localMu.Lock()
	subs := make([]*localSub, 0, len(m.locals[channel]))
	for _, sub := range m.locals[channel] {
		subs = append(subs, sub)
	}
	m.localMu.Unlock()

	if len(subs) == 0 {
		return
	}

	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			slog.Warn("Local subscriber overflow, dropping event", "channel", channel)
		}
	}

	if isTerminalEvent(event) {
		for _, sub := range subs {
			m.removeLocal(channel, sub.id)
		}
	}
}

// isTerminalEvent reports whether the payload ends a job's event stream
func isTerminalEvent(event []byte) bool {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(event, &envelope); err != nil {
		return false
	}
	return envelope.Type == EventTypeJobComplete || envelope.Type == EventTypeJobFailed
}
