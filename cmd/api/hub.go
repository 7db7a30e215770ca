package main

import (
	"errors"
	"fmt"
	"sync"

	v1 "github.com/PaulBabatuyi/portfolio/proto/portfolio/admin/v1"
)

var errNotWatching = errors.New("admin has no inbox stream")

// StreamSender is the part of a WatchInbox stream the hub needs.
type StreamSender interface {
	Send(*v1.InboxEvent) error
}

// ConnectionHub tracks the admin WatchInbox streams. Streams are grouped by
// admin email so one admin can watch from several devices.
type ConnectionHub struct {
	mu      sync.RWMutex
	streams map[string]map[int64]StreamSender
	nextID  int64
}

func NewConnectionHub() *ConnectionHub {
	return &ConnectionHub{streams: make(map[string]map[int64]StreamSender)}
}

// Register adds a stream for email and returns the id to unregister it with.
func (h *ConnectionHub) Register(email string, s StreamSender) int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.streams[email]; !ok {
		h.streams[email] = make(map[int64]StreamSender)
	}

	h.nextID++
	id := h.nextID
	h.streams[email][id] = s
	return id
}

func (h *ConnectionHub) Unregister(email string, id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.streams[email]; ok {
		delete(conns, id)
		if len(conns) == 0 {
			delete(h.streams, email)
		}
	}
}

// Connected returns the number of registered streams.
func (h *ConnectionHub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, conns := range h.streams {
		n += len(conns)
	}
	return n
}

type target struct {
	email  string
	id     int64
	stream StreamSender
}

func (h *ConnectionHub) snapshot(email string) []target {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var out []target
	for e, conns := range h.streams {
		if email != "" && e != email {
			continue
		}
		for id, s := range conns {
			out = append(out, target{email: e, id: id, stream: s})
		}
	}
	return out
}

// SendToUser delivers ev to every stream of email, so an admin's other
// devices see the changes made from one of them. It tries all of them, drops
// the ones that fail and returns the first error.
func (h *ConnectionHub) SendToUser(email string, ev *v1.InboxEvent) error {
	targets := h.snapshot(email)
	if len(targets) == 0 {
		return fmt.Errorf("%w: %s", errNotWatching, email)
	}
	_, err := h.deliver(targets, ev)
	return err
}

// Broadcast delivers ev to every connected admin and returns how many
// streams received it.
func (h *ConnectionHub) Broadcast(ev *v1.InboxEvent) int {
	n, _ := h.deliver(h.snapshot(""), ev)
	return n
}

func (h *ConnectionHub) deliver(targets []target, ev *v1.InboxEvent) (int, error) {
	var firstErr error
	delivered := 0
	for _, t := range targets {
		if err := t.stream.Send(ev); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			h.Unregister(t.email, t.id)
			continue
		}
		delivered++
	}
	return delivered, firstErr
}
