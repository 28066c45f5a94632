package events

import (
	"errors"

	"github.com/fyrsmithlabs/bebop/pkg/collection"
)

// ErrEmptyAction is returned when a message is given an empty action.
var ErrEmptyAction = errors.New("events: message action must not be empty")

// Message is the payload delivered to subscribers.
type Message struct {
	action string
	data   *collection.Collection
}

// NewMessage builds a message. A nil data map yields an empty payload.
func NewMessage(action string, data *collection.Map) (*Message, error) {
	if action == "" {
		return nil, ErrEmptyAction
	}
	return &Message{action: action, data: collection.NewFrom(data)}, nil
}

func (m *Message) Action() string {
	return m.action
}

func (m *Message) SetAction(action string) error {
	if action == "" {
		return ErrEmptyAction
	}
	m.action = action
	return nil
}

// Data returns the payload as a dotted collection.
func (m *Message) Data() *collection.Collection {
	return m.data
}

// SetData replaces the payload.
func (m *Message) SetData(data *collection.Map) {
	m.data = collection.NewFrom(data)
}
