package amqp

import (
	"encoding/json"
	"time"
)

// EntryRecordedMessage signals that an entry was appended. It carries only
// the ID and kind; the worker fetches the full entry from the database so
// the queue never holds stale copies of entry data.
type EntryRecordedMessage struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Timestamp time.Time `json:"timestamp"`
}

func NewEntryRecordedMessage(id int64, kind string) *EntryRecordedMessage {
	return &EntryRecordedMessage{
		ID:        id,
		Kind:      kind,
		Timestamp: time.Now(),
	}
}

func (m *EntryRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func EntryRecordedMessageFromJSON(data []byte) (*EntryRecordedMessage, error) {
	var msg EntryRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
