package chat

import "time"

// Session captures one ephemeral journaling conversation. The thread it
// owns lives in memory only; the record store keeps the durable summary.
type Session struct {
	ID        string    `json:"id"`
	PresetID  string    `json:"presetId"`
	CreatedAt time.Time `json:"createdAt"`
}
