package model

import "time"

type Teacher struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	About     string       `json:"about"`
	Rating    float64      `json:"rating"`
	Picture   string       `json:"picture"`
	Price     int          `json:"price"` // за час, в рублях
	Free      FreeSchedule `json:"free,omitempty"`
	CreatedAt time.Time    `json:"created_at"`

	// Дополнительные поля для удобства (не из БД)
	Goals []*Goal `json:"goals,omitempty"`
}
