package model

import "time"

// Request заявка на подбор преподавателя.
type Request struct {
	ID        int64     `json:"id"`
	Ref       string    `json:"ref"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Time      string    `json:"time"`              // сколько часов в неделю, например "3-5"
	GoalID    *int64    `json:"goal_id,omitempty"` // указатель - может быть nil
	CreatedAt time.Time `json:"created_at"`
}
