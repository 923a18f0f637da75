package model

import "time"

// Booking запись к учителю на конкретный день недели и час.
// Создаётся только через форму бронирования, после создания не меняется.
type Booking struct {
	ID        int64     `json:"id"`
	Ref       string    `json:"ref"` // код подтверждения для клиента
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Day       string    `json:"day"`  // ключ дня недели из каталога
	Time      string    `json:"time"` // формат "ЧЧ:00"
	TeacherID int64     `json:"teacher_id"`
	CreatedAt time.Time `json:"created_at"`
}
