package model

// Goal цель занятий, например "Для путешествий".
// Key - стабильный слаг, используется в URL для фильтрации учителей.
type Goal struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Title string `json:"title"`
}
