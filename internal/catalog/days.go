package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Days каталог дней недели: ключ -> отображаемое название.
// Загружается один раз при старте и дальше только читается.
type Days map[string]string

// LoadDays читает каталог дней из json-файла
func LoadDays(path string) (Days, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read days catalog: %w", err)
	}

	var days Days
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode days catalog: %w", err)
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("days catalog is empty: %s", path)
	}

	return days, nil
}

// Has проверяет что ключ дня есть в каталоге
func (d Days) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// Label возвращает отображаемое название дня
func (d Days) Label(key string) (string, bool) {
	label, ok := d[key]
	return label, ok
}
