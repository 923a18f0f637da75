package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrMalformedSchedule означает что сохранённое расписание не удалось
// раскодировать. Это повреждение данных, ошибку нельзя глотать.
var ErrMalformedSchedule = errors.New("malformed free schedule")

// FreeSchedule свободное время учителя: ключ дня недели -> список
// свободных часов. В БД хранится в сериализованном виде, раскодируется
// и кодируется только здесь.
type FreeSchedule map[string][]int

// DecodeFreeSchedule раскодирует расписание из сериализованного вида
func DecodeFreeSchedule(raw []byte) (FreeSchedule, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty column", ErrMalformedSchedule)
	}

	var free FreeSchedule
	if err := json.Unmarshal(raw, &free); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}

	return free, nil
}

// Encode кодирует расписание для записи в БД
func (f FreeSchedule) Encode() ([]byte, error) {
	raw, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode free schedule: %w", err)
	}
	return raw, nil
}

// HasSlot проверяет что час есть в списке свободных для этого дня.
// Отсутствующий день считается занятым.
func (f FreeSchedule) HasSlot(day string, hour int) bool {
	return slices.Contains(f[day], hour)
}
