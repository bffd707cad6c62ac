package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList é uma lista de strings persistida como JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// DayWindow define a janela de atendimento de um dia ("09:00" - "18:00").
type DayWindow struct {
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
}

// WeekSchedule mapeia dia da semana ("segunda", ...) para a janela do dia.
type WeekSchedule map[string]DayWindow

func (s WeekSchedule) Value() (driver.Value, error) {
	if s == nil {
		return "{}", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *WeekSchedule) Scan(src any) error {
	return scanJSON(src, s)
}

func scanJSON(src any, dst any) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported json column source")
	}
}
