package model

import (
	"bytes"
	"strconv"
	"strings"
)

// OptFloat is a three-state patch field for decimal columns: absent (leave
// unchanged), cleared (write NULL), or a value. JSON null is treated as
// absent and an empty string as an explicit clear, matching how the intake
// forms submit prices.
type OptFloat struct {
	Set   bool
	Valid bool
	Value float64
}

func (o *OptFloat) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		o.Set = false
		return nil
	}

	s := strings.TrimSpace(string(b))
	if s == `""` {
		o.Set = true
		o.Valid = false
		return nil
	}

	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.Set = true
	o.Valid = true
	o.Value = v
	return nil
}

func (o OptFloat) MarshalJSON() ([]byte, error) {
	if !o.Set || !o.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(o.Value, 'f', -1, 64)), nil
}

// Ptr returns the value as a nullable pointer, nil when cleared.
func (o OptFloat) Ptr() *float64 {
	if !o.Valid {
		return nil
	}
	v := o.Value
	return &v
}
