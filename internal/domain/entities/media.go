package entities

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Base carries the identity and timestamps shared by every stored record.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id" bson:"_id" yaml:"-"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" yaml:"-"`
}

func (b *Base) Meta() *Base { return b }

// Ordered is embedded by list records; lists are sorted by Order ascending.
type Ordered struct {
	Order int `gorm:"column:sort_order" json:"order" bson:"order" yaml:"order"`
}

func (o Ordered) Position() int { return o.Order }

type metaCarrier interface {
	Meta() *Base
}

// MetaOf returns the Base embedded in v, or nil.
func MetaOf(v any) *Base {
	if m, ok := v.(metaCarrier); ok {
		return m.Meta()
	}
	return nil
}

// Validator is implemented by records that check their own fields.
type Validator interface {
	Validate() error
}

// Normalizer is implemented by records that fill defaults before storage.
type Normalizer interface {
	Normalize()
}

// StringList is stored as a JSON array in a text column.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("StringList: unsupported source type %T", src)
	}
	if len(raw) == 0 {
		*s = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("StringList: %w", err)
	}
	*s = out
	return nil
}
