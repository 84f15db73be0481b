package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nihatdadaloglu/oda/internal/utils"
)

// TimestampLayout 所有时间字段统一的存储和输出格式（UTC，定长，字典序即时间序）
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp 以统一文本格式存储和序列化的时间
type Timestamp struct {
	time.Time
}

// NewTimestamp 转换为UTC并截断到微秒
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Microsecond)}
}

// ParseTimestamp 解析统一格式，兼容 RFC3339
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
	}
	return NewTimestamp(t), nil
}

func (t Timestamp) String() string {
	return t.Time.UTC().Format(TimestampLayout)
}

// MarshalJSON 实现 json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON 实现 json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value 实现 driver.Valuer
func (t Timestamp) Value() (driver.Value, error) {
	return t.String(), nil
}

// Scan 实现 sql.Scanner
func (t *Timestamp) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Timestamp{}
		return nil
	case string:
		parsed, err := ParseTimestamp(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

// StringList 以JSON数组文本存储的字符串列表
type StringList []string

// Value 实现 driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	return utils.FormatStringList(l)
}

// Scan 实现 sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	items, err := utils.ParseStringList(raw)
	if err != nil {
		return err
	}
	*l = items
	return nil
}

// MarshalJSON 空列表输出为 []
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
