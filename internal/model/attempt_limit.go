package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AttemptLimit 最大作答次数。零值表示不限次数，落库为 NULL。
type AttemptLimit struct {
	max     int
	limited bool
}

func Unlimited() AttemptLimit {
	return AttemptLimit{}
}

func LimitOf(n int) AttemptLimit {
	return AttemptLimit{max: n, limited: true}
}

func (l AttemptLimit) IsUnlimited() bool {
	return !l.limited
}

// Max 返回上限；不限次数时 ok 为 false
func (l AttemptLimit) Max() (n int, ok bool) {
	return l.max, l.limited
}

// Allows 已提交 used 次后是否还能再作答
func (l AttemptLimit) Allows(used int) bool {
	if !l.limited {
		return true
	}
	return used < l.max
}

func (l AttemptLimit) String() string {
	if !l.limited {
		return "unlimited"
	}
	return strconv.Itoa(l.max)
}

func (AttemptLimit) GormDataType() string {
	return "int"
}

func (l AttemptLimit) Value() (driver.Value, error) {
	if !l.limited {
		return nil, nil
	}
	return int64(l.max), nil
}

func (l *AttemptLimit) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = Unlimited()
	case int64:
		*l = LimitOf(int(v))
	case int32:
		*l = LimitOf(int(v))
	case int:
		*l = LimitOf(v)
	case float64:
		*l = LimitOf(int(v))
	case []byte:
		return l.parse(string(v))
	case string:
		return l.parse(v)
	default:
		return fmt.Errorf("attempt limit: unsupported type %T", src)
	}
	return nil
}

func (l *AttemptLimit) parse(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*l = Unlimited()
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("attempt limit: %w", err)
	}
	*l = LimitOf(n)
	return nil
}

func (l AttemptLimit) MarshalJSON() ([]byte, error) {
	if !l.limited {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(l.max)), nil
}

// UnmarshalJSON 接受 null、数字，以及管理端表单提交的字符串（"" 视为不限次数）
func (l *AttemptLimit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = Unlimited()
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return l.parse(s)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("attempt limit: %w", err)
	}
	*l = LimitOf(n)
	return nil
}
