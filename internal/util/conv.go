package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParsePage 解析分页参数，非法值回退为默认值，limit 不超过 MaxLimit
func ParsePage(pageStr, limitStr string) (page, limit int) {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// ParseOptionalTime 空字符串返回 nil；不带时区的格式按服务器本地时间解析
func ParseOptionalTime(s string) (*time.Time, error) {
	return parseOptionalTimeIn(s, time.Local)
}

func parseOptionalTimeIn(s string, loc *time.Location) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return &t, nil
	}
	for _, layout := range []string{LocalInputFormat, TimeFormat, DateFormat} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid time %q", s)
}

func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
