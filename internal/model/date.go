package model

import (
	"bytes"
	"fmt"
	"time"
)

// DateLayout 仅日期的请求格式
const DateLayout = "2006-01-02"

// Date 请求中的日期，接受 RFC3339 或 2006-01-02（按 UTC 解析）
type Date struct {
	time.Time
}

// NewDate 包装 time.Time
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", b)
	}
	s := string(b[1 : len(b)-1])
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: want %s or RFC3339", s, DateLayout)
	}
	d.Time = t
	return nil
}
