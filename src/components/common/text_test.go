package common

import (
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.Local)
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"zero", time.Time{}, ""},
		{"seconds", now.Add(-30 * time.Second), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m"},
		{"almost an hour", now.Add(-59 * time.Minute), "59m"},
		{"hours", now.Add(-2 * time.Hour), "2h"},
		{"days", now.Add(-3 * 24 * time.Hour), "3d"},
		{"weeks", now.Add(-10 * 24 * time.Hour), "May 10, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.t, now))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hello wo…", Truncate("hello world", 9))
	assert.Equal(t, "a b", Truncate("a\n  b", 10))
	assert.Equal(t, "", Truncate("anything", 0))
	assert.LessOrEqual(t, runewidth.StringWidth(Truncate("日本語のテキスト", 7)), 7)
}

func TestAvatarColorIsStable(t *testing.T) {
	a := AvatarColor("seed=alice")
	assert.Equal(t, a, AvatarColor("seed=alice"))
	assert.NotEmpty(t, string(a))
	assert.Equal(t, byte('#'), string(a)[0])
}
