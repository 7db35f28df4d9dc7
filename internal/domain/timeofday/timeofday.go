package timeofday

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time with no date component, stored as the offset
// from midnight. Values built from hours and minutes have minute resolution;
// Max is the single value that does not, marking the last instant of the day.
type TimeOfDay int64

const (
	Midnight TimeOfDay = 0
	Max      TimeOfDay = TimeOfDay(24*time.Hour - 1)
)

func New(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, ErrHourOutOfRange
	}
	if minute < 0 || minute > 59 {
		return 0, ErrMinuteOutOfRange
	}
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute), nil
}

// Of is New for values known to be valid. It panics otherwise.
func Of(hour, minute int) TimeOfDay {
	t, err := New(hour, minute)
	if err != nil {
		panic(fmt.Sprintf("timeofday.Of(%d, %d): %v", hour, minute, err))
	}
	return t
}

func (t TimeOfDay) Hour() int {
	return int(time.Duration(t) / time.Hour)
}

func (t TimeOfDay) Minute() int {
	return int(time.Duration(t) % time.Hour / time.Minute)
}

func (t TimeOfDay) Before(u TimeOfDay) bool { return t < u }

func (t TimeOfDay) After(u TimeOfDay) bool { return t > u }

// String renders 24-hour "HH:MM". Max renders as "23:59".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format12h renders "h:mmAM" / "h:mmPM", e.g. "9:05AM", "12:00PM".
func (t TimeOfDay) Format12h() string {
	h := t.Hour()
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d%s", h, t.Minute(), suffix)
}

// Parse24h accepts strict "HH:MM" (two-digit hour and minute). "24:00" is
// read as the midnight starting the day; any other hour 24 is rejected.
func Parse24h(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hour, ok := twoDigits(s[0:2])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minute, ok := twoDigits(s[3:5])
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if hour == 24 && minute == 0 {
		return Midnight, nil
	}
	t, err := New(hour, minute)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", err, s)
	}
	return t, nil
}

// Parse12h accepts "h:mma" as published by the upstream feed, e.g. "9:00am",
// "11:30PM". Surrounding whitespace and letter case are ignored.
func Parse12h(s string) (TimeOfDay, error) {
	v := strings.ToLower(strings.TrimSpace(s))

	var pm bool
	switch {
	case strings.HasSuffix(v, "am"):
	case strings.HasSuffix(v, "pm"):
		pm = true
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	v = v[:len(v)-2]

	hh, mm, found := strings.Cut(v, ":")
	if !found || len(hh) < 1 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minute, ok := twoDigits(mm)
	if !ok || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour %= 12
	if pm {
		hour += 12
	}
	return New(hour, minute)
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
