//go:build unit

package timeofday_test

import (
	"testing"

	"restaurant-deals/internal/domain/timeofday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		first, err := timeofday.New(0, 0)
		require.NoError(t, err)
		assert.Equal(t, timeofday.Midnight, first)

		last, err := timeofday.New(23, 59)
		require.NoError(t, err)
		assert.Equal(t, 23, last.Hour())
		assert.Equal(t, 59, last.Minute())
		assert.True(t, last.Before(timeofday.Max))
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := timeofday.New(24, 0)
		assert.ErrorIs(t, err, timeofday.ErrHourOutOfRange)

		_, err = timeofday.New(-1, 0)
		assert.ErrorIs(t, err, timeofday.ErrHourOutOfRange)

		_, err = timeofday.New(10, 60)
		assert.ErrorIs(t, err, timeofday.ErrMinuteOutOfRange)
	})

	t.Run("Of panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { timeofday.Of(25, 0) })
	})
}

func TestParse24h(t *testing.T) {
	testCases := []struct {
		input   string
		want    timeofday.TimeOfDay
		wantErr bool
	}{
		{input: "00:00", want: timeofday.Of(0, 0)},
		{input: "09:00", want: timeofday.Of(9, 0)},
		{input: "14:30", want: timeofday.Of(14, 30)},
		{input: "23:59", want: timeofday.Of(23, 59)},
		{input: "24:00", want: timeofday.Midnight},
		{input: "24:01", wantErr: true},
		{input: "25:00", wantErr: true},
		{input: "12:60", wantErr: true},
		{input: "9:00", wantErr: true},
		{input: "09-00", wantErr: true},
		{input: "ab:cd", wantErr: true},
		{input: "", wantErr: true},
		{input: "2:30pm", wantErr: true},
		{input: " 09:00", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := timeofday.Parse24h(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse12h(t *testing.T) {
	testCases := []struct {
		input   string
		want    timeofday.TimeOfDay
		wantErr bool
	}{
		{input: "10:00am", want: timeofday.Of(10, 0)},
		{input: "10:00pm", want: timeofday.Of(22, 0)},
		{input: "2:00am", want: timeofday.Of(2, 0)},
		{input: "12:00am", want: timeofday.Of(0, 0)},
		{input: "12:00pm", want: timeofday.Of(12, 0)},
		{input: "11:59PM", want: timeofday.Of(23, 59)},
		{input: "  3:15Pm ", want: timeofday.Of(15, 15)},
		{input: "13:00pm", wantErr: true},
		{input: "0:30am", wantErr: true},
		{input: "3:5pm", wantErr: true},
		{input: "3:00", wantErr: true},
		{input: "3pm", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := timeofday.Parse12h(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, timeofday.ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	testCases := []struct {
		name   string
		input  timeofday.TimeOfDay
		want12 string
		want24 string
	}{
		{name: "midnight", input: timeofday.Midnight, want12: "12:00AM", want24: "00:00"},
		{name: "one am", input: timeofday.Of(1, 0), want12: "1:00AM", want24: "01:00"},
		{name: "noon", input: timeofday.Of(12, 0), want12: "12:00PM", want24: "12:00"},
		{name: "half past noon", input: timeofday.Of(12, 30), want12: "12:30PM", want24: "12:30"},
		{name: "evening", input: timeofday.Of(22, 30), want12: "10:30PM", want24: "22:30"},
		{name: "last instant", input: timeofday.Max, want12: "11:59PM", want24: "23:59"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want12, tc.input.Format12h())
			assert.Equal(t, tc.want24, tc.input.String())
		})
	}
}

func TestParse12hRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 30, 59} {
			tod := timeofday.Of(h, m)
			parsed, err := timeofday.Parse12h(tod.Format12h())
			require.NoError(t, err)
			assert.Equal(t, tod, parsed, tod.String())
		}
	}
}
