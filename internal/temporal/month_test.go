package temporal

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestMonth(t *testing.T) {
	m1, err := NewMonth(1, 2021)
	require.NoError(t, err)
	assert.Equal(t, "January", m1.Name())
	assert.Equal(t, 2021, m1.Year())

	m2, err := NewMonth(9, 2021)
	require.NoError(t, err)
	assert.Equal(t, "September", m2.Name())
	assert.Equal(t, date(2021, 9, 1), m2.StartDate())
	assert.Equal(t, date(2021, 9, 30), m2.EndDate())
	assert.Equal(t, "Month(September)", m2.String())
}

func TestMonth_EndDateLeapYears(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{2024, 29},
		{2028, 29},
		{2021, 28},
		{2000, 29},
		{1900, 28},
		{2100, 28},
	}

	for _, tt := range tests {
		m, err := NewMonth(2, tt.year)
		require.NoError(t, err)
		assert.Equal(t, tt.want, m.EndDate().Day, "February %d", tt.year)
		assert.Equal(t, tt.want == 29, IsLeap(tt.year))
	}
}

func TestMonth_StartAndEndShareMonth(t *testing.T) {
	for year := 1999; year <= 2005; year++ {
		for month := 1; month <= 12; month++ {
			m, err := NewMonth(month, year)
			require.NoError(t, err)

			start, end := m.StartDate(), m.EndDate()
			assert.Equal(t, 1, start.Day)
			assert.Equal(t, time.Month(month), start.Month)
			assert.Equal(t, time.Month(month), end.Month)
			assert.True(t, end.IsValid())
			assert.False(t, end.Before(start))
			// the day after the end date is the first of the next month
			assert.Equal(t, 1, end.AddDays(1).Day)
		}
	}
}

func TestNewMonth_Invalid(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, err := NewMonth(month, 2021)
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestMonth_Contains(t *testing.T) {
	m, err := NewMonth(2, 2024)
	require.NoError(t, err)
	assert.True(t, m.Contains(date(2024, 2, 29)))
	assert.False(t, m.Contains(date(2024, 3, 1)))
	assert.False(t, m.Contains(date(2023, 2, 1)))
}
