package temporal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuarter_MonthsLeapYear(t *testing.T) {
	q, err := NewQuarter(4, 2023)
	require.NoError(t, err)

	m, err := q.Month(1)
	require.NoError(t, err)
	assert.Equal(t, date(2024, 2, 1), m.StartDate())
	assert.Equal(t, date(2024, 2, 29), m.EndDate())
}

func TestQuarter_HasMonths(t *testing.T) {
	q, err := NewQuarter(1, 2021)
	require.NoError(t, err)
	q4, err := NewQuarter(4, 2021)
	require.NoError(t, err)

	months := q.Months()
	require.Len(t, months, 3)
	assert.Equal(t, date(2021, 4, 1), months[0].StartDate())
	assert.Equal(t, date(2021, 5, 1), months[1].StartDate())
	assert.Equal(t, date(2021, 6, 1), months[2].StartDate())

	months = q4.Months()
	require.Len(t, months, 3)
	assert.Equal(t, date(2022, 1, 1), months[0].StartDate())
	assert.Equal(t, date(2022, 2, 1), months[1].StartDate())
	assert.Equal(t, date(2022, 3, 1), months[2].StartDate())
}

func TestQuarter_MonthIndexOutOfRange(t *testing.T) {
	for qn := 1; qn <= 4; qn++ {
		q, err := NewQuarter(qn, 2021)
		require.NoError(t, err)

		_, err = q.Month(3)
		assert.ErrorIs(t, err, ErrMonthIndex)
		_, err = q.Month(-1)
		assert.ErrorIs(t, err, ErrMonthIndex)
	}
}

func TestQuarter_ConsecutiveMonths(t *testing.T) {
	tests := []struct {
		quarter   int
		first     int
		yearShift int
		start     string
		end       string
	}{
		{1, 4, 0, "2021-04-01", "2021-06-30"},
		{2, 7, 0, "2021-07-01", "2021-09-30"},
		{3, 10, 0, "2021-10-01", "2021-12-31"},
		{4, 1, 1, "2022-01-01", "2022-03-31"},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			q, err := NewQuarter(tt.quarter, 2021)
			require.NoError(t, err)

			for i, m := range q.Months() {
				assert.Equal(t, tt.first+i, m.Number())
				assert.Equal(t, 2021+tt.yearShift, m.Year())
			}
			assert.Equal(t, tt.start, q.StartDate().String())
			assert.Equal(t, tt.end, q.EndDate().String())
		})
	}
}

func TestNewQuarter_Validation(t *testing.T) {
	tests := []struct {
		name    string
		quarter int
		year    int
		wantErr error
	}{
		{"quarter zero", 0, 2021, ErrInvalidQuarter},
		{"quarter five", 5, 2021, ErrInvalidQuarter},
		{"year too early", 1, 1949, ErrInvalidYear},
		{"year too late", 1, 2100, ErrInvalidYear},
		{"lowest year", 1, 1950, nil},
		{"highest year", 4, 2099, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewQuarter(tt.quarter, tt.year)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestQuarter_String(t *testing.T) {
	q, err := NewQuarter(3, 2019)
	require.NoError(t, err)
	assert.Equal(t, "Q3 19/20", q.String())
}

func TestQuarter_FY(t *testing.T) {
	q, err := NewQuarter(4, 2020)
	require.NoError(t, err)

	fy, err := q.FY()
	require.NoError(t, err)
	assert.Equal(t, 2020, fy.Year())
	assert.Equal(t, "FY2020/21", fy.String())
}

func TestQuarter_Contains(t *testing.T) {
	q, err := NewQuarter(4, 2020)
	require.NoError(t, err)
	assert.True(t, q.Contains(date(2021, 1, 1)))
	assert.True(t, q.Contains(date(2021, 3, 31)))
	assert.False(t, q.Contains(date(2021, 4, 1)))
	assert.False(t, q.Contains(date(2020, 12, 31)))
	assert.Equal(t, time.March, q.EndDate().Month)
}
