package dateutils

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLogger(t *testing.T) {
	// Create a custom logger
	customLogger := logrus.New()
	customLogger.SetLevel(logrus.DebugLevel)

	// Save the original logger to restore after test
	originalLogger := log
	defer func() {
		log = originalLogger
	}()

	// Test with valid logger
	SetLogger(customLogger)
	assert.Equal(t, customLogger, log)

	// Test with nil logger (should not change the current logger)
	currentLogger := log
	SetLogger(nil)
	assert.Equal(t, currentLogger, log)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		dateStr     string
		expectedOk  bool
		expectedY   int
		expectedM   time.Month
		expectedD   int
		expectedFmt string
	}{
		{"ISO format", "2023-01-15", true, 2023, time.January, 15, DateLayoutISO},
		{"European format", "15.01.2023", true, 2023, time.January, 15, DateLayoutEuropean},
		{"US format", "01/15/2023", true, 2023, time.January, 15, DateLayoutUS},
		{"Dash-separated EU", "15-01-2023", true, 2023, time.January, 15, "02-01-2006"},
		{"Full timestamp", "2023-01-15 10:30:45", true, 2023, time.January, 15, DateLayoutFull},
		{"Empty string", "", false, 0, 0, 0, ""},
		{"Invalid format", "not a date", false, 0, 0, 0, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, format, err := ParseDate(tc.dateStr)

			if tc.expectedOk {
				assert.NoError(t, err)
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
				assert.Equal(t, tc.expectedFmt, format)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	// Create a fixed test date (January 15, 2023)
	testDate := time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		layout   string
		expected string
	}{
		{"Default ISO layout", "", "2023-01-15"},
		{"Explicit ISO layout", DateLayoutISO, "2023-01-15"},
		{"European layout", DateLayoutEuropean, "15.01.2023"},
		{"US layout", DateLayoutUS, "01/15/2023"},
		{"Full layout", DateLayoutFull, "2023-01-15 10:30:00"},
		{"Custom layout", "Mon, 02 Jan 2006", "Sun, 15 Jan 2023"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := FormatDate(testDate, tc.layout)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestToISODate(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			"Normal date",
			time.Date(2023, time.January, 15, 10, 30, 0, 0, time.UTC),
			"2023-01-15",
		},
		{
			"Zero date",
			time.Time{},
			"0001-01-01",
		},
		{
			"Future date",
			time.Date(2050, time.December, 31, 23, 59, 59, 0, time.UTC),
			"2050-12-31",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ToISODate(tc.date)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestToISODateTime(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{
			"Normal timestamp",
			time.Date(2023, time.January, 15, 10, 30, 45, 0, time.UTC),
			"2023-01-15T10:30:45",
		},
		{
			"Midnight",
			time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			"2023-01-15T00:00:00",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := ToISODateTime(tc.date)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestCleanDateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Already clean", "2023-01-15", "2023-01-15"},
		{"With spaces", "  2023-01-15  ", "2023-01-15"},
		{"Multiple spaces", "2023  01  15", "2023 01 15"},
		{"Empty string", "", ""},
		{"Only whitespace", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CleanDateString(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestIsWeekend(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{
			"Monday (weekday)",
			time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Wednesday (weekday)",
			time.Date(2023, time.January, 18, 0, 0, 0, 0, time.UTC),
			false,
		},
		{
			"Saturday (weekend)",
			time.Date(2023, time.January, 14, 0, 0, 0, 0, time.UTC),
			true,
		},
		{
			"Sunday (weekend)",
			time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC),
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := IsWeekend(tc.date)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected time.Time
	}{
		{
			"Monday to Tuesday",
			time.Date(2023, time.January, 16, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.January, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			"Friday skips to Monday",
			time.Date(2023, time.January, 20, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.January, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			"Saturday skips to Monday",
			time.Date(2023, time.January, 21, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.January, 23, 0, 0, 0, 0, time.UTC),
		},
		{
			"Sunday to Monday",
			time.Date(2023, time.January, 22, 0, 0, 0, 0, time.UTC),
			time.Date(2023, time.January, 23, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := NextBusinessDay(tc.date)
			assert.Equal(t, tc.expected, result)
		})
	}
}
