package sphere

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:    "date only format YYYY-MM-DD",
			input:   `"2025-08-30"`,
			want:    "2025-08-30",
			wantErr: false,
		},
		{
			name:    "RFC3339 format",
			input:   `"2025-08-30T15:04:05Z"`,
			want:    "2025-08-30",
			wantErr: false,
		},
		{
			name:    "datetime without timezone",
			input:   `"2025-08-30T15:04:05"`,
			want:    "2025-08-30",
			wantErr: false,
		},
		{
			name:    "null value",
			input:   `null`,
			want:    "",
			wantErr: false,
		},
		{
			name:    "empty string",
			input:   `""`,
			want:    "",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   `"not-a-date"`,
			want:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)

			if (err != nil) != tt.wantErr {
				t.Errorf("Date.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if err == nil {
				got := d.String()
				if got != tt.want {
					t.Errorf("Date.UnmarshalJSON() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want string
	}{
		{
			name: "normal date",
			date: NewDate(time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)),
			want: `"2025-08-30"`,
		},
		{
			name: "zero date marshals to null",
			date: Date{},
			want: `null`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("Date.MarshalJSON() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Date.MarshalJSON() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWholeDaysBefore(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{
			name: "earlier today is zero days old",
			t:    time.Date(2025, 8, 15, 1, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "late last night is one day old",
			t:    time.Date(2025, 8, 14, 23, 59, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "a week ago",
			t:    time.Date(2025, 8, 8, 12, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "tomorrow is negative",
			t:    time.Date(2025, 8, 16, 9, 0, 0, 0, time.UTC),
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wholeDaysBefore(now, tt.t); got != tt.want {
				t.Errorf("wholeDaysBefore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDaysUntilCeil(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{
			name: "now itself is zero",
			t:    now,
			want: 0,
		},
		{
			name: "later today rounds up to one",
			t:    now.Add(6 * time.Hour),
			want: 1,
		},
		{
			name: "exactly seven days",
			t:    now.AddDate(0, 0, 7),
			want: 7,
		},
		{
			name: "in the past is negative",
			t:    now.AddDate(0, 0, -3),
			want: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysUntilCeil(now, tt.t); got != tt.want {
				t.Errorf("daysUntilCeil() = %d, want %d", got, tt.want)
			}
		})
	}
}
