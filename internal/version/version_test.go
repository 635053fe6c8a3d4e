package version

import "testing"

func TestCalculateBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{
			name:     "epoch date",
			date:     "1997-01-07",
			expected: 0,
		},
		{
			name:     "next day after epoch",
			date:     "1997-01-08",
			expected: 1,
		},
		{
			name:     "one year later",
			date:     "1998-01-07",
			expected: 365,
		},
		{
			name:     "date with a leap year included",
			date:     "2004-01-07",
			expected: 2556,
		},
		{
			name:      "invalid format",
			date:      "invalid",
			wantError: true,
		},
		{
			name:      "empty date",
			date:      "",
			wantError: true,
		},
		{
			name:      "before epoch",
			date:      "1997-01-06",
			wantError: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			old := BuildDate
			defer func() { BuildDate = old }()

			BuildDate = tt.date

			got, err := CalculateBuildID()

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expected {
				t.Errorf("CalculateBuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}
