package generate

import "testing"

func TestStressLevel(t *testing.T) {
	tests := []struct {
		name  string
		sleep float64
		study float64
		want  string
	}{
		{name: "short sleep", sleep: 5.9, study: 4, want: StressHigh},
		{name: "long study", sleep: 8, study: 8.1, want: StressHigh},
		{name: "short sleep wins over low study", sleep: 5, study: 2, want: StressHigh},
		{name: "rested and light study", sleep: 6, study: 5.9, want: StressLow},
		{name: "rested at boundary study", sleep: 6, study: 6, want: StressModerate},
		{name: "study boundary is not high", sleep: 7, study: 8, want: StressModerate},
		{name: "sleep boundary is not high", sleep: 6, study: 7, want: StressModerate},
		{name: "moderate band", sleep: 7.5, study: 6.5, want: StressModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StressLevel(tt.sleep, tt.study); got != tt.want {
				t.Errorf("StressLevel(%v, %v) = %q, want %q", tt.sleep, tt.study, got, tt.want)
			}
		})
	}
}
