package shift

import (
	"testing"
)

func TestWorkedHours(t *testing.T) {
	type args struct {
		start        ClockTime
		end          ClockTime
		breakMinutes int
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{
			name: "Standard day shift with a break",
			args: args{
				start:        ClockTime{Hour: 9, Minute: 0},
				end:          ClockTime{Hour: 17, Minute: 0},
				breakMinutes: 30,
			},
			want: 7.5,
		},
		{
			name: "Day shift without a break",
			args: args{
				start: ClockTime{Hour: 9, Minute: 0},
				end:   ClockTime{Hour: 17, Minute: 0},
			},
			want: 8,
		},
		{
			name: "Overnight shift crossing midnight",
			args: args{
				start: ClockTime{Hour: 22, Minute: 0},
				end:   ClockTime{Hour: 2, Minute: 0},
			},
			want: 4,
		},
		{
			name: "Overnight shift with a break",
			args: args{
				start:        ClockTime{Hour: 23, Minute: 30},
				end:          ClockTime{Hour: 7, Minute: 30},
				breakMinutes: 60,
			},
			want: 7,
		},
		{
			name: "Break longer than the shift clamps to zero",
			args: args{
				start:        ClockTime{Hour: 10, Minute: 0},
				end:          ClockTime{Hour: 11, Minute: 0},
				breakMinutes: 90,
			},
			want: 0,
		},
		{
			name: "Zero-length shift",
			args: args{
				start: ClockTime{Hour: 9, Minute: 0},
				end:   ClockTime{Hour: 9, Minute: 0},
			},
			want: 0,
		},
		{
			name: "Minute precision",
			args: args{
				start: ClockTime{Hour: 9, Minute: 15},
				end:   ClockTime{Hour: 9, Minute: 45},
			},
			want: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorkedHours(tt.args.start, tt.args.end, tt.args.breakMinutes); got != tt.want {
				t.Errorf("WorkedHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ClockTime
		wantErr bool
	}{
		{name: "Valid time", input: "09:30", want: ClockTime{Hour: 9, Minute: 30}},
		{name: "Midnight", input: "00:00", want: ClockTime{Hour: 0, Minute: 0}},
		{name: "Last minute of the day", input: "23:59", want: ClockTime{Hour: 23, Minute: 59}},
		{name: "Hour out of range", input: "24:00", wantErr: true},
		{name: "Minute out of range", input: "12:60", wantErr: true},
		{name: "Missing separator", input: "0930", wantErr: true},
		{name: "Not a number", input: "ab:cd", wantErr: true},
		{name: "Empty string", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClockTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseClockTime(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseClockTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockTime_String(t *testing.T) {
	if got := (ClockTime{Hour: 7, Minute: 5}).String(); got != "07:05" {
		t.Errorf("String() = %v, want 07:05", got)
	}
}
