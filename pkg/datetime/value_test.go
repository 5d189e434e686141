package datetime_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "2023-05-01 13:45:09", want: true},
		{input: "2023-02-30 99:99:99", want: true},
		{input: "2023-5-1 13:45:09", want: false},
		{input: "", want: false},
		{input: " 2023-05-01 13:45:09", want: false},
		{input: "2023-05-01T13:45:09", want: false},
		{input: "2023-05-01 13:45:09Z", want: false},
		{input: "2023/05/01 13:45:09", want: false},
		{input: "13:45:09", want: false},
	}

	for _, tt := range tests {
		if got := datetime.IsCanonical(tt.input); got != tt.want {
			t.Errorf("IsCanonical(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseInLocation_NormalizesCalendarOverflow(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  datetime.Value
	}{
		{
			name:  "february 30th rolls into march",
			input: "2023-02-30 10:00:00",
			want:  datetime.Value{Date: "2023-03-02", Hours: "10", Minutes: "00", Seconds: "00"},
		},
		{
			name:  "hour 24 rolls into next day",
			input: "2023-12-31 24:00:00",
			want:  datetime.Value{Date: "2024-01-01", Hours: "00", Minutes: "00", Seconds: "00"},
		},
		{
			name:  "minute and second overflow",
			input: "2023-05-01 13:60:60",
			want:  datetime.Value{Date: "2023-05-01", Hours: "14", Minutes: "01", Seconds: "00"},
		},
		{
			name:  "month zero is december of the previous year",
			input: "2023-00-10 08:00:00",
			want:  datetime.Value{Date: "2022-12-10", Hours: "08", Minutes: "00", Seconds: "00"},
		},
		{
			name:  "surrounding whitespace is trimmed",
			input: "  2023-05-01 13:45:09 \n",
			want:  datetime.Value{Date: "2023-05-01", Hours: "13", Minutes: "45", Seconds: "09"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datetime.ParseInLocation(tt.input, time.UTC)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_UsesLocalCalendar(t *testing.T) {
	got, err := datetime.Parse("2023-05-01 13:45:09")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := datetime.FromTime(time.Date(2023, time.May, 1, 13, 45, 9, 0, time.Local))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_RejectsMalformedShape(t *testing.T) {
	for _, input := range []string{"", "2023-5-1 13:45:09", "yesterday"} {
		if _, err := datetime.Parse(input); !errors.Is(err, datetime.ErrNotCanonical) {
			t.Fatalf("Parse(%q) error = %v, want ErrNotCanonical", input, err)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	times := []time.Time{
		time.Date(2023, time.May, 1, 13, 45, 9, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(987, time.January, 5, 23, 59, 59, 0, time.UTC),
		time.Date(9999, time.December, 31, 12, 0, 1, 0, time.UTC),
	}

	for _, ts := range times {
		want := datetime.FromTime(ts)
		got, err := datetime.ParseInLocation(want.Format(true), time.UTC)
		if err != nil {
			t.Fatalf("parse %q: %v", want.Format(true), err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("round trip mismatch for %s (-want +got):\n%s", ts, diff)
		}
	}
}

func TestFromTime_PadsEveryField(t *testing.T) {
	got := datetime.FromTime(time.Date(987, time.March, 4, 5, 6, 7, 0, time.UTC))
	want := datetime.Value{Date: "0987-03-04", Hours: "05", Minutes: "06", Seconds: "07"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("value mismatch (-want +got):\n%s", diff)
	}
}

func TestNowFunc_UsesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC) }
	got := datetime.NowFunc(clock)
	if got.Format(true) != "2024-01-02 03:04:05" {
		t.Fatalf("unexpected snapshot %q", got.Format(true))
	}
}

func TestPad(t *testing.T) {
	if got := datetime.Pad("5", 2); got != "05" {
		t.Fatalf("Pad(5, 2) = %q", got)
	}
	if got := datetime.Pad("", 2); got != "00" {
		t.Fatalf("Pad(\"\", 2) = %q", got)
	}
	if got := datetime.Pad("123", 2); got != "123" {
		t.Fatalf("Pad(123, 2) = %q", got)
	}
	if got := datetime.PadInt(7, 4); got != "0007" {
		t.Fatalf("PadInt(7, 4) = %q", got)
	}
}

func TestPadInt_WidthProperty(t *testing.T) {
	for width := 1; width <= 4; width++ {
		for v := 0; v <= 12000; v += 7 {
			raw := datetime.PadInt(v, 0)
			got := datetime.PadInt(v, width)
			if len(raw) <= width && len(got) != width {
				t.Fatalf("PadInt(%d, %d) = %q, want length %d", v, width, got, width)
			}
			if len(raw) > width && got != raw {
				t.Fatalf("PadInt(%d, %d) = %q, want %q unchanged", v, width, got, raw)
			}
		}
	}
}

func TestValueFormat(t *testing.T) {
	full := datetime.Value{Date: "2023-05-01", Hours: "13", Minutes: "45", Seconds: "9"}
	if got := full.Format(true); got != "2023-05-01 13:45:09" {
		t.Fatalf("Format(true) = %q", got)
	}
	if got := full.Format(false); got != "13:45:09" {
		t.Fatalf("Format(false) = %q", got)
	}

	hoursOnly := datetime.Value{Hours: "7"}
	if got := hoursOnly.Format(false); got != "07:00:00" {
		t.Fatalf("Format(false) = %q, want placeholders", got)
	}
}

func TestValueTime(t *testing.T) {
	value := datetime.Value{Date: "2023-05-01", Hours: "13", Minutes: "45", Seconds: "09"}
	got, err := value.Time(time.UTC)
	if err != nil {
		t.Fatalf("time: %v", err)
	}
	want := time.Date(2023, time.May, 1, 13, 45, 9, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Time() = %s, want %s", got, want)
	}

	if _, err := (datetime.Value{Hours: "13"}).Time(time.UTC); !errors.Is(err, datetime.ErrIncompleteValue) {
		t.Fatalf("expected ErrIncompleteValue, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		input       datetime.Value
		want        datetime.Value
		wantChanged []datetime.Part
	}{
		{
			name:  "in range values pass through",
			input: datetime.Value{Date: "2023-05-01", Hours: "24", Minutes: "60", Seconds: "0"},
			want:  datetime.Value{Date: "2023-05-01", Hours: "24", Minutes: "60", Seconds: "0"},
		},
		{
			name:        "values above max become max",
			input:       datetime.Value{Hours: "25", Minutes: "75", Seconds: "061"},
			want:        datetime.Value{Hours: "24", Minutes: "60", Seconds: "60"},
			wantChanged: []datetime.Part{datetime.PartHours, datetime.PartMinutes, datetime.PartSeconds},
		},
		{
			name:        "negative values become zero",
			input:       datetime.Value{Hours: "-1", Minutes: "-30", Seconds: "05"},
			want:        datetime.Value{Hours: "0", Minutes: "0", Seconds: "05"},
			wantChanged: []datetime.Part{datetime.PartHours, datetime.PartMinutes},
		},
		{
			name:  "empty and non numeric values are ignored",
			input: datetime.Value{Date: "9999-99-99", Hours: "", Minutes: "abc", Seconds: "12"},
			want:  datetime.Value{Date: "9999-99-99", Hours: "", Minutes: "abc", Seconds: "12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := datetime.Clamp(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantChanged, changed); diff != "" {
				t.Fatalf("changed parts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseParts(t *testing.T) {
	got, err := datetime.ParseParts(" Date, hours,,hours ")
	if err != nil {
		t.Fatalf("parse parts: %v", err)
	}
	want := []datetime.Part{datetime.PartDate, datetime.PartHours}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parts mismatch (-want +got):\n%s", diff)
	}

	if _, err := datetime.ParseParts("date,millis"); err == nil {
		t.Fatalf("expected unknown part error")
	}
}
