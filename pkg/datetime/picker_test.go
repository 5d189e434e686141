package datetime_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

func fixedClock() time.Time {
	return time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)
}

type notification struct {
	Part  datetime.Part
	Value string
}

func newRecordingFields(value string) (*datetime.MapFields, *[]notification) {
	fields := datetime.NewMapFields(value)
	var events []notification
	fields.Listener = func(part datetime.Part, value string) {
		events = append(events, notification{Part: part, Value: value})
	}
	return fields, &events
}

func TestNew_DefaultsToClockWhenBackingValueIsMissing(t *testing.T) {
	fields, _ := newRecordingFields("not a timestamp")
	picker, err := datetime.New(fields, datetime.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}

	if got := picker.Show(); got != "2024-01-02 03:04:05" {
		t.Fatalf("Show() = %q", got)
	}

	want := map[datetime.Part]string{
		datetime.PartValue:   "2024-01-02 03:04:05",
		datetime.PartDate:    "2024-01-02",
		datetime.PartHours:   "03",
		datetime.PartMinutes: "04",
		datetime.PartSeconds: "05",
	}
	if diff := cmp.Diff(want, fields.Snapshot()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_ParsesAndNormalizesBackingValue(t *testing.T) {
	fields, _ := newRecordingFields("2023-02-30 10:00:00")
	picker, err := datetime.New(fields, datetime.WithClock(fixedClock))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}

	if got := picker.Show(); got != "2023-03-02 10:00:00" {
		t.Fatalf("Show() = %q, want normalized date", got)
	}
	if got := fields.Get(datetime.PartDate); got != "2023-03-02" {
		t.Fatalf("date field = %q", got)
	}
}

func TestPicker_HoursOnlyUsesPlaceholders(t *testing.T) {
	fields, _ := newRecordingFields("")
	picker, err := datetime.New(fields,
		datetime.WithClock(fixedClock),
		datetime.WithParts(datetime.PartHours),
	)
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}

	if got := picker.Show(); got != "03:00:00" {
		t.Fatalf("Show() = %q", got)
	}
	if got := fields.Get(datetime.PartMinutes); got != "" {
		t.Fatalf("disabled minutes field was written: %q", got)
	}

	fields.Set(datetime.PartHours, "9")
	if got := picker.OnFieldsChanged(); got != "09:00:00" {
		t.Fatalf("OnFieldsChanged() = %q", got)
	}
	if got := picker.Value().Hours; got != "09" {
		t.Fatalf("snapshot hours = %q", got)
	}
}

func TestPicker_OnFieldsChangedClampsSyncsAndNotifies(t *testing.T) {
	fields, events := newRecordingFields("2023-05-01 13:45:09")

	var changes []string
	picker, err := datetime.New(fields, datetime.WithOnChange(func(value string) {
		changes = append(changes, value)
	}))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	picker.Show()
	*events = nil

	fields.Set(datetime.PartMinutes, "75")
	got := picker.OnFieldsChanged()

	if got != "2023-05-01 13:60:09" {
		t.Fatalf("OnFieldsChanged() = %q", got)
	}
	if minutes := fields.Get(datetime.PartMinutes); minutes != "60" {
		t.Fatalf("minutes field = %q, want clamped 60", minutes)
	}
	if diff := cmp.Diff([]string{"2023-05-01 13:60:09"}, changes); diff != "" {
		t.Fatalf("callback mismatch (-want +got):\n%s", diff)
	}
	wantEvents := []notification{{Part: datetime.PartValue, Value: "2023-05-01 13:60:09"}}
	if diff := cmp.Diff(wantEvents, *events); diff != "" {
		t.Fatalf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestPicker_ValidateBoundsDisabled(t *testing.T) {
	fields, _ := newRecordingFields("2023-05-01 13:45:09")
	picker, err := datetime.New(fields, datetime.WithValidateBounds(false))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	picker.Show()

	fields.Set(datetime.PartMinutes, "75")
	if got := picker.OnFieldsChanged(); got != "2023-05-01 13:75:09" {
		t.Fatalf("OnFieldsChanged() = %q", got)
	}
	if minutes := fields.Get(datetime.PartMinutes); minutes != "75" {
		t.Fatalf("minutes field rewritten to %q", minutes)
	}
}

func TestPicker_TriggerHandlerDisabled(t *testing.T) {
	fields, events := newRecordingFields("2023-05-01 13:45:09")
	picker, err := datetime.New(fields, datetime.WithTriggerHandler(false))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	picker.Show()
	picker.OnFieldsChanged()

	if len(*events) != 0 {
		t.Fatalf("expected no notifications, got %#v", *events)
	}
}

func TestPicker_ValidateReportsRewrittenParts(t *testing.T) {
	fields, _ := newRecordingFields("2023-05-01 13:45:09")
	picker, err := datetime.New(fields)
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	picker.Show()

	fields.Set(datetime.PartHours, "30")
	fields.Set(datetime.PartSeconds, "-4")
	changed := picker.Validate()

	want := []datetime.Part{datetime.PartHours, datetime.PartSeconds}
	if diff := cmp.Diff(want, changed); diff != "" {
		t.Fatalf("changed parts mismatch (-want +got):\n%s", diff)
	}
	if got := fields.Get(datetime.PartHours); got != "24" {
		t.Fatalf("hours = %q", got)
	}
	if got := fields.Get(datetime.PartSeconds); got != "0" {
		t.Fatalf("seconds = %q", got)
	}
}

func TestNew_RejectsInvalidConfiguration(t *testing.T) {
	_, err := datetime.New(datetime.NewMapFields(""), datetime.WithName("starts[at]"))
	var cfgErr *datetime.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Field != "name" {
		t.Fatalf("unexpected field %q", cfgErr.Field)
	}

	if _, err := datetime.New(nil); err == nil {
		t.Fatalf("expected error for nil fields")
	}
}

func TestOptions_EnabledParts(t *testing.T) {
	all := datetime.NewOptions()
	if diff := cmp.Diff(datetime.Parts(), all.EnabledParts()); diff != "" {
		t.Fatalf("showAll parts mismatch (-want +got):\n%s", diff)
	}
	if !all.IncludeDate() {
		t.Fatalf("expected date to be included by default")
	}

	timeOnly := datetime.NewOptions(datetime.WithParts(datetime.PartMinutes, datetime.PartHours))
	want := []datetime.Part{datetime.PartHours, datetime.PartMinutes}
	if diff := cmp.Diff(want, timeOnly.EnabledParts()); diff != "" {
		t.Fatalf("parts mismatch (-want +got):\n%s", diff)
	}
	if timeOnly.IncludeDate() {
		t.Fatalf("date should be excluded")
	}
}
