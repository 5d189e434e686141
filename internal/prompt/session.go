// Package prompt collects datetime parts interactively in a terminal.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-datetimefield/pkg/datetime"
)

// Run seeds the picker fields, prompts for every enabled part, and runs the
// picker change cycle after each answer so clamped values show up as the
// defaults of later prompts. It returns the final canonical value.
func Run(ctx context.Context, driver Driver, fields datetime.Fields, picker *datetime.Picker) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is required")
	}
	if fields == nil || picker == nil {
		return "", errors.New("prompt: fields and picker are required")
	}

	canonical := picker.Show()
	for _, part := range picker.Options().EnabledParts() {
		answer, err := driver.Input(ctx, InputConfig{
			Message:   part.Label(),
			Default:   fields.Get(part),
			Help:      helpFor(part),
			Validator: validatorFor(part),
		})
		if err != nil {
			return "", err
		}
		fields.Set(part, strings.TrimSpace(answer))
		canonical = picker.OnFieldsChanged()
	}
	return canonical, nil
}

func helpFor(part datetime.Part) string {
	if lo, hi, ok := datetime.Bounds(part); ok {
		return fmt.Sprintf("%s between %d and %d", strings.ToLower(part.Label()), lo, hi)
	}
	return "date as YYYY-MM-DD"
}

func validatorFor(part datetime.Part) func(string) error {
	if part == datetime.PartDate {
		return func(answer string) error {
			if _, err := time.Parse(datetime.DateLayout, strings.TrimSpace(answer)); err != nil {
				return fmt.Errorf("expected a date as YYYY-MM-DD")
			}
			return nil
		}
	}
	return func(answer string) error {
		if _, err := strconv.Atoi(strings.TrimSpace(answer)); err != nil {
			return fmt.Errorf("expected a whole number")
		}
		return nil
	}
}
