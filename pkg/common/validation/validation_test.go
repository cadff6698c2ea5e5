package validation

import (
	"testing"
	"time"

	gserrors "github.com/vnykmshr/goseq/pkg/common/errors"
)

func TestValidatePositive(t *testing.T) {
	if err := ValidatePositive("timer", "maxPasses", 3); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, v := range []int{0, -1} {
		if err := ValidatePositive("timer", "maxPasses", v); err == nil {
			t.Errorf("expected error for %d", v)
		} else if !gserrors.IsValidationError(err) {
			t.Errorf("expected ValidationError, got %T", err)
		}
	}
}

func TestValidateNonNegative(t *testing.T) {
	for _, v := range []int{0, 5} {
		if err := ValidateNonNegative("cmd", "nthTime", v); err != nil {
			t.Errorf("unexpected error for %d: %v", v, err)
		}
	}
	if err := ValidateNonNegative("cmd", "nthTime", -1); err == nil {
		t.Error("expected error for -1")
	}
}

func TestValidateDurations(t *testing.T) {
	if err := ValidatePositiveDuration("sequence", "poll", time.Millisecond); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidatePositiveDuration("sequence", "poll", 0); err == nil {
		t.Error("expected error for zero duration")
	}
	if err := ValidateNonNegativeDuration("timer", "interval", 0); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNonNegativeDuration("timer", "interval", -time.Second); err == nil {
		t.Error("expected error for negative duration")
	}
}

func TestValidateNotNilAndNotEmpty(t *testing.T) {
	if err := ValidateNotNil("sequence", "timer", nil); err == nil {
		t.Error("expected error for nil value")
	}
	if err := ValidateNotNil("sequence", "timer", struct{}{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateNotEmpty("cmd", "name", ""); err == nil {
		t.Error("expected error for empty string")
	}
	if err := ValidateNotEmpty("cmd", "name", "report"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
