package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/formarank/formarank/internal/apperr"
)

func TestNewConfig(t *testing.T) {
	err := apperr.NewConfig("unknown metric kind")

	if err.Error() != "unknown metric kind" {
		t.Errorf("expected 'unknown metric kind', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewConfigWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewConfigWrap("invalid evaluator spec", inner)

	if err.Error() != "invalid evaluator spec: parse failed" {
		t.Errorf("expected 'invalid evaluator spec: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestConfigError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewConfig("evaluator has no target column")

	wrapped := fmt.Errorf("evaluate targets: %w", original)
	doubleWrapped := fmt.Errorf("run trial: %w", wrapped)

	var ce *apperr.ConfigError
	if !errors.As(doubleWrapped, &ce) {
		t.Fatal("errors.As should find ConfigError through double wrapping")
	}
	if ce.Message != "evaluator has no target column" {
		t.Errorf("expected 'evaluator has no target column', got %q", ce.Message)
	}
}

func TestUndefinedMetricError_Message(t *testing.T) {
	err := &apperr.UndefinedMetricError{Kind: "top_coverage", Column: "revenue", Message: "target column sums to zero"}

	want := "top_coverage on column revenue: target column sums to zero"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestDataShapeError_NotFoundForPlainErrors(t *testing.T) {
	plain := fmt.Errorf("read failed")
	wrapped := fmt.Errorf("load frame: %w", plain)

	var dse *apperr.DataShapeError
	if errors.As(wrapped, &dse) {
		t.Fatal("errors.As should NOT find DataShapeError in plain error chain")
	}
}
