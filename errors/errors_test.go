package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeAmountBelowMinimum, "too small", http.StatusUnprocessableEntity)
	if err.Code != ErrCodeAmountBelowMinimum {
		t.Errorf("expected code %s, got %s", ErrCodeAmountBelowMinimum, err.Code)
	}
	if err.Message != "too small" {
		t.Errorf("expected message 'too small', got %q", err.Message)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected status %d, got %d", http.StatusUnprocessableEntity, err.HTTPStatus)
	}
	if err.Retryable {
		t.Error("AMOUNT_BELOW_MINIMUM should not be retryable")
	}
}

func TestAppError_AmountOutOfRange_Details(t *testing.T) {
	err := AmountOutOfRange(ErrCodeAmountAboveMaximum, "Payment amount has to be less than 100000", 100000, 0, 100000)
	if err.Code != ErrCodeAmountAboveMaximum {
		t.Errorf("expected AMOUNT_ABOVE_MAXIMUM, got %s", err.Code)
	}
	if err.HTTPStatus != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", err.HTTPStatus)
	}
	if err.Details["field"] != "amount" {
		t.Errorf("expected field=amount, got %v", err.Details["field"])
	}
	if err.Details["value"] != float64(100000) {
		t.Errorf("expected value=100000, got %v", err.Details["value"])
	}
	if err.Details["upper"] != float64(100000) {
		t.Errorf("expected upper=100000, got %v", err.Details["upper"])
	}
}

func TestAppError_InvalidInput_Success(t *testing.T) {
	err := InvalidInput("amount", "must be a number")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", err.Code)
	}
	if err.Details["field"] != "amount" {
		t.Errorf("expected field=amount, got %v", err.Details["field"])
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "bad")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_WithCause_Chain(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := InvalidFormat("amount", "number").WithCause(cause)
	if err.Cause != cause {
		t.Error("expected cause to be set via WithCause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := MissingField("amount").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["field"] != "amount" {
		t.Error("expected original details to be preserved")
	}

	err.WithDetails(map[string]any{
		"another": "detail",
	})
	if err.Details["another"] != "detail" {
		t.Error("expected another=detail to be merged")
	}
	if err.Details["extra"] != "info" {
		t.Error("expected extra=info to be preserved after second merge")
	}
}

func TestAppError_WithDetails_Nil(t *testing.T) {
	err := Internal(nil).WithDetails(nil)
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized even with nil input")
	}
}

func TestAppError_WithDetail_Single(t *testing.T) {
	err := Internal(nil).WithDetail("request_id", "abc")
	if err.Details["request_id"] != "abc" {
		t.Errorf("expected request_id=abc in details")
	}

	err.WithDetail("request_id", "def")
	if err.Details["request_id"] != "def" {
		t.Errorf("expected request_id=def after overwrite")
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := Validation("amount: is invalid")
	s := err.Error()
	if s != "INVALID_INPUT: amount: is invalid" {
		t.Errorf("unexpected error string %q", s)
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := Internal(cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	err2 := Validation("x")
	if err2.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   ErrorCode
		status int
	}{
		{"MissingField", MissingField("amount"), ErrCodeMissingField, http.StatusBadRequest},
		{"InvalidFormat", InvalidFormat("amount", "number"), ErrCodeInvalidFormat, http.StatusBadRequest},
		{"Validation", Validation("bad input"), ErrCodeInvalidInput, http.StatusBadRequest},
		{"InvalidAmount", AmountOutOfRange(ErrCodeInvalidAmount, "nan", 0, 0, 1), ErrCodeInvalidAmount, http.StatusUnprocessableEntity},
		{"Internal", Internal(nil), ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected code %s, got %s", tc.code, tc.err.Code)
			}
			if tc.err.HTTPStatus != tc.status {
				t.Errorf("expected status %d, got %d", tc.status, tc.err.HTTPStatus)
			}
			if tc.err.Retryable {
				t.Error("expected retryable=false")
			}
		})
	}
}

func TestAppError_ToResponse_Success(t *testing.T) {
	err := AmountOutOfRange(ErrCodeAmountBelowMinimum, "Payment amount can't be less than 0", -1, 0, 100000)
	resp := err.ToResponse()
	if resp.Error.Code != ErrCodeAmountBelowMinimum {
		t.Errorf("expected AMOUNT_BELOW_MINIMUM in response, got %s", resp.Error.Code)
	}
	if resp.Error.Message != "Payment amount can't be less than 0" {
		t.Errorf("unexpected message %q", resp.Error.Message)
	}
	if resp.Error.Details["field"] != "amount" {
		t.Error("expected field=amount in response details")
	}
}

func TestAppError_IsAppError_Success(t *testing.T) {
	appErr := Validation("x")
	if !IsAppError(appErr) {
		t.Error("expected IsAppError to return true for AppError")
	}

	wrapped := fmt.Errorf("wrapped: %w", appErr)
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to return true for wrapped AppError")
	}

	if IsAppError(fmt.Errorf("plain error")) {
		t.Error("expected IsAppError to return false for plain error")
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", Internal(nil))

	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}

	if _, ok = AsAppError(fmt.Errorf("not an app error")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrap_AppErrorPassthrough(t *testing.T) {
	orig := MissingField("amount")
	if got := Wrap(orig); got != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
	if got := Wrap(fmt.Errorf("outer: %w", orig)); got != orig {
		t.Error("Wrap should unwrap to the original AppError")
	}
}

func TestWrap_PlainError(t *testing.T) {
	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}

func TestAppError_ImplementsErrorInterface(t *testing.T) {
	var err error = Validation("x")
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		t.Error("stderrors.As should work with AppError")
	}
}
