package apperr

import (
	"fmt"
	"testing"
)

func TestValidationf(t *testing.T) {
	err := Validationf("falta el campo %s", "detalle")

	if err.Error() != "falta el campo detalle" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !IsValidation(err) {
		t.Error("expected IsValidation to be true")
	}
	if IsAuthorization(err) || IsNotFound(err) {
		t.Error("validation error matched another category")
	}
}

func TestIsHelpers_WrappedErrors(t *testing.T) {
	base := NotFoundf("gestión G-099 no encontrada")
	wrapped := fmt.Errorf("failed to update: %w", base)

	if !IsNotFound(wrapped) {
		t.Error("expected IsNotFound to match wrapped error")
	}
	if IsValidation(wrapped) {
		t.Error("wrapped not-found error matched validation")
	}
}

func TestIsHelpers_NilAndPlainErrors(t *testing.T) {
	if IsValidation(nil) || IsAuthorization(nil) || IsNotFound(nil) {
		t.Error("nil error matched a category")
	}

	plain := fmt.Errorf("some infrastructure failure")
	if IsValidation(plain) || IsAuthorization(plain) || IsNotFound(plain) {
		t.Error("plain error matched a category")
	}
}
