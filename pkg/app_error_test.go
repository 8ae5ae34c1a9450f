package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
		if e.HTTPStatus != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", e.HTTPStatus)
		}
		body := e.ToHTTPError()
		if body.Code != "QUOTE_NOT_FOUND" || body.Error != "Quote not found" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "QUOTE_NOT_FOUND: Quote not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
	})

	t.Run("wrapped cause stays internal", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if body := e.ToHTTPError(); body.Error != "An internal error occurred" {
			t.Fatalf("cause leaked into body: %+v", body)
		}
	})
}
