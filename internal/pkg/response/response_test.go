package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func TestDefaultMessage(t *testing.T) {
	cases := map[int]string{
		fiber.StatusOK:                 MessageOK,
		fiber.StatusCreated:            MessageCreated,
		fiber.StatusBadRequest:         MessageBadRequest,
		fiber.StatusNotFound:           MessageNotFound,
		fiber.StatusServiceUnavailable: MessageServiceUnavailable,
		fiber.StatusBadGateway:         MessageInternalServerError,
		fiber.StatusTeapot:             MessageError,
	}
	for status, want := range cases {
		if got := DefaultMessage(status); got != want {
			t.Errorf("DefaultMessage(%d) = %q, want %q", status, got, want)
		}
	}
}

func TestError_ClampsStatusAndFillsMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return Error(c, 42, "", nil)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	var body Envelope
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != fiber.StatusInternalServerError || body.Message != MessageInternalServerError {
		t.Fatalf("unexpected envelope %+v", body)
	}
}
