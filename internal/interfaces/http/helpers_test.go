package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	apphttp "github.com/NotSleepp/possbien/internal/interfaces/http"
)

// newHandlerApp crea una app con el ErrorHandler real y la identidad del token ya cargada,
// como la dejaría AuthMiddleware.
func newHandlerApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.RequestID())
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalUserID, testUserID)
		c.Locals(apphttp.LocalCompanyID, testCompanyID)
		c.Locals(apphttp.LocalRoleID, testRoleID)
		c.Locals(apphttp.LocalRole, "admin")
		return c.Next()
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			r = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			r = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

type envelope struct {
	Message string          `json:"mensaje"`
	Data    json.RawMessage `json:"datos"`
}

type errorBody struct {
	Code      string `json:"codigo"`
	Message   string `json:"mensaje"`
	RequestID string `json:"request_id"`
	Details   []struct {
		Field   string `json:"campo"`
		Message string `json:"mensaje"`
	} `json:"detalles"`
}

const (
	testProductID  = "6f1c1c1e-8c1a-4f55-9a57-1c9d5d0b7a11"
	testRegisterID = "7a2d2d2f-9d2b-4a66-8b68-2d0e6e1c8b22"
	testSaleID     = "8b3e3e30-ae3c-4b77-9c79-3e1f7f2d9c33"
)
