package delivery

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"ecamp/config"
	"ecamp/domain"
	"ecamp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "delivery-test-secret"

func newTestApp() *fiber.App {
	return fiber.New(config.GetFiberConfig(&config.Config{AppName: "ECAMP", AppEnv: config.EnvDev}))
}

type testResponse struct {
	Status int
	Header map[string]string
	Body   []byte
}

func (r testResponse) envelope(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.Body, &out))
	return out
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, token string) testResponse {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return testResponse{
		Status: resp.StatusCode,
		Header: map[string]string{fiber.HeaderAuthorization: resp.Header.Get(fiber.HeaderAuthorization)},
		Body:   raw,
	}
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	middleware.InitJWT(testSecret, time.Hour)
	token, err := middleware.GenerateJWT(1, "tester@example.com", role)
	require.NoError(t, err)
	return token
}

func parentToken(t *testing.T) string {
	return tokenFor(t, domain.RoleParent)
}

func adminToken(t *testing.T) string {
	return tokenFor(t, domain.RoleAdmin)
}
