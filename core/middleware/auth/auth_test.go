package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(cfg Config) *fiber.App {
	app := fiber.New()
	app.Use(New(cfg))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		path   string
		header string
		want   int
	}{
		{"Disabled", Config{}, "/", "", fiber.StatusOK},
		{"MissingKey", Config{ApiKey: "secret"}, "/", "", fiber.StatusUnauthorized},
		{"WrongKey", Config{ApiKey: "secret"}, "/", "nope", fiber.StatusUnauthorized},
		{"HeaderKey", Config{ApiKey: "secret"}, "/", "secret", fiber.StatusOK},
		{"QueryKey", Config{ApiKey: "secret"}, "/api/inscrits?api_key=secret", "", fiber.StatusOK},
		{"SkippedPath", Config{ApiKey: "secret", Skip: []string{"/swagger"}}, "/swagger/index.html", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(Header, tt.header)
			}

			resp, err := setupApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}
