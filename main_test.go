package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func testConfig() {
	viper.Set("DB_DRIVER", "sqlite")
	viper.Set("DATABASE_DSN", "file:main_test?mode=memory&cache=shared")
	viper.Set("JWT_SECRET", "test_jwt_secret")
	viper.Set("RABBITMQ_URL", "")
}

func TestHealthEndpoint(t *testing.T) {
	testConfig()
	app, mqClient, err := NewApp()
	assert.NoError(t, err)
	// Messaging is disabled, so there is no client to close on shutdown.
	assert.Nil(t, mqClient)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var payload map[string]string
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "healthy", payload["status"])
}

func TestRootRedirectsToLoginWithoutSession(t *testing.T) {
	testConfig()
	app, _, err := NewApp()
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/sessions/new", resp.Header.Get("Location"))
}
