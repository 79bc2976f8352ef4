package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	pluginMocks "github.com/NeuralTrust/InstallGate/pkg/app/plugin/mocks"
	transactionMocks "github.com/NeuralTrust/InstallGate/pkg/app/transaction/mocks"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/handlers/http/response"
	"github.com/NeuralTrust/InstallGate/pkg/infra/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListPluginsHandler(t *testing.T) {
	checker := transactionMocks.NewChecker(t)
	finder := pluginMocks.NewFinder(t)
	handler := NewListPluginsHandler(logger.NewNopLogger(), checker, finder)

	app := fiber.New()
	app.Get("/install/plugins", handler.Handle)

	t.Run("without transaction", func(t *testing.T) {
		checker.On("IsValid", mock.Anything).Return(false).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/install/plugins", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("lists plugins", func(t *testing.T) {
		plugins := []domainPlugin.Plugin{
			{Code: "Coupon", Name: "Coupon", Enabled: true, CreatedAt: time.Unix(0, 0).UTC(), UpdatedAt: time.Unix(0, 0).UTC()},
		}
		checker.On("IsValid", mock.Anything).Return(true).Once()
		finder.On("List", mock.Anything).Return(plugins, nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/install/plugins", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body response.ListPluginsResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, plugins, body.Plugins)
	})

	t.Run("finder error", func(t *testing.T) {
		checker.On("IsValid", mock.Anything).Return(true).Once()
		finder.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/install/plugins", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
