package http

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	cacheUtilMocks "github.com/NeuralTrust/InstallGate/pkg/app/cacheutil/mocks"
	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/NeuralTrust/InstallGate/pkg/common"
	"github.com/NeuralTrust/InstallGate/pkg/infra/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedirectApp(t *testing.T, fs afero.Fs, cacheUtil *cacheUtilMocks.CacheUtil) *fiber.App {
	t.Helper()
	log := logger.NewNopLogger()
	checker := transaction.NewChecker(log, fs, projectDir, common.TransactionCheckFile,
		transaction.WithClock(func() time.Time { return fixedNow }))
	handler := NewRedirectAdminHandler(log, checker, cacheUtil, "/admin/")

	app := fiber.New()
	app.Get("/install/plugin/redirect", handler.Handle)
	return app
}

func TestRedirectAdminHandler_RemovesToken(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := projectDir + common.TransactionCheckFile
	require.NoError(t, afero.WriteFile(fs, path, []byte("1700000000"), 0600))

	cacheUtil := cacheUtilMocks.NewCacheUtil(t)
	cacheUtil.On("ClearCache", mock.Anything).Return(nil).Once()

	resp, err := newRedirectApp(t, fs, cacheUtil).Test(httptest.NewRequest("GET", "/install/plugin/redirect", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/", resp.Header.Get("Location"))
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRedirectAdminHandler_MissingTokenStillRedirects(t *testing.T) {
	cacheUtil := cacheUtilMocks.NewCacheUtil(t)
	cacheUtil.On("ClearCache", mock.Anything).Return(nil).Once()

	resp, err := newRedirectApp(t, afero.NewMemMapFs(), cacheUtil).Test(httptest.NewRequest("GET", "/install/plugin/redirect", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/", resp.Header.Get("Location"))
}

func TestRedirectAdminHandler_CacheFailureIsLogged(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := projectDir + common.TransactionCheckFile
	require.NoError(t, afero.WriteFile(fs, path, []byte("1700000000"), 0600))

	cacheUtil := cacheUtilMocks.NewCacheUtil(t)
	cacheUtil.On("ClearCache", mock.Anything).Return(errors.New("redis down")).Once()

	resp, err := newRedirectApp(t, fs, cacheUtil).Test(httptest.NewRequest("GET", "/install/plugin/redirect", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	exists, _ := afero.Exists(fs, path)
	assert.False(t, exists)
}
