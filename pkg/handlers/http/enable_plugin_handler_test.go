package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	cacheUtilMocks "github.com/NeuralTrust/InstallGate/pkg/app/cacheutil/mocks"
	"github.com/NeuralTrust/InstallGate/pkg/app/maintenance"
	maintenanceMocks "github.com/NeuralTrust/InstallGate/pkg/app/maintenance/mocks"
	appPlugin "github.com/NeuralTrust/InstallGate/pkg/app/plugin"
	pluginMocks "github.com/NeuralTrust/InstallGate/pkg/app/plugin/mocks"
	"github.com/NeuralTrust/InstallGate/pkg/app/transaction"
	"github.com/NeuralTrust/InstallGate/pkg/common"
	"github.com/NeuralTrust/InstallGate/pkg/domain"
	domainPlugin "github.com/NeuralTrust/InstallGate/pkg/domain/plugin"
	"github.com/NeuralTrust/InstallGate/pkg/infra/logger"
	"github.com/NeuralTrust/InstallGate/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const projectDir = "/srv/shop"

var fixedNow = time.Unix(1_700_000_000, 0)

type enableFixture struct {
	fs          afero.Fs
	finder      *pluginMocks.Finder
	service     *pluginMocks.Service
	maintenance *maintenanceMocks.Service
	cacheUtil   *cacheUtilMocks.CacheUtil
	app         *fiber.App
}

func newEnableFixture(t *testing.T) *enableFixture {
	f := &enableFixture{
		fs:          afero.NewMemMapFs(),
		finder:      pluginMocks.NewFinder(t),
		service:     pluginMocks.NewService(t),
		maintenance: maintenanceMocks.NewService(t),
		cacheUtil:   cacheUtilMocks.NewCacheUtil(t),
	}
	log := logger.NewNopLogger()
	checker := transaction.NewChecker(log, f.fs, projectDir, common.TransactionCheckFile,
		transaction.WithClock(func() time.Time { return fixedNow }))
	handler := NewEnablePluginHandler(log, checker, f.finder, f.service, f.maintenance, f.cacheUtil)

	f.app = fiber.New()
	f.app.Put("/install/plugin/:code/enable", handler.Handle)
	return f
}

func (f *enableFixture) writeToken(t *testing.T, expiresAt time.Time) {
	require.NoError(t, afero.WriteFile(f.fs, projectDir+common.TransactionCheckFile,
		[]byte(strconv.FormatInt(expiresAt.Unix(), 10)), 0600))
}

func (f *enableFixture) put(t *testing.T, code string) (int, map[string]interface{}) {
	resp, err := f.app.Test(httptest.NewRequest("PUT", "/install/plugin/"+code+"/enable", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	_ = json.Unmarshal(raw, &body)
	return resp.StatusCode, body
}

func TestEnablePluginHandler_NoTransactionFile(t *testing.T) {
	f := newEnableFixture(t)

	status, _ := f.put(t, "Coupon")

	assert.Equal(t, fiber.StatusNotFound, status)
	f.finder.AssertNotCalled(t, "FindByCode", mock.Anything, mock.Anything)
}

func TestEnablePluginHandler_ExpiredTransaction(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow.Add(-time.Second))

	status, _ := f.put(t, "Coupon")

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestEnablePluginHandler_InvalidCode(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow.Add(time.Minute))

	status, _ := f.put(t, "bad-code")

	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestEnablePluginHandler_UnknownPlugin(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow)

	f.finder.On("FindByCode", mock.Anything, "Missing").
		Return(nil, domain.NewNotFoundError("plugin", "Missing")).Once()
	lookups := prometheus.PluginToggleTotal.WithLabelValues(appPlugin.ActionLookup, prometheus.ResultNotFound)
	enables := prometheus.PluginToggleTotal.WithLabelValues(appPlugin.ActionEnable, prometheus.ResultNotFound)
	lookupsBefore, enablesBefore := testutil.ToFloat64(lookups), testutil.ToFloat64(enables)

	status, body := f.put(t, "Missing")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["success"])
	v, present := body["log"]
	assert.True(t, present)
	assert.Nil(t, v)
	f.maintenance.AssertNotCalled(t, "SwitchMaintenance", mock.Anything, mock.Anything, mock.Anything)
	f.cacheUtil.AssertNotCalled(t, "ClearCache", mock.Anything)
	assert.Equal(t, lookupsBefore+1, testutil.ToFloat64(lookups))
	assert.Equal(t, enablesBefore, testutil.ToFloat64(enables))
}

func TestEnablePluginHandler_EnablesDisabledPlugin(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow.Add(5*time.Minute))

	entity := &domainPlugin.Plugin{Code: "Coupon", Name: "Coupon"}
	var calls []string
	f.finder.On("FindByCode", mock.Anything, "Coupon").Return(entity, nil).Once()
	f.maintenance.On("SwitchMaintenance", mock.Anything, true, maintenance.AutoMaintenance).
		Run(func(mock.Arguments) { calls = append(calls, "maintenance_on") }).Return(nil).Once()
	f.maintenance.On("DisableMaintenance", mock.Anything, maintenance.AutoMaintenance).
		Run(func(mock.Arguments) { calls = append(calls, "maintenance_off") }).Return(nil).Once()
	f.service.On("Enable", mock.Anything, entity, mock.Anything).
		Run(func(args mock.Arguments) {
			calls = append(calls, "enable")
			_, _ = args.Get(2).(io.Writer).Write([]byte("Coupon enabled"))
		}).Return(nil)
	f.cacheUtil.On("ClearCache", mock.Anything).
		Run(func(mock.Arguments) { calls = append(calls, "clear_cache") }).Return(nil).Once()

	status, body := f.put(t, "Coupon")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Coupon enabled", body["log"])
	f.service.AssertNumberOfCalls(t, "Enable", 1)
	f.service.AssertNotCalled(t, "Disable", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []string{"maintenance_on", "maintenance_off", "enable", "clear_cache"}, calls)
}

func TestEnablePluginHandler_DisablesEnabledPlugin(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow.Add(5*time.Minute))

	entity := &domainPlugin.Plugin{Code: "Coupon", Name: "Coupon", Enabled: true}
	f.finder.On("FindByCode", mock.Anything, "Coupon").Return(entity, nil).Once()
	f.maintenance.On("SwitchMaintenance", mock.Anything, true, maintenance.AutoMaintenance).Return(nil).Once()
	f.maintenance.On("DisableMaintenance", mock.Anything, maintenance.AutoMaintenance).Return(nil).Once()
	f.service.On("Disable", mock.Anything, entity, mock.Anything).Return(nil)
	f.cacheUtil.On("ClearCache", mock.Anything).Return(nil).Once()

	status, body := f.put(t, "Coupon")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "", body["log"])
	f.service.AssertNumberOfCalls(t, "Disable", 1)
	f.service.AssertNotCalled(t, "Enable", mock.Anything, mock.Anything, mock.Anything)
}

func TestEnablePluginHandler_ServiceErrorPropagates(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow.Add(5*time.Minute))

	entity := &domainPlugin.Plugin{Code: "Coupon", Name: "Coupon"}
	f.finder.On("FindByCode", mock.Anything, "Coupon").Return(entity, nil).Once()
	f.maintenance.On("SwitchMaintenance", mock.Anything, true, maintenance.AutoMaintenance).Return(nil).Once()
	f.maintenance.On("DisableMaintenance", mock.Anything, maintenance.AutoMaintenance).Return(nil).Once()
	f.service.On("Enable", mock.Anything, entity, mock.Anything).
		Return(domain.NewPluginError("Coupon", "enable", errors.New("boom"))).Once()

	status, _ := f.put(t, "Coupon")

	assert.Equal(t, fiber.StatusInternalServerError, status)
	f.cacheUtil.AssertNotCalled(t, "ClearCache", mock.Anything)
}

func TestEnablePluginHandler_FinderErrorPropagates(t *testing.T) {
	f := newEnableFixture(t)
	f.writeToken(t, fixedNow.Add(5*time.Minute))

	f.finder.On("FindByCode", mock.Anything, "Coupon").Return(nil, errors.New("db down")).Once()

	status, _ := f.put(t, "Coupon")

	assert.Equal(t, fiber.StatusInternalServerError, status)
}
