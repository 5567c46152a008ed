//go:build integration

package integration

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dariiabiriuk/dateval/internal/adapters/clients"
	"github.com/dariiabiriuk/dateval/internal/adapters/clients/acl"
	httpadapter "github.com/dariiabiriuk/dateval/internal/adapters/http"
	"github.com/dariiabiriuk/dateval/internal/adapters/http/handlers"
	"github.com/dariiabiriuk/dateval/internal/app"
	"github.com/dariiabiriuk/dateval/internal/domain"
	"github.com/dariiabiriuk/dateval/internal/platform/config"
	"github.com/dariiabiriuk/dateval/internal/ports"
)

// startTestService spins up the full router (middleware, handlers, real
// date service) on an in-process test server.
func startTestService(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := app.NewDateService(app.DateServiceConfig{
		Registerer: prometheus.NewRegistry(),
	})

	buildInfo := handlers.NewBuildInfo("test", "none", "now")
	healthHandler := handlers.NewHealthHandler(ports.NewHealthRegistry(), buildInfo)
	dateHandler := handlers.NewDateHandler(service)

	engine := gin.New()
	httpadapter.SetupRouter(engine, httpadapter.RouterConfig{
		AppConfig:     &config.AppConfig{Name: "dateval", Version: "test", Environment: "test"},
		HealthHandler: healthHandler,
		DateHandler:   dateHandler,
		Timeout:       5 * time.Second,
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return server
}

// newDateAPIClient builds an ACL client pointed at the test service.
func newDateAPIClient(t *testing.T, baseURL string) *acl.DateAPIClient {
	t.Helper()

	client, err := clients.New(&clients.Config{
		ServiceName: "dateval-api",
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   10,
			Timeout:       time.Second,
			HalfOpenLimit: 2,
		},
	})
	require.NoError(t, err)

	return acl.NewDateAPIClient(acl.DateAPIClientConfig{Client: client})
}

// TestDateAPI_CheckDate_Integration verifies the full round trip: ACL
// client through the HTTP stack to the domain and back.
func TestDateAPI_CheckDate_Integration(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)

	facts, err := client.CheckDate(context.Background(), 28, 9, 2007)

	require.NoError(t, err)
	assert.Equal(t, "28/09/2007", facts.Rendered)
	assert.Equal(t, 28, facts.Day)
	assert.Equal(t, 9, facts.Month)
	assert.Equal(t, 2007, facts.Year)
	assert.False(t, facts.LeapYear)
	assert.Equal(t, 30, facts.DaysInMonth)
	assert.Equal(t, 271, facts.DayOfYear)
}

// TestDateAPI_ErrorMapping_InvalidDate verifies that a rejected date
// surfaces as a domain value error after crossing the wire twice.
func TestDateAPI_ErrorMapping_InvalidDate(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)

	_, err := client.CheckDate(context.Background(), 31, 2, 2020)

	require.Error(t, err)
	assert.True(t, domain.IsInvalidValue(err), "expected value error kind")

	var valueErr *domain.ValueError
	require.ErrorAs(t, err, &valueErr)
	assert.Equal(t, "day", valueErr.Field)
	assert.Contains(t, valueErr.Message, "not valid for month 2")
}

// TestDateAPI_CompareDates_Integration verifies comparison semantics over
// the wire: year is the primary key, so 2007 sorts after 1986.
func TestDateAPI_CompareDates_Integration(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)

	cmp, err := client.CompareDates(context.Background(),
		ports.DateArgs{Day: 28, Month: 9, Year: 2007},
		ports.DateArgs{Day: 3, Month: 11, Year: 1986})

	require.NoError(t, err)
	assert.False(t, cmp.Equal)
	assert.False(t, cmp.Less)
	assert.True(t, cmp.Greater)
	assert.False(t, cmp.LessOrEqual)
	assert.Equal(t, 1, cmp.Ordering)
}

// TestDateAPI_CompareDates_EqualDates verifies the reflexive case.
func TestDateAPI_CompareDates_EqualDates(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)

	cmp, err := client.CompareDates(context.Background(),
		ports.DateArgs{Day: 22, Month: 11, Year: 2002},
		ports.DateArgs{Day: 22, Month: 11, Year: 2002})

	require.NoError(t, err)
	assert.True(t, cmp.Equal)
	assert.True(t, cmp.LessOrEqual)
	assert.False(t, cmp.Less)
	assert.False(t, cmp.Greater)
	assert.Equal(t, 0, cmp.Ordering)
}

// TestDateAPI_CalendarQueries_Integration exercises the leap-year and
// month-length endpoints through the client.
func TestDateAPI_CalendarQueries_Integration(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)
	ctx := context.Background()

	leap, err := client.LeapYear(ctx, 2000)
	require.NoError(t, err)
	assert.True(t, leap, "2000 is divisible by 400")

	leap, err = client.LeapYear(ctx, 1900)
	require.NoError(t, err)
	assert.False(t, leap, "1900 is divisible by 100 but not 400")

	days, err := client.DaysInMonth(ctx, 2, 2020)
	require.NoError(t, err)
	assert.Equal(t, 29, days)

	days, err = client.DaysInMonth(ctx, 2, 2019)
	require.NoError(t, err)
	assert.Equal(t, 28, days)

	_, err = client.DaysInMonth(ctx, 13, 2020)
	require.Error(t, err)
	assert.True(t, domain.IsInvalidValue(err), "month 13 is a value error")
}

// TestDateAPI_HealthCheck_Integration verifies the client doubles as a
// health checker against the live service.
func TestDateAPI_HealthCheck_Integration(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)

	registry := ports.NewHealthRegistry()
	require.NoError(t, registry.Register(client))

	result := registry.CheckAll(context.Background())
	assert.Equal(t, ports.HealthStatusHealthy, result.Status)
	require.Contains(t, result.Checks, "date-api")
	assert.Equal(t, ports.HealthStatusHealthy, result.Checks["date-api"].Status)
}

// TestDateAPI_ErrorMapping_ServiceDown verifies transport failures map to
// the unavailable error kind.
func TestDateAPI_ErrorMapping_ServiceDown(t *testing.T) {
	server := startTestService(t)
	client := newDateAPIClient(t, server.URL)

	server.Close()

	_, err := client.CheckDate(context.Background(), 28, 9, 2007)

	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err), "expected unavailable error kind")
}
