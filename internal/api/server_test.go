package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"travelcatalog/internal/api"
	"travelcatalog/internal/api/handler/cataloghandler"
	"travelcatalog/internal/catalog"
	mockcatalog "travelcatalog/internal/catalog/mock"
	"travelcatalog/pkg/domain"
	"travelcatalog/pkg/logger"
	"travelcatalog/pkg/serrors"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func newTestServer(t *testing.T, opts api.Options) (*mockcatalog.MockCatalog, *httptest.Server) {
	t.Helper()

	c := mockcatalog.NewMockCatalog(gomock.NewController(t))
	if opts.MetricsPath == "" {
		opts.MetricsPath = "/metrics"
	}

	srv, err := api.NewServer(api.Deps{Deps: cataloghandler.Deps{Catalog: c, Pinger: okPinger{}}}, opts)
	require.NoError(t, err)
	require.NotNil(t, srv.ErrorLog)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)

	return c, ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()

	res, err := http.Get(url) //nolint: noctx
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	return res, string(body)
}

func TestServer_Routes(t *testing.T) {
	c, ts := newTestServer(t, api.Options{RequestTimeout: 5 * time.Second})
	c.EXPECT().List(gomock.Any()).Return([]domain.Package{}, nil)
	c.EXPECT().Delete(gomock.Any(), "abc").Return(nil)

	res, body := get(t, ts.URL+"/api/packages")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `[]`, body)
	require.NotEmpty(t, res.Header.Get("X-Request-Id"))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	res, err := http.Post(ts.URL+"/api/deletePackage", "application/json", strings.NewReader(`{"id":"abc"}`)) //nolint: noctx
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body = get(t, ts.URL+"/health")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"status":"ok"}`, body)

	res, body = get(t, ts.URL+"/api/specs/v1.yaml")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "openapi: 3.0.3")

	res, _ = get(t, ts.URL+"/api/docs/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, body = get(t, ts.URL+"/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, "go_goroutines")
	require.Contains(t, body, "/api/packages")
}

func TestServer_Preflight(t *testing.T) {
	_, ts := newTestServer(t, api.Options{})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodOptions, ts.URL+"/api/addPackage", nil)
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "GET, POST, OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
}

func TestServer_Toggles(t *testing.T) {
	_, ts := newTestServer(t, api.Options{DisableDocs: true, PprofEnabled: true, MetricsPath: "/internal/metrics"})

	res, _ := get(t, ts.URL+"/api/specs/v1.yaml")
	require.Equal(t, http.StatusNotFound, res.StatusCode)

	res, _ = get(t, ts.URL+"/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = get(t, ts.URL+"/internal/metrics")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_RecoversFromPanics(t *testing.T) {
	c, ts := newTestServer(t, api.Options{})
	c.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Package, error) {
		panic("boom")
	})

	res, _ := get(t, ts.URL+"/api/packages")
	require.Equal(t, http.StatusInternalServerError, res.StatusCode)
}

func TestServer_RequestTimeoutKeepsMessageContract(t *testing.T) {
	c, ts := newTestServer(t, api.Options{RequestTimeout: 50 * time.Millisecond})
	c.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ catalog.Input) (*domain.Package, error) {
			select {
			case <-ctx.Done():
				return nil, serrors.Wrap(serrors.ErrInternal, ctx.Err(), "could not store package")
			case <-time.After(2 * time.Second):
				return &domain.Package{}, nil
			}
		})
	c.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Package, error) {
		<-ctx.Done()

		return nil, serrors.Wrap(serrors.ErrInternal, ctx.Err(), "could not list packages")
	})

	res, err := http.Post(ts.URL+"/api/addPackage", "application/json", //nolint: noctx
		strings.NewReader(`{"packageName":"a","packageCode":"b","destination":"c","duration":1,"price":1}`))
	require.NoError(t, err)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	_ = res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/json; charset=utf-8", res.Header.Get("Content-Type"))
	require.JSONEq(t, `{"message":"could not store package: context deadline exceeded"}`, string(body))

	res, body2 := get(t, ts.URL+"/api/packages")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.JSONEq(t, `{"message":"Error fetching packages"}`, body2)
}
