package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := newServer(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, body string) (int, map[string]any) {
	t.Helper()
	resp, err := http.Post(ts.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestAnalyzeOrion(t *testing.T) {
	ts := testServer(t)

	code, out := post(t, ts, "/v1/orion/analyze", `{"levels": [10], "feathers": 100}`)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "orion", out["economy"])
	assert.Equal(t, 10.0, out["generation"])
	assert.Equal(t, 0.0, out["best"])

	upgrades := out["upgrades"].([]any)
	require.Len(t, upgrades, 9)
	first := upgrades[0].(map[string]any)
	assert.Equal(t, "Feather Generation", first["name"])
	assert.Equal(t, "/orion/upg-0.png", first["icon"])
	assert.Equal(t, "Generates +10 feather per second", first["description"])

	lookahead := out["lookahead"].(map[string]any)
	assert.Len(t, lookahead["steps"], 100)
}

func TestAnalyzeAcceptsSuffixedBalance(t *testing.T) {
	ts := testServer(t)

	code, plain := post(t, ts, "/v1/orion/analyze", `{"levels": [10], "feathers": 2500000}`)
	require.Equal(t, http.StatusOK, code)
	code, suffixed := post(t, ts, "/v1/orion/analyze", `{"levels": [10], "feathers": "2.5M"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, plain, suffixed)

	code, _ = post(t, ts, "/v1/orion/analyze", `{"feathers": "plenty"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAnalyzeEmptyStateEncodesInfinityAsNull(t *testing.T) {
	ts := testServer(t)

	code, out := post(t, ts, "/v1/bubba/analyze", `{}`)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "bubba", out["economy"])
	assert.Nil(t, out["time_to_target"])
	assert.Equal(t, -1.0, out["best"])
	assert.Len(t, out["upgrades"], 28)
}

func TestNext(t *testing.T) {
	ts := testServer(t)

	code, out := post(t, ts, "/v1/orion/next", `{"levels": [10]}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0.0, out["best"])
	assert.Equal(t, "Feather Generation", out["name"])
	assert.Equal(t, 130.0, out["cost"])

	code, out = post(t, ts, "/v1/orion/next", `{}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, -1.0, out["best"])
	assert.NotContains(t, out, "name")
}

func TestBadRequests(t *testing.T) {
	ts := testServer(t)

	tests := []struct {
		name string
		path string
		body string
		code int
	}{
		{"unknown economy", "/v1/castle/analyze", `{}`, http.StatusNotFound},
		{"malformed body", "/v1/orion/analyze", `{"levels": `, http.StatusBadRequest},
		{"unknown field", "/v1/orion/analyze", `{"level": [1]}`, http.StatusBadRequest},
		{"negative level", "/v1/bubba/analyze", `{"levels": [-1]}`, http.StatusBadRequest},
		{"restricted offset", "/v1/bubba/next", `{"mindful_offsets": [0, 0, 0, 1]}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := post(t, ts, tt.path, tt.body)
			assert.Equal(t, tt.code, code)
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestConcurrentIdenticalRequests(t *testing.T) {
	ts := testServer(t)
	body := `{"levels": [25, 0, 3, 2, 0, 1], "feathers": 100}`

	var wg sync.WaitGroup
	results := make([]nextResponse, 8)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(ts.URL+"/v1/orion/next", "application/json", strings.NewReader(body))
			if err != nil {
				errs[i] = err
				return
			}
			defer resp.Body.Close()
			errs[i] = json.NewDecoder(resp.Body).Decode(&results[i])
		}()
	}
	wg.Wait()

	for i, next := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, 2, next.Best)
		assert.Equal(t, "Feather Multiplier", next.Name)
	}
}

func TestNumberMarshalsNonFiniteAsNull(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		b, err := json.Marshal(number(v))
		require.NoError(t, err)
		assert.Equal(t, "null", string(b))
	}

	b, err := json.Marshal(number(1.5e300))
	require.NoError(t, err)
	assert.Equal(t, "1.5e+300", string(b))
}
