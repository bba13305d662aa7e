package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aretw0/clifford"
	"github.com/aretw0/clifford/pkg/adapters/memory"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/aretw0/clifford/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	sampler := clifford.New(
		clifford.WithSeed(1),
		clifford.WithStore(store),
		clifford.WithHooks(metrics.Hooks()),
	)
	return NewHandler(sampler, WithStore(store), WithGatherer(reg)), store
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeRun(t *testing.T, rr *httptest.ResponseRecorder) domain.Run {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var run domain.Run
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &run))
	return run
}

func TestGetHealth(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := do(h, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := do(h, "GET", "/info", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "clifford", resp["name"])
	assert.NotEmpty(t, resp["version"])
	assert.Equal(t, true, resp["store"])
}

func TestSample(t *testing.T) {
	h, store := newTestHandler(t)

	run := decodeRun(t, do(h, "GET", "/sample?n=3", ""))
	assert.Equal(t, 3, run.Qubits)
	assert.Len(t, run.Rows, 6)

	_, err := store.Load(t.Context(), run.ID)
	assert.NoError(t, err, "sampled run is persisted")
}

func TestSample_BadInput(t *testing.T) {
	h, _ := newTestHandler(t)

	assert.Equal(t, http.StatusBadRequest, do(h, "GET", "/sample", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "GET", "/sample?n=abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "GET", "/sample?n=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "GET", "/sample?n=100000", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "GET", "/sample?n=2&format=svg", "").Code)
}

func TestSpec(t *testing.T) {
	doc, err := Spec()
	require.NoError(t, err)

	for _, path := range []string{"/sample", "/figure5", "/canonicalize", "/sweep", "/runs", "/runs/{id}"} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	n := doc.Paths.Find("/sample").Get.Parameters.GetByInAndName("query", "n")
	require.NotNil(t, n)
	assert.Equal(t, float64(MaxQubits), *n.Schema.Value.Max)
}

func TestRequestValidation(t *testing.T) {
	h, store := newTestHandler(t)

	tests := []struct {
		name   string
		method string
		target string
		body   string
		want   string
	}{
		{name: "n above maximum", method: "GET", target: "/sample?n=513", want: `parameter "n"`},
		{name: "unknown format", method: "GET", target: "/figure5?format=svg", want: `parameter "format"`},
		{name: "missing sign", method: "POST", target: "/sweep", body: `{"a":"XI","b":"+ZI"}`},
		{name: "missing operand", method: "POST", target: "/sweep", body: `{"a":"+X"}`},
		{name: "rows not a list", method: "POST", target: "/canonicalize", body: `{"rows":"+X"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(h, tt.method, tt.target, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			if tt.want != "" {
				assert.Contains(t, rr.Body.String(), tt.want)
			}
		})
	}

	ids, err := store.List(t.Context())
	require.NoError(t, err)
	assert.Empty(t, ids, "rejected requests never reach the sampler")
}

func TestFigure5_Formats(t *testing.T) {
	h, _ := newTestHandler(t)

	run := decodeRun(t, do(h, "GET", "/figure5", ""))
	assert.Equal(t, domain.KindFigure5, run.Kind)

	text := do(h, "GET", "/figure5?format=text", "")
	require.Equal(t, http.StatusOK, text.Code)
	lines := strings.Split(strings.TrimSpace(text.Body.String()), "\n")
	assert.Len(t, lines, run.Circuit.Len())

	qasm := do(h, "GET", "/figure5?format=qasm", "")
	require.Equal(t, http.StatusOK, qasm.Code)
	assert.True(t, strings.HasPrefix(qasm.Body.String(), "OPENQASM 2.0;"))
	assert.Contains(t, qasm.Body.String(), "qreg q[4];")
}

func TestSweep(t *testing.T) {
	h, _ := newTestHandler(t)

	run := decodeRun(t, do(h, "POST", "/sweep", `{"a":"+X","b":"+Y"}`))
	assert.Equal(t, []string{"+X", "+Z"}, run.Final)

	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/sweep", `{"a":"+XI","b":"+IZ"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/sweep", `{"a":"+X"`).Code)
}

func TestCanonicalize(t *testing.T) {
	h, _ := newTestHandler(t)

	run := decodeRun(t, do(h, "POST", "/canonicalize", `{"rows":["+XZ","+ZI","+X","+Z"]}`))
	assert.Equal(t, 2, run.Qubits)
	assert.Len(t, run.Rounds, 2)

	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/canonicalize", `{"rows":["+XZ"]}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(h, "POST", "/canonicalize", `{"rows":["+AB","+ZI"]}`).Code)
}

func TestRuns(t *testing.T) {
	h, _ := newTestHandler(t)
	run := decodeRun(t, do(h, "GET", "/figure5", ""))

	list := do(h, "GET", "/runs", "")
	require.Equal(t, http.StatusOK, list.Code)
	var ids []string
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &ids))
	assert.Contains(t, ids, run.ID)

	got := decodeRun(t, do(h, "GET", "/runs/"+run.ID, ""))
	assert.Equal(t, run.Circuit, got.Circuit)

	assert.Equal(t, http.StatusNoContent, do(h, "DELETE", "/runs/"+run.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(h, "GET", "/runs/"+run.ID, "").Code)
}

func TestRuns_NoStore(t *testing.T) {
	h := NewHandler(clifford.New(), WithGatherer(prometheus.NewRegistry()))
	assert.Equal(t, http.StatusNotImplemented, do(h, "GET", "/runs", "").Code)
}

func TestMetrics(t *testing.T) {
	h, _ := newTestHandler(t)
	do(h, "GET", "/figure5", "")

	rr := do(h, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `clifford_runs_total{kind="figure5"} 1`)
	assert.Contains(t, rr.Body.String(), "clifford_rounds_total 4")
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)
	rr := do(h, "OPTIONS", "/sample", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
