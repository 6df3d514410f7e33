// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSetView(t *testing.T, view *View) {
	t.Helper()
	require.NoError(t, setViewState(view))
}

func clearView(t *testing.T) {
	t.Helper()
	currentMu.Lock()
	currentState = nil
	currentMu.Unlock()
}

func serve(t *testing.T, handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest("GET", path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestVisualizer_renderMain(t *testing.T) {
	mustSetView(t, discreteView(t))
	rr := serve(t, renderMain, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "discrete")
	assert.Contains(t, body, "/"+histogramRef)
	assert.Contains(t, body, "/"+aliasRef)
}

func TestVisualizer_renderMainHidesAliasForContinuous(t *testing.T) {
	mustSetView(t, continuousView(t))
	rr := serve(t, renderMain, "/")

	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.NotContains(t, body, "/"+aliasRef)
	assert.Contains(t, body, "configured")
	assert.Contains(t, body, "<td>2.5</td>")
	assert.Contains(t, body, "<td>6.25</td>")
}

func TestVisualizer_convertLineData(t *testing.T) {
	result := convertLineData([][2]float64{{1.0, 2.0}, {3.0, 4.0}})

	assert.Len(t, result, 2)
	assert.Equal(t, opts.LineData{Value: [2]float64{1.0, 2.0}}, result[0])
	assert.Equal(t, opts.LineData{Value: [2]float64{3.0, 4.0}}, result[1])
}

func TestVisualizer_convertBarData(t *testing.T) {
	result := convertBarData([]float64{0.25, 0.75})

	assert.Equal(t, []opts.BarData{{Value: 0.25}, {Value: 0.75}}, result)
}

func TestVisualizer_renderHistogram(t *testing.T) {
	for _, view := range []*View{continuousView(t), discreteView(t)} {
		mustSetView(t, view)
		rr := serve(t, renderHistogram, "/"+histogramRef)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Observed")
	}
}

func TestVisualizer_renderECDF(t *testing.T) {
	mustSetView(t, continuousView(t))
	rr := serve(t, renderECDF, "/"+ecdfRef)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "eCDF")
}

func TestVisualizer_renderAliasTable(t *testing.T) {
	mustSetView(t, discreteView(t))
	rr := serve(t, renderAliasTable, "/"+aliasRef)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "discrete Alias Table")
}

func TestVisualizer_renderAliasTableRequiresDiscrete(t *testing.T) {
	mustSetView(t, continuousView(t))
	rr := serve(t, renderAliasTable, "/"+aliasRef)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestVisualizer_handlersWithoutState(t *testing.T) {
	handlers := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"renderMain", renderMain},
		{"renderHistogram", renderHistogram},
		{"renderECDF", renderECDF},
		{"renderAliasTable", renderAliasTable},
	}
	for _, tc := range handlers {
		t.Run(tc.name, func(t *testing.T) {
			clearView(t)
			rr := serve(t, tc.handler, "/")
			assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		})
	}
}

func TestVisualizer_FireUpWeb(t *testing.T) {
	view := discreteView(t)
	done := make(chan error, 1)
	go func() {
		done <- FireUpWeb(view, "0")
	}()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(1 * time.Second):
		// If no error after 1 seconds, pass the test
	}
}

func TestVisualizer_FireUpWebRejectsNilView(t *testing.T) {
	err := FireUpWeb(nil, "0")
	assert.Error(t, err)
}
