package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/JG-OLIVEIRA/ccomp-uerj-progress/internal/backend"
)

// newProxyFixture wires a StudentController onto a fake upstream and
// returns the router plus a counter of requests that actually reached it.
func newProxyFixture(t *testing.T, handler http.HandlerFunc) (*gin.Engine, *atomic.Int64) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
	controller := NewStudentController(nil, client)

	router := gin.New()
	router.PUT("/api/students/:studentId/current-disciplines/:disciplineId", controller.PutCurrentDiscipline)
	router.DELETE("/api/students/:studentId/current-disciplines/:disciplineId", controller.DeleteCurrentDiscipline)
	router.PUT("/api/students/:studentId/completed-disciplines/:disciplineId", controller.PutCompletedDiscipline)
	return router, &hits
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestPutCurrentDiscipline(t *testing.T) {
	router, hits := newProxyFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/students/202110001/current-disciplines/42", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"classNumber":3}`, string(body))
		io.WriteString(w, `{"studentId":"202110001"}`)
	})

	rec := doJSON(router, http.MethodPut, "/api/students/202110001/current-disciplines/42", `{"classNumber":3}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"studentId":"202110001"}`, rec.Body.String())
	assert.Equal(t, int64(1), hits.Load())
}

func TestPutCurrentDisciplineRejectsNonNumericClass(t *testing.T) {
	router, hits := newProxyFixture(t, func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name string
		body string
	}{
		{name: "string class number", body: `{"classNumber":"3"}`},
		{name: "missing class number", body: `{}`},
		{name: "empty body", body: ``},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(router, http.MethodPut, "/api/students/202110001/current-disciplines/42", tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"classNumber must be a number"}`, rec.Body.String())
		})
	}

	// Validation failures must never reach the backend
	assert.Equal(t, int64(0), hits.Load())
}

func TestPutCurrentDisciplineUpstreamErrorPassthrough(t *testing.T) {
	router, _ := newProxyFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error":"student not found"}`)
	})

	rec := doJSON(router, http.MethodPut, "/api/students/999/current-disciplines/42", `{"classNumber":1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "student not found")
}

func TestDeleteCurrentDisciplineEmptyUpstreamBody(t *testing.T) {
	router, hits := newProxyFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	rec := doJSON(router, http.MethodDelete, "/api/students/202110001/current-disciplines/42", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// An empty upstream body still yields valid JSON for the frontend
	assert.JSONEq(t, `{}`, rec.Body.String())
	assert.Equal(t, int64(1), hits.Load())
}

func TestPutCompletedDiscipline(t *testing.T) {
	router, hits := newProxyFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/students/202110001/completed-disciplines/42", r.URL.Path)
		io.WriteString(w, `{"completedDisciplines":["42"]}`)
	})

	rec := doJSON(router, http.MethodPut, "/api/students/202110001/completed-disciplines/42", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "42")
	assert.Equal(t, int64(1), hits.Load())
}
