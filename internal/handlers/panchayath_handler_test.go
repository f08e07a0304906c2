package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennyhelp/esep-self-employment-hub/internal/cache"
	"github.com/pennyhelp/esep-self-employment-hub/internal/realtime"
	"github.com/pennyhelp/esep-self-employment-hub/models"
)

func TestGroupByDistrict(t *testing.T) {
	// Rows arrive ordered by (district, name), as the query guarantees.
	rows := []models.Panchayath{
		{Name: "A", District: "X"},
		{Name: "B", District: "X"},
		{Name: "C", District: "Y"},
	}

	groups := groupByDistrict(rows)

	require.Len(t, groups, 2)
	assert.Equal(t, "X", groups[0].District)
	assert.Equal(t, []string{"A", "B"}, panchayathNames(groups[0].Panchayaths))
	assert.Equal(t, "Y", groups[1].District)
	assert.Equal(t, []string{"C"}, panchayathNames(groups[1].Panchayaths))
}

func TestGroupByDistrictEmpty(t *testing.T) {
	groups := groupByDistrict(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestGroupByDistrictSingleDistrict(t *testing.T) {
	rows := []models.Panchayath{
		{Name: "Amballur", District: "Thrissur"},
		{Name: "Avanur", District: "Thrissur"},
		{Name: "Chazhur", District: "Thrissur"},
	}

	groups := groupByDistrict(rows)

	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Panchayaths, 3)
}

func panchayathNames(rows []models.Panchayath) []string {
	names := make([]string, len(rows))
	for i, p := range rows {
		names[i] = p.Name
	}
	return names
}

func deletePanchayath(t *testing.T, h *PanchayathHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.DELETE("/api/panchayaths/:id", h.Delete)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/api/panchayaths/"+id, nil))
	return w
}

func TestDeleteReferencedPanchayathConflicts(t *testing.T) {
	ctx := context.Background()
	gdb, mock := newMockDB(t)
	store := cache.NewMemoryStore()
	h := NewPanchayathHandler(gdb, store, realtime.NewHub())

	stale := []byte(`[{"id":7,"name":"Amballur","district":"Thrissur"}]`)
	for _, key := range cache.TableKeys("panchayaths") {
		store.Set(ctx, key, stale, time.Minute)
	}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "registrations" WHERE panchayath_id = \$1`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := deletePanchayath(t, h, "7")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "registrations")
	// No DELETE statement was issued and the cached lists are untouched.
	assert.NoError(t, mock.ExpectationsWereMet())
	for _, key := range cache.TableKeys("panchayaths") {
		got, ok := store.Get(ctx, key)
		require.True(t, ok, "list view %s should survive a refused delete", key)
		assert.Equal(t, stale, got)
	}
}

func TestDeletePanchayathMapsConstraintViolationToConflict(t *testing.T) {
	gdb, mock := newMockDB(t)
	h := NewPanchayathHandler(gdb, cache.NewMemoryStore(), realtime.NewHub())

	// The pre-delete count passes, but a registration lands before the
	// DELETE and the database constraint fires.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "registrations" WHERE panchayath_id = \$1`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "panchayaths"`).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	w := deletePanchayath(t, h, "7")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "registrations")
	assert.NoError(t, mock.ExpectationsWereMet())
}
