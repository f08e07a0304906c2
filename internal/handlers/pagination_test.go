package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestCreatePaginatedResponse(t *testing.T) {
	c := testContext(t, "/api/registrations?page=2&pageSize=10")

	resp := CreatePaginatedResponse(c, []string{"a", "b"}, 42)

	assert.Equal(t, int64(42), resp.TotalRows)
	assert.Equal(t, 5, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 10, resp.PageSize)
}

func TestCreatePaginatedResponseDefaults(t *testing.T) {
	c := testContext(t, "/api/registrations")

	resp := CreatePaginatedResponse(c, nil, 0)

	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, defaultPageSize, resp.PageSize)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestPageParamsClampsOversizedPages(t *testing.T) {
	c := testContext(t, "/api/registrations?page=-3&pageSize=5000")

	page, pageSize := pageParams(c)

	assert.Equal(t, 1, page)
	assert.Equal(t, maxPageSize, pageSize)
}
