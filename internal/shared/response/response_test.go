package response_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Chayapol0073-141266/HRM-SDcon/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)

	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
}

func TestPaginate(t *testing.T) {
	start, end := response.Paginate(25, 3, 10)
	assert.Equal(t, 20, start)
	assert.Equal(t, 25, end)

	start, end = response.Paginate(5, 4, 10)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	start, end = response.Paginate(5, 92233720368547760, 100)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	start, end = response.Paginate(5, math.MaxInt, math.MaxInt)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	start, end = response.Paginate(0, 1, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	start, end = response.Paginate(5, 0, 10)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 20, response.Offset(3, 10))
	assert.Equal(t, 0, response.Offset(1, 10))
	assert.Equal(t, 0, response.Offset(0, 10))
	assert.Equal(t, math.MaxInt, response.Offset(92233720368547760, 100))
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", 1, 20},
		{"?page=3&page_size=5", 3, 5},
		{"?page=-1&page_size=abc", 1, 20},
		{"?page_size=1000", 1, 100},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/x"+tc.query, nil)

		page, pageSize := response.PageParams(c, 20)

		assert.Equal(t, tc.page, page, tc.query)
		assert.Equal(t, tc.pageSize, pageSize, tc.query)
	}
}
