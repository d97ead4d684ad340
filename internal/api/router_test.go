package api_test

import (
	"fmt"
	"net/http"
	"testing"

	apitest "github.com/bargom/sitekit/internal/api/testing"
	"github.com/bargom/sitekit/internal/api/types"
	dbtest "github.com/bargom/sitekit/internal/database/testing"
	"github.com/bargom/sitekit/internal/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryEndpoints(t *testing.T) {
	ts := apitest.NewTestServer(t)

	t.Run("create returns 201 with the stored row", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/categories", map[string]any{
			"name":        "Hardware",
			"description": "Physical goods",
		})
		apitest.AssertStatus(t, resp, http.StatusCreated)

		var created types.CategoryResponse
		apitest.AssertJSON(t, resp, &created)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Hardware", created.Name)
		require.NotNil(t, created.Description)
		assert.Equal(t, "Physical goods", *created.Description)
	})

	t.Run("create without name returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/categories", map[string]any{
			"description": "no name",
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})

	t.Run("get round-trips a created category", func(t *testing.T) {
		id := dbtest.SeedCategory(t, ts.DB, "Software", "Digital goods")

		resp := ts.MakeRequest(http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil)
		apitest.AssertStatus(t, resp, http.StatusOK)

		var got types.CategoryResponse
		apitest.AssertJSON(t, resp, &got)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Software", got.Name)
	})

	t.Run("get missing id returns 404", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/categories/99999", nil)
		apitest.AssertStatus(t, resp, http.StatusNotFound)
		apitest.AssertJSONError(t, resp, "category not found")
	})

	t.Run("get malformed id returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/categories/abc", nil)
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		apitest.AssertJSONError(t, resp, "invalid id")
	})

	t.Run("update changes only supplied fields", func(t *testing.T) {
		id := dbtest.SeedCategory(t, ts.DB, "Before", "keep me")

		resp := ts.MakeRequest(http.MethodPut, fmt.Sprintf("/api/categories/%d", id), map[string]any{
			"name": "After",
		})
		apitest.AssertStatus(t, resp, http.StatusOK)

		var got types.CategoryResponse
		apitest.AssertJSON(t, resp, &got)
		assert.Equal(t, "After", got.Name)
		require.NotNil(t, got.Description)
		assert.Equal(t, "keep me", *got.Description)
	})

	t.Run("update missing id returns 404", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPut, "/api/categories/99999", map[string]any{
			"name": "ghost",
		})
		apitest.AssertStatus(t, resp, http.StatusNotFound)
		resp.Body.Close()
	})

	t.Run("delete returns 204 and removes the row", func(t *testing.T) {
		id := dbtest.SeedCategory(t, ts.DB, "Doomed", "")

		resp := ts.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/categories/%d", id), nil)
		apitest.AssertStatus(t, resp, http.StatusNoContent)
		resp.Body.Close()

		resp = ts.MakeRequest(http.MethodGet, fmt.Sprintf("/api/categories/%d", id), nil)
		apitest.AssertStatus(t, resp, http.StatusNotFound)
		resp.Body.Close()
	})

	t.Run("delete missing id still returns 204", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodDelete, "/api/categories/99999", nil)
		apitest.AssertStatus(t, resp, http.StatusNoContent)
		resp.Body.Close()
	})
}

func TestListPagination(t *testing.T) {
	ts := apitest.NewTestServer(t)

	for i := 0; i < 25; i++ {
		dbtest.SeedCategory(t, ts.DB, fmt.Sprintf("Category %02d", i), "")
	}

	t.Run("envelope carries data and metadata", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/categories?page=2&limit=10", nil)
		apitest.AssertStatus(t, resp, http.StatusOK)
		apitest.AssertContentType(t, resp, "application/json")

		var page pagination.PageResponse[types.CategoryResponse]
		apitest.AssertJSON(t, resp, &page)
		assert.Len(t, page.Data, 10)
		assert.Equal(t, 2, page.Pagination.Page)
		assert.Equal(t, 10, page.Pagination.Limit)
		assert.Equal(t, int64(25), page.Pagination.Total)
		assert.Equal(t, int64(3), page.Pagination.TotalPages)
	})

	t.Run("last page is short", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/categories?page=3&limit=10", nil)
		apitest.AssertStatus(t, resp, http.StatusOK)

		var page pagination.PageResponse[types.CategoryResponse]
		apitest.AssertJSON(t, resp, &page)
		assert.Len(t, page.Data, 5)
	})

	t.Run("page beyond the end returns empty data array", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/categories?page=99&limit=10", nil)
		apitest.AssertStatus(t, resp, http.StatusOK)

		var page pagination.PageResponse[types.CategoryResponse]
		apitest.AssertJSON(t, resp, &page)
		assert.NotNil(t, page.Data)
		assert.Empty(t, page.Data)
		assert.Equal(t, int64(25), page.Pagination.Total)
	})

	t.Run("search narrows total and totalPages together", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/categories?search=Category+0&limit=5", nil)
		apitest.AssertStatus(t, resp, http.StatusOK)

		var page pagination.PageResponse[types.CategoryResponse]
		apitest.AssertJSON(t, resp, &page)
		assert.Equal(t, int64(10), page.Pagination.Total)
		assert.Equal(t, int64(2), page.Pagination.TotalPages)
		assert.Len(t, page.Data, 5)
	})
}

func TestNewsEndpoints(t *testing.T) {
	ts := apitest.NewTestServer(t)

	t.Run("create with category", func(t *testing.T) {
		catID := dbtest.SeedCategory(t, ts.DB, "Releases", "")

		resp := ts.MakeRequest(http.MethodPost, "/api/news", map[string]any{
			"title":       "v2 shipped",
			"content":     "Release notes",
			"category_id": catID,
		})
		apitest.AssertStatus(t, resp, http.StatusCreated)

		var created types.NewsResponse
		apitest.AssertJSON(t, resp, &created)
		require.NotNil(t, created.CategoryID)
		assert.Equal(t, catID, *created.CategoryID)
	})

	t.Run("create without content returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/news", map[string]any{
			"title": "no body",
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})

	t.Run("batch delete removes listed ids only", func(t *testing.T) {
		var ids []int64
		for _, title := range []string{"a", "b", "c", "d"} {
			ids = append(ids, dbtest.SeedNews(t, ts.DB, title, "content", nil))
		}

		resp := ts.MakeRequest(http.MethodDelete, "/api/news", map[string]any{
			"ids": []int64{ids[0], ids[2]},
		})
		apitest.AssertStatus(t, resp, http.StatusNoContent)
		resp.Body.Close()

		for i, id := range ids {
			resp := ts.MakeRequest(http.MethodGet, fmt.Sprintf("/api/news/%d", id), nil)
			if i == 0 || i == 2 {
				apitest.AssertStatus(t, resp, http.StatusNotFound)
			} else {
				apitest.AssertStatus(t, resp, http.StatusOK)
			}
			resp.Body.Close()
		}
	})

	t.Run("batch delete with empty ids returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodDelete, "/api/news", map[string]any{
			"ids": []int64{},
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})
}

func TestProductEndpoints(t *testing.T) {
	ts := apitest.NewTestServer(t)

	t.Run("zero price is accepted", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/products", map[string]any{
			"name":  "Freebie",
			"price": 0,
		})
		apitest.AssertStatus(t, resp, http.StatusCreated)

		var created types.ProductResponse
		apitest.AssertJSON(t, resp, &created)
		require.NotNil(t, created.Price)
		assert.Zero(t, *created.Price)
		assert.Equal(t, int64(0), created.StockQuantity)
	})

	t.Run("omitted price returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/products", map[string]any{
			"name": "No price",
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})

	t.Run("negative price returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/products", map[string]any{
			"name":  "Bad price",
			"price": -1,
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})

	t.Run("stock update to zero sticks", func(t *testing.T) {
		id := dbtest.SeedProduct(t, ts.DB, "Sold Out", 9.99)

		resp := ts.MakeRequest(http.MethodPut, fmt.Sprintf("/api/products/%d", id), map[string]any{
			"stock_quantity": 0,
		})
		apitest.AssertStatus(t, resp, http.StatusOK)

		var got types.ProductResponse
		apitest.AssertJSON(t, resp, &got)
		assert.Equal(t, int64(0), got.StockQuantity)
		assert.Equal(t, "Sold Out", got.Name)
	})
}

func TestMessageEndpoints(t *testing.T) {
	ts := apitest.NewTestServer(t)

	t.Run("create starts pending", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/messages", map[string]any{
			"name":    "Ada",
			"email":   "ada@example.com",
			"content": "Hello",
		})
		apitest.AssertStatus(t, resp, http.StatusCreated)

		var created types.MessageResponse
		apitest.AssertJSON(t, resp, &created)
		assert.Equal(t, "pending", created.Status)
	})

	t.Run("invalid email returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodPost, "/api/messages", map[string]any{
			"name":    "Bad Email",
			"email":   "not-an-email",
			"content": "Hello",
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})

	t.Run("status filter on list", func(t *testing.T) {
		dbtest.SeedMessage(t, ts.DB, "Brian", "bug report", "read")

		resp := ts.MakeRequest(http.MethodGet, "/api/messages?status=read", nil)
		apitest.AssertStatus(t, resp, http.StatusOK)

		var page pagination.PageResponse[types.MessageResponse]
		apitest.AssertJSON(t, resp, &page)
		require.Len(t, page.Data, 1)
		assert.Equal(t, "Brian", page.Data[0].Name)
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		resp := ts.MakeRequest(http.MethodGet, "/api/messages?status=bogus", nil)
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		apitest.AssertJSONError(t, resp, "invalid status")
	})

	t.Run("status transition via update", func(t *testing.T) {
		id := dbtest.SeedMessage(t, ts.DB, "Carol", "hello", "pending")

		resp := ts.MakeRequest(http.MethodPut, fmt.Sprintf("/api/messages/%d", id), map[string]any{
			"status": "archived",
		})
		apitest.AssertStatus(t, resp, http.StatusOK)

		var got types.MessageResponse
		apitest.AssertJSON(t, resp, &got)
		assert.Equal(t, "archived", got.Status)
	})

	t.Run("invalid status value on update returns 400", func(t *testing.T) {
		id := dbtest.SeedMessage(t, ts.DB, "Dave", "hello", "pending")

		resp := ts.MakeRequest(http.MethodPut, fmt.Sprintf("/api/messages/%d", id), map[string]any{
			"status": "deleted",
		})
		apitest.AssertStatus(t, resp, http.StatusBadRequest)
		resp.Body.Close()
	})
}
