// internal/router/router_test.go
package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/shop-admin/internal/config"
	"github.com/javajoker/shop-admin/internal/database"
	"github.com/javajoker/shop-admin/internal/i18n"
	"github.com/javajoker/shop-admin/internal/models"
	"github.com/javajoker/shop-admin/internal/repository"
	"github.com/javajoker/shop-admin/internal/utils"
)

const frontendOrigin = "http://localhost:3000"

type RouterTestSuite struct {
	suite.Suite
	store  *repository.MemoryStore
	router *gin.Engine
	stop   context.CancelFunc
}

func (suite *RouterTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize())
}

func (suite *RouterTestSuite) SetupTest() {
	suite.store = repository.NewMemoryStore()
	suite.Require().NoError(database.SeedInitialData(context.Background(), suite.store))

	cfg := &config.Config{
		Environment: "test",
		CORS:        config.CORSConfig{AllowedOrigin: frontendOrigin},
		Auth:        config.AuthConfig{Username: "admin", Password: "admin123"},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
			LoginPerMinute:    6000,
			LoginBurst:        100,
		},
	}
	var ctx context.Context
	ctx, suite.stop = context.WithCancel(context.Background())
	suite.router = Initialize(ctx, suite.store.Stores(), cfg)
}

func (suite *RouterTestSuite) TearDownTest() {
	suite.stop()
}

func (suite *RouterTestSuite) request(method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *RouterTestSuite) decode(w *httptest.ResponseRecorder, target interface{}) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

func (suite *RouterTestSuite) createProduct(name, category string, price float64, stock int) models.ProductView {
	w := suite.request(http.MethodPost, "/api/products", gin.H{
		"name":         name,
		"categoryName": category,
		"price":        price,
		"stock":        stock,
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var view models.ProductView
	suite.decode(w, &view)
	return view
}

func (suite *RouterTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var body map[string]string
	suite.decode(w, &body)
	assert.Equal(suite.T(), "healthy", body["status"])
	assert.Equal(suite.T(), Version, body["version"])
}

func (suite *RouterTestSuite) TestGetCategories() {
	w := suite.request(http.MethodGet, "/api/categories", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var categories []models.Category
	suite.decode(w, &categories)
	require.Len(suite.T(), categories, len(database.DefaultCategories))
	for i, category := range categories {
		assert.Equal(suite.T(), database.DefaultCategories[i], category.Name)
		assert.NotZero(suite.T(), category.ID)
	}
}

func (suite *RouterTestSuite) TestCreateProduct() {
	w := suite.request(http.MethodPost, "/api/products",
		`{"id": 900, "name": "Phone", "categoryName": "Electronics", "price": 499.99, "stock": 10}`)
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	var created models.ProductView
	suite.decode(w, &created)
	assert.NotZero(suite.T(), created.ID)
	assert.NotEqual(suite.T(), uint(900), created.ID)
	assert.Equal(suite.T(), "Phone", created.Name)
	assert.Equal(suite.T(), "Electronics", created.CategoryName)
	assert.True(suite.T(), created.Price.Equal(decimal.RequireFromString("499.99")))
	assert.Equal(suite.T(), 10, created.Stock)

	// Price is a JSON number, not a string
	assert.Contains(suite.T(), w.Body.String(), `"price":499.99`)
}

func (suite *RouterTestSuite) TestCreateProductUnknownCategory() {
	w := suite.request(http.MethodPost, "/api/products", gin.H{
		"name":         "Lamp",
		"categoryName": "Lighting",
		"price":        20,
		"stock":        1,
	})
	require.Equal(suite.T(), http.StatusNotFound, w.Code)

	var resp utils.APIResponse
	suite.decode(w, &resp)
	assert.False(suite.T(), resp.Success)
	require.NotNil(suite.T(), resp.Error)
	assert.Equal(suite.T(), "NOT_FOUND", resp.Error.Code)
	assert.Equal(suite.T(), "Category not found: Lighting", resp.Error.Message)

	count, _ := suite.store.CountProducts(context.Background())
	assert.Zero(suite.T(), count)
}

func (suite *RouterTestSuite) TestCreateProductValidation() {
	w := suite.request(http.MethodPost, "/api/products", gin.H{
		"name":         "Phone",
		"categoryName": "Electronics",
		"price":        -1,
		"stock":        -5,
	})
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string                  `json:"code"`
			Details []utils.ValidationError `json:"details"`
		} `json:"error"`
	}
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "VALIDATION_ERROR", resp.Error.Code)

	fields := make([]string, 0, len(resp.Error.Details))
	for _, detail := range resp.Error.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(suite.T(), []string{"price", "stock"}, fields)
}

func (suite *RouterTestSuite) TestCreateProductPriceMustFitColumn() {
	bodies := map[string]string{
		"too many decimals": `{"name": "Gum", "categoryName": "Electronics", "price": 1.005, "stock": 1}`,
		"too large":         `{"name": "Yacht", "categoryName": "Sports", "price": 123456789012.50, "stock": 1}`,
		"missing":           `{"name": "Gum", "categoryName": "Electronics", "stock": 1}`,
		"null":              `{"name": "Gum", "categoryName": "Electronics", "price": null, "stock": 1}`,
	}

	for name, body := range bodies {
		suite.Run(name, func() {
			w := suite.request(http.MethodPost, "/api/products", body)
			require.Equal(suite.T(), http.StatusBadRequest, w.Code, w.Body.String())

			var resp struct {
				Error struct {
					Code    string                  `json:"code"`
					Details []utils.ValidationError `json:"details"`
				} `json:"error"`
			}
			suite.decode(w, &resp)
			assert.Equal(suite.T(), "VALIDATION_ERROR", resp.Error.Code)
			require.Len(suite.T(), resp.Error.Details, 1)
			assert.Equal(suite.T(), "price", resp.Error.Details[0].Field)
		})
	}

	count, _ := suite.store.CountProducts(context.Background())
	assert.Zero(suite.T(), count)
}

func (suite *RouterTestSuite) TestUpdateProductPriceMustFitColumn() {
	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)

	w := suite.request(http.MethodPut, "/api/products/"+itoa(phone.ID),
		`{"name": "Phone", "categoryName": "Electronics", "price": 499.999, "stock": 10}`)
	require.Equal(suite.T(), http.StatusBadRequest, w.Code)

	w = suite.request(http.MethodGet, "/api/products/"+itoa(phone.ID), nil)
	var stored models.ProductView
	suite.decode(w, &stored)
	assert.Equal(suite.T(), "499.99", stored.Price.String())
}

func (suite *RouterTestSuite) TestCreateProductMalformedBody() {
	w := suite.request(http.MethodPost, "/api/products", `{"name": `)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	var resp utils.APIResponse
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "BAD_REQUEST", resp.Error.Code)
}

func (suite *RouterTestSuite) TestListProducts() {
	w := suite.request(http.MethodGet, "/api/products", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(), `[]`, w.Body.String())

	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)
	novel := suite.createProduct("Novel", "Books", 12.5, 4)

	w = suite.request(http.MethodGet, "/api/products", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var products []models.ProductView
	suite.decode(w, &products)
	require.Len(suite.T(), products, 2)
	assert.Equal(suite.T(), phone.ID, products[0].ID)
	assert.Equal(suite.T(), "Electronics", products[0].CategoryName)
	assert.Equal(suite.T(), novel.ID, products[1].ID)
	assert.Equal(suite.T(), "Books", products[1].CategoryName)
}

func (suite *RouterTestSuite) TestGetProduct() {
	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)

	w := suite.request(http.MethodGet, "/api/products/"+itoa(phone.ID), nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	var found models.ProductView
	suite.decode(w, &found)
	assert.Equal(suite.T(), "Phone", found.Name)

	w = suite.request(http.MethodGet, "/api/products/9999", nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.request(http.MethodGet, "/api/products/abc", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestGetCategoryProducts() {
	suite.createProduct("Phone", "Electronics", 499.99, 10)
	suite.createProduct("Novel", "Books", 12.5, 4)

	books, _ := suite.store.FindCategoryByName(context.Background(), "Books")
	require.NotNil(suite.T(), books)

	w := suite.request(http.MethodGet, "/api/categories/"+itoa(books.ID)+"/products", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var products []models.ProductView
	suite.decode(w, &products)
	require.Len(suite.T(), products, 1)
	assert.Equal(suite.T(), "Novel", products[0].Name)
}

func (suite *RouterTestSuite) TestUpdateProduct() {
	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)

	w := suite.request(http.MethodPut, "/api/products/"+itoa(phone.ID), gin.H{
		"name":         "Phone Pro",
		"categoryName": "Electronics",
		"price":        599.99,
		"stock":        8,
	})
	require.Equal(suite.T(), http.StatusOK, w.Code, w.Body.String())

	var updated models.ProductView
	suite.decode(w, &updated)
	assert.Equal(suite.T(), phone.ID, updated.ID)
	assert.Equal(suite.T(), "Phone Pro", updated.Name)
	assert.True(suite.T(), updated.Price.Equal(decimal.RequireFromString("599.99")))
	assert.Equal(suite.T(), 8, updated.Stock)
}

func (suite *RouterTestSuite) TestUpdateProductNotFound() {
	w := suite.request(http.MethodPut, "/api/products/321", gin.H{
		"name":         "Ghost",
		"categoryName": "Electronics",
		"price":        1,
		"stock":        1,
	})
	require.Equal(suite.T(), http.StatusNotFound, w.Code)

	var resp utils.APIResponse
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "Product not found with id: 321", resp.Error.Message)
}

func (suite *RouterTestSuite) TestUpdateProductUnknownCategory() {
	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)

	w := suite.request(http.MethodPut, "/api/products/"+itoa(phone.ID), gin.H{
		"name":         "Phone",
		"categoryName": "Gadgets",
		"price":        1,
		"stock":        1,
	})
	require.Equal(suite.T(), http.StatusNotFound, w.Code)

	var resp utils.APIResponse
	suite.decode(w, &resp)
	assert.Equal(suite.T(), "Category not found: Gadgets", resp.Error.Message)
}

func (suite *RouterTestSuite) TestDeleteProduct() {
	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)
	path := "/api/products/" + itoa(phone.ID)

	w := suite.request(http.MethodDelete, path, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(suite.T(), "Product deleted successfully", w.Body.String())

	w = suite.request(http.MethodDelete, path, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestDeleteProductTranslated() {
	phone := suite.createProduct("Phone", "Electronics", 499.99, 10)

	w := suite.request(http.MethodDelete, "/api/products/"+itoa(phone.ID), nil,
		"Accept-Language", "zh-TW,zh;q=0.9")
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "商品已成功刪除", w.Body.String())
}

func (suite *RouterTestSuite) TestDashboardStats() {
	w := suite.request(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.JSONEq(suite.T(),
		`{"totalProducts":0,"totalCategories":5,"totalInventoryValue":0,"totalStock":0}`,
		w.Body.String())

	suite.createProduct("Phone", "Electronics", 499.99, 10)
	suite.createProduct("Novel", "Books", 12.5, 4)

	w = suite.request(http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var stats models.DashboardStats
	suite.decode(w, &stats)
	assert.Equal(suite.T(), int64(2), stats.TotalProducts)
	assert.Equal(suite.T(), int64(5), stats.TotalCategories)
	assert.True(suite.T(), decimal.RequireFromString("5049.90").Equal(stats.TotalInventoryValue))
	assert.Equal(suite.T(), int64(14), stats.TotalStock)
}

func (suite *RouterTestSuite) TestSellerLifecycle() {
	w := suite.request(http.MethodPost, "/api/sellers", gin.H{
		"id":       55,
		"name":     "Acme",
		"address":  "1 Market St",
		"email":    "acme@example.com",
		"password": "secret",
		"phone":    "555-0100",
		"statusId": 1,
	})
	require.Equal(suite.T(), http.StatusCreated, w.Code, w.Body.String())

	var created models.SellerDetails
	suite.decode(w, &created)
	assert.Equal(suite.T(), uint(1), created.ID)
	assert.Equal(suite.T(), 1, created.StatusID)
	path := "/api/sellers/" + itoa(created.ID)

	w = suite.request(http.MethodGet, "/api/sellers/count", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), "1", w.Body.String())

	w = suite.request(http.MethodGet, path, nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)

	w = suite.request(http.MethodPut, path, gin.H{"name": "Acme Corp", "statusId": 2})
	require.Equal(suite.T(), http.StatusOK, w.Code)
	var updated models.SellerDetails
	suite.decode(w, &updated)
	assert.Equal(suite.T(), "Acme Corp", updated.Name)
	assert.Equal(suite.T(), 2, updated.StatusID)
	assert.Empty(suite.T(), updated.Email)

	w = suite.request(http.MethodGet, "/api/sellers", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	var sellers []models.SellerDetails
	suite.decode(w, &sellers)
	assert.Len(suite.T(), sellers, 1)

	w = suite.request(http.MethodDelete, path, nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.String())

	// Missing sellers still delete cleanly
	w = suite.request(http.MethodDelete, path, nil)
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	w = suite.request(http.MethodGet, path, nil)
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestUpdateMissingSeller() {
	w := suite.request(http.MethodPut, "/api/sellers/42", gin.H{"name": "ghost"})
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *RouterTestSuite) TestLogin() {
	w := suite.request(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "admin123"})
	require.Equal(suite.T(), http.StatusOK, w.Code)

	var resp models.LoginResponse
	suite.decode(w, &resp)
	assert.True(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Login successful", resp.Message)

	w = suite.request(http.MethodPost, "/api/auth/login", gin.H{"username": "admin", "password": "nope"})
	require.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	suite.decode(w, &resp)
	assert.False(suite.T(), resp.Success)
	assert.Equal(suite.T(), "Invalid username or password", resp.Message)
}

func (suite *RouterTestSuite) TestLoginMissingFields() {
	w := suite.request(http.MethodPost, "/api/auth/login", gin.H{"username": "admin"})
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *RouterTestSuite) TestCORS() {
	w := suite.request(http.MethodGet, "/api/categories", nil, "Origin", frontendOrigin)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), frontendOrigin, w.Header().Get("Access-Control-Allow-Origin"))

	w = suite.request(http.MethodGet, "/api/categories", nil, "Origin", "http://evil.example")
	assert.Equal(suite.T(), http.StatusForbidden, w.Code)
	assert.Empty(suite.T(), w.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *RouterTestSuite) TestRequestIDEchoed() {
	w := suite.request(http.MethodGet, "/health", nil, "X-Request-ID", "req-123")
	assert.Equal(suite.T(), "req-123", w.Header().Get("X-Request-ID"))

	w = suite.request(http.MethodGet, "/health", nil)
	assert.NotEmpty(suite.T(), w.Header().Get("X-Request-ID"))
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func TestLoginRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize())

	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigin: frontendOrigin},
		Auth: config.AuthConfig{Username: "admin", Password: "admin123"},
		RateLimit: config.RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
			LoginPerMinute:    1,
			LoginBurst:        2,
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := Initialize(ctx, repository.NewMemoryStore().Stores(), cfg)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"admin","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusUnauthorized, http.StatusUnauthorized, http.StatusTooManyRequests}, codes)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
