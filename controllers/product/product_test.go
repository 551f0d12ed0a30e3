package productcontroller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productcontroller "github.com/danielagv/threadline/controllers/product"
	"github.com/danielagv/threadline/models"
	"github.com/danielagv/threadline/testutil"
)

func titles(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Title)
	}
	return out
}

func TestListProductsNoFilters(t *testing.T) {
	_, db := testutil.NewRouter(t)

	products, err := productcontroller.ListProducts(db, productcontroller.ListFilters{})
	require.NoError(t, err)
	assert.Len(t, products, 6)
	// newest first
	assert.Equal(t, "Simple shorts", products[0].Title)
}

func TestListProductsCategoryAndPrice(t *testing.T) {
	_, db := testutil.NewRouter(t)

	products, err := productcontroller.ListProducts(db, productcontroller.ListFilters{
		Categories: []string{"Shirts"},
		MaxPrice:   200,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Long sleeves shirt", products[0].Title)
	assert.Equal(t, "Shirts", products[0].Category)
	assert.LessOrEqual(t, products[0].Cost, 200.0)
}

func TestListProductsCategorySetIsOr(t *testing.T) {
	_, db := testutil.NewRouter(t)

	products, err := productcontroller.ListProducts(db, productcontroller.ListFilters{
		Categories: []string{"Shirts", "Hoodie"},
	})
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"Long sleeves shirt", "Buttoned up shirt", "Classic hoodie"},
		titles(products))
}

func TestListProductsSearchIsCaseInsensitiveSubstring(t *testing.T) {
	_, db := testutil.NewRouter(t)

	products, err := productcontroller.ListProducts(db, productcontroller.ListFilters{
		SearchText: "SHIRT",
	})
	require.NoError(t, err)
	assert.Len(t, products, 4)

	// matches descriptions too
	products, err = productcontroller.ListProducts(db, productcontroller.ListFilters{
		SearchText: "fleece",
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Classic hoodie", products[0].Title)
}

func TestListProductsPopularOnly(t *testing.T) {
	_, db := testutil.NewRouter(t)

	products, err := productcontroller.ListProducts(db, productcontroller.ListFilters{
		PopularOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.True(t, p.IsPopular)
	}
}

func TestListProductsLimitNewestFirst(t *testing.T) {
	_, db := testutil.NewRouter(t)

	products, err := productcontroller.ListProducts(db, productcontroller.ListFilters{Limit: 2})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Simple shorts", products[0].Title)
	assert.Equal(t, "Classic hoodie", products[1].Title)
}

func TestShopEndpointFilters(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	w := testutil.Do(r, http.MethodGet, "/shop?category=Shirts&max_price=200", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	assert.Equal(t, "Long sleeves shirt", resp.Products[0].Title)
}

func TestShopEndpointZeroMaxPriceIsUnbounded(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	// A zero ceiling means "no ceiling", not "nothing costs zero or less".
	w := testutil.Do(r, http.MethodGet, "/shop?max_price=0", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Products, 6)
}

func TestShopEndpointInvalidMaxPrice(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	w := testutil.Do(r, http.MethodGet, "/shop?max_price=cheap", nil, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShopRequiresLogin(t *testing.T) {
	r, _ := testutil.NewRouter(t)

	w := testutil.Do(r, http.MethodGet, "/shop", nil, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProductDetailIncludesReviews(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	w := testutil.Do(r, http.MethodGet, "/products/1", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	var product models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &product))
	assert.Equal(t, "Casual T-Shirt", product.Title)
	assert.Len(t, product.Reviews, 2)
}

func TestProductDetailNotFound(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	w := testutil.Do(r, http.MethodGet, "/products/999", nil, cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLandingWidgets(t *testing.T) {
	r, _ := testutil.NewRouter(t)

	w := testutil.Do(r, http.MethodGet, "/", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		TopCategories []json.RawMessage `json:"top_categories"`
		TrendingNow   []models.Product  `json:"trending_now"`
		NewArrivals   []models.Product  `json:"new_arrivals"`
		QuickLinks    []json.RawMessage `json:"quick_links"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.TopCategories, 3)
	assert.Len(t, resp.QuickLinks, 2)
	assert.Len(t, resp.TrendingNow, 3)
	assert.Len(t, resp.NewArrivals, 4)
	for _, p := range resp.TrendingNow {
		assert.True(t, p.IsPopular)
	}
}
