package orderControllers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danielagv/threadline/cart"
	orderControllers "github.com/danielagv/threadline/controllers/order"
	"github.com/danielagv/threadline/models"
	"github.com/danielagv/threadline/testutil"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orders.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func TestPlaceOrderMaterializesCart(t *testing.T) {
	db := openDB(t)

	lines := cart.Cart{
		{ProductID: 1, Title: "Casual T-Shirt", Price: 100, Quantity: 2},
		{ProductID: 2, Title: "Long sleeves shirt", Price: 50, Quantity: 1},
	}

	order, err := orderControllers.PlaceOrder(db, 7, lines)
	require.NoError(t, err)

	var got models.Order
	require.NoError(t, db.Preload("Items").First(&got, order.ID).Error)
	assert.Equal(t, uint(7), got.UserID)
	assert.Equal(t, models.OrderStatusProcessing, got.Status)
	assert.NotEmpty(t, got.OrderRef)
	assert.InDelta(t, 270.0, got.TotalPrice, 1e-9)
	assert.False(t, got.PlacedAt.IsZero())

	require.Len(t, got.Items, 2)
	assert.Equal(t, "Casual T-Shirt", got.Items[0].ProductName)
	assert.Equal(t, 100.0, got.Items[0].Price)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, "Long sleeves shirt", got.Items[1].ProductName)
	assert.Equal(t, 50.0, got.Items[1].Price)
	assert.Equal(t, 1, got.Items[1].Quantity)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	db := openDB(t)

	_, err := orderControllers.PlaceOrder(db, 7, nil)
	assert.ErrorIs(t, err, orderControllers.ErrEmptyCart)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCheckoutHandlerPlacesOrderAndClearsCart(t *testing.T) {
	r, db := testutil.NewRouter(t)
	user, cookies := testutil.LoginCustomer(t, r, db)

	for _, path := range []string{"/cart/add/1", "/cart/add/1", "/cart/add/2"} {
		w := testutil.Do(r, http.MethodPost, path, url.Values{}, cookies)
		require.Equal(t, http.StatusSeeOther, w.Code)
		cookies = testutil.MergeCookies(cookies, w)
	}

	w := testutil.Do(r, http.MethodPost, "/checkout", url.Values{}, cookies)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		OrderID  uint    `json:"order_id"`
		OrderRef string  `json:"order_ref"`
		Total    float64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotZero(t, resp.OrderID)
	assert.NotEmpty(t, resp.OrderRef)
	// 100x2 + 150x1 = 350, +8% tax
	assert.InDelta(t, 378.0, resp.Total, 1e-9)
	cookies = testutil.MergeCookies(cookies, w)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, resp.OrderID).Error)
	assert.Equal(t, user.ID, order.UserID)
	assert.Len(t, order.Items, 2)

	// cart is gone after checkout
	cw := testutil.Do(r, http.MethodGet, "/cart", nil, cookies)
	require.Equal(t, http.StatusOK, cw.Code)
	var cartResp struct {
		Items []cart.Line `json:"items"`
	}
	require.NoError(t, json.Unmarshal(cw.Body.Bytes(), &cartResp))
	assert.Empty(t, cartResp.Items)
}

func TestCheckoutHandlerRejectsEmptyCart(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	w := testutil.Do(r, http.MethodPost, "/checkout", url.Values{}, cookies)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutRequiresLogin(t *testing.T) {
	r, _ := testutil.NewRouter(t)

	w := testutil.Do(r, http.MethodPost, "/checkout", url.Values{}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestOrderHistory(t *testing.T) {
	r, db := testutil.NewRouter(t)
	_, cookies := testutil.LoginCustomer(t, r, db)

	w := testutil.Do(r, http.MethodPost, "/cart/add/3", url.Values{}, cookies)
	require.Equal(t, http.StatusSeeOther, w.Code)
	cookies = testutil.MergeCookies(cookies, w)
	w = testutil.Do(r, http.MethodPost, "/checkout", url.Values{}, cookies)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies = testutil.MergeCookies(cookies, w)

	hw := testutil.Do(r, http.MethodGet, "/orders", nil, cookies)
	require.Equal(t, http.StatusOK, hw.Code)
	var resp struct {
		Orders []models.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(hw.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	require.Len(t, resp.Orders[0].Items, 1)
	assert.Equal(t, "Graphic T-shirt", resp.Orders[0].Items[0].ProductName)
}
