package client_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/nikolayk812/shopcart/internal/client"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

// fakeShop serves the REST shape of the stock/catalog service for one product.
func fakeShop(t *testing.T, productID uuid.UUID, amount int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /stock/"+productID.String(), func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"amount":%d}`, productID, amount)
	})
	mux.HandleFunc("GET /products/"+productID.String(), func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"id":%q,"title":"Sneaker","price":179.9,"image":"https://img.example/1.jpg"}`, productID)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_GetStock(t *testing.T) {
	productID := uuid.New()
	srv := fakeShop(t, productID, 5)

	c, err := client.New(srv.URL)
	require.NoError(t, err)

	stock, err := c.GetStock(t.Context(), productID)
	require.NoError(t, err)

	assert.Equal(t, productID, stock.ProductID)
	assert.Equal(t, 5, stock.Available)
}

func TestClient_GetStock_UnknownProduct(t *testing.T) {
	srv := fakeShop(t, uuid.New(), 5)

	c, err := client.New(srv.URL)
	require.NoError(t, err)

	_, err = c.GetStock(t.Context(), uuid.New())
	require.ErrorContains(t, err, "unexpected status 404")
}

func TestClient_GetProduct(t *testing.T) {
	productID := uuid.New()
	srv := fakeShop(t, productID, 5)

	c, err := client.New(srv.URL, client.WithCurrency(currency.EUR))
	require.NoError(t, err)

	product, err := c.GetProduct(t.Context(), productID)
	require.NoError(t, err)

	assert.Equal(t, productID, product.ProductID)
	assert.Equal(t, "Sneaker", product.Title)
	assert.Equal(t, "https://img.example/1.jpg", product.ImageRef)
	assert.True(t, product.Price.Amount.Equal(decimal.RequireFromString("179.9")))
	assert.Equal(t, "EUR", product.Price.Currency.String())
}

func TestClient_GetProduct_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html>offline</html>`)
	}))
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL)
	require.NoError(t, err)

	_, err = c.GetProduct(t.Context(), uuid.New())
	require.ErrorContains(t, err, "json.Decode")
}

func TestClient_New_EmptyBaseURL(t *testing.T) {
	_, err := client.New("")
	require.EqualError(t, err, "baseURL is empty")
}
