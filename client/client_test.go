package client_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"repairdesk-backend/client"
	"repairdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seen struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

// fakeAPI records every request and answers from a fixed route table.
type fakeAPI struct {
	mu       sync.Mutex
	requests []seen
	routes   map[string]func(w http.ResponseWriter)
}

func newFakeAPI(t *testing.T) (*fakeAPI, *client.Client) {
	t.Helper()
	f := &fakeAPI{routes: map[string]func(w http.ResponseWriter){}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, seen{r.Method, r.URL.Path, r.URL.RawQuery, r.Header.Get("Authorization"), string(raw)})
		h, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"route not found"}`))
			return
		}
		h(w)
	}))
	t.Cleanup(srv.Close)
	return f, client.New(client.Config{BaseURL: srv.URL, Token: "tok", Timeout: 2 * time.Second})
}

func (f *fakeAPI) on(route string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[route] = func(w http.ResponseWriter) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (f *fakeAPI) last() seen {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func TestListUnwrapsDataAndSendsToken(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("GET /service-orders", 200, `{"data":[{"id":1,"description":"Tela","status":"open","estimate":120.5,"customerId":4}]}`)

	orders, err := c.ServiceOrders().List(url.Values{"customerId": {"4"}})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.ServiceOrderOpen, orders[0].Status)
	assert.Equal(t, uint(4), orders[0].CustomerID)

	req := api.last()
	assert.Equal(t, "Bearer tok", req.Auth)
	assert.Equal(t, "customerId=4", req.Query)
}

func TestListEmpty(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("GET /customers", 200, `{"data":[]}`)

	got, err := c.Customers().List(nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCreateAndUpdate(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("POST /customers/3/addresses", 201, `{"address":{"id":9,"street":"Rua A","number":"1","customerId":3}}`)
	api.on("PUT /customers/3/addresses/9", 200, `{"message":"ok"}`)

	created, err := c.Addresses(3).Create(map[string]string{"street": "Rua A", "number": "1"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, uint(9), created.ID)

	var sent map[string]string
	require.NoError(t, json.Unmarshal([]byte(api.last().Body), &sent))
	assert.Equal(t, "Rua A", sent["street"])

	updated, err := c.Addresses(3).Update(9, map[string]string{"number": "2"})
	require.NoError(t, err)
	assert.Nil(t, updated, "answer without a record")
}

func TestGetMissingRecordIsError(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("GET /bills/5", 200, `{"bill":null}`)

	_, err := c.Bills().Get(5)
	assert.ErrorIs(t, err, client.ErrNoRecord)
}

func TestDeleteBillUsesSingularPath(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("DELETE /bill/5", 200, `{"message":"bill deleted"}`)
	api.on("DELETE /service-order-item/8", 200, `{"message":"service order item deleted"}`)

	require.NoError(t, c.Bills().Delete(5))
	assert.Equal(t, "/bill/5", api.last().Path)

	require.NoError(t, c.ServiceOrderItems().Delete(8))
	assert.Equal(t, "/service-order-item/8", api.last().Path)
}

func TestNon2xxBecomesAPIError(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("GET /customers/7", 404, `{"message":"customer not found"}`)

	_, err := c.Customers().Get(7)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Status)
	assert.Equal(t, "customer not found", apiErr.Message)
	assert.True(t, client.IsStatus(err, http.StatusNotFound))

	_, err = c.Equipments(1).List(nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "route not found", apiErr.Message)
}

func TestErrorWithoutMessageUsesStatusText(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("GET /hello", 503, `down`)

	err := c.Ping()
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Service Unavailable", apiErr.Message)
}

func TestLogin(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("POST /user/login", 200, `{"accessToken":"abc","user":{"id":1}}`)

	token, err := c.Login("a@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.JSONEq(t, `{"email":"a@example.com","password":"secret123"}`, api.last().Body)
}

func TestValidateSession(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("POST /user/validate", 200, `{"valid":true,"user":{"id":1}}`)

	require.NoError(t, c.ValidateSession("session-token"))
	assert.Equal(t, "Bearer session-token", api.last().Auth)

	assert.True(t, client.IsStatus(c.ValidateSession(""), http.StatusUnauthorized))

	api.on("POST /user/validate", 401, `{"message":"invalid or expired token"}`)
	err := c.ValidateSession("old")
	assert.True(t, client.IsStatus(err, http.StatusUnauthorized))

	api.on("POST /user/validate", 200, `{"valid":false}`)
	assert.Error(t, c.ValidateSession("weird"))
}

func TestBillSummary(t *testing.T) {
	api, c := newFakeAPI(t)
	api.on("GET /bills/summary", 200, `{"summary":{"total":150,"paid":100,"pending":50,"paidCount":1,"pendingCount":1}}`)

	s, err := c.BillSummary(url.Values{"serviceOrderId": {"2"}})
	require.NoError(t, err)
	assert.Equal(t, 150.0, s.Total)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, "serviceOrderId=2", api.last().Query)
}

func TestUnreachableServer(t *testing.T) {
	c := client.New(client.Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})
	err := c.Ping()
	require.Error(t, err)
	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}
