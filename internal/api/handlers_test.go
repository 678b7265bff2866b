package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"demo/catalog/internal/events"
	"demo/catalog/internal/model"
	"demo/catalog/internal/service"
	"demo/catalog/internal/store/storemock"
)

type testAPI struct {
	docs    *storemock.MockDocuments
	history *storemock.MockHistoryReader
	handler http.Handler
}

func newTestAPI(t *testing.T) testAPI {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := testAPI{
		docs:    storemock.NewMockDocuments(ctrl),
		history: storemock.NewMockHistoryReader(ctrl),
	}
	svc := service.New(a.docs, a.history, events.Nop{}, logger)
	a.handler = NewHandler(svc, logger)
	return a
}

func flag(b bool) *bool { return &b }

func (a testAPI) do(method, path, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func TestListOrders(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().ListOrders(gomock.Any()).Return([]model.Order{{ID: "o1", Products: []model.ProductRef{}}}, nil)

	rec := a.do(http.MethodGet, "/orders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []model.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "o1", got[0].ID)
}

func TestListProducts_EmptyArray(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)

	rec := a.do(http.MethodGet, "/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetProduct(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().GetProduct(gomock.Any(), "p1").Return(model.Product{ID: "p1", Name: "Mug", Price: "3"}, true, nil)

	rec := a.do(http.MethodGet, "/product/p1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":"p1","name":"Mug","description":"","price":"3"}`, rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().GetOrder(gomock.Any(), "missing").Return(model.Order{}, false, nil)

	rec := a.do(http.MethodGet, "/order/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	var p ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.Equal(t, http.StatusNotFound, p.Status)
	require.Equal(t, "/order/missing", p.Instance)
}

func TestGetOrder_StoreError(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().GetOrder(gomock.Any(), "o1").Return(model.Order{}, false, errors.New("dynamodb down"))

	rec := a.do(http.MethodGet, "/order/o1", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "dynamodb down")
}

func TestGetOrderProducts(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().GetOrder(gomock.Any(), "o1").Return(model.Order{
		ID:             "o1",
		OrderReference: "R1",
		Products:       []model.ProductRef{{"productId": "P1"}, {"productId": "P2"}},
	}, true, nil)
	a.history.EXPECT().FindHistory(gomock.Any(), "R1", []string{"P1", "P2"}).
		Return([]model.HistoryRow{{ProductID: "P1", OrderReference: "R1", OrderPicked: flag(true)}}, nil)

	rec := a.do(http.MethodGet, "/order/o1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ID       string           `json:"id"`
		Products []map[string]any `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "o1", got.ID)
	require.Len(t, got.Products, 2)
	require.Equal(t, true, got.Products[0]["order_picked"])
	require.Equal(t, map[string]any{"productId": "P2"}, got.Products[1])
}

func TestGetOrderProducts_HistoryDownStill200(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().GetOrder(gomock.Any(), "o1").Return(model.Order{
		ID:             "o1",
		OrderReference: "R1",
		Products:       []model.ProductRef{{"productId": "P1"}},
	}, true, nil)
	a.history.EXPECT().FindHistory(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)

	rec := a.do(http.MethodGet, "/order/o1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"products":[{"productId":"P1"}]`)
}

func TestInsert_EmptyBody(t *testing.T) {
	a := newTestAPI(t)

	for _, body := range []string{"", "   \n"} {
		rec := a.do(http.MethodPost, "/products", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "Please include a Body in your POST Request")
	}
}

func TestInsert_NotAnObject(t *testing.T) {
	a := newTestAPI(t)

	for _, body := range []string{"null", "[1,2]", "{broken"} {
		rec := a.do(http.MethodPost, "/orders", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestInsert_TrailingData(t *testing.T) {
	a := newTestAPI(t)

	for _, body := range []string{
		`{"name":"a","description":"b","price":1} {"oops"`,
		`{"name":"a","description":"b","price":1}{}`,
		`{"name":"a","description":"b","price":1} 7`,
	} {
		rec := a.do(http.MethodPost, "/products", body)
		require.Equal(t, http.StatusBadRequest, rec.Code, body)
		require.Contains(t, rec.Body.String(), "single JSON object")
	}
}

func TestInsert_TrailingWhitespaceAccepted(t *testing.T) {
	a := newTestAPI(t)
	a.docs.EXPECT().PutProduct(gomock.Any(), gomock.Any()).Return(nil)
	a.docs.EXPECT().TableName(model.CollectionProducts).Return("Products")

	rec := a.do(http.MethodPost, "/products", "{\"name\":\"a\",\"description\":\"b\",\"price\":1}\n\n")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestInsert_ValidationErrors(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodPost, "/products", `{"name":"Mug"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var p ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	require.ElementsMatch(t, []string{"description: required", "price: required"}, p.Errors)
}

func TestInsert_Product(t *testing.T) {
	a := newTestAPI(t)
	var stored model.Product
	a.docs.EXPECT().PutProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Product) error {
			stored = p
			return nil
		})
	a.docs.EXPECT().TableName(model.CollectionProducts).Return("Products")

	rec := a.do(http.MethodPost, "/products", `{"id":"mine","name":"Mug","description":"Blue","price":4.50}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got insertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Successfully inserted data to the Products table!", got.Message)
	require.Equal(t, stored.ID, got.ID)
	require.NotEqual(t, "mine", got.ID)
	require.Equal(t, "4.50", stored.Price)
}

func TestInsert_UnknownCollection(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodPost, "/users", `{"name":"x"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodDelete, "/order/o1", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecovery(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") }), Recovery(logger))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecovery_AfterHeadersWritten(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))
		panic("boom")
	}), Recovery(logger))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "partial", rec.Body.String())
	require.NotEqual(t, "application/problem+json", rec.Header().Get("Content-Type"))
}

func TestRecovery_ImplicitHeaderOnWrite(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("partial"))
		panic("boom")
	}), Recovery(logger))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "partial", rec.Body.String())
}

func TestCheckTables(t *testing.T) {
	require.NoError(t, CheckTables(func(c model.Collection) string { return string(c) }))
	require.Error(t, CheckTables(func(c model.Collection) string {
		if c == model.CollectionOrders {
			return ""
		}
		return "Products"
	}))
}
