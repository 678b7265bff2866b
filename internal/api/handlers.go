package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"demo/catalog/internal/service"
	"demo/catalog/internal/validate"
)

const maxBodyBytes = 1 << 20

func (h *handlers) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.catalog.ListOrders(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, orders)
}

func (h *handlers) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.catalog.GetOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, o)
}

func (h *handlers) getOrderProducts(w http.ResponseWriter, r *http.Request) {
	op, err := h.catalog.GetOrderWithProducts(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, op)
}

func (h *handlers) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, products)
}

func (h *handlers) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.catalog.GetProduct(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, p)
}

type insertResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

func (h *handlers) insert(w http.ResponseWriter, r *http.Request) {
	c, ok := writeRoutes[r.PathValue("collection")]
	if !ok {
		WriteErrorResponse(w, r, h.log, NotFound("no such collection"))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		WriteErrorResponse(w, r, h.log, BadRequest("could not read request body"))
		return
	}
	if len(body) > maxBodyBytes {
		WriteErrorResponse(w, r, h.log, NewProblemDetail(http.StatusRequestEntityTooLarge, "request body too large"))
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		h.log.Info("Received request without a payload", slog.String("path", r.URL.Path))
		WriteErrorResponse(w, r, h.log, BadRequest("Please include a Body in your POST Request"))
		return
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var payload map[string]any
	if err := dec.Decode(&payload); err != nil || payload == nil {
		WriteErrorResponse(w, r, h.log, BadRequest("body must be a JSON object"))
		return
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		WriteErrorResponse(w, r, h.log, BadRequest("body must contain a single JSON object"))
		return
	}

	res, err := h.catalog.Insert(r.Context(), c, payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, h.log, http.StatusOK, insertResponse{
		Message: "Successfully inserted data to the " + res.Table + " table!",
		ID:      res.ID,
	})
}

// fail maps service errors onto problem responses.
func (h *handlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		WriteErrorResponse(w, r, h.log, NotFound(err.Error()))
	case errors.Is(err, validate.ErrInvalid):
		p := BadRequest("payload failed validation")
		p.Errors = validate.Messages(err)
		WriteErrorResponse(w, r, h.log, p)
	default:
		h.log.Error("Request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		WriteErrorResponse(w, r, h.log, InternalServerError("the request could not be completed"))
	}
}
