package presentation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"pizza-orders/internal/application"
	"pizza-orders/internal/domain"
	"pizza-orders/internal/logger"
	"pizza-orders/internal/presentation/helpers"
	"pizza-orders/internal/repository"
	"pizza-orders/internal/validation"
)

type OrdersHandler struct {
	svc *application.OrdersService
}

func NewOrdersHandler(svc *application.OrdersService) *OrdersHandler {
	return &OrdersHandler{svc: svc}
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Get("/orders", h.ListOrders)
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{id}", h.GetOrder)
	r.Put("/orders/{id}", h.UpdateOrder)
	r.Delete("/orders/{id}", h.DeleteOrder)
	r.Get("/menu", h.GetMenu)
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.ListOrders(r.Context())
	if err != nil {
		logger.Error("list orders failed", "err", err, "request_id", requestIDFrom(r.Context()))
		helpers.HttpError(w, http.StatusInternalServerError, "failed to list orders")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			helpers.HttpError(w, http.StatusNotFound, "order not found")
			return
		}
		logger.Error("get order failed", "orderId", id, "err", err, "request_id", requestIDFrom(r.Context()))
		helpers.HttpError(w, http.StatusInternalServerError, "failed to get order")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	order, err := h.svc.CreateOrder(r.Context(), draft)
	if err != nil {
		logger.Error("create order failed", "err", err, "request_id", requestIDFrom(r.Context()))
		helpers.HttpError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	helpers.WriteJSON(w, http.StatusCreated, order)
}

func (h *OrdersHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	draft, ok := decodeDraft(w, r)
	if !ok {
		return
	}

	order, err := h.svc.UpdateOrder(r.Context(), id, draft)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			helpers.HttpError(w, http.StatusNotFound, "order not found")
			return
		}
		logger.Error("update order failed", "orderId", id, "err", err, "request_id", requestIDFrom(r.Context()))
		helpers.HttpError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(w, r)
	if !ok {
		return
	}

	// deleting an absent order is still a 200; the result says "not found"
	res, err := h.svc.DeleteOrder(r.Context(), id)
	if err != nil {
		logger.Error("delete order failed", "orderId", id, "err", err, "request_id", requestIDFrom(r.Context()))
		helpers.HttpError(w, http.StatusInternalServerError, "failed to delete order")
		return
	}

	helpers.WriteJSON(w, http.StatusOK, res)
}

func (h *OrdersHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSON(w, http.StatusOK, h.svc.Menu())
}

func orderID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "order id must be an integer")
		return 0, false
	}
	return id, true
}

// decodeDraft reads an order body. Clients may send a full order including
// its orderId (the shape GET hands out); the id is discarded here. Create
// assigns a fresh one and update keeps the one from the path.
func decodeDraft(w http.ResponseWriter, r *http.Request) (domain.OrderDraft, bool) {
	var body domain.Order
	if err := helpers.DecodeJSON(r.Body, &body); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return domain.OrderDraft{}, false
	}

	draft := body.Draft()
	if err := validation.ValidateDraft(&draft); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, err.Error())
		return domain.OrderDraft{}, false
	}
	return draft, true
}
