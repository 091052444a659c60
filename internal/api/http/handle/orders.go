package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"order-up/internal/app/services"
	"order-up/internal/domain/dto"
	"order-up/pkg/logger"
)

type OrdersHandler struct {
	orders *services.OrdersService
	mylog  logger.Logger
}

func NewOrdersHandler(orders *services.OrdersService, mylog logger.Logger) *OrdersHandler {
	return &OrdersHandler{orders: orders, mylog: mylog}
}

func (h *OrdersHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.mylog.Action("parse_failed").Error("Failed to parse order", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		order, err := h.orders.Submit(r.Context(), req)
		if err != nil {
			jsonError(w, statusFor(err), failure(err, "Failed to save order"))
			return
		}
		jsonResponse(w, http.StatusCreated, order)
	}
}
