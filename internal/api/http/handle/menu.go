package handle

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"order-up/internal/app/core"
	"order-up/internal/app/services"
	"order-up/internal/domain/dto"
	"order-up/pkg/logger"
)

type MenuHandler struct {
	menu  *services.MenuService
	mylog logger.Logger
}

func NewMenuHandler(menu *services.MenuService, mylog logger.Logger) *MenuHandler {
	return &MenuHandler{menu: menu, mylog: mylog}
}

func (h *MenuHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.menu.List(r.Context())
		if err != nil {
			jsonError(w, statusFor(err), failure(err, "Could not load menu"))
			return
		}
		jsonResponse(w, http.StatusOK, items)
	}
}

func (h *MenuHandler) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.MenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.mylog.Action("parse_failed").Error("Failed to parse menu item", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		item, err := h.menu.Add(r.Context(), req)
		if err != nil {
			jsonError(w, statusFor(err), failure(err, "Could not save item"))
			return
		}
		jsonResponse(w, http.StatusCreated, item)
	}
}

func (h *MenuHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r.PathValue("id"))
		if !ok {
			// An unparsable id cannot match any stored item.
			jsonError(w, http.StatusNotFound, core.ErrNotFound)
			return
		}

		var req dto.MenuItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.mylog.Action("parse_failed").Error("Failed to parse menu item update", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		item, err := h.menu.Update(r.Context(), id, req)
		if err != nil {
			jsonError(w, statusFor(err), failure(err, "Could not update item"))
			return
		}
		jsonResponse(w, http.StatusOK, item)
	}
}

func (h *MenuHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(r.PathValue("id"))
		if !ok {
			jsonError(w, http.StatusNotFound, core.ErrNotFound)
			return
		}

		if err := h.menu.Remove(r.Context(), id); err != nil {
			jsonError(w, statusFor(err), failure(err, "Could not delete item"))
			return
		}
		jsonResponse(w, http.StatusOK, dto.RemovedResponse{
			Message: "Item deleted successfully",
			ID:      id,
		})
	}
}

// parseID converts the path-supplied id, which arrives as text, into the
// numeric id stored in the collection.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
