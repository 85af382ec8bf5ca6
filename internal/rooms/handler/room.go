package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"servenest/internal/rooms/service"
	apperrors "servenest/pkg/errors"
	httputil "servenest/pkg/http"
	"servenest/pkg/logger"
)

type RoomHandler struct {
	service service.RoomService
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	minPrice, err := parseQueryBound("minPrice", query.Get("minPrice"))
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}
	maxPrice, err := parseQueryBound("maxPrice", query.Get("maxPrice"))
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	rooms, err := h.service.List(r.Context(), minPrice, maxPrice)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

type priceFilterRequest struct {
	MinPrice any `json:"minPrice"`
	MaxPrice any `json:"maxPrice"`
}

func (h *RoomHandler) Filter(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req priceFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "Filter", apperrors.InvalidInput("Invalid request body"))
		return
	}

	minPrice, err := parseBodyBound("minPrice", req.MinPrice)
	if err != nil {
		h.writeError(w, "Filter", err)
		return
	}
	maxPrice, err := parseBodyBound("maxPrice", req.MaxPrice)
	if err != nil {
		h.writeError(w, "Filter", err)
		return
	}

	rooms, err := h.service.List(r.Context(), minPrice, maxPrice)
	if err != nil {
		h.writeError(w, "Filter", err)
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "Filter", "error", err)
	}
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	room, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

type availabilityUpdateRequest struct {
	Availability *bool `json:"availability"`
}

func (h *RoomHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	title := ps.ByName("title")

	var req availabilityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, "UpdateStatus", apperrors.InvalidInput("Invalid request body"))
		return
	}
	if req.Availability == nil {
		h.writeError(w, "UpdateStatus", apperrors.InvalidInput("availability is required"))
		return
	}

	result, err := h.service.SetAvailability(r.Context(), title, *req.Availability)
	if err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "error", err)
	}
}

func (h *RoomHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

// Boundary policy for price bounds: query parameters must be base-10
// integers; body values may be JSON numbers or numeric strings. Anything
// else is rejected with 400 rather than silently coerced.
func parseQueryBound(name, raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, raw))
	}
	return &v, nil
}

func parseBodyBound(name string, raw any) (*int, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		n := int(v)
		return &n, nil
	case string:
		if v == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s value: %s", name, v))
		}
		return &n, nil
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s value", name))
	}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/rooms", h.GetAll)
	router.POST("/rooms/filter", h.Filter)
	router.GET("/rooms/:id", h.GetByID)
	router.PATCH("/update-status/:title", h.UpdateStatus)
}
