package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"servenest/internal/bookings/service"
	apperrors "servenest/pkg/errors"
	httputil "servenest/pkg/http"
	"servenest/pkg/logger"
	"servenest/pkg/middleware"
	"servenest/pkg/model"
)

type BookingHandler struct {
	service     service.BookingService
	sessionGate func(httprouter.Handle) httprouter.Handle
	log         *logger.Logger
}

func NewBookingHandler(
	service service.BookingService,
	sessionGate func(httprouter.Handle) httprouter.Handle,
	log *logger.Logger,
) *BookingHandler {
	return &BookingHandler{
		service:     service,
		sessionGate: sessionGate,
		log:         log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		h.writeError(w, "Create", apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, result); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) MyBookings(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		h.writeError(w, "MyBookings", apperrors.Unauthenticated("unauthorized access"))
		return
	}

	bookings, err := h.service.ListByOwner(r.Context(), email, identity)
	if err != nil {
		h.writeError(w, "MyBookings", err)
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "MyBookings", "error", err)
	}
}

func (h *BookingHandler) GetForEdit(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetForEdit", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetForEdit", "error", err)
	}
}

func (h *BookingHandler) GetForReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.GetForReview(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetForReview", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetForReview", "error", err)
	}
}

func (h *BookingHandler) UpdateDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.BookingDateUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, "UpdateDate", apperrors.InvalidInput("Invalid request body"))
		return
	}

	result, err := h.service.UpdateDate(r.Context(), ps.ByName("id"), &update)
	if err != nil {
		h.writeError(w, "UpdateDate", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateDate", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	result, err := h.service.Delete(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

// Only the owner listing is session-gated; the by-id mutation routes
// are deliberately open for parity with the reference deployment.
func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/booking-room", h.Create)
	router.GET("/my-booking/:email", h.sessionGate(h.MyBookings))
	router.DELETE("/my-booking/:id", h.Delete)
	router.GET("/update-date/:id", h.GetForEdit)
	router.PUT("/update-date/:id", h.UpdateDate)
	router.GET("/review/:id", h.GetForReview)
}
