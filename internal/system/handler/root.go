package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"servenest/pkg/logger"
)

// RootHandler answers the liveness string on GET /.
type RootHandler struct {
	log *logger.Logger
}

func NewRootHandler(log *logger.Logger) *RootHandler {
	return &RootHandler{log: log}
}

func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("Serve Nest server is running")); err != nil {
		h.log.Error("failed to write liveness response", "handler", "Root", "error", err)
	}
}

func (h *RootHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/", h.Root)
}
