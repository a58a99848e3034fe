package http

import (
	"net/http"
	"strconv"

	"github.com/avrorin/go-task-auth/internal/logger"
	"github.com/go-chi/chi/v5"
)

// listTasks serves GET /tasks/{userID}: every task referencing the user in
// the path, newest first, behind the bearer-token gate.
//
// The userID path parameter is NOT cross-checked against the token's owning
// user — any valid token can list any user's tasks. That matches the source
// behavior this API reimplements and is flagged rather than silently fixed.
//
// A successful listing answers 201, another source quirk kept as-is.
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid userID path parameter")
		writeFailure(w, msgGenericFailure, http.StatusBadRequest)
		return
	}

	tasks, err := h.services.TaskService.ListUserTasks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("task listing failed")
		writeFailure(w, clientMessageFromError(err), statusFromError(err))
		return
	}

	writeSuccess(w, tasks, http.StatusCreated)
}
