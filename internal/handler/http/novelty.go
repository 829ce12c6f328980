package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nominacol/nomina-backend-go/internal/domain/novelty"
	"github.com/nominacol/nomina-backend-go/internal/handler/http/response"
)

type NoveltyHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type noveltyHandlerImpl struct {
	noveltyService novelty.Service
}

func NewNoveltyHandler(noveltyService novelty.Service) NoveltyHandler {
	return &noveltyHandlerImpl{noveltyService: noveltyService}
}

func (h *noveltyHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req novelty.CreateNoveltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.noveltyService.CreateNovelty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Novelty created", result)
}

func (h *noveltyHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.noveltyService.GetNovelty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List returns stored rows only. Synthetic recurring rows are never
// listed here; they exist only inside calculation results.
func (h *noveltyHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if employeeID := r.URL.Query().Get("employeeId"); employeeID != "" {
		result, err := h.noveltyService.ListByEmployee(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.noveltyService.ListNovelties(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *noveltyHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req novelty.UpdateNoveltyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.noveltyService.UpdateNovelty(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *noveltyHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.noveltyService.DeleteNovelty(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Novelty deleted", nil)
}
