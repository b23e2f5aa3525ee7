package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicops/rota-backend-go/internal/domain/branch"
	"github.com/clinicops/rota-backend-go/internal/handler/http/response"
)

type BranchHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type BranchHandlerImpl struct {
	branchRepo branch.BranchRepository
}

func NewBranchHandler(branchRepo branch.BranchRepository) BranchHandler {
	return &BranchHandlerImpl{branchRepo: branchRepo}
}

// List implements BranchHandler.
func (h *BranchHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	branches, err := h.branchRepo.GetAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, branch.ToResponses(branches))
}

// Get implements BranchHandler.
func (h *BranchHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Branch ID is required", nil)
		return
	}

	b, err := h.branchRepo.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, branch.ToResponse(b))
}
