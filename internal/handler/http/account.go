package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shiftline/workforce-backend-go/internal/domain/user"
	"github.com/shiftline/workforce-backend-go/internal/handler/http/response"
)

type AccountHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	CheckUsername(w http.ResponseWriter, r *http.Request)
}

type AccountHandlerImpl struct {
	accountService user.AccountService
}

func NewAccountHandler(accountService user.AccountService) AccountHandler {
	return &AccountHandlerImpl{accountService: accountService}
}

// Create implements AccountHandler.
func (h *AccountHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateAccountRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateAccount decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	account, err := h.accountService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account created successfully", account)
}

// Delete implements AccountHandler.
func (h *AccountHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid account ID", nil)
		return
	}

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deleted successfully", nil)
}

// List implements AccountHandler.
func (h *AccountHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, accounts)
}

// CheckUsername implements AccountHandler.
func (h *AccountHandlerImpl) CheckUsername(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		response.BadRequest(w, "username query parameter is required", nil)
		return
	}

	exists, err := h.accountService.UsernameExists(r.Context(), username)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]bool{"exists": exists})
}
