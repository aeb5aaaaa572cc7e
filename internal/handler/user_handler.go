package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"bloghub/internal/middleware"
	"bloghub/internal/repository"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"omitempty,max=100"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

type MeResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}

	_, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			WriteError(w, "User Exists", http.StatusBadRequest)
		} else {
			WriteError(w, "Error in creating User", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, AuthResponse{Msg: "User Created", Token: token}, http.StatusOK)
}

func (h *Handlers) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	_, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			WriteError(w, "Invalid Credentials", http.StatusBadRequest)
		} else {
			WriteError(w, "Error in Login User", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, AuthResponse{Msg: "User Signed In", Token: token}, http.StatusOK)
}

func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	// the account may be gone even though the token still verifies
	user, err := h.AuthService.WhoAmI(r.Context(), subject.UserID)
	if err != nil {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	response := MeResponse{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
	}

	WriteSuccess(w, response, http.StatusOK)
}
