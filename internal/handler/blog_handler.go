package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"bloghub/internal/middleware"
	"bloghub/internal/models"
	"bloghub/internal/repository"
	"bloghub/internal/service"
)

type BlogFields struct {
	Title       string `json:"title" validate:"required,max=100"`
	Content     string `json:"content" validate:"required"`
	Description string `json:"description" validate:"required,max=200"`
	Tag         string `json:"tag" validate:"required,max=10"`
	ImageURL    string `json:"imageUrl" validate:"required"`
}

type EditBlogRequest struct {
	BlogID string `json:"blogId" validate:"required"`
	BlogFields
}

type BlogResponse struct {
	Msg  string      `json:"msg"`
	Blog models.Blog `json:"blog"`
}

type FeedResponse struct {
	Data         []models.Blog `json:"data"`
	CurrentPage  int           `json:"currentPage"`
	TotalPages   int           `json:"totalPages"`
	TotalItems   int           `json:"totalItems"`
	ItemsPerPage int           `json:"itemsPerPage"`
}

type BlogDetailResponse struct {
	Blog   models.Blog `json:"blog"`
	IsUser bool        `json:"isUser"`
}

// validationMessage translates the first failed field check into the message
// the clients show to the user.
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "Please fill all the fields"
	}

	fieldError := validationErrors[0]
	if fieldError.Tag() == "max" {
		switch fieldError.Field() {
		case "Title":
			return "Title must be less than 100 characters"
		case "Description":
			return "Description must be less than 200 characters"
		case "Tag":
			return "Tag must be less than 10 characters"
		}
	}

	return "Please fill all the fields"
}

func (h *Handlers) AddBlog(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req BlogFields
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	serviceReq := repository.CreateBlogRequest{
		AuthorID:    subject.UserID,
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Tag:         req.Tag,
		ImageURL:    req.ImageURL,
	}

	blog, err := h.BlogService.CreateBlog(r.Context(), serviceReq)
	if err != nil {
		WriteError(w, "Error in posting Blog", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, BlogResponse{Msg: "Blog Published", Blog: *blog}, http.StatusOK)
}

func (h *Handlers) EditBlog(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		WriteError(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req EditBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.BlogID == "" {
		WriteError(w, "Please fill all the fields", http.StatusBadRequest)
		return
	}

	// ownership is checked before field validation: a non-owner gets 403 no
	// matter what the rest of the body looks like
	_, isOwner, err := h.BlogService.GetBlog(r.Context(), req.BlogID, subject.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			WriteError(w, "Blog not found", http.StatusNotFound)
		} else {
			WriteError(w, "Error in updating Blog", http.StatusInternalServerError)
		}
		return
	}

	if !isOwner {
		WriteError(w, "You are not authorized to edit this blog", http.StatusForbidden)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	serviceReq := repository.UpdateBlogRequest{
		BlogID:      req.BlogID,
		AuthorID:    subject.UserID,
		Title:       req.Title,
		Content:     req.Content,
		Description: req.Description,
		Tag:         req.Tag,
		ImageURL:    req.ImageURL,
	}

	if err := h.BlogService.UpdateBlog(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, repository.ErrBlogNotFound):
			WriteError(w, "Blog not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNotOwner):
			WriteError(w, "You are not authorized to edit this blog", http.StatusForbidden)
		default:
			WriteError(w, "Error in updating Blog", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Blog updated successfully"}, http.StatusOK)
}

func (h *Handlers) GetBulk(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	blogs, total, err := h.BlogService.GetFeed(r.Context(), limit, offset)
	if err != nil {
		WriteError(w, "Error in Fetching Blog", http.StatusInternalServerError)
		return
	}

	response := FeedResponse{
		Data:         blogs,
		CurrentPage:  page,
		TotalPages:   (total + limit - 1) / limit,
		TotalItems:   total,
		ItemsPerPage: limit,
	}

	WriteSuccess(w, response, http.StatusOK)
}

func (h *Handlers) GetBlog(w http.ResponseWriter, r *http.Request) {
	blogID := mux.Vars(r)["id"]
	if blogID == "" {
		WriteError(w, "Неверный URL", http.StatusBadRequest)
		return
	}

	// anonymous viewers have no subject, isUser stays false
	viewerID := ""
	if subject, ok := middleware.SubjectFromContext(r.Context()); ok {
		viewerID = subject.UserID
	}

	blog, isUser, err := h.BlogService.GetBlog(r.Context(), blogID, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			WriteError(w, "Blog not found", http.StatusNotFound)
		} else {
			WriteError(w, "Error in Fetching Blog", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, BlogDetailResponse{Blog: *blog, IsUser: isUser}, http.StatusOK)
}
