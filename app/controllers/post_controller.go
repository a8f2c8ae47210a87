package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pinboard/app/models"
	"pinboard/app/repositories"
	"pinboard/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for posts. Mutating routes run
// the guard before touching the service.
type PostController struct {
	postService *services.PostService
	guard       *services.AuthGuard
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, guard *services.AuthGuard) *PostController {
	return &PostController{
		postService: postService,
		guard:       guard,
	}
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]models.PostView, 0, len(posts))
	for _, post := range posts {
		items = append(items, post.View())
	}
	sendJSON(w, http.StatusOK, models.PostList{Count: len(items), Items: items})
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post.View())
}

// Create handles creating a new post. The caller's cookie token is
// bound to the post; a caller without one is handed a fresh token on
// the response.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var in models.CreatePost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	token := tokenFromRequest(r)
	if token == "" {
		minted, err := mintToken()
		if err != nil {
			sendError(w, "Failed to mint token: "+err.Error(), http.StatusInternalServerError)
			return
		}
		token = minted
		setTokenCookie(w, token)
	}

	post, err := pc.postService.CreatePost(in, token)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post.View())
}

// Edit handles partial updates to an existing post
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	var in models.UpdatePost
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := pc.guard.Authorize(id, tokenFromRequest(r)); err != nil {
		pc.sendFailure(w, err)
		return
	}

	post, err := pc.postService.UpdatePost(id, in)
	if err != nil {
		pc.sendFailure(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post.View())
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	if _, err := pc.guard.Authorize(id, tokenFromRequest(r)); err != nil {
		pc.sendFailure(w, err)
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.sendFailure(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"msg": "post deleted"})
}

// postID parses the id path variable. An id that cannot be a UUID is an
// unknown id, so it reports 404.
func (pc *PostController) postID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		sendError(w, "Post not found", http.StatusNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// sendFailure maps core failures onto status codes.
func (pc *PostController) sendFailure(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, services.ErrForbidden):
		sendError(w, "You are not the author of this post", http.StatusForbidden)
	case errors.As(err, &verr):
		sendError(w, err.Error(), http.StatusBadRequest)
	default:
		sendError(w, err.Error(), http.StatusInternalServerError)
	}
}

// Helpers for consistent response handling

func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func sendError(w http.ResponseWriter, message string, status int) {
	sendJSON(w, status, map[string]string{"error": message})
}
