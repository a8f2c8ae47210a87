package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pinboard/app/models"
	"pinboard/app/repositories/mock"
	"pinboard/app/services"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPostController(t *testing.T) (*PostController, *services.PostService, *mock.PostRepository) {
	postRepo := mock.NewPostRepository()
	postService := services.NewPostService(postRepo)
	guard := services.NewAuthGuard(postRepo)
	controller := NewPostController(postService, guard)
	return controller, postService, postRepo
}

func setupRouter(controller *PostController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts", controller.Create).Methods("POST")
	router.HandleFunc("/posts/{id}", controller.Show).Methods("GET")
	router.HandleFunc("/posts/{id}", controller.Edit).Methods("PATCH")
	router.HandleFunc("/posts/{id}", controller.Delete).Methods("DELETE")

	return router
}

func withToken(req *http.Request, token string) *http.Request {
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	return req
}

func createTestPost(t *testing.T, service *services.PostService, token string) *models.Post {
	post, err := service.CreatePost(models.CreatePost{
		Author:  "alice",
		Title:   "Hello World",
		Content: "hi",
	}, token)
	require.NoError(t, err)
	return post
}

func TestPostControllerCreate(t *testing.T) {
	controller, _, _ := setupTestPostController(t)
	router := setupRouter(controller)

	t.Run("create with cookie token", func(t *testing.T) {
		payload := `{"author": "alice", "title": "Hello World", "content": "hi"}`
		req := withToken(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload)), "abc123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response models.PostView
		err := json.Unmarshal(w.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, response.ID)
		assert.Equal(t, "Hello World", response.Title)
		assert.Equal(t, response.CreatedAt, response.UpdatedAt)
	})

	t.Run("response carries no token field", func(t *testing.T) {
		payload := `{"author": "alice", "title": "Hello World", "content": "hi"}`
		req := withToken(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload)), "abc123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		var fields map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
		assert.NotContains(t, fields, "token")
		assert.NotContains(t, w.Body.String(), "abc123")
	})

	t.Run("create without cookie mints one", func(t *testing.T) {
		payload := `{"author": "alice", "title": "Hello World", "content": "hi"}`
		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Len(t, cookies[0].Value, 64)
	})

	t.Run("validation failure", func(t *testing.T) {
		payload := `{"author": "alice", "title": "Hey", "content": "hi"}`
		req := withToken(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(payload)), "abc123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Contains(t, response["error"], "title")
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		req := withToken(httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader("{not json")), "abc123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerShowAndIndex(t *testing.T) {
	controller, service, _ := setupTestPostController(t)
	router := setupRouter(controller)

	post := createTestPost(t, service, "owner-token")

	t.Run("show without any cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+post.ID.String(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var fields map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
		assert.Equal(t, "Hello World", fields["title"])
		assert.NotContains(t, fields, "token")
	})

	t.Run("show unknown id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("show garbled id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts/not-a-uuid", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("index envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.PostList
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Count)
		assert.Len(t, response.Items, response.Count)
		assert.Equal(t, post.ID, response.Items[0].ID)
	})
}

func TestPostControllerEdit(t *testing.T) {
	controller, service, _ := setupTestPostController(t)
	router := setupRouter(controller)

	post := createTestPost(t, service, "owner-token")

	t.Run("wrong token", func(t *testing.T) {
		payload := `{"title": "New Title"}`
		req := withToken(httptest.NewRequest(http.MethodPatch, "/posts/"+post.ID.String(), strings.NewReader(payload)), "wrong")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		payload := `{"title": "New Title"}`
		req := httptest.NewRequest(http.MethodPatch, "/posts/"+post.ID.String(), strings.NewReader(payload))
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown id beats token check", func(t *testing.T) {
		payload := `{"title": "New Title"}`
		req := withToken(httptest.NewRequest(http.MethodPatch, "/posts/"+uuid.NewString(), strings.NewReader(payload)), "owner-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("matching token updates supplied fields only", func(t *testing.T) {
		time.Sleep(5 * time.Millisecond)

		payload := `{"title": "New Title"}`
		req := withToken(httptest.NewRequest(http.MethodPatch, "/posts/"+post.ID.String(), strings.NewReader(payload)), "owner-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response models.PostView
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "New Title", response.Title)
		assert.Equal(t, "alice", response.Author)
		assert.Equal(t, "hi", response.Content)
	})

	t.Run("invalid field value", func(t *testing.T) {
		payload := `{"title": "Hey"}`
		req := withToken(httptest.NewRequest(http.MethodPatch, "/posts/"+post.ID.String(), strings.NewReader(payload)), "owner-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPostControllerDelete(t *testing.T) {
	controller, service, _ := setupTestPostController(t)
	router := setupRouter(controller)

	post := createTestPost(t, service, "owner-token")

	t.Run("wrong token", func(t *testing.T) {
		req := withToken(httptest.NewRequest(http.MethodDelete, "/posts/"+post.ID.String(), nil), "wrong")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		req := withToken(httptest.NewRequest(http.MethodDelete, "/posts/"+uuid.NewString(), nil), "owner-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("matching token deletes", func(t *testing.T) {
		req := withToken(httptest.NewRequest(http.MethodDelete, "/posts/"+post.ID.String(), nil), "owner-token")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response["msg"])

		req = httptest.NewRequest(http.MethodGet, "/posts/"+post.ID.String(), nil)
		w = httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
