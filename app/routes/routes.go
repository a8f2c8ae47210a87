package routes

import (
	"net/http"

	"pinboard/app/controllers"
	"pinboard/app/middleware"
	"pinboard/app/repositories"
	"pinboard/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires the repository, services and controllers onto a
// router, using the provided Badger DB.
func SetupRoutes(db *badger.DB) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.ContentTypeJSON)

	postRepo := repositories.NewBadgerPostRepository(db)
	postService := services.NewPostService(postRepo)
	guard := services.NewAuthGuard(postRepo)

	rootController := controllers.NewRootController()
	postController := controllers.NewPostController(postService, guard)

	router.HandleFunc("/", rootController.Index).Methods("GET")

	// Posts endpoints, with and without trailing slash
	posts := router.PathPrefix("/posts").Subrouter()
	for _, path := range []string{"", "/"} {
		posts.HandleFunc(path, postController.Index).Methods("GET")
		posts.HandleFunc(path, postController.Create).Methods("POST")
	}
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Edit).Methods("PATCH")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
