package api

import (
	"github.com/gorilla/mux"

	"github.com/dropspot/dropspot/internal/api/recovery"
	"github.com/dropspot/dropspot/internal/services"
	"github.com/dropspot/dropspot/internal/store"
)

// NewRouter creates the HTTP router with all API routes.
func NewRouter(st store.Store) *mux.Router {
	router := mux.NewRouter()

	// Global middlewares
	router.Use(recovery.Middleware)

	// Domain services
	userService := services.NewUserService(st)
	socialService := services.NewSocialService(st)

	// Handlers
	healthHandler := NewHealthHandler(st)
	userHandler := NewUserHandler(userService)
	pinHandler := NewPinHandler(socialService)
	collectionHandler := NewCollectionHandler(socialService)

	// Health endpoints
	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")
	router.HandleFunc("/api/health/db", healthHandler.CheckStoreHealth).Methods("GET")

	// User endpoints
	router.HandleFunc("/api/users", userHandler.CreateUser).Methods("POST")
	router.HandleFunc("/api/users/{userId}", userHandler.GetUser).Methods("GET")

	// Pin endpoints
	router.HandleFunc("/api/pins", pinHandler.CreatePin).Methods("POST")
	router.HandleFunc("/api/pins/batch", pinHandler.CreatePins).Methods("POST")
	router.HandleFunc("/api/pins/location/{location}", pinHandler.GetPinsByLocation).Methods("GET")
	router.HandleFunc("/api/pins/{postId}", pinHandler.GetPin).Methods("GET")
	router.HandleFunc("/api/pins/{postId}/tags", pinHandler.GetPinTags).Methods("GET")
	router.HandleFunc("/api/users/{userId}/pins", pinHandler.GetUserPins).Methods("GET")
	router.HandleFunc("/api/users/{userId}/pins/{postId}", pinHandler.DeletePin).Methods("DELETE")

	// Social actions
	router.HandleFunc("/api/users/{userId}/likes/{postId}", pinHandler.Like).Methods("POST")
	router.HandleFunc("/api/users/{userId}/likes/{postId}", pinHandler.Unlike).Methods("DELETE")
	router.HandleFunc("/api/users/{userId}/liked_posts", pinHandler.GetLikedPosts).Methods("GET")
	router.HandleFunc("/api/users/{userId}/saved_pins", pinHandler.GetSavedPins).Methods("GET")
	router.HandleFunc("/api/users/{userId}/saved_pins/{postId}", pinHandler.Save).Methods("POST")
	router.HandleFunc("/api/users/{userId}/saved_pins/{postId}", pinHandler.Unsave).Methods("DELETE")

	// Collection endpoints
	router.HandleFunc("/api/collections", collectionHandler.CreateCollection).Methods("POST")
	router.HandleFunc("/api/collections/user/{userId}", collectionHandler.ListUserCollections).Methods("GET")
	router.HandleFunc("/api/collections/{collectionId}/pins", collectionHandler.GetCollectionPins).Methods("GET")
	router.HandleFunc("/api/users/{userId}/collections/{collectionId}", collectionHandler.DeleteCollection).Methods("DELETE")

	return router
}
