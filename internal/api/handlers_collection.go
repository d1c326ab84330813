package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dropspot/dropspot/internal/api/respond"
	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/services"
)

type CollectionHandler struct {
	svc *services.SocialService
}

func NewCollectionHandler(svc *services.SocialService) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// CreateCollection POST /api/collections
func (h *CollectionHandler) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var in model.Collection
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.CreateCollection(r.Context(), &in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// ListUserCollections GET /api/collections/user/{userId}
func (h *CollectionHandler) ListUserCollections(w http.ResponseWriter, r *http.Request) {
	colls, err := h.svc.GetUserCollections(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"collections": colls, "count": len(colls)})
}

// GetCollectionPins GET /api/collections/{collectionId}/pins
func (h *CollectionHandler) GetCollectionPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.svc.GetPinsInCollection(r.Context(), mux.Vars(r)["collectionId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, pins)
}

// DeleteCollection DELETE /api/users/{userId}/collections/{collectionId}
func (h *CollectionHandler) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeleteCollection(r.Context(), vars["userId"], vars["collectionId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
