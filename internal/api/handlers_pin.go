package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dropspot/dropspot/internal/api/respond"
	"github.com/dropspot/dropspot/internal/model"
	"github.com/dropspot/dropspot/internal/services"
)

type PinHandler struct {
	svc *services.SocialService
}

func NewPinHandler(svc *services.SocialService) *PinHandler { return &PinHandler{svc: svc} }

// CreatePin POST /api/pins
func (h *PinHandler) CreatePin(w http.ResponseWriter, r *http.Request) {
	var in model.Pin
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	out, err := h.svc.CreatePin(r.Context(), &in)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, out)
}

// CreatePins POST /api/pins/batch
func (h *PinHandler) CreatePins(w http.ResponseWriter, r *http.Request) {
	var in []*model.Pin
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if len(in) == 0 {
		respond.WriteBadRequest(w, "empty pin list")
		return
	}
	if err := h.svc.CreatePins(r.Context(), in); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "count": len(in)})
}

// GetPin GET /api/pins/{postId}
func (h *PinHandler) GetPin(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPin(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

// GetPinTags GET /api/pins/{postId}/tags
func (h *PinHandler) GetPinTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.GetPostTags(r.Context(), mux.Vars(r)["postId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, tags)
}

// GetPinsByLocation GET /api/pins/location/{location}
func (h *PinHandler) GetPinsByLocation(w http.ResponseWriter, r *http.Request) {
	pins, err := h.svc.GetPinsByLocation(r.Context(), mux.Vars(r)["location"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, pins)
}

// GetUserPins GET /api/users/{userId}/pins
func (h *PinHandler) GetUserPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.svc.GetPinsByOwner(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, pins)
}

// DeletePin DELETE /api/users/{userId}/pins/{postId}
func (h *PinHandler) DeletePin(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.DeletePost(r.Context(), vars["userId"], vars["postId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Like POST /api/users/{userId}/likes/{postId}
func (h *PinHandler) Like(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.Like(r.Context(), vars["userId"], vars["postId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Unlike DELETE /api/users/{userId}/likes/{postId}
func (h *PinHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.Unlike(r.Context(), vars["userId"], vars["postId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// GetLikedPosts GET /api/users/{userId}/liked_posts
func (h *PinHandler) GetLikedPosts(w http.ResponseWriter, r *http.Request) {
	pins, err := h.svc.GetUserLikedPosts(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, pins)
}

// Save POST /api/users/{userId}/saved_pins/{postId}
// Body may carry {"collectionIds": [...]} to file the pin into collections.
func (h *PinHandler) Save(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	var in struct {
		CollectionIDs []string `json:"collectionIds"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respond.WriteBadRequest(w, "invalid json")
			return
		}
	}
	if err := h.svc.Save(r.Context(), vars["userId"], vars["postId"], in.CollectionIDs); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Unsave DELETE /api/users/{userId}/saved_pins/{postId}
func (h *PinHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.svc.Unsave(r.Context(), vars["userId"], vars["postId"]); err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// GetSavedPins GET /api/users/{userId}/saved_pins
func (h *PinHandler) GetSavedPins(w http.ResponseWriter, r *http.Request) {
	pins, err := h.svc.GetUserSavedPins(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeDomainError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, pins)
}
