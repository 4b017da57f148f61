// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hiruna Jayamanne

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hirunaj/pawtrail/internal/logger"
	"github.com/hirunaj/pawtrail/internal/utils"
	"github.com/hirunaj/pawtrail/models"
)

// defaultSearchLimit caps a query that does not ask for an explicit limit.
const defaultSearchLimit = 25

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record.OwnerID = ownerID
	record.Collection = chi.URLParam(r, "collection")

	created, err := h.services.RecordService.CreateRecord(ctx, record)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createRecord").Msg("error creating record")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	records, err := h.services.RecordService.ListRecords(ctx, ownerID, chi.URLParam(r, "collection"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listRecords").Msg("error listing records")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var patch models.RecordPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.RecordService.UpdateRecord(ctx, ownerID, chi.URLParam(r, "collection"), chi.URLParam(r, "id"), patch)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateRecord").Msg("error updating record")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	err := h.services.RecordService.DeleteRecord(ctx, ownerID, chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteRecord").Msg("error deleting record")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryRecords serves the community-wide exact-match search. The client sends
// already-lowercased tokens in the name_lc and location_lc query params; the
// server matches them against the stored lowercased columns.
func (h *Handler) queryRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	query := models.SearchQuery{
		Collection: chi.URLParam(r, "collection"),
		Name:       r.URL.Query().Get("name_lc"),
		Location:   r.URL.Query().Get("location_lc"),
		Limit:      defaultSearchLimit,
	}

	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		query.Limit = limit
	}

	records, err := h.services.RecordService.SearchRecords(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.queryRecords").Msg("error searching records")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}
