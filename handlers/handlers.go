package handlers

import (
	"medibook/database"

	"go.uber.org/zap"
)

// APIHandler serves the reference backend endpoints from the in-memory store.
type APIHandler struct {
	Store  *database.MemoryStore
	Logger *zap.Logger
}

// NewAPIHandler creates the handler set over a store.
func NewAPIHandler(store *database.MemoryStore, logger *zap.Logger) *APIHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &APIHandler{Store: store, Logger: logger}
}
