package handler

import (
	"layovermeet/backend/internal/chathub"
	"layovermeet/backend/internal/store"
	"layovermeet/backend/internal/travelcode"
)

// Handler exposes the store's operations over HTTP. It holds no state of
// its own.
type Handler struct {
	Store  *store.Service
	Parser *travelcode.Parser
	Hub    *chathub.ManagerService
}

func NewHandler(s *store.Service, p *travelcode.Parser, hub *chathub.ManagerService) *Handler {
	return &Handler{Store: s, Parser: p, Hub: hub}
}
