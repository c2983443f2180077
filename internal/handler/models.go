package handler

import "chatpaat/internal/domain/models"

// Wire shapes for requests and responses. Handlers translate between these
// and the service-layer types so the HTTP contract can evolve separately.

type tokenResponse struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    *models.User `json:"user"`
}

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

type promptResponse struct {
	ChatID string `json:"chat_id"`
	Reply  string `json:"reply"`
}

type messageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type searchRequest struct {
	Query string `json:"search_query"`
}
