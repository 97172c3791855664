package dto

import (
	"time"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/pkg/formatter"
)

// ConversationResponse representa uma conversa ativa na listagem administrativa
type ConversationResponse struct {
	ContactID         string                 `json:"contactId"`
	Phone             string                 `json:"phone"`
	State             string                 `json:"state"`
	Option            string                 `json:"option,omitempty"`
	InvalidAttempts   int                    `json:"invalidAttempts"`
	ConversationStart time.Time              `json:"conversationStart"`
	LastActivity      time.Time              `json:"lastActivity"`
	TransferredAt     *time.Time             `json:"transferredAt,omitempty"`
	Data              map[string]interface{} `json:"data,omitempty"`
}

// ConversationListResponse representa a lista de conversas ativas
type ConversationListResponse struct {
	Total         int                    `json:"total"`
	Conversations []ConversationResponse `json:"conversations"`
}

// ToConversationResponse converte uma conversa do domínio para o DTO de resposta
func ToConversationResponse(c *conversation.Conversation) ConversationResponse {
	return ConversationResponse{
		ContactID:         c.ContactID,
		Phone:             formatter.ExtractPhoneFromWhatsAppID(c.ContactID),
		State:             string(c.State),
		Option:            string(c.Option),
		InvalidAttempts:   c.InvalidAttempts,
		ConversationStart: c.ConversationStart,
		LastActivity:      c.LastActivity,
		TransferredAt:     c.TransferredAt,
		Data:              c.Data,
	}
}

// ToConversationListResponse converte uma lista de conversas do domínio
func ToConversationListResponse(list []*conversation.Conversation) ConversationListResponse {
	responses := make([]ConversationResponse, 0, len(list))
	for _, c := range list {
		responses = append(responses, ToConversationResponse(c))
	}
	return ConversationListResponse{
		Total:         len(responses),
		Conversations: responses,
	}
}

// StatsResponse representa as estatísticas de uso do bot
type StatsResponse struct {
	TotalChats      int            `json:"totalChats"`
	ActiveChats     int            `json:"activeChats"`
	WaitingForHuman int            `json:"waitingForHuman"`
	WithHuman       int            `json:"withHuman"`
	CompletedChats  int            `json:"completedChats"`
	OptionCounts    map[string]int `json:"optionCounts"`
	StartTime       time.Time      `json:"startTime"`
	Uptime          string         `json:"uptime"`
}
