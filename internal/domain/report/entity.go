package report

import (
	"time"
)

// Stats agrega os contadores globais de atendimento no momento do relatório
type Stats struct {
	TotalConversations  int            `json:"totalConversations"`
	ActiveConversations int            `json:"activeConversations"`
	WaitingForHuman     int            `json:"waitingForHuman"`
	WithHuman           int            `json:"withHuman"`
	CompletedChats      int            `json:"completedChats"`
	Uptime              string         `json:"uptime"`
	OptionCounts        map[string]int `json:"optionCounts"`
}

// ClientDetail resume uma conversa ativa para o relatório
type ClientDetail struct {
	Phone        string `json:"id"`
	State        string `json:"state"`
	Option       string `json:"option"`
	WaitingTime  string `json:"waitingTime"`
	LastActivity string `json:"lastActivity"`
}

// ClientSummary agrupa os detalhes dos clientes ativos
type ClientSummary struct {
	Total   int            `json:"total"`
	Details []ClientDetail `json:"details"`
}

// AttendanceReport é o relatório de atendimento gerado periodicamente e a
// cada transferência para atendente humano
type AttendanceReport struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Date      string         `json:"date"`
	Time      string         `json:"time"`
	Stats     Stats          `json:"stats"`
	Clients   *ClientSummary `json:"clients,omitempty"`
}
