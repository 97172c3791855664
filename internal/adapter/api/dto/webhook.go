package dto

// IncomingMessageRequest representa uma mensagem recebida pelo gateway de WhatsApp
type IncomingMessageRequest struct {
	From    string `json:"from" binding:"required"`
	Body    string `json:"body"`
	FromMe  bool   `json:"fromMe"`
	IsGroup bool   `json:"isGroup"`
}
