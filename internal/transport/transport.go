package transport

import (
	"context"
)

// Transport define o contrato com o canal de mensagens (gateway WhatsApp).
// Falhas de envio são logadas e engolidas pelo chamador: a conversa fica como
// está e a próxima mensagem do contato permite uma nova tentativa
type Transport interface {
	// SendReply envia uma mensagem de texto para um contato
	SendReply(ctx context.Context, contactID, text string) error

	// SendTyping sinaliza "digitando..." para um contato
	SendTyping(ctx context.Context, contactID string) error

	// MarkUnread marca a conversa como não lida para facilitar a triagem
	// pelos atendentes
	MarkUnread(ctx context.Context, contactID string) error

	// IsGroup informa se o identificador pertence a um grupo
	IsGroup(contactID string) bool
}
