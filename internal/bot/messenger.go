package bot

import (
	"context"
	"time"

	"github.com/farmatech/atende-bot/internal/transport"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// Messenger concentra o envio de respostas com simulação de digitação,
// compartilhado pelo dispatcher e pelos fluxos
type Messenger struct {
	transport transport.Transport
	logger    logger.Logger
}

// NewMessenger cria um novo Messenger
func NewMessenger(t transport.Transport, log logger.Logger) *Messenger {
	return &Messenger{transport: t, logger: log}
}

// Reply envia uma resposta imediata ao contato
func (m *Messenger) Reply(ctx context.Context, contactID, text string) error {
	return m.transport.SendReply(ctx, contactID, text)
}

// ReplyTyping sinaliza "digitando...", aguarda o tempo informado e envia a
// resposta. O indicador de digitação é melhor esforço
func (m *Messenger) ReplyTyping(ctx context.Context, contactID string, delay time.Duration, text string) error {
	if err := m.transport.SendTyping(ctx, contactID); err != nil {
		m.logger.Debug("erro ao sinalizar digitação", "contato", contactID, "err", err)
	}

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return m.transport.SendReply(ctx, contactID, text)
}

// MarkUnread marca a conversa como não lida (melhor esforço)
func (m *Messenger) MarkUnread(ctx context.Context, contactID string) {
	if err := m.transport.MarkUnread(ctx, contactID); err != nil {
		m.logger.Error("erro ao marcar mensagem como não lida", "contato", contactID, "err", err)
	}
}
