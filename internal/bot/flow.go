package bot

import (
	"context"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
)

// StatsSink recebe os incrementos de estatísticas disparados pelo bot.
// As chamadas são fire-and-forget: nenhuma decisão de fluxo depende delas
type StatsSink interface {
	IncrementTotalChats()
	IncrementOptionCount(option string)
	MarkChatTransferred()
	UpdateActiveChatsCount(count int)
}

// Reporter dispara a geração e persistência de um relatório de atendimento
type Reporter interface {
	GenerateAndPersist(ctx context.Context)
}

// StateHandler processa a mensagem de um contato em um estado específico.
// Retorna se o fluxo terminou e a conversa deve ser transferida para um
// atendente humano
type StateHandler func(ctx context.Context, conv *conversation.Conversation, text string) (handoff bool, err error)

// Flow é a máquina de estados de uma opção do menu: Start envia a abertura e
// posiciona a conversa no primeiro estado do fluxo
type Flow interface {
	Start(ctx context.Context, conv *conversation.Conversation) error
}
