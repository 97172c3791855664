package conversation

import (
	"context"
)

// Store define a interface para o armazenamento de conversas ativas.
// Leituras devolvem cópias privadas do registro; mudanças só ficam visíveis
// para outros leitores depois de Save
type Store interface {
	// Find busca a conversa de um contato
	Find(ctx context.Context, contactID string) (*Conversation, error)

	// FindOrCreate busca a conversa de um contato, criando uma nova no
	// estado inicial quando não existe. Retorna se houve criação
	FindOrCreate(ctx context.Context, contactID string) (*Conversation, bool, error)

	// Save publica o registro atualizado de uma conversa
	Save(ctx context.Context, c *Conversation) error

	// Delete remove a conversa de um contato
	Delete(ctx context.Context, contactID string) error

	// List retorna um snapshot de todas as conversas ativas
	List(ctx context.Context) ([]*Conversation, error)

	// Count retorna o número de conversas ativas
	Count(ctx context.Context) (int, error)

	// LockContact garante exclusão mútua por contato: duas mensagens do
	// mesmo remetente nunca são processadas ao mesmo tempo, enquanto
	// contatos diferentes seguem em paralelo. Retorna a função de unlock
	LockContact(contactID string) func()
}
