package repository

import (
	"context"
	"sync"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
)

// MemoryConversationStore mantém as conversas ativas em memória, indexadas
// pelo identificador do contato. O processamento é serializado por contato
// através de LockContact; contatos diferentes seguem em paralelo.
//
// Os registros armazenados nunca são mutados: toda leitura devolve uma cópia
// e Save grava uma cópia. Assim List pode rodar a qualquer momento (admin,
// relatórios, limpeza) sem disputar memória com um handler em andamento
type MemoryConversationStore struct {
	mu            sync.RWMutex
	conversations map[string]*conversation.Conversation

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewMemoryConversationStore cria um novo armazenamento em memória
func NewMemoryConversationStore() *MemoryConversationStore {
	return &MemoryConversationStore{
		conversations: make(map[string]*conversation.Conversation),
		locks:         make(map[string]*sync.Mutex),
	}
}

// Find busca a conversa de um contato e devolve uma cópia privada
func (s *MemoryConversationStore) Find(_ context.Context, contactID string) (*conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.conversations[contactID]
	if !ok {
		return nil, conversation.ErrNotFound
	}
	return c.Clone(), nil
}

// FindOrCreate busca a conversa de um contato, criando uma nova quando não
// existe. O chamador recebe uma cópia privada e publica as mudanças via Save
func (s *MemoryConversationStore) FindOrCreate(_ context.Context, contactID string) (*conversation.Conversation, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.conversations[contactID]; ok {
		return c.Clone(), false, nil
	}

	c, err := conversation.New(contactID)
	if err != nil {
		return nil, false, err
	}
	s.conversations[contactID] = c
	return c.Clone(), true, nil
}

// Save grava uma cópia do registro atualizado de uma conversa
func (s *MemoryConversationStore) Save(_ context.Context, c *conversation.Conversation) error {
	if c == nil || c.ContactID == "" {
		return conversation.ErrEmptyContactID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[c.ContactID] = c.Clone()
	return nil
}

// Delete remove a conversa de um contato
func (s *MemoryConversationStore) Delete(_ context.Context, contactID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, contactID)
	return nil
}

// List retorna um snapshot independente de todas as conversas ativas
func (s *MemoryConversationStore) List(_ context.Context) ([]*conversation.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*conversation.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		result = append(result, c.Clone())
	}
	return result, nil
}

// Count retorna o número de conversas ativas
func (s *MemoryConversationStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations), nil
}

// LockContact adquire o lock do contato e retorna a função de liberação
func (s *MemoryConversationStore) LockContact(contactID string) func() {
	s.locksMu.Lock()
	lock, ok := s.locks[contactID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[contactID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
