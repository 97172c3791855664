package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
)

func TestFindOrCreate(t *testing.T) {
	store := NewMemoryConversationStore()
	ctx := context.Background()

	c, created, err := store.FindOrCreate(ctx, "a@c.us")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected conversation to be created")
	}
	if c.State != conversation.StateInitial {
		t.Errorf("expected initial state, got %q", c.State)
	}

	again, created, err := store.FindOrCreate(ctx, "a@c.us")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected existing conversation to be reused")
	}
	if again.ContactID != c.ContactID || again.State != c.State {
		t.Error("expected the same conversation on the second lookup")
	}
}

func TestReadsReturnPrivateCopies(t *testing.T) {
	store := NewMemoryConversationStore()
	ctx := context.Background()

	c, _, _ := store.FindOrCreate(ctx, "a@c.us")
	_ = c.SetState(conversation.StateMenuShown)
	c.SetData(conversation.DataCPF, "076.954.805-92")

	// Mudanças ficam invisíveis até Save
	stored, _ := store.Find(ctx, "a@c.us")
	if stored.State != conversation.StateInitial {
		t.Errorf("expected unsaved changes to stay private, got %q", stored.State)
	}

	if err := store.Save(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ = store.Find(ctx, "a@c.us")
	if stored.State != conversation.StateMenuShown {
		t.Errorf("expected saved state visible, got %q", stored.State)
	}

	// Mudar o registro salvo depois do Save também não afeta o store
	c.SetData(conversation.DataProductName, "Dipirona")
	stored, _ = store.Find(ctx, "a@c.us")
	if _, ok := stored.Data[conversation.DataProductName]; ok {
		t.Error("mutating a saved record must not leak into the store")
	}
}

func TestFindMissing(t *testing.T) {
	store := NewMemoryConversationStore()

	if _, err := store.Find(context.Background(), "ghost@c.us"); !errors.Is(err, conversation.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteAndCount(t *testing.T) {
	store := NewMemoryConversationStore()
	ctx := context.Background()

	store.FindOrCreate(ctx, "a@c.us")
	store.FindOrCreate(ctx, "b@c.us")

	if n, _ := store.Count(ctx); n != 2 {
		t.Fatalf("expected 2 conversations, got %d", n)
	}

	if err := store.Delete(ctx, "a@c.us"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n, _ := store.Count(ctx); n != 1 {
		t.Errorf("expected 1 conversation after delete, got %d", n)
	}
	if _, err := store.Find(ctx, "a@c.us"); !errors.Is(err, conversation.ErrNotFound) {
		t.Errorf("expected deleted conversation to be gone, got %v", err)
	}
}

func TestListReturnsSnapshot(t *testing.T) {
	store := NewMemoryConversationStore()
	ctx := context.Background()

	c, _, _ := store.FindOrCreate(ctx, "a@c.us")
	c.SetData(conversation.DataProductName, "Dipirona")
	if err := store.Save(ctx, c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(list))
	}

	// Alterar o snapshot não pode afetar o registro armazenado
	list[0].Data[conversation.DataProductName] = "outro"

	stored, _ := store.Find(ctx, "a@c.us")
	if stored.Data[conversation.DataProductName] != "Dipirona" {
		t.Error("mutating the snapshot changed the stored record")
	}
}

func TestLockContactSerializesSameContact(t *testing.T) {
	store := NewMemoryConversationStore()

	var mu sync.Mutex
	var order []int

	unlock := store.LockContact("a@c.us")

	done := make(chan struct{})
	go func() {
		inner := store.LockContact("a@c.us")
		mu.Lock()
		order = append(order, 2)
		mu.Unlock()
		inner()
		close(done)
	}()

	// O lock de outro contato não é bloqueado pelo primeiro
	other := store.LockContact("b@c.us")
	other()

	mu.Lock()
	order = append(order, 1)
	mu.Unlock()
	unlock()
	<-done

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected holder to finish before waiter, got %v", order)
	}
}
