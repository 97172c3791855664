package statistics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/farmatech/atende-bot/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bot_stats.json")
	return NewService(path, time.Hour, logger.NewLogger())
}

func TestIncrementTotalChats(t *testing.T) {
	s := newTestService(t)

	s.IncrementTotalChats()
	s.IncrementTotalChats()

	snap := s.Snapshot()
	if snap.TotalChats != 2 {
		t.Errorf("expected 2 total chats, got %d", snap.TotalChats)
	}
	if snap.ActiveChats != 2 {
		t.Errorf("expected 2 active chats, got %d", snap.ActiveChats)
	}
}

func TestIncrementOptionCountIgnoresUnknown(t *testing.T) {
	s := newTestService(t)

	s.IncrementOptionCount("1")
	s.IncrementOptionCount("1")
	s.IncrementOptionCount("4")
	s.IncrementOptionCount("9")
	s.IncrementOptionCount("oi")

	snap := s.Snapshot()
	if snap.OptionCounts["1"] != 2 {
		t.Errorf("expected option 1 counted twice, got %d", snap.OptionCounts["1"])
	}
	if snap.OptionCounts["4"] != 1 {
		t.Errorf("expected option 4 counted once, got %d", snap.OptionCounts["4"])
	}
	if len(snap.OptionCounts) != 4 {
		t.Errorf("expected only the four menu options, got %v", snap.OptionCounts)
	}
}

func TestTransferAndCloseCounters(t *testing.T) {
	s := newTestService(t)

	s.IncrementTotalChats()
	s.MarkChatTransferred()

	snap := s.Snapshot()
	if snap.WaitingForHuman != 1 || snap.WithHuman != 1 {
		t.Fatalf("expected waiting=1 with=1, got waiting=%d with=%d", snap.WaitingForHuman, snap.WithHuman)
	}

	s.MarkHumanChatClosed()
	s.MarkHumanChatClosed() // não pode ficar negativo

	snap = s.Snapshot()
	if snap.WaitingForHuman != 0 || snap.WithHuman != 0 {
		t.Errorf("expected counters back to zero, got waiting=%d with=%d", snap.WaitingForHuman, snap.WithHuman)
	}
}

func TestMarkChatCompleted(t *testing.T) {
	s := newTestService(t)

	s.IncrementTotalChats()
	s.MarkChatCompleted()

	snap := s.Snapshot()
	if snap.ActiveChats != 0 {
		t.Errorf("expected 0 active chats, got %d", snap.ActiveChats)
	}
	if snap.CompletedChats != 1 {
		t.Errorf("expected 1 completed chat, got %d", snap.CompletedChats)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	s := newTestService(t)
	s.IncrementOptionCount("2")

	snap := s.Snapshot()
	snap.OptionCounts["2"] = 99

	if got := s.Snapshot().OptionCounts["2"]; got != 1 {
		t.Errorf("mutating the snapshot changed the service counters: %d", got)
	}
}

func TestSaveAndLoadAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_stats.json")
	log := logger.NewLogger()

	first := NewService(path, time.Hour, log)
	first.IncrementTotalChats()
	first.IncrementTotalChats()
	first.IncrementOptionCount("3")
	first.MarkChatTransferred()
	first.Save()

	// Uma nova execução preserva o acumulado e zera o que é volátil
	second := NewService(path, time.Hour, log)
	snap := second.Snapshot()

	if snap.TotalChats != 2 {
		t.Errorf("expected total chats restored, got %d", snap.TotalChats)
	}
	if snap.OptionCounts["3"] != 1 {
		t.Errorf("expected option counts restored, got %v", snap.OptionCounts)
	}
	if snap.ActiveChats != 0 || snap.WaitingForHuman != 0 || snap.WithHuman != 0 {
		t.Errorf("expected volatile counters zeroed, got %+v", snap)
	}
}

func TestSaveWritesValidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_stats.json")
	s := NewService(path, time.Hour, logger.NewLogger())
	s.IncrementTotalChats()
	s.Save()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error reading stats file: %v", err)
	}

	var decoded Stats
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("stats file is not valid JSON: %v", err)
	}
	if decoded.TotalChats != 1 {
		t.Errorf("expected 1 total chat in file, got %d", decoded.TotalChats)
	}
}

func TestLoadIgnoresCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot_stats.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewService(path, time.Hour, logger.NewLogger())
	if snap := s.Snapshot(); snap.TotalChats != 0 {
		t.Errorf("expected fresh counters on corrupt file, got %d", snap.TotalChats)
	}
}
