package statistics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/farmatech/atende-bot/pkg/logger"
)

// Stats agrupa os contadores de atendimento
type Stats struct {
	TotalChats      int            `json:"totalChats"`
	ActiveChats     int            `json:"activeChats"`
	WaitingForHuman int            `json:"waitingForHuman"`
	WithHuman       int            `json:"withHuman"`
	CompletedChats  int            `json:"completedChats"`
	OptionCounts    map[string]int `json:"optionCounts"`
	StartTime       time.Time      `json:"startTime"`
	LastUpdated     time.Time      `json:"lastUpdated"`
}

// Service acumula estatísticas de uso do bot e as descarrega periodicamente
// em um arquivo JSON (melhor esforço). É construído e injetado explicitamente,
// com ciclo de vida próprio: Start inicia o flush periódico e Stop grava o
// estado final
type Service struct {
	mu           sync.Mutex
	stats        Stats
	filePath     string
	saveInterval time.Duration
	logger       logger.Logger
	cancel       context.CancelFunc
	done         chan struct{}
}

// NewService cria o serviço de estatísticas, carregando contadores salvos de
// execuções anteriores quando o arquivo existe
func NewService(filePath string, saveInterval time.Duration, log logger.Logger) *Service {
	s := &Service{
		stats: Stats{
			OptionCounts: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0},
			StartTime:    time.Now(),
			LastUpdated:  time.Now(),
		},
		filePath:     filePath,
		saveInterval: saveInterval,
		logger:       log,
	}
	s.load()
	return s
}

// Start inicia o salvamento periódico das estatísticas
func (s *Service) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.saveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Save()
			}
		}
	}()
}

// Stop interrompe o flush periódico e grava o estado final
func (s *Service) Stop() {
	if s.cancel != nil {
		s.cancel()
		<-s.done
	}
	s.Save()
}

// IncrementTotalChats registra uma nova conversa
func (s *Service) IncrementTotalChats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.TotalChats++
	s.stats.ActiveChats++
	s.stats.LastUpdated = time.Now()
}

// IncrementOptionCount registra a escolha de uma opção do menu
func (s *Service) IncrementOptionCount(option string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.stats.OptionCounts[option]; !ok {
		return
	}
	s.stats.OptionCounts[option]++
	s.stats.LastUpdated = time.Now()
}

// MarkChatTransferred registra uma transferência para atendente humano
func (s *Service) MarkChatTransferred() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.WaitingForHuman++
	s.stats.WithHuman++
	s.stats.LastUpdated = time.Now()
}

// MarkChatCompleted registra o encerramento de uma conversa
func (s *Service) MarkChatCompleted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.ActiveChats--
	s.stats.CompletedChats++
	s.stats.LastUpdated = time.Now()
}

// MarkHumanChatClosed ajusta os contadores quando uma conversa em atendimento
// humano deixa de existir (remoção por inatividade ou liberação manual)
func (s *Service) MarkHumanChatClosed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stats.WithHuman > 0 {
		s.stats.WithHuman--
	}
	if s.stats.WaitingForHuman > 0 {
		s.stats.WaitingForHuman--
	}
	s.stats.LastUpdated = time.Now()
}

// UpdateActiveChatsCount sincroniza o número de conversas ativas
func (s *Service) UpdateActiveChatsCount(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats.ActiveChats = count
	s.stats.LastUpdated = time.Now()
}

// Snapshot retorna uma cópia dos contadores atuais
func (s *Service) Snapshot() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := s.stats
	copied.OptionCounts = make(map[string]int, len(s.stats.OptionCounts))
	for k, v := range s.stats.OptionCounts {
		copied.OptionCounts[k] = v
	}
	return copied
}

// Uptime retorna há quanto tempo o serviço está em execução
func (s *Service) Uptime() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.stats.StartTime)
}

// Save grava as estatísticas no arquivo configurado (melhor esforço)
func (s *Service) Save() {
	snapshot := s.Snapshot()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		s.logger.Error("erro ao serializar estatísticas", "err", err)
		return
	}

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		s.logger.Error("erro ao salvar estatísticas", "err", err)
	}
}

// load carrega estatísticas de execuções anteriores. Contadores que refletem
// o estado do processo (ativas, aguardando, em atendimento) voltam a zero
func (s *Service) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Error("erro ao carregar estatísticas", "err", err)
		}
		return
	}

	var saved Stats
	if err := json.Unmarshal(data, &saved); err != nil {
		s.logger.Error(fmt.Sprintf("erro ao interpretar %s", s.filePath), "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats.TotalChats = saved.TotalChats
	s.stats.CompletedChats = saved.CompletedChats
	for k, v := range saved.OptionCounts {
		if _, ok := s.stats.OptionCounts[k]; ok {
			s.stats.OptionCounts[k] = v
		}
	}
	s.stats.ActiveChats = 0
	s.stats.WaitingForHuman = 0
	s.stats.WithHuman = 0
	s.stats.StartTime = time.Now()
	s.stats.LastUpdated = time.Now()

	s.logger.Info("estatísticas carregadas", "arquivo", s.filePath)
}
