package sweeper

import (
	"context"
	"time"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/internal/service/statistics"
	"github.com/farmatech/atende-bot/pkg/logger"
)

// Reporter dispara a geração de um relatório periódico
type Reporter interface {
	GenerateAndPersist(ctx context.Context)
}

// Sweeper remove conversas inativas periodicamente. A remoção é
// responsabilidade deste serviço, nunca do dispatcher: o dispatcher apenas
// expõe o timestamp de última atividade de cada registro
type Sweeper struct {
	store    conversation.Store
	stats    *statistics.Service
	reporter Reporter
	logger   logger.Logger

	interval time.Duration
	timeout  time.Duration
}

// New cria o serviço de limpeza de conversas inativas
func New(store conversation.Store, stats *statistics.Service, reporter Reporter, log logger.Logger, interval, timeout time.Duration) *Sweeper {
	return &Sweeper{
		store:    store,
		stats:    stats,
		reporter: reporter,
		logger:   log,
		interval: interval,
		timeout:  timeout,
	}
}

// Start executa a varredura periódica até o contexto ser cancelado
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Sweep(ctx)
				if s.reporter != nil {
					s.reporter.GenerateAndPersist(ctx)
				}
			}
		}
	}()
}

// Sweep remove as conversas sem atividade há mais tempo que o limite e
// retorna quantas foram removidas
func (s *Sweeper) Sweep(ctx context.Context) int {
	conversations, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("erro ao listar conversas para limpeza", "err", err)
		return 0
	}

	now := time.Now()
	removed := 0

	for _, c := range conversations {
		if c.IdleFor(now) <= s.timeout {
			continue
		}

		if err := s.store.Delete(ctx, c.ContactID); err != nil {
			s.logger.Error("erro ao remover conversa inativa", "contato", c.ContactID, "err", err)
			continue
		}

		// Conversa abandonada em atendimento humano não conta como concluída
		if c.IsWithHuman() {
			s.stats.MarkHumanChatClosed()
		} else {
			s.stats.MarkChatCompleted()
		}
		removed++
		s.logger.Info("conversa removida por inatividade", "contato", c.ContactID)
	}

	if removed > 0 {
		s.logger.Info("conversas inativas removidas", "quantidade", removed)
		if count, err := s.store.Count(ctx); err == nil {
			s.stats.UpdateActiveChatsCount(count)
		}
	}

	return removed
}
