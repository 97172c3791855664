package bot

import (
	"context"
	"strings"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/pkg/validator"
)

// AgentFlow é o fluxo de atendimento humano: coleta o assunto e transfere
type AgentFlow struct {
	messenger *Messenger
	stats     StatsSink
	cfg       Config
}

// NewAgentFlow cria o fluxo de atendimento humano
func NewAgentFlow(messenger *Messenger, stats StatsSink, cfg Config) *AgentFlow {
	return &AgentFlow{messenger: messenger, stats: stats, cfg: cfg}
}

// Start pergunta o assunto do atendimento
func (f *AgentFlow) Start(ctx context.Context, conv *conversation.Conversation) error {
	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgAgentInitial); err != nil {
		return err
	}
	f.stats.IncrementOptionCount(string(conversation.OptionTalkToAgent))
	return conv.SetState(conversation.StateOptionSelected)
}

// HandleSubject recebe o assunto e encerra o fluxo
func (f *AgentFlow) HandleSubject(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	subject := strings.TrimSpace(text)

	if !validator.ValidateText(subject, validator.MinTextLength, validator.MaxTextLength) {
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgAgentSubjectRequired)
	}

	conv.SetData(conversation.DataAgentSubject, subject)
	conv.InvalidAttempts = 0
	return true, nil
}
