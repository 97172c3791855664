package bot

import (
	"context"
	"strings"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/pkg/validator"
)

// ProductFlow é o fluxo de disponibilidade de produtos: coleta o nome do
// produto e transfere para um atendente
type ProductFlow struct {
	messenger *Messenger
	stats     StatsSink
	cfg       Config
}

// NewProductFlow cria o fluxo de disponibilidade de produtos
func NewProductFlow(messenger *Messenger, stats StatsSink, cfg Config) *ProductFlow {
	return &ProductFlow{messenger: messenger, stats: stats, cfg: cfg}
}

// Start envia a abertura do fluxo
func (f *ProductFlow) Start(ctx context.Context, conv *conversation.Conversation) error {
	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgProductInitial); err != nil {
		return err
	}
	f.stats.IncrementOptionCount(string(conversation.OptionProductAvailability))
	return conv.SetState(conversation.StateOptionSelected)
}

// HandleAvailability recebe o produto a consultar e encerra o fluxo
func (f *ProductFlow) HandleAvailability(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	productInfo := strings.TrimSpace(text)

	if !validator.ValidateText(productInfo, 2, validator.MaxTextLength) {
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgProductMoreDetails)
	}

	conv.SetData(conversation.DataProductInfo, productInfo)
	conv.InvalidAttempts = 0
	return true, nil
}
