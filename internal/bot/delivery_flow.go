package bot

import (
	"context"
	"strings"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
)

// DeliveryFlow é a máquina de estados das informações de entrega: confirma o
// interesse, coleta os produtos ou oferece a volta ao menu
type DeliveryFlow struct {
	messenger *Messenger
	stats     StatsSink
	cfg       Config
}

// NewDeliveryFlow cria o fluxo de informações de entrega
func NewDeliveryFlow(messenger *Messenger, stats StatsSink, cfg Config) *DeliveryFlow {
	return &DeliveryFlow{messenger: messenger, stats: stats, cfg: cfg}
}

// Start envia as condições de entrega e pede confirmação
func (f *DeliveryFlow) Start(ctx context.Context, conv *conversation.Conversation) error {
	text := deliveryInitialMessage(f.cfg.DeliveryCity, f.cfg.DeliveryFee)
	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, text); err != nil {
		return err
	}
	f.stats.IncrementOptionCount(string(conversation.OptionDeliveryInfo))
	return conv.SetState(conversation.StateDeliveryConfirmation)
}

// HandleConfirmation processa a confirmação de interesse na entrega
func (f *DeliveryFlow) HandleConfirmation(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case conversation.AnswerYes:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgDeliveryProducts); err != nil {
			return false, err
		}
		conv.SetData(conversation.DataProceedWithDelivery, true)
		return false, conv.SetState(conversation.StateDeliveryProducts)

	case conversation.AnswerNo:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgDeliveryDeclined); err != nil {
			return false, err
		}
		conv.SetData(conversation.DataProceedWithDelivery, false)
		return false, conv.SetState(conversation.StateDeliveryDeclined)

	default:
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgInvalidYesNo)
	}
}

// HandleProducts recebe a lista de produtos para entrega e encerra o fluxo
func (f *DeliveryFlow) HandleProducts(_ context.Context, conv *conversation.Conversation, text string) (bool, error) {
	conv.SetData(conversation.DataDeliveryProducts, strings.TrimSpace(text))
	return true, nil
}

// HandleDeclined processa a escolha após desistir da entrega: voltar ao menu
// ou falar com um atendente
func (f *DeliveryFlow) HandleDeclined(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case conversation.AnswerYes:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgMenuOptions); err != nil {
			return false, err
		}
		conv.BackToMenu()
		return false, nil

	case conversation.AnswerNo:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgAgentInitial); err != nil {
			return false, err
		}
		conv.Option = conversation.OptionTalkToAgent
		f.stats.IncrementOptionCount(string(conversation.OptionTalkToAgent))
		return false, conv.SetState(conversation.StateOptionSelected)

	default:
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgDeliveryDeclinedInvalid)
	}
}
