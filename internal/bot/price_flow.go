package bot

import (
	"context"
	"strings"

	"github.com/farmatech/atende-bot/internal/domain/conversation"
	"github.com/farmatech/atende-bot/pkg/validator"
)

// PriceFlow é a máquina de estados da consulta de preços: pergunta se o
// contato já é cliente, coleta CPF (e data de nascimento para cadastro) e
// por fim o produto desejado
type PriceFlow struct {
	messenger *Messenger
	stats     StatsSink
	cfg       Config
}

// NewPriceFlow cria o fluxo de consulta de preços
func NewPriceFlow(messenger *Messenger, stats StatsSink, cfg Config) *PriceFlow {
	return &PriceFlow{messenger: messenger, stats: stats, cfg: cfg}
}

// Start envia a abertura do fluxo e pergunta se o contato já é cliente
func (f *PriceFlow) Start(ctx context.Context, conv *conversation.Conversation) error {
	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceInitial); err != nil {
		return err
	}
	f.stats.IncrementOptionCount(string(conversation.OptionPriceCheck))
	return conv.SetState(conversation.StatePriceCheckAskIfClient)
}

// HandleIsClientResponse processa a resposta sobre ser ou não cliente
func (f *PriceFlow) HandleIsClientResponse(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case conversation.AnswerYes:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceIsClient); err != nil {
			return false, err
		}
		conv.SetData(conversation.DataIsClient, true)
		return false, conv.SetState(conversation.StatePriceCheckIsClient)

	case conversation.AnswerNo:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceNotClient); err != nil {
			return false, err
		}
		conv.SetData(conversation.DataIsClient, false)
		return false, conv.SetState(conversation.StatePriceCheckNotClient)

	default:
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgInvalidYesNo)
	}
}

// HandleClientCPF processa o CPF de quem já é cliente
func (f *PriceFlow) HandleClientCPF(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	cpf := strings.TrimSpace(text)

	if !validator.ValidateCPF(cpf) {
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgInvalidCPF)
	}

	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceAskProduct); err != nil {
		return false, err
	}
	conv.SetData(conversation.DataCPF, cpf)
	return false, conv.SetState(conversation.StatePriceCheckNoAccount)
}

// HandleNonClientChoice processa a decisão de criar ou não o cadastro
func (f *PriceFlow) HandleNonClientChoice(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	switch strings.TrimSpace(text) {
	case conversation.AnswerYes:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceCreateAccountCPF); err != nil {
			return false, err
		}
		conv.SetData(conversation.DataWillCreateAccount, true)
		return false, conv.SetState(conversation.StatePriceCheckCreateAccountCPF)

	case conversation.AnswerNo:
		if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceNoAccount); err != nil {
			return false, err
		}
		conv.SetData(conversation.DataWillCreateAccount, false)
		return false, conv.SetState(conversation.StatePriceCheckNoAccount)

	default:
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgInvalidYesNo)
	}
}

// HandleCreateAccountCPF processa o CPF informado para criação de cadastro
func (f *PriceFlow) HandleCreateAccountCPF(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	cpf := strings.TrimSpace(text)

	if !validator.ValidateCPF(cpf) {
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgInvalidCPF)
	}

	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceCreateAccountBirthdate); err != nil {
		return false, err
	}
	conv.SetData(conversation.DataCPF, cpf)
	return false, conv.SetState(conversation.StatePriceCheckCreateAccountBirthdate)
}

// HandleBirthdate processa a data de nascimento para criação de cadastro
func (f *PriceFlow) HandleBirthdate(ctx context.Context, conv *conversation.Conversation, text string) (bool, error) {
	birthdate := strings.TrimSpace(text)

	if !validator.ValidateDate(birthdate) {
		conv.RegisterInvalidAttempt()
		return false, f.messenger.Reply(ctx, conv.ContactID, msgInvalidBirthdate)
	}

	if err := f.messenger.ReplyTyping(ctx, conv.ContactID, f.cfg.TypingDelayMedium, msgPriceAskProductAfterSignup); err != nil {
		return false, err
	}
	conv.SetData(conversation.DataBirthdate, birthdate)
	return false, conv.SetState(conversation.StatePriceCheckNoAccount)
}

// HandleProductName recebe o produto desejado e encerra o fluxo
func (f *PriceFlow) HandleProductName(_ context.Context, conv *conversation.Conversation, text string) (bool, error) {
	conv.SetData(conversation.DataProductName, strings.TrimSpace(text))
	return true, nil
}
