// Package whatsapp отправляет сообщения WhatsApp через Twilio.
package whatsapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const addressPrefix = "whatsapp:"

// messageCreator часть Twilio API, которую использует клиент
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client шлюз уведомлений поверх Twilio Messages API
type Client struct {
	api  messageCreator
	from string
	log  Logger
}

// NewClient создает клиент Twilio. from - номер отправителя, с префиксом "whatsapp:" или без
func NewClient(accountSID, authToken, from string, timeout time.Duration, log Logger) (*Client, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, ErrNotConfigured
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	rest.SetTimeout(timeout)

	return newClient(rest.Api, from, log), nil
}

func newClient(api messageCreator, from string, log Logger) *Client {
	if !strings.HasPrefix(from, addressPrefix) {
		from = addressPrefix + from
	}
	return &Client{api: api, from: from, log: log}
}

// Send отправляет body на адрес to ("whatsapp:+34...") и возвращает SID сообщения
func (c *Client) Send(ctx context.Context, to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(c.from)
	params.SetTo(to)
	params.SetBody(body)

	// Запрос, уже ушедший в Twilio, не прерывается: его результат определяет,
	// остается ли маркер напоминания. Время ограничено таймаутом REST клиента
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	msg, err := c.api.CreateMessage(params)
	if err != nil {
		c.log.Error("WhatsApp: failed to send message to %s: %v", to, err)
		return "", fmt.Errorf("%w: to=%s: %v", ErrSendFailed, to, err)
	}

	sid := ""
	if msg != nil && msg.Sid != nil {
		sid = *msg.Sid
	}
	c.log.Info("WhatsApp: message sent to %s, sid=%s", to, sid)
	return sid, nil
}
