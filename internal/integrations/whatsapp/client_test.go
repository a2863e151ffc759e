package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/SMC-AgendaService/pkg/logger"
)

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	args := m.Called(params)
	if msg := args.Get(0); msg != nil {
		return msg.(*twilioApi.ApiV2010Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSend_Success(t *testing.T) {
	api := &mockCreator{}
	sid := "SM123"
	api.On("CreateMessage", mock.MatchedBy(func(p *twilioApi.CreateMessageParams) bool {
		return *p.From == "whatsapp:+14155238886" && *p.To == "whatsapp:+34612345678" && *p.Body == "hola"
	})).Return(&twilioApi.ApiV2010Message{Sid: &sid}, nil)

	client := newClient(api, "+14155238886", logger.NewNop())

	got, err := client.Send(context.Background(), "whatsapp:+34612345678", "hola")
	require.NoError(t, err)
	assert.Equal(t, "SM123", got)
	api.AssertExpectations(t)
}

func TestSend_Failure(t *testing.T) {
	api := &mockCreator{}
	api.On("CreateMessage", mock.Anything).Return(nil, errors.New("21211 invalid 'To' number"))

	client := newClient(api, "whatsapp:+14155238886", logger.NewNop())

	_, err := client.Send(context.Background(), "whatsapp:+34000", "hola")
	assert.ErrorIs(t, err, ErrSendFailed)
}

func TestSend_CancelledBeforeRequest(t *testing.T) {
	api := &mockCreator{}
	client := newClient(api, "+14155238886", logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Send(ctx, "whatsapp:+34612345678", "hola")
	assert.ErrorIs(t, err, ErrSendFailed)
	api.AssertNotCalled(t, "CreateMessage", mock.Anything)
}

func TestSend_WaitsForIssuedRequest(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := &mockCreator{}
	sid := "SM456"
	// ctx отменяется, пока Twilio обрабатывает запрос
	api.On("CreateMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(&twilioApi.ApiV2010Message{Sid: &sid}, nil).Once()

	client := newClient(api, "+14155238886", logger.NewNop())

	got, err := client.Send(ctx, "whatsapp:+34612345678", "hola")
	require.NoError(t, err)
	assert.Equal(t, "SM456", got)
	api.AssertExpectations(t)
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient("", "token", "+14155238886", 0, logger.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}
