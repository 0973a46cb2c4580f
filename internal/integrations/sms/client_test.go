package sms

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/m04kA/SMC-SalonCalendar/pkg/logger"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	args := m.Called(params)
	if msg := args.Get(0); msg != nil {
		return msg.(*twilioApi.ApiV2010Message), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSender_Send(t *testing.T) {
	api := &mockAPI{}
	sid := "SM123"
	api.On("CreateMessage", mock.MatchedBy(func(p *twilioApi.CreateMessageParams) bool {
		return *p.To == "+971501234567" && *p.From == "+15005550006" && *p.Body == "hello"
	})).Return(&twilioApi.ApiV2010Message{Sid: &sid}, nil)

	out := &bytes.Buffer{}
	sender := NewSenderWithAPI(api, "+15005550006", logger.NewWithWriter(out, "info"))

	require.NoError(t, sender.Send(context.Background(), " +971501234567 ", "hello"))
	api.AssertExpectations(t)
	assert.Contains(t, out.String(), "sid=SM123")
}

func TestSender_SendErrors(t *testing.T) {
	api := &mockAPI{}
	api.On("CreateMessage", mock.Anything).Return(nil, errors.New("invalid number"))
	sender := NewSenderWithAPI(api, "+15005550006", logger.NewWithWriter(&bytes.Buffer{}, "info"))

	assert.ErrorIs(t, sender.Send(context.Background(), "", "hello"), ErrNoPhone)
	assert.ErrorIs(t, sender.Send(context.Background(), "+1", "hello"), ErrSend)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sender.Send(ctx, "+1", "hello"), context.Canceled)
}

func TestMessageTexts(t *testing.T) {
	date := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t,
		"Hi Fatima, your appointment at Lushways Salon - Barsha is confirmed for Wed, 04 Jun 2025 at 10:30.",
		ConfirmationText("Lushways Salon - Barsha", "Fatima", date, "10:30"))
	assert.Contains(t, ReminderText("Lushways Salon - Barsha", "Fatima", date, "10:30"), "tomorrow, Wed, 04 Jun 2025 at 10:30")
}
