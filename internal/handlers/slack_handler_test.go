package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"github.com/coffeepair/coffee-chat-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectAdmin(m test.ServiceMocks, userID string, isAdmin bool) {
	m.SlackClientMock.EXPECT().
		GetUserInfo(userID).
		Return(&slack.User{ID: userID, IsAdmin: isAdmin}, nil).Times(1)
}

func decodeResponse(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()

	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	return response
}

func TestSlackHandler_HandleSlashCommand(t *testing.T) {
	type args struct {
		text        string
		channelID   string
		channelName string
		userID      string
	}

	tests := []struct {
		name          string
		args          args
		buildMocks    func(m test.ServiceMocks, args args)
		checkResponse func(t *testing.T, resp *httptest.ResponseRecorder)
	}{
		{
			name: "Should register a channel",
			args: args{text: "register 7", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					RegisterChannel(args.channelID, args.channelName, 7).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "registered for weekly coffee chat pairings")
			},
		},
		{
			name: "Should reject register from a non admin",
			args: args{text: "register", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, false)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Only workspace admins")
			},
		},
		{
			name: "Should reject register with a non numeric frequency",
			args: args{text: "register often", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "Invalid frequency")
			},
		},
		{
			name: "Should report an already registered channel",
			args: args{text: "register", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					RegisterChannel(args.channelID, args.channelName, 0).
					Return(domain.ErrAlreadyRegistered).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "already registered")
			},
		},
		{
			name: "Should start coffee chats",
			args: args{text: "start", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)

				m.CoffeeChatServiceMock.EXPECT().
					GetChannelConfig(args.channelID).
					Return(&entity.ChannelConfig{ID: 1, SlackChannelID: args.channelID, IsActive: false, PairingFrequencyDays: 14}, nil).Times(1)

				next := time.Date(2025, time.March, 26, 0, 0, 0, 0, time.UTC)
				m.CoffeeChatServiceMock.EXPECT().
					StartChannel(args.channelID).
					Return(&entity.ChannelConfig{
						ID:                   1,
						SlackChannelID:       args.channelID,
						IsActive:             true,
						PairingFrequencyDays: 14,
						NextPairingDate:      &next,
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "Coffee chats have been started")
				assert.Contains(t, response.Text, "Wednesday (Mar 26)")
			},
		},
		{
			name: "Should refuse to start an unregistered channel",
			args: args{text: "start", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					GetChannelConfig(args.channelID).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "not registered")
			},
		},
		{
			name: "Should refuse to start an already running channel",
			args: args{text: "start", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					GetChannelConfig(args.channelID).
					Return(&entity.ChannelConfig{ID: 1, SlackChannelID: args.channelID, IsActive: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "already running")
			},
		},
		{
			name: "Should pause coffee chats",
			args: args{text: "pause", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					PauseChannel(args.channelID).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "paused")
			},
		},
		{
			name: "Should report pause on an inactive channel",
			args: args{text: "pause", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					PauseChannel(args.channelID).
					Return(domain.ErrNotActive).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "not currently running")
			},
		},
		{
			name: "Should trigger a round",
			args: args{text: "trigger", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					TriggerChannel(args.channelID).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "round triggered")
			},
		},
		{
			name: "Should reset a channel and report counts",
			args: args{text: "reset", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				expectAdmin(m, args.userID, true)
				m.CoffeeChatServiceMock.EXPECT().
					ResetChannel(args.channelID).
					Return(int64(4), int64(2), nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "4 pairing(s)")
				assert.Contains(t, response.Text, "2 user preference(s)")
			},
		},
		{
			name: "Should show opt-in status across channels",
			args: args{text: "status", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					OptInStatuses(args.userID).
					Return([]entity.ChannelOptInStatus{
						{SlackChannelID: "C123", OptedIn: true},
						{SlackChannelID: "C456", OptedIn: false},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "✅ <#C123>: Opted in")
				assert.Contains(t, response.Text, "⏸️ <#C456>: Opted out")
			},
		},
		{
			name: "Should show pairing history",
			args: args{text: "history", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					PairingHistory(args.userID).
					Return([]entity.PairingHistoryEntry{
						{
							SlackChannelID:  "C123",
							PartnerIDs:      []string{"U2"},
							CreatedAt:       time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
							MeetupConfirmed: true,
						},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "paired *1 time*")
				assert.Contains(t, response.Text, "<@U2>")
				assert.Contains(t, response.Text, "✅ Met")
			},
		},
		{
			name: "Should show empty history",
			args: args{text: "history", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					PairingHistory(args.userID).
					Return(nil, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "haven't been paired")
			},
		},
		{
			name: "Should opt the user out",
			args: args{text: "optout", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					OptOut(args.channelID, args.userID).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "opted out")
			},
		},
		{
			name: "Should opt the user back in",
			args: args{text: "optin", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					OptIn(args.channelID, args.userID).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "opted back in")
			},
		},
		{
			name: "Should record a skip",
			args: args{text: "skip", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					SkipNextPairing(args.channelID, args.userID).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "skip the next coffee chat")
			},
		},
		{
			name: "Should map unregistered channel errors for preferences",
			args: args{text: "optout", channelID: "C123", channelName: "random", userID: "U1"},
			buildMocks: func(m test.ServiceMocks, args args) {
				m.CoffeeChatServiceMock.EXPECT().
					OptOut(args.channelID, args.userID).
					Return(domain.ErrNotRegistered).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Contains(t, response.Text, "not registered")
			},
		},
		{
			name: "Should return help text",
			args: args{text: "help", channelID: "C123", channelName: "random", userID: "U1"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Available commands")
			},
		},
		{
			name: "Should report an unknown command",
			args: args{text: "dance", channelID: "C123", channelName: "random", userID: "U1"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decodeResponse(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "unknown command")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(m, tt.args)
			}

			req := test.CreateSlackRequest(t, "/coffeechat", tt.args.text,
				tt.args.channelID, tt.args.channelName, tt.args.userID)
			resp := test.CreateTestRecorder()

			handler.HandleSlashCommand(resp, req)

			tt.checkResponse(t, resp)
		})
	}
}

func TestSlackHandler_HandleSlashCommand_InvalidSignature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	req := test.CreateSlackRequest(t, "/coffeechat", "help", "C123", "random", "U1")
	req.Header.Set("X-Slack-Signature", "v0=deadbeef")
	resp := test.CreateTestRecorder()

	handler.HandleSlashCommand(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
