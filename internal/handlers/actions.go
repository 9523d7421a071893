package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// HandleInteraction processes block action callbacks from the buttons
// attached to pairing DMs. Replies go to the action's response URL without
// replacing the original message.
func (h *SlackHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(r.FormValue("payload")), &callback); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if callback.Type != slack.InteractionTypeBlockActions || len(callback.ActionCallback.BlockActions) == 0 {
		w.WriteHeader(http.StatusOK)
		return
	}

	action := callback.ActionCallback.BlockActions[0]
	userID := callback.User.ID

	var reply *slack.WebhookMessage
	switch action.ActionID {
	case domain.ActionConfirmMeetup:
		reply = h.handleConfirmMeetupAction(action.Value)
	case domain.ActionSkipNext:
		reply = h.handleSkipNextAction(action.Value, userID)
	case domain.ActionOptOut:
		reply = h.handleOptOutAction(action.Value, userID)
	case domain.ActionOptIn:
		reply = h.handleOptInAction(action.Value, userID)
	default:
		w.WriteHeader(http.StatusOK)
		return
	}

	// Slack wants a fast ack; the visible reply goes to the response URL.
	w.WriteHeader(http.StatusOK)

	if callback.ResponseURL != "" {
		reply.ReplaceOriginal = false
		if err := slack.PostWebhook(callback.ResponseURL, reply); err != nil {
			h.log.Warn("failed to post action reply",
				zap.String("action_id", action.ActionID), zap.Error(err))
		}
	}
}

func (h *SlackHandler) handleConfirmMeetupAction(pairingIDValue string) *slack.WebhookMessage {
	pairingID, err := strconv.ParseInt(pairingIDValue, 10, 64)
	if err != nil {
		return actionErrorReply("Error confirming meetup: invalid pairing")
	}

	if err := h.service.ConfirmMeetup(pairingID); err != nil {
		return actionErrorReply(fmt.Sprintf("Error confirming meetup: %v", err))
	}

	return &slack.WebhookMessage{
		Text: "✅ Awesome! Thanks for confirming your meetup. We hope you had a great time! 🎉",
	}
}

func (h *SlackHandler) handleSkipNextAction(channelID, userID string) *slack.WebhookMessage {
	if err := h.service.SkipNextPairing(channelID, userID); err != nil {
		return actionErrorReply(fmt.Sprintf("Error skipping next pairing: %v", err))
	}

	return &slack.WebhookMessage{
		Text: "✅ Got it! You'll skip the next coffee chat pairing. You'll automatically be included in the round after that.",
	}
}

func (h *SlackHandler) handleOptOutAction(channelID, userID string) *slack.WebhookMessage {
	if err := h.service.OptOut(channelID, userID); err != nil {
		return actionErrorReply(fmt.Sprintf("Error opting out of coffee chats: %v", err))
	}

	resume := slack.NewButtonBlockElement(domain.ActionOptIn, channelID,
		slack.NewTextBlockObject(slack.PlainTextType, "▶️ Resume Pairings", false, false))
	resume.Style = slack.StylePrimary

	return &slack.WebhookMessage{
		Text: "You've been opted out of future coffee chat pairings.",
		Blocks: &slack.Blocks{BlockSet: []slack.Block{
			slack.NewSectionBlock(
				slack.NewTextBlockObject(slack.MarkdownType,
					"✅ You've been opted out of future coffee chat pairings. You won't be included in upcoming rounds.", false, false),
				nil, nil),
			slack.NewActionBlock("", resume),
		}},
	}
}

func (h *SlackHandler) handleOptInAction(channelID, userID string) *slack.WebhookMessage {
	if err := h.service.OptIn(channelID, userID); err != nil {
		return actionErrorReply(fmt.Sprintf("Error opting into coffee chats: %v", err))
	}

	return &slack.WebhookMessage{
		Text: "✅ Welcome back! You've been opted back into coffee chat pairings. You'll be included in future rounds.",
	}
}

func actionErrorReply(message string) *slack.WebhookMessage {
	return &slack.WebhookMessage{
		Text: fmt.Sprintf("❌ %s", message),
	}
}
