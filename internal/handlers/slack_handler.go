package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	slackcmd "github.com/coffeepair/coffee-chat-bot/internal/slack"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	slackClient   contract.SlackClient
	service       contract.CoffeeChatService
	signingSecret string
	log           *zap.Logger
}

func New(slackClient contract.SlackClient, service contract.CoffeeChatService, signingSecret string, log *zap.Logger) *SlackHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SlackHandler{
		slackClient:   slackClient,
		service:       service,
		signingSecret: signingSecret,
		log:           log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifyRequest(w, r)
	if !ok {
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, err.Error())
		return
	}

	response := h.handleCommand(cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// verifyRequest checks the Slack signature and returns the raw body.
func (h *SlackHandler) verifyRequest(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) handleCommand(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdRegister:
		return h.handleRegister(cmd, slashCmd)
	case slackcmd.CmdStart:
		return h.handleStart(slashCmd)
	case slackcmd.CmdPause:
		return h.handlePause(slashCmd)
	case slackcmd.CmdTrigger:
		return h.handleTrigger(slashCmd)
	case slackcmd.CmdReset:
		return h.handleReset(slashCmd)
	case slackcmd.CmdStatus:
		return h.handleStatus(slashCmd)
	case slackcmd.CmdHistory:
		return h.handleHistory(slashCmd)
	case slackcmd.CmdOptOut:
		return h.handleOptOut(slashCmd)
	case slackcmd.CmdOptIn:
		return h.handleOptIn(slashCmd)
	case slackcmd.CmdSkip:
		return h.handleSkip(slashCmd)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

// isAdmin checks whether a user is a workspace admin or owner.
func (h *SlackHandler) isAdmin(userID string) bool {
	info, err := h.slackClient.GetUserInfo(userID)
	if err != nil {
		return false
	}
	return info.IsAdmin || info.IsOwner || info.IsPrimaryOwner
}

func (h *SlackHandler) requireAdmin(slashCmd *slack.SlashCommand) *slack.Msg {
	if h.isAdmin(slashCmd.UserID) {
		return nil
	}
	return h.createErrorResponse("Only workspace admins can manage coffee chats.")
}

func (h *SlackHandler) handleRegister(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(slashCmd); msg != nil {
		return msg
	}

	frequencyDays := 0
	if len(cmd.Args) > 0 {
		parsed, err := strconv.Atoi(cmd.Args[0])
		if err != nil {
			return h.createErrorResponse("Invalid frequency. Please provide a number between 1 and 365 days.")
		}
		frequencyDays = parsed
	}

	err := h.service.RegisterChannel(slashCmd.ChannelID, slashCmd.ChannelName, frequencyDays)
	switch {
	case errors.Is(err, domain.ErrInvalidFrequency):
		return h.createErrorResponse("Invalid frequency. Please provide a number between 1 and 365 days.")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return h.createErrorResponse("This channel is already registered for coffee chats.")
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Error registering channel: %v", err))
	}

	if frequencyDays == 0 {
		frequencyDays = domain.DefaultPairingFrequencyDays
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ This channel has been registered for %s coffee chat pairings! Use `/coffeechat start` to begin the pairing cycle.",
			domain.FrequencyText(frequencyDays)),
	}
}

func (h *SlackHandler) handleStart(slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(slashCmd); msg != nil {
		return msg
	}

	existing, err := h.service.GetChannelConfig(slashCmd.ChannelID)
	if err != nil {
		return h.createErrorResponse("Error checking channel configuration")
	}
	if existing == nil {
		return h.createErrorResponse("This channel is not registered for coffee chats. Use `/coffeechat register` first.")
	}
	if existing.IsActive {
		return h.createErrorResponse("Coffee chats are already running in this channel. Use `/coffeechat pause` to pause them.")
	}

	config, err := h.service.StartChannel(slashCmd.ChannelID)
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Error starting coffee chats: %v", err))
	}

	var nextText string
	if config.NextPairingDate != nil {
		nextText = fmt.Sprintf("\n📅 Next automatic pairing will be on %s", config.NextPairingDate.Format("Monday (Jan 2)"))
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ Coffee chats have been started (%s)! The first pairings have been created.%s",
			domain.FrequencyText(config.PairingFrequencyDays), nextText),
	}
}

func (h *SlackHandler) handlePause(slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(slashCmd); msg != nil {
		return msg
	}

	err := h.service.PauseChannel(slashCmd.ChannelID)
	switch {
	case errors.Is(err, domain.ErrNotRegistered):
		return h.createErrorResponse("This channel is not registered for coffee chats.")
	case errors.Is(err, domain.ErrNotActive):
		return h.createErrorResponse("Coffee chats are not currently running. Use `/coffeechat start` to begin.")
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Error pausing coffee chats: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Coffee chats have been paused. No new automatic pairings will be created.\nUse `/coffeechat start` to resume automatic pairings.",
	}
}

func (h *SlackHandler) handleTrigger(slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(slashCmd); msg != nil {
		return msg
	}

	err := h.service.TriggerChannel(slashCmd.ChannelID)
	switch {
	case errors.Is(err, domain.ErrNotRegistered):
		return h.createErrorResponse("This channel is not registered for coffee chats. Use `/coffeechat register` first.")
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Error triggering coffee chats: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Coffee chat round triggered.",
	}
}

func (h *SlackHandler) handleReset(slashCmd *slack.SlashCommand) *slack.Msg {
	if msg := h.requireAdmin(slashCmd); msg != nil {
		return msg
	}

	pairingsDeleted, prefsDeleted, err := h.service.ResetChannel(slashCmd.ChannelID)
	switch {
	case errors.Is(err, domain.ErrNotRegistered):
		return h.createErrorResponse("This channel is not registered for coffee chats. Use `/coffeechat register` first.")
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Error resetting coffee chats: %v", err))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ *Coffee chats have been reset!*\n\n*Deleted:*\n• %d pairing(s)\n• %d user preference(s)\n• Reset pairing schedule\n\nYou can now start fresh with coffee chat pairings.",
			pairingsDeleted, prefsDeleted),
	}
}

func (h *SlackHandler) handleStatus(slashCmd *slack.SlashCommand) *slack.Msg {
	statuses, err := h.service.OptInStatuses(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse("Error checking coffee chat status")
	}

	if len(statuses) == 0 {
		return h.createErrorResponse("No coffee chat channels are currently registered.")
	}

	var lines strings.Builder
	lines.WriteString("*☕ Your Coffee Chat Status*\n")
	for _, status := range statuses {
		if status.OptedIn {
			lines.WriteString(fmt.Sprintf("✅ <#%s>: Opted in\n", status.SlackChannelID))
		} else {
			lines.WriteString(fmt.Sprintf("⏸️ <#%s>: Opted out\n", status.SlackChannelID))
		}
	}
	lines.WriteString("_Use the buttons in your pairing DMs or `/coffeechat optout` to change your status._")

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         lines.String(),
	}
}

func (h *SlackHandler) handleHistory(slashCmd *slack.SlashCommand) *slack.Msg {
	entries, err := h.service.PairingHistory(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse("Error retrieving pairing history")
	}

	if len(entries) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "☕ You haven't been paired with anyone yet. Stay tuned for your first coffee chat!",
		}
	}

	plural := "s"
	if len(entries) == 1 {
		plural = ""
	}

	var history strings.Builder
	history.WriteString(fmt.Sprintf("*☕ Your Coffee Chat History*\nYou've been paired *%d time%s* across all channels:\n", len(entries), plural))
	for _, entry := range entries {
		partners := make([]string, len(entry.PartnerIDs))
		for i, id := range entry.PartnerIDs {
			partners[i] = fmt.Sprintf("<@%s>", id)
		}

		status := "❌ Did not meet"
		if entry.MeetupConfirmed {
			status = "✅ Met"
		} else if entry.Active {
			status = "🟢 Active"
		}

		history.WriteString(fmt.Sprintf("• <#%s> %s - %s %s\n",
			entry.SlackChannelID, entry.CreatedAt.Format("Jan 2, 2006"), strings.Join(partners, ", "), status))
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         history.String(),
	}
}

func (h *SlackHandler) handleOptOut(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.handlePreferenceError(h.service.OptOut(slashCmd.ChannelID, slashCmd.UserID)); err != nil {
		return err
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ You've been opted out of future coffee chat pairings in this channel. Use `/coffeechat optin` to rejoin.",
	}
}

func (h *SlackHandler) handleOptIn(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.handlePreferenceError(h.service.OptIn(slashCmd.ChannelID, slashCmd.UserID)); err != nil {
		return err
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Welcome back! You've been opted back into coffee chat pairings in this channel.",
	}
}

func (h *SlackHandler) handleSkip(slashCmd *slack.SlashCommand) *slack.Msg {
	if err := h.handlePreferenceError(h.service.SkipNextPairing(slashCmd.ChannelID, slashCmd.UserID)); err != nil {
		return err
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Got it! You'll skip the next coffee chat pairing and be included again in the round after that.",
	}
}

func (h *SlackHandler) handlePreferenceError(err error) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrNotRegistered):
		return h.createErrorResponse("This channel is not registered for coffee chats.")
	case err != nil:
		return h.createErrorResponse(fmt.Sprintf("Error updating preferences: %v", err))
	}
	return nil
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
