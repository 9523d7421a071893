package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/slack-go/slack"
)

func userMentions(userIDs []string) string {
	mentions := make([]string, len(userIDs))
	for i, id := range userIDs {
		mentions[i] = fmt.Sprintf("<@%s>", id)
	}
	return strings.Join(mentions, ", ")
}

func mrkdwnSection(text string) *slack.SectionBlock {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

// pairingActionButtons builds the three controls attached to pairing DMs:
// confirm carries the pairing id, skip and opt-out carry the channel id.
func pairingActionButtons(pairingID int64, slackChannelID string) *slack.ActionBlock {
	confirm := slack.NewButtonBlockElement(domain.ActionConfirmMeetup, strconv.FormatInt(pairingID, 10),
		slack.NewTextBlockObject(slack.PlainTextType, "✅ We Met!", false, false))
	confirm.Style = slack.StylePrimary

	skip := slack.NewButtonBlockElement(domain.ActionSkipNext, slackChannelID,
		slack.NewTextBlockObject(slack.PlainTextType, "⏭️ Skip Next Time", false, false))

	optOut := slack.NewButtonBlockElement(domain.ActionOptOut, slackChannelID,
		slack.NewTextBlockObject(slack.PlainTextType, "⏸️ Pause Future Pairings", false, false))
	optOut.Style = slack.StyleDanger

	return slack.NewActionBlock("", confirm, skip, optOut)
}

func schedulingLinksSection(links []schedulingLink) *slack.SectionBlock {
	lines := make([]string, len(links))
	for i, l := range links {
		lines[i] = fmt.Sprintf("• <@%s>: %s", l.UserID, l.Link)
	}
	return mrkdwnSection(":link: *Scheduling Links:*\n" + strings.Join(lines, "\n"))
}

// announcementBlocks is the message posted into a fresh pairing group DM.
func announcementBlocks(userIDs []string, activity string, dueDate time.Time, links []schedulingLink, pairingID int64, slackChannelID string) []slack.Block {
	mentions := userMentions(userIDs)

	blocks := []slack.Block{
		mrkdwnSection(fmt.Sprintf(":tada: Hey %s! You've been paired for a coffee chat. ☕", mentions)),
		mrkdwnSection(fmt.Sprintf(":bulb: *Suggested activity:* %s\n\nTake some time over the next few days to connect and get to know each other better!", activity)),
		mrkdwnSection(fmt.Sprintf(":calendar: *Meet by:* %s", dueDate.Format("Monday, January 2"))),
		mrkdwnSection("📸 *Don't forget to snap some photos!* Share them in the channel to celebrate your meetup!"),
	}
	if len(links) > 0 {
		blocks = append(blocks, schedulingLinksSection(links))
	}
	blocks = append(blocks, pairingActionButtons(pairingID, slackChannelID))

	return blocks
}

// reminderBlocks is the midpoint nudge posted into the pairing's group DM.
func reminderBlocks(userIDs []string, daysRemaining int, links []schedulingLink, pairingID int64, slackChannelID string) []slack.Block {
	dayWord := "days"
	if daysRemaining == 1 {
		dayWord = "day"
	}

	blocks := []slack.Block{
		mrkdwnSection(fmt.Sprintf("Hey %s! 👋", userMentions(userIDs))),
		mrkdwnSection(fmt.Sprintf("Just a friendly reminder about your coffee chat! You have about %d %s left to connect. ☕\n\nDon't forget to share any photos you take together in the channel!", daysRemaining, dayWord)),
	}
	if len(links) > 0 {
		blocks = append(blocks, schedulingLinksSection(links))
	}
	blocks = append(blocks, pairingActionButtons(pairingID, slackChannelID))

	return blocks
}

// roundSummaryBlocks announces a completed round in the channel itself.
func roundSummaryBlocks(pairingCount int, nextPairingDate time.Time) []slack.Block {
	plural := ""
	if pairingCount != 1 {
		plural = "s"
	}
	partnerPlural := ""
	if pairingCount > 1 {
		partnerPlural = "s"
	}

	return []slack.Block{
		mrkdwnSection(fmt.Sprintf(":tada: Hooray! I just created %d coffee chat pairing%s a few moments ago.", pairingCount, plural)),
		mrkdwnSection(fmt.Sprintf(":coffee: Have fun meeting with your coffee chat partner%s :slightly_smiling_face:", partnerPlural)),
		mrkdwnSection(fmt.Sprintf(":calendar: Your next scheduled pairing is on %s", nextPairingDate.Format("Monday (Jan 2)"))),
	}
}

// statsBlocks is the per-channel participation report.
func statsBlocks(totalPairings, completedPairings, uniqueParticipants, totalMembers int, participationRate string, frequencyDays int, reportDate time.Time) []slack.Block {
	dayWord := "days"
	if frequencyDays == 1 {
		dayWord = "day"
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Pairings Created:*\n%d", totalPairings), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Unique Participants:*\n%d of %d", uniqueParticipants, totalMembers), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Participation Rate:*\n%s%%", participationRate), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Completed Pairings:*\n%d of %d", completedPairings, totalPairings), false, false),
	}

	return []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, "☕ Coffee Chat Stats", true, false)),
		slack.NewSectionBlock(nil, fields, nil),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("Stats from the past %d %s • %s", frequencyDays, dayWord, reportDate.Format("January 2, 2006")), false, false)),
	}
}
