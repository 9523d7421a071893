package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdRegister CommandType = "register"
	CmdStart    CommandType = "start"
	CmdPause    CommandType = "pause"
	CmdTrigger  CommandType = "trigger"
	CmdReset    CommandType = "reset"
	CmdStatus   CommandType = "status"
	CmdHistory  CommandType = "history"
	CmdOptOut   CommandType = "optout"
	CmdOptIn    CommandType = "optin"
	CmdSkip     CommandType = "skip"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch parts[0] {
	case "register":
		cmd.Type = CmdRegister
	case "start":
		cmd.Type = CmdStart
	case "pause", "disable":
		cmd.Type = CmdPause
	case "trigger":
		cmd.Type = CmdTrigger
	case "reset":
		cmd.Type = CmdReset
	case "status":
		cmd.Type = CmdStatus
	case "history":
		cmd.Type = CmdHistory
	case "optout", "opt-out":
		cmd.Type = CmdOptOut
	case "optin", "opt-in":
		cmd.Type = CmdOptIn
	case "skip":
		cmd.Type = CmdSkip
	case "help", "":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `*Available commands:*

*Channel setup (admins):*
• ` + "`/coffeechat register [days]`" + ` - Register this channel for pairings (default every 14 days)
• ` + "`/coffeechat start`" + ` - Start the pairing cycle and create the first round
• ` + "`/coffeechat pause`" + ` - Pause automatic pairings
• ` + "`/coffeechat trigger`" + ` - Create a round right now
• ` + "`/coffeechat reset`" + ` - Delete all pairings and preferences for this channel

*Your preferences:*
• ` + "`/coffeechat optout`" + ` - Leave future pairings in this channel
• ` + "`/coffeechat optin`" + ` - Rejoin future pairings in this channel
• ` + "`/coffeechat skip`" + ` - Sit out only the next round

*Info:*
• ` + "`/coffeechat status`" + ` - Your opt-in status across all channels
• ` + "`/coffeechat history`" + ` - Your past coffee chat pairings`
}
