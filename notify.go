package main

import "github.com/slack-go/slack"

// PostRunSummary posts a run summary line to the report channel.
// Notification failures are the caller's to log; a failed post never
// affects the run itself.
func PostRunSummary(api *slack.Client, channelID, summary string) error {
	_, _, err := api.PostMessage(channelID, slack.MsgOptionText(summary, false))
	return err
}
