// Package slackx wraps the Slack Web API client used for outbound messages.
package slackx

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Poster posts a message to a channel.
type Poster interface {
	PostMessage(channelID, text string) error
}

type client struct {
	api *slack.Client
}

// NewPoster returns a Poster backed by the Slack Web API.
func NewPoster(botToken string) Poster {
	return &client{api: slack.New(botToken)}
}

func (c *client) PostMessage(channelID, text string) error {
	_, _, err := c.api.PostMessage(channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("error posting message to %s: %w", channelID, err)
	}
	return nil
}
