// Package discord bridges discord messages and the command router. All
// platform formatting policy lives here: embeds for per-target replies,
// code blocks for free-form output, DMs for private acknowledgments.
package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	uuid "github.com/satori/go.uuid"

	statusbot "github.com/PartTimeHarmacist/ServerStatusBot"
	"github.com/PartTimeHarmacist/ServerStatusBot/logx"
	"github.com/PartTimeHarmacist/ServerStatusBot/pkg/dispatch"
)

// messageCharacterLimit is discord's hard cap per message. Oversized
// replies are reported with their length instead of being truncated
// silently.
const messageCharacterLimit = 2000

type FrontEnd struct {
	logger  logx.Logger
	router  *dispatch.Router
	session *discordgo.Session
	prefix  string
}

func NewFrontEnd(logger logx.Logger, router *dispatch.Router, token string, opts ...Option) (*FrontEnd, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	f := &FrontEnd{
		logger:  logger.WithName("discord"),
		router:  router,
		session: session,
		prefix:  o.prefix,
	}
	session.AddHandler(f.handleReady)
	session.AddHandler(f.handleMessage)
	return f, nil
}

// Run opens the gateway connection and blocks until ctx is canceled.
func (f *FrontEnd) Run(ctx context.Context) error {
	if err := f.session.Open(); err != nil {
		f.logger.Error(failedToConnect, err)
		return err
	}
	defer f.session.Close()

	f.logger.Info(connected)
	<-ctx.Done()
	return nil
}

func (f *FrontEnd) handleReady(s *discordgo.Session, ready *discordgo.Ready) {
	logger := f.logger.WithName("ready")
	for _, guild := range ready.Guilds {
		logger.Info(guildJoined, logx.Data{Key: "guild", Value: guild.ID})
	}
}

func (f *FrontEnd) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, f.prefix) {
		return
	}

	words := strings.Fields(strings.TrimPrefix(m.Content, f.prefix))
	if len(words) == 0 {
		return
	}

	inv := f.parseInvocation(s, m, words)
	logger := f.logger.WithName("message").WithData(
		logx.Data{Key: "invocation", Value: inv.ID},
		logx.Data{Key: "command", Value: inv.Command},
	)

	reply, err := f.router.Route(context.Background(), inv)
	if err != nil {
		if errors.Is(err, statusbot.ErrUnknownCommand) {
			logger.Debug(unknownCommand)
			return
		}
		logger.Error(failedToRoute, err)
		return
	}

	f.deliver(logger, m, reply)
}

func (f *FrontEnd) parseInvocation(s *discordgo.Session, m *discordgo.MessageCreate, words []string) statusbot.Invocation {
	inv := statusbot.Invocation{
		ID:      uuid.NewV4().String(),
		Command: words[0],
		Requester: statusbot.Identity{
			ID:      m.Author.ID,
			Display: m.Author.String(),
		},
		Channel: m.ChannelID,
	}

	if channel, err := s.State.Channel(m.ChannelID); err == nil {
		inv.Private = channel.Type == discordgo.ChannelTypeDM ||
			channel.Type == discordgo.ChannelTypeGroupDM
		if channel.Name != "" {
			inv.Channel = channel.Name
		}
	}

	args := words[1:]
	switch inv.Command {
	case dispatch.CommandGetLogs, dispatch.CommandCmd:
		// First argument names the single target; the rest ride along.
		if len(args) > 0 {
			inv.Targets = args[:1]
			inv.Args = args[1:]
		}
	case dispatch.CommandPermissions, dispatch.CommandDumpPerms, dispatch.CommandBotUptime:
		inv.Args = args
	default:
		inv.Targets = args
	}

	if len(m.Mentions) > 0 {
		inv.MentionID = m.Mentions[0].ID
	}
	return inv
}

func (f *FrontEnd) deliver(logger logx.Logger, m *discordgo.MessageCreate, reply statusbot.Reply) {
	if reply.Empty() {
		return
	}

	if len(reply.Fields) > 0 || reply.Title != "" {
		embed := &discordgo.MessageEmbed{Title: reply.Title}
		for _, field := range reply.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   field.Name,
				Value:  field.Value,
				Inline: field.Inline,
			})
		}
		if _, err := f.session.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
			logger.Error(failedToSendReply, err)
		}
	}

	if reply.Text != "" {
		f.sendText(logger, m.ChannelID, fmt.Sprintf("```\n%s\n```", reply.Text))
	}

	if reply.Direct != "" {
		f.sendDirect(logger, m.Author.ID, reply.Direct)
	}

	if reply.RedactAfter > 0 {
		go f.redact(logger, m.ChannelID, m.ID, reply.RedactAfter)
	}
}

func (f *FrontEnd) sendText(logger logx.Logger, channelID, content string) {
	if len(content) > messageCharacterLimit {
		diagnostic := fmt.Sprintf(
			"Failed to deliver reply. Content length shows to be %d - the limit is %d per message.",
			len(content), messageCharacterLimit)
		if _, err := f.session.ChannelMessageSend(channelID, diagnostic); err != nil {
			logger.Error(failedToSendReply, err)
		}
		return
	}

	if _, err := f.session.ChannelMessageSend(channelID, content); err != nil {
		logger.Error(failedToSendReply, err)
	}
}

func (f *FrontEnd) sendDirect(logger logx.Logger, userID, content string) {
	channel, err := f.session.UserChannelCreate(userID)
	if err != nil {
		logger.Error(failedToOpenDirectChannel, err)
		return
	}
	f.sendText(logger, channel.ID, fmt.Sprintf("```\n%s\n```", content))
}

func (f *FrontEnd) redact(logger logx.Logger, channelID, messageID string, delay time.Duration) {
	time.Sleep(delay)
	if err := f.session.ChannelMessageDelete(channelID, messageID); err != nil {
		logger.Error(failedToRedactMessage, err)
	}
}
