package notifier

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/csbs-dept/portal-api/internal/config"
	"github.com/csbs-dept/portal-api/internal/models"
)

type Notifier interface {
	NoticePosted(notice models.Notice) error
	RegistrationReceived(reg models.Registration) error
}

// DiscordNotifier announces portal activity in the department's Discord
// channel. It is optional; the server runs fine without it.
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscordNotifier(cfg *config.Config) (*DiscordNotifier, error) {
	if cfg.DiscordBotToken == "" || cfg.DiscordChannelID == "" {
		return nil, fmt.Errorf("discord bot token or channel ID not configured")
	}
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return nil, err
	}
	return &DiscordNotifier{
		session:   session,
		channelID: cfg.DiscordChannelID,
	}, nil
}

func (n *DiscordNotifier) NoticePosted(notice models.Notice) error {
	message := fmt.Sprintf("📢 **New Notice** [%s]\n**%s**\n%s\n— %s",
		notice.Category,
		notice.Title,
		notice.Content,
		notice.Author,
	)
	return n.send(message)
}

func (n *DiscordNotifier) RegistrationReceived(reg models.Registration) error {
	message := fmt.Sprintf("📝 **New Registration**\n**Event:** %s\n**Name:** %s (%s)\n**Email:** %s",
		reg.EventTitle,
		reg.FullName,
		reg.USN,
		reg.Email,
	)
	return n.send(message)
}

func (n *DiscordNotifier) send(message string) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		log.Printf("Failed to send discord message: %v", err)
		return err
	}
	return nil
}
