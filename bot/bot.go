package bot

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"restaurant-menu/config"
	"restaurant-menu/models"
	"restaurant-menu/services"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// Telegram rejects messages longer than this many characters.
const maxMessageLen = 4096

type Bot struct {
	api     *tgbotapi.BotAPI
	menu    models.MenuComponent
	log     zerolog.Logger
	timeout int
}

func New(cfg *config.Config, menu models.MenuComponent, log zerolog.Logger) (*Bot, error) {
	timeout, err := cfg.Telegram.PollTimeout()
	if err != nil {
		return nil, err
	}
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	log.Info().Str("username", api.Self.UserName).Msg("authorized")
	return &Bot{api: api, menu: menu, log: log, timeout: timeout}, nil
}

func (b *Bot) setBotCommands() error {
	cfg := tgbotapi.SetMyCommandsConfig{
		Commands: []tgbotapi.BotCommand{
			{Command: "start", Description: "Welcome"},
			{Command: "menu", Description: "Show the menu"},
			{Command: "combos", Description: "List combo deals"},
		},
	}
	_, err := b.api.Request(cfg)
	return err
}

// Start polls for updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	if err := b.setBotCommands(); err != nil {
		b.log.Warn().Err(err).Msg("set bot commands")
	}
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.timeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			msg := update.Message
			text, err := b.reply(msg.Command())
			if err != nil {
				b.log.Error().Err(err).Str("command", msg.Command()).Msg("render reply")
				continue
			}
			if text == "" {
				continue
			}
			for _, part := range splitMessage(text, maxMessageLen) {
				b.send(msg.Chat.ID, part)
			}
		}
	}
}

// reply returns the answer to a bot command, or "" for commands the bot ignores.
func (b *Bot) reply(command string) (string, error) {
	switch command {
	case "start":
		return fmt.Sprintf("Welcome to %s! Send /menu to see what we serve.", services.MenuName(b.menu)), nil
	case "menu":
		text, err := services.RenderMenu(b.menu)
		if err != nil {
			return "", err
		}
		return strings.TrimLeft(text, "\n"), nil
	case "combos":
		combos := services.Combos(b.menu)
		if len(combos) == 0 {
			return "No combos today.", nil
		}
		var sb strings.Builder
		for _, c := range combos {
			fmt.Fprintf(&sb, "%s - $%s\n", c.Name(), models.FormatComboPrice(c.Price()))
		}
		return sb.String(), nil
	}
	return "", nil
}

func (b *Bot) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error().Err(err).Int64("chat_id", chatID).Msg("send")
	}
}

// splitMessage breaks text into chunks of at most limit bytes, cutting on
// line boundaries when a line fits.
func splitMessage(text string, limit int) []string {
	if len(text) <= limit {
		return []string{text}
	}
	var parts []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
		}
	}
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > limit {
			flush()
			cut := limit
			for cut > 1 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		if cur.Len()+len(line) > limit {
			flush()
		}
		cur.WriteString(line)
	}
	flush()
	return parts
}
