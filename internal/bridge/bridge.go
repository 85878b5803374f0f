// ABOUTME: Matrix bridge core: event routing between rooms and the agent
// ABOUTME: Owns the session map, dedupe tracker, and per-room processing guard

package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"maunium.net/go/mautrix"
	"maunium.net/go/mautrix/event"
	"maunium.net/go/mautrix/id"

	"github.com/2389/gitscout/internal/agent"
	"github.com/2389/gitscout/internal/config"
	"github.com/2389/gitscout/internal/dedupe"
)

// User-facing strings. The assistant speaks Ukrainian.
const (
	greeting = "Привіт! Я AI-рекрутер бот. 🤖\n\n" +
		"Я можу аналізувати GitHub-профілі та допомагати оцінювати кандидатів.\n" +
		"Просто надішліть мені GitHub-нік або посилання на профіль (наприклад, " +
		"`https://github.com/torvalds`) і сформулюйте, що саме вас цікавить."

	investigatingNotice = "🔎 Досліджую GitHub-профіль, це може зайняти кілька секунд..."

	errorReply = "Сталася помилка під час обробки запиту. Будь ласка, спробуйте ще раз пізніше."
)

// typingTimeout is the duration the typing indicator shows.
const typingTimeout = 30 * time.Second

// networkTimeout is the timeout for auxiliary Matrix API calls.
const networkTimeout = 10 * time.Second

// dedupe window for replayed sync events.
const (
	dedupeTTL     = 10 * time.Minute
	dedupeMaxSize = 4096
)

// Bridge connects Matrix rooms to the agent.
type Bridge struct {
	cfg      *config.Config
	matrix   *mautrix.Client
	agent    *agent.Agent
	sessions *agent.Sessions
	seen     *dedupe.Tracker
	logger   *slog.Logger

	// Rooms with a turn in flight; extra messages are dropped.
	processing sync.Map

	// parent context for message processing goroutines
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a bridge over an already-authenticated Matrix client.
func New(cfg *config.Config, client *mautrix.Client, ag *agent.Agent, logger *slog.Logger) *Bridge {
	return &Bridge{
		cfg:      cfg,
		matrix:   client,
		agent:    ag,
		sessions: agent.NewSessions(),
		seen:     dedupe.NewTracker(dedupeTTL, dedupeMaxSize),
		logger:   logger.With("component", "bridge"),
	}
}

// Run starts the sync loop and blocks until the context is cancelled.
func (b *Bridge) Run(ctx context.Context) error {
	b.logger.Info("starting matrix bridge",
		"homeserver", b.cfg.Matrix.Homeserver,
		"user_id", b.cfg.Matrix.UserID,
	)

	b.ctx, b.cancel = context.WithCancel(ctx)
	defer b.cancel()
	defer b.seen.Close()

	syncer, ok := b.matrix.Syncer.(*mautrix.DefaultSyncer)
	if !ok {
		return fmt.Errorf("unexpected syncer type: %T", b.matrix.Syncer)
	}
	syncer.OnEventType(event.EventMessage, b.handleMessageEvent)

	b.logger.Info("connecting to matrix homeserver")

	syncErr := make(chan error, 1)
	go func() {
		syncErr <- b.matrix.SyncWithContext(b.ctx)
	}()

	b.logger.Info("matrix bridge running")

	select {
	case <-ctx.Done():
		b.logger.Info("shutting down matrix bridge")
		b.cancel()
		return nil
	case err := <-syncErr:
		return fmt.Errorf("matrix sync failed: %w", err)
	}
}

// handleMessageEvent filters incoming events and hands real messages to a
// processing goroutine so the sync loop never blocks.
func (b *Bridge) handleMessageEvent(ctx context.Context, evt *event.Event) {
	if evt.Sender == id.UserID(b.cfg.Matrix.UserID) {
		return
	}

	content, ok := evt.Content.Parsed.(*event.MessageEventContent)
	if !ok {
		return
	}
	if content.MsgType != event.MsgText {
		return
	}

	roomID := evt.RoomID.String()
	if !b.isRoomAllowed(roomID) {
		b.logger.Debug("ignoring message from non-allowed room", "room", roomID)
		return
	}

	// Sync restarts can replay recent events.
	if b.seen.Seen(evt.ID.String()) {
		b.logger.Debug("ignoring replayed event", "event_id", evt.ID.String())
		return
	}

	body := strings.TrimSpace(content.Body)
	if body == "" {
		return
	}

	b.logger.Info("received message",
		"room", roomID,
		"sender", evt.Sender.String(),
		"content", truncate(body, 50),
	)

	if body == "/start" {
		go b.handleStart(evt.RoomID)
		return
	}

	go b.processMessage(evt.RoomID, body)
}

// handleStart resets the room's session and sends the greeting.
func (b *Bridge) handleStart(roomID id.RoomID) {
	b.sessions.Reset(roomID.String())
	b.logger.Info("session reset", "room", roomID.String())
	b.sendMarkdown(roomID, greeting)
}

// processMessage runs one agent turn for a room.
func (b *Bridge) processMessage(roomID id.RoomID, body string) {
	roomStr := roomID.String()

	if _, loaded := b.processing.LoadOrStore(roomStr, true); loaded {
		b.logger.Debug("already processing message in room, dropping", "room", roomStr)
		return
	}
	defer b.processing.Delete(roomStr)

	if b.cfg.Bridge.TypingIndicator {
		b.setTyping(roomID, true)
		defer b.setTyping(roomID, false)
	}

	// A GitHub investigation can take a while; let the user know up front.
	if mentionsGitHub(body) {
		b.sendPlain(roomID, investigatingNotice)
	}

	sess := b.sessions.Get(roomStr)
	answer, err := b.agent.Turn(b.ctx, sess, body)
	if err != nil {
		b.logger.Error("turn failed", "room", roomStr, "error", err)
		b.sendPlain(roomID, errorReply)
		return
	}

	if answer == "" {
		b.logger.Warn("empty answer from agent", "room", roomStr)
		return
	}

	b.logger.Info("sending answer", "room", roomStr, "length", len(answer))
	b.sendMarkdown(roomID, answer)
}

// isRoomAllowed checks the room against the allow-list. An empty list
// allows every room.
func (b *Bridge) isRoomAllowed(roomID string) bool {
	if len(b.cfg.Bridge.AllowedRooms) == 0 {
		return true
	}
	for _, allowed := range b.cfg.Bridge.AllowedRooms {
		if allowed == roomID {
			return true
		}
	}
	return false
}

// setTyping sends the typing indicator to a room.
func (b *Bridge) setTyping(roomID id.RoomID, typing bool) {
	var timeout time.Duration
	if typing {
		timeout = typingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), networkTimeout)
	defer cancel()
	if _, err := b.matrix.UserTyping(ctx, roomID, typing, timeout); err != nil {
		b.logger.Debug("failed to set typing indicator", "room", roomID.String(), "error", err)
	}
}

// sendMarkdown sends a message with an HTML formatted body. If rendering
// fails the message goes out as plain text with formatting stripped.
func (b *Bridge) sendMarkdown(roomID id.RoomID, markdown string) {
	html, err := renderHTML(markdown)
	if err != nil {
		b.logger.Warn("markdown rendering failed, sending without formatting",
			"room", roomID.String(), "error", err)
		b.sendPlain(roomID, stripFormatting(markdown))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	content := event.MessageEventContent{
		MsgType:       event.MsgText,
		Body:          markdown,
		Format:        event.FormatHTML,
		FormattedBody: html,
	}
	if _, err := b.matrix.SendMessageEvent(ctx, roomID, event.EventMessage, &content); err != nil {
		b.logger.Error("failed to send message", "room", roomID.String(), "error", err)
	}
}

// sendPlain sends an unformatted text message.
func (b *Bridge) sendPlain(roomID id.RoomID, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := b.matrix.SendText(ctx, roomID, text); err != nil {
		b.logger.Error("failed to send message", "room", roomID.String(), "error", err)
	}
}

// truncate shortens a string to maxLen runes for log lines.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
