package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eliseohh/topobot/internal/stats"
	"github.com/eliseohh/topobot/internal/topology"
	tele "gopkg.in/telebot.v3"
)

type Bot struct {
	api *tele.Bot
	db  *stats.DB
	cfg Config
}

type Config struct {
	Token string
}

func New(cfg Config, db *stats.DB) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{api: b, db: db, cfg: cfg}
	bot.register()
	return bot, nil
}

func (b *Bot) Start() {
	fmt.Printf("Bot started: %s\n", b.api.Me.Username)
	b.api.Start()
}

func (b *Bot) register() {
	// Computation Commands
	b.api.Handle("/simplicial", b.handleSimplicial)
	b.api.Handle("/complex", b.handleComplex)
	b.api.Handle("/betti", b.handleBetti)
	b.api.Handle("/euler", b.handleEuler)

	// Utility
	b.api.Handle("/hello", b.handleHello)
	b.api.Handle("/status", b.handleStatus)
	b.api.Handle("/history", b.handleHistory)

	// Novelty
	b.registerVibes()

	// Catch-all for free text
	b.api.Handle(tele.OnText, func(c tele.Context) error {
		return c.Send("🌀 Try /simplicial a-b, b-c, c-a — or /complex, /betti, /euler, /vibes.")
	})
}

// /hello ping
func (b *Bot) handleHello(c tele.Context) error {
	name := "there"
	if u := c.Sender(); u != nil && u.FirstName != "" {
		name = u.FirstName
	}
	return c.Send(fmt.Sprintf("Hi %s! I'm your algebraic topology bot 🌀", name))
}

// /simplicial: edge lists, the original 1-dimensional command.
// The general engine subsumes it, so it shares the /complex pipeline.
func (b *Bot) handleSimplicial(c tele.Context) error {
	payload := c.Message().Payload
	if strings.TrimSpace(payload) == "" {
		return c.Send("Usage: /simplicial a-b, b-c, c-a")
	}
	return b.runReport(c, "/simplicial", payload)
}

// /complex: maximal simplices of any (small) dimension.
func (b *Bot) handleComplex(c tele.Context) error {
	payload := c.Message().Payload
	if strings.TrimSpace(payload) == "" {
		return c.Send("Usage: /complex a-b-c, c-d")
	}
	return b.runReport(c, "/complex", payload)
}

// /betti <dim> <simplices>
func (b *Bot) handleBetti(c tele.Context) error {
	payload := c.Message().Payload
	parts := strings.SplitN(strings.TrimSpace(payload), " ", 2)
	if len(parts) < 2 {
		return c.Send("Usage: /betti <dim> <simplices>, e.g. /betti 1 a-b, b-c, c-a")
	}

	dim, err := strconv.Atoi(parts[0])
	if err != nil || dim < 0 {
		return c.Send(fmt.Sprintf("⛔ %q is not a valid dimension.", parts[0]))
	}

	cx, err := topology.ParseComplex(parts[1])
	if err != nil {
		return c.Send(inputError(err))
	}

	beta, err := cx.BettiNumber(dim)
	if errors.Is(err, topology.ErrUnsupportedDimension) {
		return c.Send(fmt.Sprintf("ℹ️ β for dimension %d is not computed (supported up to dim %d).", dim, topology.MaxBettiDim))
	}
	if err != nil {
		return c.Send(inputError(err))
	}

	b.record("/betti", payload, fmt.Sprintf("β%d=%d", dim, beta))
	return c.Send(fmt.Sprintf("β in dimension %d = %d", dim, beta))
}

// /euler: face counts and χ only, no homology.
func (b *Bot) handleEuler(c tele.Context) error {
	payload := c.Message().Payload
	if strings.TrimSpace(payload) == "" {
		return c.Send("Usage: /euler a-b-c, c-d")
	}

	cx, err := topology.ParseComplex(payload)
	if err != nil {
		return c.Send(inputError(err))
	}

	chi := cx.EulerCharacteristic()
	var counts []string
	for d, n := range cx.FaceCounts() {
		counts = append(counts, fmt.Sprintf("dim %d: %d", d, n))
	}

	b.record("/euler", payload, fmt.Sprintf("χ=%d", chi))
	return c.Send(fmt.Sprintf("Faces: %s\nEuler characteristic χ = %d", strings.Join(counts, " | "), chi))
}

// runReport is the full pipeline: parse → close → analyze → reply.
func (b *Bot) runReport(c tele.Context, command, payload string) error {
	cx, err := topology.ParseComplex(payload)
	if err != nil {
		return c.Send(inputError(err))
	}

	rep := topology.Analyze(cx)
	b.record(command, payload, rep.Summary())

	return c.Send(rep.Format(), &tele.SendOptions{ParseMode: tele.ModeMarkdown})
}

// -- Session log --

func (b *Bot) handleStatus(c tele.Context) error {
	counts, err := b.db.CommandCounts()
	if err != nil {
		return c.Send(fmt.Sprintf("DB Error: %v", err))
	}
	if len(counts) == 0 {
		return c.Send("📊 No computations yet this session.")
	}

	var lines []string
	total := 0
	for _, cc := range counts {
		lines = append(lines, fmt.Sprintf("• %s: %d", cc.Command, cc.Count))
		total += cc.Count
	}
	return c.Send(fmt.Sprintf("📊 Computations this session: %d\n%s", total, strings.Join(lines, "\n")))
}

func (b *Bot) handleHistory(c tele.Context) error {
	entries, err := b.db.Recent(5)
	if err != nil {
		return c.Send(fmt.Sprintf("DB Error: %v", err))
	}
	if len(entries) == 0 {
		return c.Send("🕳 Nothing computed yet.")
	}

	var lines []string
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("• %s %s → %s", e.Command, e.Input, e.Summary))
	}
	return c.Send("🗒 Recent computations:\n" + strings.Join(lines, "\n"))
}

// record logs best-effort; the session log must never block a reply.
func (b *Bot) record(command, input, summary string) {
	if b.db == nil {
		return
	}
	if err := b.db.Record(command, input, summary); err != nil {
		fmt.Printf("⚠️ stats record failed: %v\n", err)
	}
}

// inputError converts engine errors to user-facing text.
func inputError(err error) string {
	if errors.Is(err, topology.ErrMalformedInput) {
		return fmt.Sprintf("⛔ I couldn't parse that complex (%v).\nUse format like: `a-b, b-c, c-a` or `a-b-c, c-d`.", err)
	}
	return fmt.Sprintf("⛔ Error: %v", err)
}
