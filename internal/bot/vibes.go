package bot

import (
	"math/rand/v2"

	tele "gopkg.in/telebot.v3"
)

// Novelty command. Same file-per-handler split as the computation
// commands; no state, no math.

var vibes = []string{
	"Today your cochains are all closed **and** exact. Pure harmony. ✨",
	"Your life has nontrivial cohomology in degree 1: loops of thought that never quite vanish. 🔁",
	"Yesterday's problems? They differ by a coboundary. Same class, new representative. ♻️",
	"Your room has β₀ = 1 (connected) but an infinite-dimensional H¹ of unfinished projects. 📚",
	"Sometimes, the best you can do is pass to cohomology and ignore exact noise. 🧘‍♀️",
}

func (b *Bot) registerVibes() {
	b.api.Handle("/vibes", b.handleVibes)
}

func (b *Bot) handleVibes(c tele.Context) error {
	return c.Send(vibes[rand.IntN(len(vibes))], &tele.SendOptions{ParseMode: tele.ModeMarkdown})
}
