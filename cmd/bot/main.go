package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eliseohh/topobot/internal/bot"
	"github.com/eliseohh/topobot/internal/stats"
)

func main() {
	fmt.Println("TopoBot: Cohomology Magic ✨")

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_TOKEN not found. Set it in the environment.")
	}

	// Session log. In-memory only: restarting the bot resets /status.
	db, err := stats.Open()
	if err != nil {
		log.Fatalf("Stats init failed: %v", err)
	}
	defer db.Close()

	b, err := bot.New(bot.Config{Token: token}, db)
	if err != nil {
		log.Fatalf("Bot init failed: %v", err)
	}

	fmt.Println("🤖 Bot Online. Listening...")
	b.Start()
}
