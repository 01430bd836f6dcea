// cmd/chat/main.go
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ekthaa-chatbot/internal/catalog"
	"ekthaa-chatbot/internal/chat"
	"ekthaa-chatbot/internal/common/config"
	"ekthaa-chatbot/internal/common/database"
	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/nlu"
	"ekthaa-chatbot/internal/session"
	"ekthaa-chatbot/internal/tui"
)

// Terminal chat client. Talks to the catalog directly, no HTTP in between.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Keep zap's output away from the alternate screen.
	log := logger.NewNoOpLogger()

	postgres, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer postgres.Close()

	var completer chat.Completer
	var extractorCompleter nlu.Completer
	if groq, err := nlu.NewClient(cfg.Groq, log); err == nil {
		completer = groq
		extractorCompleter = groq
	}

	service := chat.NewService(
		catalog.NewStore(postgres.GetDB(), log),
		session.NewMemoryStore(config.GetDuration(cfg.Session.TTL*1000)),
		nlu.NewExtractor(extractorCompleter, log),
		completer,
		log,
	)

	program := tea.NewProgram(tui.New(service), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "chat client failed: %v\n", err)
		os.Exit(1)
	}
}
