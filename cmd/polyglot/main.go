// Polyglot is an interactive multilingual chatbot for the terminal.
// It detects the language you type in and answers in kind.
//
// Usage:
//
//	polyglot [flags]
//	polyglot --config /path/to/polyglot.yaml
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/polyglotbot/polyglot/internal/catalog"
	"github.com/polyglotbot/polyglot/internal/config"
	"github.com/polyglotbot/polyglot/internal/detect"
	"github.com/polyglotbot/polyglot/internal/engine"
	"github.com/polyglotbot/polyglot/internal/speech"
	"github.com/polyglotbot/polyglot/internal/translate"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

func banner() {
	fmt.Println(colorCyan + "=======================================" + colorReset)
	fmt.Println(colorCyan + "  PolyglotBot, your multilingual friend" + colorReset)
	fmt.Println(colorCyan + "=======================================" + colorReset)
	fmt.Println(colorYellow + "Type in any language. Say 'help' for commands, 'bye' to leave." + colorReset)
	fmt.Println()
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configFile := flag.String("config", "", "path to config file (e.g. configs/polyglot.yaml)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("polyglot %s\n", version)
		os.Exit(0)
	}

	// Load .env if present so credentials like LIBRE_API_KEY resolve.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	config.SetupLogging(cfg.Logging)

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	responses := catalog.Load(cfg.Responses.File, slog.Default())
	detector := detect.NewChain(slog.Default())
	dispatcher := translate.NewDispatcher(slog.Default(),
		translate.NewMyMemory(cfg.Translation.MyMemory.BaseURL),
		translate.NewLibreTranslate(cfg.Translation.LibreTranslate.BaseURL, cfg.Translation.LibreTranslate.APIKey),
		translate.NewLingva(cfg.Translation.Lingva.BaseURL),
	)

	var speaker speech.Speaker = speech.NewNoOp(slog.Default())
	if cfg.Voice.Enabled {
		speaker = speech.NewHTGo(cfg.Voice.AudioDir)
	}

	bot := engine.New(detector, dispatcher, responses, speaker, slog.Default())
	bot.Session().VoiceEnabled = cfg.Voice.Enabled

	banner()
	fmt.Println(colorGreen + "Bot: " + bot.Greet(ctx, "").String() + colorReset)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You: ")
		if !scanner.Scan() {
			// EOF or Ctrl-D ends the conversation like a farewell.
			fmt.Println()
			fmt.Println(colorGreen + "Bot: " + bot.Terminate(ctx).String() + colorReset)
			break
		}

		reply := bot.Turn(ctx, scanner.Text())
		for _, part := range reply.Parts {
			fmt.Println(colorGreen + "Bot: " + part + colorReset)
		}
		if reply.Terminated {
			break
		}

		select {
		case <-ctx.Done():
			fmt.Println()
			fmt.Println(colorGreen + "Bot: " + bot.Terminate(ctx).String() + colorReset)
			return
		default:
		}
	}

	if err := scanner.Err(); err != nil {
		slog.Error("input error", "error", err)
		os.Exit(1)
	}
}
