// Package cmd wires the process together: configuration, tool registry,
// provider clients, executors and the HTTP server.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/spf13/cobra"
	"google.golang.org/genai"

	"github.com/Hadi2525/toolbridge/internal/agent"
	"github.com/Hadi2525/toolbridge/internal/config"
	"github.com/Hadi2525/toolbridge/internal/server"
	"github.com/Hadi2525/toolbridge/internal/tools"
	"github.com/Hadi2525/toolbridge/internal/version"
)

var (
	configPath string
	port       int
)

var rootCmd = &cobra.Command{
	Use:   "toolbridge",
	Short: "HTTP backend that lets LLMs call shared backend tools",
	Long: `toolbridge serves two endpoints, POST /query (OpenAI chat completions)
and POST /query-gemini (Gemini function calling), both backed by one
registry of tools: news lookup, place search, unit conversion and the
current time. The model picks the tools, toolbridge executes them and
asks the model for a final natural-language summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		versionFlag, _ := cmd.Flags().GetBool("version")
		if versionFlag {
			fmt.Printf("toolbridge version %s\n", version.Get())
			return nil
		}
		return runServer(cmd.Context())
	},
}

// Execute runs the root command. It is called by main.main() and listens
// for SIGINT (shells) and SIGTERM (container environments) to trigger a
// graceful shutdown.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a toolbridge.yaml config file")
	rootCmd.Flags().IntVar(&port, "port", 0, "listen port (overrides config and PORT)")
	rootCmd.Flags().BoolP("version", "v", false, "print version and exit")
	rootCmd.SilenceUsage = true
}

func runServer(ctx context.Context) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Addr = fmt.Sprintf(":%d", port)
	}

	reg, err := buildRegistry(cfg)
	if err != nil {
		return err
	}

	oaiClient := openai.NewClient(option.WithAPIKey(cfg.OpenAI.APIKey))
	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return fmt.Errorf("creating gemini client: %w", err)
	}

	openaiExec := agent.NewOpenAIExecutor(&oaiClient, reg, agent.OpenAIOptions{
		Model:        cfg.OpenAI.Model,
		SummaryModel: cfg.OpenAI.SummaryModel,
		Pricing: agent.Pricing{
			InputCostPerMillion:  cfg.Pricing.InputCostPerMillion,
			OutputCostPerMillion: cfg.Pricing.OutputCostPerMillion,
		},
	}, logger)
	geminiExec := agent.NewGeminiExecutor(geminiClient.Models, reg, cfg.Gemini.Model, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(openaiExec, geminiExec, logger).Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// buildRegistry registers the built-in tools against the configured
// third-party endpoints. The registry is written here once and read-only
// for the rest of the process lifetime.
func buildRegistry(cfg *config.Config) (*tools.Registry, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	reg := tools.NewRegistry()
	err := tools.RegisterBuiltins(reg,
		&tools.NewsClient{
			BaseURL: cfg.News.BaseURL,
			APIKey:  cfg.News.APIKey,
			HTTP:    httpClient,
		},
		&tools.PlacesClient{
			BaseURL:      cfg.Apify.BaseURL,
			Token:        cfg.Apify.Token,
			Actor:        cfg.Apify.Actor,
			PollInterval: cfg.Apify.PollInterval.Std(),
			MaxWait:      cfg.Apify.MaxWait.Std(),
			HTTP:         httpClient,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("registering built-in tools: %w", err)
	}
	return reg, nil
}
