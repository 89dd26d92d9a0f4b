package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AhmedAllulu/auto-article-sub003/internal/auth"
	"github.com/AhmedAllulu/auto-article-sub003/internal/cleanup"
	"github.com/AhmedAllulu/auto-article-sub003/internal/completion"
	"github.com/AhmedAllulu/auto-article-sub003/internal/config"
	"github.com/AhmedAllulu/auto-article-sub003/internal/files"
	"github.com/AhmedAllulu/auto-article-sub003/internal/gemini"
	"github.com/AhmedAllulu/auto-article-sub003/internal/language"
	"github.com/AhmedAllulu/auto-article-sub003/internal/logger"
	"github.com/AhmedAllulu/auto-article-sub003/internal/openai"
	"github.com/AhmedAllulu/auto-article-sub003/internal/translate"
)

type translateOptions struct {
	provider    string
	modelName   string
	targetCode  string
	maxChunks   int
	concurrency int
	tokenBudget int
	title       string
	description string
	configPath  string
	logFilePath string
	allowEnv    bool
	debug       bool
}

func newTranslateCmd() *cobra.Command {
	opts := translateOptions{}
	cmd := &cobra.Command{
		Use:   "translate <input.html> <output.html>",
		Short: "Translate an HTML article file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				_ = cmd.Usage()
				return fmt.Errorf("input and output files are required")
			}
			return runTranslate(cmd, args, &opts)
		},
		SilenceUsage: true,
	}
	addTranslateFlags(cmd, &opts)
	return cmd
}

func addTranslateFlags(cmd *cobra.Command, opts *translateOptions) {
	cmd.Flags().StringVar(&opts.provider, "provider", "", "Completion backend: gemini or openai (default gemini)")
	cmd.Flags().StringVar(&opts.modelName, "model", "", "Model name (default per provider)")
	cmd.Flags().StringVar(&opts.targetCode, "to", "", "Target language code (required)")
	cmd.Flags().IntVar(&opts.maxChunks, "max-chunks", 0, "Manual chunk count 1-10 (0 = automatic strategy)")
	cmd.Flags().IntVar(&opts.concurrency, "concurrency", 0, "Concurrent segment requests in granular mode")
	cmd.Flags().IntVar(&opts.tokenBudget, "token-budget", 0, "Estimated-token budget for a single call")
	cmd.Flags().StringVar(&opts.title, "title", "", "Original article title for the metadata patch pass")
	cmd.Flags().StringVar(&opts.description, "description", "", "Original meta description for the metadata patch pass")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.allowEnv, "allow-env", false, "Allow reading the API key from environment variables")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

// applyConfig fills in options the user left at their defaults from the
// config file. Flags the user set explicitly always win.
func applyConfig(flags *pflag.FlagSet, opts *translateOptions, cfg config.File) {
	if !flags.Changed("provider") && cfg.Provider != "" {
		opts.provider = cfg.Provider
	}
	if !flags.Changed("model") && cfg.Model != "" {
		opts.modelName = cfg.Model
	}
	if !flags.Changed("to") && cfg.Target != "" {
		opts.targetCode = cfg.Target
	}
	if !flags.Changed("max-chunks") && cfg.MaxChunks > 0 {
		opts.maxChunks = cfg.MaxChunks
	}
	if !flags.Changed("concurrency") && cfg.Concurrency > 0 {
		opts.concurrency = cfg.Concurrency
	}
	if !flags.Changed("token-budget") && cfg.TokenBudget > 0 {
		opts.tokenBudget = cfg.TokenBudget
	}
}

func defaultModel(provider string) string {
	if provider == "openai" {
		return "gpt-4o-mini"
	}
	return "gemini-2.0-flash"
}

func runTranslate(cmd *cobra.Command, args []string, opts *translateOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyConfig(cmd.Flags(), opts, cfg)
	if opts.provider == "" {
		opts.provider = "gemini"
	}
	if err := validProvider(opts.provider); err != nil {
		return err
	}
	if opts.modelName == "" {
		opts.modelName = defaultModel(opts.provider)
	}

	lang, ok := language.Get(opts.targetCode)
	if !ok {
		return fmt.Errorf("unsupported target language %q (see 'article-translate languages')", opts.targetCode)
	}

	logLevel := logger.LevelInfo
	if opts.debug {
		logLevel = logger.LevelDebug
	}
	var logFileW io.Writer
	if opts.logFilePath != "" {
		if err := files.RejectSymlinkPath(opts.logFilePath); err != nil {
			return err
		}
		f, err := os.OpenFile(opts.logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cleanup.Register(f.Close)
		logFileW = f
	}
	logger.Init(logLevel, logFileW)

	key, source := auth.GetKey(opts.provider, opts.allowEnv)
	if key == "" {
		return fmt.Errorf("no API key for %s: store one with 'article-translate keys set %s' or pass --allow-env", opts.provider, opts.provider)
	}
	logger.Info("Using API key", "provider", opts.provider, "source", source)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var client completion.Client
	switch opts.provider {
	case "gemini":
		gc, err := gemini.NewClient(ctx, key, opts.modelName)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		cleanup.Register(gc.Close)
		client = gc
	case "openai":
		client = openai.NewClient(key, opts.modelName)
	}

	markup, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var sessionOpts []translate.Option
	if opts.maxChunks > 0 {
		sessionOpts = append(sessionOpts, translate.WithMaxChunks(opts.maxChunks))
	}
	if opts.concurrency > 0 {
		sessionOpts = append(sessionOpts, translate.WithConcurrency(opts.concurrency))
	}
	if opts.tokenBudget > 0 {
		sessionOpts = append(sessionOpts, translate.WithTokenBudget(opts.tokenBudget))
	}
	session, err := translate.NewSession(client, lang, sessionOpts...)
	if err != nil {
		return err
	}

	start := time.Now()
	translated, err := session.Translate(ctx, string(markup))
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}
	if opts.title != "" || opts.description != "" {
		translated, err = session.TranslateMetadata(ctx, translated, opts.title, opts.description)
		if err != nil {
			return fmt.Errorf("metadata patch failed: %w", err)
		}
	}

	if err := files.AtomicWrite(args[1], []byte(translated), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	usage := session.Usage()
	logger.Info("Translation finished",
		"target", lang.Code,
		"duration", time.Since(start).Round(time.Millisecond).String(),
		"usage_input", usage.PromptTokens,
		"usage_output", usage.CompletionTokens,
	)
	return nil
}
