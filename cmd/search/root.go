package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlabsearch/internal/config"
	models "gitlabsearch/internal/domain/models/search"
	"gitlabsearch/internal/service/search"
	"gitlabsearch/internal/service/search/external"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// searchFlags holds the raw flag values; only flags the user set become params
type searchFlags struct {
	scope        string
	search       string
	orderBy      string
	sort         string
	confidential bool
	paramsFile   string
	baseURL      string
	timeout      time.Duration
}

func newRootCmd(cfg *config.Config, out io.Writer) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:           "gitlab-search",
		Short:         "Search a GitLab instance through the /search API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, cfg, flags, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.scope, "scope", "", "search scope (projects, issues, merge_requests, milestones, snippet_titles, users)")
	f.StringVarP(&flags.search, "search", "q", "", "search term")
	f.StringVar(&flags.orderBy, "order-by", "", "order results by field (created_at)")
	f.StringVar(&flags.sort, "sort", "", "sort direction (asc, desc)")
	f.BoolVar(&flags.confidential, "confidential", false, "limit to confidential issues")
	f.StringVarP(&flags.paramsFile, "params", "p", "", "YAML file with search options; flags override its values")
	f.StringVar(&flags.baseURL, "base-url", "", "API root URL (default from GITLAB_BASE_URL)")
	f.DurationVar(&flags.timeout, "timeout", 0, "HTTP timeout (default from GITLAB_TIMEOUT)")

	return cmd
}

func runSearch(cmd *cobra.Command, cfg *config.Config, flags *searchFlags, out io.Writer) error {
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = flags.baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = flags.timeout
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	params, err := buildParams(cmd.Flags(), flags)
	if err != nil {
		return err
	}

	client := external.NewGitLabClient(cfg.BaseURL, cfg.Timeout, logger)
	svc := search.NewSearchService(client, logger)

	resp, err := svc.Search(cmd.Context(), params)
	if err != nil {
		return err
	}

	logger.Info("search completed", "status", resp.StatusCode, "bytes", len(resp.Body))
	return writeBody(out, resp)
}

// buildParams merges the params file (if any) with flags the user set.
func buildParams(fs *pflag.FlagSet, flags *searchFlags) (models.Params, error) {
	params := models.Params{}
	if flags.paramsFile != "" {
		loaded, err := search.LoadParamsFile(flags.paramsFile)
		if err != nil {
			return nil, err
		}
		params = loaded
	}

	strFlags := []struct {
		flag, option, value string
	}{
		{"scope", "scope", flags.scope},
		{"search", "search", flags.search},
		{"order-by", "order_by", flags.orderBy},
		{"sort", "sort", flags.sort},
	}
	for _, sf := range strFlags {
		if fs.Changed(sf.flag) {
			params[sf.option] = models.String(sf.value)
		}
	}
	if fs.Changed("confidential") {
		params["confidential"] = models.Bool(flags.confidential)
	}

	return params, nil
}

// setupLogger logs to stderr (text) and, when LOG_DIR is set, to a JSON log file.
func setupLogger(cfg *config.Config, stderr io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	if cfg.LogDir == "" {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
		return logger, func() {}, nil
	}

	f, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Environment == "dev",
	}))
	return logger, func() { _ = f.Close() }, nil
}

// writeBody prints JSON bodies indented and anything else as-is.
func writeBody(out io.Writer, resp *models.Response) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, resp.Body, "", "  "); err != nil {
		buf.Reset()
		buf.Write(resp.Body)
	}
	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
		buf.WriteByte('\n')
	}
	if _, err := out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
