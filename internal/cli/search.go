package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"yubin/internal/config"
	"yubin/internal/domain"
	"yubin/internal/logic"
	"yubin/internal/ui/coordinator"
	"yubin/internal/ui/views"
)

// SearchOptions holds flags for the search command.
type SearchOptions struct {
	Mode     string
	Sort     string
	PageSize int
	Page     int
	Format   string
}

// SearchResult is one page of a search, as printed by the search command.
type SearchResult struct {
	Query      string          `json:"query" yaml:"query"`
	Mode       string          `json:"mode" yaml:"mode"`
	Sort       string          `json:"sort" yaml:"sort"`
	Status     string          `json:"status" yaml:"status"`
	Message    string          `json:"message,omitempty" yaml:"message,omitempty"`
	Total      int             `json:"total" yaml:"total"`
	Page       int             `json:"page" yaml:"page"`
	TotalPages int             `json:"totalPages" yaml:"totalPages"`
	PageSize   int             `json:"pageSize" yaml:"pageSize"`
	Records    []domain.Record `json:"records" yaml:"records"`

	view coordinator.ResultView
}

// Text renders the page as an aligned table with a counter line
func (r SearchResult) Text() string {
	if len(r.Records) == 0 {
		return r.Message
	}
	var b strings.Builder
	b.WriteString(views.PlainTable(r.Records))
	b.WriteString(views.CounterText(r.view))
	fmt.Fprintf(&b, "  page %d/%d", r.Page, r.TotalPages)
	return b.String()
}

// NewSearchCommand creates the search command.
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Run one search and print a page of results",
		Long: `Load the dataset, run a single search without debouncing and print
the requested page.

Exits with status 1 when nothing matches.`,
		Example: `  yubin search 600-80
  yubin search --mode address 下京区 --sort address-asc --page 2
  yubin search --mode kana ｼﾓｷﾞｮｳ --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, rootOpts, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.Mode, "mode", "m", "", "search mode: zipcode, address or furigana (default from config)")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "sort order: zip, address-asc, address-desc, furigana-asc, furigana-desc")
	cmd.Flags().IntVarP(&opts.PageSize, "page-size", "n", 0, "results per page: 10, 20, 50, 100 or 200")
	cmd.Flags().IntVarP(&opts.Page, "page", "p", 1, "page to print")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "output format (text|json|yaml)")

	return cmd
}

func runSearch(cmd *cobra.Command, rootOpts *RootOptions, opts *SearchOptions, query string) error {
	cfg, _, err := loadConfig(rootOpts, nil)
	if err != nil {
		return err
	}
	closeLog := setupLogging(cfg, rootOpts.Verbose, false, cmd.ErrOrStderr())
	defer closeLog()

	sessionOpts, err := sessionOptions(cfg, opts)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid option", err)
	}

	loader, err := newLoader(cfg, nil)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	records, err := loader.Load(ctx, cfg.Dataset.Source)
	if err != nil {
		return WrapExitError(ExitCommandError, domain.MsgLoadFailed, err)
	}

	session := coordinator.NewCoordinator(logic.NewLoadedRecordStore(records), sessionOpts)
	session.OnQueryTextChange(query)
	status := session.SearchNow()
	session.OnPageChange(opts.Page)

	v := session.View()
	result := SearchResult{
		Query:      v.Query,
		Mode:       v.Mode.String(),
		Sort:       v.SortOrder.String(),
		Status:     status.String(),
		Message:    v.ErrorMessage,
		Total:      v.TotalResults,
		Page:       v.CurrentPage,
		TotalPages: v.TotalPages,
		PageSize:   v.PageSize,
		Records:    v.PageRecords,
		view:       v,
	}
	if result.Records == nil {
		result.Records = []domain.Record{}
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := formatter.Write(result); err != nil {
		return WrapExitError(ExitCommandError, "cannot write output", err)
	}

	if status != domain.StatusResults {
		return NewExitError(ExitFailure, fmt.Sprintf("no results for %q", query))
	}
	return nil
}

// sessionOptions merges search flags over the config defaults
func sessionOptions(cfg *config.Config, opts *SearchOptions) (coordinator.Options, error) {
	modeName := cfg.Search.DefaultMode
	if opts.Mode != "" {
		modeName = opts.Mode
	}
	mode, err := domain.ParseSearchMode(modeName)
	if err != nil {
		return coordinator.Options{}, err
	}

	orderName := cfg.Results.SortOrder
	if opts.Sort != "" {
		orderName = opts.Sort
	}
	order, err := domain.ParseSortOrder(orderName)
	if err != nil {
		return coordinator.Options{}, err
	}

	size := cfg.Results.PageSize
	if opts.PageSize != 0 {
		size = opts.PageSize
	}
	if size != 0 && !domain.ValidPageSize(size) {
		return coordinator.Options{}, fmt.Errorf("page size %d: %w", size, domain.ErrInvalidPageSize)
	}

	debounce, err := cfg.DebounceDuration()
	if err != nil {
		return coordinator.Options{}, err
	}

	return coordinator.Options{
		Debounce:  debounce,
		PageSize:  size,
		SortOrder: order,
		Mode:      mode,
	}, nil
}
