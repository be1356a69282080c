package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/tmdb"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the banner and every home row",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		home, err := NewClient(serverURL).Home(cmd.Context())
		if err != nil {
			return catalogError("home", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), home)
			return nil
		}
		out := cmd.OutOrStdout()
		printBanner(out, home.Banner)
		fmt.Fprintln(out)
		printRows(out, home.Rows)
		return nil
	},
}

var bannerCmd = &cobra.Command{
	Use:   "banner",
	Short: "Show a random trending title",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		banner, err := NewClient(serverURL).Banner(cmd.Context())
		if err != nil {
			return catalogError("banner", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), BannerResponse{Banner: banner})
			return nil
		}
		printBanner(cmd.OutOrStdout(), banner)
		return nil
	},
}

var rowsCmd = &cobra.Command{
	Use:   "rows [category...]",
	Short: "Show category rows",
	Long: `Show category rows, or the configured home rows when none are named.

Examples:
  marquee rows
  marquee rows trending tv
  marquee rows teluguMovies --json`,
	ValidArgsFunction: completeCategories,
	RunE:              runRowsCmd,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Search movies and tv shows",
	Long: `Search movies and tv shows. People are left out.

Examples:
  marquee search "The Matrix"
  marquee search baahubali --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearchCmd,
}

var showCmd = &cobra.Command{
	Use:   "show <movie|tv> <id>",
	Short: "Show a title's detail view",
	Long: `Show a title's detail view.

The interim view built from what is already known (--title, --overview,
--rating) prints first, then the full view once it has been fetched.

Examples:
  marquee show movie 550
  marquee show tv 1399 --title "Game of Thrones"`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{string(tmdb.KindMovie), string(tmdb.KindTV)},
	RunE:      runShowCmd,
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List movie genres",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Genres(cmd.Context())
		if err != nil {
			return catalogError("genres", err)
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			printJSON(out, resp)
			return nil
		}
		if len(resp.Genres) == 0 {
			fmt.Fprintln(out, "No genres available")
			return nil
		}
		for _, g := range resp.Genres {
			fmt.Fprintf(out, "  %6d  %s\n", g.ID, g.Name)
		}
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories and the home row order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Categories(cmd.Context())
		if err != nil {
			return catalogError("categories", err)
		}
		out := cmd.OutOrStdout()
		if jsonOutput {
			printJSON(out, resp)
			return nil
		}
		fmt.Fprintf(out, "Categories: %s\n", joinCategories(resp.Categories))
		fmt.Fprintf(out, "Home rows:  %s\n", joinCategories(resp.HomeRows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(homeCmd, bannerCmd, rowsCmd, searchCmd, showCmd, genresCmd, categoriesCmd)
	showCmd.Flags().String("title", "", "Title shown while loading")
	showCmd.Flags().String("overview", "", "Overview shown while loading")
	showCmd.Flags().Float64("rating", 0, "Vote average shown while loading")
}

// catalogError adds a login hint to gate rejections.
func catalogError(what string, err error) error {
	if errors.Is(err, ErrNotLoggedIn) {
		return fmt.Errorf("%s: %w (run 'marquee login')", what, ErrNotLoggedIn)
	}
	return fmt.Errorf("%s failed: %w", what, err)
}

func joinCategories(cats []tmdb.Category) string {
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// parseCategories validates names before any request is made.
func parseCategories(names []string) ([]tmdb.Category, error) {
	cats := make([]tmdb.Category, 0, len(names))
	for _, name := range names {
		c, err := tmdb.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}

func completeCategories(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, c := range tmdb.ListingCategories() {
		if strings.HasPrefix(strings.ToLower(string(c)), strings.ToLower(toComplete)) {
			out = append(out, string(c))
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func runRowsCmd(cmd *cobra.Command, args []string) error {
	cats, err := parseCategories(args)
	if err != nil {
		return err
	}
	rows, err := NewClient(serverURL).Rows(cmd.Context(), cats)
	if err != nil {
		return catalogError("rows", err)
	}
	if jsonOutput {
		printJSON(cmd.OutOrStdout(), RowsResponse{Rows: rows})
		return nil
	}
	printRows(cmd.OutOrStdout(), rows)
	return nil
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	query := tmdb.NormalizeQuery(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("empty search query")
	}

	results, err := NewClient(serverURL).Search(cmd.Context(), query)
	if err != nil {
		return catalogError("search", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		printJSON(out, results)
		return nil
	}
	if results.Total == 0 {
		fmt.Fprintf(out, "No titles found for %q\n", query)
		return nil
	}
	fmt.Fprintf(out, "Found %d titles for %q:\n\n", results.Total, query)
	printCards(out, results.Results)
	return nil
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	kind, ok := tmdb.ParseKind(args[0])
	if !ok {
		return fmt.Errorf("invalid kind %q: must be movie or tv", args[0])
	}
	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid title ID: %s", args[1])
	}

	var hint TitleHint
	hint.Title, _ = cmd.Flags().GetString("title")
	hint.Overview, _ = cmd.Flags().GetString("overview")
	hint.VoteAverage, _ = cmd.Flags().GetFloat64("rating")

	out := cmd.OutOrStdout()
	var views []browse.DetailView
	err = NewClient(serverURL).Title(cmd.Context(), kind, id, hint, func(v browse.DetailView) {
		views = append(views, v)
		if jsonOutput {
			printJSON(out, v)
			return
		}
		if len(views) > 1 {
			fmt.Fprintln(out)
		}
		printDetail(out, v)
	})
	if err != nil {
		return catalogError("show", err)
	}
	if len(views) > 0 && !views[len(views)-1].Complete {
		return fmt.Errorf("%s %d: details unavailable", kind, id)
	}
	return nil
}
