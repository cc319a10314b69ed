package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/swiftdocs-go/internal/bundle"
	"github.com/quantmind-br/swiftdocs-go/internal/config"
	"github.com/quantmind-br/swiftdocs-go/internal/domain"
	"github.com/quantmind-br/swiftdocs-go/internal/fetcher"
	"github.com/quantmind-br/swiftdocs-go/internal/github"
	"github.com/quantmind-br/swiftdocs-go/internal/manifest"
	"github.com/quantmind-br/swiftdocs-go/internal/output"
	"github.com/quantmind-br/swiftdocs-go/internal/resolver"
	"github.com/quantmind-br/swiftdocs-go/internal/search"
	"github.com/quantmind-br/swiftdocs-go/internal/utils"
	"github.com/quantmind-br/swiftdocs-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swiftdocs <url>",
	Short: "Fetch Swift documentation as structured data",
	Long: `SwiftDocs resolves documentation URLs from the Apple developer portal,
Swift Package Index, GitHub Pages archives, and bare owner/repo references
to their underlying DocC JSON artifacts, then renders them as markdown.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(1),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.swiftdocs/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.Flags().StringP("output", "o", "", "Write markdown to this directory instead of printing a summary")
	rootCmd.Flags().Bool("force", false, "Overwrite existing output files")
	rootCmd.Flags().Duration("timeout", 30*time.Second, "Request timeout")
	rootCmd.Flags().String("user-agent", "", "Custom User-Agent")
	rootCmd.Flags().Int("max-releases", config.DefaultMaxReleases, "Releases to consider for versioned documentation")

	_ = viper.BindPFlag("output.directory", rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("output.force", rootCmd.Flags().Lookup("force"))
	_ = viper.BindPFlag("http.timeout", rootCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("http.user_agent", rootCmd.Flags().Lookup("user-agent"))
	_ = viper.BindPFlag("github.max_releases", rootCmd.Flags().Lookup("max-releases"))

	depsCmd.Flags().Bool("list", false, "List dependencies without resolving documentation")
	searchCmd.Flags().Int("limit", 0, "Stop after this many matches (0=unlimited)")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func newLogger() *utils.Logger {
	level := "info"
	if verbose {
		level = "debug"
	}
	return utils.NewLogger(utils.LoggerOptions{
		Level:   level,
		Format:  "pretty",
		Verbose: verbose,
	})
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	return ctx, cancel
}

// newResolver wires the fetcher, GitHub client, and resolver from config.
// The returned close function releases the fetcher's connections.
func newResolver(cfg *config.Config) (*resolver.Resolver, func(), error) {
	client, err := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:   cfg.HTTP.Timeout,
		UserAgent: cfg.HTTP.UserAgent,
		ProxyURL:  cfg.HTTP.ProxyURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	gh := github.NewClient(github.ClientOptions{
		Fetcher:           client,
		APIBase:           cfg.GitHub.APIBase,
		RawBase:           cfg.GitHub.RawBase,
		RequestsPerSecond: cfg.GitHub.RequestsPerSecond,
		Logger:            log,
	})

	r := resolver.New(resolver.Options{
		Fetcher:        client,
		GitHub:         gh,
		Logger:         log,
		BaseURL:        cfg.Resolver.BaseURL,
		MaxReleases:    cfg.GitHub.MaxReleases,
		FallbackBranch: cfg.Resolver.FallbackBranch,
	})

	return r, func() { _ = client.Close() }, nil
}

func run(cmd *cobra.Command, args []string) error {
	log = newLogger()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) == 0 {
		return cmd.Help()
	}

	ctx, cancel := signalContext()
	defer cancel()

	res, closeFn, err := newResolver(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	node, err := res.FetchDocumentation(ctx, args[0])
	if err != nil {
		var tocErr *domain.TableOfContentsError
		if errors.As(err, &tocErr) {
			return fmt.Errorf("%s is a documentation index, not a page; %s", tocErr.URL, tocErr.Guidance)
		}
		return err
	}

	return emit(cmd, cfg, node)
}

// emit prints a summary or writes markdown, depending on whether an output
// directory was requested.
func emit(cmd *cobra.Command, cfg *config.Config, node *domain.RenderNode) error {
	if !cmd.Flags().Changed("output") && cfg.Output.Directory == config.DefaultOutputDir {
		fmt.Println(output.Summary(node))
		return nil
	}

	writer := output.NewWriter(output.WriterOptions{
		BaseDir: cfg.Output.Directory,
		Force:   cfg.Output.Force,
	})
	path, err := writer.Write(node, time.Now())
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("Wrote documentation")
	fmt.Println(path)
	return nil
}

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List documentation bundles in a local directory tree",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log = newLogger()

		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		scanner := bundle.NewScanner(log)
		bundles, err := scanner.Scan(root)
		if err != nil {
			return err
		}
		if len(bundles) == 0 {
			fmt.Println("No documentation bundles found.")
			return nil
		}

		for _, b := range bundles {
			fmt.Printf("%s (%d markdown files)\n", b.Path, len(b.Markdown))
			if node, err := scanner.Synthesize(b); err == nil {
				fmt.Printf("  %s\n", node.Title())
			}
		}
		return nil
	},
}

var depsCmd = &cobra.Command{
	Use:   "deps [path]",
	Short: "Resolve documentation for each dependency in a Package.resolved",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log = newLogger()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		path := "Package.resolved"
		if len(args) > 0 {
			path = args[0]
		}

		deps, err := manifest.NewLoader().Load(path)
		if err != nil {
			return err
		}

		listOnly, _ := cmd.Flags().GetBool("list")
		if listOnly {
			for _, dep := range deps {
				fmt.Printf("%s %s (%s)\n", dep.Identity, dep.Version, dep.Ref())
			}
			return nil
		}

		ctx, cancel := signalContext()
		defer cancel()

		res, closeFn, err := newResolver(cfg)
		if err != nil {
			return err
		}
		defer closeFn()

		for _, dep := range deps {
			if !dep.Hosted() {
				log.Warn().Str("identity", dep.Identity).Msg("Skipping non-GitHub dependency")
				continue
			}
			node, err := res.FetchDocumentation(ctx, dep.Ref())
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				log.Warn().Str("identity", dep.Identity).Err(err).Msg("No documentation found")
				continue
			}
			fmt.Printf("%s: %s\n", dep.Identity, node.Title())
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <owner/repo> <keyword>",
	Short: "Search a repository's documentation sources for a keyword",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log = newLogger()

		ref := args[0]
		if !utils.IsOwnerRepoRef(ref) && !utils.IsHTTPURL(ref) {
			return fmt.Errorf("expected owner/repo or a repository URL, got %q", ref)
		}
		repoURL := ref
		if !utils.IsHTTPURL(repoURL) {
			repoURL = "https://github.com/" + ref
		}

		ctx, cancel := signalContext()
		defer cancel()

		maxMatches, _ := cmd.Flags().GetInt("limit")
		searcher := search.NewSearcher(nil, log)
		matches, err := searcher.Search(ctx, repoURL, args[1], search.Options{
			ShowProgress: true,
			MaxMatches:   maxMatches,
		})
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, m := range matches {
			fmt.Printf("%s:%d: %s\n", m.File, m.Line, m.Text)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
