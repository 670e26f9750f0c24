package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gubarz/lispdoc/internal/config"
	"github.com/gubarz/lispdoc/internal/generate"
	"github.com/gubarz/lispdoc/internal/page"
)

var version = "0.1.0"

var (
	summaryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var cssCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the embedded stylesheet",
	Long: `Prints the stylesheet that is inlined into every generated page.

Usage:
  lispdoc css > lispdoc.css

Useful as a starting point for post-processing the generated HTML.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(page.Stylesheet)
	},
}

var rootCmd = &cobra.Command{
	Use:   "lispdoc [path]",
	Short: "Literate documentation from lisp sources",
	Long: `Generates one HTML page per source file, with ;; comments rendered
as narrative Markdown and code shown in preformatted blocks.

Comments starting at column zero read as block prose; indented comments
are styled as inline notes next to the surrounding code.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(cssCmd)

	rootCmd.PersistentFlags().StringP("out", "o", "docs", "Destination directory for generated pages")
	rootCmd.PersistentFlags().String("ext", ".clj", "Source file extension to match")
	rootCmd.PersistentFlags().String("marker", ";;", "Comment marker sequence")
	rootCmd.PersistentFlags().String("title", "", "Page title prefix")
	rootCmd.PersistentFlags().IntP("jobs", "j", 1, "Number of files processed concurrently")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log per-file progress")
	rootCmd.PersistentFlags().BoolP("benchmark", "b", false, "Report timing and memory after the run")

	viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.BindPFlag("ext", rootCmd.PersistentFlags().Lookup("ext"))
	viper.BindPFlag("marker", rootCmd.PersistentFlags().Lookup("marker"))
	viper.BindPFlag("title", rootCmd.PersistentFlags().Lookup("title"))
	viper.BindPFlag("jobs", rootCmd.PersistentFlags().Lookup("jobs"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if config.GetVerbose() {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		config.SetPath(args[0])
	}

	logger := newLogger()

	gen := generate.New(generate.Options{
		Source: config.GetPath(),
		Out:    config.GetOutDir(),
		Ext:    config.GetExtension(),
		Marker: config.GetMarker(),
		Title:  config.GetTitle(),
		Jobs:   config.GetJobs(),
	}, logger)

	stats, err := gen.Run()
	if err != nil {
		logger.Warn().Err(err).Msg("run aborted")
		return err
	}

	fmt.Println(summaryStyle.Render(
		fmt.Sprintf("Generated %d pages in %v", stats.Files, stats.Elapsed.Round(time.Millisecond))))
	fmt.Println(dimStyle.Render(
		fmt.Sprintf("%d chunks written to %s", stats.Chunks, config.GetOutDir())))

	if benchmark, _ := cmd.Flags().GetBool("benchmark"); benchmark {
		runtime.GC()
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		fmt.Printf("Memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, HeapObjects=%d\n",
			m.Alloc/1024/1024, m.TotalAlloc/1024/1024, m.Sys/1024/1024, m.HeapObjects)
	}

	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
