package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/config"
	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/tone"
	"github.com/muurk/learnquest/internal/tone/speaker"
	"github.com/muurk/learnquest/internal/tui"
	"github.com/muurk/learnquest/internal/ui"
	"github.com/muurk/learnquest/internal/viewstate"
)

// Command flags
var (
	themeFlag    string
	sectionFlag  string
	catalogFlag  string
	muteFlag     bool
	logLevelFlag string
	logFileFlag  string
	outputFormat string
	playFlag     bool
	forceFlag    bool
)

// settings are the effective preferences: config file, then environment,
// then flags.
var settings *config.Preferences

func init() {
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "Theme to show (education, crystals)")
	rootCmd.PersistentFlags().StringVar(&sectionFlag, "section", "", "Tab to open on")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "YAML catalog replacing the built-in one")
	rootCmd.PersistentFlags().BoolVar(&muteFlag, "mute", false, "Do not play tones")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(crystalCmd)
	rootCmd.AddCommand(toneCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings merges config, environment and flags and starts logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	prefs := *cfg.Preferences

	flags := cmd.Flags()
	if flags.Changed("theme") {
		prefs.Theme = themeFlag
		if !flags.Changed("section") {
			prefs.StartSection = ""
		}
	}
	if flags.Changed("section") {
		prefs.StartSection = sectionFlag
	}
	if flags.Changed("catalog") {
		prefs.Catalog = catalogFlag
	}
	if muteFlag {
		prefs.Sound = false
	}
	if flags.Changed("log-level") {
		prefs.LogLevel = logLevelFlag
	}
	if flags.Changed("log-file") {
		prefs.LogFile = logFileFlag
	}

	if err := prefs.Validate(); err != nil {
		return err
	}
	if err := logging.Initialize(prefs.LoggingOptions()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	settings = &prefs
	logging.Debug("Settings loaded",
		zap.String("theme", prefs.Theme),
		zap.String("section", string(prefs.Section())),
		zap.Bool("sound", prefs.Sound))
	return nil
}

// loadCatalog loads the catalog of theme, honouring a replacement file
// when it belongs to the configured theme.
func loadCatalog(theme catalog.Theme) (*catalog.Catalog, error) {
	if settings != nil && settings.Catalog != "" && settings.ThemeValue() == theme {
		return catalog.LoadFile(theme, settings.Catalog)
	}
	return catalog.Load(theme)
}

// openTones returns the tone player, or nil when sound is off.
func openTones() *speaker.Player {
	if settings != nil && !settings.Sound {
		return nil
	}
	volume := config.DefaultVolume
	if settings != nil {
		volume = settings.Volume
	}
	p, err := speaker.Open(tone.DefaultRate, volume)
	if err != nil {
		logging.Warn("Audio unavailable, continuing silently", zap.Error(err))
	}
	return p
}

// tonePlayer converts p to the interface without a typed nil.
func tonePlayer(p *speaker.Player) viewstate.TonePlayer {
	if p == nil {
		return nil
	}
	return p
}

// tuiLogFile is used when logging is on but no file was given.
const tuiLogFile = "learnquest.log"

func runTUI(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(settings.ThemeValue())
	if err != nil {
		return err
	}

	// The interface owns the terminal; stderr logs would tear the screen.
	if settings.LogLevel != "" && settings.LogFile == "" {
		if err := redirectLogs(); err != nil {
			return err
		}
	}

	player := openTones()
	defer player.Close()

	model := tui.NewAppModel(tui.Options{
		Catalog: cat,
		Start:   settings.Section(),
		Tones:   tonePlayer(player),
	})

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}

func redirectLogs() error {
	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	opts := settings.LoggingOptions()
	opts.File = filepath.Join(dir, tuiLogFile)
	return logging.Initialize(opts)
}

// showCmd prints a section without the interactive interface
var showCmd = &cobra.Command{
	Use:   "show [section]",
	Short: "Print a section of the catalog",
	Long: `Print one section of the current theme's catalog and exit.

Without an argument the theme's start section is shown.`,
	Example: `  # Leaderboard of the education theme
  learnquest show leaderboard

  # Crystal collection as JSON
  learnquest --theme crystals show collection --format json

  # One-line summary
  learnquest show achievements --format compact`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&outputFormat, "format", "detailed", "Output format (detailed, compact, json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	theme := settings.ThemeValue()
	section := settings.Section()
	if len(args) == 1 {
		section = viewstate.Section(args[0])
	}
	if !viewstate.Offers(theme, section) {
		return fmt.Errorf("theme %s has no section %q (available: %s)", theme, section, sectionList(theme))
	}

	cat, err := loadCatalog(theme)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "detailed":
		fmt.Fprint(out, sectionText(cat, section))
	case "compact":
		fmt.Fprintf(out, "%s: %d • %s\n", section.Label(), sectionSize(cat, section), cat.Summary())
	case "json":
		data, err := json.MarshalIndent(sectionData(cat, section), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unknown format %q (expected detailed, compact or json)", outputFormat)
	}
	return nil
}

func sectionList(theme catalog.Theme) string {
	var names []string
	for _, s := range viewstate.SectionsFor(theme) {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

func sectionText(c *catalog.Catalog, s viewstate.Section) string {
	switch s {
	case viewstate.SectionHome:
		return c.FormatHome()
	case viewstate.SectionGames:
		return c.FormatGames()
	case viewstate.SectionCourses:
		return c.FormatCourses()
	case viewstate.SectionAchievements:
		return c.FormatAchievements()
	case viewstate.SectionLeaderboard:
		return c.FormatLeaderboard()
	case viewstate.SectionShop:
		return c.FormatShop()
	case viewstate.SectionMap:
		return c.FormatMap()
	case viewstate.SectionCollection:
		return c.FormatCrystals()
	case viewstate.SectionPractices:
		return c.FormatPractices()
	case viewstate.SectionAffirmations:
		return c.FormatAffirmations()
	default:
		return c.FormatProfile()
	}
}

func sectionData(c *catalog.Catalog, s viewstate.Section) any {
	switch s {
	case viewstate.SectionHome:
		return map[string]any{
			"profile": c.Profile,
			"games":   c.FeaturedGames(2),
			"courses": c.FeaturedCourses(2),
		}
	case viewstate.SectionGames:
		return c.Games
	case viewstate.SectionCourses:
		return c.Courses
	case viewstate.SectionAchievements:
		return c.Achievements
	case viewstate.SectionLeaderboard:
		return c.Leaderboard
	case viewstate.SectionShop:
		return c.Shop
	case viewstate.SectionMap:
		return c.Map
	case viewstate.SectionCollection:
		return c.Crystals
	case viewstate.SectionPractices:
		return c.Practices
	case viewstate.SectionAffirmations:
		return c.Affirmations
	default:
		return c.Profile
	}
}

func sectionSize(c *catalog.Catalog, s viewstate.Section) int {
	switch s {
	case viewstate.SectionGames:
		return len(c.Games)
	case viewstate.SectionCourses:
		return len(c.Courses)
	case viewstate.SectionAchievements:
		return len(c.UnlockedAchievements())
	case viewstate.SectionLeaderboard:
		return len(c.Leaderboard)
	case viewstate.SectionShop:
		return len(c.Shop)
	case viewstate.SectionMap:
		return len(c.Map)
	case viewstate.SectionCollection:
		return len(c.UnlockedCrystals())
	case viewstate.SectionPractices:
		return len(c.Practices)
	case viewstate.SectionAffirmations:
		return len(c.Affirmations)
	default:
		return c.Profile.Level
	}
}

// crystalCmd prints a crystal card
var crystalCmd = &cobra.Command{
	Use:   "crystal <id>",
	Short: "Show a crystal with its description",
	Long: `Print a crystal's chakra, element, tone frequency and description.

The description is markdown and is rendered for the terminal.`,
	Example: `  # Rose quartz
  learnquest crystal 4

  # Show the card and play the crystal's tone
  learnquest crystal 4 --play`,
	Args: cobra.ExactArgs(1),
	RunE: runCrystal,
}

func init() {
	crystalCmd.Flags().BoolVar(&playFlag, "play", false, "Play the crystal's tone if it is unlocked")
}

func runCrystal(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid crystal id %q: %w", args[0], err)
	}

	cat, err := loadCatalog(catalog.ThemeCrystals)
	if err != nil {
		return err
	}
	cr := cat.CrystalByID(id)
	if cr == nil {
		return fmt.Errorf("no crystal with id %d (1-%d)", id, len(cat.Crystals))
	}

	style := ui.StyleDark
	if !ui.IsTerminal() {
		style = ui.StyleNoTTY
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	printer.PrintHeader(cr.Name, cmd.CommandPath()+" "+args[0],
		ui.Param{Key: "Chakra", Value: cr.Chakra},
		ui.Param{Key: "Level", Value: strconv.Itoa(cr.LevelRequirement)})
	printer.Println(ui.CrystalCard{
		Crystal:     cr,
		Affirmation: cat.AffirmationFor(cr.Chakra),
		Width:       printer.Width(),
		Style:       style,
	}.Render())

	if !playFlag {
		return nil
	}
	if !cr.Unlocked {
		printer.Println(ui.StepPendingStyle.Render(fmt.Sprintf("%s is locked until level %d; no tone.", cr.Name, cr.LevelRequirement)))
		return nil
	}
	return playChakra(cmd, cr.Chakra)
}

// toneCmd plays one chakra tone
var toneCmd = &cobra.Command{
	Use:   "tone <chakra>",
	Short: "Play the tone of a chakra",
	Long: `Play the 1.5 second tone of a chakra and wait for it to finish.

Chakras: ` + strings.Join(tone.Chakras, ", "),
	Example: `  learnquest tone Анахата`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tone.IsChakra(args[0]) {
			return fmt.Errorf("unknown chakra %q (known: %s)", args[0], strings.Join(tone.Chakras, ", "))
		}
		return playChakra(cmd, args[0])
	},
}

func playChakra(cmd *cobra.Command, chakra string) error {
	player := openTones()
	defer player.Close()

	if !player.Available() {
		return fmt.Errorf("no sound: muted or no audio device available (check --mute and LEARNQUEST_SOUND)")
	}

	frequency := tone.FrequencyFor(chakra)
	label := fmt.Sprintf("%s  %.1f Гц", chakra, frequency)
	return ui.RunPlayback(cmd.OutOrStdout(), label, tone.Duration, func() {
		player.Play(frequency)
	})
}

// configCmd manages the preferences file
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.CreateDefaultConfig(forceFlag)
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Configuration written", ui.Param{Key: "Path", Value: path})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences",
	Long: `Print the preferences after applying the config file, LEARNQUEST_*
environment variables and command-line flags.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		cfg.Preferences = settings
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
}
