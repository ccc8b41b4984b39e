package cli

import (
	"bufio"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/heos-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure paging, command throttling and the catalog file.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Long:  "Print one setting. Keys: " + strings.Join(settingKeys(), ", ") + ".",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long:  "Change one setting. Keys: " + strings.Join(settingKeys(), ", ") + ".",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

// setting binds a command line key to a field of AppSettings.
type setting struct {
	get func(*domain.AppSettings) string
	set func(*domain.AppSettings, string) error
}

var settingsByKey = map[string]setting{
	"page_size": {
		get: func(s *domain.AppSettings) string { return strconv.Itoa(s.Index.PageSize) },
		set: func(s *domain.AppSettings, v string) (err error) {
			s.Index.PageSize, err = strconv.Atoi(v)
			return err
		},
	},
	"rate_limit": {
		get: func(s *domain.AppSettings) string { return strconv.FormatFloat(s.Commands.RateLimit, 'g', -1, 64) },
		set: func(s *domain.AppSettings, v string) (err error) {
			s.Commands.RateLimit, err = strconv.ParseFloat(v, 64)
			return err
		},
	},
	"burst": {
		get: func(s *domain.AppSettings) string { return strconv.Itoa(s.Commands.Burst) },
		set: func(s *domain.AppSettings, v string) (err error) {
			s.Commands.Burst, err = strconv.Atoi(v)
			return err
		},
	},
	"catalog": {
		get: func(s *domain.AppSettings) string { return s.Catalog.Path },
		set: func(s *domain.AppSettings, v string) error {
			s.Catalog.Path = v
			return nil
		},
	},
}

func settingKeys() []string {
	keys := make([]string, 0, len(settingsByKey))
	for k := range settingsByKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func lookupSetting(key string) (setting, error) {
	s, ok := settingsByKey[key]
	if !ok {
		return setting{}, fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(settingKeys(), ", "))
	}
	return s, nil
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Index]")
	cmd.Printf("  Page size: %d\n", settings.Index.PageSize)
	cmd.Println()

	cmd.Println("[Commands]")
	cmd.Printf("  Rate limit: %g/s\n", settings.Commands.RateLimit)
	cmd.Printf("  Burst: %d\n", settings.Commands.Burst)
	cmd.Println()

	cmd.Println("[Catalog]")
	if settings.Catalog.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Catalog.Path)
	} else {
		cmd.Printf("  Path: (not set)\n")
	}

	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	s, err := lookupSetting(args[0])
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Println(s.get(settings))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	key, value := args[0], args[1]
	s, err := lookupSetting(key)
	if err != nil {
		return err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if err := s.set(settings, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key, s.get(settings))
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("HEOS Settings Wizard")
	cmd.Println("====================")
	cmd.Println("Press enter to keep the current value.")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Printf("Page size [%d]: ", settings.Index.PageSize)
	settings.Index.PageSize = parseInt(readLine(reader), settings.Index.PageSize)

	cmd.Printf("Rate limit, commands per second [%g]: ", settings.Commands.RateLimit)
	settings.Commands.RateLimit = parseFloat(readLine(reader), settings.Commands.RateLimit)

	cmd.Printf("Burst [%d]: ", settings.Commands.Burst)
	settings.Commands.Burst = parseInt(readLine(reader), settings.Commands.Burst)

	cmd.Printf("Catalog file [%s]: ", settings.Catalog.Path)
	if path := readLine(reader); path != "" {
		settings.Catalog.Path = path
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("All settings are valid and saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// parseInt returns defaultVal for empty, malformed or non-positive input.
func parseInt(input string, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 {
		return defaultVal
	}
	return val
}

// parseFloat returns defaultVal for empty, malformed or non-positive input.
func parseFloat(input string, defaultVal float64) float64 {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(input, 64)
	if err != nil || val <= 0 {
		return defaultVal
	}
	return val
}
