package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/davren/calgrid/internal/calendar"
	"github.com/davren/calgrid/internal/config"
	"github.com/davren/calgrid/internal/date"
	"github.com/davren/calgrid/internal/locale"
	"github.com/davren/calgrid/internal/marks"
	"github.com/davren/calgrid/internal/render"
	"github.com/davren/calgrid/internal/tui"
)

var (
	configPath string
	flagCfg    config.Config
	plainMode  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "calgrid [year] [month]",
		Short: "Month-grid calendar for the terminal",
		Long: `calgrid renders one or more month grids with bounded navigation,
selection state and locale-aware labels. With no arguments it opens the
current month; pass a year, or a year and month, to start elsewhere.`,
		Args: cobra.MaximumNArgs(2),
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default $HOME/.calgrid.yaml)")
	rootCmd.Flags().IntVarP(&flagCfg.NumberOfMonths, "months", "m", 1, "number of months visible at once")
	rootCmd.Flags().IntVarP(&flagCfg.WeekStartsOn, "week-start", "w", 0, "weekday each week starts on, 0=Sunday .. 6=Saturday")
	rootCmd.Flags().BoolVar(&flagCfg.FixedWeeks, "fixed-weeks", false, "pad every month to six weeks")
	rootCmd.Flags().BoolVar(&flagCfg.PagedNavigation, "paged", false, "page by the full window instead of one month")
	rootCmd.Flags().StringVarP(&flagCfg.Locale, "locale", "l", "en", "BCP-47 locale tag for labels")
	rootCmd.Flags().StringVar(&flagCfg.WeekdayFormat, "weekday-format", "short", "weekday label verbosity: narrow, short or long")
	rootCmd.Flags().StringVar(&flagCfg.MinDate, "min", "", "earliest selectable date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&flagCfg.MaxDate, "max", "", "latest selectable date (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&flagCfg.MarksFile, "marks", "", "JSON file of disabled/unavailable dates")
	rootCmd.Flags().BoolVar(&flagCfg.ShowLunar, "lunar", false, "show lunar day labels under each date")
	rootCmd.Flags().BoolVarP(&flagCfg.NoColor, "no-color", "N", false, "disable all color output")
	rootCmd.Flags().BoolVarP(&plainMode, "plain", "n", false, "render once and exit (non-interactive)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	if cfg.NoColor {
		render.SetNoColor(true)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	reference, err := parseReference(args)
	if err != nil {
		return err
	}

	calCfg := calendar.Config{
		WeekStartsOn:    cfg.WeekStartsOn,
		FixedWeeks:      cfg.FixedWeeks,
		NumberOfMonths:  cfg.NumberOfMonths,
		PagedNavigation: cfg.PagedNavigation,
	}
	if cfg.MinDate != "" {
		min, err := date.Parse(cfg.MinDate)
		if err != nil {
			return err
		}
		calCfg.MinValue = &min
	}
	if cfg.MaxDate != "" {
		max, err := date.Parse(cfg.MaxDate)
		if err != nil {
			return err
		}
		calCfg.MaxValue = &max
	}

	var opts []calendar.Option
	var markSet *marks.Set
	if cfg.MarksFile != "" {
		markSet, err = marks.LoadFile(cfg.MarksFile)
		if err != nil {
			return err
		}
		opts = append(opts,
			calendar.WithDisabledMatcher(markSet.DisabledMatcher()),
			calendar.WithUnavailableMatcher(markSet.UnavailableMatcher()),
		)
		logger.Debug("loaded marks", zap.Int("count", markSet.Len()))
	}

	ctrl, err := calendar.New(reference, calCfg, opts...)
	if err != nil {
		return err
	}

	formatter := locale.New(cfg.Locale)
	weekdayFormat := weekdayFormatFor(cfg.WeekdayFormat)

	if plainMode || !isatty.IsTerminal(os.Stdout.Fd()) {
		heading := ""
		if cfg.NumberOfMonths > 1 {
			heading = ctrl.HeadingLabel(formatter)
		}
		return render.RunPlain(render.PlainOptions{
			Window:  ctrl.VisibleMonths(),
			Heading: heading,
			Options: render.Options{
				Formatter:     formatter,
				WeekdayFormat: weekdayFormat,
				Today:         date.Today(),
				ShowLunar:     cfg.ShowLunar,
				States:        ctrl,
			},
		})
	}

	return tui.Run(ctrl, tui.Options{
		Formatter:     formatter,
		WeekdayFormat: weekdayFormat,
		ShowLunar:     cfg.ShowLunar,
		Marks:         markSet,
		Logger:        logger,
	})
}

// applyFlagOverrides copies only the flags the user actually set over the
// file-loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("months") {
		cfg.NumberOfMonths = flagCfg.NumberOfMonths
	}
	if flags.Changed("week-start") {
		cfg.WeekStartsOn = flagCfg.WeekStartsOn
	}
	if flags.Changed("fixed-weeks") {
		cfg.FixedWeeks = flagCfg.FixedWeeks
	}
	if flags.Changed("paged") {
		cfg.PagedNavigation = flagCfg.PagedNavigation
	}
	if flags.Changed("locale") {
		cfg.Locale = flagCfg.Locale
	}
	if flags.Changed("weekday-format") {
		cfg.WeekdayFormat = flagCfg.WeekdayFormat
	}
	if flags.Changed("min") {
		cfg.MinDate = flagCfg.MinDate
	}
	if flags.Changed("max") {
		cfg.MaxDate = flagCfg.MaxDate
	}
	if flags.Changed("marks") {
		cfg.MarksFile = flagCfg.MarksFile
	}
	if flags.Changed("lunar") {
		cfg.ShowLunar = flagCfg.ShowLunar
	}
	if flags.Changed("no-color") {
		cfg.NoColor = flagCfg.NoColor
	}
}

func parseReference(args []string) (date.Date, error) {
	now := date.Today()
	year := now.Year()
	month := int(now.Month())

	switch len(args) {
	case 0:
	case 1:
		val, err := parseNumber(args[0], "year")
		if err != nil {
			return date.Date{}, err
		}
		year = val
	case 2:
		y, err := parseNumber(args[0], "year")
		if err != nil {
			return date.Date{}, err
		}
		m, err := parseNumber(args[1], "month")
		if err != nil {
			return date.Date{}, err
		}
		if m < 1 || m > 12 {
			return date.Date{}, fmt.Errorf("month must be between 1 and 12 (got %d)", m)
		}
		year, month = y, m
	}
	return date.New(year, time.Month(month), 1), nil
}

func parseNumber(value string, field string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as %s", value, field)
	}
	return n, nil
}

func weekdayFormatFor(name string) locale.WeekdayFormat {
	switch name {
	case "narrow":
		return locale.WeekdayNarrow
	case "long":
		return locale.WeekdayLong
	default:
		return locale.WeekdayShort
	}
}

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	logWriter := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)
	return zap.New(core), nil
}
