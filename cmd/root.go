package cmd

import (
	"os"
	"time"

	coreconfig "github.com/AzielCF/az-access/core/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagBinding maps a persistent flag onto the viper key it overrides.
type flagBinding struct {
	flag string
	key  string
}

var flagBindings = []flagBinding{
	{"port", "app_port"},
	{"debug", "app_debug"},
	{"base-path", "app_base_path"},
	{"db-driver", "db_driver"},
	{"db-name", "db_name"},
	{"duration-hours", "access_duration_hours"},
	{"log-level", "log_level"},
}

var rootCmd = &cobra.Command{
	Use:   "az-access",
	Short: "Content-security temporary access grants",
	Long:  `Grants and tracks temporary content-security access for mobile subscribers, keyed by MSISDN and service.`,
}

func init() {
	time.Local = time.UTC

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	initFlags()

	cobra.OnInitialize(initEnvConfig, initLogging)
}

func initFlags() {
	flags := rootCmd.PersistentFlags()

	flags.StringP("port", "p", "3300", "change port number with --port <number> | example: --port=8080")
	flags.BoolP("debug", "d", false, "hide or displaying log with --debug <true/false> | example: --debug=true")
	flags.String("base-path", "", `base path for subpath deployment --base-path <string> | example: --base-path="/access"`)
	flags.String("db-driver", "sqlite", `storage driver --db-driver <sqlite|postgres|memory>`)
	flags.String("db-name", "storages/access.db", `sqlite file or postgres database name --db-name <string>`)
	flags.Int("duration-hours", coreconfig.DefaultDurationHours, `grant validity in hours --duration-hours <number>`)
	flags.String("log-level", "info", `log level --log-level <debug|info|warn|error>`)

	for _, b := range flagBindings {
		if err := viper.BindPFlag(b.key, flags.Lookup(b.flag)); err != nil {
			logrus.Fatalf("failed to bind flag %s: %v", b.flag, err)
		}
	}
}

// initEnvConfig loads .env and environment variables, then lets explicit flags win.
func initEnvConfig() {
	cfg, err := coreconfig.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load configuration: %v", err)
	}
	applyFlagOverrides(cfg, viper.GetViper())
	coreconfig.Global = cfg
}

// applyFlagOverrides copies every key set in v onto cfg. Bound flags count as set only when passed.
func applyFlagOverrides(cfg *coreconfig.Config, v *viper.Viper) {
	if v.IsSet("app_port") {
		cfg.App.Port = v.GetString("app_port")
	}
	if v.IsSet("app_debug") {
		cfg.App.Debug = v.GetBool("app_debug")
	}
	if v.IsSet("app_base_path") {
		cfg.App.BasePath = v.GetString("app_base_path")
	}
	if v.IsSet("db_driver") {
		cfg.Database.Driver = v.GetString("db_driver")
	}
	if v.IsSet("db_name") {
		cfg.Database.Name = v.GetString("db_name")
	}
	if v.IsSet("access_duration_hours") {
		cfg.Access.DurationHours = v.GetInt("access_duration_hours")
	}
	if v.IsSet("log_level") {
		cfg.Log.Level = v.GetString("log_level")
	}
	cfg.Normalize()
}

func initLogging() {
	if err := setupLogging(coreconfig.Global.Log, coreconfig.Global.App.Debug); err != nil {
		logrus.Fatalf("failed to configure logging: %v", err)
	}
	logrus.WithFields(logrus.Fields(coreconfig.GetAllSettings())).Debug("[CONFIG] Loaded configuration")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
