package wlanscan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

// InterfaceSelection decides which enumerated interfaces get scanned
type InterfaceSelection string

const (
	SelectAll   InterfaceSelection = "all"
	SelectFirst InterfaceSelection = "first"
)

// CanonicalConfig provides application-wide access to configuration fields,
// as well as loading them from an optional file, the environment and flags
type CanonicalConfig struct {
	InterfaceSelection InterfaceSelection
	WaitForScan        bool
	ScanTimeout        time.Duration

	// off by default: the signal is never reset, so only the first
	// interface's scan is really awaited
	ResetScanSignal bool

	PauseOnExit bool
	Language    string

	logger     *zap.SugaredLogger
	userConfig *viper.Viper
}

const (
	userConfigName = "wlanscan"
	envPrefix      = "WLANSCAN"

	configKeyInterfaceSelection = "interface_selection"
	configKeyWaitForScan        = "wait_for_scan"
	configKeyScanTimeout        = "scan_timeout"
	configKeyResetScanSignal    = "reset_scan_signal"
	configKeyPauseOnExit        = "pause_on_exit"
	configKeyLanguage           = "language"

	// drivers must finish a scan within four seconds
	defaultScanTimeout = 4 * time.Second

	defaultLanguage = "auto"
)

// flag name -> config key
var flagKeys = map[string]string{
	"interface":         configKeyInterfaceSelection,
	"wait":              configKeyWaitForScan,
	"timeout":           configKeyScanTimeout,
	"reset-scan-signal": configKeyResetScanSignal,
	"pause":             configKeyPauseOnExit,
	"language":          configKeyLanguage,
}

// NewConfig creates a config instance and sets up viper with defaults
func NewConfig(logger *zap.SugaredLogger) (*CanonicalConfig, error) {
	logger = logger.Named("config")

	cc := &CanonicalConfig{
		logger: logger,
	}

	userConfig := viper.New()
	userConfig.SetConfigName(userConfigName)
	userConfig.AddConfigPath(".")

	if exe, err := os.Executable(); err == nil {
		userConfig.AddConfigPath(filepath.Dir(exe))
	}

	userConfig.SetEnvPrefix(envPrefix)
	userConfig.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	userConfig.AutomaticEnv()

	userConfig.SetDefault(configKeyInterfaceSelection, string(SelectAll))
	userConfig.SetDefault(configKeyWaitForScan, true)
	userConfig.SetDefault(configKeyScanTimeout, defaultScanTimeout)
	userConfig.SetDefault(configKeyResetScanSignal, false)
	userConfig.SetDefault(configKeyPauseOnExit, true)
	userConfig.SetDefault(configKeyLanguage, defaultLanguage)

	cc.userConfig = userConfig

	logger.Debug("Created config instance")

	return cc, nil
}

// RegisterFlags adds the command-line overrides for every config key to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("interface", "i", string(SelectAll), "which interfaces to scan (all, first)")
	fs.Bool("wait", true, "wait for each scan to complete before listing networks")
	fs.DurationP("timeout", "t", defaultScanTimeout, "how long to wait for a scan to complete, in whole seconds")
	fs.Bool("reset-scan-signal", false, "re-arm the scan completion signal before every interface")
	fs.Bool("pause", true, "wait for enter before exiting")
	fs.StringP("language", "l", defaultLanguage, "language of the console report (auto, en, ru)")
}

// BindFlags makes flags registered by RegisterFlags take precedence over file and environment
func (cc *CanonicalConfig) BindFlags(fs *pflag.FlagSet) error {
	for flagName, key := range flagKeys {
		flag := fs.Lookup(flagName)
		if flag == nil {
			continue
		}

		if err := cc.userConfig.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}

	return nil
}

// SetConfigFile points the config at an explicit file, which then must exist
func (cc *CanonicalConfig) SetConfigFile(path string) {
	cc.userConfig.SetConfigFile(path)
}

// Load reads the config file if there is one and populates the canonical fields
func (cc *CanonicalConfig) Load() error {
	cc.logger.Debug("Loading config")

	if err := cc.userConfig.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cc.logger.Warnw("Viper failed to read user config", "error", err)
			return fmt.Errorf("read user config: %w", err)
		}

		cc.logger.Debug("No config file found, using defaults")
	} else {
		cc.logger.Debugw("Read config file", "path", cc.userConfig.ConfigFileUsed())
	}

	if err := cc.populateFromVipers(); err != nil {
		cc.logger.Warnw("Failed to populate config fields", "error", err)
		return fmt.Errorf("populate config fields: %w", err)
	}

	cc.logger.Debugw("Config values",
		"interfaceSelection", cc.InterfaceSelection,
		"waitForScan", cc.WaitForScan,
		"scanTimeout", cc.ScanTimeout,
		"resetScanSignal", cc.ResetScanSignal,
		"pauseOnExit", cc.PauseOnExit,
		"language", cc.Language)

	return nil
}

func (cc *CanonicalConfig) populateFromVipers() error {
	cc.InterfaceSelection = InterfaceSelection(strings.ToLower(cc.userConfig.GetString(configKeyInterfaceSelection)))
	cc.WaitForScan = cc.userConfig.GetBool(configKeyWaitForScan)
	cc.ScanTimeout = cc.userConfig.GetDuration(configKeyScanTimeout)
	cc.ResetScanSignal = cc.userConfig.GetBool(configKeyResetScanSignal)
	cc.PauseOnExit = cc.userConfig.GetBool(configKeyPauseOnExit)
	cc.Language = cc.userConfig.GetString(configKeyLanguage)

	return cc.Validate()
}

// Validate checks that the populated fields are usable
func (cc *CanonicalConfig) Validate() error {
	if !funk.ContainsString([]string{string(SelectAll), string(SelectFirst)}, string(cc.InterfaceSelection)) {
		return fmt.Errorf("invalid %s %q: expected %q or %q",
			configKeyInterfaceSelection, cc.InterfaceSelection, SelectAll, SelectFirst)
	}

	if cc.ScanTimeout <= 0 {
		return fmt.Errorf("invalid %s %s: must be positive", configKeyScanTimeout, cc.ScanTimeout)
	}

	// elapsed time is printed in whole seconds and must not read below the timeout
	if cc.ScanTimeout%time.Second != 0 {
		return fmt.Errorf("invalid %s %s: must be a whole number of seconds", configKeyScanTimeout, cc.ScanTimeout)
	}

	if cc.Language == "" {
		cc.Language = defaultLanguage
	}

	return nil
}
