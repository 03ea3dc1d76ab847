// Package wlanscan lists the wireless networks visible to every local WLAN
// interface, after asking each interface for a fresh scan
package wlanscan

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/nik9play/wlanscan/pkg/wlanscan/util"
)

// Process exit codes
const (
	ExitOK                   = 0
	ExitInterrupted          = 1
	ExitSessionOpenFailed    = -1
	ExitEnumInterfacesFailed = -2
	ExitNoInterfaces         = -3
)

// Scanner runs the open → enumerate → scan → list → close pipeline once
type Scanner struct {
	logger  *zap.SugaredLogger
	config  *CanonicalConfig
	service Service
	report  *report
	stdin   io.Reader

	signal *ScanSignal
}

// NewScanner creates a Scanner that prints its report to stdout and reads the exit pause from stdin
func NewScanner(logger *zap.SugaredLogger, config *CanonicalConfig, service Service, stdout io.Writer, stdin io.Reader) (*Scanner, error) {
	logger = logger.Named("scanner")

	bundle, err := newBundle()
	if err != nil {
		logger.Errorw("Failed to create message bundle", "error", err)
		return nil, fmt.Errorf("create message bundle: %w", err)
	}

	lang, err := resolveLanguage(config.Language)
	if err != nil {
		logger.Warnw("Failed to resolve report language, falling back to English", "error", err)
		lang = "en"
	}

	logger.Debugw("Selected report language", "language", lang)

	s := &Scanner{
		logger:  logger,
		config:  config,
		service: service,
		report:  &report{out: stdout, msgs: newMessages(bundle, lang)},
		stdin:   stdin,
		signal:  NewScanSignal(),
	}

	logger.Debug("Created scanner instance")

	return s, nil
}

// Run executes the pipeline and returns the process exit code
func (s *Scanner) Run(ctx context.Context) int {
	code := s.run(ctx)

	if code != ExitOK || !s.config.PauseOnExit {
		return code
	}

	s.report.pressEnter()

	if err := util.WaitForEnter(ctx, s.stdin); err != nil {
		if ctx.Err() != nil {
			s.logger.Info("Interrupted while waiting for enter")
			return ExitInterrupted
		}

		s.logger.Debugw("Stopped waiting for enter", "error", err)
	}

	return code
}

// run owns every service resource; they are all released by the time it returns
func (s *Scanner) run(ctx context.Context) int {
	session, err := s.service.Open()
	if err != nil {
		s.logger.Errorw("Failed to open wlan session", "error", err)
		s.report.openFailed(err)
		return ExitSessionOpenFailed
	}

	defer func() {
		if err := session.Close(); err != nil {
			s.logger.Warnw("Failed to close wlan session", "error", err)
		}
	}()

	if s.config.WaitForScan {
		if err := session.RegisterNotification(s.onNotification); err != nil {
			s.logger.Warnw("Failed to register for scan notifications, waits will time out", "error", err)
			s.report.registerNotificationFailed()
		}
	}

	interfaces, err := session.Interfaces()
	if err != nil {
		s.logger.Errorw("Failed to enumerate interfaces", "error", err)
		s.report.enumInterfacesFailed(err)
		return ExitEnumInterfacesFailed
	}

	defer interfaces.Free()

	items := interfaces.Items()
	if len(items) == 0 {
		s.logger.Errorw("Failed to enumerate interfaces", "error", ErrNoInterfaces)
		s.report.noInterfaces()
		return ExitNoInterfaces
	}

	s.report.detectedInterfaces()

	for idx, iface := range s.selectInterfaces(items) {
		if ctx.Err() != nil {
			s.logger.Infow("Interrupted before scanning interface", "interface", iface.Description)
			s.report.interrupted()
			return ExitInterrupted
		}

		s.report.interfaceHeader(idx+1, iface)

		s.logger.Debugw("Processing interface",
			"index", idx+1,
			"id", iface.ID.String(),
			"description", iface.Description,
			"state", iface.State)

		if !s.scanInterface(ctx, session, iface) {
			s.report.interrupted()
			return ExitInterrupted
		}

		s.listNetworks(session, iface)
		s.report.blank()
	}

	return ExitOK
}

func (s *Scanner) selectInterfaces(items []Interface) []Interface {
	if s.config.InterfaceSelection == SelectFirst {
		return items[:1]
	}

	return items
}

// scanInterface requests a scan and, if configured, waits for it.
// It returns false only when the wait was cut short by ctx
func (s *Scanner) scanInterface(ctx context.Context, session Session, iface Interface) bool {
	if s.config.ResetScanSignal {
		s.signal.Reset()
	}

	if err := session.Scan(iface.ID); err != nil {
		s.logger.Warnw("Failed to request scan", "interface", iface.Description, "error", err)
		s.report.scanFailed(err)
		return true
	}

	if !s.config.WaitForScan {
		s.logger.Debugw("Scan requested, not waiting for it", "interface", iface.Description)
		return true
	}

	s.report.waitingForScan()

	result, elapsed := s.signal.Wait(ctx, s.config.ScanTimeout)

	switch result {
	case WaitTimedOut:
		s.logger.Warnw("Scan did not complete in time",
			"interface", iface.Description,
			"timeout", s.config.ScanTimeout)
		s.report.scanTookTooLong()
	case WaitCancelled:
		s.logger.Infow("Scan wait interrupted", "interface", iface.Description, "elapsed", elapsed)
		return false
	default:
		s.logger.Debugw("Scan completed", "interface", iface.Description, "elapsed", elapsed)
	}

	s.report.elapsed(elapsed)

	return true
}

func (s *Scanner) listNetworks(session Session, iface Interface) {
	networks, err := session.AvailableNetworks(iface.ID)

	// a failed query hands back no list, there's nothing to free then
	if networks != nil {
		defer networks.Free()
	}

	if err != nil {
		s.logger.Warnw("Failed to get available networks", "interface", iface.Description, "error", err)
		s.report.listNetworksFailed(err)
		return
	}

	for idx, n := range networks.Items() {
		s.logger.Debugw("Found network",
			"ssid", string(n.SSIDBytes()),
			"connected", n.Connected(),
			"hidden", n.Hidden(),
			"signalQuality", n.SignalQuality,
			"secure", n.SecurityEnabled)

		s.report.network(idx+1, n)
	}
}

// onNotification runs on a service thread; it may only touch the signal and the logger
func (s *Scanner) onNotification(n Notification) {
	switch n.Code {
	case NotificationScanComplete:
		s.signal.Notify()
		s.logger.Debugw("Scan complete notification", "interface", n.InterfaceID.String())
	case NotificationScanFail:
		s.logger.Debugw("Scan fail notification, ignoring", "interface", n.InterfaceID.String())
	default:
		s.logger.Debugw("Ignoring notification", "code", n.Code, "interface", n.InterfaceID.String())
	}
}
