//go:build !windows

package wlanscan

import (
	"syscall"

	"go.uber.org/zap"
)

// ERROR_NOT_SUPPORTED, so the report shows the same code wlanapi would
const errorNotSupported = syscall.Errno(50)

type unsupportedService struct {
	logger *zap.SugaredLogger
}

// NewService creates a Service for platforms without wlanapi. Open always fails
func NewService(logger *zap.SugaredLogger) Service {
	return &unsupportedService{logger: logger.Named("wlanapi")}
}

func (s *unsupportedService) Open() (Session, error) {
	s.logger.Warnw("Wireless configuration service unavailable", "error", ErrUnsupported)

	return nil, &StatusError{
		Op:   "WlanOpenHandle",
		Code: uint32(errorNotSupported),
		Err:  ErrUnsupported,
	}
}
