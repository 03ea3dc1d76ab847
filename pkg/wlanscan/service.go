package wlanscan

import (
	ole "github.com/go-ole/go-ole"
)

// Service represents an entity that can open sessions against the wireless configuration service
type Service interface {
	Open() (Session, error)
}

// Session is an open client handle. Everything acquired through it must be released before Close
type Session interface {
	// RegisterNotification subscribes handler to ACM notifications. The handler runs on
	// an arbitrary thread; closing the session deregisters it
	RegisterNotification(handler NotificationHandler) error

	Interfaces() (InterfaceList, error)
	Scan(id ole.GUID) error

	// AvailableNetworks returns the service's cached view, it does not trigger a scan
	AvailableNetworks(id ole.GUID) (NetworkList, error)

	Close() error
}

// InterfaceList is service-owned memory holding enumerated interfaces
type InterfaceList interface {
	Items() []Interface
	Free()
}

// NetworkList is service-owned memory holding the networks visible on one interface
type NetworkList interface {
	Items() []Network
	Free()
}

// Interface is a single wireless adapter as reported by the service
type Interface struct {
	ID          ole.GUID
	Description string
	State       InterfaceState
}

// InterfaceState mirrors WLAN_INTERFACE_STATE
type InterfaceState uint32

const (
	InterfaceStateNotReady InterfaceState = iota
	InterfaceStateConnected
	InterfaceStateAdHocNetworkFormed
	InterfaceStateDisconnecting
	InterfaceStateDisconnected
	InterfaceStateAssociating
	InterfaceStateDiscovering
	InterfaceStateAuthenticating
)

var interfaceStateNames = []string{
	"not ready",
	"connected",
	"ad hoc network formed",
	"disconnecting",
	"disconnected",
	"associating",
	"discovering",
	"authenticating",
}

func (s InterfaceState) String() string {
	if int(s) < len(interfaceStateNames) {
		return interfaceStateNames[s]
	}

	return "unknown"
}

// NotificationCode identifies an ACM notification, valued as in WLAN_NOTIFICATION_ACM
type NotificationCode uint32

const (
	NotificationScanComplete NotificationCode = 7
	NotificationScanFail     NotificationCode = 8
)

// Notification is a single event delivered by the service
type Notification struct {
	Code        NotificationCode
	InterfaceID ole.GUID
}

// NotificationHandler receives notifications from the service
type NotificationHandler func(Notification)
