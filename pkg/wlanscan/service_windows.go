package wlanscan

import (
	"sync"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"

	"github.com/nik9play/wlanscan/pkg/win"
)

type wlanService struct {
	logger *zap.SugaredLogger
}

type wlanSession struct {
	logger *zap.SugaredLogger

	handle       windows.Handle
	notification *win.WlanNotification

	closeOnce sync.Once
}

// NewService creates a Service backed by wlanapi.dll
func NewService(logger *zap.SugaredLogger) Service {
	s := &wlanService{
		logger: logger.Named("wlanapi"),
	}

	s.logger.Debug("Created wlanapi service instance")

	return s
}

func (s *wlanService) Open() (Session, error) {
	var negotiatedVersion uint32
	var handle windows.Handle

	if err := win.WlanOpenHandle(win.WLAN_API_VERSION, &negotiatedVersion, &handle); err != nil {
		s.logger.Warnw("Failed to open wlan handle", "error", err)
		return nil, newStatusError("WlanOpenHandle", err)
	}

	s.logger.Debugw("Opened wlan handle",
		"requestedVersion", win.WLAN_API_VERSION,
		"negotiatedVersion", negotiatedVersion)

	return &wlanSession{
		logger: s.logger,
		handle: handle,
	}, nil
}

func (ws *wlanSession) RegisterNotification(handler NotificationHandler) error {
	notification := win.NewWlanNotification(win.WlanNotificationCallback{
		OnACMNotification: func(code uint32, data *win.WLAN_NOTIFICATION_DATA) {
			handler(Notification{
				Code:        NotificationCode(code),
				InterfaceID: data.InterfaceGuid,
			})
		},
	})

	// duplicate suppression on, matching the single scan-complete we care about
	err := win.WlanRegisterNotification(ws.handle,
		win.WLAN_NOTIFICATION_SOURCE_ACM,
		true,
		notification.Callback(),
		notification.Context)

	if err != nil {
		notification.Release()
		return newStatusError("WlanRegisterNotification", err)
	}

	ws.notification = notification

	return nil
}

func (ws *wlanSession) Interfaces() (InterfaceList, error) {
	var native *win.WLAN_INTERFACE_INFO_LIST

	if err := win.WlanEnumInterfaces(ws.handle, &native); err != nil {
		if native != nil {
			win.WlanFreeMemory(unsafe.Pointer(native))
		}

		return nil, newStatusError("WlanEnumInterfaces", err)
	}

	list := &interfaceList{native: native}

	for _, info := range native.Items() {
		list.items = append(list.items, Interface{
			ID:          info.InterfaceGuid,
			Description: windows.UTF16ToString(info.StrInterfaceDescription[:]),
			State:       InterfaceState(info.IsState),
		})
	}

	return list, nil
}

func (ws *wlanSession) Scan(id ole.GUID) error {
	if err := win.WlanScan(ws.handle, &id); err != nil {
		return newStatusError("WlanScan", err)
	}

	return nil
}

func (ws *wlanSession) AvailableNetworks(id ole.GUID) (NetworkList, error) {
	var native *win.WLAN_AVAILABLE_NETWORK_LIST

	if err := win.WlanGetAvailableNetworkList(ws.handle, &id, 0, &native); err != nil {
		if native != nil {
			win.WlanFreeMemory(unsafe.Pointer(native))
		}

		return nil, newStatusError("WlanGetAvailableNetworkList", err)
	}

	list := &networkList{native: native}

	for _, entry := range native.Items() {
		list.items = append(list.items, Network{
			SSID:            entry.Dot11Ssid.SSID,
			SSIDLength:      entry.Dot11Ssid.SSIDLength,
			ProfileName:     windows.UTF16ToString(entry.StrProfileName[:]),
			SignalQuality:   entry.WlanSignalQuality,
			SecurityEnabled: entry.SecurityEnabled != 0,
		})
	}

	return list, nil
}

func (ws *wlanSession) Close() error {
	var err error

	ws.closeOnce.Do(func() {
		// closing the handle also drops the notification registration
		if closeErr := win.WlanCloseHandle(ws.handle); closeErr != nil {
			err = newStatusError("WlanCloseHandle", closeErr)
		}

		if ws.notification != nil {
			ws.notification.Release()
		}

		ws.logger.Debug("Closed wlan handle")
	})

	return err
}

// items are copied out of wlanapi memory up front, so they stay valid after Free
type interfaceList struct {
	native *win.WLAN_INTERFACE_INFO_LIST
	items  []Interface
}

func (l *interfaceList) Items() []Interface {
	return l.items
}

func (l *interfaceList) Free() {
	if l.native == nil {
		return
	}

	win.WlanFreeMemory(unsafe.Pointer(l.native))
	l.native = nil
}

type networkList struct {
	native *win.WLAN_AVAILABLE_NETWORK_LIST
	items  []Network
}

func (l *networkList) Items() []Network {
	return l.items
}

func (l *networkList) Free() {
	if l.native == nil {
		return
	}

	win.WlanFreeMemory(unsafe.Pointer(l.native))
	l.native = nil
}
