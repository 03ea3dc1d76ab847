package win

import (
	"sync"
	"sync/atomic"
	"syscall"
)

// WlanNotificationCallback contains the callback functions for wlanapi notifications.
// Handlers run on a wlanapi worker thread, never on the registering goroutine
type WlanNotificationCallback struct {
	OnACMNotification func(code uint32, data *WLAN_NOTIFICATION_DATA)
}

// WlanNotification is a registered notification sink. Its Context is the value handed to
// WlanRegisterNotification as pCallbackContext
type WlanNotification struct {
	Context  uintptr
	callback WlanNotificationCallback
}

var (
	// syscall.NewCallback slots are never freed, so every registration shares one trampoline
	// and is told apart by its context value
	trampolineOnce sync.Once
	trampoline     uintptr

	notifications      sync.Map // uintptr -> *WlanNotification
	lastNotificationID atomic.Uintptr
)

func wlanNotificationTrampoline(data *WLAN_NOTIFICATION_DATA, context uintptr) uintptr {
	if data == nil {
		return 0
	}

	v, ok := notifications.Load(context)
	if !ok {
		return 0
	}

	n := v.(*WlanNotification)

	if data.NotificationSource == WLAN_NOTIFICATION_SOURCE_ACM && n.callback.OnACMNotification != nil {
		n.callback.OnACMNotification(data.NotificationCode, data)
	}

	return 0
}

// NewWlanNotification creates a notification sink for the given callbacks
func NewWlanNotification(callback WlanNotificationCallback) *WlanNotification {
	trampolineOnce.Do(func() {
		trampoline = syscall.NewCallback(wlanNotificationTrampoline)
	})

	n := &WlanNotification{
		Context:  lastNotificationID.Add(1),
		callback: callback,
	}

	notifications.Store(n.Context, n)

	return n
}

// Callback returns the native function pointer to pass as WLAN_NOTIFICATION_CALLBACK
func (n *WlanNotification) Callback() uintptr {
	return trampoline
}

// Release detaches the sink; late notifications for its context are dropped
func (n *WlanNotification) Release() {
	notifications.Delete(n.Context)
}
