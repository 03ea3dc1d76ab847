package wlanscan

import (
	"testing"
)

func TestInterfaceStateString(t *testing.T) {
	tests := []struct {
		state InterfaceState
		value uint32
		want  string
	}{
		{InterfaceStateNotReady, 0, "not ready"},
		{InterfaceStateConnected, 1, "connected"},
		{InterfaceStateAdHocNetworkFormed, 2, "ad hoc network formed"},
		{InterfaceStateDisconnecting, 3, "disconnecting"},
		{InterfaceStateDisconnected, 4, "disconnected"},
		{InterfaceStateAssociating, 5, "associating"},
		{InterfaceStateDiscovering, 6, "discovering"},
		{InterfaceStateAuthenticating, 7, "authenticating"},
		{InterfaceState(8), 8, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if uint32(tt.state) != tt.value {
				t.Errorf("state value = %d, want %d", tt.state, tt.value)
			}

			if got := tt.state.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNotificationCodeValues(t *testing.T) {
	if NotificationScanComplete != 7 {
		t.Errorf("NotificationScanComplete = %d, want 7", NotificationScanComplete)
	}

	if NotificationScanFail != 8 {
		t.Errorf("NotificationScanFail = %d, want 8", NotificationScanFail)
	}
}
