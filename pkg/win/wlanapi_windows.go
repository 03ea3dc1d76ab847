package win

import (
	"unsafe"

	ole "github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

var (
	modwlanapi  = windows.NewLazySystemDLL("wlanapi.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procWlanOpenHandle              = modwlanapi.NewProc("WlanOpenHandle")
	procWlanCloseHandle             = modwlanapi.NewProc("WlanCloseHandle")
	procWlanEnumInterfaces          = modwlanapi.NewProc("WlanEnumInterfaces")
	procWlanFreeMemory              = modwlanapi.NewProc("WlanFreeMemory")
	procWlanRegisterNotification    = modwlanapi.NewProc("WlanRegisterNotification")
	procWlanScan                    = modwlanapi.NewProc("WlanScan")
	procWlanGetAvailableNetworkList = modwlanapi.NewProc("WlanGetAvailableNetworkList")
	procSetConsoleOutputCP          = modkernel32.NewProc("SetConsoleOutputCP")
)

// WLAN_API_VERSION_2_0, Vista and later
const WLAN_API_VERSION = 2

const (
	WLAN_NOTIFICATION_SOURCE_NONE = 0x00000000
	WLAN_NOTIFICATION_SOURCE_ACM  = 0x00000008
	WLAN_NOTIFICATION_SOURCE_ALL  = 0x0000ffff
)

const (
	WLAN_MAX_NAME_LENGTH     = 256
	DOT11_SSID_MAX_LENGTH    = 32
	WLAN_MAX_PHY_TYPE_NUMBER = 8
)

type WLAN_INTERFACE_INFO struct {
	InterfaceGuid           ole.GUID
	StrInterfaceDescription [WLAN_MAX_NAME_LENGTH]uint16
	IsState                 uint32
}

type WLAN_INTERFACE_INFO_LIST struct {
	NumberOfItems uint32
	Index         uint32
	InterfaceInfo [1]WLAN_INTERFACE_INFO
}

// Items returns the variable-length InterfaceInfo array as a slice backed by wlanapi memory
func (l *WLAN_INTERFACE_INFO_LIST) Items() []WLAN_INTERFACE_INFO {
	if l == nil || l.NumberOfItems == 0 {
		return nil
	}

	return unsafe.Slice(&l.InterfaceInfo[0], l.NumberOfItems)
}

type DOT11_SSID struct {
	SSIDLength uint32
	SSID       [DOT11_SSID_MAX_LENGTH]byte
}

type WLAN_AVAILABLE_NETWORK struct {
	StrProfileName              [WLAN_MAX_NAME_LENGTH]uint16
	Dot11Ssid                   DOT11_SSID
	Dot11BssType                uint32
	NumberOfBssids              uint32
	NetworkConnectable          int32
	WlanNotConnectableReason    uint32
	NumberOfPhyTypes            uint32
	Dot11PhyTypes               [WLAN_MAX_PHY_TYPE_NUMBER]uint32
	MorePhyTypes                int32
	WlanSignalQuality           uint32
	SecurityEnabled             int32
	Dot11DefaultAuthAlgorithm   uint32
	Dot11DefaultCipherAlgorithm uint32
	Flags                       uint32
	Reserved                    uint32
}

type WLAN_AVAILABLE_NETWORK_LIST struct {
	NumberOfItems uint32
	Index         uint32
	Network       [1]WLAN_AVAILABLE_NETWORK
}

// Items returns the variable-length Network array as a slice backed by wlanapi memory
func (l *WLAN_AVAILABLE_NETWORK_LIST) Items() []WLAN_AVAILABLE_NETWORK {
	if l == nil || l.NumberOfItems == 0 {
		return nil
	}

	return unsafe.Slice(&l.Network[0], l.NumberOfItems)
}

type WLAN_NOTIFICATION_DATA struct {
	NotificationSource uint32
	NotificationCode   uint32
	InterfaceGuid      ole.GUID
	DataSize           uint32
	Data               uintptr
}

func retErr(r1, _ uintptr, lastErr error) (err error) {
	if r1 == 0 {
		err = lastErr
	}

	return
}

// wlanapi functions return a DWORD status instead of setting the last error
func statusErr(r1, _ uintptr, _ error) error {
	if r1 != 0 {
		return windows.Errno(r1)
	}

	return nil
}

func WlanOpenHandle(clientVersion uint32, negotiatedVersion *uint32, handle *windows.Handle) error {
	return statusErr(procWlanOpenHandle.Call(
		uintptr(clientVersion),
		0,
		uintptr(unsafe.Pointer(negotiatedVersion)),
		uintptr(unsafe.Pointer(handle))))
}

func WlanCloseHandle(handle windows.Handle) error {
	return statusErr(procWlanCloseHandle.Call(uintptr(handle), 0))
}

func WlanEnumInterfaces(handle windows.Handle, list **WLAN_INTERFACE_INFO_LIST) error {
	return statusErr(procWlanEnumInterfaces.Call(
		uintptr(handle),
		0,
		uintptr(unsafe.Pointer(list))))
}

// WlanFreeMemory releases memory allocated by any of the wlanapi list calls
func WlanFreeMemory(memory unsafe.Pointer) {
	procWlanFreeMemory.Call(uintptr(memory))
}

func WlanRegisterNotification(handle windows.Handle, source uint32, ignoreDuplicate bool, callback uintptr, context uintptr) error {
	var ignore uintptr
	if ignoreDuplicate {
		ignore = 1
	}

	return statusErr(procWlanRegisterNotification.Call(
		uintptr(handle),
		uintptr(source),
		ignore,
		callback,
		context,
		0,
		0))
}

func WlanScan(handle windows.Handle, interfaceGuid *ole.GUID) error {
	return statusErr(procWlanScan.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(interfaceGuid)),
		0,
		0,
		0))
}

func WlanGetAvailableNetworkList(handle windows.Handle, interfaceGuid *ole.GUID, flags uint32, list **WLAN_AVAILABLE_NETWORK_LIST) error {
	return statusErr(procWlanGetAvailableNetworkList.Call(
		uintptr(handle),
		uintptr(unsafe.Pointer(interfaceGuid)),
		uintptr(flags),
		0,
		uintptr(unsafe.Pointer(list))))
}

// SetConsoleUTF8 switches the console output code page so raw SSID bytes render as UTF-8
func SetConsoleUTF8() error {
	const cpUTF8 = 65001
	return retErr(procSetConsoleOutputCP.Call(cpUTF8))
}
