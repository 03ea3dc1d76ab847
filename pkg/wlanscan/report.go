package wlanscan

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// report writes the human-readable console output. It's not meant to be parsed
type report struct {
	out  io.Writer
	msgs *messages
}

func (r *report) line(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *report) indented(s string) {
	fmt.Fprintln(r.out, "\t"+s)
}

func (r *report) openFailed(err error) {
	r.line(r.msgs.withCode(msgOpenHandleFailed, err))
}

func (r *report) registerNotificationFailed() {
	r.line(r.msgs.get(msgRegisterNotificationFailed, nil))
}

func (r *report) enumInterfacesFailed(err error) {
	r.line(r.msgs.withCode(msgEnumInterfacesFailed, err))
}

func (r *report) noInterfaces() {
	r.line(r.msgs.get(msgNoInterfaces, nil))
}

func (r *report) detectedInterfaces() {
	r.line(r.msgs.get(msgDetectedInterfaces, nil))
}

func (r *report) interfaceHeader(index int, iface Interface) {
	r.line(r.msgs.get(msgInterfaceHeader, map[string]interface{}{
		"Index":       index,
		"Description": iface.Description,
	}))
}

func (r *report) scanFailed(err error) {
	r.line(r.msgs.withCode(msgScanFailed, err))
}

func (r *report) waitingForScan() {
	r.indented(r.msgs.get(msgWaitingForScan, nil))
}

func (r *report) scanTookTooLong() {
	r.indented(r.msgs.get(msgScanTookTooLong, nil))
}

// elapsed is truncated to whole seconds
func (r *report) elapsed(d time.Duration) {
	r.indented(r.msgs.get(msgElapsedTime, map[string]interface{}{
		"Seconds": int64(d / time.Second),
	}))
}

func (r *report) listNetworksFailed(err error) {
	r.indented(r.msgs.withCode(msgListNetworksFailed, err))
}

func (r *report) network(index int, n Network) {
	r.indented(formatNetwork(r.msgs, index, n))
}

func (r *report) interrupted() {
	r.line(r.msgs.get(msgInterrupted, nil))
}

func (r *report) blank() {
	fmt.Fprintln(r.out)
}

func (r *report) pressEnter() {
	r.line(r.msgs.get(msgPressEnter, nil))
}

// formatNetwork renders "<index>: [connected] <ssid|[hidden]> [length: n]"
func formatNetwork(msgs *messages, index int, n Network) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%d: ", index)

	if n.Connected() {
		b.WriteString(msgs.get(msgConnectedTag, nil))
		b.WriteByte(' ')
	}

	if n.Hidden() {
		b.WriteString(msgs.get(msgHiddenTag, nil))
	} else {
		b.Write(n.SSIDBytes())
	}

	b.WriteByte(' ')
	b.WriteString(msgs.get(msgSSIDLength, map[string]interface{}{"Length": n.SSIDLength}))

	return b.String()
}
