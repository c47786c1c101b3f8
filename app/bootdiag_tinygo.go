//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"watchface/hal"
)

var (
	bootDiagMu   sync.Mutex
	bootDiagStep string
	bootDiagOnce sync.Once
)

// bootStep records the current boot stage; a background loop repeats it on
// the logger and USB CDC until the first frame is up.
func bootStep(h hal.HAL, msg string) {
	bootDiagMu.Lock()
	bootDiagStep = msg
	bootDiagMu.Unlock()
	bootDiagOnce.Do(func() { bootDiagStart(h) })
}

func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()

	go func() {
		for {
			bootDiagMu.Lock()
			step := bootDiagStep
			bootDiagMu.Unlock()

			if step == "" {
				step = "<empty>"
			}
			line := "bootdiag: " + step
			if l != nil {
				l.WriteLineString(line)
			}
			if usb := machine.USBCDC; usb != nil {
				_, _ = usb.Write([]byte(line + "\r\n"))
			}
			if step == bootDone {
				return
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
