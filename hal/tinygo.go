//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/ili9341"
)

const (
	panelSize = 240
	blitRows  = 16
)

type tinyGoHAL struct {
	logger *uartLogger
	fb     Framebuffer
	t      *tinyGoTime
}

// New returns a Pico HAL driving an ILI9341 panel; the face uses the top
// 240x240 square.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// SPI0: SCK GP18, SDO GP19, SDI GP16; CS GP17, DC GP20, RST GP21.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	machine.SPI0.Configure(machine.SPIConfig{
		SCK:       machine.GP18,
		SDO:       machine.GP19,
		SDI:       machine.GP16,
		Frequency: 40_000_000,
	})
	lcd := ili9341.NewSPI(machine.SPI0, machine.GP20, machine.GP17, machine.GP21)
	lcd.Configure(ili9341.Config{})

	p := &panel{lcd: lcd, chunk: make([]byte, panelSize*blitRows*2)}
	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		fb:     newMemFramebuffer(panelSize, panelSize, p.blit),
		t:      newTinyGoTime(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Time() Time       { return h.t }

type panel struct {
	lcd   *ili9341.Device
	chunk []byte
}

// blit pushes the framebuffer in bands of blitRows lines. The buffer is
// little-endian RGB565; the panel expects big-endian.
func (p *panel) blit(buf []byte, w, h int) error {
	stride := w * 2
	for y := 0; y < h; y += blitRows {
		rows := blitRows
		if y+rows > h {
			rows = h - y
		}
		src := buf[y*stride : (y+rows)*stride]
		dst := p.chunk[:len(src)]
		for i := 0; i+1 < len(src); i += 2 {
			dst[i] = src[i+1]
			dst[i+1] = src[i]
		}
		if err := p.lcd.DrawRGBBitmap8(0, int16(y), dst, int16(w), int16(rows)); err != nil {
			return err
		}
	}
	return nil
}

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}
