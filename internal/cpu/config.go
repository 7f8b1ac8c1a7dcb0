package cpu

import "io"

// Config contains settings applied when a CPU is created or reset.
type Config struct {
	PostBoot     bool      // start from the DMG register state left by the boot ROM
	EntryPoint   uint16    // initial PC; 0x0100 when PostBoot is set and this is zero
	StackPointer *uint16   // initial SP when not PostBoot; nil selects 0xFFFE
	Trace        io.Writer // one line per executed instruction; nil disables
}

// DefaultStackPointer is the SP used when Config.StackPointer is nil.
const DefaultStackPointer uint16 = 0xFFFE

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.PostBoot && c.EntryPoint == 0 {
		c.EntryPoint = 0x0100
	}
	if c.StackPointer == nil {
		sp := DefaultStackPointer
		c.StackPointer = &sp
	}
}
