package cpu

import (
	"fmt"
	"io"
)

// Disassemble writes one line per instruction of image, addressed from
// origin. Bytes that do not decode are listed as DB and skipped one at a time.
func Disassemble(w io.Writer, image []byte, origin uint16) error {
	for pc := 0; pc < len(image); {
		in := Decode(image[pc:])
		n := in.Size
		if n == 0 {
			n = 1
		}
		if _, err := fmt.Fprintf(w, "%04X  %-8s  %v\n", origin+uint16(pc), fmt.Sprintf("% X", image[pc:pc+n]), in.Op); err != nil {
			return err
		}
		pc += n
	}
	return nil
}
