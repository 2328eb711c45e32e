package disassembler

import (
	"fmt"
	"strings"
)

const (
	// Shortest NUL-terminated run rendered as a string.
	minStringLength = 4
	bytesPerLine    = 16
)

func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// formatData renders bytes that were not reached as code. Printable runs of
// at least four characters followed by a NUL become labelled strings, as do
// longword-aligned runs of exactly four characters (tags such as "SEGA").
// Everything else is hex.
func formatData(data []byte, base uint32) string {
	var sb strings.Builder
	var pending []byte
	flush := func() {
		formatHexBytes(&sb, pending)
		pending = pending[:0]
	}

	for i := 0; i < len(data); {
		if !printable(data[i]) {
			pending = append(pending, data[i])
			i++
			continue
		}

		end := i
		for end < len(data) && printable(data[end]) {
			end++
		}
		run := data[i:end]
		addr := base + uint32(i)
		terminated := end < len(data) && data[end] == 0
		switch {
		case terminated && len(run) >= minStringLength:
			flush()
			fmt.Fprintf(&sb, "%-8s dc.b    %s,$00\n", stringLabel(addr), quote(run))
			i = end + 1
		case len(run) == 4 && addr%4 == 0:
			flush()
			fmt.Fprintf(&sb, "%-8s dc.b    %s\n", stringLabel(addr), quote(run))
			i = end
		default:
			pending = append(pending, run...)
			i = end
		}
	}
	flush()
	return sb.String()
}

func stringLabel(addr uint32) string {
	return fmt.Sprintf("str_%04X:", addr)
}

func quote(b []byte) string {
	return "'" + strings.ReplaceAll(string(b), "'", "''") + "'"
}

// formatHexBytes writes dc.b directives, 16 bytes per line.
func formatHexBytes(sb *strings.Builder, data []byte) {
	for len(data) > 0 {
		n := min(len(data), bytesPerLine)
		sb.WriteString("    dc.b    ")
		for j, b := range data[:n] {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(sb, "$%02x", b)
		}
		sb.WriteByte('\n')
		data = data[n:]
	}
}
