package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grimdork/climate/arg"

	"github.com/Urethramancer/m68kcore/cpu"
	"github.com/Urethramancer/m68kcore/disassembler"
	"github.com/Urethramancer/m68kcore/memory"
)

func main() {
	opt := arg.New("dis68")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "o", "origin", "Address of the first byte, in hex.", "0", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "e", "entry", "Comma-separated entry points in hex. Defaults to the origin.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "r", "rom", "Treat the input as a cartridge and start from its reset and interrupt vectors.", false, false, arg.VarBool, nil)
	opt.SetPositional("INPUT", "Binary file to disassemble.", "", true, arg.VarString)
	opt.SetPositional("OUTPUT", "Output file. Defaults to standard output.", "", false, arg.VarString)
	err := opt.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code, err := os.ReadFile(opt.GetPosString("INPUT"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input file: %v\n", err)
		os.Exit(1)
	}

	var o disassembler.Options
	if o.Origin, err = parseHex(opt.GetString("origin")); err != nil {
		fmt.Fprintf(os.Stderr, "Bad origin: %v\n", err)
		os.Exit(1)
	}
	if list := opt.GetString("entry"); list != "" {
		for _, s := range strings.Split(list, ",") {
			addr, err := parseHex(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Bad entry point %q: %v\n", s, err)
				os.Exit(1)
			}
			o.Entries = append(o.Entries, addr)
		}
	}
	if opt.GetBool("rom") {
		entries, err := vectors(code)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		o.Entries = append(o.Entries, entries...)
	}

	text, err := disassembler.DisassembleWith(code, o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Disassembly error: %v\n", err)
		os.Exit(1)
	}

	out := opt.GetPosString("OUTPUT")
	if out == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(out, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Disassembly written to %s\n", out)
}

// vectors returns the reset entry and the interrupt handlers of a cartridge.
func vectors(rom []byte) ([]uint32, error) {
	h, err := memory.ParseHeader(rom)
	if err != nil {
		return nil, err
	}
	entries := []uint32{h.InitialPC & cpu.AddressMask}
	for v := cpu.VectorAutovector + 1; v < cpu.VectorTrap; v++ {
		at := v * 4
		addr := uint32(rom[at])<<24 | uint32(rom[at+1])<<16 | uint32(rom[at+2])<<8 | uint32(rom[at+3])
		entries = append(entries, addr&cpu.AddressMask)
	}
	return entries, nil
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v) & cpu.AddressMask, err
}
