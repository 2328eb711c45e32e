package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/grimdork/climate/arg"
	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/Urethramancer/m68kcore/cpu"
	"github.com/Urethramancer/m68kcore/memory"
)

// NTSC master clock / 7 / 60 frames.
const frameCycles = 127841

// vblankLevel is the interrupt level of the VDP's vertical blank.
const vblankLevel = 6

func main() {
	opt := arg.New("run68")
	opt.SetDefaultHelp(true)
	opt.SetOption(arg.GroupDefault, "f", "format", "Image format: rom (cartridge with vector table) or raw.", "rom", false, arg.VarString, []any{"rom", "raw"})
	opt.SetOption(arg.GroupDefault, "a", "address", "Load address of a raw image, in hex.", "1000", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "e", "entry", "Start address in hex. Defaults to the reset vector, or the load address for raw images.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "s", "stack", "Initial stack pointer of a raw image, in hex.", "10000", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "c", "cycles", "Cycles to run.", frameCycles*60, false, arg.VarInt, nil)
	opt.SetOption(arg.GroupDefault, "b", "break", "Comma-separated breakpoint addresses in hex.", "", false, arg.VarString, nil)
	opt.SetOption(arg.GroupDefault, "i", "vblank", "Raise a level 6 interrupt every frame.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "d", "dump", "Final state format: text or pp.", "text", false, arg.VarString, []any{"text", "pp"})
	opt.SetOption(arg.GroupDefault, "v", "verbose", "Log interrupts and unimplemented instructions.", false, false, arg.VarBool, nil)
	opt.SetOption(arg.GroupDefault, "t", "trace", "Log every instruction.", false, false, arg.VarBool, nil)
	opt.SetPositional("IMAGE", "Program or cartridge image to run.", "", true, arg.VarString)
	err := opt.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, arg.ErrNoArgs) {
			opt.PrintHelp()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch {
	case opt.GetBool("trace"):
		cpu.Log.SetLevel(logrus.TraceLevel)
	case opt.GetBool("verbose"):
		cpu.Log.SetLevel(logrus.DebugLevel)
	}

	image, err := os.ReadFile(opt.GetPosString("IMAGE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading image: %v\n", err)
		os.Exit(1)
	}

	c, err := load(opt, image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if list := opt.GetString("break"); list != "" {
		for _, s := range strings.Split(list, ",") {
			addr, err := parseHex(s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Bad breakpoint %q: %v\n", s, err)
				os.Exit(1)
			}
			if err := c.ToggleBreakpoint(addr); err != nil {
				fmt.Fprintf(os.Stderr, "Breakpoint %06X: %v\n", addr, err)
				os.Exit(1)
			}
		}
	}

	run(c, opt.GetInt("cycles"), opt.GetBool("vblank"))

	if opt.GetString("dump") == "pp" {
		p := pp.New()
		p.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
		p.Println(c.State())
		return
	}
	c.DumpRegisters(os.Stdout)
}

// load builds the bus for the image and resets the CPU on it.
func load(opt *arg.Options, image []byte) (*cpu.CPU, error) {
	var c *cpu.CPU
	switch opt.GetString("format") {
	case "raw":
		addr, err := parseHex(opt.GetString("address"))
		if err != nil {
			return nil, fmt.Errorf("load address: %w", err)
		}
		if uint64(addr)+uint64(len(image)) > memory.Size {
			return nil, fmt.Errorf("%d bytes do not fit at %06X", len(image), addr)
		}
		stack, err := parseHex(opt.GetString("stack"))
		if err != nil {
			return nil, fmt.Errorf("stack: %w", err)
		}
		ram := memory.NewRAM()
		ram.Load(addr, image)
		c = cpu.New(ram)
		c.Reset()
		c.A[7] = stack
		c.SetPC(addr)
	default:
		h, err := memory.ParseHeader(image)
		if err != nil {
			return nil, err
		}
		g := memory.NewGenesis(image)
		g.Log = cpu.Log.WithField("bus", "genesis")
		cpu.Log.WithFields(logrus.Fields{
			"name":     h.OverseasName,
			"serial":   h.Serial,
			"region":   g.Region,
			"checksum": h.Valid(),
		}).Info("Cartridge loaded")
		c = cpu.New(g)
		c.Reset()
	}

	if e := opt.GetString("entry"); e != "" {
		addr, err := parseHex(e)
		if err != nil {
			return nil, fmt.Errorf("entry: %w", err)
		}
		c.SetPC(addr)
	}
	c.Running = true
	return c, nil
}

// run spends the budget a frame at a time, carrying each frame's overrun
// into the next.
func run(c *cpu.CPU, cycles int, vblank bool) {
	carry := 0
	for spent := 0; spent < cycles && c.Running; {
		n := min(frameCycles, cycles-spent)
		carry = c.RunFor(n + carry)
		spent += n
		if vblank {
			c.RequestInterrupt(vblankLevel)
		}
	}
	if !c.Running {
		cpu.Log.WithField("pc", fmt.Sprintf("%06X", c.PC)).Info("Stopped at breakpoint")
	}
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v) & cpu.AddressMask, err
}
