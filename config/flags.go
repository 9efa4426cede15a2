package config

import (
	"flag"
	"io"
	"strings"
)

// ParseResult reports what ParseArgs decided without forcing the caller
// to inspect err, matching the three outcomes a command-line parse can
// have: keep going, stop after printing help, or stop after a usage
// error.
type ParseResult int

const (
	ParseContinue ParseResult = iota
	ParseHelp
	ParseError
)

var modes = map[string]bool{"RUN": true, "DEBUG": true, "DISASM": true}

// ParseArgs builds a Config from a command line of the form
// "[mode] [flags...]", where mode is one of run, debug or disasm and
// defaults to run when omitted. Unlike a flag.FlagSet used on its own,
// every flag below is registered before the single Parse call so a
// flag positioned after the mode name is never silently dropped,
// regardless of which mode was selected. The break and reverse-step
// flags are copied into the Config only in debug mode, and the
// annotation flags only in disasm mode; in other modes they are parsed
// and ignored. output receives help text when -help is passed.
func ParseArgs(args []string, output io.Writer) (Config, string, ParseResult, error) {
	cfg := Default()

	mode := "RUN"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		if up := strings.ToUpper(args[0]); modes[up] {
			mode = up
			args = args[1:]
		}
	}

	fs := flag.NewFlagSet(strings.ToLower(mode), flag.ContinueOnError)
	fs.SetOutput(output)

	romPath := fs.String("rompath", ".", "directory containing the rom set")
	romSet := fs.String("romset", "galaga", "rom set name: galaga, galagao, galagamw, galagamk")
	dipPath := fs.String("dip", "", "path to a dip-switches json file")
	loadPath := fs.String("load", "", "path to a snapshot to load at startup")
	skipChecksums := fs.Bool("skipchecksums", false, "skip rom size/crc32 verification")
	writableROM := fs.Bool("writablerom", false, "allow writes to rom regions instead of faulting")
	wavOutPath := fs.String("wavout", "", "path to write a wav file sunk from the sound registers")

	breakAll := fs.String("break", "", "breakpoint address shared across all cpus")
	breakCPU1 := fs.String("breakcpu1", "", "breakpoint address for cpu1")
	breakCPU2 := fs.String("breakcpu2", "", "breakpoint address for cpu2")
	breakCPU3 := fs.String("breakcpu3", "", "breakpoint address for cpu3")
	reverseStep := fs.Bool("reversestep", false, "enable reverse-step (unimplemented)")

	annCPU1 := fs.String("annotationscpu1", "", "path to cpu1 disassembly annotations")
	annCPU2 := fs.String("annotationscpu2", "", "path to cpu2 disassembly annotations")
	annCPU3 := fs.String("annotationscpu3", "", "path to cpu3 disassembly annotations")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, mode, ParseHelp, nil
		}
		return cfg, mode, ParseError, err
	}

	cfg.ROMPath = *romPath
	cfg.ROMSet = *romSet
	cfg.DIPSwitchesPath = *dipPath
	cfg.LoadStatePath = *loadPath
	cfg.SkipChecksums = *skipChecksums
	cfg.WritableROM = *writableROM
	cfg.WavOutPath = *wavOutPath

	if mode == "DEBUG" {
		cfg.Debug = true
		cfg.Break = *breakAll
		cfg.BreakCPU1 = *breakCPU1
		cfg.BreakCPU2 = *breakCPU2
		cfg.BreakCPU3 = *breakCPU3
		cfg.ReverseStep = *reverseStep
	}

	if mode == "DISASM" {
		cfg.AnnotationsCPU1 = *annCPU1
		cfg.AnnotationsCPU2 = *annCPU2
		cfg.AnnotationsCPU3 = *annCPU3
	}

	return cfg, mode, ParseContinue, nil
}
