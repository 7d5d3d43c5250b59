// Command procdev queries the kernel's device registration report.
//
// Usage:
//
//	procdev driver <char|block> <major>
//	procdev majors <char|block> <driver>
//	procdev dump
//
// The listing path and output format come from the environment (or a .env
// file): PROCDEV_PATH (default /proc/devices), PROCDEV_FORMAT (yaml or
// json), PROCDEV_LOG_LEVEL.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/procdev"
	"github.com/dmitrymomot/procdev/pkg/config"
	"github.com/dmitrymomot/procdev/pkg/logger"
)

type appConfig struct {
	Path     string `env:"PROCDEV_PATH" envDefault:"/proc/devices"`
	Format   string `env:"PROCDEV_FORMAT" envDefault:"yaml"`
	LogLevel string `env:"PROCDEV_LOG_LEVEL" envDefault:"info"`
}

// snapshot is the dump encoding of both forward tables.
type snapshot struct {
	Character map[int]string `yaml:"character" json:"character"`
	Block     map[int]string `yaml:"block" json:"block"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithTextFormatter(),
		logger.WithOutput(os.Stderr),
	)

	if len(args) == 0 {
		usage()
		return 2
	}

	reg, err := procdev.Open(cfg.Path)
	if err != nil {
		log.Error("cannot read device listing",
			slog.String("path", cfg.Path),
			slog.Any("error", err))
		return 1
	}

	switch args[0] {
	case "driver":
		return runDriver(reg, args[1:], out, log)
	case "majors":
		return runMajors(reg, args[1:], out, log)
	case "dump":
		return runDump(reg, cfg.Format, out, log)
	default:
		usage()
		return 2
	}
}

func runDriver(reg *procdev.ProcDev, args []string, out io.Writer, log *slog.Logger) int {
	if len(args) != 2 {
		usage()
		return 2
	}

	dt, err := deviceType(args[0])
	if err != nil {
		log.Error("bad device type", slog.Any("error", err))
		return 2
	}

	major, err := strconv.Atoi(args[1])
	if err != nil {
		log.Error("bad major number", slog.String("value", args[1]))
		return 2
	}

	driver, ok, err := reg.Driver(dt, major)
	if err != nil {
		log.Error("lookup failed", slog.Any("error", err))
		return 1
	}
	if !ok {
		fmt.Fprintf(out, "major %d is not registered for %s devices\n", major, dt)
		return 0
	}

	fmt.Fprintln(out, driver)
	return 0
}

func runMajors(reg *procdev.ProcDev, args []string, out io.Writer, log *slog.Logger) int {
	if len(args) != 2 {
		usage()
		return 2
	}

	dt, err := deviceType(args[0])
	if err != nil {
		log.Error("bad device type", slog.Any("error", err))
		return 2
	}

	majors, ok, err := reg.Majors(dt, args[1])
	if err != nil {
		log.Error("lookup failed", slog.Any("error", err))
		return 1
	}
	if !ok {
		fmt.Fprintf(out, "driver %q is not registered for %s devices\n", args[1], dt)
		return 0
	}

	for _, major := range majors {
		fmt.Fprintln(out, major)
	}
	return 0
}

func runDump(reg *procdev.ProcDev, format string, out io.Writer, log *slog.Logger) int {
	character, err := reg.Table(procdev.DeviceCharacter)
	if err != nil {
		log.Error("dump failed", slog.Any("error", err))
		return 1
	}
	block, err := reg.Table(procdev.DeviceBlock)
	if err != nil {
		log.Error("dump failed", slog.Any("error", err))
		return 1
	}

	snap := snapshot{Character: character, Block: block}

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		err = enc.Encode(snap)
	case "yaml":
		enc := yaml.NewEncoder(out)
		err = enc.Encode(snap)
		if err == nil {
			err = enc.Close()
		}
	default:
		log.Error("unknown output format", slog.String("format", format))
		return 2
	}
	if err != nil {
		log.Error("cannot encode dump", slog.Any("error", err))
		return 1
	}
	return 0
}

func deviceType(s string) (procdev.DeviceType, error) {
	switch s {
	case "char", "character":
		return procdev.DeviceCharacter, nil
	case "block":
		return procdev.DeviceBlock, nil
	default:
		return 0, fmt.Errorf("unknown device type %q: want char or block", s)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: procdev <command> [args]

commands:
  driver <char|block> <major>   print the driver registered for a major number
  majors <char|block> <driver>  print the major numbers registered for a driver
  dump                          print both tables (PROCDEV_FORMAT: yaml|json)
`)
}
