package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	common "github.com/SvenGDK/zPBPTool/pkg/common"
	pbp "github.com/SvenGDK/zPBPTool/pkg/pbp"
)

// Absent-slot sentinel on the pack command line.
const nullSource = "NULL"

func main() {
	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "pack":
		packCommand()
	case "unpack":
		unpackCommand()
	case "analyze":
		analyzeCommand()
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}
}

func printUsage(out *os.File) {
	fmt.Fprintf(out, `pbptool - PBP Container Tool

Usage:
  pbptool <command> [options] <args>

Commands:
  pack     Assemble a container from segment files
  unpack   Extract all present segments into a directory
  analyze  Print header fields and per-segment offsets
  help     Show this message

Examples:
  # Assemble a container; NULL leaves a slot empty
  pbptool pack out.pbp PARAM.SFO ICON0.PNG NULL NULL NULL NULL DATA.PSP DATA.PSAR

  # Extract every present segment
  pbptool unpack input.pbp ./contents

  # Inspect the header and offset table
  pbptool analyze input.pbp

Options:
  --verbose    Verbose logging (pack and unpack)

`)
}

func packCommand() {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Verbose logging")
	fs.Parse(os.Args[2:])

	args := fs.Args()
	if len(args) < 1+common.SegmentCount {
		fmt.Fprintf(os.Stderr, "Usage: pbptool pack <output.pbp> <param.sfo> <icon0.png> <icon1.pmf> <pic0.png> <pic1.png> <snd0.at3> <data.psp> <data.psar>\n")
		os.Exit(1)
	}

	if *verbose {
		pbp.SetLogLevel("debug")
	}

	var sources [common.SegmentCount]string
	for i := 0; i < common.SegmentCount; i++ {
		if args[1+i] != nullSource {
			sources[i] = args[1+i]
		}
	}

	err := pbp.CreateArchive(pbp.CreateOptions{
		SourcePaths: sources,
		OutputFile:  args[0],
		Verbose:     *verbose,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pack container")
	}
}

func unpackCommand() {
	fs := flag.NewFlagSet("unpack", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "Verbose logging")
	fs.Parse(os.Args[2:])

	args := fs.Args()
	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: pbptool unpack <input.pbp> <output_dir>\n")
		os.Exit(1)
	}

	if *verbose {
		pbp.SetLogLevel("debug")
	}

	err := pbp.ExtractArchive(pbp.ExtractOptions{
		InputFile:  args[0],
		OutputPath: args[1],
		Verbose:    *verbose,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to unpack container")
	}
}

func analyzeCommand() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	fs.Parse(os.Args[2:])

	args := fs.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Usage: pbptool analyze <input.pbp>\n")
		os.Exit(1)
	}

	err := pbp.InspectArchive(pbp.InspectOptions{
		InputFile: args[0],
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to analyze container")
	}
}
