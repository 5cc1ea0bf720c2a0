package pbp

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	common "github.com/SvenGDK/zPBPTool/pkg/common"
)

// SetLogLevel configures the logging verbosity for the PBP library.
// Valid levels: "debug", "info", "warn", "error", "disabled"
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "disabled", "none", "off":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	default:
		return fmt.Errorf("invalid log level %q: must be one of: debug, info, warn, error, disabled", level)
	}
	return nil
}

type CreateOptions struct {
	SourcePaths [common.SegmentCount]string
	OutputFile  string
	Verbose     bool
}

type ExtractOptions struct {
	InputFile  string
	OutputPath string
	Verbose    bool
}

type InspectOptions struct {
	InputFile string
}

// Create Archive
func CreateArchive(options CreateOptions) error {
	a := NewPBPArchiver()
	err := a.Create(PBPArchiverOptions{
		SourcePaths: options.SourcePaths,
		OutputFile:  options.OutputFile,
		Verbose:     options.Verbose,
	})
	if err != nil {
		return err
	}

	if stat, err := os.Stat(options.OutputFile); err == nil {
		log.Info().Msgf("container created successfully: %s (size: %d bytes)", options.OutputFile, stat.Size())
	} else {
		log.Info().Msgf("container created successfully: %s", options.OutputFile)
	}
	return nil
}

// Extract Archive
func ExtractArchive(options ExtractOptions) error {
	a := NewPBPArchiver()
	err := a.Extract(PBPArchiverOptions{
		ArchivePath: options.InputFile,
		OutputPath:  options.OutputPath,
		Verbose:     options.Verbose,
	})
	if err != nil {
		return err
	}

	log.Info().Msgf("container extracted to %s", options.OutputPath)
	return nil
}

// Inspect Archive
func InspectArchive(options InspectOptions) error {
	a := NewPBPArchiver()
	return a.Inspect(PBPArchiverOptions{
		ArchivePath: options.InputFile,
	})
}
