package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/config"
	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
)

// setupLogging configures logging from the config file and CLI flags and
// stores the logger and a trace id in the command context.
func setupLogging(cmd *cobra.Command, loggingCfg config.LoggingConfig) logging.LogPathResult {
	debug, _ := cmd.Flags().GetBool("debug")
	ownsTerminal := ownsTerminal(cmd)

	if loggingCfg.File == "" {
		loggingCfg.File = config.DefaultLogFile()
	}
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		if !ownsTerminal {
			loggingCfg.File = ""
		}
	}

	result := logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	if result.FallbackUsed && ownsTerminal {
		// stderr is the screen.
		result.Logger = zerolog.Nop()
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	switch {
	case result.UsingFile && debug:
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	case result.FallbackUsed && !ownsTerminal:
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")
	return result
}

func ownsTerminal(cmd *cobra.Command) bool {
	return cmd.Annotations[annotationOwnsTerminal] == "true"
}
