package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/craftui/chatpayload/pkg/logger"
	"github.com/craftui/chatpayload/pkg/models"
	"github.com/craftui/chatpayload/pkg/payload"
)

const rootLongDesc string = `Print the reference payload for the chat API.

The report shows the exact JSON body to POST to /api/chat, followed by
the table of configured model aliases. Output on stdout is deterministic,
so it is safe to diff or pipe into other tools.

Examples:
  chatpayload
  chatpayload --debug`

const rootShortDesc string = "Print the chat API reference payload"

type payloadCommander struct {
	debug bool
}

func NewRootCmd() *cobra.Command {
	cmder := &payloadCommander{}

	cmd := &cobra.Command{
		Use:   "chatpayload",
		Short: rootShortDesc,
		Long:  rootLongDesc,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmder.run(cmd)
		},
	}

	cmd.Flags().BoolVar(&cmder.debug, "debug", false, "Enable debug logging")

	return cmd
}

func (c *payloadCommander) run(cmd *cobra.Command) error {
	log := logger.NewLogger(c.debug)
	defer log.Sync()

	req := payload.Sample()
	reg := models.Defaults()

	log.Debug("rendering payload report",
		zap.String("model", req.Model),
		zap.Int("message_count", len(req.Messages)),
		zap.Int("alias_count", len(reg.All())),
	)

	if err := payload.Render(cmd.OutOrStdout(), req, reg); err != nil {
		return fmt.Errorf("could not render payload report: %w", err)
	}

	return nil
}

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
