package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dogecat0/Aperilex-sub002/pkg/runtime/terminal/commands"
	"github.com/Dogecat0/Aperilex-sub002/pkg/runtime/terminal/export"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *Reporter
	exporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: NewReporter(opts.Output),
		exporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filing",
		Short: "Filing analysis rendering tool",
	}

	cmd.AddCommand(commands.NewRenderCmd(cli.reporter, cli.exporter))
	cmd.AddCommand(commands.NewSectionsCmd())

	return cmd
}
