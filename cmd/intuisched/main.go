package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sremy91/intuis-schedule-card/internal/cli"
	"github.com/sremy91/intuis-schedule-card/internal/errors"
	"github.com/sremy91/intuis-schedule-card/internal/hub"
	"github.com/sremy91/intuis-schedule-card/internal/keyring"
	"github.com/sremy91/intuis-schedule-card/internal/logger"
	"github.com/sremy91/intuis-schedule-card/internal/reconciler"
	"github.com/sremy91/intuis-schedule-card/internal/storage"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"Schedule source: sqlite path, postgres:// connection string, or http(s):// gateway URL." type:"path" default:"~/.config/intuisched/gateway.db"`
	Token    string `help:"Gateway API token. Falls back to the OS keyring." env:"INTUISCHED_TOKEN"`
	Protocol string `help:"Edit protocol: multi or single." enum:"multi,single" default:"multi"`
	Debug    bool   `help:"Enable debug logging."`

	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive schedule editor." default:"1"`
	Week      cli.WeekCmd      `cmd:"" help:"Show the expanded weekly schedule."`
	Zones     cli.ZonesCmd     `cmd:"" help:"List heating zones."`
	At        cli.AtCmd        `cmd:"" help:"Show the zone active at a given day and time."`
	Span      cli.SpanCmd      `cmd:"" help:"Show the full run containing a block."`
	Set       cli.SetCmd       `cmd:"" help:"Apply a zone to a time span."`
	Schedules cli.SchedulesCmd `cmd:"" help:"List or switch schedules."`
	Refresh   cli.RefreshCmd   `cmd:"" help:"Refresh schedules from the gateway."`
	Init      cli.InitCmd      `cmd:"" help:"Initialize the local schedule store."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health diagnostics."`
	Keyring   struct {
		Set    cli.TokenSetCmd    `cmd:"" help:"Store the gateway token in the OS keyring."`
		Get    cli.TokenGetCmd    `cmd:"" help:"Show whether a gateway token is stored."`
		Delete cli.TokenDeleteCmd `cmd:"" help:"Remove the stored gateway token."`
	} `cmd:"" help:"Manage the gateway API token."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("intuisched"),
		kong.Description("Weekly heating schedule editor for Intuis gateways"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	appCtx, err := buildContext()
	if err != nil {
		errors.Fatal(err)
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

// buildContext routes the config string to a schedule source: an HTTP
// gateway URL, a PostgreSQL connection string, or a sqlite file path.
func buildContext() (*cli.Context, error) {
	protocol := reconciler.ProtocolMultiCall
	if CLI.Protocol == "single" {
		protocol = reconciler.ProtocolSingleCall
	}

	if strings.HasPrefix(CLI.Config, "http://") || strings.HasPrefix(CLI.Config, "https://") {
		token := CLI.Token
		if token == "" {
			stored, err := keyring.GetGatewayToken()
			if err == nil {
				token = stored
			}
		}
		return &cli.Context{
			Svc:      hub.NewClient(CLI.Config, token),
			Protocol: protocol,
		}, nil
	}

	var store storage.Provider
	if storage.IsPostgresConnStr(CLI.Config) {
		if storage.HasEmbeddedCredentials(CLI.Config) {
			return nil, fmt.Errorf("connection string contains embedded credentials, use .pgpass or environment variables instead")
		}
		store = storage.NewPostgresStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	return &cli.Context{
		Svc:      hub.NewLocal(store),
		Store:    store,
		Protocol: protocol,
	}, nil
}
