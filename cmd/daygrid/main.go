package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"daygrid/internal/cli"
	"daygrid/internal/constants"
	apperrors "daygrid/internal/errors"
	"daygrid/internal/keyring"
	"daygrid/internal/logger"
	"daygrid/internal/remote"
	"daygrid/internal/remote/postgres"
	"daygrid/internal/remote/sqlite"
	"daygrid/internal/replica"
	"daygrid/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path or PostgreSQL connection string. For PostgreSQL, credentials must NOT be embedded in the connection string. Use the OS keyring, environment, or .pgpass instead." type:"string" default:"${config_path}"`
	Demo    bool   `help:"Run with sample data only; nothing is persisted."`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd     `cmd:"" help:"Initialize daygrid storage."`
	Tui       cli.TuiCmd      `cmd:"" help:"Launch the interactive grid." default:"1"`
	Activity  cli.ActivityCmd `cmd:"" help:"Manage tracked activities."`
	Mark      cli.MarkCmd     `cmd:"" help:"Toggle an activity's completion for a day."`
	Note      cli.NoteCmd     `cmd:"" help:"Manage daily notes."`
	Grid      cli.GridCmd     `cmd:"" help:"Print the completion grid."`
	ConfigCmd cli.ConfigCmd   `cmd:"" name:"config" help:"Manage the stored database connection."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily habit grid with best-effort remote persistence"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	adapter, err := buildAdapter()
	if err != nil {
		apperrors.Fatal(err)
	}

	cmdName := strings.Fields(ctx.Command())[0]

	// Init manages its own lifecycle; config commands never touch storage.
	// Everything else opens the remote up front and falls back to a seeded
	// in-memory session when it is unreachable.
	if adapter != nil && cmdName != "init" && cmdName != "config" {
		if err := adapter.Load(); err != nil {
			logger.Warn("Remote storage unavailable, running locally", "error", err)
			fmt.Fprintf(os.Stderr, "Warning: %v (changes will not persist)\n", err)
			adapter = nil
		}
	}

	var seeder replica.Seeder
	if adapter != nil {
		// A reachable remote that is merely empty should stay empty
		seeder = &replica.FixtureSeeder{}
	}

	appCtx := &cli.Context{
		Adapter: adapter,
		Store:   replica.New(replica.Config{Adapter: adapter, Seeder: seeder}),
		Clock:   utils.RealClock{},
	}

	if err := ctx.Run(appCtx); err != nil {
		apperrors.Fatal(err)
	}
}

// buildAdapter picks the storage backend: demo mode disables persistence,
// postgres connection strings (flag, environment, then keyring) win over the
// default sqlite path.
func buildAdapter() (remote.Adapter, error) {
	if CLI.Demo {
		return nil, nil
	}

	connStr := CLI.Config
	if connStr == constants.DefaultConfigPath {
		if env := os.Getenv(constants.EnvConnectionString); env != "" {
			connStr = env
		} else if stored, err := keyring.GetConnectionString(); err == nil {
			connStr = stored
		}
	}

	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if connStr == CLI.Config && postgres.HasEmbeddedCredentials(connStr) {
			return nil, fmt.Errorf("connection strings with embedded credentials are not allowed on the command line; store the full string with '%s config set-connection' or export %s",
				constants.AppName, constants.EnvConnectionString)
		}
		return postgres.New(connStr), nil
	}

	path, err := expandPath(connStr)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", constants.AppName)
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.New("cannot resolve home directory")
		}
		return filepath.Join(home, path[2:]), nil
	}
	return path, nil
}
