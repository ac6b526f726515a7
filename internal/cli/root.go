// Package cli implements the stockroom command-line interface: a
// presentation collaborator over the inventory engine that renders derived
// products and dispatches purchase and cart intents.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/stockroom/internal/engine"
	"github.com/mesh-intelligence/stockroom/internal/logging"
	"github.com/mesh-intelligence/stockroom/internal/storage"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// app holds the attached store and engine for the running command.
type app struct {
	cfg    types.Config
	store  storage.Store
	engine *engine.Engine
	log    *zap.SugaredLogger
}

var current app

// NewRootCmd creates the top-level "stockroom" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stockroom",
		Short: "A local-first storefront inventory simulator",
		Long: "Stockroom browses an external product catalog and keeps stock,\n" +
			"cart, purchase history, and notifications in local storage.",
		SilenceUsage:       true,
		PersistentPreRunE:  attach,
		PersistentPostRunE: func(*cobra.Command, []string) error { return detach() },
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .stockroom)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: .stockroom-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSyncCmd())
	root.AddCommand(newCategoriesCmd())
	root.AddCommand(newProductsCmd())
	root.AddCommand(newBuyCmd())
	root.AddCommand(newReturnCmd())
	root.AddCommand(newRestockCmd())
	root.AddCommand(newCartCmd())
	root.AddCommand(newNotificationsCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newErrorsCmd())

	return root
}

// systemError marks failures of the environment (config, logger, storage)
// rather than of the requested operation.
type systemError struct {
	err error
}

func (e systemError) Error() string { return e.err.Error() }
func (e systemError) Unwrap() error { return e.err }

// Execute runs the root command and exits with the appropriate code:
// 0 on success, 1 on an operation failure, 2 on an environment failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		var sys systemError
		if errors.As(err, &sys) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// attach loads config, builds the logger, opens the store, and constructs
// the engine. The version command runs without any of that.
func attach(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(resolveConfigDir())
	if err != nil {
		return systemError{err}
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}
	if cfg.DataDir == "" {
		cfg.DataDir = ".stockroom-db"
	}

	log, err := logging.New()
	if err != nil {
		return systemError{fmt.Errorf("build logger: %w", err)}
	}

	var store storage.Store
	switch cfg.Backend {
	case types.BackendMemory:
		store = storage.NewMemory()
	default:
		store, err = storage.OpenSQLite(cfg.DataDir, cfg.QuotaBytes, log)
		if err != nil {
			return systemError{fmt.Errorf("open storage: %w", err)}
		}
	}

	current = app{
		cfg:    cfg,
		store:  store,
		engine: engine.New(store, log),
		log:    log,
	}
	return nil
}

// detach releases the store and flushes the logger.
func detach() error {
	if current.log != nil {
		_ = current.log.Sync()
	}
	if current.store != nil {
		return current.store.Close()
	}
	return nil
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv("STOCKROOM_CONFIG_DIR"); v != "" {
		return v
	}
	return ".stockroom"
}

// printJSON writes v as indented JSON to the command's stdout.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportEngineError prints the message and returns an error carrying it so
// the command exits nonzero.
func reportEngineError(msg string) error {
	return fmt.Errorf("%s", msg)
}
