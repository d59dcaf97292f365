// Package cli implements the uploader command line tool.
package cli

import (
	"fmt"
	"io"
	"strings"

	"portfolio/internal/client"
	"portfolio/internal/domain/category"
	"portfolio/internal/pkg/logger"
	"portfolio/internal/uploadqueue"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	keyConfig      = "config"
	keyBackendURL  = "backend-url"
	keyUploadDelay = "upload-delay"
	keyOwner       = "owner"
	keyLogLevel    = "log-level"
)

// app is the state shared by every subcommand, filled in PersistentPreRunE.
type app struct {
	v      *viper.Viper
	client *client.Client
	logger *zap.Logger
}

// NewRootCommand builds the command tree. Settings resolve as
// flag > environment > config file > default.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "uploader",
		Short:         "Manage portfolio content through the API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (yaml)")
	flags.String(keyBackendURL, "", "portfolio API base URL [PORTFOLIO_BACKEND_URL]")
	flags.Duration(keyUploadDelay, uploadqueue.DefaultThrottle.Delay, "pause between two uploads [UPLOAD_DELAY]")
	flags.String(keyOwner, "", "owner name used in default descriptions [OWNER_NAME]")
	flags.String(keyLogLevel, "warn", "log level [LOG_LEVEL]")

	_ = a.v.BindPFlags(flags)
	for key, env := range map[string]string{
		keyBackendURL:  "PORTFOLIO_BACKEND_URL",
		keyUploadDelay: "UPLOAD_DELAY",
		keyOwner:       "OWNER_NAME",
		keyLogLevel:    "LOG_LEVEL",
	} {
		_ = a.v.BindEnv(key, env)
	}

	root.AddCommand(
		newUploadCommand(a),
		newListCommand(a),
		newDeleteCommand(a),
		newSeedCommand(a),
		newCategoriesCommand(),
	)
	return root
}

func (a *app) init() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config dosyası okunamadı: %w", err)
		}
	}

	l, err := logger.New(a.v.GetString(keyLogLevel), "development")
	if err != nil {
		return err
	}
	a.logger = l

	c, err := client.New(a.v.GetString(keyBackendURL), client.WithLogger(l))
	if err != nil {
		return err
	}
	a.client = c
	return nil
}

// requireClient fails fast before any request is attempted.
func (a *app) requireClient() error {
	if !a.client.Configured() {
		return fmt.Errorf("%w: set --%s or PORTFOLIO_BACKEND_URL", client.ErrNotConfigured, keyBackendURL)
	}
	return nil
}

func parseKind(s string) (category.Kind, error) {
	k := category.Kind(strings.ToLower(s))
	if !k.Valid() {
		return "", fmt.Errorf("unknown media kind %q (want %s or %s)", s, category.KindPhoto, category.KindVideo)
	}
	return k, nil
}
