package commands

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/roksva123/go-clickup/clickup"
	"github.com/roksva123/go-clickup/internal/config"
	"github.com/roksva123/go-clickup/internal/output"
)

// options carries the persistent flags and the loaded configuration.
type options struct {
	token   string
	baseURL string
	format  string
	verbose bool

	cfg *config.Config
}

// client builds a ClickUp client from flags, falling back to the environment.
func (o *options) client() (*clickup.Client, error) {
	token := o.token
	if token == "" {
		token = o.cfg.ClickUpToken
	}
	if token == "" {
		return nil, errors.New("no ClickUp token: pass --token or set CLICKUP_TOKEN")
	}
	c := clickup.NewClient(token)
	c.BaseURL = o.cfg.ClickUpBaseURL
	if o.baseURL != "" {
		c.BaseURL = o.baseURL
	}
	if o.cfg.ClickUpTimeout > 0 {
		c.HTTP.Timeout = o.cfg.ClickUpTimeout
	}
	if o.verbose {
		c.Logger = log.New(os.Stderr, "", log.LstdFlags)
	}
	return c, nil
}

// teamID takes the team from the first argument or CLICKUP_TEAM_ID.
func (o *options) teamID(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if o.cfg.ClickUpTeamID != "" {
		return o.cfg.ClickUpTeamID, nil
	}
	return "", errors.New("no team id: pass it as an argument or set CLICKUP_TEAM_ID")
}

func (o *options) print(cmd *cobra.Command, v any) error {
	return output.Write(cmd.OutOrStdout(), o.format, v)
}

func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "clickup",
		Short:        "Read ClickUp workspaces from the command line",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			o.cfg = cfg
			if o.format != output.JSON && o.format != output.YAML {
				return errors.New("--output must be json or yaml")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&o.token, "token", "", "ClickUp API token (default $CLICKUP_TOKEN)")
	root.PersistentFlags().StringVar(&o.baseURL, "base-url", "", "ClickUp API base URL (default $CLICKUP_BASE_URL)")
	root.PersistentFlags().StringVarP(&o.format, "output", "o", output.JSON, "output format: json or yaml")
	root.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log each request to stderr")

	root.AddCommand(
		teamsCmd(o),
		spacesCmd(o),
		foldersCmd(o),
		listsCmd(o),
		tasksCmd(o),
		taskCmd(o),
		commentsCmd(o),
		goalsCmd(o),
		timeEntriesCmd(o),
		hierarchyCmd(o),
		workloadCmd(o),
		hashPasswordCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

const dateLayout = "2006-01-02"

func parseDate(flag, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.New("--" + flag + " must be YYYY-MM-DD")
	}
	return t, nil
}
