package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/kalambet/vizprefs/internal/api"
	"github.com/kalambet/vizprefs/internal/session"
)

// --- session ---

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Work with live sessions on a running server",
	Long: `Work with live sessions on a running server.

Examples:
  vizprefs session new
  vizprefs session get <id> background_color
  vizprefs session set <id> edge_scale 2.5
  vizprefs session set <id> node_text_columns "label,weight" --kind columns
  vizprefs session close <id>`,
}

var sessionNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Open a session seeded from the stored defaults",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		info, err := openSession(cmd.Context(), client)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), info.ID)
		return nil
	},
}

var sessionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List open sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		infos, err := listSessions(cmd.Context(), client)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No open sessions.")
			return nil
		}
		for _, info := range infos {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s  %s %s\n",
				colorize(colorBold, info.ID),
				info.CreatedAt.Local().Format(time.DateTime),
				colorize(colorDim, "(last used "+info.LastUsed.Local().Format(time.DateTime)+")"))
		}
		return nil
	},
}

var sessionGetCmd = &cobra.Command{
	Use:   "get <id> [name...]",
	Short: "Show properties of a session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		props, err := sessionProperties(cmd.Context(), client, args[0], args[1:]...)
		if err != nil {
			return err
		}
		printProperties(cmd.OutOrStdout(), props)
		return nil
	},
}

var sessionSetCmd = &cobra.Command{
	Use:   "set <id> <name> <value>",
	Short: "Set a property in a session",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		p, err := setSessionProperty(cmd.Context(), client, args[0], args[1], kind, args[2])
		if err != nil {
			return err
		}
		printSuccess("Set %s = %s (%s)", p.Name, p.Value, p.Kind)
		return nil
	},
}

var sessionCloseCmd = &cobra.Command{
	Use:   "close <id>",
	Short: "Close a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newAPIClient()
		if err != nil {
			return err
		}
		if err := closeSession(cmd.Context(), client, args[0]); err != nil {
			return err
		}
		printSuccess("Closed session %s", args[0])
		return nil
	},
}

func init() {
	sessionSetCmd.Flags().String("kind", "", "value kind (defaults to the property's current kind)")

	sessionCmd.AddCommand(sessionNewCmd)
	sessionCmd.AddCommand(sessionListCmd)
	sessionCmd.AddCommand(sessionGetCmd)
	sessionCmd.AddCommand(sessionSetCmd)
	sessionCmd.AddCommand(sessionCloseCmd)
}

func sessionPath(id string, parts ...string) string {
	p := "/sessions/" + url.PathEscape(id)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func openSession(ctx context.Context, c *apiClient) (session.Info, error) {
	resp, err := c.post(ctx, "/sessions", nil)
	if err != nil {
		return session.Info{}, err
	}
	var info session.Info
	if err := decodeJSON(resp, &info); err != nil {
		return session.Info{}, err
	}
	return info, nil
}

func listSessions(ctx context.Context, c *apiClient) ([]session.Info, error) {
	resp, err := c.get(ctx, "/sessions")
	if err != nil {
		return nil, err
	}
	var body struct {
		Sessions []session.Info `json:"sessions"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return nil, err
	}
	return body.Sessions, nil
}

// sessionProperties fetches the named properties, or all of them when no
// names are given.
func sessionProperties(ctx context.Context, c *apiClient, id string, names ...string) ([]api.Property, error) {
	if len(names) == 0 {
		resp, err := c.get(ctx, sessionPath(id, "properties"))
		if err != nil {
			return nil, err
		}
		var body struct {
			Properties []api.Property `json:"properties"`
		}
		if err := decodeJSON(resp, &body); err != nil {
			return nil, err
		}
		return body.Properties, nil
	}

	props := make([]api.Property, 0, len(names))
	for _, name := range names {
		resp, err := c.get(ctx, sessionPath(id, "properties", name))
		if err != nil {
			return nil, err
		}
		var p api.Property
		if err := decodeJSON(resp, &p); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		props = append(props, p)
	}
	return props, nil
}

func setSessionProperty(ctx context.Context, c *apiClient, id, name, kind, value string) (api.Property, error) {
	resp, err := c.put(ctx, sessionPath(id, "properties", name), api.SetPropertyRequest{Kind: kind, Value: &value})
	if err != nil {
		return api.Property{}, err
	}
	var p api.Property
	if err := decodeJSON(resp, &p); err != nil {
		return api.Property{}, err
	}
	return p, nil
}

func closeSession(ctx context.Context, c *apiClient, id string) error {
	resp, err := c.delete(ctx, sessionPath(id))
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

func printProperties(w io.Writer, props []api.Property) {
	for _, p := range props {
		printProperty(w, p.Name, p.Kind.String(), p.Value, "")
	}
}
