package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/vmunix/marquee/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Open a session",
	Long: `Open a session. Any well-formed email and non-empty password are
accepted; missing values are prompted for.`,
	Args: cobra.NoArgs,
	RunE: runLoginCmd,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and open a session",
	Args:  cobra.NoArgs,
	RunE:  runRegisterCmd,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Close the session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := NewClient(serverURL).Logout(cmd.Context()); err != nil {
			return fmt.Errorf("logout failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show server and session status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		resp, err := NewClient(serverURL).Session(cmd.Context())
		if err != nil {
			return fmt.Errorf("status check failed: %w", err)
		}
		if jsonOutput {
			printJSON(cmd.OutOrStdout(), resp)
			return nil
		}
		printStatus(cmd.OutOrStdout(), serverURL, resp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, statusCmd)
	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().String("email", "", "Email address")
		c.Flags().String("password", "", "Password")
	}
	registerCmd.Flags().String("name", "", "Display name")
}

// formValues reads the named string flags, prompting on stdin for the
// empty ones.
func formValues(cmd *cobra.Command, labels map[string]string, order ...string) (map[string]string, error) {
	values := make(map[string]string, len(order))
	var in *bufio.Reader
	for _, name := range order {
		v, _ := cmd.Flags().GetString(name)
		if v == "" {
			if in == nil {
				in = bufio.NewReader(cmd.InOrStdin())
			}
			var err error
			if v, err = promptRequired(in, cmd.ErrOrStderr(), labels[name]); err != nil {
				return nil, err
			}
		}
		values[name] = v
	}
	return values, nil
}

func runLoginCmd(cmd *cobra.Command, _ []string) error {
	v, err := formValues(cmd, map[string]string{"email": "Email", "password": "Password"}, "email", "password")
	if err != nil {
		return err
	}
	resp, err := NewClient(serverURL).Login(cmd.Context(), session.Credentials{
		Email:    v["email"],
		Password: v["password"],
	})
	return reportOpened(cmd.OutOrStdout(), "login", resp, err)
}

func runRegisterCmd(cmd *cobra.Command, _ []string) error {
	v, err := formValues(cmd, map[string]string{"name": "Name", "email": "Email", "password": "Password"}, "name", "email", "password")
	if err != nil {
		return err
	}
	resp, err := NewClient(serverURL).Register(cmd.Context(), session.Registration{
		Name:     v["name"],
		Email:    v["email"],
		Password: v["password"],
	})
	return reportOpened(cmd.OutOrStdout(), "register", resp, err)
}

func reportOpened(w io.Writer, what string, resp *SessionResponse, err error) error {
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "INVALID_CREDENTIALS" {
			return errors.New(apiErr.Message)
		}
		return fmt.Errorf("%s failed: %w", what, err)
	}
	if jsonOutput {
		printJSON(w, resp)
		return nil
	}
	fmt.Fprintf(w, "%s as %s\n", okStyle.Render("Logged in"), resp.Session.Email)
	return nil
}

func printStatus(w io.Writer, server string, s *SessionResponse) {
	fmt.Fprintf(w, "Server:   %s (ok)\n", server)
	if !s.Authorized || s.Session == nil {
		fmt.Fprintln(w, "Session:  logged out")
		return
	}
	who := s.Session.Email
	if s.Session.Name != "" {
		who = fmt.Sprintf("%s <%s>", s.Session.Name, s.Session.Email)
	}
	since := s.Session.CreatedAt.Local().Format(time.DateTime)
	fmt.Fprintf(w, "Session:  %s (%s since %s)\n", who, s.Session.Method, since)
}

