package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"authfront/internal/apiclient"
	"authfront/internal/i18n"
	"authfront/internal/logger"
	"authfront/internal/screens"
	"authfront/internal/services"
)

func newLoginCmd(get func() *session) *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = readLine(cmd.InOrStdin())
			}
			s := screens.NewLoginScreen(get().screenDeps())
			s.SetUsername(username)
			s.SetPassword(password)
			return s.Submit(cmdContext(cmd))
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when empty)")
	return cmd
}

func newRegisterCmd(get func() *session) *cobra.Command {
	var username, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if password == "" {
				password = readLine(cmd.InOrStdin())
			}
			s := screens.NewRegisterScreen(get().screenDeps())
			s.SetUsername(username)
			s.SetEmail(email)
			s.SetPassword(password)
			return s.Submit(cmdContext(cmd))
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&email, "email", "e", "", "email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when empty)")
	return cmd
}

func newLogoutCmd(get func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := get()
			ctx := cmdContext(cmd)
			if err := s.auth.Logout(ctx); err != nil {
				return err
			}
			logger.From(ctx).Debug("session token cleared")
			fmt.Fprintln(s.out, s.locale.T("home.signedOut"))
			return nil
		},
	}
}

func newStatusCmd(get func() *session) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether a session token is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := get()
			token, ok, err := s.tokens.Retrieve(cmdContext(cmd))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(s.out, s.locale.T("home.signedOut"))
			} else {
				fmt.Fprintln(s.out, s.locale.T("home.signedIn"))
				if info, err := services.DescribeToken(token); err == nil {
					if info.Username != "" {
						fmt.Fprintln(s.out, s.locale.T("home.welcome", map[string]any{"username": info.Username}))
					}
					if info.ExpiresAt != nil {
						fmt.Fprintf(s.out, "expires=%s expired=%t\n", info.ExpiresAt.Format(time.RFC3339), info.Expired(time.Now()))
					}
				}
			}
			fmt.Fprintf(s.out, "api_url=%s token_store=%s language=%s\n", s.cfg.APIURL, s.cfg.TokenStore, s.locale.Language())
			return nil
		},
	}
}

func newCallCmd(get func() *session) *cobra.Command {
	var headers []string
	cmd := &cobra.Command{
		Use:   "call <METHOD> <endpoint> [body]",
		Short: "Send an authenticated request and print the response",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := get()
			opts := apiclient.Options{Method: args[0], Headers: map[string]string{}}
			if len(args) == 3 {
				opts.Body = json.RawMessage(args[2])
			}
			for _, h := range headers {
				name, value, ok := strings.Cut(h, ":")
				if !ok {
					return fmt.Errorf("header %q: want Name: value", h)
				}
				opts.Headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
			}

			resp, err := s.client.Request(cmdContext(cmd), args[1], opts)
			if err != nil {
				if reqErr, ok := apiclient.AsRequestError(err); ok {
					return fmt.Errorf("%s", reqErr.Detail())
				}
				return err
			}
			return printResponse(s.out, resp)
		},
	}
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "extra header, e.g. -H 'Accept: text/plain'")
	return cmd
}

func newStringsCmd(get func() *session) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "strings",
		Short: "Print every UI string in the current language",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := get()
			cat, err := i18n.DefaultCatalog()
			if err != nil {
				return err
			}
			langs := []string{s.locale.Language()}
			if all {
				langs = s.locale.Supported()
			}
			for _, key := range cat.Keys(i18n.DefaultLanguage) {
				fmt.Fprint(s.out, key)
				for _, lang := range langs {
					fmt.Fprintf(s.out, "\t%s", s.locale.TIn(lang, key))
				}
				fmt.Fprintln(s.out)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "one column per supported language")
	return cmd
}

func newPaletteCmd(get func() *session) *cobra.Command {
	var toggle bool
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Print the color palette for the device theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := get()
			if toggle {
				s.theme.Toggle()
			}
			out, err := yaml.Marshal(map[string]any{
				"mode":    s.theme.Mode(),
				"palette": s.theme.Palette(),
			})
			if err != nil {
				return err
			}
			_, err = s.out.Write(out)
			return err
		},
	}
	cmd.Flags().BoolVar(&toggle, "toggle", false, "show the opposite of the device theme")
	return cmd
}

func printResponse(w io.Writer, resp *apiclient.Response) error {
	if !resp.IsJSON() {
		fmt.Fprintln(w, resp.Text())
		return nil
	}
	pretty, err := json.MarshalIndent(resp.Data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(pretty))
	return nil
}

func readLine(r io.Reader) string {
	line, _ := bufio.NewReader(r).ReadString('\n')
	return strings.TrimRight(line, "\r\n")
}
