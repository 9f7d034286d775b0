package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/dirk.krummacker/contacts-web/internal/model"
	"gitlab.com/dirk.krummacker/contacts-web/internal/submit"
	"gitlab.com/dirk.krummacker/contacts-web/internal/view"
	publicmodel "gitlab.com/dirk.krummacker/contacts-web/pkg/model"
)

// Usage example on the command line:
// > go run main.go --server http://localhost:8080 show 0d4b7f5e-2a9b-4f63-8e2c-7c1b2d3e4f02
func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	var server string
	root := &cobra.Command{
		Use:          "client",
		Short:        "Look at and change contacts of a running contacts service",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&server, "server", "http://localhost:8080", "base URL of the contacts service")
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(&cobra.Command{
		Use:   "show <contactId>",
		Short: "Print a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := fetchDetail(cmd.Context(), server, args[0])
			if err != nil {
				return err
			}
			printDetail(cmd.OutOrStdout(), d)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "favorite <contactId>",
		Short: "Toggle the favorite flag of a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := fetchDetail(cmd.Context(), server, args[0])
			if err != nil {
				return err
			}
			if err := d.Favorite.Toggle(cmd.Context(), submit.NewHTTPSubmitter(server)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: done\n", d.Favorite.Label)
			return nil
		},
	})

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <contactId>",
		Short: "Delete a contact after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := fetchDetail(cmd.Context(), server, args[0])
			if err != nil {
				return err
			}
			confirm := func(string) bool { return true }
			if !yes {
				confirm = promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout())
			}
			sent, err := d.Delete(cmd.Context(), submit.NewHTTPSubmitter(server), confirm)
			if err != nil {
				return err
			}
			if sent {
				fmt.Fprintln(cmd.OutOrStdout(), "contact deleted")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "cancelled")
			}
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	root.AddCommand(deleteCmd)

	return root
}

// fetchDetail reads a contact through the JSON route of the service.
func fetchDetail(ctx context.Context, server string, id string) (view.Detail, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	url := strings.TrimRight(server, "/") + "/api" + view.ContactPath(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return view.Detail{}, err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return view.Detail{}, err
	}
	defer res.Body.Close()
	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return view.Detail{}, fmt.Errorf("contact %s not found", id)
	default:
		return view.Detail{}, fmt.Errorf("GET %s: %s", url, res.Status)
	}
	var data publicmodel.LoaderData
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return view.Detail{}, err
	}
	return view.NewDetail(model.Contact(data.Contact)), nil
}

func printDetail(out io.Writer, d view.Detail) {
	name := "No Name"
	if d.HasName {
		name = d.Name
	}
	fmt.Fprintf(out, "%s %s\n", name, d.Favorite.Glyph)
	if d.Avatar != "" {
		fmt.Fprintf(out, "avatar:  %s\n", d.Avatar)
	}
	if d.Twitter != "" {
		fmt.Fprintf(out, "twitter: %s\n", d.TwitterURL)
	}
	if d.Notes != "" {
		fmt.Fprintf(out, "notes:   %s\n", d.Notes)
	}
}

// promptConfirm asks the prompt on the terminal and accepts "y" or "yes".
func promptConfirm(in io.Reader, out io.Writer) func(prompt string) bool {
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		answer, _ := bufio.NewReader(in).ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
