package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cjdelfin.dev/internal/contact"
	"cjdelfin.dev/internal/storage/sqlite"
)

func newMessagesCmd(rt *runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List recent contact form submissions",
		Long: `List recent contact form submissions from the SQLite log.
Requires CONTACT_DB_PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.cfg.ContactDBPath == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), formatError("CONTACT_DB_PATH is not set"))
				return errors.New("contact log is disabled")
			}

			store, err := sqlite.Open(rt.cfg.ContactDBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			subs, err := store.ListSubmissions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printSubmissions(cmd.OutOrStdout(), subs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of submissions to show")
	return cmd
}

func printSubmissions(w io.Writer, subs []sqlite.Submission) {
	if len(subs) == 0 {
		fmt.Fprintln(w, formatWarning("No contact submissions yet"))
		return
	}

	fmt.Fprintln(w, formatTitle(fmt.Sprintf("Contact submissions (%d)", len(subs))))
	fmt.Fprintln(w)

	t := newTable(
		column{header: "ID", width: 4},
		column{header: "Received", width: 16},
		column{header: "From", width: 30},
		column{header: "Subject", width: 30},
		column{header: "Status", width: 8},
	)
	for _, s := range subs {
		t.addRow(
			fmt.Sprint(s.ID),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(fmt.Sprintf("%s <%s>", s.Message.Name, s.Message.Email), 40),
			truncate(s.Message.Subject, 40),
			statusLabel(s.Status),
		)
	}
	fmt.Fprint(w, t.render())

	for _, s := range subs {
		if s.Status == contact.StatusFailed && s.Error != "" {
			fmt.Fprintln(w, formatMuted(fmt.Sprintf("#%d: %s", s.ID, s.Error)))
		}
	}
}

func statusLabel(status contact.Status) string {
	switch status {
	case contact.StatusSent:
		return formatSuccess(string(status))
	case contact.StatusFailed:
		return formatError(string(status))
	default:
		return string(status)
	}
}
