package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-pass-owl/internal/service"
	"github.com/MKhiriev/go-pass-owl/models"
)

// DefaultPageSize is the page requested by the list commands.
const DefaultPageSize = 50

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: expected exactly one id", service.ErrInvalidDataProvided)
	}
	return ParseID(args[0])
}

// ParseID parses a record id given on the command line.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", service.ErrInvalidDataProvided, s)
	}
	return id, nil
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PrintCredentials lists credential metadata. Passwords stay encrypted.
func PrintCredentials(ctx context.Context, credentials service.ClientCredentialService, out io.Writer) error {
	list, err := credentials.List(ctx, models.ListParams{Limit: DefaultPageSize})
	if err != nil {
		return err
	}

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tUSERNAME\tURL")
	for _, c := range list.Items {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Title, c.Username, deref(c.URL))
	}
	_, _ = fmt.Fprintf(w, "%d of %d\n", len(list.Items), list.Total)
	return w.Flush()
}

// PrintCredential decrypts and prints one credential.
func PrintCredential(ctx context.Context, credentials service.ClientCredentialService, out io.Writer, id int64) error {
	c, err := credentials.Get(ctx, id)
	if err != nil {
		return err
	}

	w := newTable(out)
	_, _ = fmt.Fprintf(w, "id:\t%d\n", c.ID)
	_, _ = fmt.Fprintf(w, "title:\t%s\n", c.Title)
	_, _ = fmt.Fprintf(w, "username:\t%s\n", c.Username)
	_, _ = fmt.Fprintf(w, "password:\t%s\n", c.Password)
	if c.URL != nil {
		_, _ = fmt.Fprintf(w, "url:\t%s\n", *c.URL)
	}
	return w.Flush()
}

func PrintNotes(ctx context.Context, notes service.ClientNoteService, out io.Writer) error {
	items, total, err := notes.List(ctx, models.ListParams{Limit: DefaultPageSize})
	if err != nil {
		return err
	}

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "ID\tTITLE")
	for _, n := range items {
		_, _ = fmt.Fprintf(w, "%d\t%s\n", n.ID, n.Title)
	}
	_, _ = fmt.Fprintf(w, "%d of %d\n", len(items), total)
	return w.Flush()
}

func PrintNote(ctx context.Context, notes service.ClientNoteService, out io.Writer, id int64) error {
	n, err := notes.Get(ctx, id)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n\n%s\n", n.Title, n.Content)
	return err
}

// PrintReceived opens every envelope shared with the user. An envelope that
// fails to open is reported in place and does not hide the others.
func PrintReceived(ctx context.Context, sharing service.ClientSharingService, out io.Writer) error {
	list, err := sharing.ListReceived(ctx, models.ListParams{Limit: DefaultPageSize})
	if err != nil {
		return err
	}

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "ID\tFROM\tTITLE\tUSERNAME\tPASSWORD")
	for _, item := range list.Items {
		shared, err := sharing.DecryptReceived(item)
		if err != nil {
			_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t\t<%v>\n", item.ID, item.OwnerUsername, item.CredentialTitle, err)
			continue
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", shared.ID, shared.OwnerUsername, shared.Title, shared.Username, shared.Password)
	}
	_, _ = fmt.Fprintf(w, "%d of %d\n", len(list.Items), list.Total)
	return w.Flush()
}

func PrintCategories(ctx context.Context, categories service.ClientCategoryService, out io.Writer) error {
	items, err := categories.List(ctx)
	if err != nil {
		return err
	}

	w := newTable(out)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tCOLOR")
	for _, c := range items {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, deref(c.ColorHex))
	}
	return w.Flush()
}

// PrintStats prints the record counts of the vault.
func PrintStats(ctx context.Context, auth service.ClientAuthService, out io.Writer) error {
	stats, err := auth.Stats(ctx)
	if err != nil {
		return err
	}

	w := newTable(out)
	_, _ = fmt.Fprintf(w, "credentials:\t%d\n", stats.OwnCredentials)
	_, _ = fmt.Fprintf(w, "shared with you:\t%d\n", stats.SharedCredentials)
	_, _ = fmt.Fprintf(w, "notes:\t%d\n", stats.SecureNotes)
	_, _ = fmt.Fprintf(w, "categories:\t%d\n", stats.Categories)
	return w.Flush()
}
