// Command posctl prints the customer list the way the front desk sees it:
// filtered, sorted and paginated on the client side.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/JGuylherme/Service-POS/internal/logger"
	"github.com/JGuylherme/Service-POS/pkg/posclient"
)

func main() {
	var (
		apiURL  = flag.String("api", envOr("POS_API_URL", "http://localhost:3000/api"), "base URL of the POS API")
		name    = flag.String("name", "", "filter by name")
		email   = flag.String("email", "", "filter by email")
		phone   = flag.String("phone", "", "filter by phone number")
		sortKey = flag.String("sort", "", "sort column: name, email or phone_number")
		desc    = flag.Bool("desc", false, "sort descending")
		size    = flag.Int("size", posclient.DefaultPageSize, "page size: 5, 10 or 20")
		page    = flag.Int("page", 1, "page number")
		xlsx    = flag.String("xlsx", "", "also write the page to this .xlsx file")
	)
	flag.Parse()

	logger.InitLogging(envOr("LOG_LEVEL", "warn"), "")
	ctx := context.Background()

	if err := run(ctx, options{
		apiURL: *apiURL, name: *name, email: *email, phone: *phone,
		sortKey: *sortKey, desc: *desc, size: *size, page: *page, xlsx: *xlsx,
	}); err != nil {
		logger.ErrorLog(ctx, "posctl failed: %v", err)
		os.Exit(1)
	}
}

type options struct {
	apiURL             string
	name, email, phone string
	sortKey            string
	desc               bool
	size, page         int
	xlsx               string
}

func run(ctx context.Context, opts options) error {
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	store := posclient.NewCustomerStore(posclient.New(opts.apiURL), posclient.NewNotifier())
	if err := store.Load(ctx); err != nil {
		printToasts(store.Notifier())
		return err
	}

	view := store.View()
	for key, value := range map[string]string{"name": opts.name, "email": opts.email, "phone_number": opts.phone} {
		if err := view.SetFilter(key, value); err != nil {
			return err
		}
	}

	if opts.sortKey != "" {
		dir := posclient.Ascending
		if opts.desc {
			dir = posclient.Descending
		}
		if err := view.SetSort(opts.sortKey, dir); err != nil {
			return err
		}
	}

	if err := view.SetPageSize(opts.size); err != nil {
		return err
	}
	view.SetPage(opts.page)

	result := view.View()
	printPage(result)

	if opts.xlsx != "" {
		return exportXLSX(opts.xlsx, result)
	}
	return nil
}

func exportXLSX(path string, page posclient.Page[posclient.Customer]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := posclient.WriteXLSX(f, posclient.CustomerColumns(), page); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printPage(p posclient.Page[posclient.Customer]) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for _, c := range p.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.PhoneNumber)
	}
	w.Flush()
	fmt.Printf("page %d of %d (%d customers)\n", p.Page, p.TotalPages, p.TotalItems)
}

func printToasts(n *posclient.Notifier) {
	for _, t := range n.Active() {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", t.Kind, t.Message)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
