package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmpt/absensi/internal/pkg/constants"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/dmpt/absensi/services/attendance"
	"github.com/dmpt/absensi/services/auth"
	"github.com/spf13/pflag"
)

const (
	msgLoginRequired = "Silakan masuk terlebih dahulu"
	maxNameWidth     = 40
)

// command is one CLI subcommand. Protected commands need a stored session.
type command struct {
	name      string
	args      string
	summary   string
	protected bool
	run       func(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error
}

var commands = []command{
	{name: "login", args: "-u <username> -p <password>", summary: "Masuk dan simpan sesi", run: runLogin},
	{name: "logout", summary: "Keluar dan hapus sesi", run: runLogout},
	{name: "whoami", summary: "Tampilkan pengguna yang sedang masuk", protected: true, run: runWhoami},
	{name: "distance", args: "--lat <lat> --lon <lon>", summary: "Hitung jarak ke kantor", run: runDistance},
	{name: "checkin", args: "--lat <lat> --lon <lon>", summary: "Absen masuk", protected: true, run: runCheckIn},
	{name: "checkout", args: "--lat <lat> --lon <lon>", summary: "Absen keluar", protected: true, run: runCheckOut},
	{name: "history", args: "[--page n]", summary: "Riwayat absensi", protected: true, run: runHistory},
	{name: "products", args: "[--page n] [-q text]", summary: "Daftar produk", protected: true, run: runProducts},
	{name: "brands", summary: "Daftar brand", protected: true, run: runBrands},
	{name: "categories", summary: "Daftar kategori", protected: true, run: runCategories},
	{name: "orders", args: "[--page n] [--status s]", summary: "Daftar order", protected: true, run: runOrders},
	{name: "order-status", args: "--id <order> --status <status>", summary: "Ubah status order", protected: true, run: runOrderStatus},
	{name: "pay", args: "--id <order> --amount <n> [--method m] [--date yyyy-mm-dd]", summary: "Catat pembayaran", protected: true, run: runPay},
	{name: "asset", args: "<path>", summary: "Tampilkan URL file unggahan", run: runAsset},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [--config file] <command> [flags]\n\nCommands:\n", appName)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s %s\t%s\n", c.name, c.args, c.summary)
	}
	_ = tw.Flush()
}

// execute runs one command and returns the process exit code: 0 on success, 1 on
// failure and 2 on bad usage. A failure that the client has not already reported is
// reported here, so each failure is shown once.
func (a *app) execute(ctx context.Context, args []string) int {
	if len(args) == 0 {
		printUsage(a.errw)
		return 2
	}

	cmd, ok := findCommand(args[0])
	if !ok {
		fmt.Fprintf(a.errw, "%s: unknown command %q\n\n", appName, args[0])
		printUsage(a.errw)
		return 2
	}

	if cmd.protected && !a.session.IsAuthenticated() {
		a.notifier.Error(fmt.Sprintf("%s: %s login -u <username> -p <password>", msgLoginRequired, appName))
		return 1
	}

	fs := pflag.NewFlagSet(cmd.name, pflag.ContinueOnError)
	fs.SetOutput(a.errw)
	fs.Usage = func() {
		fmt.Fprintf(a.errw, "Usage: %s %s %s\n", appName, cmd.name, cmd.args)
		fs.PrintDefaults()
	}

	before := a.notifier.errorCount()
	if err := cmd.run(ctx, a, fs, args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		var usage *usageError
		if errors.As(err, &usage) {
			a.notifier.Error(describe(err))
			fs.Usage()
			return 2
		}
		if a.notifier.errorCount() == before {
			a.notifier.Error(describe(err))
		}
		return 1
	}
	return 0
}

// usageError marks a subcommand invoked with bad flags or arguments
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

// parseFlags parses a subcommand's flags, marking parse failures as usage errors
func parseFlags(fs *pflag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return err
	}
	return &usageError{err: err}
}

// describe turns local failures into the message shown to the user
func describe(err error) string {
	var outside *attendance.OutsideOfficeError
	switch {
	case errors.As(err, &outside):
		return fmt.Sprintf("Anda berada di luar area kantor (%.2f km)", outside.Result.DistanceKm)
	case errors.Is(err, auth.ErrNotAuthenticated):
		return msgLoginRequired
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Username dan password wajib diisi"
	case errors.Is(err, models.ErrInvalidInput):
		return "Input tidak valid: " + err.Error()
	}
	return err.Error()
}

func runLogin(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	username := fs.StringP("username", "u", "", "username")
	password := fs.StringP("password", "p", "", "password")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	// already logged in users are sent on, like the web client's guard does
	if a.session.IsAuthenticated() {
		if user := a.session.User(); user != nil {
			a.notifier.Success("Anda sudah masuk sebagai " + user.Name)
		} else {
			a.notifier.Success("Anda sudah masuk")
		}
		return nil
	}

	user, err := a.auth.Login(ctx, &models.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return err
	}
	a.notifier.Success("Selamat datang, " + user.Name)
	return nil
}

func runLogout(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.notifier.Success("Berhasil keluar")
	return nil
}

func runWhoami(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}

	role := "-"
	if user.Role != nil {
		role = user.Role.DisplayName
	}
	fmt.Fprintf(a.out, "%s (%s)\t%s\n", user.Name, user.Username, role)
	if exp, ok := a.session.ExpiresAt(); ok {
		fmt.Fprintf(a.out, "Sesi berlaku hingga %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func locationFlags(fs *pflag.FlagSet, args []string) (models.Coordinate, error) {
	lat := fs.Float64("lat", 0, "latitude in decimal degrees")
	lon := fs.Float64("lon", 0, "longitude in decimal degrees")
	if err := parseFlags(fs, args); err != nil {
		return models.Coordinate{}, err
	}
	if !fs.Changed("lat") || !fs.Changed("lon") {
		return models.Coordinate{}, &usageError{err: fmt.Errorf("%w: --lat and --lon are required", models.ErrInvalidInput)}
	}
	return models.Coordinate{Latitude: *lat, Longitude: *lon}, nil
}

func runDistance(_ context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	loc, err := locationFlags(fs, args)
	if err != nil {
		return err
	}
	result := a.attendance.CheckDistance(loc)
	fmt.Fprintf(a.out, "%.2f km\t%s\n", result.DistanceKm, result.Status())
	return nil
}

func runCheckIn(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	loc, err := locationFlags(fs, args)
	if err != nil {
		return err
	}
	record, err := a.attendance.CheckIn(ctx, loc)
	if err != nil {
		return err
	}
	a.notifier.Success(fmt.Sprintf("Absen masuk tercatat (%.2f km, %s)", record.DistanceKm, record.Status))
	return nil
}

func runCheckOut(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	loc, err := locationFlags(fs, args)
	if err != nil {
		return err
	}
	record, err := a.attendance.CheckOut(ctx, loc)
	if err != nil {
		return err
	}
	a.notifier.Success(fmt.Sprintf("Absen keluar tercatat (%.2f km, %s)", record.DistanceKm, record.Status))
	return nil
}

func runHistory(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	page := fs.Int("page", 1, "page number")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	history, err := a.attendance.History(ctx, *page)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WAKTU\tJENIS\tSTATUS\tJARAK")
	for _, r := range history.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f km\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Type, r.Status, r.DistanceKm)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printMeta(a.out, history.Meta)
	return nil
}

func runProducts(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	page := fs.Int("page", 1, "page number")
	search := fs.StringP("search", "q", "", "filter by name")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	products, err := a.catalog.ListProducts(ctx, models.ListParams{Page: *page, Search: *search})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAMA\tKATEGORI\tSKU\tPUBLISH")
	for _, p := range products.Data {
		category := "-"
		if p.Category != nil {
			category = p.Category.Name
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.ID, utils.Truncate(p.Name, maxNameWidth), category, p.SkusCount, yesNo(p.IsPublish == 1))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printMeta(a.out, products.Meta)
	return nil
}

func runBrands(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	brands, err := a.catalog.ListBrands(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAMA\tSLUG")
	for _, b := range brands {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.Name, b.Slug)
	}
	return tw.Flush()
}

func runCategories(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	categories, err := a.catalog.ListCategories(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAMA\tSLUG")
	for _, c := range categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, c.Slug)
	}
	return tw.Flush()
}

func runOrders(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	page := fs.Int("page", 1, "page number")
	status := fs.String("status", "", "filter by status: "+strings.Join(constants.OrderStatuses, ", "))
	search := fs.StringP("search", "q", "", "filter by store name")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	orders, err := a.sales.ListOrders(ctx, models.ListParams{Page: *page, Status: *status, Search: *search})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTOKO\tTOTAL\tDIBAYAR\tSISA\tSTATUS")
	for _, o := range orders.Data {
		store := "-"
		if o.Customer != nil {
			store = o.Customer.StoreName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", o.ID, utils.Truncate(store, maxNameWidth), rupiah(o.TotalPrice), rupiah(o.Paid), rupiah(o.Remaining), o.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	printMeta(a.out, orders.Meta)
	return nil
}

func runOrderStatus(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	id := fs.Int64("id", 0, "order id")
	status := fs.String("status", "", "new status: "+strings.Join(constants.OrderStatuses, ", "))
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	order, err := a.sales.UpdateOrderStatus(ctx, *id, *status)
	if err != nil {
		return err
	}
	a.notifier.Success(fmt.Sprintf("Order %d sekarang %s", order.ID, order.Status))
	return nil
}

func runPay(ctx context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	id := fs.Int64("id", 0, "order id")
	amount := fs.Float64("amount", 0, "amount in rupiah")
	method := fs.String("method", constants.PaymentMethodCash, "cash, transfer or giro")
	date := fs.String("date", "", "payment date, defaults to today")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	payment, err := a.sales.CreatePayment(ctx, *id, &models.PaymentRequest{Method: *method, Date: *date, Amount: *amount})
	if err != nil {
		return err
	}
	a.notifier.Success(fmt.Sprintf("Pembayaran %s tercatat, sisa %s", payment.Amount, payment.Remaining))
	return nil
}

func runAsset(_ context.Context, a *app, fs *pflag.FlagSet, args []string) error {
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return &usageError{err: fmt.Errorf("%w: expected exactly one asset path", models.ErrInvalidInput)}
	}
	fmt.Fprintln(a.out, a.client.AssetURL(fs.Arg(0)))
	return nil
}

func printMeta(w io.Writer, meta models.PageMeta) {
	fmt.Fprintf(w, "Halaman %d/%d, total %d\n", meta.CurrentPage, max(meta.LastPage, 1), meta.Total)
}

func yesNo(b bool) string {
	if b {
		return "ya"
	}
	return "tidak"
}

// rupiah formats an amount with dot thousand separators
func rupiah(v float64) string {
	digits := strconv.FormatFloat(v, 'f', 0, 64)
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-Rp" + b.String()
	}
	return "Rp" + b.String()
}
