package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmpt/absensi/internal/pkg/config"
	"github.com/dmpt/absensi/internal/pkg/database"
	httpclient "github.com/dmpt/absensi/internal/pkg/http"
	"github.com/dmpt/absensi/internal/pkg/logger"
	"github.com/dmpt/absensi/internal/pkg/models"
	"github.com/dmpt/absensi/internal/pkg/notify"
	"github.com/dmpt/absensi/internal/pkg/session"
	"github.com/dmpt/absensi/internal/utils"
	"github.com/dmpt/absensi/services/attendance"
	attendancegw "github.com/dmpt/absensi/services/attendance/gateway/http"
	attendanceuc "github.com/dmpt/absensi/services/attendance/usecase"
	"github.com/dmpt/absensi/services/auth"
	authgw "github.com/dmpt/absensi/services/auth/gateway/http"
	authuc "github.com/dmpt/absensi/services/auth/usecase"
	"github.com/dmpt/absensi/services/catalog"
	cataloggw "github.com/dmpt/absensi/services/catalog/gateway/http"
	cataloguc "github.com/dmpt/absensi/services/catalog/usecase"
	"github.com/dmpt/absensi/services/sales"
	salesgw "github.com/dmpt/absensi/services/sales/gateway/http"
	salesuc "github.com/dmpt/absensi/services/sales/usecase"
	"github.com/spf13/pflag"
)

const appName = "admin"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses the global flags, wires the application and executes one command
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	global := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	configPath := global.StringP("config", "c", ".env", "dotenv file loaded when APP_ENV=local")
	global.Usage = func() { printUsage(stderr) }

	if err := global.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	configs := config.InitConfig(*configPath)

	a, cleanup, err := newApp(ctx, configs, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	defer cleanup()

	return a.execute(ctx, global.Args())
}

// app holds the wired client and usecases shared by every command
type app struct {
	cfg        *models.Config
	log        *logger.ZapLogger
	session    *session.Session
	client     *httpclient.Client
	notifier   *trackingNotifier
	auth       auth.AuthUC
	attendance attendance.AttendanceUC
	catalog    catalog.CatalogUC
	sales      sales.SalesUC
	out        io.Writer
	errw       io.Writer
}

// newApp wires logger, session, client and usecases. Logs go to stderr with the
// notifications so stdout only carries command output.
func newApp(ctx context.Context, configs *models.Config, stdout, stderr io.Writer) (*app, func(), error) {
	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{
		Level:    configs.Logger.Level,
		FilePath: configs.Logger.FilePath,
		Console:  stderr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger.SetGlobalLogger(zapLogger)

	store, closeStore, err := newSessionStore(configs)
	if err != nil {
		_ = zapLogger.Close()
		return nil, nil, err
	}
	cleanup := func() {
		closeStore()
		_ = zapLogger.Close()
	}

	sess := session.New(store)
	if err := sess.Restore(ctx); err != nil {
		cleanup()
		return nil, nil, err
	}

	notifier := &trackingNotifier{Notifier: notify.NewWriterNotifier(stderr, zapLogger)}
	sess.OnExpired(func() {
		fmt.Fprintf(stderr, "Sesi berakhir. Jalankan `%s login -u <username> -p <password>` untuk masuk kembali.\n", appName)
	})

	client := httpclient.NewClientFromConfig(configs.API, sess, notifier)

	return &app{
		cfg:        configs,
		log:        zapLogger,
		session:    sess,
		client:     client,
		notifier:   notifier,
		auth:       authuc.NewAuthUC(authgw.NewHTTPGateway(client), sess),
		attendance: attendanceuc.NewAttendanceUC(attendancegw.NewHTTPGateway(client), utils.NewGeofence(configs.Office)),
		catalog:    cataloguc.NewCatalogUC(cataloggw.NewHTTPGateway(client)),
		sales:      salesuc.NewSalesUC(salesgw.NewHTTPGateway(client)),
		out:        stdout,
		errw:       stderr,
	}, cleanup, nil
}

// newSessionStore picks the durable token store named by SESSION_STORE
func newSessionStore(configs *models.Config) (session.Store, func(), error) {
	switch configs.Session.Store {
	case "memory":
		return session.NewMemoryStore(""), func() {}, nil
	case "redis":
		client, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			return nil, nil, err
		}
		return session.NewRedisStore(client, configs.Session.KeyPrefix), func() { _ = client.Close() }, nil
	case "file", "":
		return session.NewFileStore(configs.Session.FilePath), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", configs.Session.Store)
	}
}

// trackingNotifier counts error notifications so a failed command is reported exactly once
type trackingNotifier struct {
	notify.Notifier
	mu     sync.Mutex
	errors int
}

func (n *trackingNotifier) Error(msg string) {
	n.mu.Lock()
	n.errors++
	n.mu.Unlock()
	n.Notifier.Error(msg)
}

func (n *trackingNotifier) errorCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.errors
}
