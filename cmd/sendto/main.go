// Command sendto is the host-application shell around the single-instance
// file-hand-off subsystem. Invoked with leading file paths it behaves as the
// receiving application (claiming the instance endpoint or handing the files
// to the process that already holds it); the send/apps nouns drive the
// sending side against the external-application registry.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/superexif/sendto/internal/argv"
	"github.com/superexif/sendto/internal/config"
	"github.com/superexif/sendto/internal/instance"
	"github.com/superexif/sendto/internal/log"
	"github.com/superexif/sendto/internal/openevent"
	"github.com/superexif/sendto/internal/receipt"
	"github.com/superexif/sendto/internal/registry"
	"github.com/superexif/sendto/internal/send"
)

const version = "0.1.0"

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "send":
			os.Exit(runSend(os.Args[2:]))
		case "apps":
			os.Exit(runApps(os.Args[2:]))
		case "version":
			fmt.Printf("sendto version %s\n", version)
			os.Exit(0)
		case "help", "--help", "-h":
			printUsage()
			os.Exit(0)
		}
	}
	// Anything else follows the launch-argument contract: leading file
	// paths, then options.
	os.Exit(runHost(os.Args[1:]))
}

func printUsage() {
	fmt.Print(`sendto - single-instance file hand-off

Usage:
  sendto [files...] [flags]        Run as the host application
  sendto send --app <name> files   Open files with a configured external app
  sendto apps <action> [flags]     Manage the external-application registry

Host flags:
  --settings <path>   Settings file (default: sendto.yaml beside the binary)
  --log-level <lvl>   Override the configured log level

Apps actions:
  list                Show configured external applications
  add                 Add an entry (--name, --path, [--app-id])
  remove              Remove an entry (--name)

General:
  version             Show version information
  help                Show this help message
`)
}

// logNavigator stands in for the file-browser collaborator in this headless
// shell: it records what a GUI host would open and select.
type logNavigator struct{}

func (logNavigator) OpenDirectoryThenSelect(dir string, selection []string) error {
	log.WithComponent("navigator").Info("open directory and select",
		"dir", dir, "selection", strings.Join(selection, ", "))
	return nil
}

func runHost(args []string) int {
	files := argv.ParseInitialFileList(args)

	fs := pflag.NewFlagSet("sendto", pflag.ContinueOnError)
	settingsPath := fs.String("settings", "", "path to sendto.yaml")
	logLevel := fs.String("log-level", "", "override log level")
	if err := fs.Parse(argv.Rest(args)); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		return 1
	}

	settings, err := config.Load(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Settings error: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	log.Setup(settings.LogLevel)
	logger := log.WithComponent("main")

	dispatcher := receipt.NewDispatcher(logNavigator{})

	srv, err := instance.New(settings.AppID, settings.EndpointDir, func(paths []string) {
		dispatcher.OnFilesReceived(paths, receipt.SourceSocket)
	})
	if errors.Is(err, instance.ErrClaimFailed) {
		// Normal second-instance path: hand our files to the holder and exit.
		if len(files) == 0 {
			logger.Info("another instance is already running", "app_id", settings.AppID)
			return 0
		}
		if instance.SendToRunning(settings.AppID, settings.EndpointDir, files) {
			logger.Info("handed files to running instance", "files", len(files))
			return 0
		}
		fmt.Fprintln(os.Stderr, "Another instance holds the endpoint but did not accept the files")
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Endpoint claim error: %v\n", err)
		return 1
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if serveErr := srv.Serve(ctx); serveErr != nil && !errors.Is(serveErr, context.Canceled) {
			logger.Error("instance server stopped", "error", serveErr)
			stop()
		}
	}()
	go func() { _ = dispatcher.Run(ctx) }()

	adapter := openevent.NewAdapter()
	adapter.Install(func(paths []string) {
		dispatcher.OnFilesReceived(paths, receipt.SourcePlatformOpen)
	})
	// A GUI host signals readiness once its receiving surface exists; this
	// headless shell is ready as soon as the dispatcher runs.
	adapter.Ready()

	if len(files) > 0 {
		dispatcher.OnFilesReceived(files, receipt.SourceColdStart)
	}

	logger.Info("running as first instance", "app_id", settings.AppID)
	<-ctx.Done()
	logger.Info("shutting down")
	return 0
}

func runSend(args []string) int {
	fs := pflag.NewFlagSet("send", pflag.ContinueOnError)
	appName := fs.StringP("app", "a", "", "registry name of the target application")
	configDir := fs.String("config-dir", "", "directory holding extern_app.json")
	baseDir := fs.String("base-dir", "", "base directory for relative file paths")
	logLevel := fs.String("log-level", "INFO", "log level")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		return 1
	}
	log.Setup(*logLevel)

	files := fs.Args()
	if *appName == "" || len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: sendto send --app <name> <files...>")
		return 1
	}

	apps := registry.Load(*configDir)
	entry, ok := registry.FindByName(apps, *appName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown app %q (configured: %s)\n", *appName, appNames(apps))
		return 1
	}

	if err := send.FilesToApp(files, entry, *baseDir); err != nil {
		fmt.Fprintf(os.Stderr, "Send failed: %v\n", err)
		return 1
	}
	return 0
}

func runApps(args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: sendto apps <list|add|remove> [flags]")
		return 1
	}
	action := args[0]
	actionArgs := args[1:]
	log.Setup("WARN")

	switch action {
	case "list":
		return runAppsList(actionArgs)
	case "add":
		return runAppsAdd(actionArgs)
	case "remove":
		return runAppsRemove(actionArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown apps action: %s\n", action)
		return 1
	}
}

func runAppsList(args []string) int {
	fs := pflag.NewFlagSet("apps list", pflag.ContinueOnError)
	configDir := fs.String("config-dir", "", "directory holding extern_app.json")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		return 1
	}

	apps := registry.Load(*configDir)
	if len(apps) == 0 {
		fmt.Println("No external applications configured")
		return 0
	}
	for _, app := range apps {
		if app.AppID != "" {
			fmt.Printf("%s\t%s\t(app_id: %s)\n", app.Name, app.Path, app.AppID)
		} else {
			fmt.Printf("%s\t%s\n", app.Name, app.Path)
		}
	}
	return 0
}

func runAppsAdd(args []string) int {
	fs := pflag.NewFlagSet("apps add", pflag.ContinueOnError)
	configDir := fs.String("config-dir", "", "directory holding extern_app.json")
	name := fs.String("name", "", "display name")
	path := fs.String("path", "", "executable or bundle path")
	appID := fs.String("app-id", "", "hot hand-off endpoint id (optional)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		return 1
	}
	if *name == "" || *path == "" {
		fmt.Fprintln(os.Stderr, "Usage: sendto apps add --name <name> --path <path> [--app-id <id>]")
		return 1
	}

	apps := registry.Load(*configDir)
	if _, exists := registry.FindByName(apps, *name); exists {
		fmt.Fprintf(os.Stderr, "App %q already configured\n", *name)
		return 1
	}
	apps = append(apps, registry.AppEntry{Name: *name, Path: *path, AppID: *appID})
	if err := registry.Save(*configDir, apps); err != nil {
		fmt.Fprintf(os.Stderr, "Save failed: %v\n", err)
		return 1
	}
	fmt.Printf("Added %s\n", *name)
	return 0
}

func runAppsRemove(args []string) int {
	fs := pflag.NewFlagSet("apps remove", pflag.ContinueOnError)
	configDir := fs.String("config-dir", "", "directory holding extern_app.json")
	name := fs.String("name", "", "display name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid flags: %v\n", err)
		return 1
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Usage: sendto apps remove --name <name>")
		return 1
	}

	apps := registry.Load(*configDir)
	kept := apps[:0]
	for _, app := range apps {
		if app.Name != *name {
			kept = append(kept, app)
		}
	}
	if len(kept) == len(apps) {
		fmt.Fprintf(os.Stderr, "App %q not found\n", *name)
		return 1
	}
	if err := registry.Save(*configDir, kept); err != nil {
		fmt.Fprintf(os.Stderr, "Save failed: %v\n", err)
		return 1
	}
	fmt.Printf("Removed %s\n", *name)
	return 0
}

func appNames(apps []registry.AppEntry) string {
	if len(apps) == 0 {
		return "none"
	}
	names := make([]string, len(apps))
	for i, app := range apps {
		names[i] = app.Name
	}
	return strings.Join(names, ", ")
}
