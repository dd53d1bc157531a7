package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"

	"github.com/riadafridishibly/dupclean/cleaner"
	"github.com/riadafridishibly/dupclean/tui"
)

func tempDir() string {
	if runtime.GOOS == "darwin" {
		return "/tmp"
	}
	return os.TempDir()
}

func usage() {
	fmt.Println("Usage: dupclean [--dry-run] [--interactive|-i] [directory]")
	fmt.Println()
	fmt.Println("Finds files in a single directory that are copies of one another")
	fmt.Println("(same name modulo OS copy suffixes, same byte size) and deletes")
	fmt.Println("all but the oldest one, after confirmation.")
	fmt.Println()
	fmt.Println("  --dry-run          report what would be deleted, touch nothing")
	fmt.Println("  --interactive, -i  browse duplicate sets in a terminal UI")
	fmt.Println("  directory          target directory, defaults to the current one")
}

func main() {
	logFile, err := os.CreateTemp(tempDir(), "dupclean-*.log")
	if err != nil {
		log.Fatalf("Error creating log file: %v", err)
	}
	log.SetFlags(log.Lshortfile | log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("[DUPCLN] ")
	log.SetOutput(logFile)

	var dryRun, interactive bool
	var rootDir string
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--dry-run":
			dryRun = true
		case "--interactive", "-i":
			interactive = true
		case "--help", "-h":
			usage()
			return
		default:
			rootDir = arg
		}
	}

	if rootDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting current directory: %v\n", err)
			os.Exit(1)
		}
		rootDir = cwd
	}

	absPath, err := filepath.Abs(rootDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving path %s: %v\n", rootDir, err)
		os.Exit(1)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Path does not exist: %s\n", absPath)
		os.Exit(1)
	}

	if interactive {
		fmt.Println("Logfile is being written in:", logFile.Name())
		app := tui.NewApp(absPath, dryRun)
		if err := app.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if dryRun {
		fmt.Println("Running in DRY RUN mode - no files will be deleted")
	}
	if err := cleaner.Run(cleaner.Options{Dir: absPath, DryRun: dryRun}); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
