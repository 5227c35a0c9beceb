package tui

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/minicoder/internal/config"
	"github.com/studiowebux/minicoder/internal/curriculum"
	"github.com/studiowebux/minicoder/internal/preview"
	"github.com/studiowebux/minicoder/internal/workspace"
)

// RunOptions override persisted settings for one run. Zero values defer to
// the settings file.
type RunOptions struct {
	Port          int
	CurriculumURL string
	OpenBrowser   bool
	Version       string
}

// Run wires the workspace, the preview server, and the lesson loader, then
// hands the terminal to the program until quit.
func Run(opts RunOptions) error {
	if err := config.Initialize(); err != nil {
		return err
	}
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if opts.Port != 0 {
		settings.PreviewPort = opts.Port
	}
	if opts.CurriculumURL != "" {
		settings.CurriculumURL = opts.CurriculumURL
	}
	if opts.OpenBrowser {
		settings.OpenBrowser = true
	}

	// The TUI owns stdout; server logs go to a file instead.
	if f, err := os.OpenFile(config.PreviewLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	server := preview.NewServer(settings.PreviewPort)
	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start preview server: %w", err)
	}

	ws := workspace.New()
	loader := curriculum.NewLoader(settings.CurriculumURL)

	m, err := New(ws, server, loader, settings, opts.Version)
	if err != nil {
		server.Stop()
		return err
	}

	if settings.OpenBrowser {
		openBrowser(server.URL())
	}

	p := tea.NewProgram(&m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		server.Stop()
		return err
	}
	return nil
}

// openBrowser launches the preview URL with the platform opener. Failure is
// logged and otherwise ignored; the URL stays visible in the status bar.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("failed to open browser: %v", err)
	}
}
