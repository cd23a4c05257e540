package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/bnema/datagrid/internal/cli/styles"
	"github.com/bnema/datagrid/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const defaultLogsLines = 50

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View session logs",
	Long: `View the logs written while the interactive grid was open.

Without arguments, lists all available sessions.
With a session ID (or partial match), shows logs for that session.

Examples:
  datagrid logs                 # List all sessions
  datagrid logs a7b3            # View logs for session ending in 'a7b3'
  datagrid logs -f a7b3         # Follow logs in real-time
  datagrid logs -n 100 a7b3     # Show last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

// logsClearCmd clears old session logs.
var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear old log files",
	Long: `Remove old session log files.

By default, removes sessions older than logging.max_age_days (default 7 days).
Use --all to remove all sessions.`,
	Args: cobra.NoArgs,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all session logs")
}

// SessionInfo holds metadata about a session log file.
type SessionInfo struct {
	SessionID string
	ShortID   string
	Path      string
	Size      int64
	ModTime   time.Time
}

func runLogs(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	logDir, err := app.Config.Logging.ResolveLogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		return listSessions(out, logDir, app.Theme)
	}

	session, err := findSession(logDir, args[0])
	if err != nil {
		return err
	}
	if logsFollow {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return tailSession(ctx, out, session.Path, app.Theme)
	}
	return showSession(out, session.Path, logsLines, app.Theme)
}

func listSessions(out io.Writer, logDir string, theme *styles.Theme) error {
	sessions, err := getSessions(logDir)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No sessions found. Run 'datagrid demo' to create logs."))
		return nil
	}

	fmt.Fprintln(out, theme.Title.Render("Sessions (newest first):"))
	fmt.Fprintln(out)
	now := time.Now()
	for i := range sessions {
		s := &sessions[i]
		fmt.Fprintf(out, "  %s  %s  %-10s %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(s.ModTime.Format("2006-01-02 15:04:05")),
			styles.RelativeTime(s.ModTime, now),
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatSize(s.Size))),
		)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Subtle.Render("Use 'datagrid logs <id>' to view a session"))
	return nil
}

// getSessions returns all session log files, newest first.
func getSessions(logDir string) ([]SessionInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var sessions []SessionInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		sessionID, ok := logging.ParseSessionFilename(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		sessions = append(sessions, SessionInfo{
			SessionID: sessionID,
			ShortID:   logging.ShortSessionID(sessionID),
			Path:      filepath.Join(logDir, entry.Name()),
			Size:      info.Size(),
			ModTime:   info.ModTime(),
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})
	return sessions, nil
}

// findSession finds a session by short ID, then by partial ID match.
func findSession(logDir, query string) (*SessionInfo, error) {
	sessions, err := getSessions(logDir)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	q := strings.ToLower(strings.TrimSpace(query))
	for i := range sessions {
		if strings.EqualFold(sessions[i].ShortID, q) {
			return &sessions[i], nil
		}
	}

	var matches []SessionInfo
	for i := range sessions {
		if strings.Contains(strings.ToLower(sessions[i].SessionID), q) {
			matches = append(matches, sessions[i])
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	}
	ids := make([]string, len(matches))
	for i := range matches {
		ids[i] = matches[i].ShortID
	}
	return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
}

// showSession prints the last n lines of a session log.
func showSession(out io.Writer, logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read log file: %w", err)
	}

	for _, line := range lines {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// tailSession follows a session log until ctx is done. New data is read
// on fsnotify write events.
func tailSession(ctx context.Context, out io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch log file: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(logPath); err != nil {
		return fmt.Errorf("watch log file: %w", err)
	}

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(file)
	pending := ""
	drain := func() error {
		for {
			chunk, err := reader.ReadString('\n')
			pending += chunk
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read log file: %w", err)
			}
			fmt.Fprintln(out, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
			pending = ""
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				// Rotated away; the session continues in a new file.
				fmt.Fprintln(out, theme.Subtle.Render("log file rotated"))
				return nil
			}
			if ev.Has(fsnotify.Write) {
				if err := drain(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch log file: %w", err)
		}
	}
}

// logEntry is a parsed JSON log line.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Error     string `json:"error"`
}

// colorizeLogLine styles a JSON log line; other lines are matched by level tag.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case strings.Contains(line, "ERR"):
		return theme.ErrorStyle.Render(line)
	case strings.Contains(line, "WRN"):
		return theme.WarningStyle.Render(line)
	case strings.Contains(line, "DBG"), strings.Contains(line, "TRC"):
		return theme.Subtle.Render(line)
	}
	return line
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	var sb strings.Builder
	sb.WriteString(theme.Subtle.Render(entry.Time))
	sb.WriteString(" ")
	sb.WriteString(levelStr)
	if entry.Component != "" {
		sb.WriteString(" ")
		sb.WriteString(theme.Subtle.Render("[" + entry.Component + "]"))
	}
	sb.WriteString(" ")
	sb.WriteString(entry.Message)
	if entry.Error != "" {
		sb.WriteString(" ")
		sb.WriteString(theme.ErrorStyle.Render(entry.Error))
	}
	return sb.String()
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	logDir, err := app.Config.Logging.ResolveLogDir()
	if err != nil {
		return fmt.Errorf("resolve log dir: %w", err)
	}
	out := cmd.OutOrStdout()
	theme := app.Theme

	sessions, err := getSessions(logDir)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No logs to clear"))
		return nil
	}

	maxAge := app.Config.Logging.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}
	removed := clearSessions(out, sessions, time.Now().AddDate(0, 0, -maxAge), logsClearAll, theme)

	if removed == 0 {
		fmt.Fprintln(out, theme.Subtle.Render(fmt.Sprintf("No sessions older than %d days", maxAge)))
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d session(s)", removed)))
	return nil
}

// clearSessions removes the sessions last written before cutoff, or all of
// them. Returns the number removed.
func clearSessions(out io.Writer, sessions []SessionInfo, cutoff time.Time, all bool, theme *styles.Theme) int {
	removed := 0
	for i := range sessions {
		s := &sessions[i]
		if !all && !s.ModTime.Before(cutoff) {
			continue
		}
		if err := os.Remove(s.Path); err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", theme.ErrorStyle.Render(styles.IconX), s.ShortID, err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%s)\n", theme.SuccessStyle.Render(styles.IconCheck), s.ShortID, formatSize(s.Size))
		removed++
	}
	return removed
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
