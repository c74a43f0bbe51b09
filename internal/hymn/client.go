package hymn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
)

// Classifier fetches a classified document for a file path. The concrete
// transport (subprocess today) hides behind this so renderers never touch it.
type Classifier interface {
	Fetch(ctx context.Context, path string) (*Document, error)
}

// Sentinel errors for the two conditions callers match on directly
var (
	ErrClassifierUnavailable = errors.New("classifier executable unavailable")
	ErrClassifierTimeout     = errors.New("classifier timed out")
)

// ClassifierError reports a non-zero exit from the classifier
type ClassifierError struct {
	ExitCode int
	Stderr   string
}

func (e *ClassifierError) Error() string {
	return fmt.Sprintf("classifier exited with status %d: %s", e.ExitCode, strings.TrimSpace(e.Stderr))
}

// MalformedResponseError reports output that contained no parseable JSON
type MalformedResponseError struct {
	Reason string
	Stderr string
}

func (e *MalformedResponseError) Error() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return fmt.Sprintf("malformed classifier response: %s (stderr: %s)", e.Reason, s)
	}
	return fmt.Sprintf("malformed classifier response: %s", e.Reason)
}

// CommandClassifier invokes the external classifier as a subprocess and
// parses its JSON output into a Document.
type CommandClassifier struct {
	command []string
	rootDir string
	timeout time.Duration
	logger  *log.Logger
}

// NewCommandClassifier creates a classifier client. command is the argv
// prefix (the file path is appended); rootDir is the working directory the
// classifier runs from, so it can locate its own resources.
func NewCommandClassifier(command []string, rootDir string, timeout time.Duration, logger *log.Logger) *CommandClassifier {
	if logger == nil {
		logger = log.Default()
	}
	return &CommandClassifier{
		command: command,
		rootDir: rootDir,
		timeout: timeout,
		logger:  logger,
	}
}

// InstallRoot returns the directory the classifier should run from when no
// override is configured: the parent of the directory holding the executable.
func InstallRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(filepath.Dir(exe))
}

// Fetch runs the classifier on path and parses the response.
// The timeout forcibly kills the subprocess; there is no partial result.
func (c *CommandClassifier) Fetch(ctx context.Context, path string) (*Document, error) {
	if len(c.command) == 0 {
		return nil, ErrClassifierUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	args := append(append([]string(nil), c.command[1:]...), path)
	cmd := exec.CommandContext(ctx, c.command[0], args...)
	cmd.Dir = c.rootDir

	// The classifier is typically a wrapper (mix) that forks workers which
	// inherit our stdout/stderr pipes. Run it in its own process group so
	// cancellation kills the whole tree, and cap the pipe drain so Wait
	// cannot block on a straggler holding a write end.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	c.logger.Debug("classifier run",
		"command", strings.Join(c.command, " "),
		"path", path,
		"duration", time.Since(start),
		"err", err)

	// The cancel hook killed the whole process group when the deadline
	// fired; Run has already reaped the child (abandoning the pipes after
	// WaitDelay if a straggler still held them).
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrClassifierTimeout, c.timeout)
		}
		return nil, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &ClassifierError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		// Could not start at all: missing executable, bad working dir, etc.
		return nil, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}

	doc, perr := parseResponse(stdout.Bytes(), stderr.String())
	if perr != nil {
		return nil, perr
	}
	if doc.Metadata.LineCount != len(doc.Lines) {
		// line_count is informational; layout uses the actual entries
		c.logger.Debug("line_count mismatch",
			"claimed", doc.Metadata.LineCount,
			"actual", len(doc.Lines))
	}
	return doc, nil
}

// parseResponse locates the JSON object in stdout and decodes it. Anything
// before the first '{' is build noise from the classifier and is discarded.
func parseResponse(stdout []byte, stderrText string) (*Document, error) {
	idx := bytes.IndexByte(stdout, '{')
	if idx < 0 {
		return nil, &MalformedResponseError{Reason: "no JSON object in output", Stderr: stderrText}
	}

	var doc Document
	if err := json.Unmarshal(stdout[idx:], &doc); err != nil {
		return nil, &MalformedResponseError{Reason: err.Error(), Stderr: stderrText}
	}

	return &doc, nil
}

// ParseDocument decodes an already-captured classifier response, used when
// the document arrives on stdin instead of from a subprocess.
func ParseDocument(data []byte) (*Document, error) {
	return parseResponse(data, "")
}
