package render

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// Renderer invokes the external leaderboard renderer. The renderer reads
// the week's snapshot file itself; it only needs the week number, passed
// via the CURRENT_WEEK environment variable. It always writes the image
// to the same output path, overwriting the previous run.
type Renderer struct {
	command []string // program plus arguments
	dir     string   // working directory
	output  string   // expected artifact path
}

// NewRenderer creates a renderer for the given command, working directory
// and expected output path.
func NewRenderer(command []string, dir, output string) *Renderer {
	return &Renderer{command: command, dir: dir, output: output}
}

// Render runs the renderer for the given week and blocks until it exits.
// A non-zero exit or a missing artifact is an error. On success the
// artifact path is returned.
func (r *Renderer) Render(ctx context.Context, week int) (string, error) {
	if len(r.command) == 0 {
		return "", fmt.Errorf("no render command configured")
	}

	cmd := exec.CommandContext(ctx, r.command[0], r.command[1:]...)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(), fmt.Sprintf("CURRENT_WEEK=%d", week))

	log.Infof("Running renderer for week %d: %v", week, r.command)
	out, err := cmd.CombinedOutput()
	if err != nil {
		log.Errorf("Renderer failed: %v\n%s", err, out)
		return "", fmt.Errorf("renderer exited with error: %w", err)
	}

	if _, err := os.Stat(r.output); err != nil {
		return "", fmt.Errorf("renderer produced no artifact at %s: %w", r.output, err)
	}

	return r.output, nil
}
