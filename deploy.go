package inkwell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrNoDeployCommand is returned when deploy runs without a configured
// sync command.
var ErrNoDeployCommand = errors.New("inkwell: deploy.command is not configured")

// Deployer publishes the output directory by shelling out to the
// configured sync command (rsync, rclone, a cloud CLI). The command is an
// external collaborator; inkwell only runs it and retries on failure.
type Deployer struct {
	cfg SiteConfig
	log zerolog.Logger
}

// NewDeployer creates a Deployer for the given site.
func NewDeployer(cfg SiteConfig, logger zerolog.Logger) *Deployer {
	return &Deployer{cfg: cfg, log: logger}
}

// Deploy runs the sync command, substituting "{out}" in its arguments
// with the output directory. It retries cfg.Deploy.Retries times with a
// short backoff; the last error is returned when every attempt fails.
func (d *Deployer) Deploy(ctx context.Context) error {
	if d.cfg.Deploy.Command == "" {
		return ErrNoDeployCommand
	}

	args := make([]string, len(d.cfg.Deploy.Args))
	for i, a := range d.cfg.Deploy.Args {
		args[i] = strings.ReplaceAll(a, "{out}", d.cfg.OutputDir)
	}

	attempts := d.cfg.Deploy.Retries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		d.log.Info().
			Str("command", d.cfg.Deploy.Command).
			Strs("args", args).
			Int("attempt", attempt).
			Msg("running deploy command")

		cmd := exec.CommandContext(ctx, d.cfg.Deploy.Command, args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		err := cmd.Run()
		if err == nil {
			d.log.Info().Msg("deploy succeeded")
			return nil
		}
		lastErr = err
		d.log.Warn().Err(err).Int("attempt", attempt).Msg("deploy command failed")
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
	}
	return fmt.Errorf("inkwell: deploy failed after %d attempts: %w", attempts, lastErr)
}
