package opts

import (
	"context"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config   *config.PatchrcConfig
	Reporter *status.Reporter
	Runner   *patch.Runner
}

// Factory builds RootOpts after flags are parsed
type Factory func(ctx context.Context) (*RootOpts, error)
