// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"

	"github.com/walteh/patchrc/pkg/config"
	"github.com/walteh/patchrc/pkg/patch"
	"github.com/walteh/patchrc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is one executable unit of work over the configured targets
type Operation interface {
	// Execute runs the operation; the returned error is fatal only
	Execute(ctx context.Context) error
}

// 🔧 Options contains configuration for operations
type Options struct {
	// Config is the patchrc configuration
	Config *config.PatchrcConfig
	// Reporter prints user-facing outcome lines
	Reporter *status.Reporter
	// Runner applies change sequences to documents
	Runner *patch.Runner
}

// validate checks the options are complete
func (o Options) validate() error {
	if o.Config == nil {
		return errors.New("config is required")
	}
	if o.Reporter == nil {
		return errors.New("reporter is required")
	}
	if o.Runner == nil {
		return errors.New("runner is required")
	}
	return nil
}
