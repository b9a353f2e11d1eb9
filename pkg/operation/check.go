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
	"gitlab.com/tozd/go/errors"
)

// 🔍 NewCheckOperation creates a dry-run patch operation: it reports exactly
// what apply would do but never saves, regardless of config
func NewCheckOperation(opts Options) (*PatchOperation, error) {
	op, err := NewPatchOperation(opts)
	if err != nil {
		return nil, errors.Errorf("creating check operation: %w", err)
	}
	op.dryRun = true
	return op, nil
}
