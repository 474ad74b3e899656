// Copyright 2017 Canonical Ltd.
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

package loopscroll

import "github.com/pkg/errors"

// Configuration errors. They are returned wrapped with details, use
// errors.Cause to compare them.
var (
	// ErrMissingCollaborator indicates that a required host collaborator,
	// like the layout or the content container, was not provided.
	ErrMissingCollaborator = errors.New("missing collaborator")

	// ErrInvalidOption indicates that an option was given an out of range
	// value.
	ErrInvalidOption = errors.New("invalid option")
)
