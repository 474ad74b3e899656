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

package trace

import (
	"fmt"
	"time"
)

// Entry records a single rearrangement of the looping content.
type Entry struct {
	Timestamp time.Time // Time of the rearrangement.
	Steps     int       // Signed number of wrap steps performed.
	Offset    float64   // Positional correction applied to the content.
	Start     int       // Storage index of the head item afterwards.
	Sum       float64   // Ledger sum afterwards.
	Depth     int       // Ledger depth afterwards.
}

func (e Entry) String() string {
	return fmt.Sprintf(
		"%s: steps=%d offset=%g start=%d sum=%g depth=%d",
		e.Timestamp.Format("2006-01-02 15:04:05.00000"),
		e.Steps, e.Offset, e.Start, e.Sum, e.Depth)
}
