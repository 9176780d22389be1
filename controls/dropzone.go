/*
   Copyright 2026 The Glyph Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package controls

import "github.com/betodealmeida/glyph/apis"

// DropZone describes a direct-manipulation drop target on the chart
// skeleton: a labeled area accepting dragged columns of particular argument
// kinds.
type DropZone struct {
	Label   string      `json:"label"`
	Accepts []apis.Kind `json:"accepts"`
}

// NewDropZone constructs a drop zone. A zone accepting no kinds is a
// programmer error and panics immediately rather than silently accepting
// everything.
func NewDropZone(label string, accepts ...apis.Kind) DropZone {
	if len(accepts) == 0 {
		panic("glyph(controls): drop zone configured with no accepted argument kinds")
	}
	return DropZone{Label: label, Accepts: accepts}
}

// CanAccept reports whether the zone accepts kind k.
func (z DropZone) CanAccept(k apis.Kind) bool {
	for _, a := range z.Accepts {
		if a == k {
			return true
		}
	}
	return false
}
