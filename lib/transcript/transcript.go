//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package transcript

import (
	"fmt"
)

// LengthTable maps a reference ID to the true, non-extended length of the
// linearized circRNA sequence. Immutable for the duration of a run.
type LengthTable map[string]int

// EventMapping maps a reference ID (an exon-derived sub-sequence) to the
// back-splicing event it belongs to.
type EventMapping map[string]string

// MissingReferenceError reports a hit referencing an ID absent from the
// length or event table. The consolidation is undefined without full
// coverage, so this is fatal.
type MissingReferenceError struct {
	Table       string
	ReferenceID string
}

func (e *MissingReferenceError) Error() string {
	return fmt.Sprintf("reference %q not found in %s table", e.ReferenceID, e.Table)
}
