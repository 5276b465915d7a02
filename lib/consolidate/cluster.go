//
// Copyright (C) 2022-2024 Hsin-Yi Weng
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://www.mozilla.org/MPL/2.0/.
//

package consolidate

// AssignClusters assigns a cluster ID to each hit from the exact text of its
// three alignment tracks. The first hit in input order to exhibit a signature
// defines a new ID, starting at 0; every later hit with an identical
// signature gets the same ID, across query/reference pairs.
func AssignClusters(chits []ClusteredHit) []ClusteredHit {
	ids := make(map[string]int)
	clustered := make([]ClusteredHit, len(chits))
	for i, ch := range chits {
		ch.Aln = ch.Signature()
		id, ok := ids[ch.Aln]
		if !ok {
			id = len(ids)
			ids[ch.Aln] = id
		}
		ch.AlnID = id
		clustered[i] = ch
	}
	return clustered
}
