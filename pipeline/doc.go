// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pipeline - the single forward pass that turns a note into a
// confirmed transaction
//
//   encode → derive address → assemble → sign → submit
//
// Each stage returns a fault error whose class identifies the stage
// that failed (see fault.Classify).  Nothing is retried.
package pipeline
