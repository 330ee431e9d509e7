// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.
//
// Each error class corresponds to a stage of the note pipeline so that
// a caller can tell a configuration problem from an encoding problem or
// a network failure without inspecting message text.
package fault
