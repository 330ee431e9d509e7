// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - collect the settings for one run
//
// sources in increasing priority:
//
//   built in defaults
//   a Lua configuration file (optional)
//   a .env file (optional, never overrides the real environment)
//   the process environment
//
// most of base Lua is available in the configuration file, so getenv
// can be used to pull in items from the environment.
package configuration
