// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the noticectl command tree.
//
// Each cobra subcommand runs one operation against the web front's API:
// reading the public configuration, listing recent notices, showing
// statistics and health, and registering a Discord webhook. Results are
// printed as indented JSON. Failures are reported with the same localized
// messages the pages show, and command line mistakes as *UsageError.
package client
