// Copyright 2026 The Chipselect Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface support for
// chipselect widgets: the color theme and ANSI-aware chrome pieces
// (scrollbar rendering) that are not specific to any one widget.
//
// Widgets import this package for consistent look and behavior: same
// palette, same scrollbar mechanics. Each widget owns its own state,
// layout, and rendering.
package tui
