// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless is an in-process shell host that simulates a device.
//
// A Profile describes the device: surface size and scale, chrome insets,
// the rendering API tiers it supports, its orientations, sensors and
// other capabilities. Profiles are usually loaded from YAML:
//
//	name: tablet
//	width: 2048
//	height: 1536
//	scale: 2
//	apis: [gles2, gles3]
//	orientations: [landscapeLeft, landscapeRight]
//	orientation: landscapeLeft
//	sensors: [accelerometer]
//	touch: true
//	script:
//	  - op: frames
//	    count: 10
//	  - op: touch
//	    phase: began
//	    x: 100
//	    y: 100
//	  - op: loseContext
//
// Platform runs an application entry point against a profile and replays
// its script. Runner gives tests step-by-step control of the same host,
// and Host records every request the core makes (presents, sensor signals,
// haptics, keyboard and cursor changes) for assertions.
//
// Importing the package registers the platform as platform.Headless:
//
//	import _ "github.com/gogpu/shell/platform/headless"
package headless
