// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements a scripted client run against a live
// geo-locations server.
//
// The run walks the public API end to end: account creation, login, a new
// location, a comment and an image upload, then reads everything back and
// checks what the server returned.
package client
