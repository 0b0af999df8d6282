package jsonblog

import "embed"

// EmbeddedAssets contains the client script shipped with the server:
// blog.js drives the search box, the mobile menu and legacy #fragment links.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
