package web

import "embed"

// StaticFS holds the embedded stylesheet and avatar.
//
//go:embed static/*
var StaticFS embed.FS
