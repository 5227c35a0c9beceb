/*
Package types defines the core data structures shared across MiniCoder.

# Overview

The types package provides:
  - VirtualFile: an in-memory named text buffer with a language tag and
    dirty flag
  - Language: the editing language derived from a file extension
  - ConsoleRecord: a structured log entry relayed from the preview page
  - The conventional entry point file names used by the preview compiler

# Virtual Files

A VirtualFile lives only in memory. Its Name doubles as the unique key in
the workspace file table and must carry a dot-delimited extension; the
extension determines the Language. Extensions outside the recognized set
(html, css, js, ts, json, md) map to plain text.

# Console Records

The preview page overrides console.log/warn/error and forwards every call
as a ConsoleRecord over the relay channel. Records are append-only and
transient: the console pane keeps them in arrival order until the user
clears it. Nothing is persisted.

# Field Tags

VirtualFile carries JSON and YAML tags so the seed project template and
archive manifests serialize cleanly; ConsoleRecord's JSON tags match the
wire shape produced by the instrumentation shim.
*/
package types
