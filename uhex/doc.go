// Package uhex composes and decomposes Universal Hex files: multi-board
// firmware images built by concatenating per-board Intel Hex streams under
// a fixed 512-character alignment discipline, so a bootloader can skip
// records that don't belong to its board revision.
//
// Create turns one or more labelled Intel Hex streams into a single
// Universal Hex string, using either the block layout (fixed 512-character
// blocks, each self-contained) or the section layout (one contiguous,
// 512-aligned region per board — the layout recommended for new tooling).
// Separate reverses the process, recovering the original per-board Intel
// Hex streams from a Universal Hex string.
package uhex
