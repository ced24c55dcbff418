// Package compdata loads and validates the calibration data behind a sky
// model: the K principal-component basis maps and the frequency table that
// mixes them.
//
// Data live in an NPZ container (a zip of named numeric arrays). A [Schema]
// names the arrays a model variant expects and how to normalize them; [Load]
// reads and validates the container into an immutable [Components] value.
// Single-template models use [LoadBaseMap] instead.
//
// The loader performs no interpolation; it only validates dimensions
// (consistent map lengths, a pixel count matching a valid resolution,
// strictly increasing frequencies, N >= 2) and exposes read-only arrays.
package compdata
