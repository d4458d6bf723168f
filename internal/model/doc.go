package model

// Package model defines domain data structures used across the demo app:
// number input presets loaded from configuration and shown as gallery rows.
// Structures are designed for direct binding in the UI.
