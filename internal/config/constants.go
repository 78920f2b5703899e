package config

import "time"

// Base application details
const AppName = "glyphpaint"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "glyphpaint.log"

// Canvas defaults
const DefaultWidth = 32
const DefaultHeight = 16
const DefaultResizeAnchor = "center"

// Pen defaults
const DefaultGlyph = 0xdb // full block
const DefaultFG = "white"
const DefaultBG = "black"
const DefaultTool = "pencil"

// UI Layout
const StatusBarHeight = 1
const PaletteHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Autosave writes to a sibling file named BackupPrefix + the canvas file name.
const BackupPrefix = ".autosave-"
const DefaultAutosaveInterval = 30 * time.Second

const DefaultExportScale = 2
const DefaultWatchDebounce = 200 * time.Millisecond
