// Package yalc re-exports the engine result types as the public API.
// Users import "github.com/Henrik-Peters/Yalc/pkg/yalc" and consume
// yalc.RunReport, yalc.TaskOutcome, etc. without reaching into internal.
package yalc

import (
	"github.com/Henrik-Peters/Yalc/internal/engine"
	"github.com/Henrik-Peters/Yalc/internal/scan"
)

type FileInfo = scan.FileInfo
type FileFailure = engine.FileFailure
type TaskOutcome = engine.TaskOutcome
type RunReport = engine.RunReport
