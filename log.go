// Copyright ©2017 The gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package krylov

import (
	"context"
	"log/slog"
)

// LogIterations returns an observer for Settings.Observer that writes one
// debug record per iteration to logger. If logger is nil, slog.Default is
// used.
func LogIterations(logger *slog.Logger) func(Iteration) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(it Iteration) {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "krylov: iteration",
			slog.Int("iter", it.Index),
			slog.Float64("rnorm", it.ResidualNorm),
			slog.Float64("pAp", it.Curvature),
			slog.Float64("alpha", it.Alpha),
			slog.Float64("step", it.Step),
		)
	}
}
