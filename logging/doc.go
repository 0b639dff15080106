// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package logging provides pre-configured [log/slog.Logger] construction with
consistent defaults for all skillsync components.

	logger := logging.New(
		logging.WithFormat(logging.FormatText),
		logging.WithLevel(slog.LevelDebug),
		logging.WithComponent("engine"),
	)
	logger.Info("sync complete", "created", 2, "updated", 1)

The default output is JSON on stderr at INFO level with RFC3339 timestamps.
*/
package logging
