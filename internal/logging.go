package internal

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// CurrentLevel is the level of the default logger.
var CurrentLevel slog.Level

var levelStrings = map[slog.Level]string{
	slog.LevelDebug: "\033[0;2mDEBUG\033[0m",
	slog.LevelInfo:  "\033[0;1mINFO \033[0m",
	slog.LevelWarn:  "\033[0;1;38;5;185mWARN \033[0m",
	slog.LevelError: "\033[0;1;31mERROR\033[0m",
}

// Levels lists accepted levels, from most to least verbose.
var Levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

// SetLoggingHandler configures the default logger on stderr.
//
// With color, use tint handler. Otherwise, use plain slog text handler.
func SetLoggingHandler(level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.LevelKey && len(groups) == 0 {
					level, ok := a.Value.Any().(slog.Level)
					if ok {
						if s, found := levelStrings[level]; found {
							a.Value = slog.StringValue(s)
						}
					}
				}
				return dropNilError(groups, a)
			},
			TimeFormat: "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: dropNilError,
		})
	}
	slog.SetDefault(slog.New(h))
}

func dropNilError(_ []string, a slog.Attr) slog.Attr {
	if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
		return slog.Attr{}
	}
	return a
}

// ShiftLevel moves from INFO by quiet minus verbose steps, within Levels.
func ShiftLevel(verbose, quiet int) slog.Level {
	// Default log level is INFO, which index is 1.
	index := 1 - verbose + quiet
	index = max(0, index)
	index = min(index, len(Levels)-1)
	return Levels[index]
}
