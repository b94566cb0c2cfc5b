// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-dabria/internal/logger"
)

// gooseLogger routes goose output into the application logger instead of
// stdout, which belongs to the terminal UI.
type gooseLogger struct {
	log *logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	if g.log == nil {
		return
	}
	g.log.Info().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf is only logged: goose reports failures through returned errors as
// well, and the caller decides whether they are fatal.
func (g gooseLogger) Fatalf(format string, v ...any) {
	if g.log == nil {
		return
	}
	g.log.Error().Str("component", "goose").Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
