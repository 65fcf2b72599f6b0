// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package monitoring

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Alert reports err to the error tracking and logs it. Without a configured
// DSN the event id is nil and only the log remains.
func Alert(message string, err error) {
	var evID *sentry.EventID
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("alert", message)
		evID = sentry.CaptureException(errors.Wrap(err, message))
	})
	slog.Error("alert", "msg", message, "err", err, "eventId", evID)
}

// RecoverAndAlert is Alert for recovered panics. err is the recovered value.
func RecoverAndAlert(message string, err error) {
	evID := sentry.CurrentHub().Recover(err)
	slog.Error("recovered from panic", "msg", message, "err", err, "eventId", evID)
}
